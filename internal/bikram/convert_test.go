package bikram

import "testing"

func TestTableConsistency(t *testing.T) {
	for y := range npMonthsData {
		sum := 0
		for m := 0; m < 12; m++ {
			sum += npMonthsData[y][m]
		}
		total := npMonthsData[y][12]
		if sum != total {
			t.Errorf("year %d: month sum %d != total %d", StartYear+y, sum, total)
		}
		if total != 365 && total != 366 {
			t.Errorf("year %d: total days %d not in {365, 366}", StartYear+y, total)
		}
	}
}

func TestEpochAnchor(t *testing.T) {
	gy, gm, gd, computed := ToGregorian(2000, 1, 1)
	if gy != 1943 || gm != 4 || gd != 14 {
		t.Errorf("ToGregorian(2000, 1, 1) = %d-%d-%d, want 1943-4-14", gy, gm, gd)
	}
	if computed {
		t.Error("epoch conversion flagged as computed")
	}

	bs := FromGregorian(1943, 4, 14)
	if bs.Year != 2000 || bs.Month != 1 || bs.Day != 1 || bs.IsComputed {
		t.Errorf("FromGregorian(1943, 4, 14) = %+v, want 2000-1-1 from table", bs)
	}
}

func TestKnownConversions(t *testing.T) {
	tests := []struct {
		name       string
		gy, gm, gd int
		by, bm, bd int
	}{
		{"nepali new year 2080", 2023, 4, 14, 2080, 1, 1},
		{"nepali new year 2081", 2024, 4, 13, 2081, 1, 1},
		{"nepali new year 2050", 1993, 4, 13, 2050, 1, 1},
		{"start of 2082", 2025, 4, 14, 2082, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bs := FromGregorian(tt.gy, tt.gm, tt.gd)
			if bs.Year != tt.by || bs.Month != tt.bm || bs.Day != tt.bd {
				t.Errorf("FromGregorian(%d, %d, %d) = %d-%d-%d, want %d-%d-%d",
					tt.gy, tt.gm, tt.gd, bs.Year, bs.Month, bs.Day, tt.by, tt.bm, tt.bd)
			}
			if bs.IsComputed {
				t.Error("in-range conversion flagged as computed")
			}
		})
	}
}

func TestPoushMaghLengths(t *testing.T) {
	// Row totals sum to 365 even when two adjacent month lengths are
	// swapped, so the consistency check alone cannot catch a Poush/Magh
	// transposition. Pin the months and a date on each side of the
	// boundary for the two years whose rows share that shape.
	for _, year := range []int{2062, 2089} {
		if got := DaysInMonth(year, 9); got != 29 {
			t.Errorf("DaysInMonth(%d, 9) = %d, want 29", year, got)
		}
		if got := DaysInMonth(year, 10); got != 30 {
			t.Errorf("DaysInMonth(%d, 10) = %d, want 30", year, got)
		}
		if IsValidDate(year, 9, 30) {
			t.Errorf("IsValidDate(%d, 9, 30) = true, want false", year)
		}
		if !IsValidDate(year, 10, 30) {
			t.Errorf("IsValidDate(%d, 10, 30) = false, want true", year)
		}
	}

	tests := []struct {
		name       string
		by, bm, bd int
		gy, gm, gd int
	}{
		{"magh 1 2062", 2062, 10, 1, 2006, 1, 14},
		{"last of poush 2062", 2062, 9, 29, 2006, 1, 13},
		{"magh 1 2089", 2089, 10, 1, 2033, 1, 14},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gy, gm, gd, computed := ToGregorian(tt.by, tt.bm, tt.bd)
			if gy != tt.gy || gm != tt.gm || gd != tt.gd {
				t.Errorf("ToGregorian(%d, %d, %d) = %d-%d-%d, want %d-%d-%d",
					tt.by, tt.bm, tt.bd, gy, gm, gd, tt.gy, tt.gm, tt.gd)
			}
			if computed {
				t.Error("in-range conversion flagged as computed")
			}
			bs := FromGregorian(tt.gy, tt.gm, tt.gd)
			if bs.Year != tt.by || bs.Month != tt.bm || bs.Day != tt.bd {
				t.Errorf("FromGregorian(%d, %d, %d) = %d-%d-%d, want %d-%d-%d",
					tt.gy, tt.gm, tt.gd, bs.Year, bs.Month, bs.Day, tt.by, tt.bm, tt.bd)
			}
		})
	}
}

func TestRoundTrip_TableRange(t *testing.T) {
	// Every valid day of every tabulated year must survive
	// BS -> Gregorian -> BS exactly, without approximation.
	for year := StartYear; year <= EndYear; year++ {
		for month := 1; month <= 12; month++ {
			days := DaysInMonth(year, month)
			for day := 1; day <= days; day++ {
				gy, gm, gd, computed := ToGregorian(year, month, day)
				if computed {
					t.Fatalf("ToGregorian(%d, %d, %d) used fallback", year, month, day)
				}
				bs := FromGregorian(gy, gm, gd)
				if bs.Year != year || bs.Month != month || bs.Day != day {
					t.Fatalf("round trip %d-%d-%d -> %d-%d-%d -> %d-%d-%d",
						year, month, day, gy, gm, gd, bs.Year, bs.Month, bs.Day)
				}
				if bs.IsComputed {
					t.Fatalf("round trip %d-%d-%d flagged as computed", year, month, day)
				}
			}
		}
	}
}

func TestFallback_OutOfRange(t *testing.T) {
	// BS 1900 predates the table; everything must go through the
	// astronomical path and say so.
	gy, gm, gd, computed := ToGregorian(1900, 1, 1)
	if !computed {
		t.Error("ToGregorian(1900, 1, 1) did not use fallback")
	}
	if gy < 1842 || gy > 1844 {
		t.Errorf("ToGregorian(1900, 1, 1) year = %d, want around 1843", gy)
	}

	bs := FromGregorian(gy, gm, gd)
	if !bs.IsComputed {
		t.Error("FromGregorian for 1843 did not use fallback")
	}
	if bs.Year != 1900 {
		t.Errorf("fallback round trip year = %d, want 1900", bs.Year)
	}
	if bs.Month != 1 || bs.Day != 1 {
		t.Errorf("fallback round trip = %d-%d-%d, want 1900-1-1", bs.Year, bs.Month, bs.Day)
	}
}

func TestFallback_FutureYear(t *testing.T) {
	gy, gm, gd, computed := ToGregorian(2150, 5, 10)
	if !computed {
		t.Error("ToGregorian(2150, 5, 10) did not use fallback")
	}
	bs := FromGregorian(gy, gm, gd)
	if !bs.IsComputed {
		t.Error("FromGregorian far future did not use fallback")
	}
	if bs.Year != 2150 || bs.Month != 5 || bs.Day != 10 {
		t.Errorf("fallback round trip = %d-%d-%d, want 2150-5-10", bs.Year, bs.Month, bs.Day)
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := DaysInMonth(2000, 1); got != 30 {
		t.Errorf("DaysInMonth(2000, 1) = %d, want 30", got)
	}
	if got := DaysInMonth(2081, 2); got != 32 {
		t.Errorf("DaysInMonth(2081, 2) = %d, want 32", got)
	}

	// Out of range: length comes from JD differencing and must still be
	// a plausible solar month.
	if got := DaysInMonth(2100, 1); got < 29 || got > 32 {
		t.Errorf("DaysInMonth(2100, 1) = %d, want 29..32", got)
	}
}

func TestGetMonthInfo(t *testing.T) {
	info := GetMonthInfo(2081, 1)
	if info.TotalDays != 31 {
		t.Errorf("TotalDays = %d, want 31", info.TotalDays)
	}
	// 2024-04-13 was a Saturday.
	if info.StartWeekday != 6 {
		t.Errorf("StartWeekday = %d, want 6 (Saturday)", info.StartWeekday)
	}
	if info.MonthName != "वैशाख" {
		t.Errorf("MonthName = %q, want वैशाख", info.MonthName)
	}
	if info.IsComputed {
		t.Error("in-range month info flagged as computed")
	}
}

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		name    string
		y, m, d int
		want    bool
	}{
		{"valid", 2081, 1, 31, true},
		{"day overflow", 2081, 1, 32, false},
		{"month overflow", 2081, 13, 1, false},
		{"zero day", 2081, 1, 0, false},
		{"out of range lenient", 2150, 1, 32, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidDate(tt.y, tt.m, tt.d); got != tt.want {
				t.Errorf("IsValidDate(%d, %d, %d) = %v, want %v", tt.y, tt.m, tt.d, got, tt.want)
			}
		})
	}
}
