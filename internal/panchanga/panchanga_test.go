package panchanga

import (
	"testing"
	"time"

	"github.com/nepcal/panchanga-api/internal/events"
)

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestCalculate_KnownDays(t *testing.T) {
	calc := NewCalculator(nil, nil)

	tests := []struct {
		name string
		date time.Time
		want Result
	}{
		{
			name: "nepali new year 2081",
			date: day(2024, 4, 13),
			want: Result{
				BSYear: 2081, BSMonth: 1, BSDay: 1,
				MonthName: "वैशाख", MonthNameEn: "Baisakh",
				Weekday: "शनिबार", WeekdayEn: "Saturday",
				Tithi: "पञ्चमी", Paksha: PakshaShukla,
				LunarMonth: "वैशाख",
				Nakshatra:  "मृगशिरा", Yoga: "शोभन", Karana: "बालव",
				SunRashi: "मीन", MoonRashi: "वृषभ",
				AdhikaMasa: "छैन",
			},
		},
		{
			name: "holi purnima 2081",
			date: day(2025, 3, 14),
			want: Result{
				BSYear: 2081, BSMonth: 12, BSDay: 1,
				MonthName: "चैत्र", MonthNameEn: "Chaitra",
				Weekday: "शुक्रबार", WeekdayEn: "Friday",
				Tithi: "पूर्णिमा", Paksha: PakshaShukla,
				LunarMonth: "फाल्गुन",
				Nakshatra:  "उत्तर फाल्गुनी", Yoga: "शूल", Karana: "बव",
				SunRashi: "कुम्भ", MoonRashi: "सिंह",
				AdhikaMasa: "छैन",
			},
		},
		{
			name: "fixed karana block",
			date: day(2024, 10, 31),
			want: Result{
				BSYear: 2081, BSMonth: 7, BSDay: 15,
				MonthName: "कार्तिक", MonthNameEn: "Kartik",
				Weekday: "बिहीबार", WeekdayEn: "Thursday",
				Tithi: "चतुर्दशी", Paksha: PakshaKrishna,
				LunarMonth: "आश्विन",
				Nakshatra:  "चित्रा", Yoga: "विष्कम्भ", Karana: "शकुनि",
				SunRashi: "तुला", MoonRashi: "कन्या",
				AdhikaMasa: "छैन",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Calculate(tt.date)
			checks := []struct {
				field string
				got   string
				want  string
			}{
				{"MonthName", got.MonthName, tt.want.MonthName},
				{"MonthNameEn", got.MonthNameEn, tt.want.MonthNameEn},
				{"Weekday", got.Weekday, tt.want.Weekday},
				{"WeekdayEn", got.WeekdayEn, tt.want.WeekdayEn},
				{"Tithi", got.Tithi, tt.want.Tithi},
				{"Paksha", got.Paksha, tt.want.Paksha},
				{"LunarMonth", got.LunarMonth, tt.want.LunarMonth},
				{"Nakshatra", got.Nakshatra, tt.want.Nakshatra},
				{"Yoga", got.Yoga, tt.want.Yoga},
				{"Karana", got.Karana, tt.want.Karana},
				{"SunRashi", got.SunRashi, tt.want.SunRashi},
				{"MoonRashi", got.MoonRashi, tt.want.MoonRashi},
				{"AdhikaMasa", got.AdhikaMasa, tt.want.AdhikaMasa},
			}
			for _, c := range checks {
				if c.got != c.want {
					t.Errorf("%s = %q, want %q", c.field, c.got, c.want)
				}
			}
			if got.BSYear != tt.want.BSYear || got.BSMonth != tt.want.BSMonth || got.BSDay != tt.want.BSDay {
				t.Errorf("BS date = %d-%d-%d, want %d-%d-%d",
					got.BSYear, got.BSMonth, got.BSDay,
					tt.want.BSYear, tt.want.BSMonth, tt.want.BSDay)
			}
			if got.IsComputed {
				t.Error("IsComputed = true inside table range")
			}
		})
	}
}

func TestCalculate_AdhikaMonth(t *testing.T) {
	calc := NewCalculator(nil, nil)

	// Shrawan 2080 BS repeated; the whole of August 2023 opened inside
	// the intercalated month.
	got := calc.Calculate(day(2023, 8, 1))

	if got.LunarMonth != "अधिक श्रावण" {
		t.Errorf("LunarMonth = %q, want अधिक श्रावण", got.LunarMonth)
	}
	if got.AdhikaMasa != "अधिक श्रावण" {
		t.Errorf("AdhikaMasa = %q, want अधिक श्रावण", got.AdhikaMasa)
	}
	for _, e := range got.Events {
		if e.Kind == events.KindLunar {
			t.Errorf("lunar event %q matched during adhika month", e.Name)
		}
	}
}

func TestCalculate_DevanagariHeader(t *testing.T) {
	calc := NewCalculator(nil, nil)

	got := calc.Calculate(day(2024, 4, 13))
	if got.BikramSambat != "२०८१ वैशाख १" {
		t.Errorf("BikramSambat = %q, want २०८१ वैशाख १", got.BikramSambat)
	}
	if got.GregorianDate != "Saturday, April 13, 2024" {
		t.Errorf("GregorianDate = %q", got.GregorianDate)
	}
}

func TestCalculate_NewYearEvents(t *testing.T) {
	calc := NewCalculator(nil, nil)

	got := calc.Calculate(day(2024, 4, 13))
	var found bool
	for _, e := range got.Events {
		if e.Kind == events.KindBikramRecurring && e.Date == "01/01" {
			found = true
		}
	}
	if !found {
		t.Errorf("1 Baisakh did not match the new year event; got %+v", got.Events)
	}
	if !got.IsHoliday {
		t.Error("IsHoliday = false on 1 Baisakh")
	}
}

func TestCalculate_LunarEventSingleFire(t *testing.T) {
	calc := NewCalculator(nil, nil)

	// Scan a full synodic month around Holi; the Purnima event must fire
	// on exactly one civil day.
	var fires int
	for d := day(2025, 3, 1); d.Before(day(2025, 3, 31)); d = d.AddDate(0, 0, 1) {
		r := calc.Calculate(d)
		for _, e := range r.Events {
			if e.Kind == events.KindLunar && e.Tithi == "पूर्णिमा" && e.LunarMonth == "फाल्गुन" {
				fires++
			}
		}
	}
	if fires != 1 {
		t.Errorf("फाल्गुन Purnima events fired on %d days, want 1", fires)
	}
}

type countingCache struct {
	inner Cache
	puts  int
}

func (c *countingCache) Get(key string) (Result, bool) { return c.inner.Get(key) }
func (c *countingCache) Put(key string, r Result) {
	c.puts++
	c.inner.Put(key, r)
}

func TestCalculate_Memoized(t *testing.T) {
	cc := &countingCache{inner: NewMemoryCache()}
	calc := NewCalculator(nil, cc)

	first := calc.Calculate(day(2024, 4, 13))
	second := calc.Calculate(day(2024, 4, 13))

	if cc.puts != 1 {
		t.Errorf("cache puts = %d, want 1", cc.puts)
	}
	if first.Tithi != second.Tithi || first.BSDay != second.BSDay {
		t.Error("cached result differs from computed result")
	}
}

func TestTodayInNepal(t *testing.T) {
	got := TodayInNepal()
	if got.Hour() != 0 || got.Minute() != 0 || got.Location() != time.UTC {
		t.Errorf("TodayInNepal = %v, want midnight UTC", got)
	}
}

func TestKaranaName(t *testing.T) {
	tests := []struct {
		idx  int
		want string
	}{
		{0, "किंस्तुघ्न"},
		{1, "बव"},
		{7, "विष्टि"},
		{8, "बव"},
		{56, "विष्टि"},
		{57, "शकुनि"},
		{58, "चतुष्पाद"},
		{59, "नाग"},
	}
	for _, tt := range tests {
		if got := karanaName(tt.idx); got != tt.want {
			t.Errorf("karanaName(%d) = %q, want %q", tt.idx, got, tt.want)
		}
	}
}
