package astro

import (
	"math"
	"testing"
)

// aharFor is a test convenience: the Ahargana at civil midnight of a
// Gregorian date.
func aharFor(y, m, d int) float64 {
	return ToJulianDay(y, m, d) - KaliEpoch
}

func TestFindNewMoon_Converges(t *testing.T) {
	// A spread of start points across several years; the solver must land
	// on an elongation of 0° (equivalently 360°) every time.
	starts := []struct{ y, m, d int }{
		{2024, 1, 5},
		{2024, 4, 13},
		{2025, 8, 20},
		{1890, 6, 1},
		{2090, 12, 31},
	}

	for _, s := range starts {
		ahar := aharFor(s.y, s.m, s.d)
		nm := FindNewMoon(ahar)

		elong := Elongation(nm)
		dist := math.Min(elong, 360-elong)
		if dist > 0.01 {
			t.Errorf("FindNewMoon from %d-%d-%d: elongation %f° off zero", s.y, s.m, s.d, dist)
		}
		if math.Abs(nm-ahar) > SynodicMonth {
			t.Errorf("FindNewMoon from %d-%d-%d landed %f days away", s.y, s.m, s.d, nm-ahar)
		}
	}
}

func TestFindPurnima_Converges(t *testing.T) {
	starts := []struct{ y, m, d int }{
		{2024, 3, 1},
		{2025, 10, 10},
		{1950, 2, 2},
	}

	for _, s := range starts {
		ahar := aharFor(s.y, s.m, s.d)
		p := FindPurnima(ahar)
		if off := math.Abs(Elongation(p) - 180); off > 0.01 {
			t.Errorf("FindPurnima from %d-%d-%d: elongation %f° off 180", s.y, s.m, s.d, off)
		}
	}
}

func TestTithi_MonotonicWithinDay(t *testing.T) {
	ahar := aharFor(2024, 4, 13)

	prev := Tithi(TrueLongitudeSun(ahar), TrueLongitudeMoon(ahar))
	for i := 1; i <= 10; i++ {
		a := ahar + float64(i)*0.1
		cur := Tithi(TrueLongitudeSun(a), TrueLongitudeMoon(a))
		diff := cur - prev
		if diff < -25 { // wrapped past 30
			diff += 30
		}
		if diff <= 0 {
			t.Fatalf("tithi not increasing at step %d: %f -> %f", i, prev, cur)
		}
		if diff > 0.5 {
			t.Fatalf("tithi jumped %f in 0.1 day at step %d", diff, i)
		}
		prev = cur
	}
}

func TestAdhikaMasa_Classification(t *testing.T) {
	// Walk three years of consecutive lunar months. Every classification
	// must be one of the three kinds with a sane month index, and an
	// intercalary month must show up roughly once per 32.5 months.
	ahar := aharFor(2023, 1, 1)
	adhikaCount := 0
	for i := 0; i < 37; i++ {
		st := AdhikaMasa(ahar + float64(i)*SynodicMonth)
		switch st.Kind {
		case MasaAdhika:
			adhikaCount++
			if st.Month < 0 || st.Month > 11 {
				t.Errorf("month %d: adhika month index %d out of range", i, st.Month)
			}
		case MasaKshaya:
			if st.Month < 0 || st.Month > 11 {
				t.Errorf("month %d: kshaya month index %d out of range", i, st.Month)
			}
		case MasaNormal:
			// ordinary
		default:
			t.Errorf("month %d: unknown kind %d", i, st.Kind)
		}
	}

	if adhikaCount == 0 {
		t.Error("no adhika month found in 37 lunar months; expected at least one")
	}
}

func TestLunarMonth_IndexRange(t *testing.T) {
	for _, s := range []struct{ y, m, d int }{{2024, 4, 13}, {2024, 10, 3}, {2025, 7, 1}} {
		month, _ := LunarMonth(aharFor(s.y, s.m, s.d))
		if month < 0 || month > 11 {
			t.Errorf("LunarMonth for %d-%d-%d = %d, out of range", s.y, s.m, s.d, month)
		}
	}
}
