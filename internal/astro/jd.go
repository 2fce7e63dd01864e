// Package astro implements the astronomical core of the Bikram Sambat
// calendar: Julian Day arithmetic, Surya Siddhanta longitude computation
// for the Sun and Moon, lunar phase root-finding, and sunrise/sunset.
//
// All angles are in degrees. Time is expressed either as a Julian Day
// Number or as an Ahargana, the count of civil days elapsed since the
// Kali Yuga epoch (JD 588465.5).
package astro

import "math"

// ToJulianDay converts a proleptic Gregorian calendar date to a Julian
// Day Number. Month is 1-12. The result refers to midnight UT, hence the
// trailing .5.
func ToJulianDay(year, month, day int) float64 {
	y := year
	m := month
	if m <= 2 {
		y--
		m += 12
	}
	a := math.Floor(float64(y) / 100)
	b := 2 - a + math.Floor(a/4)
	return math.Floor(365.25*(float64(y)+4716)) +
		math.Floor(30.6001*(float64(m)+1)) +
		float64(day) + b - 1524.5
}

// FromJulianDay converts a Julian Day Number back to a Gregorian
// calendar date. The Julian/Gregorian branch sits at JD 2299161
// (1582-10-15); every date this system handles is far past it.
func FromJulianDay(jd float64) (year, month, day int) {
	jd += 0.5
	z := math.Floor(jd)
	f := jd - z

	var a float64
	if z < 2299161 {
		a = z
	} else {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}

	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day = int(math.Floor(b - d - math.Floor(30.6001*e) + f))
	if e < 14 {
		month = int(e) - 1
	} else {
		month = int(e) - 13
	}
	if month > 2 {
		year = int(c) - 4716
	} else {
		year = int(c) - 4715
	}
	return year, month, day
}
