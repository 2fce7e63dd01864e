package astro

import (
	"fmt"
	"math"
	"time"
)

// TimeNotApplicable is returned for sunrise or sunset when the Sun never
// crosses the horizon on the given day (polar day or night).
const TimeNotApplicable = "N/A"

// SunriseSunset computes local clock times of sunrise and sunset for the
// given date and observer, using a solar-declination/hour-angle formula
// with an equation-of-time correction. lon is degrees east, tz the UTC
// offset in hours. Results are "HH:MM" strings, or TimeNotApplicable
// when the hour-angle arccosine has no solution.
func SunriseSunset(date time.Time, lat, lon, tz float64) (sunrise, sunset string) {
	dayOfYear := float64(date.YearDay())

	b := (360.0 / 365.0) * (dayOfYear - 81) / rad
	eot := 9.87*math.Sin(2*b) - 7.53*math.Cos(b) - 1.5*math.Sin(b)

	lstm := 15 * tz
	tc := (4*(lon-lstm) + eot) / 60

	declination := -23.45 * cosDeg(360.0/365.0*(dayOfYear+10))

	// -0.833° accounts for refraction and the solar disc radius.
	cosH := (sinDeg(-0.833) - sinDeg(lat)*sinDeg(declination)) /
		(cosDeg(lat) * cosDeg(declination))
	hourAngle := math.Acos(cosH) * rad

	return formatHours(12 - hourAngle/15 - tc), formatHours(12 + hourAngle/15 - tc)
}

func formatHours(h float64) string {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return TimeNotApplicable
	}
	hr := int(math.Floor(h))
	min := int(math.Round((h - float64(hr)) * 60))
	if min == 60 {
		hr++
		min = 0
	}
	return fmt.Sprintf("%02d:%02d", hr, min)
}
