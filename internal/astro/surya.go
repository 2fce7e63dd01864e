package astro

import "math"

// Surya Siddhanta constants. These are fixed by the tradition and are
// never configurable.
const (
	// KaliEpoch is the Julian Day of the Kali Yuga epoch; Ahargana 0.
	KaliEpoch = 588465.5

	// YugaCivilDays is the number of civil days in a Maha Yuga,
	// star rotations minus sun rotations.
	YugaCivilDays = 1577917828

	// Rotation counts per Maha Yuga.
	YugaRotationStar     = 1582237828
	YugaRotationSun      = 4320000
	YugaRotationMoon     = 57753336
	YugaRotationCandroca = 488203 // lunar apogee

	// SynodicMonth is the mean new-moon-to-new-moon interval in days.
	SynodicMonth = 29.530588853
)

// Manda (equation of center) parameters: apogee longitude of the Sun and
// epicycle circumferences, all in degrees.
var (
	apogeeSun = 77 + 17.0/60

	circumSun  = 13 + 50.0/60
	circumMoon = 31 + 50.0/60
)

// rad converts between degrees and radians: degrees / rad = radians.
const rad = 180 / math.Pi

// Zero360 reduces an angle to [0, 360).
func Zero360(x float64) float64 {
	return x - math.Floor(x/360)*360
}

func sinDeg(deg float64) float64 { return math.Sin(deg / rad) }

func cosDeg(deg float64) float64 { return math.Cos(deg / rad) }

func arcsinDeg(x float64) float64 { return math.Asin(x) * rad }

// MeanLongitude returns the mean ecliptic longitude in [0, 360) of a
// body with the given rotation count at the given Ahargana.
func MeanLongitude(ahar float64, rotation int) float64 {
	return Zero360(float64(rotation) * ahar * 360 / YugaCivilDays)
}

// mandaEquation is the equation-of-center correction: the arcsine of the
// epicycle-scaled sine of the mean anomaly, in degrees.
func mandaEquation(meanLong, apogee, circ float64) float64 {
	return arcsinDeg(circ / 360 * sinDeg(meanLong-apogee))
}

// TrueLongitudeSun returns the Sun's true ecliptic longitude at ahar.
func TrueLongitudeSun(ahar float64) float64 {
	mean := MeanLongitude(ahar, YugaRotationSun)
	return Zero360(mean - mandaEquation(mean, apogeeSun, circumSun))
}

// TrueLongitudeMoon returns the Moon's true ecliptic longitude at ahar.
// The lunar apogee is itself a mean motion (Candrocca) offset by 90°.
func TrueLongitudeMoon(ahar float64) float64 {
	mean := MeanLongitude(ahar, YugaRotationMoon)
	apogee := MeanLongitude(ahar, YugaRotationCandroca) + 90
	return Zero360(mean - mandaEquation(mean, apogee, circumMoon))
}

// Tithi returns the lunar day as a float in [0, 30): the solar-lunar
// elongation divided by the 12° each tithi spans.
func Tithi(sunLong, moonLong float64) float64 {
	return Zero360(moonLong-sunLong) / 12
}

// Elongation returns the Moon-minus-Sun longitude difference in [0, 360).
func Elongation(ahar float64) float64 {
	return Zero360(TrueLongitudeMoon(ahar) - TrueLongitudeSun(ahar))
}
