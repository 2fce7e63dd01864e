package astro

import "math"

// The root finders below share one structure: a handful of coarse
// correction passes using the Moon's mean approach rate relative to the
// Sun (12.19°/day) to land within ±2 days of the event, then 30 bisection
// iterations. Elongation lives on [0, 360), so the bisection keys off
// which side of the 180° midpoint a sample falls on rather than a sign
// change. The fixed iteration counts bound the search; they are
// empirically sufficient for every date the calendar can express.

const (
	coarsePasses     = 10
	bisectIterations = 30
	meanApproachRate = 12.19 // degrees of elongation per day
)

// FindNewMoon locates the Ahargana of the new moon nearest ahar, where
// the solar-lunar elongation crosses 0°.
func FindNewMoon(ahar float64) float64 {
	guess := ahar
	for i := 0; i < coarsePasses; i++ {
		elong := Elongation(guess)
		if elong < 5 || elong > 355 {
			break
		}
		if elong < 180 {
			guess -= elong / meanApproachRate
		} else {
			guess += (360 - elong) / meanApproachRate
		}
	}
	lo, hi := guess-2, guess+2
	for j := 0; j < bisectIterations; j++ {
		mid := (lo + hi) / 2
		if Elongation(mid) < 180 {
			hi = mid
		} else {
			lo = mid
		}
	}
	return (lo + hi) / 2
}

// FindPurnima locates the Ahargana of the full moon nearest ahar, where
// the elongation crosses 180°.
func FindPurnima(ahar float64) float64 {
	guess := ahar
	for i := 0; i < coarsePasses; i++ {
		elong := Elongation(guess)
		if math.Abs(elong-180) < 5 {
			break
		}
		guess += (180 - elong) / meanApproachRate
	}
	lo, hi := guess-2, guess+2
	for j := 0; j < bisectIterations; j++ {
		mid := (lo + hi) / 2
		if Elongation(mid) < 180 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// MasaKind classifies a lunar month against the solar zodiac.
type MasaKind int

const (
	// MasaNormal: exactly one solar sign transit in the month.
	MasaNormal MasaKind = iota
	// MasaAdhika: an intercalary month with no sign transit.
	MasaAdhika
	// MasaKshaya: an omitted month, two or more transits.
	MasaKshaya
)

// MasaStatus reports whether the lunar month containing an Ahargana is
// ordinary, intercalary (adhika) or omitted (kshaya), and which solar
// month (0-11) the status attaches to.
type MasaStatus struct {
	Kind  MasaKind
	Month int // unchanged sign for adhika, skipped sign for kshaya
}

// countSignTransits walks a lunar month day by day and counts how many
// 30° sign boundaries the Sun crosses. The sampling resolution (one day,
// 29 samples) and the wraparound rule (a sign index that decreases has
// wrapped past Pisces, so add 12) both matter: coarser sampling or naive
// subtraction silently misclassify boundary months.
func countSignTransits(monthStart float64) (crossings, currentSign int) {
	currentSign = int(math.Floor(TrueLongitudeSun(monthStart) / 30))
	for i := 1; i <= 29; i++ {
		checkSign := int(math.Floor(TrueLongitudeSun(monthStart+float64(i)) / 30))
		if checkSign < currentSign {
			checkSign += 12
		}
		if checkSign > currentSign {
			crossings += checkSign - currentSign
			currentSign = checkSign % 12
		}
	}
	return crossings, currentSign
}

// AdhikaMasa classifies the lunar month containing ahar.
func AdhikaMasa(ahar float64) MasaStatus {
	monthStart := FindNewMoon(ahar)
	if monthStart > ahar {
		monthStart = FindNewMoon(monthStart - SynodicMonth)
	}
	monthEnd := FindNewMoon(monthStart + SynodicMonth)

	startSign := int(math.Floor(TrueLongitudeSun(monthStart) / 30))
	endSign := int(math.Floor(TrueLongitudeSun(monthEnd) / 30))

	crossings, currentSign := countSignTransits(monthStart)
	if endSign < currentSign {
		endSign += 12
	}
	if endSign > currentSign {
		crossings += endSign - currentSign
	}

	switch {
	case crossings == 0:
		return MasaStatus{Kind: MasaAdhika, Month: startSign}
	case crossings >= 2:
		return MasaStatus{Kind: MasaKshaya, Month: (startSign + 1) % 12}
	default:
		return MasaStatus{Kind: MasaNormal}
	}
}

// LunarMonth names the Purnimanta lunar month containing ahar by the
// Sun's zodiac sign at the month's ending full moon, and reports whether
// the month is intercalary. The returned month is a 0-11 solar month
// index.
func LunarMonth(ahar float64) (month int, isAdhika bool) {
	monthStart := FindNewMoon(ahar)
	if monthStart > ahar {
		monthStart = FindNewMoon(monthStart - SynodicMonth)
	}
	purnima := FindPurnima(monthStart + SynodicMonth/2)
	month = int(math.Floor(TrueLongitudeSun(purnima) / 30))

	crossings, _ := countSignTransits(monthStart)
	return month, crossings == 0
}
