package bikram

import (
	"github.com/nepcal/panchanga-api/internal/astro"
)

// Date is a Bikram Sambat calendar date. Month runs 1-12 (Baisakh=1).
// IsComputed reports that the date came from the astronomical fallback
// rather than the table, so it is an approximation; callers must surface
// the flag.
type Date struct {
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	Day        int    `json:"day"`
	MonthName  string `json:"month_name"`
	IsComputed bool   `json:"is_computed"`
}

// MonthInfo describes one BS month for rendering a calendar grid.
type MonthInfo struct {
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	TotalDays    int    `json:"total_days"`
	StartWeekday int    `json:"start_weekday"` // 0=Sunday, weekday of day 1
	MonthName    string `json:"month_name"`
	IsComputed   bool   `json:"is_computed"`
}

// epochJD is the Julian Day of 1 Baisakh 2000 BS.
var epochJD = astro.ToJulianDay(epochYear, epochMonth, epochDay)

// FromGregorian converts a Gregorian date to a Bikram Sambat date.
// Inside the tabulated window the conversion walks the month-length
// table and is exact; outside it the Saura Masa derivation takes over
// and the result carries IsComputed.
func FromGregorian(gYear, gMonth, gDay int) Date {
	jd := astro.ToJulianDay(gYear, gMonth, gDay)

	// The table path needs the target to sit after the epoch and leave
	// the last ~56-year overlap as a safety margin before the table end.
	if jd >= epochJD && gYear <= EndYear-56 {
		offset := int(jd - epochJD)
		for y := range npMonthsData {
			yearData := &npMonthsData[y]
			if offset < yearData[12] {
				for m := 0; m < 12; m++ {
					if offset < yearData[m] {
						return Date{
							Year:      StartYear + y,
							Month:     m + 1,
							Day:       offset + 1,
							MonthName: MonthNameNp(m + 1),
						}
					}
					offset -= yearData[m]
				}
			}
			offset -= yearData[12]
		}
	}

	return fromGregorianAstronomical(gYear, gMonth, gDay)
}

// ToGregorian converts a Bikram Sambat date to a Gregorian date.
// computed reports that the astronomical fallback was used.
func ToGregorian(bsYear, bsMonth, bsDay int) (gYear, gMonth, gDay int, computed bool) {
	if bsYear >= StartYear && bsYear <= EndYear {
		offset := 0
		for y := StartYear; y < bsYear; y++ {
			offset += npMonthsData[y-StartYear][12]
		}
		yearData := &npMonthsData[bsYear-StartYear]
		for m := 0; m < bsMonth-1; m++ {
			offset += yearData[m]
		}
		offset += bsDay - 1

		gYear, gMonth, gDay = astro.FromJulianDay(epochJD + float64(offset))
		return gYear, gMonth, gDay, false
	}

	gYear, gMonth, gDay = toGregorianAstronomical(bsYear, bsMonth, bsDay)
	return gYear, gMonth, gDay, true
}

// DaysInMonth returns the number of days in a BS month. Out of table
// range it differences the Julian Days of consecutive month starts,
// which may disagree with official almanacs by a day.
func DaysInMonth(bsYear, bsMonth int) int {
	if bsYear >= StartYear && bsYear <= EndYear {
		return npMonthsData[bsYear-StartYear][bsMonth-1]
	}

	nextYear, nextMonth := bsYear, bsMonth+1
	if bsMonth == 12 {
		nextYear, nextMonth = bsYear+1, 1
	}
	y1, m1, d1, _ := ToGregorian(bsYear, bsMonth, 1)
	y2, m2, d2, _ := ToGregorian(nextYear, nextMonth, 1)
	return int(astro.ToJulianDay(y2, m2, d2) - astro.ToJulianDay(y1, m1, d1))
}

// GetMonthInfo resolves a BS month to its length, its name and the
// weekday its first day falls on.
func GetMonthInfo(bsYear, bsMonth int) MonthInfo {
	gy, gm, gd, computed := ToGregorian(bsYear, bsMonth, 1)
	jd := astro.ToJulianDay(gy, gm, gd)

	return MonthInfo{
		Year:         bsYear,
		Month:        bsMonth,
		TotalDays:    DaysInMonth(bsYear, bsMonth),
		StartWeekday: Weekday(jd),
		MonthName:    MonthNameNp(bsMonth),
		IsComputed:   computed,
	}
}

// Weekday returns the day of week (0=Sunday) for a Julian Day at civil
// midnight (a value ending in .5).
func Weekday(jd float64) int {
	return (int(jd+1.5) % 7)
}

// IsValidDate reports whether a BS triple denotes a real calendar day.
// Out of table range day-of-month overflow is an accepted approximation
// artifact, so validation only applies where the table is authoritative.
func IsValidDate(bsYear, bsMonth, bsDay int) bool {
	if bsMonth < 1 || bsMonth > 12 || bsDay < 1 {
		return false
	}
	if bsYear >= StartYear && bsYear <= EndYear {
		return bsDay <= npMonthsData[bsYear-StartYear][bsMonth-1]
	}
	return bsDay <= 32
}

// -----------------------------------------------------------------------
// Astronomical fallback (Saura Masa)
// -----------------------------------------------------------------------

// sauraMasaFirstDay reports whether the civil day at ahar is the first
// day of a solar month: the Sun's longitude-within-sign is above 25°
// today and below 5° tomorrow, meaning a sign boundary is crossed
// overnight.
func sauraMasaFirstDay(ahar float64) bool {
	today := astro.TrueLongitudeSun(ahar)
	tomorrow := astro.TrueLongitudeSun(ahar + 1)
	todayMod := today - float64(int(today/30))*30
	tomorrowMod := tomorrow - float64(int(tomorrow/30))*30
	return todayMod > 25 && tomorrowMod < 5
}

// sauraMasaDay returns the solar month (0-11) and day-of-month for an
// Ahargana. The traditional definition is recursive (yesterday's day
// plus one); here it walks back to the enclosing sign-crossing day,
// bounded by the longest possible solar month.
func sauraMasaDay(ahar float64) (month, day int) {
	start := ahar
	for i := 0; i < 40 && !sauraMasaFirstDay(start); i++ {
		start--
	}

	tomorrow := astro.TrueLongitudeSun(start + 1)
	month = (int(tomorrow/30)%12 + 12) % 12
	day = int(ahar-start) + 1
	return month, day
}

// fromGregorianAstronomical derives a BS date from first principles: the
// Saura Masa day for the date's Ahargana, and the year from the elapsed
// Kali Yuga years.
func fromGregorianAstronomical(gYear, gMonth, gDay int) Date {
	ahar := astro.ToJulianDay(gYear, gMonth, gDay) - astro.KaliEpoch

	masa, day := sauraMasaDay(ahar)
	yearKali := int(ahar * astro.YugaRotationSun / astro.YugaCivilDays)
	yearSaka := yearKali - 3179

	month := masa % 12
	year := yearSaka + 135 + (masa-month)/12

	return Date{
		Year:       year,
		Month:      month + 1,
		Day:        day,
		MonthName:  MonthNameNp(month + 1),
		IsComputed: true,
	}
}

// toGregorianAstronomical inverts fromGregorianAstronomical: it seeds an
// Ahargana from the Kali Yuga year count and then steps a day at a time
// until the Saura Masa output matches the requested month and day. The
// seed lands within the target year, so the walk is short; the iteration
// cap only guards against a malformed request.
func toGregorianAstronomical(bsYear, bsMonth, bsDay int) (gYear, gMonth, gDay int) {
	yearSaka := bsYear - 135
	yearKali := yearSaka + 3179
	ahar := float64(int64(yearKali) * astro.YugaCivilDays / astro.YugaRotationSun)

	target := bsMonth - 1
	for i := 0; i < 5000; i++ {
		m, d := sauraMasaDay(ahar)
		if m == target && d == bsDay {
			break
		}
		if m < target || (m == target && d < bsDay) {
			ahar++
		} else {
			ahar--
		}
	}

	return astro.FromJulianDay(ahar + astro.KaliEpoch)
}
