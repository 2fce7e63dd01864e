package bikram

import "strings"

// monthNamesNp are the Sanskrit-derived solar month names. The same list
// names lunar months, so event definitions match against these strings.
var monthNamesNp = [12]string{
	"वैशाख", "ज्येष्ठ", "आषाढ", "श्रावण", "भाद्रपद", "आश्विन",
	"कार्तिक", "मार्गशीर्ष", "पौष", "माघ", "फाल्गुन", "चैत्र",
}

var monthNamesEn = [12]string{
	"Baisakh", "Jestha", "Asar", "Shrawan", "Bhadra", "Ashoj",
	"Kartik", "Mangsir", "Poush", "Magh", "Falgun", "Chaitra",
}

var weekdayNamesNp = [7]string{
	"आइतबार", "सोमबार", "मङ्गलबार", "बुधबार", "बिहीबार", "शुक्रबार", "शनिबार",
}

var weekdayNamesEn = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// MonthNameNp returns the Nepali name of a BS month (1-12).
func MonthNameNp(month int) string {
	return monthNamesNp[month-1]
}

// MonthNameEn returns the romanized name of a BS month (1-12).
func MonthNameEn(month int) string {
	return monthNamesEn[month-1]
}

// WeekdayNameNp returns the Nepali weekday name (0=Sunday).
func WeekdayNameNp(weekday int) string {
	return weekdayNamesNp[weekday]
}

// WeekdayNameEn returns the English weekday name (0=Sunday).
func WeekdayNameEn(weekday int) string {
	return weekdayNamesEn[weekday]
}

const devanagariDigits = "०१२३४५६७८९"

// ToDevanagari replaces ASCII digits in s with Devanagari digits.
func ToDevanagari(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune([]rune(devanagariDigits)[r-'0'])
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FromDevanagari replaces Devanagari digits in s with ASCII digits.
func FromDevanagari(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '०' && r <= '९' {
			b.WriteRune('0' + (r - '०'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
