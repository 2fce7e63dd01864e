package api

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/nepcal/panchanga-api/internal/bikram"
)

// buildYearFeed walks every civil day of one BS year and emits the
// matched events as all-day VEVENTs. Lunar observances land on the day
// they fire, so a feed for an adhika year is simply missing them, the
// same as the almanac itself.
func (h *Handlers) buildYearFeed(bsYear int) (string, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//nepcal//panchanga-api//NP")
	cal.SetCalscale("GREGORIAN")

	now := time.Now().UTC()

	for month := 1; month <= 12; month++ {
		total := bikram.DaysInMonth(bsYear, month)
		if total <= 0 {
			return "", fmt.Errorf("no month length for %d-%d", bsYear, month)
		}
		for day := 1; day <= total; day++ {
			gy, gm, gd, _ := bikram.ToGregorian(bsYear, month, day)
			date := time.Date(gy, time.Month(gm), gd, 0, 0, 0, 0, time.UTC)

			result := h.calc.Calculate(date)
			for i, e := range result.Events {
				uid := fmt.Sprintf("%04d%02d%02d-%d@panchanga", gy, gm, gd, i)
				ev := cal.AddEvent(uid)
				ev.SetDtStampTime(now)
				ev.SetAllDayStartAt(date)
				ev.SetAllDayEndAt(date.AddDate(0, 0, 1))

				summary := e.Name
				if e.NameEn != "" && e.NameEn != e.Name {
					summary += " (" + e.NameEn + ")"
				}
				ev.SetSummary(summary)

				desc := e.Detail
				if desc == "" {
					desc = e.DetailEn
				}
				if desc != "" {
					ev.SetDescription(desc)
				}
				if e.Category != "" {
					ev.SetProperty(ical.ComponentPropertyCategories, e.Category)
				}
			}
		}
	}

	return cal.Serialize(), nil
}
