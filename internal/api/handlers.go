package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nepcal/panchanga-api/internal/bikram"
	"github.com/nepcal/panchanga-api/internal/config"
	"github.com/nepcal/panchanga-api/internal/database"
	"github.com/nepcal/panchanga-api/internal/panchanga"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	calc    *panchanga.Calculator
	db      *database.DB // nil when events come from YAML or embedded defaults
	cfg     *config.Config
	logger  *slog.Logger
	metrics *Metrics
}

// NewHandlers creates a new Handlers instance. db may be nil.
func NewHandlers(calc *panchanga.Calculator, db *database.DB, cfg *config.Config, logger *slog.Logger, metrics *Metrics) *Handlers {
	return &Handlers{
		calc:    calc,
		db:      db,
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
	}
}

// parseDate parses a YYYY-MM-DD path segment into a date-only time.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t.UTC(), nil
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.Health(r.Context()); err != nil {
			h.logger.Warn("health check failed", slog.Any("error", err))
			WriteUnavailable(w, "Database unhealthy")
			return
		}
	}

	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// calculatorFor honors optional lat, lon and tz query parameters that
// override the configured observer location. Out-of-range values are
// rejected by the caller via the returned error.
func (h *Handlers) calculatorFor(r *http.Request) (*panchanga.Calculator, error) {
	q := r.URL.Query()
	if q.Get("lat") == "" && q.Get("lon") == "" && q.Get("tz") == "" {
		return h.calc, nil
	}

	lat, lon, tz := h.cfg.Latitude, h.cfg.Longitude, h.cfg.Timezone
	parse := func(name string, dst *float64, min, max float64) error {
		s := q.Get(name)
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < min || v > max {
			return fmt.Errorf("%s must be a number between %g and %g", name, min, max)
		}
		*dst = v
		return nil
	}
	if err := parse("lat", &lat, -90, 90); err != nil {
		return nil, err
	}
	if err := parse("lon", &lon, -180, 180); err != nil {
		return nil, err
	}
	if err := parse("tz", &tz, -12, 14); err != nil {
		return nil, err
	}
	return h.calc.At(lat, lon, tz), nil
}

// GetToday handles GET /api/v1/today
func (h *Handlers) GetToday(w http.ResponseWriter, r *http.Request) {
	calc, err := h.calculatorFor(r)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	result := calc.Calculate(panchanga.TodayInNepal())
	h.observeResult(result)
	WriteSuccess(w, result)
}

// GetPanchanga handles GET /api/v1/panchanga/{date}
func (h *Handlers) GetPanchanga(w http.ResponseWriter, r *http.Request) {
	dateStr := chi.URLParam(r, "date")
	date, err := parseDate(dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr))
		return
	}

	calc, err := h.calculatorFor(r)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	result := calc.Calculate(date)
	h.observeResult(result)
	WriteSuccess(w, result)
}

func (h *Handlers) observeResult(result panchanga.Result) {
	h.metrics.PanchangaComputed.Inc()
	h.metrics.EventsMatchedTotal.Add(float64(len(result.Events)))
}

// conversionToBS is the response body for GET /api/v1/convert/to-bs.
type conversionToBS struct {
	Gregorian string      `json:"gregorian"`
	Bikram    bikram.Date `json:"bikram"`
	Weekday   string      `json:"weekday"`
}

// ConvertToBS handles GET /api/v1/convert/to-bs/{date}
// The path date is Gregorian.
func (h *Handlers) ConvertToBS(w http.ResponseWriter, r *http.Request) {
	dateStr := chi.URLParam(r, "date")
	date, err := parseDate(dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr))
		return
	}

	bs := bikram.FromGregorian(date.Year(), int(date.Month()), date.Day())
	h.metrics.CountConversion("to_bs", bs.IsComputed)

	WriteSuccess(w, conversionToBS{
		Gregorian: dateStr,
		Bikram:    bs,
		Weekday:   date.Weekday().String(),
	})
}

// conversionToAD is the response body for GET /api/v1/convert/to-ad.
type conversionToAD struct {
	BSYear     int    `json:"bs_year"`
	BSMonth    int    `json:"bs_month"`
	BSDay      int    `json:"bs_day"`
	MonthName  string `json:"month_name"`
	Gregorian  string `json:"gregorian"`
	Weekday    string `json:"weekday"`
	IsComputed bool   `json:"is_computed"`
}

// ConvertToAD handles GET /api/v1/convert/to-ad/{date}
// The path date is a Bikram Sambat date in YYYY-MM-DD form.
func (h *Handlers) ConvertToAD(w http.ResponseWriter, r *http.Request) {
	dateStr := chi.URLParam(r, "date")

	var bsYear, bsMonth, bsDay int
	if _, err := fmt.Sscanf(dateStr, "%d-%d-%d", &bsYear, &bsMonth, &bsDay); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid BS date format: %s. Use YYYY-MM-DD", dateStr))
		return
	}
	if !bikram.IsValidDate(bsYear, bsMonth, bsDay) {
		WriteBadRequest(w, fmt.Sprintf("Invalid BS date: %s", dateStr))
		return
	}

	gYear, gMonth, gDay, computed := bikram.ToGregorian(bsYear, bsMonth, bsDay)
	h.metrics.CountConversion("to_ad", computed)

	g := time.Date(gYear, time.Month(gMonth), gDay, 0, 0, 0, 0, time.UTC)
	WriteSuccess(w, conversionToAD{
		BSYear:     bsYear,
		BSMonth:    bsMonth,
		BSDay:      bsDay,
		MonthName:  bikram.MonthNameNp(bsMonth),
		Gregorian:  g.Format("2006-01-02"),
		Weekday:    g.Weekday().String(),
		IsComputed: computed,
	})
}

// monthResponse is the response body for GET /api/v1/bs/{year}/{month}.
type monthResponse struct {
	bikram.MonthInfo
	MonthNameEn string     `json:"month_name_en"`
	Days        []monthDay `json:"days"`
}

type monthDay struct {
	Day       int    `json:"day"`
	Gregorian string `json:"gregorian"`
	Weekday   int    `json:"weekday"` // 0=Sunday
}

// GetMonth handles GET /api/v1/bs/{year}/{month}
func (h *Handlers) GetMonth(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		WriteBadRequest(w, "Invalid BS year")
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		WriteBadRequest(w, "BS month must be between 1 and 12")
		return
	}

	info := bikram.GetMonthInfo(year, month)
	resp := monthResponse{
		MonthInfo:   info,
		MonthNameEn: bikram.MonthNameEn(month),
		Days:        make([]monthDay, 0, info.TotalDays),
	}
	for d := 1; d <= info.TotalDays; d++ {
		gy, gm, gd, _ := bikram.ToGregorian(year, month, d)
		resp.Days = append(resp.Days, monthDay{
			Day:       d,
			Gregorian: fmt.Sprintf("%04d-%02d-%02d", gy, gm, gd),
			Weekday:   (info.StartWeekday + d - 1) % 7,
		})
	}

	WriteSuccess(w, resp)
}

// GetEvents handles GET /api/v1/events/{date}
// The date is Gregorian; the response is the day's matched events plus
// enough calendar context to render them.
func (h *Handlers) GetEvents(w http.ResponseWriter, r *http.Request) {
	dateStr := chi.URLParam(r, "date")
	date, err := parseDate(dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr))
		return
	}

	result := h.calc.Calculate(date)
	h.metrics.EventsMatchedTotal.Add(float64(len(result.Events)))

	WriteSuccess(w, map[string]any{
		"gregorian":     dateStr,
		"bikram_sambat": result.BikramSambat,
		"bs_year":       result.BSYear,
		"bs_month":      result.BSMonth,
		"bs_day":        result.BSDay,
		"is_holiday":    result.IsHoliday,
		"events":        result.Events,
	})
}

// GetCalendarICS handles GET /api/v1/calendar.ics?year=2082
// Exports every event of one BS year as an iCalendar feed.
func (h *Handlers) GetCalendarICS(w http.ResponseWriter, r *http.Request) {
	year := 0
	if s := r.URL.Query().Get("year"); s != "" {
		var err error
		if year, err = strconv.Atoi(s); err != nil {
			WriteBadRequest(w, "Invalid BS year")
			return
		}
	} else {
		today := panchanga.TodayInNepal()
		year = bikram.FromGregorian(today.Year(), int(today.Month()), today.Day()).Year
	}

	feed, err := h.buildYearFeed(year)
	if err != nil {
		h.logger.Error("build ics feed", slog.Int("year", year), slog.Any("error", err))
		WriteInternalError(w, "Failed to build calendar feed")
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=panchanga-%d.ics", year))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(feed))
}
