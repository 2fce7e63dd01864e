// Package panchanga computes the Hindu almanac for a civil day: tithi,
// paksha, nakshatra, yoga, karana, rashis, lunar month, sunrise and
// sunset, the Bikram Sambat date, and the day's events. Calculations
// follow the Surya Siddhanta mean-and-manda model in internal/astro.
package panchanga

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/nepcal/panchanga-api/internal/astro"
	"github.com/nepcal/panchanga-api/internal/bikram"
	"github.com/nepcal/panchanga-api/internal/events"
)

// Kathmandu is the default observer location.
const (
	KathmanduLatitude  = 27.7172
	KathmanduLongitude = 85.3240
	KathmanduTimezone  = 5.75 // UTC+5:45
)

// Result is the full almanac for one civil day. String fields are
// Devanagari; the numeric BS fields let API clients do their own
// formatting.
type Result struct {
	GregorianDate string `json:"gregorian_date"`
	BikramSambat  string `json:"bikram_sambat"` // e.g. "२०८१ वैशाख १"

	BSYear      int    `json:"bs_year"`
	BSMonth     int    `json:"bs_month"`
	BSDay       int    `json:"bs_day"`
	MonthName   string `json:"month_name"`
	MonthNameEn string `json:"month_name_en"`
	Weekday     string `json:"weekday"`
	WeekdayEn   string `json:"weekday_en"`

	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`

	Tithi      string `json:"tithi"`
	Paksha     string `json:"paksha"`
	LunarMonth string `json:"lunar_month"` // "अधिक "-prefixed when intercalary
	Nakshatra  string `json:"nakshatra"`
	Yoga       string `json:"yoga"`
	Karana     string `json:"karana"`
	SunRashi   string `json:"sun_rashi"`
	MoonRashi  string `json:"moon_rashi"`

	AdhikaMasa string `json:"adhika_masa"` // "अधिक <month>", "क्षय <month>" or "छैन"

	Events    []events.Event `json:"events"`
	IsHoliday bool           `json:"is_holiday"`

	IsComputed bool `json:"is_computed"`
}

// Cache memoizes Results keyed by civil date. Implementations must be
// safe for concurrent use.
type Cache interface {
	Get(key string) (Result, bool)
	Put(key string, r Result)
}

// memoryCache is an unbounded in-process Cache. Results are pure
// functions of the date, so entries never invalidate; the key space is
// one entry per day queried, which stays small for any realistic use.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string]Result
}

// NewMemoryCache returns an empty in-process Cache.
func NewMemoryCache() Cache {
	return &memoryCache{entries: make(map[string]Result)}
}

func (c *memoryCache) Get(key string) (Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.entries[key]
	return r, ok
}

func (c *memoryCache) Put(key string, r Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = r
}

// Calculator computes almanacs for a fixed observer location and event
// set. It is safe for concurrent use.
type Calculator struct {
	latitude  float64
	longitude float64
	timezone  float64
	events    *events.Set
	cache     Cache
}

// NewCalculator returns a Calculator for the Kathmandu observer. A nil
// event set falls back to the embedded defaults; a nil cache gets an
// in-process one.
func NewCalculator(set *events.Set, cache Cache) *Calculator {
	if set == nil {
		set = events.Default()
	}
	if cache == nil {
		cache = NewMemoryCache()
	}
	return &Calculator{
		latitude:  KathmanduLatitude,
		longitude: KathmanduLongitude,
		timezone:  KathmanduTimezone,
		events:    set,
		cache:     cache,
	}
}

// NewCalculatorAt is NewCalculator for an arbitrary observer.
func NewCalculatorAt(set *events.Set, cache Cache, lat, lon, tz float64) *Calculator {
	c := NewCalculator(set, cache)
	c.latitude, c.longitude, c.timezone = lat, lon, tz
	return c
}

// At derives a Calculator for a different observer, sharing the event
// set but not the cache: cache keys are dates only, so entries are valid
// for a single location.
func (c *Calculator) At(lat, lon, tz float64) *Calculator {
	if lat == c.latitude && lon == c.longitude && tz == c.timezone {
		return c
	}
	return NewCalculatorAt(c.events, nil, lat, lon, tz)
}

// Ahargana converts a Julian Day to days elapsed since the Kali epoch,
// adjusted from midnight to the following mean sunrise at the observer's
// longitude.
func Ahargana(jd, lon, tz float64) float64 {
	return jd - astro.KaliEpoch + 0.25 + ((lon/15 - tz) / 24)
}

// nepalTZ is the fixed UTC+5:45 offset; Nepal does not observe DST.
var nepalTZ = time.FixedZone("Asia/Kathmandu", 5*3600+45*60)

// TodayInNepal returns the current civil date in Nepal at midnight UTC,
// the normal form for date-only values in this package.
func TodayInNepal() time.Time {
	now := time.Now().In(nepalTZ)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// basics is the lunar-calendar position of one civil day, enough for
// event matching without paying for sunrise or the month status.
type basics struct {
	ahar       float64
	lunarMonth string
	isAdhika   bool
	paksha     string
	tithiName  string
}

func (c *Calculator) basicsFor(date time.Time) basics {
	jd := astro.ToJulianDay(date.Year(), int(date.Month()), date.Day())
	ahar := Ahargana(jd, c.longitude, c.timezone)

	sunLong := astro.TrueLongitudeSun(ahar)
	moonLong := astro.TrueLongitudeMoon(ahar)
	tithiVal := astro.Tithi(sunLong, moonLong)

	tithiNum := int(math.Floor(tithiVal)) + 1
	paksha := PakshaShukla
	tithiDay := tithiNum
	if tithiNum > 15 {
		paksha = PakshaKrishna
		tithiDay = tithiNum - 15
	}

	month, isAdhika := astro.LunarMonth(ahar)
	return basics{
		ahar:       ahar,
		lunarMonth: bikram.MonthNameNp(month + 1),
		isAdhika:   isAdhika,
		paksha:     paksha,
		tithiName:  tithiName(tithiDay, paksha),
	}
}

// masaStatusText renders the month status the way the almanac prints
// it: the intercalated or omitted month by name, or "छैन" (none).
func masaStatusText(s astro.MasaStatus) string {
	switch s.Kind {
	case astro.MasaAdhika:
		return "अधिक " + bikram.MonthNameNp(s.Month+1)
	case astro.MasaKshaya:
		return "क्षय " + bikram.MonthNameNp(s.Month+1)
	default:
		return "छैन"
	}
}

// dayContext resolves everything the event matcher needs: today's and
// yesterday's lunar positions for the single-fire rule, and whether the
// previous lunar month was omitted so its observances shift forward.
func (c *Calculator) dayContext(date time.Time, bs bikram.Date, today basics) events.DayContext {
	yesterday := c.basicsFor(date.AddDate(0, 0, -1))

	var kshaya string
	prev := astro.AdhikaMasa(today.ahar - astro.SynodicMonth)
	if prev.Kind == astro.MasaKshaya {
		kshaya = bikram.MonthNameNp(prev.Month + 1)
	}

	return events.DayContext{
		GregorianYear:  date.Year(),
		GregorianMonth: int(date.Month()),
		GregorianDay:   date.Day(),
		BSYear:         bs.Year,
		BSMonth:        bs.Month,
		BSDay:          bs.Day,
		Today: events.LunarDay{
			Month:    today.lunarMonth,
			Paksha:   today.paksha,
			Tithi:    today.tithiName,
			IsAdhika: today.isAdhika,
		},
		Yesterday: events.LunarDay{
			Month:    yesterday.lunarMonth,
			Paksha:   yesterday.paksha,
			Tithi:    yesterday.tithiName,
			IsAdhika: yesterday.isAdhika,
		},
		PrevMonthKshaya: kshaya,
	}
}

// Calculate computes the almanac for one civil day. Only the date part
// of the argument is read.
func (c *Calculator) Calculate(date time.Time) Result {
	key := fmt.Sprintf("%04d-%02d-%02d", date.Year(), int(date.Month()), date.Day())
	if r, ok := c.cache.Get(key); ok {
		return r
	}

	jd := astro.ToJulianDay(date.Year(), int(date.Month()), date.Day())
	ahar := Ahargana(jd, c.longitude, c.timezone)

	sunLong := astro.TrueLongitudeSun(ahar)
	moonLong := astro.TrueLongitudeMoon(ahar)
	tithiVal := astro.Tithi(sunLong, moonLong)

	today := c.basicsFor(date)
	bs := bikram.FromGregorian(date.Year(), int(date.Month()), date.Day())
	matched := c.events.ForDate(c.dayContext(date, bs, today))

	lunarMonth := today.lunarMonth
	if today.isAdhika {
		lunarMonth = "अधिक " + lunarMonth
	}

	sunrise, sunset := astro.SunriseSunset(date, c.latitude, c.longitude, c.timezone)
	weekday := bikram.Weekday(jd)

	r := Result{
		GregorianDate: date.Format("Monday, January 2, 2006"),
		BikramSambat: bikram.ToDevanagari(fmt.Sprintf("%d", bs.Year)) + " " +
			bs.MonthName + " " + bikram.ToDevanagari(fmt.Sprintf("%d", bs.Day)),

		BSYear:      bs.Year,
		BSMonth:     bs.Month,
		BSDay:       bs.Day,
		MonthName:   bs.MonthName,
		MonthNameEn: bikram.MonthNameEn(bs.Month),
		Weekday:     bikram.WeekdayNameNp(weekday),
		WeekdayEn:   bikram.WeekdayNameEn(weekday),

		Sunrise: sunrise,
		Sunset:  sunset,

		Tithi:      today.tithiName,
		Paksha:     today.paksha,
		LunarMonth: lunarMonth,
		Nakshatra:  nakshatraNames[sector(moonLong, 27)],
		Yoga:       yogaNames[sector(astro.Zero360(sunLong+moonLong), 27)],
		Karana:     karanaName(int(math.Floor(2 * tithiVal))),
		SunRashi:   rashiNames[sector(sunLong, 12)],
		MoonRashi:  rashiNames[sector(moonLong, 12)],

		AdhikaMasa: masaStatusText(astro.AdhikaMasa(ahar)),

		Events:     matched,
		IsComputed: bs.IsComputed,
	}
	for _, e := range matched {
		if e.Holiday {
			r.IsHoliday = true
			break
		}
	}

	c.cache.Put(key, r)
	return r
}

// sector maps a longitude to its index among n equal divisions of the
// circle.
func sector(longitude float64, n int) int {
	idx := int(math.Floor(longitude / (360 / float64(n))))
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}
	return idx
}
