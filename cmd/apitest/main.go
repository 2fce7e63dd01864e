// Command apitest runs a smoke test suite against a live API server.
//
// Usage:
//
//	go run ./cmd/apitest -url http://localhost:8080 -v
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// APIResponse matches the API response envelope
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// PanchangaResponse is the response for /panchanga/{date} and /today
type PanchangaResponse struct {
	BikramSambat string `json:"bikram_sambat"`
	BSYear       int    `json:"bs_year"`
	BSMonth      int    `json:"bs_month"`
	BSDay        int    `json:"bs_day"`
	Tithi        string `json:"tithi"`
	Paksha       string `json:"paksha"`
	LunarMonth   string `json:"lunar_month"`
	Nakshatra    string `json:"nakshatra"`
	Sunrise      string `json:"sunrise"`
	Sunset       string `json:"sunset"`
	IsComputed   bool   `json:"is_computed"`
}

// ConvertToBSResponse is the response for /convert/to-bs/{date}
type ConvertToBSResponse struct {
	Gregorian string `json:"gregorian"`
	Bikram    struct {
		Year       int    `json:"year"`
		Month      int    `json:"month"`
		Day        int    `json:"day"`
		MonthName  string `json:"month_name"`
		IsComputed bool   `json:"is_computed"`
	} `json:"bikram"`
}

// MonthResponse is the response for /bs/{year}/{month}
type MonthResponse struct {
	TotalDays    int    `json:"total_days"`
	StartWeekday int    `json:"start_weekday"`
	MonthName    string `json:"month_name"`
}

// HealthResponse is the response for /health
type HealthResponse struct {
	Status string `json:"status"`
}

type TestRunner struct {
	baseURL      string
	client       *http.Client
	verbose      bool
	successCount int
	errorCount   int
	errors       []string
}

func NewTestRunner(baseURL string, verbose bool) *TestRunner {
	return &TestRunner{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		verbose: verbose,
	}
}

func (tr *TestRunner) Run() {
	fmt.Println("==============================================")
	fmt.Println("Panchanga API Test Suite")
	fmt.Println("==============================================")
	fmt.Printf("Base URL: %s\n", tr.baseURL)
	fmt.Println()

	tr.testHealth()
	tr.testToday()
	tr.testConversions()
	tr.testPanchangaDates()
	tr.testMonthInfo()
	tr.testEdgeCases()

	tr.printSummary()
}

func (tr *TestRunner) testHealth() {
	tr.printSection("Health Check")

	resp, err := tr.get("/health")
	if err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	var health HealthResponse
	if err := tr.parseDataAs(resp, &health); err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	if health.Status == "healthy" {
		tr.recordSuccess("Health check passed")
	} else {
		tr.recordError("Health", fmt.Sprintf("Unexpected status: %s", health.Status))
	}
}

func (tr *TestRunner) testToday() {
	tr.printSection("Today")

	resp, err := tr.get("/api/v1/today")
	if err != nil {
		tr.recordError("Today", err.Error())
		return
	}

	var data PanchangaResponse
	if err := tr.parseDataAs(resp, &data); err != nil {
		tr.recordError("Today", err.Error())
		return
	}

	if data.BSYear == 0 || data.Tithi == "" {
		tr.recordError("Today", fmt.Sprintf("Incomplete response: %+v", data))
		return
	}
	tr.recordSuccess(fmt.Sprintf("Today: %s, %s %s",
		data.BikramSambat, data.Tithi, data.Paksha))
	tr.printPanchangaDetail(&data)
}

func (tr *TestRunner) testConversions() {
	tr.printSection("Known Conversions")

	testCases := []struct {
		date        string
		wantYear    int
		wantMonth   int
		wantDay     int
		description string
	}{
		{"2024-04-13", 2081, 1, 1, "nepali new year 2081"},
		{"2023-04-14", 2080, 1, 1, "nepali new year 2080"},
		{"1993-04-13", 2050, 1, 1, "nepali new year 2050"},
		{"2025-04-14", 2082, 1, 1, "nepali new year 2082"},
		{"2024-12-31", 2081, 9, 16, "gregorian year end"},
	}

	for _, tc := range testCases {
		resp, err := tr.get("/api/v1/convert/to-bs/" + tc.date)
		if err != nil {
			tr.recordError(tc.date, err.Error())
			continue
		}

		var data ConvertToBSResponse
		if err := tr.parseDataAs(resp, &data); err != nil {
			tr.recordError(tc.date, err.Error())
			continue
		}

		bs := data.Bikram
		if bs.Year == tc.wantYear && bs.Month == tc.wantMonth && bs.Day == tc.wantDay {
			tr.recordSuccess(fmt.Sprintf("%s -> %d-%d-%d (%s)",
				tc.date, bs.Year, bs.Month, bs.Day, tc.description))
		} else {
			tr.recordError(tc.date, fmt.Sprintf("Expected %d-%d-%d, got %d-%d-%d",
				tc.wantYear, tc.wantMonth, tc.wantDay, bs.Year, bs.Month, bs.Day))
		}
	}

	// Round trip through to-ad
	resp, err := tr.get("/api/v1/convert/to-ad/2081-01-01")
	if err != nil {
		tr.recordError("to-ad", err.Error())
		return
	}
	var ad struct {
		Gregorian string `json:"gregorian"`
	}
	if err := tr.parseDataAs(resp, &ad); err != nil {
		tr.recordError("to-ad", err.Error())
		return
	}
	if ad.Gregorian == "2024-04-13" {
		tr.recordSuccess("2081-01-01 -> 2024-04-13 round trip")
	} else {
		tr.recordError("to-ad", fmt.Sprintf("Expected 2024-04-13, got %s", ad.Gregorian))
	}
}

func (tr *TestRunner) testPanchangaDates() {
	tr.printSection("Panchanga Dates")

	testCases := []struct {
		date        string
		wantTithi   string
		description string
	}{
		{"2024-04-13", "पञ्चमी", "new year 2081"},
		{"2025-03-14", "पूर्णिमा", "holi purnima"},
	}

	for _, tc := range testCases {
		resp, err := tr.get("/api/v1/panchanga/" + tc.date)
		if err != nil {
			tr.recordError(tc.date, err.Error())
			continue
		}

		var data PanchangaResponse
		if err := tr.parseDataAs(resp, &data); err != nil {
			tr.recordError(tc.date, err.Error())
			continue
		}

		if data.Tithi == tc.wantTithi {
			tr.recordSuccess(fmt.Sprintf("%s: %s (%s)", tc.date, data.Tithi, tc.description))
		} else {
			tr.recordError(tc.date, fmt.Sprintf("Expected tithi %s, got %s",
				tc.wantTithi, data.Tithi))
		}

		if tr.verbose {
			tr.printPanchangaDetail(&data)
		}
	}
}

func (tr *TestRunner) testMonthInfo() {
	tr.printSection("Month Info")

	resp, err := tr.get("/api/v1/bs/2081/1")
	if err != nil {
		tr.recordError("Month 2081/1", err.Error())
		return
	}

	var month MonthResponse
	if err := tr.parseDataAs(resp, &month); err != nil {
		tr.recordError("Month 2081/1", err.Error())
		return
	}

	if month.TotalDays == 31 && month.StartWeekday == 6 {
		tr.recordSuccess("Baisakh 2081: 31 days starting Saturday")
	} else {
		tr.recordError("Month 2081/1", fmt.Sprintf("Got %d days, weekday %d",
			month.TotalDays, month.StartWeekday))
	}
}

func (tr *TestRunner) testEdgeCases() {
	tr.printSection("Edge Cases")

	// Invalid date format
	resp, _ := tr.getRaw("/api/v1/panchanga/invalid")
	if resp != nil && resp.StatusCode == 400 {
		tr.recordSuccess("Invalid date format rejected")
	} else {
		tr.recordError("Invalid date", "Should return 400")
	}

	// Invalid BS month
	resp2, _ := tr.getRaw("/api/v1/bs/2081/13")
	if resp2 != nil && resp2.StatusCode == 400 {
		tr.recordSuccess("Invalid BS month rejected")
	} else {
		tr.recordError("Invalid month", "Should return 400")
	}

	// Out-of-table date must still convert, flagged as computed
	resp3, err := tr.get("/api/v1/convert/to-bs/1850-06-15")
	if err != nil {
		tr.recordError("Fallback", err.Error())
		return
	}
	var data ConvertToBSResponse
	if err := tr.parseDataAs(resp3, &data); err != nil {
		tr.recordError("Fallback", err.Error())
		return
	}
	if data.Bikram.IsComputed {
		tr.recordSuccess(fmt.Sprintf("1850-06-15 -> BS %d (computed)", data.Bikram.Year))
	} else {
		tr.recordError("Fallback", "Pre-table date not flagged as computed")
	}
}

func (tr *TestRunner) get(path string) (*APIResponse, error) {
	resp, err := tr.getRaw(path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode error: %w", err)
	}

	if !apiResp.Success {
		errMsg := "unknown error"
		if apiResp.Error != nil {
			errMsg = apiResp.Error.Message
		}
		return nil, fmt.Errorf("API error: %s", errMsg)
	}

	return &apiResp, nil
}

func (tr *TestRunner) getRaw(path string) (*http.Response, error) {
	url := tr.baseURL + path
	return tr.client.Get(url)
}

func (tr *TestRunner) parseDataAs(resp *APIResponse, target interface{}) error {
	// Re-marshal and unmarshal to convert map to struct
	dataBytes, err := json.Marshal(resp.Data)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}
	return json.Unmarshal(dataBytes, target)
}

func (tr *TestRunner) printSection(name string) {
	fmt.Println()
	fmt.Printf("--- %s ---\n", name)
	fmt.Println()
}

func (tr *TestRunner) printPanchangaDetail(p *PanchangaResponse) {
	if p == nil || !tr.verbose {
		return
	}
	fmt.Printf("    Lunar month: %s\n", p.LunarMonth)
	fmt.Printf("    Nakshatra: %s\n", p.Nakshatra)
	fmt.Printf("    Sun: %s - %s\n", p.Sunrise, p.Sunset)
	fmt.Println()
}

func (tr *TestRunner) recordSuccess(msg string) {
	tr.successCount++
	fmt.Printf("  ✓ %s\n", msg)
}

func (tr *TestRunner) recordError(context, msg string) {
	tr.errorCount++
	errStr := fmt.Sprintf("%s: %s", context, msg)
	tr.errors = append(tr.errors, errStr)
	fmt.Printf("  ✗ %s\n", errStr)
}

func (tr *TestRunner) printSummary() {
	fmt.Println()
	fmt.Println("==============================================")
	fmt.Println("Summary")
	fmt.Println("==============================================")
	fmt.Printf("  Passed: %d\n", tr.successCount)
	fmt.Printf("  Failed: %d\n", tr.errorCount)
	fmt.Println()

	if tr.errorCount > 0 {
		fmt.Println("Failures:")
		for _, err := range tr.errors {
			fmt.Printf("  • %s\n", err)
		}
		fmt.Println()
	}

	if tr.errorCount == 0 {
		fmt.Println("All tests passed! ✓")
	} else {
		fmt.Printf("Tests completed with %d failure(s)\n", tr.errorCount)
	}
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	verbose := flag.Bool("v", false, "Verbose output (show panchanga details)")
	flag.Parse()

	// Check if server is reachable
	client := &http.Client{Timeout: 2 * time.Second}
	_, err := client.Get(*baseURL + "/health")
	if err != nil {
		fmt.Printf("Error: Cannot connect to %s\n", *baseURL)
		fmt.Println("Make sure the API server is running.")
		os.Exit(1)
	}

	runner := NewTestRunner(*baseURL, *verbose)
	runner.Run()

	if runner.errorCount > 0 {
		os.Exit(1)
	}
}
