// Command almanac prints the panchanga for a date on the terminal.
//
// Usage:
//
//	go run ./cmd/almanac                  # today in Nepal
//	go run ./cmd/almanac -date 2024-04-13
//	go run ./cmd/almanac -date 2024-04-13 -json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/nepcal/panchanga-api/internal/panchanga"
)

func main() {
	dateStr := flag.String("date", "", "Gregorian date YYYY-MM-DD (empty: today in Nepal)")
	asJSON := flag.Bool("json", false, "Print the full result as JSON")
	flag.Parse()

	date := panchanga.TodayInNepal()
	if *dateStr != "" {
		var err error
		date, err = time.Parse("2006-01-02", *dateStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid date %q: use YYYY-MM-DD\n", *dateStr)
			os.Exit(1)
		}
	}

	calc := panchanga.NewCalculator(nil, nil)
	result := calc.Calculate(date)

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			fmt.Fprintf(os.Stderr, "encode: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printResult(result)
}

func printResult(r panchanga.Result) {
	fmt.Println(r.GregorianDate)
	fmt.Printf("%s (%s)\n", r.BikramSambat, r.Weekday)
	if r.IsComputed {
		fmt.Println("(date outside the tabulated range; astronomically derived)")
	}
	fmt.Println()

	fmt.Printf("  %-12s %s, %s\n", "Tithi:", r.Tithi, r.Paksha)
	fmt.Printf("  %-12s %s\n", "Lunar month:", r.LunarMonth)
	fmt.Printf("  %-12s %s\n", "Nakshatra:", r.Nakshatra)
	fmt.Printf("  %-12s %s\n", "Yoga:", r.Yoga)
	fmt.Printf("  %-12s %s\n", "Karana:", r.Karana)
	fmt.Printf("  %-12s %s / %s\n", "Rashi:", r.SunRashi, r.MoonRashi)
	fmt.Printf("  %-12s %s - %s\n", "Sun:", r.Sunrise, r.Sunset)
	if r.AdhikaMasa != "छैन" {
		fmt.Printf("  %-12s %s\n", "Masa:", r.AdhikaMasa)
	}

	if len(r.Events) > 0 {
		fmt.Println()
		for _, e := range r.Events {
			marker := " "
			if e.Holiday {
				marker = "*"
			}
			fmt.Printf("  %s %s\n", marker, e.Name)
			if e.Detail != "" {
				fmt.Printf("      %s\n", e.Detail)
			}
		}
	}
}
