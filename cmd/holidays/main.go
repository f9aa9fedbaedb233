// Command holidays prints the computed holidays for a jurisdiction and
// year to stdout. A development utility; the engine itself has no notion
// of "now", the year default is purely a CLI convenience.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/holidaykit/holiday-api/internal/holiday"
)

func main() {
	region := flag.String("region", "AU-ACT", "Jurisdiction code")
	year := flag.Int("year", time.Now().Year(), "Year to compute holidays for")
	locale := flag.String("locale", "en", "Locale tag for display names")
	flag.Parse()

	registry := holiday.DefaultRegistry()

	holidays, err := registry.Resolve(*region, *year)
	if err != nil {
		fmt.Fprintf(os.Stderr, "holidays: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Holidays for %s in %d:\n\n", *region, *year)
	for _, h := range holidays {
		fmt.Printf("  %s  %-9s  %-25s  (%s)\n",
			h.DateString(), h.Date.Weekday(), h.Name(*locale), h.Type)
	}
}
