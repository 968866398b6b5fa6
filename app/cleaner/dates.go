package cleaner

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// isoDate is the output layout for standardized dates. Time of day and
// timezone are deliberately discarded.
const isoDate = "2006-01-02"

// dateLayouts is the ordered list of accepted input formats. The first
// layout that parses wins, so the ISO calendar date leads (re-cleaning
// an already standardized value is a no-op) and day-first layouts come
// before month-first ones, matching the upstream scrapers this
// pipeline was built for.
var dateLayouts = []string{
	isoDate,
	time.RFC1123,  // Mon, 02 Jan 2006 15:04:05 GMT
	time.RFC1123Z, // Mon, 02 Jan 2006 15:04:05 -0700
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 MST",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2/1/2006",
	"1/2/2006",
	"2-1-2006",
	"1-2-2006",
	"2006/1/2",
	"2 January 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2/1/06",
	"1/2/06",
	"20060102",
}

// StandardizeDate parses value against the accepted layouts and emits
// a strict YYYY-MM-DD calendar date. A value no layout (nor the
// flexible fallback parser) understands is returned unchanged: the
// cleaner never gates records, so malformed dates are left for
// downstream policy to deal with.
func StandardizeDate(value string) string {
	trimmed := strings.Join(strings.Fields(value), " ")
	if trimmed == "" {
		return value
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format(isoDate)
		}
	}

	// Fallback for the long tail of scraped formats.
	if t, err := dateparse.ParseAny(trimmed); err == nil {
		return t.Format(isoDate)
	}

	return value
}
