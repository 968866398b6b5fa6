package record

import "strings"

// Canonical field names for a scraped news record. Scrapers are not
// consistent about naming, so each canonical field has a known alias
// (see DefaultAliases).
const (
	FieldHeading = "heading"
	FieldContent = "content"
	FieldURL     = "url"
	FieldPubDate = "pubDate"
	FieldGUID    = "guid"
)

// RecognizedFields lists the canonical fields in report order.
var RecognizedFields = []string{FieldHeading, FieldContent, FieldURL, FieldPubDate, FieldGUID}

// DefaultAliases maps canonical field names to the alternate keys
// commonly produced by feed scrapers.
var DefaultAliases = map[string]string{
	FieldHeading: "title",
	FieldContent: "description",
	FieldURL:     "link",
}

// Record is one scraped news item: a flat mapping of field name to raw
// string value. Fields outside the recognized set are carried along
// untouched. A record has no identity beyond its position in the batch.
type Record map[string]string

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Get returns the value for key, falling back to alias when the
// canonical key is absent or blank.
func (r Record) Get(key, alias string) string {
	if v, ok := r[key]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	if alias != "" {
		return r[alias]
	}
	return ""
}

// Has reports whether the record carries a non-blank value for key.
func (r Record) Has(key string) bool {
	return strings.TrimSpace(r[key]) != ""
}
