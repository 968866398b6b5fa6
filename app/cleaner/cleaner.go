package cleaner

import (
	"html"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"newscrub/app/record"
)

// Cleaner normalizes raw scraped records field by field. It never
// rejects a record and never mutates its input; gating out bad records
// is the validator's job.
type Cleaner struct {
	textFields map[string]bool
	dateFields map[string]bool
}

func New(cfg Config) *Cleaner {
	c := &Cleaner{
		textFields: make(map[string]bool, len(cfg.TextFields)),
		dateFields: make(map[string]bool, len(cfg.DateFields)),
	}
	for _, f := range cfg.TextFields {
		c.textFields[f] = true
	}
	for _, f := range cfg.DateFields {
		c.dateFields[f] = true
	}
	return c
}

// Run cleans a batch of records. The output has the same length and
// order as the input; every record is a fresh copy.
func (c *Cleaner) Run(records []record.Record) []record.Record {
	cleaned := make([]record.Record, 0, len(records))
	for _, rec := range records {
		cleaned = append(cleaned, c.cleanRecord(rec))
	}
	return cleaned
}

func (c *Cleaner) cleanRecord(rec record.Record) record.Record {
	out := make(record.Record, len(rec))
	for key, value := range rec {
		switch {
		case c.dateFields[key]:
			out[key] = StandardizeDate(value)
		case c.textFields[key]:
			out[key] = CleanText(value)
		default:
			out[key] = value
		}
	}
	return out
}

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// asciiPunct maps typographic punctuation to plain ASCII and
// non-breaking spaces to ordinary spaces. Scraped feeds mix these in
// depending on the publisher's CMS.
var asciiPunct = strings.NewReplacer(
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"‘", "'", // left single quote
	"’", "'", // right single quote / apostrophe
	"–", "-", // en dash
	"—", "-", // em dash
	" ", " ", // non-breaking space
)

// CleanText runs the full text normalization pipeline on a single
// value. Entities are decoded before tags are stripped so that
// entity-encoded markup does not survive as literal text.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = html.UnescapeString(text)
	text = tagPattern.ReplaceAllString(text, "")
	text = norm.NFC.String(text)
	text = asciiPunct.Replace(text)
	text = stripInvisible(text)
	return collapseWhitespace(text)
}

// stripInvisible drops control characters (standard whitespace
// excluded, it is collapsed later) and the Unicode replacement
// character left behind by broken encodings.
func stripInvisible(text string) string {
	return strings.Map(func(r rune) rune {
		if r == '�' {
			return -1
		}
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
}

func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
