package validator

import (
	"errors"
	"net/url"
	"strings"
	"unicode/utf8"

	"newscrub/app/record"
)

// DefaultMinContentLength is the content length floor applied when the
// configuration does not set one.
const DefaultMinContentLength = 20

// ErrNoRequiredFields signals a caller mistake, not a data-quality
// finding: a validator with nothing to require is a misconfiguration.
var ErrNoRequiredFields = errors.New("validator: required field set is empty")

type Config struct {
	// RequiredFields lists the canonical fields every record must carry,
	// in the order their findings should be reported.
	RequiredFields []string
	// Aliases maps a canonical field name to the alternate key checked
	// when the canonical one is absent or blank.
	Aliases map[string]string
	// MinContentLength is the minimum trimmed content length in
	// characters. Zero means DefaultMinContentLength.
	MinContentLength int
}

// InvalidRecord pairs a rejected record with the findings that
// rejected it, in rule order.
type InvalidRecord struct {
	Record  record.Record `json:"record"`
	Reasons []Reason      `json:"reasons"`
}

// Result partitions a batch into valid and invalid records, each
// subset keeping the relative input order, plus the aggregate summary.
type Result struct {
	Valid   []record.Record `json:"valid"`
	Invalid []InvalidRecord `json:"invalid"`
	Summary Summary         `json:"summary"`
}

// Validator classifies cleaned records. It never mutates its input and
// never errors on malformed data; bad data comes back as reasons.
type Validator struct {
	cfg Config
}

func New(cfg Config) (*Validator, error) {
	if len(cfg.RequiredFields) == 0 {
		return nil, ErrNoRequiredFields
	}
	if cfg.MinContentLength <= 0 {
		cfg.MinContentLength = DefaultMinContentLength
	}
	return &Validator{cfg: cfg}, nil
}

// Run validates a batch of records.
func (v *Validator) Run(records []record.Record) Result {
	res := Result{
		Valid:   make([]record.Record, 0, len(records)),
		Invalid: make([]InvalidRecord, 0),
	}

	for _, rec := range records {
		out := v.canonicalize(rec)
		reasons := v.check(out)
		if len(reasons) == 0 {
			res.Valid = append(res.Valid, out)
		} else {
			res.Invalid = append(res.Invalid, InvalidRecord{Record: out, Reasons: reasons})
		}
	}

	res.Summary = buildSummary(res.Valid, res.Invalid)
	return res
}

// canonicalize copies the record, surfacing aliased values under their
// canonical keys so downstream consumers see one name per field.
func (v *Validator) canonicalize(rec record.Record) record.Record {
	out := rec.Clone()
	for canonical, alias := range v.cfg.Aliases {
		if !out.Has(canonical) && out.Has(alias) {
			out[canonical] = out[alias]
		}
	}
	return out
}

// check evaluates the rules in fixed order: required fields first,
// then URL format, then content length. A record can accumulate
// several reasons; the order is deterministic across runs.
func (v *Validator) check(rec record.Record) []Reason {
	var reasons []Reason

	for _, field := range v.cfg.RequiredFields {
		if !rec.Has(field) {
			reasons = append(reasons, MissingField(field))
		}
	}

	// A missing URL is already reported above; only a present one can
	// be malformed.
	if rec.Has(record.FieldURL) {
		if !isHTTPURL(strings.TrimSpace(rec[record.FieldURL])) {
			reasons = append(reasons, InvalidURL)
		}
	}

	if rec.Has(record.FieldContent) {
		trimmed := strings.TrimSpace(rec[record.FieldContent])
		if utf8.RuneCountInString(trimmed) < v.cfg.MinContentLength {
			reasons = append(reasons, ContentTooShort)
		}
	}

	return reasons
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
