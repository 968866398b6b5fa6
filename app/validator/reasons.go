package validator

// ReasonCode identifies a validation rule. The set is closed: every
// rule the validator knows about has exactly one code here.
type ReasonCode string

const (
	CodeMissingField    ReasonCode = "missing_field"
	CodeInvalidURL      ReasonCode = "invalid_url"
	CodeContentTooShort ReasonCode = "content_too_short"
)

// Reason is a single validation finding. Findings are data, never
// errors; a record collects zero or more of them.
type Reason struct {
	Code  ReasonCode `json:"code"`
	Field string     `json:"field,omitempty"`
}

// String renders the stable identifier used in reports and frequency
// tables, e.g. "missing_field:heading" or "invalid_url".
func (r Reason) String() string {
	if r.Field != "" {
		return string(r.Code) + ":" + r.Field
	}
	return string(r.Code)
}

func MissingField(field string) Reason {
	return Reason{Code: CodeMissingField, Field: field}
}

var (
	InvalidURL      = Reason{Code: CodeInvalidURL}
	ContentTooShort = Reason{Code: CodeContentTooShort}
)
