package cleaner

// Config declares which record fields receive which normalization.
// Fields listed in neither set are copied through verbatim.
type Config struct {
	TextFields []string
	DateFields []string
}
