package config

// PipelineConfig is the on-disk pipeline configuration: which fields
// get which cleaning, what validation requires, and optionally where
// raw records come from.
type PipelineConfig struct {
	Fields     FieldsConfig     `yaml:"fields"`
	Validation ValidationConfig `yaml:"validation"`
	Sources    []Source         `yaml:"sources"`
}

// FieldsConfig classifies record fields for the cleaner.
type FieldsConfig struct {
	Text []string `yaml:"text"`
	Date []string `yaml:"date"`
}

// ValidationConfig drives the validator.
type ValidationConfig struct {
	Required         []string          `yaml:"required"`
	Aliases          map[string]string `yaml:"aliases"`
	MinContentLength int               `yaml:"min_content_length"`
}

// Source describes one place to acquire raw records from.
type Source struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"` // "feed" (RSS/Atom) or "page" (article URL)
	URL  string `yaml:"url"`
}
