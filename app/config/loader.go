package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"newscrub/app/record"
	"newscrub/app/validator"
)

// Loader handles loading and validation of pipeline configurations
type Loader struct {
	path string
}

// NewLoader creates a new configuration loader
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads and validates the pipeline configuration file.
func (l *Loader) Load() (*PipelineConfig, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var config PipelineConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	setDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", l.path, err)
	}

	return &config, nil
}

// Default returns the configuration used when no file is supplied.
func Default() *PipelineConfig {
	config := &PipelineConfig{}
	setDefaults(config)
	return config
}

// setDefaults applies default values to configuration
func setDefaults(config *PipelineConfig) {
	if len(config.Fields.Text) == 0 {
		config.Fields.Text = []string{record.FieldHeading, record.FieldContent}
	}
	if len(config.Fields.Date) == 0 {
		config.Fields.Date = []string{record.FieldPubDate}
	}
	if len(config.Validation.Required) == 0 {
		config.Validation.Required = []string{record.FieldHeading, record.FieldContent, record.FieldURL}
	}
	if config.Validation.Aliases == nil {
		config.Validation.Aliases = record.DefaultAliases
	}
	if config.Validation.MinContentLength == 0 {
		config.Validation.MinContentLength = validator.DefaultMinContentLength
	}
}

// validate validates the configuration
func validate(config *PipelineConfig) error {
	if config.Validation.MinContentLength < 0 {
		return fmt.Errorf("min_content_length must be non-negative")
	}

	for i, source := range config.Sources {
		if source.URL == "" {
			return fmt.Errorf("source at index %d has no URL", i)
		}
		switch source.Type {
		case "feed", "page":
		default:
			return fmt.Errorf("invalid source type at index %d: %s", i, source.Type)
		}
	}

	return nil
}
