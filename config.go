package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultModel       = "gpt-4o-mini"
	defaultTemperature = 0.3
	// defaultMaxContentChars is roughly 25k tokens.
	defaultMaxContentChars = 100000
)

// Settings holds the tunable knobs for a run. Values come from compiled-in
// defaults, optionally overlaid by a YAML settings file.
type Settings struct {
	Model           string   `yaml:"model"`
	Temperature     float64  `yaml:"temperature"`
	MaxContentChars int      `yaml:"max_content_chars"`
	Encodings       []string `yaml:"encodings"`
}

// DefaultSettings returns the compiled-in configuration.
func DefaultSettings() *Settings {
	return &Settings{
		Model:           defaultModel,
		Temperature:     defaultTemperature,
		MaxContentChars: defaultMaxContentChars,
		Encodings:       []string{"utf-8", "latin-1", "windows-1252", "iso-8859-1"},
	}
}

// loadSettings loads settings from a YAML file, falling back to defaults when
// no path is given. An explicitly named file must exist and parse.
func loadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parsing settings YAML: %w", err)
	}

	if settings.Model == "" {
		settings.Model = defaultModel
	}
	if settings.MaxContentChars <= 0 {
		settings.MaxContentChars = defaultMaxContentChars
	}
	if len(settings.Encodings) == 0 {
		settings.Encodings = DefaultSettings().Encodings
	}

	return settings, nil
}
