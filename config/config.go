/*
Package config loads the CLI configuration from a YAML file.

Defaults are applied before validation, so a partial file (or none at all) is
fine. The core pipeline is configuration-free; everything here concerns the
drivers only.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the driver configuration.
type Config struct {
	// Prompt is the primary REPL prompt.
	Prompt string `yaml:"prompt"`

	// ContinuationPrompt is shown while a statement is still missing its ';'.
	ContinuationPrompt string `yaml:"continuation_prompt"`

	// HistoryFile is the readline history file ("" disables history).
	HistoryFile string `yaml:"history_file"`

	// InitFile is a statements file the REPL loads at startup ("" disables).
	InitFile string `yaml:"init_file"`

	// TraceLevel is one of Debug, Info, Error.
	TraceLevel string `yaml:"trace_level"`

	// WatchDebounce is the wait after a file change before re-running it in
	// watch mode. Given as a duration string in the file, e.g. "250ms".
	WatchDebounce time.Duration `yaml:"watch_debounce"`
}

// UnmarshalYAML decodes a configuration mapping. Absent keys keep their
// current (default) values; watch_debounce is parsed as a duration string.
func (cfg *Config) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Prompt             *string `yaml:"prompt"`
		ContinuationPrompt *string `yaml:"continuation_prompt"`
		HistoryFile        *string `yaml:"history_file"`
		InitFile           *string `yaml:"init_file"`
		TraceLevel         *string `yaml:"trace_level"`
		WatchDebounce      *string `yaml:"watch_debounce"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	if raw.Prompt != nil {
		cfg.Prompt = *raw.Prompt
	}
	if raw.ContinuationPrompt != nil {
		cfg.ContinuationPrompt = *raw.ContinuationPrompt
	}
	if raw.HistoryFile != nil {
		cfg.HistoryFile = *raw.HistoryFile
	}
	if raw.InitFile != nil {
		cfg.InitFile = *raw.InitFile
	}
	if raw.TraceLevel != nil {
		cfg.TraceLevel = *raw.TraceLevel
	}
	if raw.WatchDebounce != nil {
		d, err := time.ParseDuration(*raw.WatchDebounce)
		if err != nil {
			return fmt.Errorf("invalid watch_debounce: %w", err)
		}
		cfg.WatchDebounce = d
	}
	return nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Prompt:             "> ",
		ContinuationPrompt: "... ",
		TraceLevel:         "Info",
		WatchDebounce:      100 * time.Millisecond,
	}
}

// Load reads a YAML configuration file, applies defaults and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.TraceLevel {
	case "Debug", "Info", "Error":
	default:
		return fmt.Errorf("unknown trace level %q", cfg.TraceLevel)
	}
	if cfg.Prompt == "" {
		return fmt.Errorf("prompt must not be empty")
	}
	if cfg.WatchDebounce < 0 {
		return fmt.Errorf("watch_debounce must not be negative")
	}
	return nil
}
