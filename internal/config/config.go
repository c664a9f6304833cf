// Package config handles exporter configuration loading and management.
package config

// Config holds all exporter settings.
type Config struct {
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// ExportConfig holds settings that shape the generated output. Options that
// change evaluated mesh geometry participate in the collision-shape cache
// key, so toggling them never reuses stale resources.
type ExportConfig struct {
	// ApplyModifiers evaluates object modifiers before reading geometry.
	ApplyModifiers bool `yaml:"apply_modifiers"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Export: ExportConfig{
			ApplyModifiers: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// GeometryOptions returns the fragment of the settings that affects
// generated mesh geometry, for use in resource cache keys.
func (c *Config) GeometryOptions() string {
	if c.Export.ApplyModifiers {
		return "modifiers"
	}
	return "base"
}
