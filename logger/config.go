package logger

import "fmt"

// Output format constants.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
	FormatPretty  = "pretty"
)

// Field name constants for structured log entries.
const (
	FieldService   = "service"
	FieldComponent = "component"
	FieldProvider  = "provider"
	FieldRegion    = "region"
)

// Config holds logger configuration.
type Config struct {
	// Level is the minimum log level: debug, info, warn, error.
	Level string `yaml:"level" mapstructure:"level"`

	// Format selects the output format: json, console, or pretty.
	Format string `yaml:"format" mapstructure:"format"`

	// Output selects the destination: stdout or stderr.
	Output string `yaml:"output" mapstructure:"output"`

	// NoColor disables colored console output.
	NoColor bool `yaml:"no_color" mapstructure:"no_color"`

	// Timestamp enables timestamps on log entries.
	Timestamp bool `yaml:"timestamp" mapstructure:"timestamp"`

	// ServiceName tags every entry with the owning service.
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
}

// ApplyDefaults fills in zero-valued fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = FormatConsole
	}
	if c.Output == "" {
		c.Output = "stdout"
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Level {
	case "", "trace", "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("logger: invalid level %q", c.Level)
	}
	switch c.Format {
	case "", FormatJSON, FormatConsole, FormatPretty:
	default:
		return fmt.Errorf("logger: invalid format %q", c.Format)
	}
	return nil
}
