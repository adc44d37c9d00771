package httpclient

import (
	"fmt"
	"net/url"
	"time"
)

// DefaultTimeout is the default request timeout.
const DefaultTimeout = 30 * time.Second

// Config holds HTTP client configuration.
type Config struct {
	// BaseURL is prepended to relative request paths.
	BaseURL string `mapstructure:"base_url" json:"base_url"`

	// Timeout is the per-request timeout.
	Timeout time.Duration `mapstructure:"timeout" json:"timeout"`

	// Headers are added to every request.
	Headers map[string]string `mapstructure:"headers" json:"headers"`

	// Auth configures request authentication.
	Auth *AuthConfig `mapstructure:"auth" json:"auth"`
}

// ApplyDefaults fills in zero-valued fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Auth != nil {
		c.Auth.ApplyDefaults()
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.BaseURL != "" {
		if _, err := url.Parse(c.BaseURL); err != nil {
			return fmt.Errorf("httpclient: invalid base_url %q: %w", c.BaseURL, err)
		}
	}
	if c.Auth != nil {
		if err := c.Auth.Validate(); err != nil {
			return err
		}
	}
	return nil
}
