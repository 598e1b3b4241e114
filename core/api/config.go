package api

import (
	"fmt"
	"net/url"
	"time"
)

// Config holds configuration for the backend API transport.
type Config struct {
	// BaseURL is the root every request path is resolved against.
	BaseURL string `mapstructure:"base_url" default:"http://localhost:5000/api/"`
	// TimeoutSeconds bounds a whole request, including reading the body.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// RequestsPerSecond throttles outgoing requests. Zero or less disables throttling.
	RequestsPerSecond float64 `mapstructure:"requests_per_second" default:"10"`
	// Burst is the token bucket size.
	Burst int `mapstructure:"burst" default:"5"`
	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" default:"pot-portal"`
}

// Timeout returns the request timeout, defaulting to 30 seconds.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Validate checks that BaseURL is an absolute http(s) URL.
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid api base url %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid api base url %q: scheme must be http or https", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid api base url %q: missing host", c.BaseURL)
	}
	return nil
}
