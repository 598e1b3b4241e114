package toast

import "time"

// Config holds defaults for pushed toasts.
type Config struct {
	// DurationMs is the default auto-dismiss delay in milliseconds.
	DurationMs int `mapstructure:"duration_ms" default:"5000"`
}

// DefaultDuration is used when neither the config nor the push options set one.
const DefaultDuration = 5 * time.Second

func (c Config) duration() time.Duration {
	if c.DurationMs <= 0 {
		return DefaultDuration
	}
	return time.Duration(c.DurationMs) * time.Millisecond
}
