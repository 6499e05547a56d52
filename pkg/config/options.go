package config

import (
	"time"

	"github.com/Divkix/Logwell/pkg/errs"
)

// Option sets one optional key on the raw configuration built by New.
// Options write into the raw map, so a field is defaulted if and only if no
// option touched it.
type Option func(raw map[string]any)

// New builds a config from the required fields plus options, and validates
// it.
func New(endpoint, apiKey string, opts ...Option) (*Config, error) {
	raw := map[string]any{
		"api_key":  apiKey,
		"endpoint": endpoint,
	}

	for _, opt := range opts {
		opt(raw)
	}

	return Validate(raw)
}

func WithBatchSize(size int) Option {
	return func(raw map[string]any) {
		raw["batch_size"] = size
	}
}

func WithFlushInterval(interval time.Duration) Option {
	return func(raw map[string]any) {
		raw["flush_interval"] = interval.Seconds()
	}
}

func WithMaxQueueSize(size int) Option {
	return func(raw map[string]any) {
		raw["max_queue_size"] = size
	}
}

func WithMaxRetries(retries int) Option {
	return func(raw map[string]any) {
		raw["max_retries"] = retries
	}
}

func WithCaptureSourceLocation(capture bool) Option {
	return func(raw map[string]any) {
		raw["capture_source_location"] = capture
	}
}

func WithService(service string) Option {
	return func(raw map[string]any) {
		raw["service"] = service
	}
}

func WithOnError(fn func(*errs.Error)) Option {
	return func(raw map[string]any) {
		raw["on_error"] = fn
	}
}

func WithOnFlush(fn func(int)) Option {
	return func(raw map[string]any) {
		raw["on_flush"] = fn
	}
}
