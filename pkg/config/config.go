package config

import (
	"time"

	"github.com/Divkix/Logwell/pkg/errs"
	"gopkg.in/yaml.v2"
)

// Default values applied to fields the caller leaves unset.
const (
	DefaultBatchSize     = 50
	DefaultFlushInterval = 5.0 // seconds
	DefaultMaxQueueSize  = 1000
	DefaultMaxRetries    = 3
)

// Config is the normalized, fully-defaulted configuration consumed by the
// rest of the SDK (transport, queue and flush scheduling).
type Config struct {
	APIKey                string
	Endpoint              string
	BatchSize             int
	FlushInterval         float64 // seconds
	MaxQueueSize          int
	MaxRetries            int
	CaptureSourceLocation bool

	// Optional pass-through fields. Zero values mean the caller did not
	// supply them.
	Service string
	OnError func(*errs.Error)
	OnFlush func(int)
}

// Validate checks a raw key-value configuration and returns the normalized
// config with defaults filled in for absent optional fields. It fails on the
// first violated constraint with an errs.InvalidConfig error, and never
// mutates the input map.
func Validate(raw map[string]any) (*Config, error) {
	apiKey, ok := raw["api_key"]
	if !ok || blank(apiKey) {
		return nil, errs.New(errs.InvalidConfig, "api_key is required")
	}

	endpoint, ok := raw["endpoint"]
	if !ok || blank(endpoint) {
		return nil, errs.New(errs.InvalidConfig, "endpoint is required")
	}

	if !ValidAPIKeyFormat(apiKey) {
		return nil, errs.New(errs.InvalidConfig, "Invalid API key format. Expected: lw_[32 characters]")
	}

	// An endpoint that cannot be parsed at all and one that parses but lacks
	// a scheme or host are the same failure.
	endpointStr, isString := endpoint.(string)
	if !isString || !validURL(endpointStr) {
		return nil, errs.New(errs.InvalidConfig, "Invalid endpoint URL")
	}

	conf := &Config{
		APIKey:        apiKey.(string),
		Endpoint:      endpointStr,
		BatchSize:     DefaultBatchSize,
		FlushInterval: DefaultFlushInterval,
		MaxQueueSize:  DefaultMaxQueueSize,
		MaxRetries:    DefaultMaxRetries,
	}

	if v, supplied := raw["batch_size"]; supplied {
		size, ok := asInt(v)
		if !ok || size <= 0 {
			return nil, errs.New(errs.InvalidConfig, "batch_size must be positive")
		}
		conf.BatchSize = size
	}

	if v, supplied := raw["flush_interval"]; supplied {
		interval, ok := asFloat(v)
		if !ok || interval <= 0 {
			return nil, errs.New(errs.InvalidConfig, "flush_interval must be positive")
		}
		conf.FlushInterval = interval
	}

	if v, supplied := raw["max_queue_size"]; supplied {
		size, ok := asInt(v)
		if !ok || size <= 0 {
			return nil, errs.New(errs.InvalidConfig, "max_queue_size must be positive")
		}
		conf.MaxQueueSize = size
	}

	if v, supplied := raw["max_retries"]; supplied {
		retries, ok := asInt(v)
		if !ok || retries < 0 {
			return nil, errs.New(errs.InvalidConfig, "max_retries must be non-negative")
		}
		conf.MaxRetries = retries
	}

	if v, supplied := raw["capture_source_location"]; supplied {
		capture, ok := v.(bool)
		if !ok {
			return nil, errs.New(errs.InvalidConfig, "capture_source_location must be a boolean")
		}
		conf.CaptureSourceLocation = capture
	}

	if v, supplied := raw["service"]; supplied {
		service, ok := v.(string)
		if !ok {
			return nil, errs.New(errs.InvalidConfig, "service must be a string")
		}
		conf.Service = service
	}

	if v, supplied := raw["on_error"]; supplied {
		fn, ok := v.(func(*errs.Error))
		if !ok {
			return nil, errs.New(errs.InvalidConfig, "on_error must be a func(*errs.Error)")
		}
		conf.OnError = fn
	}

	if v, supplied := raw["on_flush"]; supplied {
		fn, ok := v.(func(int))
		if !ok {
			return nil, errs.New(errs.InvalidConfig, "on_flush must be a func(int)")
		}
		conf.OnFlush = fn
	}

	return conf, nil
}

// FromYAML parses a flat YAML document into a raw configuration and
// validates it.
func FromYAML(confData []byte) (*Config, error) {
	raw := make(map[string]any)
	err := yaml.Unmarshal(confData, &raw)
	if err != nil {
		return nil, errs.Wrap(errs.InvalidConfig, "config is not valid YAML", err)
	}

	return Validate(raw)
}

// AsMap re-exports the config in the raw key-value shape accepted by
// Validate. Optional pass-through fields appear only when they were supplied.
func (c *Config) AsMap() map[string]any {
	raw := map[string]any{
		"api_key":                 c.APIKey,
		"endpoint":                c.Endpoint,
		"batch_size":              c.BatchSize,
		"flush_interval":          c.FlushInterval,
		"max_queue_size":          c.MaxQueueSize,
		"max_retries":             c.MaxRetries,
		"capture_source_location": c.CaptureSourceLocation,
	}

	if c.Service != "" {
		raw["service"] = c.Service
	}
	if c.OnError != nil {
		raw["on_error"] = c.OnError
	}
	if c.OnFlush != nil {
		raw["on_flush"] = c.OnFlush
	}

	return raw
}

// FlushIntervalDuration returns the flush interval as a time.Duration.
func (c *Config) FlushIntervalDuration() time.Duration {
	return time.Duration(c.FlushInterval * float64(time.Second))
}

// blank reports whether a required value counts as missing: nil, or an empty
// string.
func blank(v any) bool {
	return v == nil || v == ""
}
