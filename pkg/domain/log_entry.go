package domain

import "time"

// M is the metadata map attached to log entries.
type M = map[string]any

type LogLevel string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
	LevelFatal LogLevel = "fatal"
)

// LogEntry is a single log event, in the shape the ingestion endpoint
// accepts.
type LogEntry struct {
	Level     LogLevel  `json:"level"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service,omitempty"`
	File      string    `json:"file,omitempty"`
	Line      int       `json:"line,omitempty"`
	Metadata  M         `json:"metadata,omitempty"`
}

// MergeMetadata combines metadata maps into one, later maps overriding
// earlier ones on duplicate keys. Returns nil when there is nothing to merge.
func MergeMetadata(maps ...M) M {
	if len(maps) == 0 {
		return nil
	}

	merged := make(M)
	for _, m := range maps {
		for k, v := range m {
			merged[k] = v
		}
	}

	if len(merged) == 0 {
		return nil
	}

	return merged
}
