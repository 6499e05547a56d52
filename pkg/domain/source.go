package domain

import (
	"path/filepath"
	"runtime"
)

// CaptureSource returns the base filename and line number of the call site,
// skip frames up the stack. Returns ("", 0) when the lookup fails. Backs the
// capture_source_location config setting.
func CaptureSource(skip int) (file string, line int) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "", 0
	}

	return filepath.Base(file), line
}
