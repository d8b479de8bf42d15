package logging

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

const defaultLogFile = "pincode-lookup.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
)

type detailer interface {
	Detail() string
}

// withFile opens the shared log for appending and hands a logger bound to it
// to fn. The terminal belongs to the TUI, so nothing is written to stderr
// unless the file itself cannot be opened.
func withFile(fn func(zerolog.Logger)) error {
	mu.Lock()
	path := logPath
	mu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	fn(zerolog.New(f).With().Timestamp().Logger())
	return nil
}

// Error writes err to the shared log file. Errors carrying a Detail method
// have that detail recorded alongside the message.
func Error(err error) {
	if err == nil {
		return
	}
	werr := withFile(func(l zerolog.Logger) {
		evt := l.Error().Err(err)
		var d detailer
		if errors.As(err, &d) {
			evt = evt.Str("detail", d.Detail())
		}
		evt.Send()
	})
	if werr != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", werr)
	}
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether trace entries are being written.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace appends a structured JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}
	werr := withFile(func(l zerolog.Logger) {
		evt := l.Log().Str("event", event)
		if payload != nil {
			evt = evt.Interface("payload", payload)
		}
		evt.Send()
	})
	if werr != nil {
		fmt.Fprintf(os.Stderr, "trace logging failed: %v\n", werr)
	}
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}

// Path returns the current log destination.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}
