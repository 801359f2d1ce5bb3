// Package debug provides optional file-based debug logging.
//
// When the EDITORPANEL_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise, logging is a no-op.
package debug

import (
	"io"
	"log"
	"os"
	"sync"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "EDITORPANEL_DEBUG"

var (
	once   sync.Once
	logger *log.Logger
	file   *os.File // opened by Open, closed when the output changes
)

func setup() {
	path := os.Getenv(EnvVar)
	if path == "" {
		return
	}
	if err := Open(path); err != nil {
		log.Printf("debug: %v", err)
	}
}

// Open starts appending debug output to path, replacing any earlier target.
func Open(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	SetOutput(f)
	file = f
	return nil
}

// SetOutput sends debug output to w; nil disables it. A file opened by Open
// is closed.
func SetOutput(w io.Writer) {
	once.Do(func() {})
	if file != nil {
		file.Close()
		file = nil
	}
	if w == nil {
		logger = nil
		return
	}
	logger = log.New(w, "editorpanel ", log.LstdFlags|log.Lmicroseconds)
}

// Logger returns the debug logger, or nil when debugging is off.
func Logger() *log.Logger {
	once.Do(setup)
	return logger
}

// Log writes a debug line if debugging is enabled.
func Log(format string, args ...interface{}) {
	if l := Logger(); l != nil {
		l.Printf(format, args...)
	}
}
