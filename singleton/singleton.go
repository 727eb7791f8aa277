// Package singleton holds one process-wide Logger.
//
// There is no lazy first-use initialization: the program calls Init once at
// startup and every later Instance call returns that same Logger. Instance
// before Init fails with ErrNotInitialized instead of creating one.
package singleton

import (
	"errors"
	"fmt"
	"io"
	"sync"
)

var (
	// ErrNotInitialized is returned by Instance before Init.
	ErrNotInitialized = errors.New("singleton: logger not initialized")

	// ErrAlreadyInitialized is returned by a second Init.
	ErrAlreadyInitialized = errors.New("singleton: logger already initialized")
)

var (
	mu       sync.RWMutex
	instance *Logger
)

// Logger prints prefixed log lines.
type Logger struct {
	mu  sync.Mutex // serializes writes
	out io.Writer
}

// Log writes "Log: <message>".
func (l *Logger) Log(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "Log: %s\n", message)
}

// Init installs the process-wide Logger writing to w.
func Init(w io.Writer) (*Logger, error) {
	if w == nil {
		w = io.Discard
	}
	mu.Lock()
	defer mu.Unlock()
	if instance != nil {
		return instance, ErrAlreadyInitialized
	}
	instance = &Logger{out: w}

	return instance, nil
}

// Instance returns the Logger installed by Init.
func Instance() (*Logger, error) {
	mu.RLock()
	defer mu.RUnlock()
	if instance == nil {
		return nil, ErrNotInitialized
	}

	return instance, nil
}

// Reset drops the installed Logger so Init can run again.
// Intended for tests and for re-running the demo in one process.
func Reset() {
	mu.Lock()
	instance = nil
	mu.Unlock()
}

// Demo initializes the logger, logs a line, fetches the logger a second time
// and confirms both handles are the same instance.
func Demo(w io.Writer) error {
	Reset()
	defer Reset()

	if _, err := Init(w); err != nil {
		return err
	}
	logger, err := Instance()
	if err != nil {
		return err
	}
	logger.Log("Starting the application...")

	another, err := Instance()
	if err != nil {
		return err
	}
	if logger == another {
		fmt.Fprintln(w, "it's still the same logger!")
	}

	return nil
}
