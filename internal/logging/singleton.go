package logging

import (
	"sync"
)

var (
	instance *Logger
	mu       sync.Mutex
)

// InitLogger initializes the global logger with the given configuration.
// Calling it again replaces the previous logger.
func InitLogger(config *Config) error {
	logger, err := NewLogger(config)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	instance = logger
	return nil
}

// GetGlobalLogger returns the global logger instance. If InitLogger was never
// called it falls back to a stdout-only logger, which keeps library code and
// tests usable without bootstrap.
func GetGlobalLogger() *Logger {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		instance, _ = NewLogger(&Config{})
	}
	return instance
}
