// Package logging provides config-driven categorized file logging for
// nowgo. Logs are written to .nowgo/logs/ with one file per category.
// Logging is controlled by logging.debug_mode in .nowgo/config.json (or
// NOWGO_DEBUG); when disabled, every call is a no-op.
package logging

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

// Category represents a log category.
type Category string

const (
	CategoryBoot   Category = "boot"   // startup and shutdown
	CategoryWizard Category = "wizard" // step navigation, patches, validation
	CategoryChat   Category = "chat"   // dashboard chat session
	CategoryExport Category = "export" // report assembly and export
	CategoryConfig Category = "config" // config load and live reload
	CategoryUI     Category = "ui"     // TUI lifecycle and resize events
)

// loggingConfig mirrors config.LoggingConfig to avoid a circular import.
type loggingConfig struct {
	DebugMode  bool            `json:"debug_mode"`
	Categories map[string]bool `json:"categories"`
}

type configFile struct {
	Logging loggingConfig `json:"logging"`
}

// Logger wraps a standard logger bound to a category file. The zero Logger
// is a valid no-op.
type Logger struct {
	category Category
	logger   *log.Logger
	file     *os.File
}

var (
	loggers   = make(map[Category]*Logger)
	loggersMu sync.RWMutex
	logsDir   string
	cfg       loggingConfig
	cfgMu     sync.RWMutex
)

// Initialize sets up the logging directory and loads config. Call once at
// startup with the workspace root. When debug mode is off this is a silent
// no-op and no directory is created.
func Initialize(ws string) error {
	if ws == "" {
		return fmt.Errorf("workspace path required")
	}

	logsDir = filepath.Join(ws, ".nowgo", "logs")

	loadConfig(ws)
	if !IsDebugMode() {
		return nil
	}

	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	boot := Get(CategoryBoot)
	boot.Info("=== nowgo logging initialized ===")
	boot.Info("logs directory: %s", logsDir)
	return nil
}

func loadConfig(ws string) {
	cfgMu.Lock()
	defer cfgMu.Unlock()

	cfg = loggingConfig{}
	data, err := os.ReadFile(filepath.Join(ws, ".nowgo", "config.json"))
	if err == nil {
		var cf configFile
		if json.Unmarshal(data, &cf) == nil {
			cfg = cf.Logging
		}
	}
	if v := os.Getenv("NOWGO_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.DebugMode = b
		}
	}
}

// IsDebugMode reports whether debug logging is enabled.
func IsDebugMode() bool {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return cfg.DebugMode
}

// IsCategoryEnabled reports whether a category will be written.
func IsCategoryEnabled(category Category) bool {
	cfgMu.RLock()
	defer cfgMu.RUnlock()

	if !cfg.DebugMode {
		return false
	}
	if cfg.Categories == nil {
		return true
	}
	enabled, exists := cfg.Categories[string(category)]
	if !exists {
		return true
	}
	return enabled
}

// Get returns (or creates) the logger for a category. Disabled categories
// get a no-op logger.
func Get(category Category) *Logger {
	if !IsCategoryEnabled(category) || logsDir == "" {
		return &Logger{category: category}
	}

	loggersMu.RLock()
	if l, ok := loggers[category]; ok {
		loggersMu.RUnlock()
		return l
	}
	loggersMu.RUnlock()

	loggersMu.Lock()
	defer loggersMu.Unlock()
	if l, ok := loggers[category]; ok {
		return l
	}

	date := time.Now().Format("2006-01-02")
	path := filepath.Join(logsDir, fmt.Sprintf("%s_%s.log", date, category))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[logging] could not open %s: %v\n", path, err)
		return &Logger{category: category}
	}

	l := &Logger{
		category: category,
		logger:   log.New(file, "", log.LstdFlags|log.Lmicroseconds),
		file:     file,
	}
	loggers[category] = l
	return l
}

func (l *Logger) write(level, format string, args ...interface{}) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Printf("[%s] %s", level, fmt.Sprintf(format, args...))
}

func (l *Logger) Debug(format string, args ...interface{}) { l.write("DEBUG", format, args...) }
func (l *Logger) Info(format string, args ...interface{})  { l.write("INFO", format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.write("WARN", format, args...) }
func (l *Logger) Error(format string, args ...interface{}) { l.write("ERROR", format, args...) }

// CloseAll flushes and closes every open log file.
func CloseAll() {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	for cat, l := range loggers {
		if l.file != nil {
			l.file.Close()
		}
		delete(loggers, cat)
	}
}

// Convenience helpers for the common categories.

func Boot(format string, args ...interface{})   { Get(CategoryBoot).Info(format, args...) }
func Wizard(format string, args ...interface{}) { Get(CategoryWizard).Info(format, args...) }
func Chat(format string, args ...interface{})   { Get(CategoryChat).Info(format, args...) }
func Export(format string, args ...interface{}) { Get(CategoryExport).Info(format, args...) }
func Config(format string, args ...interface{}) { Get(CategoryConfig).Info(format, args...) }
func UI(format string, args ...interface{})     { Get(CategoryUI).Info(format, args...) }

func WizardDebug(format string, args ...interface{}) { Get(CategoryWizard).Debug(format, args...) }
func ExportError(format string, args ...interface{}) { Get(CategoryExport).Error(format, args...) }
