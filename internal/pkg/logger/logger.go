// Package logger holds the process-wide zerolog instance. The catalog loaders
// log through these package-level helpers so a load failure can be reported
// from any depth without threading a logger value through the store.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var defaultLogger zerolog.Logger

// LogLevel names a verbosity threshold.
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
	FatalLevel LogLevel = "fatal"
)

// Config controls the output of the package logger.
type Config struct {
	Level LogLevel
	// Pretty switches to the human-readable console writer.
	Pretty bool
	// Output defaults to os.Stdout.
	Output io.Writer
}

var levels = map[LogLevel]zerolog.Level{
	DebugLevel: zerolog.DebugLevel,
	InfoLevel:  zerolog.InfoLevel,
	WarnLevel:  zerolog.WarnLevel,
	ErrorLevel: zerolog.ErrorLevel,
	FatalLevel: zerolog.FatalLevel,
}

// Configure replaces the package logger. Also updates zerolog's global
// logger so libraries logging through it stay consistent.
func Configure(config Config) {
	if config.Output == nil {
		config.Output = os.Stdout
	}

	zerolog.TimeFieldFormat = time.RFC3339

	level, ok := levels[config.Level]
	if !ok {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var writer io.Writer = config.Output
	if config.Pretty {
		writer = zerolog.ConsoleWriter{
			Out:        config.Output,
			TimeFormat: time.RFC3339,
		}
	}

	defaultLogger = zerolog.New(writer).With().Timestamp().Logger()
	log.Logger = defaultLogger
}

// Debug starts a debug-level event.
func Debug() *zerolog.Event {
	return defaultLogger.Debug()
}

// Info starts an info-level event.
func Info() *zerolog.Event {
	return defaultLogger.Info()
}

// Warn starts a warn-level event.
func Warn() *zerolog.Event {
	return defaultLogger.Warn()
}

// Error starts an error-level event.
func Error() *zerolog.Event {
	return defaultLogger.Error()
}

// Fatal starts a fatal-level event; the process exits when it is sent.
func Fatal() *zerolog.Event {
	return defaultLogger.Fatal()
}

func init() {
	// Pretty output until Configure runs with the real settings.
	Configure(Config{Level: InfoLevel, Pretty: true})
}
