// Package logger is the process-wide structured logger.
//
// Call sites pass a message followed by key/value pairs:
//
//	logger.Info("Server starting", "address", addr)
//	logger.Error("Failed to load artifacts", "error", err)
//
// A bare error without a key is accepted and logged under "error".
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	log zerolog.Logger
	mu  sync.RWMutex
)

func init() {
	configure("development", "info", os.Stderr)
}

// Init configures the logger for the given environment. Production writes JSON,
// anything else writes human readable console output. LOG_LEVEL overrides the
// default level (debug in development, info otherwise).
func Init(env string) {
	configure(env, os.Getenv("LOG_LEVEL"), os.Stderr)
}

func configure(env, level string, out io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	if level == "" {
		level = "info"
		if env == "development" {
			level = "debug"
		}
	}

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.MessageFieldName = "message"

	w := out
	if env != "production" {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05", NoColor: true}
	}

	log = zerolog.New(w).Level(parseLevel(level)).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func get() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := log
	return &l
}

func Debug(msg string, args ...any) { emit(get().Debug(), msg, args) }

func Info(msg string, args ...any) { emit(get().Info(), msg, args) }

func Warn(msg string, args ...any) { emit(get().Warn(), msg, args) }

func Error(msg string, args ...any) { emit(get().Error(), msg, args) }

// Fatal logs and exits the process with status 1.
func Fatal(msg string, args ...any) { emit(get().Fatal(), msg, args) }

func emit(ev *zerolog.Event, msg string, args []any) {
	if ev == nil {
		return
	}
	for i := 0; i < len(args); i++ {
		switch k := args[i].(type) {
		case error:
			ev = ev.Err(k)
		case string:
			if i+1 >= len(args) {
				ev = ev.Str("detail", k)
				continue
			}
			v := args[i+1]
			i++
			if err, ok := v.(error); ok {
				ev = ev.AnErr(k, err)
				continue
			}
			ev = ev.Interface(k, v)
		default:
			ev = ev.Interface(fmt.Sprintf("arg%d", i), k)
		}
	}
	ev.Msg(msg)
}
