// Package logging configures the process-wide zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup initializes the global logger with a console writer and, when
// logFilePath is non-empty, a plain JSON file sink alongside it. Debug
// levels map as 0 -> info, 1 -> debug, >=2 -> trace.
func Setup(debugLevel int, logFilePath string) error {
	console := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}

	var out io.Writer = console
	if logFilePath != "" {
		f, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file %q: %w", logFilePath, err)
		}
		out = zerolog.MultiLevelWriter(console, f)
	}

	log.Logger = zerolog.New(out).With().Timestamp().Str("app", "mpvremote").Logger().
		Level(levelFor(debugLevel))
	return nil
}

func levelFor(debugLevel int) zerolog.Level {
	switch {
	case debugLevel <= 0:
		return zerolog.InfoLevel
	case debugLevel == 1:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}
