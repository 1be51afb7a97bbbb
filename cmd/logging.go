package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
	"github.com/tebeka/atexit"
)

func parseLogLevel(level string) (slog.Level, error) {
	var result slog.Level
	err := result.UnmarshalText([]byte(strings.TrimSpace(level)))
	return result, err
}

func newHandler(format string, file *os.File, level slog.Level) slog.Handler {
	options := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(format, "json") {
		return slog.NewJSONHandler(file, options)
	}

	return slog.NewTextHandler(file, options)
}

// Installs the default logger. Logs always go to stderr, and also to logFile if given
func setupLogging(level string, format string, logFile string) error {
	logLevel, err := parseLogLevel(level)
	if err != nil {
		return fmt.Errorf("parsing log level '%v': %w", level, err)
	}

	handlers := []slog.Handler{newHandler(format, os.Stderr, logLevel)}

	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}

		atexit.Register(func() {
			_ = file.Close()
		})

		handlers = append(handlers, newHandler(format, file, slog.LevelDebug))
	}

	slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))
	return nil
}
