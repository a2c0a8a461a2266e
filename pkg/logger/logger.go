// Package logger configures the process-wide slog logger shared by the
// kernos binaries. Library packages do not log; binaries do.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Init installs a text slog handler at the given level as the default
// logger. When path is non-empty the log is written both to stdout and,
// appending, to the file at path.
func Init(path, level string) error {
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		w = io.MultiWriter(os.Stdout, f)
	}

	lvl, err := parseLevel(level)
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
	if err != nil {
		slog.Warn(err.Error())
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO", "":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q, using INFO", s)
	}
}
