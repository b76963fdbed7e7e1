package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/hapi/internal/config"
	"github.com/wheelibin/hapi/internal/constants"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Level maps a config level name onto a log level. Unknown names fall back to
// info.
func Level(name string) log.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// NewLogger writes to stderr, or to a rotated file when LogFile is set. The
// returned func closes the file.
func NewLogger(cfg config.Config) (*log.Logger, func() error) {
	var w io.Writer = os.Stderr
	closeFn := func() error { return nil }

	if cfg.LogFile != "" {
		lj := &lumberjack.Logger{
			Filename: cfg.LogFile,
			MaxAge:   constants.DefaultLogMaxAgeDays,
		}
		w = lj
		closeFn = lj.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           Level(cfg.LogLevel),
		ReportTimestamp: true,
		TimeFormat:      constants.LogTimeFormat,
	})

	return logger, closeFn
}
