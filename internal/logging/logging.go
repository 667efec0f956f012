// Package logging builds the process zap logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects the outputs of New.
type Options struct {
	// Level is a zap level name; empty means info.
	Level string

	// Dir receives madboat.log as rotated JSON. Empty disables file output.
	Dir string

	// Console writes human-readable lines to this writer. nil disables it.
	// The terminal UI leaves it nil since the alt screen owns stdout.
	Console io.Writer
}

// New returns a logger teeing a rotating JSON file core and a console core.
// With neither output configured it returns a no-op logger.
func New(opts Options) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			return nil, fmt.Errorf("log level %q: %w", opts.Level, err)
		}
	}

	var cores []zapcore.Core
	if opts.Dir != "" {
		core, err := fileCore(opts.Dir, level)
		if err != nil {
			return nil, err
		}
		cores = append(cores, core)
	}
	if opts.Console != nil {
		cores = append(cores, consoleCore(opts.Console, level))
	}
	if len(cores) == 0 {
		return zap.NewNop(), nil
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

// DefaultDir is the XDG state directory for log files.
func DefaultDir() string {
	base := os.Getenv("XDG_STATE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(base, "madboat", "logs")
}

func fileCore(dir string, level zapcore.Level) (zapcore.Core, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	enc := zapcore.EncoderConfig{
		MessageKey:   "message",
		LevelKey:     "level",
		TimeKey:      "time",
		NameKey:      "logger",
		CallerKey:    "caller",
		EncodeLevel:  zapcore.CapitalLevelEncoder,
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
		EncodeName:   zapcore.FullNameEncoder,
	}
	w := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(dir, "madboat.log"),
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     14, // days
		Compress:   true,
	})
	return zapcore.NewCore(zapcore.NewJSONEncoder(enc), w, level), nil
}

func consoleCore(w io.Writer, level zapcore.Level) zapcore.Core {
	enc := zap.NewDevelopmentEncoderConfig()
	if f, ok := w.(*os.File); ok && isTerminal(f) {
		enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
