package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Output encodings.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

const defaultLevel = "info"

// New builds a logger writing to stderr. An empty level falls back to the
// LOG_LEVEL environment variable and then to info.
func New(level, format string) (*zap.Logger, error) {
	atomic, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	switch format {
	case "", FormatConsole:
		format = FormatConsole
	case FormatJSON:
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	cfg := zap.Config{
		Level:             atomic,
		Encoding:          format,
		EncoderConfig:     encoderConfig(format),
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
		DisableCaller:     format == FormatConsole,
		DisableStacktrace: true,
	}

	return cfg.Build()
}

// ParseLevel resolves a level name. Empty input reads LOG_LEVEL.
func ParseLevel(level string) (zap.AtomicLevel, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		level = strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	}
	if level == "" {
		level = defaultLevel
	}

	atomic := zap.NewAtomicLevel()
	if err := atomic.UnmarshalText([]byte(level)); err != nil {
		return atomic, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return atomic, nil
}

func encoderConfig(format string) zapcore.EncoderConfig {
	if format == FormatConsole {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		return cfg
	}

	return zapcore.EncoderConfig{
		MessageKey: "message",
		TimeKey:    "timestamp",
		LevelKey:   "severity",
		EncodeTime: zapcore.RFC3339NanoTimeEncoder,
		EncodeLevel: func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(strings.ToUpper(level.String()))
		},
		CallerKey:      "caller",
		EncodeCaller:   zapcore.ShortCallerEncoder,
		StacktraceKey:  "stacktrace",
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}
