package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options select the encoding, level and destination of the application log.
type Options struct {
	JSON  bool
	Debug bool
	// File receives the log instead of stderr. The interactive wizard draws
	// on the terminal, so a file keeps its screens readable.
	File string
}

// New builds the application logger. Results are rendered on stdout, so
// logs never go there.
func New(opts Options) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if opts.Debug {
		level = zapcore.DebugLevel
	}

	encoding := "console"
	if opts.JSON {
		encoding = "json"
	}

	output := "stderr"
	if file := strings.TrimSpace(opts.File); file != "" {
		output = file
	}

	cfg := zap.Config{
		Encoding:         encoding,
		Level:            zap.NewAtomicLevelAt(level),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    encoderConfig(),
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger for %s: %w", output, err)
	}
	return l, nil
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey: "step",

		LevelKey:    "level",
		EncodeLevel: zapcore.LowercaseLevelEncoder,

		TimeKey:    "time",
		EncodeTime: zapcore.RFC3339TimeEncoder,

		NameKey: "component",

		CallerKey:    "caller",
		EncodeCaller: zapcore.ShortCallerEncoder,

		EncodeDuration: zapcore.StringDurationEncoder,
	}
}
