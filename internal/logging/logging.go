package logging

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	Sub *zap.Logger
}

func (log *Logger) Info(ctx context.Context, msg string, fields ...zap.Field) {
	log.Sub.Info(msg, decaps(ctx, fields...)...)
}

func (log *Logger) Error(ctx context.Context, msg string, fields ...zap.Field) {
	log.Sub.Error(msg, decaps(ctx, fields...)...)
}

func (log *Logger) Debug(ctx context.Context, msg string, fields ...zap.Field) {
	log.Sub.Debug(msg, decaps(ctx, fields...)...)
}

func (log *Logger) Warn(ctx context.Context, msg string, fields ...zap.Field) {
	log.Sub.Warn(msg, decaps(ctx, fields...)...)
}

func (log *Logger) Sync() error {
	return log.Sub.Sync()
}

type commandKey struct{}

// WithCommand records the CLI command path on ctx; log calls made with the
// returned context carry it as the "command" field.
func WithCommand(ctx context.Context, command string) context.Context {
	return context.WithValue(ctx, commandKey{}, command)
}

func decaps(ctx context.Context, fields ...zap.Field) []zap.Field {
	if ctx == nil {
		return fields
	}

	command, ok := ctx.Value(commandKey{}).(string)
	if !ok || command == "" {
		return fields
	}

	return append([]zap.Field{zap.String("command", command)}, fields...)
}

// New builds a JSON logger writing to stderr at the given level.
func New(level string) (*Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	sub, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return &Logger{Sub: sub}, nil
}

func Nop() *Logger {
	return &Logger{Sub: zap.NewNop()}
}
