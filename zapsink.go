package diag

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapSink forwards diagnostic records to a zap logger, for embedders that
// already run structured logging and want diagnostics in the same stream.
// Noise has no zap equivalent and maps to Debug with a marker field.
type ZapSink struct {
	logger *zap.Logger
}

// NewZapSink wraps an existing zap logger as a Sink.
func NewZapSink(logger *zap.Logger) *ZapSink {
	return &ZapSink{logger: logger}
}

// NewDevelopmentZapSink builds a console-encoded zap logger on stdout and
// wraps it as a Sink. The zap level is opened all the way down; gating is
// the compile-time threshold's job, not zap's.
func NewDevelopmentZapSink() (*ZapSink, error) {
	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapcore.DebugLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize zap sink: %w", err)
	}
	return &ZapSink{logger: logger}, nil
}

func (s *ZapSink) Emit(level Level, msg string) {
	switch level {
	case LevelError:
		s.logger.Error(msg)
	case LevelWarn:
		s.logger.Warn(msg)
	case LevelInfo:
		s.logger.Info(msg)
	case LevelDebug:
		s.logger.Debug(msg)
	case LevelNoise:
		s.logger.Debug(msg, zap.Bool("noise", true))
	}
}

// Sync flushes buffered zap output. Call before process exit.
func (s *ZapSink) Sync() {
	_ = s.logger.Sync()
}
