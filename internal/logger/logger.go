package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the global SugaredLogger instance.
// Initialized with a no-op logger until Initialize is called.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Rotation settings for file output.
const (
	maxSizeMB  = 100
	maxBackups = 5
	maxAgeDays = 30
)

// Initialize sets up the global logger with the given log level.
func Initialize(level string) error {
	return InitializeWithFile(level, "")
}

// InitializeWithFile sets up the global logger writing JSON to stderr and,
// when path is not empty, to a size-rotated file as well.
func InitializeWithFile(level string, path string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	if path == "" {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(lvl)

		logger, err := cfg.Build()
		if err != nil {
			return err
		}

		Log = logger.Sugar()
		return nil
	}

	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	file := zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	})

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), lvl),
		zapcore.NewCore(encoder, file, lvl),
	)

	Log = zap.New(core, zap.AddCaller()).Sugar()
	return nil
}
