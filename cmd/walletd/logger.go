package main

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type logConfig struct {
	Level      string `long:"log-level" env:"WALLETD_LOG_LEVEL" default:"info" description:"log level (debug, info, warn, error)"`
	File       string `long:"log-file" env:"WALLETD_LOG_FILE" description:"also write JSON logs to this rotated file"`
	MaxSizeMB  int    `long:"log-max-size" env:"WALLETD_LOG_MAX_SIZE" default:"100" description:"rotate the log file at this size in megabytes"`
	MaxBackups int    `long:"log-max-backups" env:"WALLETD_LOG_MAX_BACKUPS" default:"10" description:"rotated log files to keep"`
}

// newLogger builds the development console logger, teed into a rotating
// JSON file when one is configured.
func newLogger(cfg logConfig) (*zap.Logger, func(), error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	devCfg := zap.NewDevelopmentConfig()
	devCfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := devCfg.Build()
	if err != nil {
		return nil, nil, err
	}
	if cfg.File == "" {
		return logger, func() { _ = logger.Sync() }, nil
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		Compress:   true,
	}
	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(rotator),
		level,
	)
	logger = logger.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, fileCore)
	}))
	return logger, func() {
		_ = logger.Sync()
		_ = rotator.Close()
	}, nil
}
