package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// Init builds the process logger. Production config (JSON, info level)
// unless APP_ENV=development.
func Init() {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "development" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
	}

	l, err := cfg.Build()
	if err != nil {
		l = zap.NewNop()
	}
	log = l
}

func L() *zap.Logger {
	if log == nil {
		Init()
	}
	return log
}

func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
