package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger *zap.Logger

// Init - initialize the global logger
func Init() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.StacktraceKey = ""

	var err error
	Logger, err = config.Build(
		zap.AddCallerSkip(1), // report caller file/line
	)
	if err != nil {
		panic(err)
	}
}

// Sync - flush buffered log entries
func Sync() {
	_ = Logger.Sync()
}
