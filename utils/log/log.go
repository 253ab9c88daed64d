package log

import (
	"context"
	"directory-service/utils"
	"directory-service/utils/consts"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLogger builds the process logger from config and installs it as the
// zap global. Returns the logger for the http middleware.
func InitLogger(config utils.LoggerConfig) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	if config.Level != "" {
		level, err := zapcore.ParseLevel(config.Level)
		if err != nil {
			return nil, err
		}
		zapConfig.Level = zap.NewAtomicLevelAt(level)
	}
	if config.LogFileName != "" {
		zapConfig.OutputPaths = append(zapConfig.OutputPaths, config.LogFileName)
	}
	logger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

// FromContext returns the request logger when one is stored in the context,
// otherwise the global logger.
func FromContext(c context.Context) *zap.Logger {
	if logger, ok := c.Value(consts.ReqLogger).(*zap.Logger); ok {
		return logger
	}
	return zap.L()
}

func LogNTraceError(msg string, err error, c context.Context) {
	FromContext(c).Error(msg, zap.Error(err))
}

// LogNTraceEnterExit logs handler entry and returns a function logging exit
// with the elapsed time. Use with defer.
func LogNTraceEnterExit(name string, c context.Context) func() {
	logger := FromContext(c)
	logger.Debug("enter " + name)
	start := time.Now()
	return func() {
		logger.Debug("exit "+name, zap.Duration("elapsed", time.Since(start)))
	}
}
