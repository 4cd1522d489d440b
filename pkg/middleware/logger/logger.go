package logger

import (
	"context"
	"os"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type ServiceEnv struct {
	Platform string
	Service  string
	Env      string
}

type LogConfig struct {
	Path     string
	LogLevel string
	ServiceEnv
}

var (
	base  *zap.Logger
	sugar *otelzap.SugaredLogger
)

// Init wires the process logger: JSON to a rotated file plus console in
// dev, with trace ids attached through otelzap.
func Init(conf *LogConfig) {
	level := zapcore.InfoLevel
	if err := level.Set(conf.LogLevel); err != nil {
		level = zapcore.InfoLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   conf.Path,
		MaxSize:    128, // MB
		MaxBackups: 7,
		MaxAge:     14, // days
		Compress:   true,
	})

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), fileWriter, level),
	}
	if conf.Env == "dev" {
		cores = append(cores,
			zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(os.Stdout), level))
	}

	base = zap.New(zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.Fields(
			zap.String("platform", conf.Platform),
			zap.String("service", conf.Service),
			zap.String("env", conf.Env),
		))

	sugar = otelzap.New(base, otelzap.WithMinLevel(level)).Sugar()
}

func Close() {
	if base != nil {
		_ = base.Sync()
	}
}

func Debugf(ctx context.Context, format string, args ...any) {
	if sugar == nil {
		return
	}
	sugar.Ctx(ctx).Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...any) {
	if sugar == nil {
		return
	}
	sugar.Ctx(ctx).Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...any) {
	if sugar == nil {
		return
	}
	sugar.Ctx(ctx).Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...any) {
	if sugar == nil {
		return
	}
	sugar.Ctx(ctx).Errorf(format, args...)
}

func Fatalf(ctx context.Context, format string, args ...any) {
	if sugar == nil {
		os.Exit(1)
	}
	sugar.Ctx(ctx).Fatalf(format, args...)
}
