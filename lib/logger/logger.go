package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var LOG_LEVELS = map[string]zapcore.Level{
	"debug":  zapcore.DebugLevel,
	"info":   zapcore.InfoLevel,
	"warn":   zapcore.WarnLevel,
	"error":  zapcore.ErrorLevel,
	"dpanic": zapcore.DPanicLevel,
	"panic":  zapcore.PanicLevel,
	"fatal":  zapcore.FatalLevel,
}

// BuildLogger は、指定されたログレベルと出力先でzapロガーを構築します。
// 不正なレベル名の場合は nil を返します。
func BuildLogger(ll *string, o *string) *zap.Logger {
	logLevel := zap.NewAtomicLevel()
	level, ok := LOG_LEVELS[*ll]
	if !ok {
		return nil
	}
	logLevel.SetLevel(level)
	zapConfig := zap.Config{
		Level:    logLevel,
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "Time",
			LevelKey:       "Level",
			NameKey:        "Name",
			CallerKey:      "Caller",
			MessageKey:     "Msg",
			StacktraceKey:  "St",
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{*o},
		ErrorOutputPaths: []string{"stderr"},
	}
	l, _ := zapConfig.Build()
	return l
}
