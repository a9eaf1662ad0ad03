package main

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/yacobolo/stylegen/internal/report"
)

// Console log levels
const (
	levelNone   = "none"
	levelNormal = "normal"
	levelDebug  = "debug"
)

// newLogger builds the console logger. Logs go to w (stderr in production)
// so stdout stays clean for stylesheet and JSON output.
func newLogger(level string, w io.Writer, useColors bool) *zap.Logger {
	var enabler zap.LevelEnablerFunc
	switch level {
	case levelDebug:
		enabler = func(lvl zapcore.Level) bool { return lvl >= zapcore.DebugLevel }
	case levelNormal:
		enabler = func(lvl zapcore.Level) bool { return lvl >= zapcore.WarnLevel }
	default:
		return zap.NewNop()
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	if useColors {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.TimeKey = zapcore.OmitKey
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(zapcore.AddSync(w)), enabler)
	return zap.New(core).Named("stylegen")
}

// commandLogger builds the logger for the current command from koanf state.
func commandLogger() *zap.Logger {
	useColors := report.ShouldUseColors(getBoolWithFallback("color", "color", false))
	return newLogger(logLevel(), os.Stderr, useColors)
}
