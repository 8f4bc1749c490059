package main

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/alnah/go-printdoc/internal/config"
)

// newLogger builds the CLI logger: a console encoder on w at the level
// named by the config. "none" discards everything.
func newLogger(level string, w io.Writer) *zap.Logger {
	var minLevel zapcore.Level
	switch strings.ToLower(level) {
	case config.LogLevelNone:
		return zap.NewNop()
	case config.LogLevelDebug:
		minLevel = zapcore.DebugLevel
	default:
		minLevel = zapcore.InfoLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.CallerKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		minLevel,
	)
	return zap.New(core)
}

// logLevel resolves the effective level: quiet and verbose flags win over
// the config.
func logLevel(cfgLevel string, quiet, verbose bool) string {
	switch {
	case quiet:
		return config.LogLevelNone
	case verbose:
		return config.LogLevelDebug
	case cfgLevel == "":
		return config.LogLevelNormal
	}
	return cfgLevel
}
