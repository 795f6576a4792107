package config

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns the console logger for a log level: "none" discards
// everything, "warn" reports rejected attributes, "debug" adds every dropped
// attribute. Output goes to w, or stderr when w is nil.
func NewLogger(level string, w io.Writer) (*zap.Logger, error) {
	var lvl zapcore.Level
	switch level {
	case "none":
		return zap.NewNop(), nil
	case "", "warn":
		lvl = zapcore.WarnLevel
	case "debug":
		lvl = zapcore.DebugLevel
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}

	if w == nil {
		w = os.Stderr
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(zapcore.AddSync(w)), lvl)
	return zap.New(core).Named("bbc"), nil
}
