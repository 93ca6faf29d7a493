package cli

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds the production JSON logger on w. Recoverable problems are
// already shown to the user, so only errors are logged unless verbose is set.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(cfg.EncoderConfig),
		zapcore.Lock(zapcore.AddSync(w)),
		cfg.Level,
	)
	return zap.New(core, zap.AddCaller()).Named("usagi")
}
