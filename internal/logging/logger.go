package logging

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps a zap logger together with the sink it writes to, so both can
// be flushed and released on exit.
type Logger struct {
	*zap.Logger
	sink io.Closer
}

// NewLogger returns a JSON logger. With a logDir it writes probe.log there
// through lumberjack at info level; without one it writes warnings and errors
// to stderr. Stdout is never used.
func NewLogger(logDir string) (*Logger, error) {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	enc := zapcore.NewJSONEncoder(cfg)

	if logDir == "" {
		core := zapcore.NewCore(enc, zapcore.Lock(os.Stderr), zap.WarnLevel)
		return &Logger{Logger: zap.New(core)}, nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}
	lj := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "probe.log"),
		MaxSize:    10, // MB
		MaxBackups: 5,
		MaxAge:     14, // days
		Compress:   true,
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(lj), zap.InfoLevel)
	return &Logger{Logger: zap.New(core), sink: lj}, nil
}

// Nop is used when the real logger cannot be built.
func Nop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// Close flushes buffered entries and closes the file sink, if any.
func (l *Logger) Close() error {
	// Sync on a locked stderr reports EINVAL on some platforms; it carries
	// no information worth surfacing.
	var err error
	if l.sink != nil {
		err = multierr.Append(l.Logger.Sync(), l.sink.Close())
	} else {
		_ = l.Logger.Sync()
	}
	return err
}
