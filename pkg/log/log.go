package log

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the structured logging surface used across the project.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
	Sync()
}

// Options configures a Logger.
type Options struct {
	// Name appears as the logger name in every entry.
	Name string
	// Level is the minimum enabled level: debug, info, warn, error.
	Level string
	// "console","json"
	Format string
	// EnableColor colorizes levels, console format only.
	EnableColor bool
	// DisableCaller drops the caller annotation.
	DisableCaller bool
	// OutputPaths are zap sink URLs, default stdout.
	OutputPaths []string
}

// NewOptions returns the default options: info level console output.
func NewOptions() *Options {
	return &Options{
		Level:       "info",
		Format:      "console",
		OutputPaths: []string{"stdout"},
	}
}

type zapLogger struct {
	z *zap.SugaredLogger
}

var _ Logger = (*zapLogger)(nil)

// New builds a Logger from opts. Invalid levels fall back to info, invalid
// formats to console.
func New(opts *Options) Logger {
	if opts == nil {
		opts = NewOptions()
	}

	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	format := opts.Format
	if format != "json" {
		format = "console"
	}

	encodeLevel := zapcore.CapitalLevelEncoder
	if format == "console" && opts.EnableColor {
		encodeLevel = zapcore.CapitalColorLevelEncoder
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeLevel = encodeLevel
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeDuration = zapcore.StringDurationEncoder

	outputs := opts.OutputPaths
	if len(outputs) == 0 {
		outputs = []string{"stdout"}
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         format,
		EncoderConfig:    encoderCfg,
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    opts.DisableCaller,
	}

	z, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	if opts.Name != "" {
		z = z.Named(opts.Name)
	}
	return &zapLogger{z: z.Sugar()}
}

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() Logger {
	return &zapLogger{z: zap.NewNop().Sugar()}
}

func (l *zapLogger) Debugf(format string, args ...interface{}) { l.z.Debugf(format, args...) }
func (l *zapLogger) Infof(format string, args ...interface{})  { l.z.Infof(format, args...) }
func (l *zapLogger) Warnf(format string, args ...interface{})  { l.z.Warnf(format, args...) }
func (l *zapLogger) Errorf(format string, args ...interface{}) { l.z.Errorf(format, args...) }

func (l *zapLogger) Debugw(msg string, keysAndValues ...interface{}) { l.z.Debugw(msg, keysAndValues...) }
func (l *zapLogger) Infow(msg string, keysAndValues ...interface{})  { l.z.Infow(msg, keysAndValues...) }
func (l *zapLogger) Warnw(msg string, keysAndValues ...interface{})  { l.z.Warnw(msg, keysAndValues...) }
func (l *zapLogger) Errorw(msg string, keysAndValues ...interface{}) { l.z.Errorw(msg, keysAndValues...) }

func (l *zapLogger) Sync() { _ = l.z.Sync() }

var (
	mu  sync.Mutex
	std = New(NewOptions())
)

// Init replaces the package-level logger. Called once during command startup.
func Init(level, format string) {
	mu.Lock()
	defer mu.Unlock()
	opts := NewOptions()
	opts.Level = level
	opts.Format = format
	std = New(opts)
}

func Debugf(format string, args ...interface{}) { std.Debugf(format, args...) }
func Infof(format string, args ...interface{})  { std.Infof(format, args...) }
func Warnf(format string, args ...interface{})  { std.Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { std.Errorf(format, args...) }

func Infow(msg string, keysAndValues ...interface{})  { std.Infow(msg, keysAndValues...) }
func Warnw(msg string, keysAndValues ...interface{})  { std.Warnw(msg, keysAndValues...) }
func Errorw(msg string, keysAndValues ...interface{}) { std.Errorw(msg, keysAndValues...) }

// Error logs a message at error level through the package-level logger.
func Error(args ...interface{}) {
	std.(*zapLogger).z.Error(args...)
}

// Sync flushes the package-level logger.
func Sync() { std.Sync() }
