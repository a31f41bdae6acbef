package logger

import (
	"fmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
	"os"
	"path/filepath"
	"strings"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"

	defaultFileName = "payload.log"
)

type LogOption struct {
	Format   string // "console" 或 "json"
	LogDir   string // 为空时输出到 stderr，stdout 只用于 payload 输出
	Level    string // debug / info / warn / error
	Compress bool   // 是否压缩轮转后的日志文件
}

var (
	base  = zap.NewNop()
	sugar = base.Sugar()
)

func init() {
	// 未调用 Init 时也保证错误可见
	if l, err := build(LogOption{Format: FormatConsole, Level: "info"}); err == nil {
		setLogger(l)
	}
}

// Init 根据配置初始化全局 logger
func Init(opt LogOption) error {
	l, err := build(opt)
	if err != nil {
		return err
	}
	setLogger(l)
	return nil
}

func setLogger(l *zap.Logger) {
	base = l
	sugar = l.Sugar()
}

func build(opt LogOption) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if opt.Level != "" {
		lv, err := zapcore.ParseLevel(opt.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opt.Level, err)
		}
		level = lv
	}

	encoder, err := newEncoder(opt.Format)
	if err != nil {
		return nil, err
	}

	ws, err := newWriteSyncer(opt)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(encoder, ws, level)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)), nil
}

func newEncoder(format string) (zapcore.Encoder, error) {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	switch strings.ToLower(format) {
	case FormatJSON:
		return zapcore.NewJSONEncoder(cfg), nil
	case FormatConsole, "":
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported log format %q, want console or json", format)
	}
}

func newWriteSyncer(opt LogOption) (zapcore.WriteSyncer, error) {
	if opt.LogDir == "" {
		return zapcore.Lock(os.Stderr), nil
	}
	if err := os.MkdirAll(opt.LogDir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir %q: %w", opt.LogDir, err)
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(opt.LogDir, defaultFileName),
		MaxSize:    100, // MB
		MaxBackups: 10,
		MaxAge:     30, // days
		Compress:   opt.Compress,
	}), nil
}

func Debugf(format string, args ...any) {
	sugar.Debugf(format, args...)
}

func Infof(format string, args ...any) {
	sugar.Infof(format, args...)
}

func Warnf(format string, args ...any) {
	sugar.Warnf(format, args...)
}

func Errorf(format string, args ...any) {
	sugar.Errorf(format, args...)
}

func Sync() error {
	return base.Sync()
}
