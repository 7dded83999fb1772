package loggers

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slog"
)

var _ slog.Handler = (*LogrusHandler)(nil)

var levelMap = map[slog.Level]logrus.Level{
	slog.LevelDebug: logrus.DebugLevel,
	slog.LevelInfo:  logrus.InfoLevel,
	slog.LevelWarn:  logrus.WarnLevel,
	slog.LevelError: logrus.ErrorLevel,
}

var levelMapReverse = map[logrus.Level]slog.Level{
	logrus.TraceLevel: slog.LevelDebug,
	logrus.DebugLevel: slog.LevelDebug,
	logrus.InfoLevel:  slog.LevelInfo,
	logrus.WarnLevel:  slog.LevelWarn,
	logrus.ErrorLevel: slog.LevelError,
	logrus.FatalLevel: slog.LevelError,
	logrus.PanicLevel: slog.LevelError,
}

// LogrusHandler feeds go-ethereum's slog records (rpc client, abi binding) into logrus.
type LogrusHandler struct {
	Logger *logrus.Entry
	Level  slog.Leveler
	attrs  logrus.Fields
}

func (h *LogrusHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.Level.Level()
}

func (h *LogrusHandler) Handle(ctx context.Context, record slog.Record) error {
	level, ok := levelMap[record.Level]
	if !ok {
		// geth trace and crit levels sit outside the four standard ones
		level = logrus.TraceLevel
		if record.Level > slog.LevelError {
			level = logrus.ErrorLevel
		}
	}

	args := make(logrus.Fields, len(h.attrs)+record.NumAttrs())
	for k, v := range h.attrs {
		args[k] = v
	}
	record.Attrs(func(attr slog.Attr) bool {
		args[attr.Key] = attr.Value.Any()
		return true
	})

	h.Logger.
		WithContext(ctx).
		WithTime(record.Time).
		WithFields(args).
		Log(level, record.Message)
	return nil
}

func (h *LogrusHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	fields := make(logrus.Fields, len(h.attrs)+len(attrs))
	for k, v := range h.attrs {
		fields[k] = v
	}
	for _, attr := range attrs {
		fields[attr.Key] = attr.Value.Any()
	}
	return &LogrusHandler{
		Logger: h.Logger,
		Level:  h.Level,
		attrs:  fields,
	}
}

func (h *LogrusHandler) WithGroup(name string) slog.Handler {
	return &LogrusHandler{
		Logger: h.Logger,
		Level:  h.Level,
		attrs:  h.attrs,
	}
}
