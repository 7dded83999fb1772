package loggers

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/ethereum/go-ethereum/log"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"

	"github.com/ugpt-protocol/ugpt-staking/pkg/repo"
)

const (
	App    = "app"
	Bridge = "bridge"
	Wallet = "wallet"
	RPC    = "rpc"
)

var w = &LoggerWrapper{
	loggers: map[string]*logrus.Entry{
		App:    newWithModule(logrus.New(), App),
		Bridge: newWithModule(logrus.New(), Bridge),
		Wallet: newWithModule(logrus.New(), Wallet),
		RPC:    newWithModule(logrus.New(), RPC),
	},
}

type LoggerWrapper struct {
	loggers map[string]*logrus.Entry
}

func newWithModule(l *logrus.Logger, module string) *logrus.Entry {
	return l.WithField("module", module)
}

func InitializeEthLog(logger *logrus.Entry) {
	log.SetDefault(log.NewLogger(&LogrusHandler{
		Logger: logger,
		Level:  levelMapReverse[logger.Logger.Level],
	}))
}

// Initialize rebuilds every module logger from config. With persist set, output is
// also written to a daily rotated file under the repo's logs dir.
func Initialize(ctx context.Context, rep *repo.Repo, persist bool) error {
	config := rep.Config

	var out io.Writer = os.Stderr
	if persist {
		logsDir := filepath.Join(rep.RepoRoot, repo.LogsDirName)
		if err := repo.CheckWritable(logsDir); err != nil {
			return fmt.Errorf("log initialize: %w", err)
		}
		rl, err := rotatelogs.New(
			filepath.Join(logsDir, config.Log.Filename+".%Y%m%d.log"),
			rotatelogs.WithLinkName(filepath.Join(logsDir, config.Log.Filename+".log")),
			rotatelogs.WithMaxAge(time.Duration(config.Log.MaxAge)*24*time.Hour),
			rotatelogs.WithRotationTime(config.Log.RotationTime.ToDuration()),
		)
		if err != nil {
			return fmt.Errorf("log initialize: %w", err)
		}
		go func() {
			<-ctx.Done()
			_ = rl.Close()
		}()
		out = io.MultiWriter(os.Stderr, rl)
	}

	newLogger := func(module string, level string) *logrus.Entry {
		l := logrus.New()
		l.SetOutput(out)
		l.SetReportCaller(config.Log.ReportCaller)
		l.SetFormatter(&logrus.TextFormatter{
			ForceColors:     config.Log.EnableColor && !persist,
			DisableColors:   !config.Log.EnableColor || persist,
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02T15:04:05.000",
		})
		l.SetLevel(ParseLevel(level))
		return newWithModule(l, module)
	}

	m := make(map[string]*logrus.Entry)
	m[App] = newLogger(App, config.Log.Level)
	m[Bridge] = newLogger(Bridge, config.Log.Module.Bridge)
	m[Wallet] = newLogger(Wallet, config.Log.Module.Wallet)
	m[RPC] = newLogger(RPC, config.Log.Module.RPC)

	w = &LoggerWrapper{loggers: m}
	InitializeEthLog(m[RPC])
	return nil
}

// ParseLevel falls back to info for unknown level names.
func ParseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

func Logger(name string) logrus.FieldLogger {
	return w.loggers[name]
}
