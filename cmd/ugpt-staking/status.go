package main

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"github.com/ugpt-protocol/ugpt-staking/cmd/ugpt-staking/common"
	"github.com/ugpt-protocol/ugpt-staking/internal/bridge"
	"github.com/ugpt-protocol/ugpt-staking/internal/components/txstate"
	"github.com/ugpt-protocol/ugpt-staking/pkg/loggers"
	"github.com/ugpt-protocol/ugpt-staking/pkg/repo"
	"github.com/ugpt-protocol/ugpt-staking/pkg/units"
)

var watchArgs = struct {
	Metrics bool
}{}

var statusCMD = &cli.Command{
	Name:   "status",
	Usage:  "Show token balance, staked amount and pending rewards of the wallet",
	Action: status,
	Flags:  common.WalletFlags(),
}

var watchCMD = &cli.Command{
	Name:   "watch",
	Usage:  "Refresh balance and staking position periodically",
	Action: watch,
	Flags: append(common.WalletFlags(), &cli.BoolFlag{
		Name:        "metrics",
		Usage:       "Serve prometheus metrics on monitor.listen",
		Destination: &watchArgs.Metrics,
		Required:    false,
	}),
}

func status(ctx *cli.Context) error {
	s, err := common.PrepareSession(ctx, false, nil)
	if err != nil {
		return err
	}
	defer s.Close()

	snap, err := s.Bridge.Refresh(ctx.Context)
	renderSnapshot(s.Repo.Config.Display, snap)
	return err
}

func watch(ctx *cli.Context) error {
	reg := prometheus.NewRegistry()
	s, err := common.PrepareSession(ctx, true, reg)
	if err != nil {
		return err
	}
	defer s.Close()
	logger := loggers.Logger(loggers.App)

	watchCtx, cancel := signal.NotifyContext(ctx.Context, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if watchArgs.Metrics || s.Repo.Config.Monitor.Enable {
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		server, err := startMonitor(s.Repo.Config.Monitor.Listen, reg)
		if err != nil {
			return err
		}
		logger.WithField("listen", s.Repo.Config.Monitor.Listen).Info("Monitor started")
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			_ = server.Shutdown(shutdownCtx)
		}()
	}

	interval := s.Repo.Config.Display.RefreshInterval.ToDuration()
	if interval <= 0 {
		return errors.New("display.refresh_interval must be positive")
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		snap, err := s.Bridge.Refresh(watchCtx)
		if err != nil && watchCtx.Err() == nil {
			logger.WithField("err", err).Warn("Refresh failed")
		}
		fmt.Println(color.New(color.Faint).Sprint(time.Now().Format(time.DateTime)))
		renderSnapshot(s.Repo.Config.Display, snap)

		select {
		case <-watchCtx.Done():
			fmt.Println("received interrupt signal, shutting down...")
			return nil
		case <-ticker.C:
		}
	}
}

func startMonitor(listen string, reg *prometheus.Registry) (*http.Server, error) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	server := &http.Server{
		Addr:              listen,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	select {
	case err := <-errCh:
		return nil, errors.Wrap(err, "start monitor failed")
	case <-time.After(100 * time.Millisecond):
		return server, nil
	}
}

func renderSnapshot(display repo.Display, snap bridge.Snapshot) {
	if !snap.Balance.Present && !snap.Position.Present && snap.BalanceErr == nil && snap.PositionErr == nil {
		fmt.Println(color.YellowString("no wallet connected"))
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Item", "Amount"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.Append([]string{"Account", lo.Ternary(snap.Balance.Present, snap.Balance.Account.Hex(), "-")})
	table.Append([]string{"Wallet balance", formatRead(display, snap.Balance.Present, snap.Balance.Amount, snap.BalanceErr)})
	table.Append([]string{"Staked", formatRead(display, snap.Position.Present, snap.Position.Staked, snap.PositionErr)})
	table.Append([]string{"Pending rewards", formatRead(display, snap.Position.Present, snap.Position.Pending, snap.PositionErr)})
	table.Render()
}

func formatRead(display repo.Display, present bool, v *big.Int, err error) string {
	switch {
	case err != nil:
		return color.RedString("error")
	case !present:
		return "-"
	default:
		return fmt.Sprintf("%s %s", units.FormatDisplay(v, display.Precision), display.Symbol)
	}
}

func renderStatus(st txstate.Status) string {
	text := fmt.Sprintf("%s: %s", st.Op, st.State)
	switch st.State {
	case txstate.Pending:
		return color.YellowString(text)
	case txstate.Confirmed:
		return color.GreenString(text)
	case txstate.Failed:
		return color.RedString(text)
	default:
		return text
	}
}
