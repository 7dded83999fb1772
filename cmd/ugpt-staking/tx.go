package main

import (
	"context"
	"fmt"
	"strings"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/ugpt-protocol/ugpt-staking/cmd/ugpt-staking/common"
	"github.com/ugpt-protocol/ugpt-staking/internal/bridge"
	"github.com/ugpt-protocol/ugpt-staking/internal/components/txstate"
	"github.com/ugpt-protocol/ugpt-staking/pkg/packer"
)

var txArgs = struct {
	Amount  string
	Max     bool
	Spender string
	Yes     bool
}{}

func amountFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "amount",
			Aliases:     []string{"a"},
			Usage:       "Token amount(decimal string, 18 decimals)",
			Destination: &txArgs.Amount,
			Required:    false,
		},
		&cli.BoolFlag{
			Name:        "max",
			Usage:       "Use the whole wallet balance as amount",
			Destination: &txArgs.Max,
			Required:    false,
		},
	}
}

func yesFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "yes",
		Aliases:     []string{"y"},
		Usage:       "Skip the confirmation prompt",
		Destination: &txArgs.Yes,
		Required:    false,
	}
}

var approveCMD = &cli.Command{
	Name:   "approve",
	Usage:  "Approve the revenue vault(or --spender) to spend wallet tokens",
	Action: approve,
	Flags: append(append(amountFlags(),
		&cli.StringFlag{
			Name:        "spender",
			Usage:       "Spender address, defaults to the revenue vault",
			Destination: &txArgs.Spender,
			Required:    false,
		},
		yesFlag(),
	), common.WalletFlags()...),
}

var stakeCMD = &cli.Command{
	Name:   "stake",
	Usage:  "Stake tokens into the revenue vault, approve the vault first",
	Action: stake,
	Flags:  append(append(amountFlags(), yesFlag()), common.WalletFlags()...),
}

var claimCMD = &cli.Command{
	Name:   "claim",
	Usage:  "Claim pending revenue from the vault",
	Action: claim,
	Flags:  append([]cli.Flag{yesFlag()}, common.WalletFlags()...),
}

func approve(ctx *cli.Context) error {
	return runTx(ctx, func(s *common.Session) (string, func(context.Context) (*bridge.Outcome, error), error) {
		amount, err := resolveAmount(ctx.Context, s.Bridge)
		if err != nil {
			return "", nil, err
		}
		spender := s.Bridge.Vault()
		if txArgs.Spender != "" {
			if !ethcommon.IsHexAddress(txArgs.Spender) {
				return "", nil, errors.Errorf("invalid spender address: %s", txArgs.Spender)
			}
			spender = ethcommon.HexToAddress(txArgs.Spender)
		}
		summary := fmt.Sprintf("approve %s %s to %s", amount, s.Repo.Config.Display.Symbol, spender.Hex())
		return summary, func(c context.Context) (*bridge.Outcome, error) {
			return s.Bridge.Approve(c, spender, amount)
		}, nil
	})
}

func stake(ctx *cli.Context) error {
	return runTx(ctx, func(s *common.Session) (string, func(context.Context) (*bridge.Outcome, error), error) {
		amount, err := resolveAmount(ctx.Context, s.Bridge)
		if err != nil {
			return "", nil, err
		}
		summary := fmt.Sprintf("stake %s %s into %s", amount, s.Repo.Config.Display.Symbol, s.Bridge.Vault().Hex())
		return summary, func(c context.Context) (*bridge.Outcome, error) {
			return s.Bridge.Stake(c, amount)
		}, nil
	})
}

func claim(ctx *cli.Context) error {
	return runTx(ctx, func(s *common.Session) (string, func(context.Context) (*bridge.Outcome, error), error) {
		summary := fmt.Sprintf("claim revenue from %s", s.Bridge.Vault().Hex())
		return summary, s.Bridge.ClaimRevenue, nil
	})
}

func resolveAmount(ctx context.Context, b *bridge.Bridge) (string, error) {
	if txArgs.Max {
		bal, err := b.ReadBalance(ctx, b.Account())
		if err != nil {
			return "", err
		}
		if !bal.Present {
			return "", bridge.ErrNotConnected
		}
		amount, _ := b.MaxAmount()
		return amount, nil
	}
	if strings.TrimSpace(txArgs.Amount) == "" {
		return "", errors.New("--amount or --max is required")
	}
	return txArgs.Amount, nil
}

type txPlan func(s *common.Session) (summary string, send func(context.Context) (*bridge.Outcome, error), err error)

func runTx(ctx *cli.Context, plan txPlan) error {
	s, err := common.PrepareSession(ctx, true, nil)
	if err != nil {
		return err
	}
	defer s.Close()

	account := s.Bridge.Account()
	if account == nil {
		return errors.Wrap(bridge.ErrNotConnected, "use --private-key, --keystore or wallet.keystore")
	}
	fmt.Printf("account: %s\n", account.Hex())

	summary, send, err := plan(s)
	if err != nil {
		return err
	}
	fmt.Println(summary)
	if !txArgs.Yes {
		fmt.Println("continue? (y/n)")
		if err := common.WaitUserConfirm(); err != nil {
			return err
		}
	}

	ch := make(chan txstate.Status, 8)
	sub := s.Bridge.Tracker().SubscribeStatusEvent(ch)
	done := make(chan struct{})
	go func() {
		defer close(done)
		printStatuses(ch, sub.Err(), func(st txstate.Status) {
			line := renderStatus(st)
			if st.TxHash != (ethcommon.Hash{}) {
				line = fmt.Sprintf("%s %s/tx/%s", line, strings.TrimSuffix(s.Repo.Config.Contracts.ExplorerURL, "/"), st.TxHash.Hex())
			}
			fmt.Println(line)
		})
	}()

	outcome, err := send(ctx.Context)
	sub.Unsubscribe()
	<-done
	if err != nil {
		return err
	}
	if outcome.State == txstate.Failed {
		var revertErr *packer.RevertError
		if errors.As(outcome.Err, &revertErr) {
			fmt.Println(color.RedString("reverted: %s", revertErr.Reason))
		}
		return outcome.Err
	}
	fmt.Println(color.GreenString("tx confirmed in block %s", outcome.Receipt.BlockNumber))
	return nil
}

// printStatuses hands every status to show until errc fires, then flushes the
// statuses already buffered in ch so the final one is not lost.
func printStatuses(ch <-chan txstate.Status, errc <-chan error, show func(txstate.Status)) {
	for {
		select {
		case st := <-ch:
			show(st)
		case <-errc:
			for {
				select {
				case st := <-ch:
					show(st)
				default:
					return
				}
			}
		}
	}
}
