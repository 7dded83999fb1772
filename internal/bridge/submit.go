package bridge

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ugpt-protocol/ugpt-staking/internal/components/txstate"
	"github.com/ugpt-protocol/ugpt-staking/pkg/units"
)

type txBuilder func(opts *bind.TransactOpts) (*types.Transaction, error)

// Approve lets spender move amount tokens of the session account. The amount is
// a decimal token string; invalid or non-positive input is rejected before any
// state change or call.
func (b *Bridge) Approve(ctx context.Context, spender common.Address, amount string) (*Outcome, error) {
	value, err := units.ParseAmount(amount)
	if err != nil {
		return nil, err
	}
	if spender == (common.Address{}) {
		return nil, ErrInvalidSpender
	}
	return b.submit(ctx, txstate.OpApprove, value, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return b.token.Approve(opts, spender, value)
	})
}

// Stake deposits amount tokens into the vault. A covering allowance for the
// vault is expected to exist already.
func (b *Bridge) Stake(ctx context.Context, amount string) (*Outcome, error) {
	value, err := units.ParseAmount(amount)
	if err != nil {
		return nil, err
	}
	return b.submit(ctx, txstate.OpStake, value, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return b.vault.Stake(opts, value)
	})
}

func (b *Bridge) ClaimRevenue(ctx context.Context) (*Outcome, error) {
	return b.submit(ctx, txstate.OpClaim, nil, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return b.vault.ClaimRevenue(opts)
	})
}

// submit runs one write from Pending to a terminal state. Errors returned
// directly mean nothing was submitted; everything after Pending is reported
// through the outcome.
func (b *Bridge) submit(ctx context.Context, op txstate.Op, amount *big.Int, build txBuilder) (*Outcome, error) {
	from, ok := b.session.Account()
	if !ok {
		return nil, ErrNotConnected
	}
	ticket, err := b.tracker.Begin(op)
	if err != nil {
		return nil, err
	}
	b.metrics.submitted.WithLabelValues(string(op)).Inc()
	b.metrics.pending.WithLabelValues(string(op)).Inc()

	logger := b.logger.WithFields(logrus.Fields{"op": op, "from": from.Hex()})
	if amount != nil {
		logger = logger.WithField("amount", units.FormatAmount(amount))
	}
	logger.Info("Submit tx")

	outcome := &Outcome{Op: op, Amount: amount}
	outcome.TxHash, outcome.Receipt, outcome.Err = b.sendAndWaitTx(ctx, ticket, from, build)
	if outcome.Err != nil {
		outcome.State = txstate.Failed
	} else {
		outcome.State = txstate.Confirmed
	}
	ticket.Settle(outcome.Err)

	b.metrics.pending.WithLabelValues(string(op)).Dec()
	b.metrics.settled.WithLabelValues(string(op), outcome.State.String()).Inc()
	if outcome.Err != nil {
		logger.WithFields(logrus.Fields{"tx": outcome.TxHash.Hex(), "err": outcome.Err}).Warn("Tx failed")
	} else {
		logger.WithFields(logrus.Fields{"tx": outcome.TxHash.Hex(), "block": outcome.Receipt.BlockNumber}).Info("Tx confirmed")
	}
	return outcome, nil
}

func (b *Bridge) sendAndWaitTx(ctx context.Context, ticket *txstate.Ticket, from common.Address, build txBuilder) (common.Hash, *types.Receipt, error) {
	chainID, err := b.backend.ChainID(ctx)
	if err != nil {
		return common.Hash{}, nil, errors.Wrap(err, "get chain id failed")
	}
	signerFn, err := b.session.SignerFn(chainID)
	if err != nil {
		return common.Hash{}, nil, err
	}

	tx, err := build(&bind.TransactOpts{
		From:    from,
		Signer:  signerFn,
		Context: ctx,
		NoSend:  true,
	})
	if err != nil {
		return common.Hash{}, nil, errors.Wrap(revertOr(err), "build tx failed")
	}
	txHash := tx.Hash()
	ticket.SetTxHash(txHash)
	b.logger.WithFields(logrus.Fields{"op": ticket.Op(), "tx": txHash.Hex()}).Debug("Build tx")

	if err := b.backend.SendTransaction(ctx, tx); err != nil {
		return txHash, nil, errors.Wrap(revertOr(err), "send tx failed")
	}
	receipt, err := b.waitTxConfirmed(ctx, txHash)
	if err != nil {
		return txHash, nil, errors.Wrap(err, "wait tx confirmed failed")
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return txHash, receipt, ErrExecutionFailed
	}
	return txHash, receipt, nil
}

// waitTxConfirmed polls for the receipt until it shows up, the confirm timeout
// passes or ctx is done.
func (b *Bridge) waitTxConfirmed(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, b.cfg.ConfirmTimeout)
	defer cancel()

	queryTicker := time.NewTicker(b.cfg.PollInterval)
	defer queryTicker.Stop()

	for {
		receipt, err := b.backend.TransactionReceipt(ctx, txHash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			b.logger.WithFields(logrus.Fields{"tx": txHash.Hex(), "err": err}).Debug("Query receipt failed")
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-queryTicker.C:
		}
	}
}
