package bridge

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ugpt-protocol/ugpt-staking/internal/components/txstate"
	"github.com/ugpt-protocol/ugpt-staking/internal/contracts/revenue_vault"
	"github.com/ugpt-protocol/ugpt-staking/internal/contracts/ugpt_token"
	"github.com/ugpt-protocol/ugpt-staking/internal/wallet"
	"github.com/ugpt-protocol/ugpt-staking/pkg/packer"
	"github.com/ugpt-protocol/ugpt-staking/pkg/repo"
	"github.com/ugpt-protocol/ugpt-staking/pkg/units"
)

//go:generate mockgen -destination mock_bridge/mock_bridge.go -package mock_bridge -source bridge.go -typed

var (
	ErrNotConnected     = wallet.ErrNotConnected
	ErrOperationPending = txstate.ErrPending
	ErrExecutionFailed  = errors.New("tx confirmed, but execution failed")
	ErrInvalidSpender   = errors.New("spender is the zero address")
)

// StakerInfo is the getStaker result as returned by the vault binding.
type StakerInfo = struct {
	Staked  *big.Int
	Pending *big.Int
}

type TokenContract interface {
	BalanceOf(opts *bind.CallOpts, account common.Address) (*big.Int, error)

	Approve(opts *bind.TransactOpts, spender common.Address, amount *big.Int) (*types.Transaction, error)
}

type VaultContract interface {
	GetStaker(opts *bind.CallOpts, user common.Address) (StakerInfo, error)

	Stake(opts *bind.TransactOpts, amount *big.Int) (*types.Transaction, error)

	ClaimRevenue(opts *bind.TransactOpts) (*types.Transaction, error)
}

// Backend is the part of the node client used to submit and confirm writes.
type Backend interface {
	ChainID(ctx context.Context) (*big.Int, error)

	SendTransaction(ctx context.Context, tx *types.Transaction) error

	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

type TokenBalance struct {
	Account common.Address
	Amount  *big.Int

	// false when no account was given, Amount is nil then
	Present bool
}

type StakerPosition struct {
	Account common.Address
	Staked  *big.Int
	Pending *big.Int
	Present bool
}

// Snapshot is the result of one Refresh. Each half keeps its own error.
type Snapshot struct {
	Balance     TokenBalance
	BalanceErr  error
	Position    StakerPosition
	PositionErr error
}

// Outcome describes a write that reached Pending. Err is set iff State is Failed.
type Outcome struct {
	Op      txstate.Op
	State   txstate.State
	Amount  *big.Int
	TxHash  common.Hash
	Receipt *types.Receipt
	Err     error
}

type Config struct {
	Vault          common.Address
	ConfirmTimeout time.Duration
	PollInterval   time.Duration
}

type Bridge struct {
	cfg     Config
	backend Backend
	token   TokenContract
	vault   VaultContract
	session wallet.Session
	tracker *txstate.Tracker
	metrics *metrics
	logger  logrus.FieldLogger

	mu          sync.RWMutex
	lastBalance *big.Int
	lastAccount common.Address
}

func New(cfg Config, backend Backend, token TokenContract, vault VaultContract, session wallet.Session, reg prometheus.Registerer, logger logrus.FieldLogger) (*Bridge, error) {
	if cfg.PollInterval <= 0 {
		return nil, errors.New("poll interval must be positive")
	}
	if cfg.ConfirmTimeout < cfg.PollInterval {
		return nil, errors.New("confirm timeout must not be shorter than poll interval")
	}
	m, err := newMetrics(reg)
	if err != nil {
		return nil, err
	}
	return &Bridge{
		cfg:     cfg,
		backend: backend,
		token:   token,
		vault:   vault,
		session: session,
		tracker: txstate.NewTracker(),
		metrics: m,
		logger:  logger,
	}, nil
}

// NewWithClient binds the configured token and vault contracts on client.
func NewWithClient(client *ethclient.Client, cfg *repo.Config, session wallet.Session, reg prometheus.Registerer, logger logrus.FieldLogger) (*Bridge, error) {
	token, err := ugpt_token.NewBindingContract(cfg.Contracts.TokenAddress(), client)
	if err != nil {
		return nil, errors.Wrap(err, "bind token contract failed")
	}
	vault, err := revenue_vault.NewBindingContract(cfg.Contracts.VaultAddress(), client)
	if err != nil {
		return nil, errors.Wrap(err, "bind vault contract failed")
	}
	return New(Config{
		Vault:          cfg.Contracts.VaultAddress(),
		ConfirmTimeout: cfg.Tx.ConfirmTimeout.ToDuration(),
		PollInterval:   cfg.Tx.PollInterval.ToDuration(),
	}, client, token, vault, session, reg, logger)
}

func (b *Bridge) Vault() common.Address {
	return b.cfg.Vault
}

func (b *Bridge) Tracker() *txstate.Tracker {
	return b.tracker
}

// Account returns the session account, nil when no wallet is connected.
func (b *Bridge) Account() *common.Address {
	addr, ok := b.session.Account()
	if !ok {
		return nil
	}
	return &addr
}

// ReadBalance returns the token balance of account. A nil account yields a
// result without data and no call is made.
func (b *Bridge) ReadBalance(ctx context.Context, account *common.Address) (TokenBalance, error) {
	if account == nil {
		b.mu.Lock()
		b.lastBalance = nil
		b.mu.Unlock()
		return TokenBalance{}, nil
	}
	start := time.Now()
	amount, err := b.token.BalanceOf(&bind.CallOpts{Context: ctx, From: *account}, *account)
	b.metrics.readDuration.WithLabelValues("balanceOf").Observe(time.Since(start).Seconds())
	if err != nil {
		return TokenBalance{}, errors.Wrap(revertOr(err), "read balance failed")
	}

	b.mu.Lock()
	b.lastBalance = new(big.Int).Set(amount)
	b.lastAccount = *account
	b.mu.Unlock()

	return TokenBalance{Account: *account, Amount: amount, Present: true}, nil
}

// ReadStakerPosition returns the staked amount and pending reward of account.
// A nil account yields a result without data and no call is made.
func (b *Bridge) ReadStakerPosition(ctx context.Context, account *common.Address) (StakerPosition, error) {
	if account == nil {
		return StakerPosition{}, nil
	}
	start := time.Now()
	info, err := b.vault.GetStaker(&bind.CallOpts{Context: ctx, From: *account}, *account)
	b.metrics.readDuration.WithLabelValues("getStaker").Observe(time.Since(start).Seconds())
	if err != nil {
		return StakerPosition{}, errors.Wrap(revertOr(err), "read staker position failed")
	}
	return StakerPosition{
		Account: *account,
		Staked:  lo.Ternary(info.Staked != nil, info.Staked, new(big.Int)),
		Pending: lo.Ternary(info.Pending != nil, info.Pending, new(big.Int)),
		Present: true,
	}, nil
}

// Refresh reads balance and position of the session account concurrently. The
// returned error is the first failure; the snapshot still holds the other read.
func (b *Bridge) Refresh(ctx context.Context) (Snapshot, error) {
	account := b.Account()
	var (
		snap Snapshot
		g    errgroup.Group
	)
	g.Go(func() error {
		snap.Balance, snap.BalanceErr = b.ReadBalance(ctx, account)
		return snap.BalanceErr
	})
	g.Go(func() error {
		snap.Position, snap.PositionErr = b.ReadStakerPosition(ctx, account)
		return snap.PositionErr
	})
	err := g.Wait()
	return snap, err
}

// MaxAmount renders the last fetched balance exactly, so that passing it back to
// Approve or Stake submits that balance unchanged. It returns false before any
// balance was fetched, and when the fetched balance belongs to another account
// than the connected one.
func (b *Bridge) MaxAmount() (string, bool) {
	account := b.Account()
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.lastBalance == nil || account == nil || *account != b.lastAccount {
		return "", false
	}
	return units.FormatAmount(b.lastBalance), true
}

// Statuses lists the state of every write operation.
func (b *Bridge) Statuses() []txstate.Status {
	return lo.Map([]txstate.Op{txstate.OpApprove, txstate.OpStake, txstate.OpClaim}, func(op txstate.Op, _ int) txstate.Status {
		return b.tracker.Status(op)
	})
}

func revertOr(err error) error {
	if revertErr, ok := packer.ParseRevert(err); ok {
		return revertErr
	}
	return err
}
