package bridge

import (
	"context"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ugpt-protocol/ugpt-staking/internal/bridge/mock_bridge"
	"github.com/ugpt-protocol/ugpt-staking/internal/components/txstate"
	"github.com/ugpt-protocol/ugpt-staking/internal/wallet"
	"github.com/ugpt-protocol/ugpt-staking/pkg/packer"
	"github.com/ugpt-protocol/ugpt-staking/pkg/units"
)

const testKey = "b6477143e17f889263044f6cf463dc37177ac4526c4c39a7a344198457024a2f"

var (
	testChainID = big.NewInt(11155111)
	testVault   = common.HexToAddress("0x568BE9a5Be8b5D1E3B1c5F4B5b5E6B1B5D7c1a01")
	testToken   = common.HexToAddress("0xeFE875aB2F1b0C6f5eD8D2C5A4B0D9B6A5a5E1c2")
)

type testBridge struct {
	*Bridge
	token   *mock_bridge.MockTokenContract
	vault   *mock_bridge.MockVaultContract
	backend *mock_bridge.MockBackend
	wallet  *wallet.Wallet
	account common.Address
}

func newTestBridge(t *testing.T, connect bool) *testBridge {
	ctrl := gomock.NewController(t)
	tb := &testBridge{
		token:   mock_bridge.NewMockTokenContract(ctrl),
		vault:   mock_bridge.NewMockVaultContract(ctrl),
		backend: mock_bridge.NewMockBackend(ctrl),
		wallet:  wallet.New(logrus.New()),
	}
	if connect {
		addr, err := tb.wallet.Connect(wallet.PrivateKey(testKey))
		require.Nil(t, err)
		tb.account = addr
	}
	b, err := New(Config{
		Vault:          testVault,
		ConfirmTimeout: time.Second,
		PollInterval:   5 * time.Millisecond,
	}, tb.backend, tb.token, tb.vault, tb.wallet, prometheus.NewRegistry(), logrus.New())
	require.Nil(t, err)
	tb.Bridge = b
	return tb
}

// signTx builds and signs a tx the way a binding does with NoSend set.
func signTx(opts *bind.TransactOpts, to common.Address, nonce uint64) (*types.Transaction, error) {
	if !opts.NoSend {
		return nil, errors.New("tx must be built with NoSend")
	}
	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   testChainID,
		Nonce:     nonce,
		GasTipCap: big.NewInt(1),
		GasFeeCap: big.NewInt(2),
		Gas:       60000,
		To:        &to,
		Value:     big.NewInt(0),
	})
	return opts.Signer(opts.From, tx)
}

func successReceipt(hash common.Hash) *types.Receipt {
	return &types.Receipt{Status: types.ReceiptStatusSuccessful, TxHash: hash, BlockNumber: big.NewInt(100)}
}

func (tb *testBridge) expectSendConfirmed(status uint64) {
	tb.backend.EXPECT().ChainID(gomock.Any()).Return(testChainID, nil).AnyTimes()
	tb.backend.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	tb.backend.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, hash common.Hash) (*types.Receipt, error) {
		r := successReceipt(hash)
		r.Status = status
		return r, nil
	}).AnyTimes()
}

type jsonError struct {
	msg  string
	data any
}

func (e *jsonError) Error() string { return e.msg }
func (e *jsonError) ErrorCode() int { return 3 }
func (e *jsonError) ErrorData() any { return e.data }

func TestApproveTen(t *testing.T) {
	tb := newTestBridge(t, true)
	tb.expectSendConfirmed(types.ReceiptStatusSuccessful)

	expected, ok := new(big.Int).SetString("10000000000000000000", 10)
	require.True(t, ok)
	tb.token.EXPECT().Approve(gomock.Any(), testVault, expected).DoAndReturn(func(opts *bind.TransactOpts, _ common.Address, _ *big.Int) (*types.Transaction, error) {
		assert.Equal(t, tb.account, opts.From)
		return signTx(opts, testToken, 0)
	}).Times(1)

	outcome, err := tb.Approve(context.Background(), tb.Vault(), "10")
	require.Nil(t, err)
	assert.Equal(t, txstate.Confirmed, outcome.State)
	assert.Nil(t, outcome.Err)
	assert.Equal(t, 0, expected.Cmp(outcome.Amount))
	assert.NotEqual(t, common.Hash{}, outcome.TxHash)

	st := tb.Tracker().Status(txstate.OpApprove)
	assert.Equal(t, txstate.Confirmed, st.State)
	assert.Equal(t, outcome.TxHash, st.TxHash)

	assert.Equal(t, float64(1), testutil.ToFloat64(tb.metrics.submitted.WithLabelValues("approve")))
	assert.Equal(t, float64(1), testutil.ToFloat64(tb.metrics.settled.WithLabelValues("approve", "confirmed")))
	assert.Equal(t, float64(0), testutil.ToFloat64(tb.metrics.pending.WithLabelValues("approve")))
}

func TestInvalidAmountsIssueNoCall(t *testing.T) {
	// the mocks have no expectations, any call fails the test
	tb := newTestBridge(t, true)
	for _, amount := range []string{"", "abc", "0", "0.0", "-1", "1e18", "1,000", "0.0000000000000000004"} {
		_, err := tb.Approve(context.Background(), tb.Vault(), amount)
		assert.NotNil(t, err, amount)
		_, err = tb.Stake(context.Background(), amount)
		assert.NotNil(t, err, amount)
	}
	_, err := tb.Stake(context.Background(), "0")
	assert.True(t, errors.Is(err, units.ErrNonPositiveAmount))
	_, err = tb.Approve(context.Background(), tb.Vault(), "abc")
	assert.True(t, errors.Is(err, units.ErrInvalidAmount))
	_, err = tb.Approve(context.Background(), common.Address{}, "1")
	assert.True(t, errors.Is(err, ErrInvalidSpender))

	for _, st := range tb.Statuses() {
		assert.Equal(t, txstate.Idle, st.State)
	}
}

func TestStakeRounding(t *testing.T) {
	tests := []struct {
		amount   string
		expected string
	}{
		{"1", "1000000000000000000"},
		{"0.5", "500000000000000000"},
		{"1.0000000000000000005", "1000000000000000001"},
		{"1.0000000000000000004", "1000000000000000000"},
		{"0.000000000000000001", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			tb := newTestBridge(t, true)
			tb.expectSendConfirmed(types.ReceiptStatusSuccessful)
			expected, _ := new(big.Int).SetString(tt.expected, 10)
			tb.vault.EXPECT().Stake(gomock.Any(), expected).DoAndReturn(func(opts *bind.TransactOpts, _ *big.Int) (*types.Transaction, error) {
				return signTx(opts, testVault, 0)
			}).Times(1)

			outcome, err := tb.Stake(context.Background(), tt.amount)
			require.Nil(t, err)
			assert.Equal(t, txstate.Confirmed, outcome.State)
		})
	}
}

func TestWriteNotConnected(t *testing.T) {
	tb := newTestBridge(t, false)
	_, err := tb.Approve(context.Background(), tb.Vault(), "1")
	assert.True(t, errors.Is(err, ErrNotConnected))
	_, err = tb.Stake(context.Background(), "1")
	assert.True(t, errors.Is(err, ErrNotConnected))
	_, err = tb.ClaimRevenue(context.Background())
	assert.True(t, errors.Is(err, ErrNotConnected))
	assert.Equal(t, txstate.Idle, tb.Tracker().Status(txstate.OpStake).State)
}

func TestReadsWithoutAccount(t *testing.T) {
	tb := newTestBridge(t, false)

	bal, err := tb.ReadBalance(context.Background(), nil)
	require.Nil(t, err)
	assert.False(t, bal.Present)
	assert.Nil(t, bal.Amount)

	pos, err := tb.ReadStakerPosition(context.Background(), nil)
	require.Nil(t, err)
	assert.False(t, pos.Present)

	snap, err := tb.Refresh(context.Background())
	require.Nil(t, err)
	assert.False(t, snap.Balance.Present)
	assert.False(t, snap.Position.Present)

	_, ok := tb.MaxAmount()
	assert.False(t, ok)
}

func TestMaxAmountClearedAfterDisconnect(t *testing.T) {
	tb := newTestBridge(t, true)
	tb.token.EXPECT().BalanceOf(gomock.Any(), tb.account).Return(big.NewInt(100), nil).Times(1)
	tb.vault.EXPECT().GetStaker(gomock.Any(), tb.account).Return(StakerInfo{}, nil).Times(1)

	_, err := tb.Refresh(context.Background())
	require.Nil(t, err)
	_, ok := tb.MaxAmount()
	require.True(t, ok)

	tb.wallet.Disconnect()
	_, ok = tb.MaxAmount()
	assert.False(t, ok)

	snap, err := tb.Refresh(context.Background())
	require.Nil(t, err)
	assert.False(t, snap.Balance.Present)
	_, ok = tb.MaxAmount()
	assert.False(t, ok)

	// reconnecting the same account does not bring the cleared balance back
	_, err = tb.wallet.Connect(wallet.PrivateKey(testKey))
	require.Nil(t, err)
	_, ok = tb.MaxAmount()
	assert.False(t, ok)
}

func TestMaxAmountAfterAccountSwitch(t *testing.T) {
	tb := newTestBridge(t, true)
	tb.token.EXPECT().BalanceOf(gomock.Any(), tb.account).Return(big.NewInt(100), nil).Times(1)

	_, err := tb.ReadBalance(context.Background(), tb.Account())
	require.Nil(t, err)
	_, ok := tb.MaxAmount()
	require.True(t, ok)

	other, err := tb.wallet.Connect(wallet.PrivateKey("ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"))
	require.Nil(t, err)
	require.NotEqual(t, tb.account, other)
	_, ok = tb.MaxAmount()
	assert.False(t, ok)

	tb.token.EXPECT().BalanceOf(gomock.Any(), other).Return(big.NewInt(5), nil).Times(1)
	_, err = tb.ReadBalance(context.Background(), tb.Account())
	require.Nil(t, err)
	maxAmount, ok := tb.MaxAmount()
	require.True(t, ok)
	assert.Equal(t, "0.000000000000000005", maxAmount)
}

func TestReadBalanceAndMaxAmount(t *testing.T) {
	tb := newTestBridge(t, true)
	balance, _ := new(big.Int).SetString("1234567890123456789012", 10)
	tb.token.EXPECT().BalanceOf(gomock.Any(), tb.account).Return(balance, nil).Times(1)

	bal, err := tb.ReadBalance(context.Background(), tb.Account())
	require.Nil(t, err)
	require.True(t, bal.Present)
	assert.Equal(t, 0, balance.Cmp(bal.Amount))

	maxAmount, ok := tb.MaxAmount()
	require.True(t, ok)
	assert.Equal(t, "1234.567890123456789012", maxAmount)
	parsed, err := units.ParseAmount(maxAmount)
	require.Nil(t, err)
	assert.Equal(t, 0, balance.Cmp(parsed))

	tb.expectSendConfirmed(types.ReceiptStatusSuccessful)
	tb.vault.EXPECT().Stake(gomock.Any(), balance).DoAndReturn(func(opts *bind.TransactOpts, _ *big.Int) (*types.Transaction, error) {
		return signTx(opts, testVault, 1)
	}).Times(1)
	outcome, err := tb.Stake(context.Background(), maxAmount)
	require.Nil(t, err)
	assert.Equal(t, txstate.Confirmed, outcome.State)
}

func TestRefresh(t *testing.T) {
	tb := newTestBridge(t, true)
	balance := big.NewInt(42)
	tb.token.EXPECT().BalanceOf(gomock.Any(), tb.account).Return(balance, nil).Times(1)
	tb.vault.EXPECT().GetStaker(gomock.Any(), tb.account).Return(StakerInfo{
		Staked:  big.NewInt(7),
		Pending: big.NewInt(3),
	}, nil).Times(1)

	snap, err := tb.Refresh(context.Background())
	require.Nil(t, err)
	assert.Equal(t, int64(42), snap.Balance.Amount.Int64())
	assert.Equal(t, int64(7), snap.Position.Staked.Int64())
	assert.Equal(t, int64(3), snap.Position.Pending.Int64())
}

func TestRefreshPartialFailure(t *testing.T) {
	tb := newTestBridge(t, true)
	tb.token.EXPECT().BalanceOf(gomock.Any(), tb.account).Return(big.NewInt(42), nil).Times(1)
	tb.vault.EXPECT().GetStaker(gomock.Any(), tb.account).Return(StakerInfo{}, errors.New("connection refused")).Times(1)

	snap, err := tb.Refresh(context.Background())
	assert.NotNil(t, err)
	assert.NotNil(t, snap.PositionErr)
	assert.False(t, snap.Position.Present)
	assert.Nil(t, snap.BalanceErr)
	require.True(t, snap.Balance.Present)
	assert.Equal(t, int64(42), snap.Balance.Amount.Int64())
}

func TestExecutionFailed(t *testing.T) {
	tb := newTestBridge(t, true)
	tb.expectSendConfirmed(types.ReceiptStatusFailed)
	tb.vault.EXPECT().ClaimRevenue(gomock.Any()).DoAndReturn(func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return signTx(opts, testVault, 0)
	}).Times(1)

	outcome, err := tb.ClaimRevenue(context.Background())
	require.Nil(t, err)
	assert.Equal(t, txstate.Failed, outcome.State)
	assert.True(t, errors.Is(outcome.Err, ErrExecutionFailed))
	require.NotNil(t, outcome.Receipt)

	st := tb.Tracker().Status(txstate.OpClaim)
	assert.Equal(t, txstate.Failed, st.State)
	assert.True(t, errors.Is(st.Err, ErrExecutionFailed))
}

func TestRevertReason(t *testing.T) {
	tb := newTestBridge(t, true)
	tb.backend.EXPECT().ChainID(gomock.Any()).Return(testChainID, nil).Times(1)
	tb.vault.EXPECT().Stake(gomock.Any(), gomock.Any()).Return(nil, &jsonError{
		msg:  "execution reverted: ERC20: insufficient allowance",
		data: hexutil.Encode(packer.PackRevertReason("ERC20: insufficient allowance")),
	}).Times(1)

	outcome, err := tb.Stake(context.Background(), "5")
	require.Nil(t, err)
	assert.Equal(t, txstate.Failed, outcome.State)

	var revertErr *packer.RevertError
	require.True(t, errors.As(outcome.Err, &revertErr))
	assert.Equal(t, "ERC20: insufficient allowance", revertErr.Reason)

	// failed is terminal, a new submission starts over
	tb.backend.EXPECT().ChainID(gomock.Any()).Return(nil, errors.New("network down")).Times(1)
	outcome, err = tb.Stake(context.Background(), "5")
	require.Nil(t, err)
	assert.Equal(t, txstate.Failed, outcome.State)
	assert.Contains(t, outcome.Err.Error(), "network down")
}

func TestUserRejected(t *testing.T) {
	tb := newTestBridge(t, true)
	tb.backend.EXPECT().ChainID(gomock.Any()).Return(testChainID, nil).Times(1)
	tb.token.EXPECT().Approve(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("user rejected the request")).Times(1)

	outcome, err := tb.Approve(context.Background(), tb.Vault(), "1")
	require.Nil(t, err)
	assert.Equal(t, txstate.Failed, outcome.State)
	assert.False(t, tb.Tracker().IsPending(txstate.OpApprove))
}

func TestPendingRejectsSameOp(t *testing.T) {
	tb := newTestBridge(t, true)
	release := make(chan struct{})
	sent := make(chan struct{})

	tb.backend.EXPECT().ChainID(gomock.Any()).Return(testChainID, nil).AnyTimes()
	tb.backend.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	tb.vault.EXPECT().Stake(gomock.Any(), gomock.Any()).DoAndReturn(func(opts *bind.TransactOpts, _ *big.Int) (*types.Transaction, error) {
		return signTx(opts, testVault, 0)
	}).Times(1)
	tb.token.EXPECT().Approve(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(opts *bind.TransactOpts, _ common.Address, _ *big.Int) (*types.Transaction, error) {
		return signTx(opts, testToken, 1)
	}).Times(1)

	var stakeHash common.Hash
	var once sync.Once
	tb.backend.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
		if hash == stakeHash {
			once.Do(func() { close(sent) })
			select {
			case <-release:
				return successReceipt(hash), nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		return successReceipt(hash), nil
	}).AnyTimes()

	stakeHash = tb.stakeTxHash(t)

	done := make(chan *Outcome, 1)
	go func() {
		outcome, err := tb.Stake(context.Background(), "1")
		assert.Nil(t, err)
		done <- outcome
	}()
	<-sent
	assert.True(t, tb.Tracker().IsPending(txstate.OpStake))

	_, err := tb.Stake(context.Background(), "2")
	assert.True(t, errors.Is(err, ErrOperationPending))

	// other ops are independent
	outcome, err := tb.Approve(context.Background(), tb.Vault(), "1")
	require.Nil(t, err)
	assert.Equal(t, txstate.Confirmed, outcome.State)

	close(release)
	outcome = <-done
	assert.Equal(t, txstate.Confirmed, outcome.State)
	assert.False(t, tb.Tracker().IsPending(txstate.OpStake))
}

// stakeTxHash predicts the hash signTx produces for the first stake of the session.
func (tb *testBridge) stakeTxHash(t *testing.T) common.Hash {
	signerFn, err := tb.wallet.SignerFn(testChainID)
	require.Nil(t, err)
	tx, err := signTx(&bind.TransactOpts{From: tb.account, Signer: signerFn, NoSend: true}, testVault, 0)
	require.Nil(t, err)
	return tx.Hash()
}

func TestDisconnectWhilePending(t *testing.T) {
	tb := newTestBridge(t, true)
	tb.backend.EXPECT().ChainID(gomock.Any()).Return(testChainID, nil).Times(1)
	tb.token.EXPECT().Approve(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(opts *bind.TransactOpts, _ common.Address, _ *big.Int) (*types.Transaction, error) {
		return signTx(opts, testToken, 0)
	}).Times(1)
	tb.backend.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, *types.Transaction) error {
		tb.wallet.Disconnect()
		return nil
	}).Times(1)
	calls := 0
	tb.backend.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, hash common.Hash) (*types.Receipt, error) {
		calls++
		if calls < 3 {
			return nil, ethereum.NotFound
		}
		return successReceipt(hash), nil
	}).MinTimes(3)

	outcome, err := tb.Approve(context.Background(), tb.Vault(), "1")
	require.Nil(t, err)
	assert.Equal(t, txstate.Confirmed, outcome.State)
	assert.Nil(t, tb.Account())
}

func TestDisconnectBeforeSigning(t *testing.T) {
	tb := newTestBridge(t, true)
	tb.backend.EXPECT().ChainID(gomock.Any()).Return(testChainID, nil).Times(1)
	tb.token.EXPECT().Approve(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(opts *bind.TransactOpts, _ common.Address, _ *big.Int) (*types.Transaction, error) {
		tb.wallet.Disconnect()
		return signTx(opts, testToken, 0)
	}).Times(1)

	outcome, err := tb.Approve(context.Background(), tb.Vault(), "1")
	require.Nil(t, err)
	assert.Equal(t, txstate.Failed, outcome.State)
	assert.True(t, errors.Is(outcome.Err, ErrNotConnected))
}

func TestConfirmTimeout(t *testing.T) {
	tb := newTestBridge(t, true)
	tb.cfg.ConfirmTimeout = 30 * time.Millisecond
	tb.backend.EXPECT().ChainID(gomock.Any()).Return(testChainID, nil).Times(1)
	tb.backend.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	tb.backend.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).Return(nil, ethereum.NotFound).AnyTimes()
	tb.vault.EXPECT().ClaimRevenue(gomock.Any()).DoAndReturn(func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return signTx(opts, testVault, 0)
	}).Times(1)

	outcome, err := tb.ClaimRevenue(context.Background())
	require.Nil(t, err)
	assert.Equal(t, txstate.Failed, outcome.State)
	assert.True(t, errors.Is(outcome.Err, context.DeadlineExceeded))
	assert.NotEqual(t, common.Hash{}, outcome.TxHash)
}

func TestNewInvalidConfig(t *testing.T) {
	_, err := New(Config{PollInterval: 0, ConfirmTimeout: time.Second}, nil, nil, nil, nil, nil, logrus.New())
	assert.NotNil(t, err)
	_, err = New(Config{PollInterval: time.Second, ConfirmTimeout: time.Millisecond}, nil, nil, nil, nil, nil, logrus.New())
	assert.NotNil(t, err)
}
