package wallet

import (
	"math/big"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "b6477143e17f889263044f6cf463dc37177ac4526c4c39a7a344198457024a2f"

func newTestTx() *types.Transaction {
	return types.NewTx(&types.DynamicFeeTx{
		ChainID:   big.NewInt(11155111),
		Nonce:     1,
		GasTipCap: big.NewInt(1),
		GasFeeCap: big.NewInt(2),
		Gas:       21000,
		To:        &common.Address{},
		Value:     big.NewInt(0),
	})
}

func TestConnectDisconnect(t *testing.T) {
	w := New(logrus.New())
	_, ok := w.Account()
	assert.False(t, ok)

	_, err := w.SignerFn(big.NewInt(1))
	assert.True(t, errors.Is(err, ErrNotConnected))

	sk, err := crypto.HexToECDSA(testKey)
	require.Nil(t, err)
	expected := crypto.PubkeyToAddress(sk.PublicKey)

	addr, err := w.Connect(PrivateKey("0x" + testKey))
	require.Nil(t, err)
	assert.Equal(t, expected, addr)
	got, ok := w.Account()
	require.True(t, ok)
	assert.Equal(t, expected, got)

	w.Disconnect()
	_, ok = w.Account()
	assert.False(t, ok)
	// idempotent
	w.Disconnect()
}

func TestConnectInvalidKey(t *testing.T) {
	w := New(logrus.New())
	_, err := w.Connect(PrivateKey("zz"))
	assert.NotNil(t, err)
	_, ok := w.Account()
	assert.False(t, ok)
}

func TestSignerFn(t *testing.T) {
	w := New(logrus.New())
	from, err := w.Connect(PrivateKey(testKey))
	require.Nil(t, err)

	chainID := big.NewInt(11155111)
	signerFn, err := w.SignerFn(chainID)
	require.Nil(t, err)

	signed, err := signerFn(from, newTestTx())
	require.Nil(t, err)
	sender, err := types.Sender(types.LatestSignerForChainID(chainID), signed)
	require.Nil(t, err)
	assert.Equal(t, from, sender)

	_, err = signerFn(common.HexToAddress("0x01"), newTestTx())
	assert.True(t, errors.Is(err, bind.ErrNotAuthorized))

	// disconnecting after the signer was handed out still fails the signature
	w.Disconnect()
	_, err = signerFn(from, newTestTx())
	assert.True(t, errors.Is(err, ErrNotConnected))
}

func TestKeystore(t *testing.T) {
	dir := t.TempDir()

	path, addr, err := GenerateKeystore(dir, "secret", true)
	require.Nil(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	w := New(logrus.New())
	_, err = w.Connect(Keystore{Path: path, Password: "wrong"})
	assert.NotNil(t, err)

	got, err := w.Connect(Keystore{Path: path, Password: "secret"})
	require.Nil(t, err)
	assert.Equal(t, addr, got)

	_, err = w.Connect(Keystore{Path: filepath.Join(dir, "missing"), Password: "secret"})
	assert.NotNil(t, err)
}

func TestImportKeystore(t *testing.T) {
	dir := t.TempDir()
	path, addr, err := ImportKeystore(dir, testKey, "secret", true)
	require.Nil(t, err)

	sk, err := crypto.HexToECDSA(testKey)
	require.Nil(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(sk.PublicKey), addr)

	unlocked, err := Keystore{Path: path, Password: "secret"}.Unlock()
	require.Nil(t, err)
	assert.Equal(t, addr, crypto.PubkeyToAddress(unlocked.PublicKey))
}
