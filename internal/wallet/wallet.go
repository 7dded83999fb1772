package wallet

import (
	"crypto/ecdsa"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var ErrNotConnected = errors.New("wallet not connected")

// Session is the connected-wallet context handed to the bridge.
type Session interface {
	// Account returns the connected address, false when no wallet is connected.
	Account() (common.Address, bool)

	// SignerFn returns a signer for chainID. The connection is checked again at
	// signing time, so a wallet disconnected in between fails the signature.
	SignerFn(chainID *big.Int) (bind.SignerFn, error)
}

// Connector produces the key behind a connection.
type Connector interface {
	Unlock() (*ecdsa.PrivateKey, error)
}

type Wallet struct {
	mu     sync.RWMutex
	key    *ecdsa.PrivateKey
	logger logrus.FieldLogger
}

var _ Session = (*Wallet)(nil)

func New(logger logrus.FieldLogger) *Wallet {
	return &Wallet{logger: logger}
}

func (w *Wallet) Connect(c Connector) (common.Address, error) {
	key, err := c.Unlock()
	if err != nil {
		return common.Address{}, errors.Wrap(err, "connect wallet failed")
	}
	addr := crypto.PubkeyToAddress(key.PublicKey)

	w.mu.Lock()
	w.key = key
	w.mu.Unlock()

	w.logger.WithField("account", addr.Hex()).Info("Wallet connected")
	return addr, nil
}

func (w *Wallet) Disconnect() {
	w.mu.Lock()
	wasConnected := w.key != nil
	w.key = nil
	w.mu.Unlock()

	if wasConnected {
		w.logger.Info("Wallet disconnected")
	}
}

func (w *Wallet) Account() (common.Address, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.key == nil {
		return common.Address{}, false
	}
	return crypto.PubkeyToAddress(w.key.PublicKey), true
}

func (w *Wallet) SignerFn(chainID *big.Int) (bind.SignerFn, error) {
	from, ok := w.Account()
	if !ok {
		return nil, ErrNotConnected
	}
	signer := types.LatestSignerForChainID(chainID)
	return func(address common.Address, tx *types.Transaction) (*types.Transaction, error) {
		w.mu.RLock()
		key := w.key
		w.mu.RUnlock()
		if key == nil {
			return nil, ErrNotConnected
		}
		if address != from || crypto.PubkeyToAddress(key.PublicKey) != from {
			return nil, bind.ErrNotAuthorized
		}
		return types.SignTx(tx, signer, key)
	}, nil
}

// PrivateKey connects with a raw hex encoded secp256k1 key.
type PrivateKey string

func (p PrivateKey) Unlock() (*ecdsa.PrivateKey, error) {
	sk, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(string(p)), "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "decode private key error")
	}
	return sk, nil
}
