package wallet

import (
	"crypto/ecdsa"
	"os"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// Keystore connects with an encrypted go-ethereum keystore file.
type Keystore struct {
	Path     string
	Password string
}

func (k Keystore) Unlock() (*ecdsa.PrivateKey, error) {
	raw, err := os.ReadFile(k.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "read keystore %s failed", k.Path)
	}
	key, err := keystore.DecryptKey(raw, k.Password)
	if err != nil {
		return nil, errors.Wrap(err, "decrypt keystore failed")
	}
	return key.PrivateKey, nil
}

// scryptParams returns the key derivation cost; light is only meant for tests.
func scryptParams(light bool) (int, int) {
	if light {
		return keystore.LightScryptN, keystore.LightScryptP
	}
	return keystore.StandardScryptN, keystore.StandardScryptP
}

// GenerateKeystore creates a new random key in dir and returns its file path.
func GenerateKeystore(dir string, password string, light bool) (string, common.Address, error) {
	n, p := scryptParams(light)
	account, err := keystore.StoreKey(dir, password, n, p)
	if err != nil {
		return "", common.Address{}, errors.Wrap(err, "generate keystore failed")
	}
	return account.URL.Path, account.Address, nil
}

// ImportKeystore encrypts an existing hex private key into dir.
func ImportKeystore(dir string, privateKey string, password string, light bool) (string, common.Address, error) {
	sk, err := PrivateKey(privateKey).Unlock()
	if err != nil {
		return "", common.Address{}, err
	}
	n, p := scryptParams(light)
	ks := keystore.NewKeyStore(dir, n, p)
	account, err := ks.ImportECDSA(sk, password)
	if err != nil {
		return "", common.Address{}, errors.Wrap(err, "import keystore failed")
	}
	return account.URL.Path, account.Address, nil
}
