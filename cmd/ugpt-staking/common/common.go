package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/ugpt-protocol/ugpt-staking/internal/bridge"
	"github.com/ugpt-protocol/ugpt-staking/internal/wallet"
	"github.com/ugpt-protocol/ugpt-staking/pkg/loggers"
	"github.com/ugpt-protocol/ugpt-staking/pkg/repo"
)

var KeystorePasswordFlagVar string

func KeystorePasswordFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "password",
		Usage:       "Keystore password",
		EnvVars:     []string{"UGPT_STAKING_KEYSTORE_PASSWORD"},
		Destination: &KeystorePasswordFlagVar,
		Aliases:     []string{"pwd"},
		Required:    false,
	}
}

var PrivateKeyFlagVar string

func PrivateKeyFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "private-key",
		Usage:       "Wallet private key(hex string), takes precedence over the keystore",
		EnvVars:     []string{"UGPT_STAKING_PRIVATE_KEY"},
		Destination: &PrivateKeyFlagVar,
		Required:    false,
	}
}

var KeystoreFlagVar string

func KeystoreFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "keystore",
		Usage:       "Wallet keystore file, overrides wallet.keystore of the config",
		Destination: &KeystoreFlagVar,
		Required:    false,
	}
}

// WalletFlags are the flags every command that connects a wallet accepts.
func WalletFlags() []cli.Flag {
	return []cli.Flag{
		PrivateKeyFlag(),
		KeystoreFlag(),
		KeystorePasswordFlag(),
	}
}

func EnterPassword(needConfirm bool) (string, error) {
	var password string
	fmt.Println("enter the keystore password:")
	passwordBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", errors.Wrap(err, "can not read password")
	}
	password = strings.ReplaceAll(string(passwordBytes), "\n", "")
	if needConfirm {
		fmt.Println("please re-enter the password:")
		passwordBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return "", errors.Wrap(err, "can not read password")
		}
		confirmedPassword := strings.ReplaceAll(string(passwordBytes), "\n", "")
		if password != confirmedPassword {
			fmt.Println("passwords did not match, please try again")
			return EnterPassword(true)
		}
	}
	return password, nil
}

func Exist(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func GetRootPath(ctx *cli.Context) (string, error) {
	p := ctx.String("repo")

	var err error
	if p == "" {
		p, err = repo.LoadRepoRootFromEnv(p)
		if err != nil {
			return "", err
		}
	}
	return p, nil
}

// PrepareRepo loads the config, the defaults are used when the repo has not been
// generated yet.
func PrepareRepo(ctx *cli.Context, persistLog bool) (*repo.Repo, error) {
	p, err := GetRootPath(ctx)
	if err != nil {
		return nil, err
	}
	r, err := repo.Load(p)
	if err != nil {
		return nil, err
	}
	if persistLog && !Exist(p) {
		persistLog = false
	}
	if err := loggers.Initialize(ctx.Context, r, persistLog); err != nil {
		return nil, err
	}
	return r, nil
}

// ConnectWallet connects w from the private key flag or the keystore. With
// neither configured the wallet stays disconnected and false is returned.
func ConnectWallet(ctx *cli.Context, r *repo.Repo, w *wallet.Wallet) (bool, error) {
	if PrivateKeyFlagVar != "" {
		if _, err := w.Connect(wallet.PrivateKey(PrivateKeyFlagVar)); err != nil {
			return false, err
		}
		return true, nil
	}

	path := KeystoreFlagVar
	if path == "" {
		path = r.KeystorePath()
	}
	if path == "" {
		return false, nil
	}
	if !Exist(path) {
		return false, errors.Errorf("keystore %s not exist", path)
	}

	password := KeystorePasswordFlagVar
	if !ctx.IsSet(KeystorePasswordFlag().Name) {
		var err error
		password, err = EnterPassword(false)
		if err != nil {
			return false, err
		}
	}
	if _, err := w.Connect(wallet.Keystore{Path: path, Password: password}); err != nil {
		return false, err
	}
	return true, nil
}

type Session struct {
	Repo   *repo.Repo
	Client *ethclient.Client
	Wallet *wallet.Wallet
	Bridge *bridge.Bridge
}

func (s *Session) Close() {
	s.Wallet.Disconnect()
	s.Client.Close()
}

// PrepareSession dials the node, connects the wallet (when configured) and binds
// the contracts. reg may be nil.
func PrepareSession(ctx *cli.Context, persistLog bool, reg prometheus.Registerer) (*Session, error) {
	r, err := PrepareRepo(ctx, persistLog)
	if err != nil {
		return nil, err
	}

	w := wallet.New(loggers.Logger(loggers.Wallet))
	if _, err := ConnectWallet(ctx, r, w); err != nil {
		return nil, err
	}

	client, err := bridge.Dial(ctx.Context, r.Config.RPC, loggers.Logger(loggers.RPC))
	if err != nil {
		w.Disconnect()
		return nil, err
	}
	b, err := bridge.NewWithClient(client, r.Config, w, reg, loggers.Logger(loggers.Bridge))
	if err != nil {
		w.Disconnect()
		client.Close()
		return nil, err
	}
	return &Session{Repo: r, Client: client, Wallet: w, Bridge: b}, nil
}

func WaitUserConfirm() error {
	var choice string
	if _, err := fmt.Scanln(&choice); err != nil {
		return err
	}
	if choice != "y" {
		return errors.New("interrupt by user")
	}
	return nil
}

// KeystoreDir makes sure the repo keystore dir exists.
func KeystoreDir(r *repo.Repo) (string, error) {
	dir := r.KeystoreDir()
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", errors.Wrapf(err, "create %s failed", dir)
	}
	return filepath.Clean(dir), nil
}
