package main

import (
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/ugpt-protocol/ugpt-staking/cmd/ugpt-staking/common"
	"github.com/ugpt-protocol/ugpt-staking/internal/wallet"
	"github.com/ugpt-protocol/ugpt-staking/pkg/loggers"
)

var walletArgs = struct {
	PrivateKey string
	Save       bool
}{}

var walletCMD = &cli.Command{
	Name:  "wallet",
	Usage: "The wallet manage commands",
	Subcommands: []*cli.Command{
		{
			Name:   "new",
			Usage:  "Generate a new wallet keystore in the repo",
			Action: newWallet,
			Flags: []cli.Flag{
				common.KeystorePasswordFlag(),
				saveFlag(),
			},
		},
		{
			Name:   "import",
			Usage:  "Import a hex private key into a keystore in the repo",
			Action: importWallet,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:        "key",
					Usage:       "Private key(hex string)",
					EnvVars:     []string{"UGPT_STAKING_IMPORT_PRIVATE_KEY"},
					Destination: &walletArgs.PrivateKey,
					Required:    true,
				},
				common.KeystorePasswordFlag(),
				saveFlag(),
			},
		},
		{
			Name:   "address",
			Usage:  "Connect the configured wallet and show its address",
			Action: walletAddress,
			Flags:  common.WalletFlags(),
		},
	},
}

func saveFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "save",
		Usage:       "Write the keystore path into wallet.keystore of the config",
		Destination: &walletArgs.Save,
		Required:    false,
	}
}

func newWallet(ctx *cli.Context) error {
	return createKeystore(ctx, func(dir, password string) (string, string, error) {
		path, addr, err := wallet.GenerateKeystore(dir, password, false)
		return path, addr.Hex(), err
	})
}

func importWallet(ctx *cli.Context) error {
	return createKeystore(ctx, func(dir, password string) (string, string, error) {
		path, addr, err := wallet.ImportKeystore(dir, walletArgs.PrivateKey, password, false)
		return path, addr.Hex(), err
	})
}

func createKeystore(ctx *cli.Context, create func(dir, password string) (string, string, error)) error {
	r, err := common.PrepareRepo(ctx, false)
	if err != nil {
		return err
	}
	dir, err := common.KeystoreDir(r)
	if err != nil {
		return err
	}

	password := common.KeystorePasswordFlagVar
	if !ctx.IsSet(common.KeystorePasswordFlag().Name) {
		password, err = common.EnterPassword(true)
		if err != nil {
			return err
		}
	}

	path, addr, err := create(dir, password)
	if err != nil {
		return err
	}
	fmt.Printf("address: %s\nkeystore: %s\n", addr, path)

	if walletArgs.Save {
		if rel, err := filepath.Rel(r.RepoRoot, path); err == nil {
			path = rel
		}
		r.Config.Wallet.Keystore = path
		if err := r.Flush(); err != nil {
			return err
		}
		fmt.Println("wallet.keystore updated")
	}
	return nil
}

func walletAddress(ctx *cli.Context) error {
	r, err := common.PrepareRepo(ctx, false)
	if err != nil {
		return err
	}
	w := wallet.New(loggers.Logger(loggers.Wallet))
	connected, err := common.ConnectWallet(ctx, r, w)
	if err != nil {
		return err
	}
	if !connected {
		fmt.Println("no wallet configured, use --private-key, --keystore or wallet.keystore")
		return nil
	}
	defer w.Disconnect()

	addr, _ := w.Account()
	fmt.Println(addr.Hex())
	return nil
}
