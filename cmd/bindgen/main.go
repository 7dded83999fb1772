package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/cmd/utils"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/ugpt-protocol/ugpt-staking/pkg/loggers"
)

var (
	abiFlag = &cli.StringFlag{
		Name:  "abi",
		Usage: "Path to the contract ABI json to bind, - for STDIN",
	}
	pkgFlag = &cli.StringFlag{
		Name:  "pkg",
		Usage: "Package name to generate the binding into",
	}
	typeFlag = &cli.StringFlag{
		Name:  "type",
		Usage: "Go struct name of the binding",
		Value: "BindingContract",
	}
	outFlag = &cli.StringFlag{
		Name:  "out",
		Usage: "Output file for the generated binding (default = stdout)",
	}
)

var app = cli.NewApp()

func init() {
	app.Name = "bindgen"
	app.Usage = "Generate go bindings for the staking contracts"
	app.Flags = []cli.Flag{
		abiFlag,
		pkgFlag,
		typeFlag,
		outFlag,
	}
	app.Action = abigen
}

func abigen(c *cli.Context) error {
	if c.String(pkgFlag.Name) == "" {
		utils.Fatalf("No destination package specified (--pkg)")
	}
	if c.String(abiFlag.Name) == "" {
		utils.Fatalf("No contract ABI specified (--abi)")
	}

	var (
		abi []byte
		err error
	)
	input := c.String(abiFlag.Name)
	if input == "-" {
		abi, err = io.ReadAll(os.Stdin)
	} else {
		abi, err = os.ReadFile(input)
	}
	if err != nil {
		utils.Fatalf("Failed to read input ABI: %v", err)
	}

	// only the ABI is bound, deployment is out of scope so no bytecode
	code, err := bind.Bind(
		[]string{c.String(typeFlag.Name)},
		[]string{string(abi)},
		[]string{""},
		nil,
		c.String(pkgFlag.Name),
		bind.LangGo,
		make(map[string]string),
		make(map[string]string),
	)
	if err != nil {
		utils.Fatalf("Failed to generate ABI binding: %v", err)
	}
	if !c.IsSet(outFlag.Name) {
		fmt.Printf("%s\n", code)
		return nil
	}
	if err := os.WriteFile(c.String(outFlag.Name), []byte(code), 0600); err != nil {
		utils.Fatalf("Failed to write ABI binding: %v", err)
	}
	return nil
}

func main() {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	loggers.InitializeEthLog(l.WithField("module", app.Name))

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
