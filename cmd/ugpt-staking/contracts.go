package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/ugpt-protocol/ugpt-staking/cmd/ugpt-staking/common"
)

var contractsCMD = &cli.Command{
	Name:   "contracts",
	Usage:  "Show the contract addresses in use with their explorer links",
	Action: showContracts,
}

func showContracts(ctx *cli.Context) error {
	r, err := common.PrepareRepo(ctx, false)
	if err != nil {
		return err
	}
	r.PrintContractsInfo(func(c string) {
		fmt.Println(color.New(color.Faint).Sprint(c))
	})

	explorer := strings.TrimSuffix(r.Config.Contracts.ExplorerURL, "/")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Contract", "Address", "Explorer"})
	table.SetAutoWrapText(false)
	for _, row := range [][2]string{
		{fmt.Sprintf("%s token", r.Config.Display.Symbol), r.Config.Contracts.Token},
		{"Revenue vault", r.Config.Contracts.Vault},
		{"Oracle", r.Config.Contracts.Oracle},
	} {
		table.Append([]string{row[0], row[1], fmt.Sprintf("%s/address/%s", explorer, row[1])})
	}
	table.Render()
	return nil
}
