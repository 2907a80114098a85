package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/sadh/vipani/renderer"
)

type balancesCmd struct{}

func (*balancesCmd) Name() string     { return "balances" }
func (*balancesCmd) Synopsis() string { return "display outstanding receivables and payables" }
func (*balancesCmd) Usage() string {
	return `vmg balances

  Displays the parties with a non-zero balance: who owes the shop and who
  the shop owes.
`
}

func (*balancesCmd) SetFlags(*flag.FlagSet) {}

func (c *balancesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := loadBook()
	if err != nil {
		return fail(err)
	}
	if _, err := requireUser(b); err != nil {
		return fail(err)
	}

	printMarkdown(renderer.BalancesMarkdown(b.Summary(), b.Settings.DisplayCurrency()))
	return subcommands.ExitSuccess
}
