package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/sadh/vipani/renderer"
)

type overviewCmd struct{}

func (*overviewCmd) Name() string     { return "overview" }
func (*overviewCmd) Synopsis() string { return "display the shop dashboard" }
func (*overviewCmd) Usage() string {
	return `vmg overview

  Displays lifetime totals, current stock, the last week of sales and the
  license state.
`
}

func (*overviewCmd) SetFlags(*flag.FlagSet) {}

func (c *overviewCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := loadBook()
	if err != nil {
		return fail(err)
	}
	if _, err := requireUser(b); err != nil {
		return fail(err)
	}

	printMarkdown(renderer.OverviewMarkdown(b.Overview(timeNow()), b.Settings.DisplayCurrency()))
	return subcommands.ExitSuccess
}
