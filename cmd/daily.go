package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/sadh/vipani"
	"github.com/sadh/vipani/renderer"
)

type dailyCmd struct {
	on string
}

func (*dailyCmd) Name() string     { return "daily" }
func (*dailyCmd) Synopsis() string { return "display the sales ledger of one day" }
func (*dailyCmd) Usage() string {
	return `vmg daily [-on <date>]

  Displays every sale of one calendar day with the day's receivable and
  payable totals. Dates accept 2025-07-01 or relative offsets like -1d.
`
}

func (c *dailyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.on, "on", "0d", "Day to report on (defaults to today)")
}

func (c *dailyCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := loadBook()
	if err != nil {
		return fail(err)
	}
	if _, err := requireUser(b); err != nil {
		return fail(err)
	}
	day, err := vipani.ParseDate(c.on)
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.DailyMarkdown(b.Daily(day), b.Settings.DisplayCurrency()))
	return subcommands.ExitSuccess
}
