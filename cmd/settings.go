package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/sadh/vipani"
)

type settingsCmd struct {
	margin   float64
	currency string
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show or change the book settings (admin only)" }
func (*settingsCmd) Usage() string {
	return `vmg settings [-margin <percent>] [-currency <code>]

  The purchase margin is the percentage kept by the shop on each sale; the
  rest is the seller payout. Changing it only affects future sales.
`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.margin, "margin", -1, "Purchase margin percentage (0 to 100)")
	f.StringVar(&c.currency, "currency", "", "ISO currency code used for display")
}

func (c *settingsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := loadBook()
	if err != nil {
		return fail(err)
	}
	if _, err := requireAdmin(b); err != nil {
		return fail(err)
	}

	changed := false
	nb := *b
	if c.margin >= 0 {
		if c.margin > 100 {
			return fail(fmt.Errorf("margin must be between 0 and 100, got %v", c.margin))
		}
		nb.Settings.PurchaseMarginPercent = vipani.Percent(c.margin)
		changed = true
	}
	if c.currency != "" {
		nb.Settings.Currency = c.currency
		changed = true
	}
	if changed {
		if err := saveBook(&nb); err != nil {
			return fail(err)
		}
		b = &nb
	}

	fmt.Printf("Purchase margin: %s\nDisplay currency: %s\n",
		b.Settings.PurchaseMarginPercent, b.Settings.DisplayCurrency())
	return subcommands.ExitSuccess
}
