package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/sadh/vipani"
	"github.com/sadh/vipani/renderer"
	"github.com/shopspring/decimal"
)

type sellCmd struct {
	item  string
	rate  string
	buyer string
	qty   string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell part or all of an available token item" }
func (*sellCmd) Usage() string {
	return `vmg sell -item <item-id> -rate <unit-rate> -buyer <party-id> -qty <quantity>

  Sells a quantity of one available item. Selling less than the available
  quantity splits the item, leaving the remainder in stock under a new id.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.item, "item", "", "Id of the available item, see 'vmg tokens'")
	f.StringVar(&c.rate, "rate", "", "Unit sales rate")
	f.StringVar(&c.buyer, "buyer", "", "Id of the buying party")
	f.StringVar(&c.qty, "qty", "", "Quantity to sell")
}

func (c *sellCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := loadBook()
	if err != nil {
		return fail(err)
	}
	if _, err := requireUser(b); err != nil {
		return fail(err)
	}
	if c.buyer == "" || b.Party(c.buyer) == nil {
		return fail(fmt.Errorf("unknown buyer %q, see 'vmg parties'", c.buyer))
	}
	rate, err := decimal.NewFromString(c.rate)
	if err != nil {
		return fail(fmt.Errorf("invalid rate %q: %w", c.rate, err))
	}
	qty, err := decimal.NewFromString(c.qty)
	if err != nil {
		return fail(fmt.Errorf("invalid quantity %q: %w", c.qty, err))
	}

	_, owner := b.FindItem(c.item)
	nb, err := b.Sell(c.item, vipani.M(rate), c.buyer, vipani.Q(qty), timeNow())
	if err != nil {
		return fail(err)
	}
	if err := saveBook(nb); err != nil {
		return fail(err)
	}

	// Show the updated token, with the sold line and any remainder.
	for i := range nb.Tokens {
		if nb.Tokens[i].ID == owner.ID {
			printMarkdown(renderer.TokenMarkdown(nb, &nb.Tokens[i], nb.Settings.DisplayCurrency()))
			break
		}
	}
	return subcommands.ExitSuccess
}
