package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/sadh/vipani/renderer"
)

type partnerCmd struct {
	id string
}

func (*partnerCmd) Name() string     { return "partner" }
func (*partnerCmd) Synopsis() string { return "display the full statement of one party" }
func (*partnerCmd) Usage() string {
	return `vmg partner -id <party-id>

  Displays one party's statement: purchases, sold supplied stock, and the
  net standing.
`
}

func (c *partnerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Party id, see 'vmg parties'")
}

func (c *partnerCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := loadBook()
	if err != nil {
		return fail(err)
	}
	if _, err := requireUser(b); err != nil {
		return fail(err)
	}
	p := b.Party(c.id)
	if p == nil {
		return fail(fmt.Errorf("unknown party %q, see 'vmg parties'", c.id))
	}

	printMarkdown(renderer.PartnerMarkdown(b.History(p.ID), p.Name, b.Settings.DisplayCurrency()))
	return subcommands.ExitSuccess
}
