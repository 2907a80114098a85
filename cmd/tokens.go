package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/sadh/vipani/renderer"
)

type tokensCmd struct {
	id string
}

func (*tokensCmd) Name() string     { return "tokens" }
func (*tokensCmd) Synopsis() string { return "list intake tokens or show one token's manifest" }
func (*tokensCmd) Usage() string {
	return `vmg tokens [-id <token-id>]

  Without -id, lists every token newest first. With -id, shows the full
  manifest of one token including sold lines and item ids.
`
}

func (c *tokensCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Token id to display in full")
}

func (c *tokensCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := loadBook()
	if err != nil {
		return fail(err)
	}
	if _, err := requireUser(b); err != nil {
		return fail(err)
	}
	currency := b.Settings.DisplayCurrency()

	if c.id == "" {
		printMarkdown(renderer.TokenListMarkdown(b, currency))
		return subcommands.ExitSuccess
	}
	for i := range b.Tokens {
		if b.Tokens[i].ID == c.id {
			printMarkdown(renderer.TokenMarkdown(b, &b.Tokens[i], currency))
			return subcommands.ExitSuccess
		}
	}
	return fail(fmt.Errorf("unknown token %q", c.id))
}
