package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/sadh/vipani"
	"github.com/sadh/vipani/renderer"
	"github.com/shopspring/decimal"
)

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }
func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

type intakeCmd struct {
	seller string
	items  stringList
}

func (*intakeCmd) Name() string     { return "intake" }
func (*intakeCmd) Synopsis() string { return "record incoming goods from a seller as a new token" }
func (*intakeCmd) Usage() string {
	return `vmg intake -seller <party-id> -item "<name>:<qty>[:<deduction>]" [-item ...]

  Records one intake manifest. Each -item flag declares one line with its
  gross quantity and an optional deduction; the sellable quantity is their
  difference.
`
}

func (c *intakeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.seller, "seller", "", "Id of the supplying party")
	f.Var(&c.items, "item", "Manifest line as name:qty[:deduction], repeatable")
}

func (c *intakeCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := loadBook()
	if err != nil {
		return fail(err)
	}
	if _, err := requireUser(b); err != nil {
		return fail(err)
	}
	if c.seller != "" && b.Party(c.seller) == nil {
		return fail(fmt.Errorf("unknown seller %q, see 'vmg parties'", c.seller))
	}

	lines := make([]vipani.IntakeLine, 0, len(c.items))
	for _, raw := range c.items {
		line, err := parseIntakeLine(raw)
		if err != nil {
			return fail(err)
		}
		lines = append(lines, line)
	}

	nb, token, err := b.Intake(c.seller, lines, timeNow())
	if err != nil {
		return fail(err)
	}
	if err := saveBook(nb); err != nil {
		return fail(err)
	}

	printMarkdown(renderer.TokenMarkdown(nb, &token, nb.Settings.DisplayCurrency()))
	return subcommands.ExitSuccess
}

// parseIntakeLine parses "name:qty[:deduction]". The name may itself contain
// colons; the numeric fields are taken from the end.
func parseIntakeLine(raw string) (vipani.IntakeLine, error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 2 {
		return vipani.IntakeLine{}, fmt.Errorf("invalid item %q, want name:qty[:deduction]", raw)
	}

	// Try name:qty:deduction first, then name:qty.
	if len(parts) >= 3 {
		qty, errQ := decimal.NewFromString(parts[len(parts)-2])
		ded, errD := decimal.NewFromString(parts[len(parts)-1])
		if errQ == nil && errD == nil {
			return vipani.IntakeLine{
				Name:              strings.Join(parts[:len(parts)-2], ":"),
				Quantity:          vipani.Q(qty),
				DeductionQuantity: vipani.Q(ded),
			}, nil
		}
	}
	qty, err := decimal.NewFromString(parts[len(parts)-1])
	if err != nil {
		return vipani.IntakeLine{}, fmt.Errorf("invalid quantity in item %q: %w", raw, err)
	}
	return vipani.IntakeLine{
		Name:     strings.Join(parts[:len(parts)-1], ":"),
		Quantity: vipani.Q(qty),
	}, nil
}
