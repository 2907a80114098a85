package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/sadh/vipani"
	"github.com/sadh/vipani/renderer"
)

type summaryCmd struct {
	sort string
	desc bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the balance sheet of every party" }
func (*summaryCmd) Usage() string {
	return `vmg summary [-sort name|bought|supplied|balance] [-desc]

  Displays one balance row per registered party. Sorting on balance orders
  by absolute amount, largest debts on either side together.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sort, "sort", "", "Column to sort on (name, bought, supplied, balance)")
	f.BoolVar(&c.desc, "desc", false, "Sort descending")
}

func (c *summaryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := loadBook()
	if err != nil {
		return fail(err)
	}
	if _, err := requireUser(b); err != nil {
		return fail(err)
	}

	rows := b.Summary()
	if c.sort != "" {
		s := vipani.SummarySort{Order: vipani.Ascending}
		if c.desc {
			s.Order = vipani.Descending
		}
		switch c.sort {
		case "name":
			s.Key = vipani.ByName
		case "bought":
			s.Key = vipani.ByBuyerTotal
		case "supplied":
			s.Key = vipani.BySellerTotal
		case "balance":
			s.Key = vipani.ByBalance
		default:
			return fail(fmt.Errorf("unknown sort column %q", c.sort))
		}
		vipani.SortSummary(rows, s)
	}

	printMarkdown(renderer.SummaryMarkdown(rows, b.Settings.DisplayCurrency()))
	return subcommands.ExitSuccess
}
