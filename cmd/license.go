package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	md "github.com/nao1215/markdown"
	"github.com/sadh/vipani"
)

type licenseCmd struct {
	renew int
}

func (*licenseCmd) Name() string     { return "license" }
func (*licenseCmd) Synopsis() string { return "show the license state or renew it" }
func (*licenseCmd) Usage() string {
	return `vmg license [-renew <days>]

  Shows the license expiry and remaining days. Renewing extends from the
  current expiry when still valid, from today once lapsed. Renewal is
  admin only.
`
}

func (c *licenseCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.renew, "renew", 0, "Extend the license by this many days")
}

func (c *licenseCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := loadBook()
	if err != nil {
		return fail(err)
	}

	if c.renew != 0 {
		if _, err := requireAdmin(b); err != nil {
			return fail(err)
		}
		nb, err := b.Renew(c.renew, timeNow())
		if err != nil {
			return fail(err)
		}
		if err := saveBook(nb); err != nil {
			return fail(err)
		}
		b = nb
	} else if _, err := requireUser(b); err != nil {
		return fail(err)
	}

	printMarkdown(licenseState(b))
	return subcommands.ExitSuccess
}

func licenseState(b *vipani.Book) string {
	now := timeNow()
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("License")

	state := "Expired"
	if b.License.IsValid(now) {
		state = fmt.Sprintf("Active, %d day(s) remaining", b.License.DaysRemaining(now))
	}
	rows := [][]string{
		{"Expires", b.License.ExpiryDate.String()},
	}
	if !b.License.LastRenewedAt.IsZero() {
		rows = append(rows, []string{"Last renewed", b.License.LastRenewedAt.String()})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
		Header:    []string{md.Bold("State"), md.Bold(state)},
		Rows:      rows,
	})
	return doc.String()
}
