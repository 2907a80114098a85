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

type partiesCmd struct {
	add     string
	contact string
	typ     string
	remove  string
}

func (*partiesCmd) Name() string     { return "parties" }
func (*partiesCmd) Synopsis() string { return "list, add or remove trading partners" }
func (*partiesCmd) Usage() string {
	return `vmg parties [-add <name> [-contact <contact>] [-type Seller|Buyer]] [-remove <party-id>]

  Without flags, lists the party directory. Removing a party keeps its
  historical sales; reports then show it as Unknown.
`
}

func (c *partiesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Name of a party to register")
	f.StringVar(&c.contact, "contact", "", "Contact detail for the new party")
	f.StringVar(&c.typ, "type", "Seller", "Type of the new party (Seller or Buyer)")
	f.StringVar(&c.remove, "remove", "", "Id of a party to delete")
}

func (c *partiesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := loadBook()
	if err != nil {
		return fail(err)
	}
	if _, err := requireUser(b); err != nil {
		return fail(err)
	}

	switch {
	case c.add != "":
		typ := vipani.PartyType(c.typ)
		if typ != vipani.SellerParty && typ != vipani.BuyerParty {
			return fail(fmt.Errorf("unknown party type %q, want Seller or Buyer", c.typ))
		}
		nb, p, err := b.AddParty(c.add, c.contact, typ)
		if err != nil {
			return fail(err)
		}
		if err := saveBook(nb); err != nil {
			return fail(err)
		}
		fmt.Printf("Registered %s %q with id %s\n", p.Type, p.Name, p.ID)

	case c.remove != "":
		nb, err := b.RemoveParty(c.remove)
		if err != nil {
			return fail(err)
		}
		if err := saveBook(nb); err != nil {
			return fail(err)
		}
		fmt.Printf("Removed party %s\n", c.remove)

	default:
		printMarkdown(partyDirectory(b))
	}
	return subcommands.ExitSuccess
}

func partyDirectory(b *vipani.Book) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Parties")
	if len(b.Parties) == 0 {
		doc.PlainText("No parties registered.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft},
		Header:    []string{"Id", "Name", "Contact", "Type"},
	}
	for _, p := range b.Parties {
		table.Rows = append(table.Rows, []string{p.ID, p.Name, p.Contact, string(p.Type)})
	}
	doc.Table(table)
	return doc.String()
}
