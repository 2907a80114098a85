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

type catalogCmd struct {
	add    string
	remove string
}

func (*catalogCmd) Name() string     { return "catalog" }
func (*catalogCmd) Synopsis() string { return "list, add or remove catalog items" }
func (*catalogCmd) Usage() string {
	return `vmg catalog [-add <name>] [-remove <item-id>]

  The catalog holds the reusable item names offered during intake. Names
  are unique, ignoring case.
`
}

func (c *catalogCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Name of a catalog item to register")
	f.StringVar(&c.remove, "remove", "", "Id of a catalog item to delete")
}

func (c *catalogCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := loadBook()
	if err != nil {
		return fail(err)
	}
	if _, err := requireUser(b); err != nil {
		return fail(err)
	}

	switch {
	case c.add != "":
		nb, t, err := b.AddTemplate(c.add)
		if err != nil {
			return fail(err)
		}
		if err := saveBook(nb); err != nil {
			return fail(err)
		}
		fmt.Printf("Registered catalog item %q with id %s\n", t.Name, t.ID)

	case c.remove != "":
		nb, err := b.RemoveTemplate(c.remove)
		if err != nil {
			return fail(err)
		}
		if err := saveBook(nb); err != nil {
			return fail(err)
		}
		fmt.Printf("Removed catalog item %s\n", c.remove)

	default:
		printMarkdown(catalogList(b))
	}
	return subcommands.ExitSuccess
}

func catalogList(b *vipani.Book) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Catalog")
	if len(b.Catalog) == 0 {
		doc.PlainText("No catalog items registered.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
		Header:    []string{"Id", "Name"},
	}
	for _, t := range b.Catalog {
		table.Rows = append(table.Rows, []string{t.ID, t.Name})
	}
	doc.Table(table)
	return doc.String()
}
