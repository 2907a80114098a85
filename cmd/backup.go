package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sadh/vipani"
)

type backupCmd struct {
	out string
}

func (*backupCmd) Name() string     { return "backup" }
func (*backupCmd) Synopsis() string { return "export the whole book as a JSON document" }
func (*backupCmd) Usage() string {
	return `vmg backup [-o <file>]

  Writes the complete book to a file, or to stdout when no file is given.
`
}

func (c *backupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "", "Destination file (defaults to stdout)")
}

func (c *backupCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := loadBook()
	if err != nil {
		return fail(err)
	}
	if _, err := requireUser(b); err != nil {
		return fail(err)
	}

	if c.out == "" {
		if err := vipani.EncodeBook(os.Stdout, b); err != nil {
			return fail(err)
		}
		return subcommands.ExitSuccess
	}
	f, err := os.Create(c.out)
	if err != nil {
		return fail(fmt.Errorf("cannot create backup file: %w", err))
	}
	defer f.Close()
	if err := vipani.EncodeBook(f, b); err != nil {
		return fail(err)
	}
	fmt.Printf("Book exported to %s\n", c.out)
	return subcommands.ExitSuccess
}
