package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sadh/vipani"
)

type restoreCmd struct {
	in string
}

func (*restoreCmd) Name() string     { return "restore" }
func (*restoreCmd) Synopsis() string { return "replace the book with a backup document (admin only)" }
func (*restoreCmd) Usage() string {
	return `vmg restore -i <file>

  Replaces the whole book with the given backup. The file is validated
  first; an invalid file is rejected and the current book is kept.
`
}

func (c *restoreCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "i", "", "Backup file to restore from")
}

func (c *restoreCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := loadBook()
	if err != nil {
		return fail(err)
	}
	if _, err := requireAdmin(b); err != nil {
		return fail(err)
	}
	if c.in == "" {
		return fail(fmt.Errorf("a backup file is required, see 'vmg help restore'"))
	}

	f, err := os.Open(c.in)
	if err != nil {
		return fail(fmt.Errorf("cannot open backup file: %w", err))
	}
	defer f.Close()

	restored, err := vipani.DecodeBook(f)
	if err != nil {
		return fail(err)
	}
	if err := saveBook(restored); err != nil {
		return fail(err)
	}

	fmt.Printf("Book restored from %s: %d parties, %d tokens, %d users\n",
		c.in, len(restored.Parties), len(restored.Tokens), len(restored.Users))
	fmt.Println("Sessions may reference removed accounts; log in again if needed.")
	return subcommands.ExitSuccess
}
