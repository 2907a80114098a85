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

type usersCmd struct {
	add      string
	password string
	admin    bool
	remove   string
}

func (*usersCmd) Name() string     { return "users" }
func (*usersCmd) Synopsis() string { return "list, add or remove login accounts (admin only)" }
func (*usersCmd) Usage() string {
	return `vmg users [-add <username> -password <password> [-admin]] [-remove <user-id>]

  Manages login accounts. You cannot remove your own account, nor the last
  remaining one.
`
}

func (c *usersCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Username of an account to create")
	f.StringVar(&c.password, "password", "", "Password for the new account")
	f.BoolVar(&c.admin, "admin", false, "Give the new account the Admin role")
	f.StringVar(&c.remove, "remove", "", "Id of an account to delete")
}

func (c *usersCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := loadBook()
	if err != nil {
		return fail(err)
	}
	acting, err := requireAdmin(b)
	if err != nil {
		return fail(err)
	}

	switch {
	case c.add != "":
		role := vipani.RoleUser
		if c.admin {
			role = vipani.RoleAdmin
		}
		nb, u, err := b.AddUser(c.add, c.password, role, timeNow())
		if err != nil {
			return fail(err)
		}
		if err := saveBook(nb); err != nil {
			return fail(err)
		}
		fmt.Printf("Created %s account %q with id %s\n", u.Role, u.Username, u.ID)

	case c.remove != "":
		nb, err := b.RemoveUser(c.remove, acting.ID)
		if err != nil {
			return fail(err)
		}
		if err := saveBook(nb); err != nil {
			return fail(err)
		}
		fmt.Printf("Removed account %s\n", c.remove)

	default:
		printMarkdown(userList(b))
	}
	return subcommands.ExitSuccess
}

func userList(b *vipani.Book) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Accounts")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft},
		Header:    []string{"Id", "Username", "Role", "Created"},
	}
	for _, u := range b.Users {
		created := ""
		if !u.CreatedAt.IsZero() {
			created = u.CreatedAt.Day().String()
		}
		table.Rows = append(table.Rows, []string{u.ID, u.Username, string(u.Role), created})
	}
	doc.Table(table)
	return doc.String()
}
