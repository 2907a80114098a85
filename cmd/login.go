package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/sadh/vipani"
)

type loginCmd struct {
	user     string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "open a session" }
func (*loginCmd) Usage() string {
	return `vmg login [-user <username>] [-password <password>]

  Verifies credentials and opens a session valid for 12 hours. Missing
  flags are prompted for interactively.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "user", "", "Username")
	f.StringVar(&c.password, "password", "", "Password (prompted when omitted)")
}

func (c *loginCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := loadBook()
	if err != nil {
		return fail(err)
	}

	reader := bufio.NewReader(os.Stdin)
	if c.user == "" {
		fmt.Print("Username: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fail(err)
		}
		c.user = strings.TrimSpace(line)
	}
	if c.password == "" {
		fmt.Print("Password: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fail(err)
		}
		c.password = strings.TrimRight(line, "\r\n")
	}

	u, err := b.Authenticate(c.user, c.password)
	if err != nil {
		return fail(err)
	}
	sm, err := sessions()
	if err != nil {
		return fail(err)
	}
	if err := sm.Open(u.ID, u.Username, string(u.Role)); err != nil {
		return fail(err)
	}

	fmt.Printf("Logged in as %s (%s)\n", u.Username, u.Role)
	now := timeNow()
	if !b.License.IsValid(now) && u.Role != vipani.RoleAdmin {
		fmt.Fprintln(os.Stderr, "Warning: the license has expired; bookkeeping commands are locked until an administrator renews it")
	}
	return subcommands.ExitSuccess
}

type logoutCmd struct{}

func (*logoutCmd) Name() string           { return "logout" }
func (*logoutCmd) Synopsis() string       { return "close the current session" }
func (*logoutCmd) Usage() string          { return "vmg logout\n" }
func (*logoutCmd) SetFlags(*flag.FlagSet) {}

func (c *logoutCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sm, err := sessions()
	if err != nil {
		return fail(err)
	}
	if err := sm.Close(); err != nil {
		return fail(err)
	}
	fmt.Println("Logged out")
	return subcommands.ExitSuccess
}

type whoamiCmd struct{}

func (*whoamiCmd) Name() string           { return "whoami" }
func (*whoamiCmd) Synopsis() string       { return "show the logged-in account" }
func (*whoamiCmd) Usage() string          { return "vmg whoami\n" }
func (*whoamiCmd) SetFlags(*flag.FlagSet) {}

func (c *whoamiCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sm, err := sessions()
	if err != nil {
		return fail(err)
	}
	claims, err := sm.Current()
	if err != nil {
		return fail(err)
	}
	fmt.Printf("%s (%s)\n", claims.Username, claims.Role)
	return subcommands.ExitSuccess
}
