// Package cmd implements the CLI application to manage the shop book.
package cmd

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/sadh/vipani"
	"github.com/sadh/vipani/session"
)

// Commands lists every subcommand a main package should register.
var Commands = []subcommands.Command{
	&loginCmd{},
	&logoutCmd{},
	&whoamiCmd{},
	&overviewCmd{},
	&intakeCmd{},
	&sellCmd{},
	&tokensCmd{},
	&dailyCmd{},
	&partnerCmd{},
	&summaryCmd{},
	&balancesCmd{},
	&partiesCmd{},
	&catalogCmd{},
	&usersCmd{},
	&licenseCmd{},
	&settingsCmd{},
	&backupCmd{},
	&restoreCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", defaultDataDir(), "Directory holding the book, session and secret files")

// timeNow is swapped in tests.
var timeNow = time.Now

func defaultDataDir() string {
	if dir := os.Getenv("VIPANI_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".vipani"
	}
	return filepath.Join(home, ".vipani")
}

func bookPath() string    { return filepath.Join(*dataDir, "book.json") }
func sessionPath() string { return filepath.Join(*dataDir, "session") }

// loadBook reads the current book, seeding a default one on first run.
func loadBook() (*vipani.Book, error) {
	return vipani.LoadBook(bookPath(), timeNow())
}

// saveBook persists the book.
func saveBook(b *vipani.Book) error {
	return vipani.SaveBook(bookPath(), b)
}

// sessionSecret returns the signing secret for session tokens: the
// VIPANI_SESSION_SECRET variable when set, otherwise a random secret
// generated once and kept in the data directory.
func sessionSecret() ([]byte, error) {
	if s := os.Getenv("VIPANI_SESSION_SECRET"); s != "" {
		return []byte(s), nil
	}
	path := filepath.Join(*dataDir, "secret")
	if raw, err := os.ReadFile(path); err == nil && len(raw) > 0 {
		return raw, nil
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("cannot generate session secret: %w", err)
	}
	secret := []byte(hex.EncodeToString(buf))
	if err := os.MkdirAll(*dataDir, 0o700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, secret, 0o600); err != nil {
		return nil, fmt.Errorf("cannot store session secret: %w", err)
	}
	return secret, nil
}

func sessions() (*session.Manager, error) {
	secret, err := sessionSecret()
	if err != nil {
		return nil, err
	}
	return session.NewManager(sessionPath(), secret)
}

// requireUser resolves the logged-in account and enforces the license gate:
// once the license has expired, only Admin accounts may keep working, so
// that someone can still renew.
func requireUser(b *vipani.Book) (*vipani.UserAccount, error) {
	sm, err := sessions()
	if err != nil {
		return nil, err
	}
	claims, err := sm.Current()
	if errors.Is(err, session.ErrNoSession) {
		return nil, errors.New("not logged in, run 'vmg login' first")
	}
	if err != nil {
		return nil, err
	}
	u := b.User(claims.UserID)
	if u == nil {
		return nil, errors.New("session account no longer exists, run 'vmg login' again")
	}

	now := timeNow()
	switch {
	case b.License.IsValid(now):
		if b.License.IsExpiringSoon(now) {
			fmt.Fprintf(os.Stderr, "Warning: license expires in %d day(s), run 'vmg license -renew <days>'\n",
				b.License.DaysRemaining(now))
		}
	case u.Role == vipani.RoleAdmin:
		fmt.Fprintln(os.Stderr, "Warning: license expired, regular accounts are locked out until renewal")
	default:
		return nil, errors.New("license expired, ask an administrator to renew it")
	}
	return u, nil
}

// requireAdmin is requireUser restricted to Admin accounts.
func requireAdmin(b *vipani.Book) (*vipani.UserAccount, error) {
	u, err := requireUser(b)
	if err != nil {
		return nil, err
	}
	if u.Role != vipani.RoleAdmin {
		return nil, errors.New("administrator access required")
	}
	return u, nil
}

// fail prints the error and maps it to an exit status: usage-level mistakes
// (validation, safety locks) exit differently from real failures.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	var lock *vipani.SafetyLockError
	if vipani.IsValidation(err) || errors.As(err, &lock) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// printMarkdown renders a markdown document to the terminal.
func printMarkdown(doc string) {
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		// Fall back to the raw markdown rather than losing the report.
		fmt.Println(doc)
		return
	}
	fmt.Print(out)
}
