package vipani

import (
	"path/filepath"
	"testing"
)

func TestLoadBookSeedsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.json")

	b, err := LoadBook(path, testNow)
	if err != nil {
		t.Fatalf("LoadBook: %v", err)
	}
	if len(b.Parties) == 0 || len(b.Catalog) == 0 || len(b.Users) == 0 {
		t.Fatalf("default book not seeded: %d parties, %d catalog, %d users",
			len(b.Parties), len(b.Catalog), len(b.Users))
	}
	if b.Settings.PurchaseMarginPercent != 20 {
		t.Errorf("default margin = %s, want 20.00%%", b.Settings.PurchaseMarginPercent)
	}
	if !b.License.IsValid(testNow) {
		t.Errorf("seeded license already expired")
	}
	if got := b.License.DaysRemaining(testNow); got != 30 {
		t.Errorf("seeded license days remaining = %d, want 30", got)
	}
	// The seeded admin can log in with the bootstrap credentials.
	if _, err := b.Authenticate("sadh", "821017"); err != nil {
		t.Errorf("seeded admin cannot authenticate: %v", err)
	}
}

func TestSaveAndLoadBook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "book.json")
	b := tradedBook(t)

	if err := SaveBook(path, b); err != nil {
		t.Fatalf("SaveBook: %v", err)
	}
	got, err := LoadBook(path, testNow)
	if err != nil {
		t.Fatalf("LoadBook: %v", err)
	}
	if len(got.Tokens) != len(b.Tokens) {
		t.Errorf("loaded %d tokens, want %d", len(got.Tokens), len(b.Tokens))
	}
	totals := got.TotalsForParty("buyer-1")
	if !totals.Balance.Equal(M(1000)) {
		t.Errorf("balance after reload = %s, want 1000", totals.Balance)
	}
}
