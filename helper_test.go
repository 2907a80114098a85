package vipani

import (
	"testing"
	"time"
)

// testNow is the reference instant used across tests.
var testNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

// newTestBook returns a book with a minimal directory and catalog, a 20%
// margin, one admin and one regular account, and a license valid for a year.
func newTestBook(t *testing.T) *Book {
	t.Helper()
	return &Book{
		Parties: []Party{
			{ID: "seller-1", Name: "Anil Traders", Contact: "100", Type: SellerParty},
			{ID: "buyer-1", Name: "City Mart", Contact: "200", Type: BuyerParty},
			{ID: "both-1", Name: "Gupta & Sons", Contact: "300", Type: SellerParty},
		},
		Catalog: []ItemTemplate{
			{ID: "tpl-1", Name: "Laptop Pro"},
		},
		Settings: AppSettings{PurchaseMarginPercent: 20},
		Users: []UserAccount{
			{ID: "admin-1", Username: "admin", PasswordHash: mustHash(t, "secret"), Role: RoleAdmin},
			{ID: "user-1", Username: "clerk", PasswordHash: mustHash(t, "letmein"), Role: RoleUser},
		},
		License: LicenseInfo{
			ExpiryDate: NewDatetime(testNow.AddDate(1, 0, 0)),
			Status:     LicenseActive,
		},
	}
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	h, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword(%q): %v", password, err)
	}
	return h
}

// mustIntake records a manifest and fails the test on error.
func mustIntake(t *testing.T, b *Book, sellerID string, lines ...IntakeLine) (*Book, Token) {
	t.Helper()
	nb, tok, err := b.Intake(sellerID, lines, testNow)
	if err != nil {
		t.Fatalf("Intake(%q): %v", sellerID, err)
	}
	return nb, tok
}

// mustSell sells a quantity of an item and fails the test on error.
func mustSell(t *testing.T, b *Book, itemID string, rate Money, buyerID string, qty Quantity, now time.Time) *Book {
	t.Helper()
	nb, err := b.Sell(itemID, rate, buyerID, qty, now)
	if err != nil {
		t.Fatalf("Sell(%q): %v", itemID, err)
	}
	return nb
}

// availableItem returns the single Available item named name, failing the
// test if there are zero or several.
func availableItem(t *testing.T, b *Book, name string) *TokenItem {
	t.Helper()
	var found *TokenItem
	for _, item := range b.AllItems() {
		if item.Status == Available && item.Name == name {
			if found != nil {
				t.Fatalf("several Available items named %q", name)
			}
			found = item
		}
	}
	if found == nil {
		t.Fatalf("no Available item named %q", name)
	}
	return found
}
