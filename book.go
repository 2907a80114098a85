package vipani

import (
	"iter"
	"strconv"

	"github.com/google/uuid"
)

// UnknownPartyName is the display fallback for a party id that no longer
// resolves, typically after the party was deleted from the directory.
// Historical records keep their ids; lookups resolve to this placeholder.
const UnknownPartyName = "Unknown"

// DefaultCurrency is the display currency used when the settings do not
// name one.
const DefaultCurrency = "INR"

// NewID produces a globally-unique string identifier for new parties,
// catalog entries, token items and users.
func NewID() string { return uuid.NewString() }

// AppSettings holds the global knobs of the book.
type AppSettings struct {
	// PurchaseMarginPercent is the percentage deducted from a sales amount
	// to compute the seller payout. It is read at sale time; changing it
	// never rewrites historical purchase amounts.
	PurchaseMarginPercent Percent `json:"purchaseMarginPercent"`
	// Currency is the ISO code used for display formatting only.
	Currency string `json:"currency,omitempty"`
}

// DisplayCurrency returns the currency code for display, defaulting to
// DefaultCurrency when unset.
func (s AppSettings) DisplayCurrency() string {
	if s.Currency == "" {
		return DefaultCurrency
	}
	return s.Currency
}

// Book is the document root: the entire state of the shop as one value.
// It is the unit of persistence, backup and restore.
//
// Operations on a Book never mutate it in place; they return a new Book
// sharing unchanged parts with the old one.
type Book struct {
	Parties  []Party        `json:"parties"`
	Catalog  []ItemTemplate `json:"itemTemplates"`
	Tokens   []Token        `json:"tokens"`
	Settings AppSettings    `json:"settings"`
	Users    []UserAccount  `json:"users"`
	License  LicenseInfo    `json:"license"`
}

// Party returns the party with this id, or nil if unknown.
func (b *Book) Party(id string) *Party {
	for i := range b.Parties {
		if b.Parties[i].ID == id {
			return &b.Parties[i]
		}
	}
	return nil
}

// PartyName resolves a party id to its name, falling back to
// UnknownPartyName for dangling or empty references.
func (b *Book) PartyName(id string) string {
	if p := b.Party(id); p != nil {
		return p.Name
	}
	return UnknownPartyName
}

// Template returns the catalog entry with this id, or nil if unknown.
func (b *Book) Template(id string) *ItemTemplate {
	for i := range b.Catalog {
		if b.Catalog[i].ID == id {
			return &b.Catalog[i]
		}
	}
	return nil
}

// User returns the user account with this id, or nil if unknown.
func (b *Book) User(id string) *UserAccount {
	for i := range b.Users {
		if b.Users[i].ID == id {
			return &b.Users[i]
		}
	}
	return nil
}

// UserByName returns the user account with this username, or nil if unknown.
func (b *Book) UserByName(username string) *UserAccount {
	for i := range b.Users {
		if b.Users[i].Username == username {
			return &b.Users[i]
		}
	}
	return nil
}

// FindItem locates a token item by id across all tokens, returning the item
// and its owning token, or nils when no token contains the id.
// The scan is O(tokens × items), acceptable at ledger scale.
func (b *Book) FindItem(itemID string) (*TokenItem, *Token) {
	for t := range b.Tokens {
		for i := range b.Tokens[t].Items {
			if b.Tokens[t].Items[i].ID == itemID {
				return &b.Tokens[t].Items[i], &b.Tokens[t]
			}
		}
	}
	return nil, nil
}

// NextTokenID computes the next sequential token id as a decimal string:
// max over the numeric ids plus one, starting at "1". Non-numeric ids are
// tolerated and excluded from the max.
func (b *Book) NextTokenID() string {
	maxID := 0
	for _, t := range b.Tokens {
		n, err := strconv.Atoi(t.ID)
		if err != nil {
			continue
		}
		if n > maxID {
			maxID = n
		}
	}
	return strconv.Itoa(maxID + 1)
}

// SoldItems iterates over every Sold item in the book together with its
// owning token, in token order.
func (b *Book) SoldItems() iter.Seq2[*Token, *TokenItem] {
	return func(yield func(*Token, *TokenItem) bool) {
		for t := range b.Tokens {
			token := &b.Tokens[t]
			for i := range token.Items {
				item := &token.Items[i]
				if item.Status != Sold {
					continue
				}
				if !yield(token, item) {
					return
				}
			}
		}
	}
}

// AllItems iterates over every item in the book together with its owning
// token, in token order.
func (b *Book) AllItems() iter.Seq2[*Token, *TokenItem] {
	return func(yield func(*Token, *TokenItem) bool) {
		for t := range b.Tokens {
			token := &b.Tokens[t]
			for i := range token.Items {
				if !yield(token, &token.Items[i]) {
					return
				}
			}
		}
	}
}
