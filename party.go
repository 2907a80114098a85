package vipani

import (
	"slices"
	"strings"
)

// PartyType records how a party was registered. It is informational only:
// any party can act as buyer in one transaction and seller in another.
type PartyType string

const (
	SellerParty PartyType = "Seller"
	BuyerParty  PartyType = "Buyer"
)

// Party is a trading partner in the directory. Parties are created once and
// never mutated; deleting one does not cascade into historical tokens.
type Party struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Contact string    `json:"contact"`
	Type    PartyType `json:"type"`
}

// ItemTemplate is a catalog entry for a product SKU.
type ItemTemplate struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AddParty registers a new trading partner and returns the new book and the
// created party.
func (b *Book) AddParty(name, contact string, typ PartyType) (*Book, Party, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, Party{}, validationf("party name is required")
	}
	p := Party{ID: NewID(), Name: name, Contact: contact, Type: typ}
	nb := *b
	nb.Parties = append(slices.Clone(b.Parties), p)
	return &nb, p, nil
}

// RemoveParty deletes a party from the directory. Historical token
// references to its id remain and resolve to UnknownPartyName at read time.
func (b *Book) RemoveParty(id string) (*Book, error) {
	if b.Party(id) == nil {
		return nil, validationf("party %q is not registered", id)
	}
	nb := *b
	nb.Parties = slices.DeleteFunc(slices.Clone(b.Parties), func(p Party) bool { return p.ID == id })
	return &nb, nil
}

// AddTemplate registers a new catalog entry. Names must be unique
// case-insensitively within the catalog; uniqueness is enforced at creation
// time only, never against names inside historical token items.
func (b *Book) AddTemplate(name string) (*Book, ItemTemplate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ItemTemplate{}, validationf("catalog item name is required")
	}
	for _, t := range b.Catalog {
		if strings.EqualFold(t.Name, name) {
			return nil, ItemTemplate{}, validationf("catalog item %q already exists", t.Name)
		}
	}
	t := ItemTemplate{ID: NewID(), Name: name}
	nb := *b
	nb.Catalog = append(slices.Clone(b.Catalog), t)
	return &nb, t, nil
}

// RemoveTemplate deletes a catalog entry.
func (b *Book) RemoveTemplate(id string) (*Book, error) {
	if b.Template(id) == nil {
		return nil, validationf("catalog item %q is not registered", id)
	}
	nb := *b
	nb.Catalog = slices.DeleteFunc(slices.Clone(b.Catalog), func(t ItemTemplate) bool { return t.ID == id })
	return &nb, nil
}
