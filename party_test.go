package vipani

import "testing"

func TestAddParty(t *testing.T) {
	b := newTestBook(t)

	nb, p, err := b.AddParty("  New Trader  ", "999", BuyerParty)
	if err != nil {
		t.Fatalf("AddParty: %v", err)
	}
	if p.Name != "New Trader" {
		t.Errorf("name = %q, want trimmed %q", p.Name, "New Trader")
	}
	if nb.Party(p.ID) == nil {
		t.Errorf("new party not resolvable by id")
	}
	if len(b.Parties) == len(nb.Parties) {
		t.Errorf("party not added")
	}

	if _, _, err := b.AddParty("   ", "x", SellerParty); !IsValidation(err) {
		t.Errorf("blank name error = %v, want a validation error", err)
	}
}

func TestRemovePartyKeepsHistory(t *testing.T) {
	b := tradedBook(t)

	nb, err := b.RemoveParty("seller-1")
	if err != nil {
		t.Fatalf("RemoveParty: %v", err)
	}
	if nb.Party("seller-1") != nil {
		t.Errorf("party still registered after removal")
	}
	// Tokens keep the dangling reference.
	found := false
	for _, tok := range nb.Tokens {
		if tok.SellerID == "seller-1" {
			found = true
		}
	}
	if !found {
		t.Errorf("historical token lost its seller reference")
	}
	if name := nb.PartyName("seller-1"); name != UnknownPartyName {
		t.Errorf("PartyName = %q, want %q", name, UnknownPartyName)
	}

	if _, err := nb.RemoveParty("seller-1"); !IsValidation(err) {
		t.Errorf("second removal error = %v, want a validation error", err)
	}
}

func TestAddTemplateUniqueness(t *testing.T) {
	b := newTestBook(t)

	if _, _, err := b.AddTemplate("laptop PRO"); !IsValidation(err) {
		t.Errorf("case-insensitive duplicate accepted, error = %v", err)
	}
	nb, tpl, err := b.AddTemplate("Cooler")
	if err != nil {
		t.Fatalf("AddTemplate: %v", err)
	}
	if nb.Template(tpl.ID) == nil {
		t.Errorf("new template not resolvable by id")
	}
}
