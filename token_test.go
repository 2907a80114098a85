package vipani

import (
	"testing"
)

func TestNextTokenID(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want string
	}{
		{"empty book", nil, "1"},
		{"sequential", []string{"1", "2", "3"}, "4"},
		{"gaps use max not count", []string{"1", "3", "7"}, "8"},
		{"non numeric ids ignored", []string{"1", "legacy-a", "4"}, "5"},
		{"only non numeric", []string{"legacy-a"}, "1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := &Book{}
			for _, id := range tc.ids {
				b.Tokens = append(b.Tokens, Token{ID: id})
			}
			if got := b.NextTokenID(); got != tc.want {
				t.Errorf("NextTokenID() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestIntake(t *testing.T) {
	b := newTestBook(t)
	nb, tok := mustIntake(t, b, "seller-1",
		IntakeLine{Name: "Laptop Pro", Quantity: Q(10), DeductionQuantity: Q(1)},
		IntakeLine{Name: "Smart Phone X", Quantity: Q(5)},
	)

	if tok.ID != "1" {
		t.Errorf("token id = %q, want %q", tok.ID, "1")
	}
	if tok.SellerID != "seller-1" {
		t.Errorf("token seller = %q, want %q", tok.SellerID, "seller-1")
	}
	if len(tok.Items) != 2 {
		t.Fatalf("token has %d items, want 2", len(tok.Items))
	}

	laptop := tok.Items[0]
	if !laptop.FinalQuantity.Equal(Q(9)) {
		t.Errorf("laptop finalQuantity = %s, want 9", laptop.FinalQuantity)
	}
	if laptop.Status != Available {
		t.Errorf("laptop status = %q, want %q", laptop.Status, Available)
	}
	phone := tok.Items[1]
	if !phone.FinalQuantity.Equal(Q(5)) {
		t.Errorf("phone finalQuantity = %s, want 5", phone.FinalQuantity)
	}

	// Newest token first.
	if nb.Tokens[0].ID != "1" {
		t.Errorf("tokens[0].ID = %q, want the new token first", nb.Tokens[0].ID)
	}
	// The original book is untouched.
	if len(b.Tokens) != 0 {
		t.Errorf("original book gained %d tokens", len(b.Tokens))
	}
}

func TestIntakeDeductionExceedsQuantity(t *testing.T) {
	b := newTestBook(t)
	_, tok := mustIntake(t, b, "seller-1",
		IntakeLine{Name: "Laptop Pro", Quantity: Q(3), DeductionQuantity: Q(5)},
	)
	// Net quantity clamps at zero instead of going negative.
	if !tok.Items[0].FinalQuantity.IsZero() {
		t.Errorf("finalQuantity = %s, want 0", tok.Items[0].FinalQuantity)
	}
}

func TestIntakeValidation(t *testing.T) {
	b := newTestBook(t)
	line := IntakeLine{Name: "Laptop Pro", Quantity: Q(1)}

	tests := []struct {
		name     string
		sellerID string
		lines    []IntakeLine
	}{
		{"missing seller", "", []IntakeLine{line}},
		{"blank seller", "   ", []IntakeLine{line}},
		{"empty manifest", "seller-1", nil},
		{"unnamed line", "seller-1", []IntakeLine{{Quantity: Q(1)}}},
		{"negative quantity", "seller-1", []IntakeLine{{Name: "x", Quantity: Q(-1)}}},
		{"negative deduction", "seller-1", []IntakeLine{{Name: "x", Quantity: Q(1), DeductionQuantity: Q(-1)}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := b.Intake(tc.sellerID, tc.lines, testNow)
			if !IsValidation(err) {
				t.Errorf("Intake() error = %v, want a validation error", err)
			}
		})
	}
}

func TestIntakeSequentialIDs(t *testing.T) {
	b := newTestBook(t)
	line := IntakeLine{Name: "Laptop Pro", Quantity: Q(1)}

	b, first := mustIntake(t, b, "seller-1", line)
	b, second := mustIntake(t, b, "both-1", line)
	_, third := mustIntake(t, b, "seller-1", line)

	if first.ID != "1" || second.ID != "2" || third.ID != "3" {
		t.Errorf("token ids = %q, %q, %q, want 1, 2, 3", first.ID, second.ID, third.ID)
	}
}
