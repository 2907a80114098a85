package vipani

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestEncodeBookRoundTrip(t *testing.T) {
	b := tradedBook(t)

	var buf bytes.Buffer
	if err := EncodeBook(&buf, b); err != nil {
		t.Fatalf("EncodeBook: %v", err)
	}
	got, err := DecodeBook(&buf)
	if err != nil {
		t.Fatalf("DecodeBook: %v", err)
	}

	if len(got.Tokens) != len(b.Tokens) || len(got.Parties) != len(b.Parties) || len(got.Users) != len(b.Users) {
		t.Fatalf("round trip changed section sizes")
	}
	wantSold := b.Tokens[0].Items[0]
	gotSold := got.Tokens[0].Items[0]
	if gotSold.Status != Sold || !gotSold.SalesAmount.Equal(wantSold.SalesAmount) {
		t.Errorf("sold record = %+v, want %+v", gotSold, wantSold)
	}
	if !got.License.ExpiryDate.Time().Equal(b.License.ExpiryDate.Time()) {
		t.Errorf("license expiry = %s, want %s", got.License.ExpiryDate, b.License.ExpiryDate)
	}
}

func TestEncodeBookStable(t *testing.T) {
	b := tradedBook(t)

	var first, second bytes.Buffer
	if err := EncodeBook(&first, b); err != nil {
		t.Fatalf("EncodeBook: %v", err)
	}
	if err := EncodeBook(&second, b); err != nil {
		t.Fatalf("EncodeBook: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Errorf("two encodings of the same book differ")
	}
	// Stable top-level key order.
	text := first.String()
	last := -1
	for _, key := range []string{`"version"`, `"parties"`, `"itemTemplates"`, `"tokens"`, `"settings"`, `"users"`, `"license"`} {
		i := strings.Index(text, key)
		if i < 0 {
			t.Fatalf("key %s missing from the document", key)
		}
		if i < last {
			t.Errorf("key %s out of order", key)
		}
		last = i
	}
}

func TestEncodeOmitsSaleFieldsOnAvailable(t *testing.T) {
	b := newTestBook(t)
	b, _ = mustIntake(t, b, "seller-1", IntakeLine{Name: "Laptop Pro", Quantity: Q(3)})

	var buf bytes.Buffer
	if err := EncodeBook(&buf, b); err != nil {
		t.Fatalf("EncodeBook: %v", err)
	}
	for _, key := range []string{"soldQuantity", "salesAmount", "sellingPartyId", "soldAt"} {
		if strings.Contains(buf.String(), key) {
			t.Errorf("available item carries sale field %q", key)
		}
	}
}

func TestDecodeBookRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		missing []string
	}{
		{
			name: "not json",
			doc:  `{"parties": [`,
		},
		{
			name:    "missing users",
			doc:     `{"parties": [], "tokens": []}`,
			missing: []string{"users"},
		},
		{
			name:    "missing everything",
			doc:     `{"settings": {}}`,
			missing: []string{"parties", "tokens", "users"},
		},
		{
			name: "wrong section type",
			doc:  `{"parties": {}, "tokens": [], "users": []}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeBook(strings.NewReader(tc.doc))
			var fe *RestoreFormatError
			if !errors.As(err, &fe) {
				t.Fatalf("error = %v, want a *RestoreFormatError", err)
			}
			if !slices.Equal(fe.Missing, tc.missing) {
				t.Errorf("missing keys = %v, want %v", fe.Missing, tc.missing)
			}
		})
	}
}
