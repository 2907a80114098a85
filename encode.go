package vipani

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// BookVersion identifies the on-disk document schema.
const BookVersion = "1"

func init() {
	// Quantities and amounts are stored as bare JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeBook writes the book as an indented JSON document with a stable
// top-level key order, suitable for diffing and for backup files.
func EncodeBook(w io.Writer, b *Book) error {
	doc := &jsonObjectWriter{}
	doc.Append("version", BookVersion)
	doc.Append("parties", b.Parties)
	doc.Append("itemTemplates", b.Catalog)
	doc.Append("tokens", b.Tokens)
	doc.Append("settings", b.Settings)
	doc.Append("users", b.Users)
	doc.Append("license", b.License)

	raw, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot encode book: %w", err)
	}
	var indented json.RawMessage = raw
	out, err := json.MarshalIndent(indented, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot indent book: %w", err)
	}
	if _, err := w.Write(out); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}

// requiredBookKeys are the sections a document must carry to be accepted by
// DecodeBook. A file missing any of them is rejected wholesale so a botched
// restore can never wipe the current book.
var requiredBookKeys = []string{"parties", "tokens", "users"}

// DecodeBook parses a book document, validating its shape before anything is
// returned. Invalid input yields a *RestoreFormatError and no partial book.
func DecodeBook(r io.Reader) (*Book, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var sections map[string]json.RawMessage
	if err := json.Unmarshal(data, &sections); err != nil {
		return nil, &RestoreFormatError{cause: err}
	}
	var missing []string
	for _, key := range requiredBookKeys {
		if _, ok := sections[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, &RestoreFormatError{Missing: missing}
	}

	var b Book
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, &RestoreFormatError{cause: err}
	}
	return &b, nil
}
