package vipani

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// LoadBook reads the book document at path. A missing file is not an error:
// a freshly seeded default book is returned instead, so the first run of the
// application works against a usable directory and catalog.
func LoadBook(path string, now time.Time) (*Book, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultBook(now)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open book %q: %w", path, err)
	}
	defer f.Close()

	b, err := DecodeBook(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read book %q: %w", path, err)
	}
	return b, nil
}

// SaveBook writes the book document to path, creating parent directories as
// needed. The file is written whole; the encoding is deterministic so
// repeated saves of the same book produce identical bytes.
func SaveBook(path string, b *Book) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create directory %q: %w", dir, err)
		}
	}
	var buf bytes.Buffer
	if err := EncodeBook(&buf, b); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("cannot write book %q: %w", path, err)
	}
	return nil
}

// DefaultBook seeds a new installation: a couple of directory entries and
// catalog items to demonstrate the flows, a 20% purchase margin, an admin
// and a regular account, and a 30-day trial license.
//
// The seeded credentials are well-known bootstrap values; administrators are
// expected to replace them once logged in.
func DefaultBook(now time.Time) (*Book, error) {
	adminHash, err := HashPassword("821017")
	if err != nil {
		return nil, err
	}
	userHash, err := HashPassword("user123")
	if err != nil {
		return nil, err
	}
	created := NewDatetime(now)
	return &Book{
		Parties: []Party{
			{ID: "1", Name: "Walk-in Customer", Contact: "000", Type: SellerParty},
			{ID: "2", Name: "Retail Store A", Contact: "111", Type: BuyerParty},
		},
		Catalog: []ItemTemplate{
			{ID: "1", Name: "Laptop Pro"},
			{ID: "2", Name: "Smart Phone X"},
		},
		Settings: AppSettings{PurchaseMarginPercent: 20},
		Users: []UserAccount{
			{ID: "admin-1", Username: "sadh", PasswordHash: adminHash, Role: RoleAdmin, CreatedAt: created},
			{ID: "user-1", Username: "user", PasswordHash: userHash, Role: RoleUser, CreatedAt: created},
		},
		License: LicenseInfo{
			ExpiryDate:    NewDatetime(now.AddDate(0, 0, 30)),
			Status:        LicenseActive,
			LastRenewedAt: NewDatetime(now),
		},
	}, nil
}
