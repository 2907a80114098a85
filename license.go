package vipani

import "time"

// LicenseStatus is the advisory status text stored with the license. It is
// not authoritative: validity is always recomputed from the expiry date.
type LicenseStatus string

const (
	LicenseActive  LicenseStatus = "Active"
	LicenseExpired LicenseStatus = "Expired"
)

// LicenseInfo is the single global license of the installation.
type LicenseInfo struct {
	ExpiryDate    Datetime      `json:"expiryDate"`
	Status        LicenseStatus `json:"status"`
	LastRenewedAt Datetime      `json:"lastRenewedAt"`
}

// IsValid reports whether the license is active at the given instant.
func (l LicenseInfo) IsValid(now time.Time) bool {
	return now.Before(l.ExpiryDate.Time())
}

// DaysRemaining returns the number of days until expiry, rounded up.
// It is zero or negative once the license has lapsed.
func (l LicenseInfo) DaysRemaining(now time.Time) int {
	diff := l.ExpiryDate.Time().Sub(now)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// IsExpiringSoon reports whether the license lapses within the next two days.
func (l LicenseInfo) IsExpiringSoon(now time.Time) bool {
	d := l.DaysRemaining(now)
	return d > 0 && d <= 2
}

// Renew extends the license by the given number of days and returns the new
// book. Renewing before expiry extends from the current expiry, so no paid
// time is lost; renewing after expiry extends from now, so the lapsed period
// earns no retroactive credit.
func (b *Book) Renew(extensionDays int, now time.Time) (*Book, error) {
	if extensionDays <= 0 {
		return nil, validationf("extension must be a positive number of days, got %d", extensionDays)
	}
	base := now
	if b.License.ExpiryDate.Time().After(now) {
		base = b.License.ExpiryDate.Time()
	}
	nb := *b
	nb.License = LicenseInfo{
		ExpiryDate:    NewDatetime(base.AddDate(0, 0, extensionDays)),
		Status:        LicenseActive,
		LastRenewedAt: NewDatetime(now),
	}
	return &nb, nil
}
