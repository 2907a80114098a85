package vipani

import (
	"testing"
	"time"
)

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestRenew(t *testing.T) {
	tests := []struct {
		name   string
		expiry time.Time
		now    time.Time
		days   int
		want   time.Time
	}{
		{
			// Renewing before expiry extends from the expiry: no time lost.
			name:   "before expiry",
			expiry: at("2024-01-10T00:00:00Z"),
			now:    at("2024-01-05T00:00:00Z"),
			days:   30,
			want:   at("2024-02-09T00:00:00Z"),
		},
		{
			// Renewing after expiry extends from now: no retroactive credit.
			name:   "after expiry",
			expiry: at("2024-01-10T00:00:00Z"),
			now:    at("2024-01-20T00:00:00Z"),
			days:   30,
			want:   at("2024-02-19T00:00:00Z"),
		},
		{
			name:   "at the instant of expiry",
			expiry: at("2024-01-10T00:00:00Z"),
			now:    at("2024-01-10T00:00:00Z"),
			days:   7,
			want:   at("2024-01-17T00:00:00Z"),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := &Book{License: LicenseInfo{ExpiryDate: NewDatetime(tc.expiry), Status: LicenseExpired}}
			nb, err := b.Renew(tc.days, tc.now)
			if err != nil {
				t.Fatalf("Renew: %v", err)
			}
			if got := nb.License.ExpiryDate.Time(); !got.Equal(tc.want) {
				t.Errorf("expiry = %s, want %s", got, tc.want)
			}
			if nb.License.Status != LicenseActive {
				t.Errorf("status = %q, want %q", nb.License.Status, LicenseActive)
			}
			if got := nb.License.LastRenewedAt.Time(); !got.Equal(tc.now.Truncate(time.Second)) {
				t.Errorf("lastRenewedAt = %s, want %s", got, tc.now)
			}
		})
	}
}

func TestRenewRejectsNonPositive(t *testing.T) {
	b := &Book{}
	for _, days := range []int{0, -5} {
		if _, err := b.Renew(days, testNow); !IsValidation(err) {
			t.Errorf("Renew(%d) error = %v, want a validation error", days, err)
		}
	}
}

func TestLicenseValidity(t *testing.T) {
	l := LicenseInfo{ExpiryDate: NewDatetime(at("2024-01-10T00:00:00Z"))}

	tests := []struct {
		name  string
		now   time.Time
		valid bool
		days  int
		soon  bool
	}{
		{"well before", at("2024-01-01T00:00:00Z"), true, 9, false},
		{"two days left", at("2024-01-08T00:00:00Z"), true, 2, true},
		{"partial day rounds up", at("2024-01-09T18:00:00Z"), true, 1, true},
		{"at expiry", at("2024-01-10T00:00:00Z"), false, 0, false},
		{"after expiry", at("2024-01-15T00:00:00Z"), false, -5, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := l.IsValid(tc.now); got != tc.valid {
				t.Errorf("IsValid = %v, want %v", got, tc.valid)
			}
			if got := l.DaysRemaining(tc.now); got != tc.days {
				t.Errorf("DaysRemaining = %d, want %d", got, tc.days)
			}
			if got := l.IsExpiringSoon(tc.now); got != tc.soon {
				t.Errorf("IsExpiringSoon = %v, want %v", got, tc.soon)
			}
		})
	}
}
