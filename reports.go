package vipani

import (
	"sort"
	"time"
)

// SoldEntry is one sold item with its cross-references resolved: the owning
// token's id and seller, plus display names for both parties.
type SoldEntry struct {
	Item       TokenItem
	TokenID    string
	SellerID   string // seller of the owning token
	SellerName string
	BuyerName  string // the selling party on the item
}

func (b *Book) soldEntry(token *Token, item *TokenItem) SoldEntry {
	return SoldEntry{
		Item:       *item,
		TokenID:    token.ID,
		SellerID:   token.SellerID,
		SellerName: b.PartyName(token.SellerID),
		BuyerName:  b.PartyName(item.SellingPartyID),
	}
}

// PartyTotals is the financial standing of one party across the whole book.
//
// Sign convention, load-bearing for every report: a positive balance means
// the party owes the operator money (receivable), a negative one means the
// operator owes the party (payable), zero means settled.
type PartyTotals struct {
	TotalAsBuyer  Money // sum of sales amounts where the party bought
	TotalAsSeller Money // sum of purchase amounts where the party supplied the token
	Balance       Money // TotalAsBuyer - TotalAsSeller
}

// Settled reports whether the party's account is balanced.
func (t PartyTotals) Settled() bool { return t.Balance.IsZero() }

// Receivable reports whether the party owes the operator money.
func (t PartyTotals) Receivable() bool { return t.Balance.IsPositive() }

// TotalsForParty computes the receivable and payable totals for one party.
// The seller side requires resolving each sold item's owning token.
func (b *Book) TotalsForParty(partyID string) PartyTotals {
	var t PartyTotals
	for token, item := range b.SoldItems() {
		if item.SellingPartyID == partyID {
			t.TotalAsBuyer = t.TotalAsBuyer.Add(item.SalesAmount)
		}
		if token.SellerID == partyID {
			t.TotalAsSeller = t.TotalAsSeller.Add(item.PurchaseAmount)
		}
	}
	t.Balance = t.TotalAsBuyer.Sub(t.TotalAsSeller)
	return t
}

// DailyReport is the operational ledger of one calendar day: every sale of
// the day with the receivable and payable totals.
type DailyReport struct {
	Date          Date
	Items         []SoldEntry
	TotalSales    Money // receivables from buyers
	TotalPurchase Money // payables to sellers
}

// Daily gathers all items sold on the given UTC calendar day.
func (b *Book) Daily(day Date) *DailyReport {
	r := &DailyReport{Date: day}
	for token, item := range b.SoldItems() {
		if item.SoldAt.Day() != day {
			continue
		}
		r.Items = append(r.Items, b.soldEntry(token, item))
		r.TotalSales = r.TotalSales.Add(item.SalesAmount)
		r.TotalPurchase = r.TotalPurchase.Add(item.PurchaseAmount)
	}
	return r
}

// PartnerHistory is the detailed statement behind a party's totals: the two
// filtered subsets of sold items in which the party took each role.
type PartnerHistory struct {
	PartyID  string
	AsBuyer  []SoldEntry
	AsSeller []SoldEntry
	Totals   PartyTotals
}

// History assembles the full statement for one party.
func (b *Book) History(partyID string) *PartnerHistory {
	h := &PartnerHistory{PartyID: partyID}
	for token, item := range b.SoldItems() {
		if item.SellingPartyID == partyID {
			h.AsBuyer = append(h.AsBuyer, b.soldEntry(token, item))
		}
		if token.SellerID == partyID {
			h.AsSeller = append(h.AsSeller, b.soldEntry(token, item))
		}
	}
	h.Totals = b.TotalsForParty(partyID)
	return h
}

// SummaryRow is one line of the consolidated balance sheet.
type SummaryRow struct {
	Party  Party
	Totals PartyTotals
}

// Summary computes one totals row per registered party, in directory order.
// Sales to or from deleted parties are not represented by any row, so the
// balances of a summary need not sum to zero.
func (b *Book) Summary() []SummaryRow {
	rows := make([]SummaryRow, 0, len(b.Parties))
	for _, p := range b.Parties {
		rows = append(rows, SummaryRow{Party: p, Totals: b.TotalsForParty(p.ID)})
	}
	return rows
}

// SummaryKey selects the column a summary is sorted on.
type SummaryKey int

const (
	ByName SummaryKey = iota
	ByBuyerTotal
	BySellerTotal
	ByBalance // ordered on abs(balance)
)

// SortOrder is the direction of a summary sort. Unsorted restores the
// directory order.
type SortOrder int

const (
	Unsorted SortOrder = iota
	Ascending
	Descending
)

// SummarySort is the sort state of the consolidated balance sheet.
type SummarySort struct {
	Key   SummaryKey
	Order SortOrder
}

// Select returns the next sort state after the user picks a key: a new key
// starts ascending, repeating a key cycles ascending, descending, unsorted.
func (s SummarySort) Select(key SummaryKey) SummarySort {
	if s.Key != key || s.Order == Unsorted {
		return SummarySort{Key: key, Order: Ascending}
	}
	if s.Order == Ascending {
		return SummarySort{Key: key, Order: Descending}
	}
	return SummarySort{Key: key, Order: Unsorted}
}

// SortSummary orders rows in place according to the sort state. The sort is
// stable; Unsorted leaves the directory order untouched.
func SortSummary(rows []SummaryRow, s SummarySort) {
	if s.Order == Unsorted {
		return
	}
	less := func(a, b SummaryRow) bool {
		switch s.Key {
		case ByBuyerTotal:
			return a.Totals.TotalAsBuyer.LessThan(b.Totals.TotalAsBuyer)
		case BySellerTotal:
			return a.Totals.TotalAsSeller.LessThan(b.Totals.TotalAsSeller)
		case ByBalance:
			return a.Totals.Balance.Abs().LessThan(b.Totals.Balance.Abs())
		default:
			return a.Party.Name < b.Party.Name
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if s.Order == Descending {
			return less(rows[j], rows[i])
		}
		return less(rows[i], rows[j])
	})
}

// DaySales is one day of the trailing sales series on the overview.
type DaySales struct {
	Date  Date
	Sales Money
}

// Overview is the at-a-glance state of the shop: lifetime totals, current
// stock, the trailing week of sales, and the license state.
type Overview struct {
	TotalSales    Money
	TotalPurchase Money
	TotalMargin   Money // TotalSales - TotalPurchase
	InStockLines  int   // count of Available manifest lines
	LastWeek      []DaySales
	DaysRemaining int
	LicenseValid  bool
}

// Overview computes the dashboard figures as of now.
func (b *Book) Overview(now time.Time) *Overview {
	o := &Overview{}
	for _, item := range b.SoldItems() {
		o.TotalSales = o.TotalSales.Add(item.SalesAmount)
		o.TotalPurchase = o.TotalPurchase.Add(item.PurchaseAmount)
	}
	o.TotalMargin = o.TotalSales.Sub(o.TotalPurchase)
	for _, item := range b.AllItems() {
		if item.Status == Available {
			o.InStockLines++
		}
	}

	today := NewDate(now.UTC().Date())
	for i := 6; i >= 0; i-- {
		day := today.Add(-i)
		o.LastWeek = append(o.LastWeek, DaySales{Date: day, Sales: b.Daily(day).TotalSales})
	}

	o.DaysRemaining = b.License.DaysRemaining(now)
	o.LicenseValid = b.License.IsValid(now)
	return o
}
