package vipani

import (
	"encoding/json"
	"slices"
	"strings"
	"time"
)

// ItemStatus is the two-state tag of a token item.
type ItemStatus string

const (
	// Available items are sellable and carry no sale fields.
	Available ItemStatus = "Available"
	// Sold is terminal: sale fields are populated and immutable thereafter.
	Sold ItemStatus = "Sold"
)

// TokenItem is one manifest line: a batch of identical units within a token.
//
// For a Sold item, FinalQuantity equals SoldQuantity — the record represents
// exactly what was sold. SalesAmount is UnitSalesRate × SoldQuantity, and
// PurchaseAmount bakes in the margin rate in effect at sale time: it is not
// recomputable from current settings, deliberately.
type TokenItem struct {
	ID                string     `json:"id"`
	TokenID           string     `json:"tokenId"`
	Name              string     `json:"name"`
	Quantity          Quantity   `json:"quantity"`
	DeductionQuantity Quantity   `json:"deductionQuantity"`
	FinalQuantity     Quantity   `json:"finalQuantity"`
	Status            ItemStatus `json:"status"`
	SoldQuantity      Quantity   `json:"soldQuantity,omitempty"`
	UnitSalesRate     Money      `json:"unitSalesRate,omitempty"`
	SalesAmount       Money      `json:"salesAmount,omitempty"`
	PurchaseAmount    Money      `json:"purchaseAmount,omitempty"`
	SellingPartyID    string     `json:"sellingPartyId,omitempty"`
	SoldAt            Datetime   `json:"soldAt,omitempty"`
}

// MarshalJSON implements the json.Marshaler interface for TokenItem.
// Sale fields are emitted only on Sold records.
func (t TokenItem) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("tokenId", t.TokenID)
	w.Append("name", t.Name)
	w.Append("quantity", t.Quantity)
	w.Append("deductionQuantity", t.DeductionQuantity)
	w.Append("finalQuantity", t.FinalQuantity)
	w.Append("status", t.Status)
	if t.Status == Sold {
		w.Append("soldQuantity", t.SoldQuantity)
		w.Append("unitSalesRate", t.UnitSalesRate)
		w.Append("salesAmount", t.SalesAmount)
		w.Append("purchaseAmount", t.PurchaseAmount)
		w.Append("sellingPartyId", t.SellingPartyID)
		w.Append("soldAt", t.SoldAt)
	}
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for TokenItem.
func (t *TokenItem) UnmarshalJSON(data []byte) error {
	type plain TokenItem
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*t = TokenItem(p)
	return nil
}

// Token is one intake manifest from one seller on one date. The item list
// only grows: a sale never deletes a line, it retires the original line and
// appends its derived children within the same rebuild.
type Token struct {
	ID        string      `json:"id"`
	SellerID  string      `json:"sellerId"`
	CreatedAt Datetime    `json:"createdAt"`
	Items     []TokenItem `json:"items"`
}

// contains reports whether the token holds an item with this id.
func (t Token) contains(itemID string) bool {
	return slices.ContainsFunc(t.Items, func(i TokenItem) bool { return i.ID == itemID })
}

// IntakeLine is one declared manifest line of an incoming token.
type IntakeLine struct {
	Name              string
	Quantity          Quantity
	DeductionQuantity Quantity
}

// newTokenItem builds an Available item enforcing the intake invariant
// finalQuantity = max(0, quantity - deductionQuantity).
func newTokenItem(tokenID string, line IntakeLine) TokenItem {
	final := line.Quantity.Sub(line.DeductionQuantity)
	if final.IsNegative() {
		final = Q(0)
	}
	return TokenItem{
		ID:                NewID(),
		TokenID:           tokenID,
		Name:              line.Name,
		Quantity:          line.Quantity,
		DeductionQuantity: line.DeductionQuantity,
		FinalQuantity:     final,
		Status:            Available,
	}
}

// Intake records one incoming manifest from a seller, assigning the next
// sequential token id, and returns the new book and the created token.
//
// The seller id is required but its registration is a caller precondition:
// dangling ids are tolerated in the document and resolve to
// UnknownPartyName at read time.
func (b *Book) Intake(sellerID string, lines []IntakeLine, now time.Time) (*Book, Token, error) {
	if strings.TrimSpace(sellerID) == "" {
		return nil, Token{}, validationf("a seller must be selected for intake")
	}
	if len(lines) == 0 {
		return nil, Token{}, validationf("at least one item must be declared in the manifest")
	}
	for _, line := range lines {
		if strings.TrimSpace(line.Name) == "" {
			return nil, Token{}, validationf("every manifest line needs an item name")
		}
		if line.Quantity.IsNegative() || line.DeductionQuantity.IsNegative() {
			return nil, Token{}, validationf("quantities cannot be negative on item %q", line.Name)
		}
	}

	token := Token{
		ID:        b.NextTokenID(),
		SellerID:  sellerID,
		CreatedAt: NewDatetime(now),
	}
	for _, line := range lines {
		token.Items = append(token.Items, newTokenItem(token.ID, line))
	}

	// Newest token first, matching the explorer's display order.
	nb := *b
	nb.Tokens = append([]Token{token}, b.Tokens...)
	return &nb, token, nil
}
