package vipani

import (
	"fmt"
	"time"
)

// Sell converts part or all of an Available token item into a Sold record,
// leaving any remainder as a new Available record, and returns the new book.
//
// The operation is all-or-nothing: it never partially updates a token, and
// it never mutates existing records. Both the sold piece and the remainder
// get fresh ids; the pre-sale id is retired and never reappears.
//
// The buyer id is stamped onto the sold record but its registration is a
// caller precondition, like every party reference in the book.
func (b *Book) Sell(itemID string, unitRate Money, buyerID string, soldQty Quantity, now time.Time) (*Book, error) {
	if !unitRate.IsPositive() {
		return nil, validationf("unit rate must be positive, got %s", unitRate)
	}
	if !soldQty.IsPositive() {
		return nil, validationf("sold quantity must be positive, got %s", soldQty)
	}
	item, _ := b.FindItem(itemID)
	if item == nil {
		return nil, fmt.Errorf("%w: %q", ErrItemNotFound, itemID)
	}
	if item.Status != Available {
		return nil, validationf("item %q is already sold", itemID)
	}
	if soldQty.GreaterThan(item.FinalQuantity) {
		return nil, validationf("sold quantity %s exceeds available stock %s", soldQty, item.FinalQuantity)
	}

	salesAmount := unitRate.Mul(soldQty)
	// The margin rate is baked in here; later settings changes never
	// rewrite historical purchase amounts.
	purchaseAmount := salesAmount.MulFactor(b.Settings.PurchaseMarginPercent.PayoutFactor())

	tokens := make([]Token, len(b.Tokens))
	for ti, token := range b.Tokens {
		if !token.contains(itemID) {
			tokens[ti] = token
			continue
		}
		items := make([]TokenItem, 0, len(token.Items)+1)
		for _, it := range token.Items {
			if it.ID != itemID {
				items = append(items, it)
				continue
			}

			sold := it
			sold.ID = NewID()
			sold.Status = Sold
			sold.SoldQuantity = soldQty
			sold.UnitSalesRate = unitRate
			sold.FinalQuantity = soldQty
			sold.SalesAmount = salesAmount
			sold.PurchaseAmount = purchaseAmount
			sold.SellingPartyID = buyerID
			sold.SoldAt = NewDatetime(now)
			items = append(items, sold)

			remainder := it.FinalQuantity.Sub(soldQty)
			if remainder.IsPositive() {
				rest := it
				rest.ID = NewID()
				rest.FinalQuantity = remainder
				// Scale the gross quantity down proportionally so the
				// gross/deduction/net relationship stays consistent for
				// the remainder. Fractional results are kept as-is.
				rest.Quantity = it.Quantity.Div(it.FinalQuantity).Mul(remainder)
				items = append(items, rest)
			}
		}
		t := token
		t.Items = items
		tokens[ti] = t
	}

	nb := *b
	nb.Tokens = tokens
	return &nb, nil
}
