// Package renderer turns book reports into markdown documents for terminal
// display.
package renderer

import (
	"fmt"

	"github.com/sadh/vipani"
)

// amount formats a Money value with the book's display currency.
func amount(m vipani.Money, code string) string { return m.Display(code) }

// standing renders a balance with its direction: what the party owes the
// operator (receivable), what the operator owes the party (payable), or
// settled.
func standing(t vipani.PartyTotals, code string) string {
	switch {
	case t.Settled():
		return "Settled"
	case t.Receivable():
		return fmt.Sprintf("%s to receive", amount(t.Balance, code))
	default:
		return fmt.Sprintf("%s to pay", amount(t.Balance.Abs(), code))
	}
}
