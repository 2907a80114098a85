package vipani

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in the book's operating currency.
//
// The book is single-currency, so Money does not carry a currency code;
// the code is a display concern taken from the settings (see Display).
type Money struct {
	value decimal.Decimal
}

// M creates a Money from a numeric constant or a decimal.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

func (m Money) Equal(n Money) bool           { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                 { return m.value.IsZero() }
func (m Money) IsPositive() bool             { return m.value.IsPositive() }
func (m Money) IsNegative() bool             { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool        { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool     { return m.value.GreaterThan(n.value) }
func (m Money) Add(n Money) Money            { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money            { return Money{value: m.value.Sub(n.value)} }
func (m Money) Neg() Money                   { return Money{value: m.value.Neg()} }
func (m Money) Mul(q Quantity) Money         { return Money{value: m.value.Mul(q.value)} }
func (m Money) Div(q Quantity) Money         { return Money{value: m.value.Div(q.value)} }

// Abs returns the absolute value.
func (m Money) Abs() Money { return Money{value: m.value.Abs()} }

// MulFactor scales the amount by an exact decimal factor.
func (m Money) MulFactor(f decimal.Decimal) Money { return Money{value: m.value.Mul(f)} }

// String returns the plain decimal representation, without currency adornment.
func (m Money) String() string { return m.value.String() }

// Display formats the amount with the symbol and grouping rules of the given
// ISO currency code.
func (m Money) Display(code string) string {
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, code).Currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// MarshalJSON implements the json.Marshaler interface for Money.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Money.
func (m *Money) UnmarshalJSON(decimalBytes []byte) error {
	return m.value.UnmarshalJSON(decimalBytes)
}
