package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNegativeAmount is returned when a Price is constructed from a negative value.
var ErrNegativeAmount = errors.New("price amount cannot be negative")

// Price is an exact decimal monetary amount. The zero value is a valid
// zero Price. All arithmetic is performed on the decimal representation;
// Float64 exists only for the wire boundary and must not feed back into
// further computation.
type Price struct {
	amount decimal.Decimal
}

// Zero is the additive identity.
var Zero = Price{}

// New creates a Price from a decimal amount.
func New(amount decimal.Decimal) (Price, error) {
	if amount.IsNegative() {
		return Price{}, ErrNegativeAmount
	}
	return Price{amount: amount}, nil
}

// FromFloat creates a Price from a float64, as received on the wire.
func FromFloat(f float64) (Price, error) {
	return New(decimal.NewFromFloat(f))
}

// Parse creates a Price from a decimal string, as stored in the database.
func Parse(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, err
	}
	return New(d)
}

// Add returns the exact sum of two Prices.
func (p Price) Add(other Price) Price {
	return Price{amount: p.amount.Add(other.amount)}
}

// MulInt scales the Price by a quantity.
func (p Price) MulInt(n int64) Price {
	return Price{amount: p.amount.Mul(decimal.NewFromInt(n))}
}

// Equal reports whether two Prices represent the same amount.
func (p Price) Equal(other Price) bool {
	return p.amount.Equal(other.amount)
}

// IsZero reports whether the amount is zero.
func (p Price) IsZero() bool {
	return p.amount.IsZero()
}

// Float64 projects the amount to a float64 for wire transport.
func (p Price) Float64() float64 {
	f, _ := p.amount.Float64()
	return f
}

// String formats the amount as a plain decimal string.
func (p Price) String() string {
	return p.amount.String()
}
