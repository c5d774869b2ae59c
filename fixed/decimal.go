package fixed

import (
	"math/big"

	"github.com/shopspring/decimal"
)

var five = big.NewInt(5)

// Decimal returns the exact decimal value of v. Every binary fraction has a
// finite decimal expansion: r/2^f = r*5^f/10^f.
func (v Value[T, F, B]) Decimal() decimal.Decimal {
	f := fracOf[T, F]()
	n := big.NewInt(int64(v.raw))
	if f > 0 {
		n.Mul(n, new(big.Int).Exp(five, big.NewInt(int64(f)), nil))
	}
	return decimal.NewFromBigInt(n, int32(-f))
}

// String formats v exactly, without trailing zeros.
func (v Value[T, F, B]) String() string {
	return v.Decimal().String()
}
