package treasury

import (
	"math"

	"github.com/shopspring/decimal"
)

// Amount is an integer number of currency units.
//
// Amounts handled by this package are never negative: operations reject a
// negative input with ErrNegativeAmount, and every balance mutation is
// overflow-checked so stored totals stay within [0, MaxAmount].
type Amount int64

// MaxAmount is the largest representable amount.
const MaxAmount Amount = math.MaxInt64

var maxAmountDec = decimal.NewFromInt(int64(MaxAmount))

func (a Amount) dec() decimal.Decimal { return decimal.NewFromInt(int64(a)) }

// checkAmount rejects negative operation inputs.
func checkAmount(a Amount) error {
	if a < 0 {
		return ErrNegativeAmount
	}
	return nil
}

// addAmount returns a+b or an OverflowError named after op.
// Both operands must be non-negative, which every caller guarantees.
func addAmount(a, b Amount, op string) (Amount, error) {
	s := a + b
	if s < a {
		return 0, &OverflowError{Op: op}
	}
	return s, nil
}

// subAmount returns a-b or an OverflowError named after op when the result
// would be negative. A negative result on a balance field means the caller's
// books are out of sync, so it is reported the same way as a wrap.
func subAmount(a, b Amount, op string) (Amount, error) {
	if b > a {
		return 0, &OverflowError{Op: op}
	}
	return a - b, nil
}

// mulDiv computes a*num/den exactly, truncating toward zero. The product is
// carried by a decimal so it cannot wrap, whatever the operands. The quotient
// is only out of the Amount range when num > den; in that case an
// OverflowError named after op is returned.
func mulDiv(a Amount, num, den int64, op string) (Amount, error) {
	q, _ := a.dec().Mul(decimal.NewFromInt(num)).QuoRem(decimal.NewFromInt(den), 0)
	if q.GreaterThan(maxAmountDec) {
		return 0, &OverflowError{Op: op}
	}
	return Amount(q.IntPart()), nil
}
