package treasury

// Fee rates are expressed in basis points (1 bps = 0.01%).
const (
	maxBps = 10_000

	// EntryFeeBps is the fee charged on deposits (2%).
	EntryFeeBps = 200
	// ExitFeeBps is the fee charged on withdrawals (4%).
	ExitFeeBps = 400

	// BorrowLimitPercent caps a borrow at this share of the lender's deposit.
	BorrowLimitPercent = 10
)

// EntryFee returns the fee charged for depositing amount, truncated toward
// zero. The intermediate product amount*EntryFeeBps is computed exactly on a
// widened representation, so the result is floor(amount*200/10000) for every
// representable amount.
func EntryFee(amount Amount) (Amount, error) {
	return fee(amount, EntryFeeBps, "entry fee")
}

// ExitFee returns the fee charged for withdrawing amount, truncated toward
// zero, floor(amount*400/10000).
func ExitFee(amount Amount) (Amount, error) {
	return fee(amount, ExitFeeBps, "exit fee")
}

func fee(amount Amount, bps int64, op string) (Amount, error) {
	if err := checkAmount(amount); err != nil {
		return 0, err
	}
	// bps < maxBps so the quotient always fits; mulDiv cannot overflow here.
	return mulDiv(amount, bps, maxBps, op)
}
