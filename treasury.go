package treasury

// Treasury aggregates the deposit and withdrawal sums across all users.
//
// SumDeposited mirrors the sum of every user's TotalDeposited: each mutation
// of a user's balance by Deposit, Withdraw or ApplyInterest updates the
// treasury within the same operation. SumWithdrawn is the system-wide
// lifetime withdrawal counter.
type Treasury struct {
	SumDeposited Amount
	SumWithdrawn Amount
}

// InterestRate computes the interest owed to a user from the treasury state:
//
//	interest = SumDeposited * user.TotalDeposited / SumWithdrawn
//
// truncated toward zero, with the product carried on a widened intermediate.
// It returns ErrInvalidTreasuryState until the treasury has recorded both
// deposits and withdrawals: interest cannot be computed before any
// withdrawal has ever occurred.
func (t *Treasury) InterestRate(user *User) (Amount, error) {
	if t.SumDeposited <= 0 || t.SumWithdrawn <= 0 {
		return 0, ErrInvalidTreasuryState
	}
	return mulDiv(t.SumDeposited, int64(user.TotalDeposited), int64(t.SumWithdrawn), "interest")
}

// ApplyInterest computes the user's interest and credits it to both the
// user's balance and the treasury's deposited sum. It returns the interest
// applied.
//
// Both additions are checked before either entity is mutated.
func (t *Treasury) ApplyInterest(user *User) (Amount, error) {
	interest, err := t.InterestRate(user)
	if err != nil {
		return 0, err
	}
	deposited, err := addAmount(user.TotalDeposited, interest, "interest")
	if err != nil {
		return 0, err
	}
	sum, err := addAmount(t.SumDeposited, interest, "treasury interest")
	if err != nil {
		return 0, err
	}
	user.TotalDeposited = deposited
	t.SumDeposited = sum
	return interest, nil
}
