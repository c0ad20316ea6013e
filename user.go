package treasury

import "fmt"

// User holds one account's deposited and withdrawn totals together with its
// borrowing eligibility.
//
// The zero value is a valid empty account. Uniqueness of IDs is not enforced
// here; use a Book to get it checked.
type User struct {
	ID   int64
	Name string

	// TotalDeposited is the current net deposit balance, after withdrawals,
	// borrows and interest.
	TotalDeposited Amount
	// TotalWithdrawn is the cumulative lifetime withdrawal counter. It never
	// decreases.
	TotalWithdrawn Amount

	// HasDeposited is set on the first deposit and never reset.
	HasDeposited bool
	// Borrowable gates whether other users may borrow from this account.
	// It is overwritten on every deposit.
	Borrowable bool
}

// Deposit credits amount to the user's balance and to the treasury, marks the
// user as having deposited, and overwrites the borrowable flag.
//
// Both additions are checked before either entity is mutated, so a failed
// deposit leaves user and treasury untouched.
func (u *User) Deposit(amount Amount, t *Treasury, borrowable bool) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	deposited, err := addAmount(u.TotalDeposited, amount, "deposit")
	if err != nil {
		return err
	}
	sum, err := addAmount(t.SumDeposited, amount, "treasury deposit")
	if err != nil {
		return err
	}
	u.TotalDeposited = deposited
	u.HasDeposited = true
	u.Borrowable = borrowable
	t.SumDeposited = sum
	return nil
}

// Withdraw debits amount from the user's balance and the treasury, and
// credits both withdrawal counters. It returns the user's updated
// TotalWithdrawn.
//
// The withdrawal is rejected with ErrInsufficientBalance unless
// TotalWithdrawn+amount <= TotalDeposited.
func (u *User) Withdraw(amount Amount, t *Treasury) (Amount, error) {
	if err := checkAmount(amount); err != nil {
		return 0, err
	}
	withdrawn, err := addAmount(u.TotalWithdrawn, amount, "withdraw")
	if err != nil {
		return 0, err
	}
	if withdrawn > u.TotalDeposited {
		return 0, ErrInsufficientBalance
	}
	sumWithdrawn, err := addAmount(t.SumWithdrawn, amount, "treasury withdrawal")
	if err != nil {
		return 0, err
	}
	// The treasury mirrors the sum of all user balances, so this only fails
	// when the caller's books are out of sync.
	sumDeposited, err := subAmount(t.SumDeposited, amount, "treasury withdrawal")
	if err != nil {
		return 0, err
	}
	u.TotalDeposited -= amount // amount <= withdrawn <= TotalDeposited
	u.TotalWithdrawn = withdrawn
	t.SumDeposited = sumDeposited
	t.SumWithdrawn = sumWithdrawn
	return withdrawn, nil
}

// DepositWithFee deposits amount minus the entry fee. The fee is burned: it
// is not credited to the treasury or anywhere else.
func (u *User) DepositWithFee(amount Amount, t *Treasury, borrowable bool) error {
	fee, err := EntryFee(amount)
	if err != nil {
		return err
	}
	// fee is at most 2% of amount, but keep the subtraction guarded.
	net, err := subAmount(amount, fee, "deposit fee")
	if err != nil {
		return err
	}
	return u.Deposit(net, t, borrowable)
}

// WithdrawWithFee withdraws the requested amount plus the exit fee, debiting
// amount+fee in a single withdrawal. The fee is burned. It returns the
// user's updated TotalWithdrawn.
func (u *User) WithdrawWithFee(amount Amount, t *Treasury) (Amount, error) {
	fee, err := ExitFee(amount)
	if err != nil {
		return 0, err
	}
	total, err := addAmount(amount, fee, "withdrawal fee")
	if err != nil {
		return 0, err
	}
	return u.Withdraw(total, t)
}

// Borrow transfers amount from the lender's deposited balance to u's.
// Borrowing moves recorded deposits between two users and never touches the
// treasury.
//
// The transfer is rejected when the lender has not enabled borrowing, when
// amount exceeds BorrowLimitPercent of the lender's deposit, or when the
// lender's balance cannot cover it. It returns the amount borrowed.
func (u *User) Borrow(lender *User, amount Amount) (Amount, error) {
	if err := checkAmount(amount); err != nil {
		return 0, err
	}
	if u == lender {
		return 0, ErrSelfBorrow
	}
	if !lender.Borrowable {
		return 0, ErrBorrowingDisabled
	}
	// The product is widened before the division, so the limit is exact even
	// for balances close to MaxAmount.
	max, err := mulDiv(lender.TotalDeposited, BorrowLimitPercent, 100, "borrow limit")
	if err != nil {
		return 0, err
	}
	if amount > max {
		return 0, &LimitExceededError{Requested: amount, Max: max}
	}
	if lender.TotalDeposited < amount {
		// Unreachable while the limit is a share of the lender's balance,
		// kept as the last line of defense on the lender's funds.
		return 0, fmt.Errorf("lender: %w", ErrInsufficientBalance)
	}
	deposited, err := addAmount(u.TotalDeposited, amount, "borrow")
	if err != nil {
		return 0, err
	}
	lender.TotalDeposited -= amount
	u.TotalDeposited = deposited
	return amount, nil
}
