package treasury

import (
	"errors"
	"fmt"
)

// The ledger reports failures as a closed set of kinds so that callers can
// branch with errors.Is and errors.As instead of matching message text.
var (
	// ErrInsufficientBalance is returned when a withdrawal exceeds the
	// remaining deposited balance, or a borrow exceeds the lender's funds.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrBorrowingDisabled is returned when the lender has not enabled
	// borrowing.
	ErrBorrowingDisabled = errors.New("lender has not enabled borrowing")

	// ErrInvalidTreasuryState is returned when interest is requested before
	// the treasury has recorded both deposits and withdrawals.
	ErrInvalidTreasuryState = errors.New("invalid treasury state")

	// ErrNegativeAmount is returned when an operation receives a negative
	// amount.
	ErrNegativeAmount = errors.New("negative amount")

	// ErrSelfBorrow is returned when the borrower and the lender are the same
	// user.
	ErrSelfBorrow = errors.New("borrower and lender are the same user")

	// ErrDuplicateUser is returned by a Book when a user id is already taken.
	ErrDuplicateUser = errors.New("duplicate user id")

	// ErrUnknownUser is returned by a Book when no user has the given id.
	ErrUnknownUser = errors.New("unknown user id")
)

// LimitExceededError is returned by Borrow when the requested amount exceeds
// the borrowable share of the lender's deposit.
type LimitExceededError struct {
	Requested Amount // amount the borrower asked for
	Max       Amount // largest amount the lender's balance allows
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("cannot borrow more than %d%% of lender's deposit: requested %d, maximum %d",
		BorrowLimitPercent, e.Requested, e.Max)
}

// OverflowError is returned when an arithmetic step would leave the Amount
// range. Op names the operation that overflowed.
type OverflowError struct {
	Op string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("amount overflow in %s", e.Op)
}
