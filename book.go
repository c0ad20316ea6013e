package treasury

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Book owns a collection of users addressed by identifier together with one
// treasury, and records every successful operation in an append-only
// journal.
//
// Addressing users by id keeps a single mutable owner for all entries: a
// borrow resolves both parties inside one scoped call instead of juggling two
// live references that could alias the same account.
type Book struct {
	users    map[int64]*User
	treasury Treasury
	journal  []Entry
}

// NewBook creates an empty book.
func NewBook() *Book {
	return &Book{users: make(map[int64]*User)}
}

// NewUser creates a user with a zero balance in this book. The id must not be
// taken.
func (b *Book) NewUser(id int64, name string) (*User, error) {
	if _, ok := b.users[id]; ok {
		return nil, fmt.Errorf("user %d: %w", id, ErrDuplicateUser)
	}
	u := &User{ID: id, Name: name}
	b.users[id] = u
	return u, nil
}

// User returns the user with this id, or nil if unknown.
func (b *Book) User(id int64) *User {
	return b.users[id]
}

func (b *Book) resolve(id int64) (*User, error) {
	u, ok := b.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, ErrUnknownUser)
	}
	return u, nil
}

// Treasury returns a copy of the book's treasury aggregate.
func (b *Book) Treasury() Treasury {
	return b.treasury
}

// Deposit credits amount to the user's balance and the treasury.
func (b *Book) Deposit(id int64, amount Amount, borrowable bool) error {
	u, err := b.resolve(id)
	if err != nil {
		return err
	}
	if err := u.Deposit(amount, &b.treasury, borrowable); err != nil {
		return err
	}
	b.journal = append(b.journal, Entry{Op: OpDeposit, UserID: id, Gross: amount, Net: amount})
	return nil
}

// DepositWithFee deposits amount minus the entry fee, recording the burned
// fee in the journal.
func (b *Book) DepositWithFee(id int64, amount Amount, borrowable bool) error {
	u, err := b.resolve(id)
	if err != nil {
		return err
	}
	fee, err := EntryFee(amount)
	if err != nil {
		return err
	}
	net, err := subAmount(amount, fee, "deposit fee")
	if err != nil {
		return err
	}
	if err := u.Deposit(net, &b.treasury, borrowable); err != nil {
		return err
	}
	b.journal = append(b.journal, Entry{Op: OpDeposit, UserID: id, Gross: amount, Fee: fee, Net: net})
	return nil
}

// Withdraw debits amount from the user's balance and the treasury. It
// returns the user's updated lifetime withdrawal counter.
func (b *Book) Withdraw(id int64, amount Amount) (Amount, error) {
	u, err := b.resolve(id)
	if err != nil {
		return 0, err
	}
	withdrawn, err := u.Withdraw(amount, &b.treasury)
	if err != nil {
		return 0, err
	}
	b.journal = append(b.journal, Entry{Op: OpWithdraw, UserID: id, Gross: amount, Net: amount})
	return withdrawn, nil
}

// WithdrawWithFee withdraws amount plus the exit fee, recording the burned
// fee in the journal.
func (b *Book) WithdrawWithFee(id int64, amount Amount) (Amount, error) {
	u, err := b.resolve(id)
	if err != nil {
		return 0, err
	}
	fee, err := ExitFee(amount)
	if err != nil {
		return 0, err
	}
	total, err := addAmount(amount, fee, "withdrawal fee")
	if err != nil {
		return 0, err
	}
	withdrawn, err := u.Withdraw(total, &b.treasury)
	if err != nil {
		return 0, err
	}
	b.journal = append(b.journal, Entry{Op: OpWithdraw, UserID: id, Gross: amount, Fee: fee, Net: total})
	return withdrawn, nil
}

// Borrow transfers amount from the lender's deposited balance to the
// borrower's. Both parties are resolved by id inside this single call.
func (b *Book) Borrow(borrowerID, lenderID int64, amount Amount) (Amount, error) {
	if borrowerID == lenderID {
		return 0, ErrSelfBorrow
	}
	borrower, err := b.resolve(borrowerID)
	if err != nil {
		return 0, err
	}
	lender, err := b.resolve(lenderID)
	if err != nil {
		return 0, err
	}
	borrowed, err := borrower.Borrow(lender, amount)
	if err != nil {
		return 0, err
	}
	b.journal = append(b.journal, Entry{Op: OpBorrow, UserID: borrowerID, LenderID: lenderID, Gross: amount, Net: borrowed})
	return borrowed, nil
}

// ApplyInterest computes and credits treasury-wide interest to the user. It
// returns the interest applied.
func (b *Book) ApplyInterest(id int64) (Amount, error) {
	u, err := b.resolve(id)
	if err != nil {
		return 0, err
	}
	interest, err := b.treasury.ApplyInterest(u)
	if err != nil {
		return 0, err
	}
	b.journal = append(b.journal, Entry{Op: OpInterest, UserID: id, Gross: interest, Net: interest})
	return interest, nil
}

// Check verifies the cross-entity invariant: the treasury's deposited sum
// equals the sum of all user balances, and no stored total is negative.
func (b *Book) Check() error {
	var sum Amount
	for u := range b.Users() {
		if u.TotalDeposited < 0 || u.TotalWithdrawn < 0 {
			return fmt.Errorf("user %d: negative totals deposited=%d withdrawn=%d", u.ID, u.TotalDeposited, u.TotalWithdrawn)
		}
		s, err := addAmount(sum, u.TotalDeposited, "invariant check")
		if err != nil {
			return err
		}
		sum = s
	}
	if sum != b.treasury.SumDeposited {
		return fmt.Errorf("treasury out of sync: sum of user balances is %d, treasury holds %d", sum, b.treasury.SumDeposited)
	}
	return nil
}

// Users iterates over the book's users in ascending id order.
func (b *Book) Users() iter.Seq[*User] {
	return func(yield func(*User) bool) {
		ids := slices.Collect(maps.Keys(b.users))
		slices.Sort(ids)
		for _, id := range ids {
			if !yield(b.users[id]) {
				return
			}
		}
	}
}

// Entries iterates over the journal in recording order.
func (b *Book) Entries() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for i, e := range b.journal {
			if !yield(i, e) {
				return
			}
		}
	}
}
