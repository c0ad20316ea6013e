// Package renderer renders ledger state as markdown reports.
package renderer

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/etnz/treasury"
)

// Cash formats a ledger amount in a display currency. Ledger units are
// treated as the currency's minor unit (cents for USD or EUR).
type Cash struct {
	Amount   treasury.Amount
	Currency string
}

// String returns the formatted money value, like "$9.80".
func (c Cash) String() string {
	return money.New(int64(c.Amount), c.Currency).Display()
}

// OrDash returns the formatted value, or "-" when the amount is zero. Tables
// read better without a column of zeros.
func (c Cash) OrDash() string {
	if c.Amount == 0 {
		return "-"
	}
	return c.String()
}

// Percent renders a rate for display.
type Percent float64

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// Statement represents the full state of a ledger book for rendering:
// accounts, treasury sums, and the journal of recorded operations.
type Statement struct {
	Title    string
	Currency string
	Users    []StatementUser
	Treasury StatementTreasury
	Journal  []StatementEntry
}

// StatementUser is one account row.
type StatementUser struct {
	ID           int64
	Name         string
	Deposited    Cash
	Withdrawn    Cash
	HasDeposited bool
	Borrowable   bool
}

// StatementTreasury holds the treasury aggregate row.
type StatementTreasury struct {
	SumDeposited Cash
	SumWithdrawn Cash
}

// StatementEntry is one journal row.
type StatementEntry struct {
	Seq   int
	Op    treasury.OpType
	User  string // account label, "1 Alice"
	From  string // lender label on borrow entries, empty otherwise
	Gross Cash
	Fee   Cash
	Net   Cash
}

// NewStatement captures the state of a book into a Statement ready for
// rendering, formatting amounts in the given display currency.
func NewStatement(title, currency string, b *treasury.Book) *Statement {
	s := &Statement{
		Title:    title,
		Currency: currency,
		Users:    make([]StatementUser, 0),
		Journal:  make([]StatementEntry, 0),
	}

	cash := func(a treasury.Amount) Cash { return Cash{Amount: a, Currency: currency} }
	label := func(id int64) string {
		if u := b.User(id); u != nil && u.Name != "" {
			return fmt.Sprintf("%d %s", id, u.Name)
		}
		return fmt.Sprintf("%d", id)
	}

	for u := range b.Users() {
		s.Users = append(s.Users, StatementUser{
			ID:           u.ID,
			Name:         u.Name,
			Deposited:    cash(u.TotalDeposited),
			Withdrawn:    cash(u.TotalWithdrawn),
			HasDeposited: u.HasDeposited,
			Borrowable:   u.Borrowable,
		})
	}

	t := b.Treasury()
	s.Treasury = StatementTreasury{
		SumDeposited: cash(t.SumDeposited),
		SumWithdrawn: cash(t.SumWithdrawn),
	}

	for i, e := range b.Entries() {
		row := StatementEntry{
			Seq:   i + 1,
			Op:    e.Op,
			User:  label(e.UserID),
			Gross: cash(e.Gross),
			Fee:   cash(e.Fee),
			Net:   cash(e.Net),
		}
		if e.Op == treasury.OpBorrow {
			row.From = label(e.LenderID)
		}
		s.Journal = append(s.Journal, row)
	}
	return s
}
