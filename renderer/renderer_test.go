package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/treasury"
)

// newTestBook builds the demonstration book: Alice deposited 1000 with the
// entry fee, Bob borrowed 98 from her.
func newTestBook(t *testing.T) *treasury.Book {
	t.Helper()
	book := treasury.NewBook()
	if _, err := book.NewUser(1, "Alice"); err != nil {
		t.Fatal(err)
	}
	if _, err := book.NewUser(2, "Bob"); err != nil {
		t.Fatal(err)
	}
	if err := book.DepositWithFee(1, 1000, true); err != nil {
		t.Fatal(err)
	}
	if _, err := book.Borrow(2, 1, 98); err != nil {
		t.Fatal(err)
	}
	return book
}

func TestCash(t *testing.T) {
	// Ledger units are the currency's minor unit.
	if got := (Cash{Amount: 980, Currency: "USD"}).String(); got != "$9.80" {
		t.Errorf("Cash(980).String() = %q, want %q", got, "$9.80")
	}
	if got := (Cash{Amount: 0, Currency: "USD"}).OrDash(); got != "-" {
		t.Errorf("Cash(0).OrDash() = %q, want %q", got, "-")
	}
	if got := (Cash{Amount: 20, Currency: "USD"}).OrDash(); got != "$0.20" {
		t.Errorf("Cash(20).OrDash() = %q, want %q", got, "$0.20")
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(2).String(); got != "2.00%" {
		t.Errorf("Percent(2).String() = %q, want %q", got, "2.00%")
	}
}

func TestNewStatement(t *testing.T) {
	s := NewStatement("After borrowing", "USD", newTestBook(t))

	if len(s.Users) != 2 {
		t.Fatalf("statement has %d users, want 2", len(s.Users))
	}
	if got := s.Users[0].Deposited.String(); got != "$8.82" {
		t.Errorf("Alice deposited = %q, want %q", got, "$8.82")
	}
	if !s.Users[0].Borrowable {
		t.Error("Alice should be borrowable")
	}
	if got := s.Treasury.SumDeposited.String(); got != "$9.80" {
		t.Errorf("treasury sum deposited = %q, want %q", got, "$9.80")
	}

	if len(s.Journal) != 2 {
		t.Fatalf("statement has %d journal rows, want 2", len(s.Journal))
	}
	borrow := s.Journal[1]
	if borrow.Op != treasury.OpBorrow || borrow.User != "2 Bob" || borrow.From != "1 Alice" {
		t.Errorf("borrow row = %+v, want Bob borrowing from Alice", borrow)
	}
}

func TestStatementMarkdown(t *testing.T) {
	s := NewStatement("After borrowing", "USD", newTestBook(t))
	md := StatementMarkdown(s)

	for _, want := range []string{
		"# After borrowing",
		"## Accounts",
		"| 1 | Alice | $8.82 | $0.00 | yes |",
		"| 2 | Bob | $0.98 | $0.00 | no |",
		"## Treasury",
		"| $9.80 | $0.00 |",
		"## Journal",
		"| 1 | deposit | 1 Alice |  | $10.00 | $0.20 | $9.80 |",
		"| 2 | borrow | 2 Bob | 1 Alice | $0.98 | - | $0.98 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("statement markdown is missing %q in:\n%s", want, md)
		}
	}
}

func TestStatementMarkdown_EmptyJournal(t *testing.T) {
	book := treasury.NewBook()
	s := NewStatement("Ledger Statement", "EUR", book)
	md := StatementMarkdown(s)

	if !strings.Contains(md, "_No operations recorded._") {
		t.Errorf("empty journal placeholder missing in:\n%s", md)
	}
}
