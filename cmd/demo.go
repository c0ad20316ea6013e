package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/treasury"
	"github.com/etnz/treasury/renderer"
	"github.com/google/subcommands"
)

// demoCmd holds the flags for the 'demo' subcommand.
type demoCmd struct {
	amount   int64
	lender   string
	borrower string
}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "run the demonstration ledger scenario" }
func (*demoCmd) Usage() string {
	return `tsy demo [-amount <amount>]

  Creates two users and an empty treasury, then sequences the three ledger
  operations: a fee-adjusted deposit by the lender, a borrow attempt by the
  borrower, and an interest application. The state of every entity is
  printed after each step.
`
}

func (c *demoCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.amount, "amount", 1000, "Amount deposited by the lender, in currency units.")
	f.StringVar(&c.lender, "lender", "Alice", "Display name of the lending user.")
	f.StringVar(&c.borrower, "borrower", "Bob", "Display name of the borrowing user.")
}

func (c *demoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := treasury.NewBook()
	lender, err := book.NewUser(1, c.lender)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	borrower, err := book.NewUser(2, c.borrower)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// The lender deposits with the entry fee deducted and enables borrowing.
	if err := book.DepositWithFee(lender.ID, treasury.Amount(c.amount), true); err != nil {
		fmt.Fprintf(os.Stderr, "Error depositing %d for %s: %v\n", c.amount, lender.Name, err)
		return subcommands.ExitFailure
	}
	c.printState(fmt.Sprintf("After %s's deposit", lender.Name), book)

	// The borrower attempts to borrow a tenth of the gross deposit.
	request := treasury.Amount(c.amount / 10)
	if borrowed, err := book.Borrow(borrower.ID, lender.ID, request); err != nil {
		fmt.Printf("Borrow failed: %v\n", err)
	} else {
		fmt.Printf("%s borrowed %d from %s.\n", borrower.Name, borrowed, lender.Name)
	}
	c.printState("After borrowing", book)

	// Interest distribution on the lender's balance.
	if interest, err := book.ApplyInterest(lender.ID); err != nil {
		fmt.Printf("Interest application failed: %v\n", err)
	} else {
		fmt.Printf("Applied %d interest to %s's deposit.\n", interest, lender.Name)
	}
	c.printState("Final state", book)

	if err := book.Check(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: ledger invariant violated: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *demoCmd) printState(title string, book *treasury.Book) {
	statement := renderer.NewStatement(title, *defaultCurrency, book)
	printMarkdown(renderer.StatementMarkdown(statement))
}
