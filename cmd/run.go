package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/treasury"
	"github.com/etnz/treasury/renderer"
	"github.com/google/subcommands"
)

// runCmd holds the flags for the 'run' subcommand.
type runCmd struct {
	quiet bool
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "execute ledger operations read from stdin" }
func (*runCmd) Usage() string {
	return `tsy run [-q] < script

  Executes one ledger operation per line against a fresh book and prints the
  final statement. Blank lines and lines starting with '#' are skipped.

  Operations:
    user <id> <name>
    deposit <id> <amount> [borrowable]
    deposit-fee <id> <amount> [borrowable]
    withdraw <id> <amount>
    withdraw-fee <id> <amount>
    borrow <borrower-id> <lender-id> <amount>
    interest <id>

  Nothing persists across runs: the book lives for this invocation only.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.quiet, "q", false, "Do not echo the result of each operation.")
}

func (c *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := treasury.NewBook()
	if err := runScript(book, os.Stdin, c.echo()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := book.Check(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: ledger invariant violated: %v\n", err)
		return subcommands.ExitFailure
	}
	statement := renderer.NewStatement("Ledger Statement", *defaultCurrency, book)
	printMarkdown(renderer.StatementMarkdown(statement))
	return subcommands.ExitSuccess
}

func (c *runCmd) echo() io.Writer {
	if c.quiet {
		return io.Discard
	}
	return os.Stdout
}

// runScript applies every operation in r to the book, echoing one result
// line per operation to w. It stops at the first failing operation.
func runScript(book *treasury.Book, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		result, err := apply(book, text)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		fmt.Fprintln(w, result)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading script: %w", err)
	}
	return nil
}

// apply parses and executes a single operation, returning a one-line result.
func apply(book *treasury.Book, text string) (string, error) {
	fields := strings.Fields(text)
	op, args := fields[0], fields[1:]

	switch op {
	case "user":
		if len(args) != 2 {
			return "", fmt.Errorf("user: want <id> <name>, got %q", text)
		}
		id, err := parseID(args[0])
		if err != nil {
			return "", err
		}
		u, err := book.NewUser(id, args[1])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("created user %d %s", u.ID, u.Name), nil

	case "deposit", "deposit-fee":
		if len(args) != 2 && len(args) != 3 {
			return "", fmt.Errorf("%s: want <id> <amount> [borrowable], got %q", op, text)
		}
		id, err := parseID(args[0])
		if err != nil {
			return "", err
		}
		amount, err := parseAmount(args[1])
		if err != nil {
			return "", err
		}
		borrowable := len(args) == 3 && args[2] == "borrowable"
		if op == "deposit" {
			err = book.Deposit(id, amount, borrowable)
		} else {
			err = book.DepositWithFee(id, amount, borrowable)
		}
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s %d to user %d", op, amount, id), nil

	case "withdraw", "withdraw-fee":
		if len(args) != 2 {
			return "", fmt.Errorf("%s: want <id> <amount>, got %q", op, text)
		}
		id, err := parseID(args[0])
		if err != nil {
			return "", err
		}
		amount, err := parseAmount(args[1])
		if err != nil {
			return "", err
		}
		var withdrawn treasury.Amount
		if op == "withdraw" {
			withdrawn, err = book.Withdraw(id, amount)
		} else {
			withdrawn, err = book.WithdrawWithFee(id, amount)
		}
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s %d from user %d, lifetime withdrawn %d", op, amount, id, withdrawn), nil

	case "borrow":
		if len(args) != 3 {
			return "", fmt.Errorf("borrow: want <borrower-id> <lender-id> <amount>, got %q", text)
		}
		borrowerID, err := parseID(args[0])
		if err != nil {
			return "", err
		}
		lenderID, err := parseID(args[1])
		if err != nil {
			return "", err
		}
		amount, err := parseAmount(args[2])
		if err != nil {
			return "", err
		}
		borrowed, err := book.Borrow(borrowerID, lenderID, amount)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("user %d borrowed %d from user %d", borrowerID, borrowed, lenderID), nil

	case "interest":
		if len(args) != 1 {
			return "", fmt.Errorf("interest: want <id>, got %q", text)
		}
		id, err := parseID(args[0])
		if err != nil {
			return "", err
		}
		interest, err := book.ApplyInterest(id)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("applied %d interest to user %d", interest, id), nil

	default:
		return "", fmt.Errorf("unknown operation %q", op)
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id %q: %w", s, err)
	}
	return id, nil
}

func parseAmount(s string) (treasury.Amount, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return treasury.Amount(v), nil
}
