package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/treasury"
	"github.com/etnz/treasury/renderer"
	"github.com/google/subcommands"
)

// feeCmd holds the flags for the 'fee' subcommand.
type feeCmd struct {
	amount int64
}

func (*feeCmd) Name() string     { return "fee" }
func (*feeCmd) Synopsis() string { return "show the entry and exit fee for an amount" }
func (*feeCmd) Usage() string {
	return `tsy fee -amount <amount>

  Computes the entry fee (charged on deposits) and exit fee (charged on
  withdrawals) for the given amount, along with the resulting net amounts.
`
}

func (c *feeCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.amount, "amount", 0, "Amount in currency units.")
}

func (c *feeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount := treasury.Amount(c.amount)
	entry, err := treasury.EntryFee(amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing entry fee: %v\n", err)
		return subcommands.ExitUsageError
	}
	exit, err := treasury.ExitFee(amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing exit fee: %v\n", err)
		return subcommands.ExitUsageError
	}

	cash := func(a treasury.Amount) renderer.Cash {
		return renderer.Cash{Amount: a, Currency: *defaultCurrency}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Fees on %s\n\n", cash(amount))
	fmt.Fprintln(&b, "| Operation | Rate | Fee | Moved on balance |")
	fmt.Fprintln(&b, "|:----------|-----:|----:|-----------------:|")
	fmt.Fprintf(&b, "| deposit | %s | %s | %s |\n",
		renderer.Percent(float64(treasury.EntryFeeBps)/100), cash(entry).OrDash(), cash(amount-entry))
	fmt.Fprintf(&b, "| withdraw | %s | %s | %s |\n",
		renderer.Percent(float64(treasury.ExitFeeBps)/100), cash(exit).OrDash(), cash(amount+exit))
	printMarkdown(b.String())

	return subcommands.ExitSuccess
}
