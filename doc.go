// Package treasury models a minimal single-process accounting ledger:
// individual user balances, a shared treasury aggregate, and the financial
// operations that move value between them.
//
// The core functionalities include:
//   - Balance Management: fee-adjusted deposits and withdrawals against a
//     per-user account, mirrored into the shared treasury aggregate.
//   - Peer-to-peer Borrowing: a borrower may draw up to 10% of a lender's
//     deposited balance, provided the lender has enabled borrowing. Borrowing
//     transfers recorded deposits between users and never touches the
//     treasury.
//   - Interest Distribution: treasury-wide interest computed from the
//     aggregate deposit and withdrawal sums and applied to a user's balance.
//   - Book Keeping: a Book owns users addressed by identifier together with
//     one treasury, records every successful operation in an append-only
//     journal, and checks the cross-entity invariant that the treasury
//     mirrors the sum of all user balances.
//
// All amounts are integer currency units. Arithmetic that could wrap is
// computed on a widened intermediate and surfaces an OverflowError instead of
// wrapping. State lives in memory for the duration of a single run; there is
// no persistence and no concurrent access: callers own every User, Treasury
// and Book exclusively.
//
// This package serves as the foundational logic for the `tsy` command-line
// tool.
package treasury
