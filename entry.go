package treasury

// OpType is a typed string identifying a journal operation.
type OpType string

// Operation types recorded in a Book's journal.
const (
	OpDeposit  OpType = "deposit"
	OpWithdraw OpType = "withdraw"
	OpBorrow   OpType = "borrow"
	OpInterest OpType = "interest"
)

// Entry records one successful operation in a Book's journal.
type Entry struct {
	Op       OpType
	UserID   int64  // account whose balance the operation targeted
	LenderID int64  // account the funds came from, borrow only
	Gross    Amount // amount requested by the caller
	Fee      Amount // fee burned, zero on fee-less operations
	Net      Amount // amount actually moved on the user's balance
}

// MarshalJSON implements the json.Marshaler interface for Entry, keeping a
// stable field order.
func (e Entry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("op", e.Op)
	w.Append("user", e.UserID)
	if e.Op == OpBorrow {
		w.Append("lender", e.LenderID)
	}
	w.Append("gross", e.Gross)
	w.Optional("fee", e.Fee)
	w.Append("net", e.Net)
	return w.MarshalJSON()
}
