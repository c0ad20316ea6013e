package treasury

// JSON export of the ledger state. This is a human-inspectable dump with a
// stable field order, not a persistence format: a Book cannot be rebuilt from
// it.

// MarshalJSON implements the json.Marshaler interface for User.
func (u *User) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", u.ID)
	w.Optional("name", u.Name)
	w.Append("deposited", u.TotalDeposited)
	w.Append("withdrawn", u.TotalWithdrawn)
	w.Append("hasDeposited", u.HasDeposited)
	w.Append("borrowable", u.Borrowable)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for Treasury.
func (t Treasury) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("sumDeposited", t.SumDeposited)
	w.Append("sumWithdrawn", t.SumWithdrawn)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for Book. Users appear
// in ascending id order and journal entries in recording order.
func (b *Book) MarshalJSON() ([]byte, error) {
	users := make([]*User, 0, len(b.users))
	for u := range b.Users() {
		users = append(users, u)
	}
	entries := make([]Entry, 0, len(b.journal))
	for _, e := range b.Entries() {
		entries = append(entries, e)
	}
	var w jsonObjectWriter
	w.Append("users", users)
	w.Append("treasury", b.treasury)
	w.Append("journal", entries)
	return w.MarshalJSON()
}
