package treasury

import (
	"errors"
	"testing"
)

func TestTreasury_InterestRate(t *testing.T) {
	testCases := []struct {
		name         string
		treasury     Treasury
		deposited    Amount
		wantInterest Amount
		wantErr      error
	}{
		{
			name:     "empty treasury",
			treasury: Treasury{},
			wantErr:  ErrInvalidTreasuryState,
		},
		{
			// The bootstrap condition: deposits alone are not enough,
			// interest needs at least one withdrawal system-wide.
			name:      "no withdrawal yet",
			treasury:  Treasury{SumDeposited: 980},
			deposited: 980,
			wantErr:   ErrInvalidTreasuryState,
		},
		{
			name:     "no deposit",
			treasury: Treasury{SumWithdrawn: 10},
			wantErr:  ErrInvalidTreasuryState,
		},
		{
			name:         "simple rate",
			treasury:     Treasury{SumDeposited: 980, SumWithdrawn: 100},
			deposited:    500,
			wantInterest: 4900,
		},
		{
			name:         "truncates toward zero",
			treasury:     Treasury{SumDeposited: 7, SumWithdrawn: 2},
			deposited:    3,
			wantInterest: 10, // 21/2
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			user := &User{ID: 1, TotalDeposited: tc.deposited}
			got, err := tc.treasury.InterestRate(user)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("InterestRate() error = %v, want %v", err, tc.wantErr)
			}
			if got != tc.wantInterest {
				t.Errorf("InterestRate() = %d, want %d", got, tc.wantInterest)
			}
		})
	}
}

func TestTreasury_InterestRate_Overflow(t *testing.T) {
	// The widened product is exact, but the quotient itself can leave the
	// Amount range.
	treasury := Treasury{SumDeposited: MaxAmount, SumWithdrawn: 1}
	user := &User{ID: 1, TotalDeposited: 2}

	_, err := treasury.InterestRate(user)
	var overflow *OverflowError
	if !errors.As(err, &overflow) {
		t.Fatalf("InterestRate() error = %v, want an OverflowError", err)
	}
}

func TestTreasury_ApplyInterest(t *testing.T) {
	treasury := Treasury{SumDeposited: 100, SumWithdrawn: 10}
	user := &User{ID: 1, TotalDeposited: 90}

	interest, err := treasury.ApplyInterest(user)
	if err != nil {
		t.Fatalf("ApplyInterest() returned unexpected error: %v", err)
	}
	if interest != 900 { // 100*90/10
		t.Errorf("ApplyInterest() = %d, want 900", interest)
	}
	if user.TotalDeposited != 990 {
		t.Errorf("user.TotalDeposited = %d, want 990", user.TotalDeposited)
	}
	if treasury.SumDeposited != 1000 {
		t.Errorf("treasury.SumDeposited = %d, want 1000", treasury.SumDeposited)
	}
}

func TestTreasury_ApplyInterest_InvalidState(t *testing.T) {
	// Applying interest before any withdrawal has occurred must fail,
	// whatever the deposited sum is.
	treasury := Treasury{SumDeposited: 980}
	user := &User{ID: 1, TotalDeposited: 980}

	if _, err := treasury.ApplyInterest(user); !errors.Is(err, ErrInvalidTreasuryState) {
		t.Fatalf("ApplyInterest() error = %v, want ErrInvalidTreasuryState", err)
	}
	if user.TotalDeposited != 980 || treasury.SumDeposited != 980 {
		t.Error("entities mutated by failed interest application")
	}
}

func TestTreasury_ApplyInterest_Overflow(t *testing.T) {
	// The computed interest fits, but crediting it to the user would wrap.
	treasury := Treasury{SumDeposited: 1, SumWithdrawn: 1}
	user := &User{ID: 1, TotalDeposited: MaxAmount}

	_, err := treasury.ApplyInterest(user)
	var overflow *OverflowError
	if !errors.As(err, &overflow) {
		t.Fatalf("ApplyInterest() error = %v, want an OverflowError", err)
	}
	if user.TotalDeposited != MaxAmount || treasury.SumDeposited != 1 {
		t.Error("entities mutated by failed interest application")
	}
}
