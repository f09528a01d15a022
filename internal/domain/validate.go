package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by lookups for a missing entity.
var ErrNotFound = errors.New("not found")

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

func validDay(d int) bool { return d >= 1 && d <= 31 }

// Validate checks the form-level constraints of a transaction. The ledger
// does not call it; callers validate user input before mutating.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.Description) == "" {
		return invalid("description is required")
	}
	if !t.Amount.IsPositive() {
		return invalid("amount must be positive")
	}
	if t.Type != Income && t.Type != Expense {
		return invalid("unknown transaction type %q", t.Type)
	}
	if t.Date.IsZero() {
		return invalid("date is required")
	}
	if t.CategoryID == "" {
		return invalid("category is required")
	}
	return nil
}

func (r RecurringExpense) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return invalid("name is required")
	}
	if !r.Amount.IsPositive() {
		return invalid("amount must be positive")
	}
	if !validDay(r.DueDay) {
		return invalid("due day %d out of range", r.DueDay)
	}
	return nil
}

func (i InstallmentPurchase) Validate() error {
	if strings.TrimSpace(i.Description) == "" {
		return invalid("description is required")
	}
	if i.TotalInstallments < 2 {
		return invalid("at least 2 installments are required")
	}
	if !i.InstallmentAmount.IsPositive() {
		return invalid("installment amount must be positive")
	}
	if !validDay(i.DueDay) {
		return invalid("due day %d out of range", i.DueDay)
	}
	return nil
}

func (g FinancialGoal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return invalid("name is required")
	}
	if !g.TargetAmount.IsPositive() {
		return invalid("target amount must be positive")
	}
	if g.CurrentAmount.IsNegative() {
		return invalid("current amount must not be negative")
	}
	return nil
}

func (c CreditCard) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return invalid("name is required")
	}
	if c.Limit.IsNegative() {
		return invalid("limit must not be negative")
	}
	if !validDay(c.ClosingDay) || !validDay(c.DueDay) {
		return invalid("closing/due day out of range")
	}
	return nil
}

// ValidateReferences checks that a transaction points at entities present
// in the state.
func (s State) ValidateReferences(t Transaction) error {
	if _, ok := s.Category(t.CategoryID); !ok {
		return invalid("unknown category %q", t.CategoryID)
	}
	if t.CardID != nil {
		if _, ok := s.Card(*t.CardID); !ok {
			return invalid("unknown card %q", *t.CardID)
		}
	}
	if t.GoalID != nil {
		if _, ok := s.Goal(*t.GoalID); !ok {
			return invalid("unknown goal %q", *t.GoalID)
		}
	}
	return nil
}

// Validate checks every entity of s and the references of its
// transactions. The first failure is returned, naming the entity.
func (s State) Validate() error {
	for _, c := range s.Cards {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("card %s: %w", c.ID, err)
		}
	}
	for _, g := range s.Goals {
		if err := g.Validate(); err != nil {
			return fmt.Errorf("goal %s: %w", g.ID, err)
		}
	}
	for _, r := range s.RecurringExpenses {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("recurring expense %s: %w", r.ID, err)
		}
	}
	for _, i := range s.Installments {
		if err := i.Validate(); err != nil {
			return fmt.Errorf("installment %s: %w", i.ID, err)
		}
	}
	for _, t := range s.Transactions {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("transaction %s: %w", t.ID, err)
		}
		if err := s.ValidateReferences(t); err != nil {
			return fmt.Errorf("transaction %s: %w", t.ID, err)
		}
	}
	return nil
}
