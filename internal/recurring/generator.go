// Package recurring decides which fixed monthly bills must be materialized
// as transactions for the current month.
package recurring

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jask/fincontrol/internal/domain"
)

// DescriptionPrefix marks transactions spawned by the generator.
const DescriptionPrefix = "(Fixo) "

// amountTolerance bounds the fingerprint amount comparison.
var amountTolerance = decimal.New(1, -2)

// MonthUpdate records that an expense has been handled for Month.
type MonthUpdate struct {
	ExpenseID string
	Month     string
}

// Result is what a reconciliation pass wants applied. Create holds
// transactions without ids.
type Result struct {
	Create  []domain.Transaction
	Updates []MonthUpdate
}

// Empty reports whether the pass has nothing to apply.
func (r Result) Empty() bool { return len(r.Create) == 0 && len(r.Updates) == 0 }

// Reconcile runs one generator pass. It is pure; running it again over a
// state with the result applied yields an empty result for the same month.
func Reconcile(expenses []domain.RecurringExpense, txs []domain.Transaction, today time.Time) Result {
	month := domain.MonthKey(today)
	var res Result
	for _, exp := range expenses {
		if !exp.Active {
			continue
		}
		if exp.LastGeneratedMonth == month {
			continue
		}
		if _, ok := FindMatch(exp, txs, month); ok {
			res.Updates = append(res.Updates, MonthUpdate{ExpenseID: exp.ID, Month: month})
			continue
		}
		if today.Day() < exp.DueDay {
			continue
		}
		res.Create = append(res.Create, newTransaction(exp, today))
		res.Updates = append(res.Updates, MonthUpdate{ExpenseID: exp.ID, Month: month})
	}
	return res
}

// MatchKind tells which layer matched an existing transaction.
type MatchKind int

const (
	NoMatch MatchKind = iota
	LinkMatch
	FingerprintMatch
)

func (k MatchKind) String() string {
	switch k {
	case LinkMatch:
		return "link"
	case FingerprintMatch:
		return "fingerprint"
	default:
		return "none"
	}
}

// FindMatch looks for a transaction in month already covering exp. The link
// layer runs first over all transactions; the fingerprint layer only runs
// when no linked transaction exists, for rows recorded without the link.
func FindMatch(exp domain.RecurringExpense, txs []domain.Transaction, month string) (MatchKind, bool) {
	// Layer A: link
	for _, t := range txs {
		if domain.InMonth(t.Date, month) && domain.SameRef(t.RecurringExpenseID, exp.ID) {
			return LinkMatch, true
		}
	}
	// Layer B: description + amount fingerprint
	for _, t := range txs {
		if domain.InMonth(t.Date, month) && matchFingerprint(exp, t) {
			return FingerprintMatch, true
		}
	}
	return NoMatch, false
}

func matchFingerprint(exp domain.RecurringExpense, t domain.Transaction) bool {
	if !strings.Contains(t.Description, exp.Name) {
		return false
	}
	return t.Amount.Sub(exp.Amount).Abs().LessThan(amountTolerance)
}

func newTransaction(exp domain.RecurringExpense, today time.Time) domain.Transaction {
	id := exp.ID
	return domain.Transaction{
		Description:        DescriptionPrefix + exp.Name,
		Amount:             exp.Amount,
		Type:               domain.Expense,
		Date:               domain.DateOf(today),
		CategoryID:         exp.CategoryID,
		RecurringExpenseID: &id,
		IsRecurring:        true,
	}
}
