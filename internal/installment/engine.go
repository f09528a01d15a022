// Package installment drives the lifecycle of installment purchases. Paid
// progress is always derived from linked transactions; the stored status is
// a cache that every function here keeps consistent.
package installment

import (
	"fmt"
	"sort"
	"time"

	"github.com/jask/fincontrol/internal/domain"
)

// Result is what a reconciliation pass wants applied. Updates carry the full
// installment after the pass; Create holds transactions without ids.
type Result struct {
	Create  []domain.Transaction
	Updates []domain.InstallmentPurchase
}

func (r Result) Empty() bool { return len(r.Create) == 0 && len(r.Updates) == 0 }

// Linked returns the transactions belonging to inst, in slice order.
func Linked(instID string, txs []domain.Transaction) []domain.Transaction {
	var out []domain.Transaction
	for _, t := range txs {
		if domain.SameRef(t.InstallmentID, instID) {
			out = append(out, t)
		}
	}
	return out
}

// PaidCount is the number of transactions linked to the installment.
func PaidCount(instID string, txs []domain.Transaction) int {
	n := 0
	for _, t := range txs {
		if domain.SameRef(t.InstallmentID, instID) {
			n++
		}
	}
	return n
}

// Reconcile runs the automatic pass over all installments.
func Reconcile(installments []domain.InstallmentPurchase, txs []domain.Transaction, today time.Time) Result {
	month := domain.MonthKey(today)
	var res Result
	for _, inst := range installments {
		if inst.Status == domain.InstallmentCancelled {
			continue
		}
		paid := PaidCount(inst.ID, txs)
		if paid >= inst.TotalInstallments && inst.Status != domain.InstallmentCompleted {
			inst.Status = domain.InstallmentCompleted
			res.Updates = append(res.Updates, inst)
			continue
		}
		if inst.Status == domain.InstallmentCompleted {
			continue
		}
		if inst.LastGeneratedMonth == month || today.Day() < inst.DueDay || paid >= inst.TotalInstallments {
			continue
		}
		tx, next := advance(inst, paid, today)
		res.Create = append(res.Create, tx)
		res.Updates = append(res.Updates, next)
	}
	return res
}

// PayNext records the next installment ahead of its due date. ok is false
// when every installment is already paid.
func PayNext(inst domain.InstallmentPurchase, txs []domain.Transaction, today time.Time) (tx domain.Transaction, next domain.InstallmentPurchase, ok bool) {
	paid := PaidCount(inst.ID, txs)
	if paid >= inst.TotalInstallments {
		return domain.Transaction{}, inst, false
	}
	tx, next = advance(inst, paid, today)
	return tx, next, true
}

// UndoLast picks the most recently dated linked transaction for removal and
// returns the installment forced back to active. Equal dates keep their
// slice order, so the earliest-listed transaction wins a tie.
func UndoLast(inst domain.InstallmentPurchase, txs []domain.Transaction) (last domain.Transaction, next domain.InstallmentPurchase, ok bool) {
	linked := Linked(inst.ID, txs)
	if len(linked) == 0 {
		return domain.Transaction{}, inst, false
	}
	sort.SliceStable(linked, func(i, j int) bool {
		return linked[i].Date.After(linked[j].Date)
	})
	inst.Status = domain.InstallmentActive
	return linked[0], inst, true
}

// Cancel freezes an installment; linked transactions are left alone.
func Cancel(inst domain.InstallmentPurchase) domain.InstallmentPurchase {
	inst.Status = domain.InstallmentCancelled
	return inst
}

// Edit applies user changes to the schedule fields. Lifecycle fields are
// kept from the current value and the total is recomputed.
func Edit(current, changes domain.InstallmentPurchase) domain.InstallmentPurchase {
	out := changes
	out.ID = current.ID
	if out.Status == "" {
		out.Status = current.Status
	}
	if out.LastGeneratedMonth == "" {
		out.LastGeneratedMonth = current.LastGeneratedMonth
	}
	out.TotalAmount = Total(out)
	return out
}

// Describe renders the description of installment n.
func Describe(inst domain.InstallmentPurchase, n int) string {
	return fmt.Sprintf("%s (%d/%d)", inst.Description, n, inst.TotalInstallments)
}

func advance(inst domain.InstallmentPurchase, paid int, today time.Time) (domain.Transaction, domain.InstallmentPurchase) {
	n := paid + 1
	id := inst.ID
	tx := domain.Transaction{
		Description:   Describe(inst, n),
		Amount:        inst.InstallmentAmount,
		Type:          domain.Expense,
		Date:          domain.DateOf(today),
		CategoryID:    inst.CategoryID,
		CardID:        copyRef(inst.CardID),
		InstallmentID: &id,
	}
	inst.LastGeneratedMonth = domain.MonthKey(today)
	if n >= inst.TotalInstallments {
		inst.Status = domain.InstallmentCompleted
	} else {
		inst.Status = domain.InstallmentActive
	}
	return tx, inst
}

func copyRef(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
