package ledger

import (
	"context"

	"github.com/jask/fincontrol/internal/domain"
)

// AddRecurring stores a new recurring expense. It starts active and not yet
// generated for any month.
func (l *Ledger) AddRecurring(ctx context.Context, r domain.RecurringExpense) domain.RecurringExpense {
	l.mu.Lock()
	defer l.mu.Unlock()
	r.ID = l.newID()
	r.Active = true
	r.LastGeneratedMonth = ""
	l.state.RecurringExpenses = append(l.state.RecurringExpenses, r)
	l.persist("save recurring", r.ID, l.store.SaveRecurring(ctx, l.userID, r))
	return r
}

// UpdateRecurring edits name, amount, category, due day or the active flag.
// The generated-month marker is kept from the stored value.
func (l *Ledger) UpdateRecurring(ctx context.Context, r domain.RecurringExpense) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.state.RecurringExpenses {
		cur := &l.state.RecurringExpenses[i]
		if cur.ID != r.ID {
			continue
		}
		r.LastGeneratedMonth = cur.LastGeneratedMonth
		*cur = r
		l.persist("save recurring", r.ID, l.store.SaveRecurring(ctx, l.userID, r))
		return true
	}
	return false
}

// SetRecurringActive pauses or resumes an expense. Resuming does not
// backfill months skipped while paused.
func (l *Ledger) SetRecurringActive(ctx context.Context, id string, active bool) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.state.RecurringExpenses {
		r := &l.state.RecurringExpenses[i]
		if r.ID == id {
			r.Active = active
			l.persist("save recurring", r.ID, l.store.SaveRecurring(ctx, l.userID, *r))
			return true
		}
	}
	return false
}

// DeleteRecurring removes the expense. Transactions it generated stay as
// history with the link cleared.
func (l *Ledger) DeleteRecurring(ctx context.Context, id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, r := range l.state.RecurringExpenses {
		if r.ID != id {
			continue
		}
		l.unlinkTransactions(ctx,
			func(t domain.Transaction) bool { return domain.SameRef(t.RecurringExpenseID, id) },
			func(t *domain.Transaction) { t.RecurringExpenseID = nil },
		)
		l.state.RecurringExpenses = append(l.state.RecurringExpenses[:i:i], l.state.RecurringExpenses[i+1:]...)
		l.persist("delete recurring", id, l.store.DeleteRecurring(ctx, l.userID, id))
		return true
	}
	return false
}
