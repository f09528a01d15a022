package ledger

import (
	"context"

	"github.com/jask/fincontrol/internal/domain"
)

// Transactions returns the transactions matching f, newest first.
func (l *Ledger) Transactions(f domain.TransactionFilter) []domain.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	return f.Apply(l.state.Transactions)
}

// AddTransaction records t under a fresh id. Income linked to a goal
// increases the goal's current amount.
func (l *Ledger) AddTransaction(ctx context.Context, t domain.Transaction) domain.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.addTransaction(ctx, t)
}

func (l *Ledger) addTransaction(ctx context.Context, t domain.Transaction) domain.Transaction {
	t.ID = l.newID()
	l.state.Transactions = append([]domain.Transaction{t}, l.state.Transactions...)
	l.persist("save transaction", t.ID, l.store.SaveTransaction(ctx, l.userID, t))

	if t.GoalID != nil && t.Type == domain.Income {
		l.adjustGoal(ctx, *t.GoalID, t, true)
	}
	return t
}

// UpdateTransaction replaces a transaction. Linked goals are not adjusted
// for amount or link changes; only add and delete move goal balances.
func (l *Ledger) UpdateTransaction(ctx context.Context, t domain.Transaction) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.state.Transactions {
		if l.state.Transactions[i].ID == t.ID {
			l.state.Transactions[i] = t
			l.persist("save transaction", t.ID, l.store.SaveTransaction(ctx, l.userID, t))
			return true
		}
	}
	return false
}

// DeleteTransaction removes a transaction, reversing its goal contribution.
func (l *Ledger) DeleteTransaction(ctx context.Context, id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.deleteTransaction(ctx, id)
}

func (l *Ledger) deleteTransaction(ctx context.Context, id string) bool {
	idx := -1
	for i, t := range l.state.Transactions {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	t := l.state.Transactions[idx]
	if t.GoalID != nil && t.Type == domain.Income {
		l.adjustGoal(ctx, *t.GoalID, t, false)
	}
	l.state.Transactions = append(l.state.Transactions[:idx:idx], l.state.Transactions[idx+1:]...)
	l.persist("delete transaction", id, l.store.DeleteTransaction(ctx, l.userID, id))
	return true
}

func (l *Ledger) adjustGoal(ctx context.Context, goalID string, t domain.Transaction, add bool) {
	for i := range l.state.Goals {
		g := &l.state.Goals[i]
		if g.ID != goalID {
			continue
		}
		if add {
			g.CurrentAmount = g.CurrentAmount.Add(t.Amount)
		} else {
			g.CurrentAmount = g.CurrentAmount.Sub(t.Amount)
		}
		l.persist("save goal", g.ID, l.store.SaveGoal(ctx, l.userID, *g))
		return
	}
}

// unlinkTransactions clears a reference on every matching transaction and
// persists the changed rows.
func (l *Ledger) unlinkTransactions(ctx context.Context, match func(domain.Transaction) bool, clear func(*domain.Transaction)) int {
	n := 0
	for i := range l.state.Transactions {
		t := &l.state.Transactions[i]
		if !match(*t) {
			continue
		}
		clear(t)
		l.persist("save transaction", t.ID, l.store.SaveTransaction(ctx, l.userID, *t))
		n++
	}
	return n
}
