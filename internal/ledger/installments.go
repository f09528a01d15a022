package ledger

import (
	"context"

	"github.com/jask/fincontrol/internal/domain"
	"github.com/jask/fincontrol/internal/installment"
)

// AddInstallment stores a new purchase as active with its total derived
// from the installment count and amount.
func (l *Ledger) AddInstallment(ctx context.Context, i domain.InstallmentPurchase) domain.InstallmentPurchase {
	l.mu.Lock()
	defer l.mu.Unlock()
	i.ID = l.newID()
	i.Status = domain.InstallmentActive
	i.LastGeneratedMonth = ""
	i.TotalAmount = installment.Total(i)
	l.state.Installments = append(l.state.Installments, i)
	l.persist("save installment", i.ID, l.store.SaveInstallment(ctx, l.userID, i))
	return i
}

// UpdateInstallment edits an existing purchase. Already generated
// transactions keep their description and amount.
func (l *Ledger) UpdateInstallment(ctx context.Context, i domain.InstallmentPurchase) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	cur, ok := l.state.Installment(i.ID)
	if !ok {
		return false
	}
	l.saveInstallment(ctx, installment.Edit(cur, i))
	return true
}

// CancelInstallment stops future generation. Paid transactions remain.
func (l *Ledger) CancelInstallment(ctx context.Context, id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	cur, ok := l.state.Installment(id)
	if !ok {
		return false
	}
	l.saveInstallment(ctx, installment.Cancel(cur))
	return true
}

// DeleteInstallment removes the purchase. With deleteTransactions the linked
// transactions are deleted too; otherwise they are kept unlinked.
func (l *Ledger) DeleteInstallment(ctx context.Context, id string, deleteTransactions bool) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	idx := -1
	for i, inst := range l.state.Installments {
		if inst.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	if deleteTransactions {
		for _, t := range installment.Linked(id, l.state.Transactions) {
			l.deleteTransaction(ctx, t.ID)
		}
	} else {
		l.unlinkTransactions(ctx,
			func(t domain.Transaction) bool { return domain.SameRef(t.InstallmentID, id) },
			func(t *domain.Transaction) { t.InstallmentID = nil },
		)
	}
	l.state.Installments = append(l.state.Installments[:idx:idx], l.state.Installments[idx+1:]...)
	l.persist("delete installment", id, l.store.DeleteInstallment(ctx, l.userID, id))
	return true
}

// PayNextInstallment records the next installment dated today, regardless
// of the due day. It is a no-op once every installment is paid.
func (l *Ledger) PayNextInstallment(ctx context.Context, id string) (domain.Transaction, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	cur, ok := l.state.Installment(id)
	if !ok {
		return domain.Transaction{}, false
	}
	tx, next, ok := installment.PayNext(cur, l.state.Transactions, l.now())
	if !ok {
		return domain.Transaction{}, false
	}
	tx = l.addTransaction(ctx, tx)
	l.saveInstallment(ctx, next)
	return tx, true
}

// UndoLastInstallment deletes the most recent payment and reopens the
// purchase, also when it was completed.
func (l *Ledger) UndoLastInstallment(ctx context.Context, id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	cur, ok := l.state.Installment(id)
	if !ok {
		return false
	}
	last, next, ok := installment.UndoLast(cur, l.state.Transactions)
	if !ok {
		return false
	}
	l.deleteTransaction(ctx, last.ID)
	l.saveInstallment(ctx, next)
	return true
}

// InstallmentProgress derives paid progress from linked transactions.
func (l *Ledger) InstallmentProgress(id string) (installment.Progress, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	cur, ok := l.state.Installment(id)
	if !ok {
		return installment.Progress{}, false
	}
	return installment.ProgressOf(cur, l.state.Transactions), true
}

func (l *Ledger) saveInstallment(ctx context.Context, inst domain.InstallmentPurchase) {
	for i := range l.state.Installments {
		if l.state.Installments[i].ID == inst.ID {
			l.state.Installments[i] = inst
			l.persist("save installment", inst.ID, l.store.SaveInstallment(ctx, l.userID, inst))
			return
		}
	}
}
