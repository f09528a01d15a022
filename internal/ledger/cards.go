package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jask/fincontrol/internal/domain"
)

func (l *Ledger) AddCard(ctx context.Context, c domain.CreditCard) domain.CreditCard {
	l.mu.Lock()
	defer l.mu.Unlock()
	c.ID = l.newID()
	l.state.Cards = append(l.state.Cards, c)
	l.persist("save card", c.ID, l.store.SaveCard(ctx, l.userID, c))
	return c
}

func (l *Ledger) UpdateCard(ctx context.Context, c domain.CreditCard) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.state.Cards {
		if l.state.Cards[i].ID == c.ID {
			l.state.Cards[i] = c
			l.persist("save card", c.ID, l.store.SaveCard(ctx, l.userID, c))
			return true
		}
	}
	return false
}

// DeleteCard removes a card unconditionally. Transactions and installments
// charged to it lose the reference instead of being deleted.
func (l *Ledger) DeleteCard(ctx context.Context, id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	idx := -1
	for i, c := range l.state.Cards {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	l.unlinkTransactions(ctx,
		func(t domain.Transaction) bool { return domain.SameRef(t.CardID, id) },
		func(t *domain.Transaction) { t.CardID = nil },
	)
	for i := range l.state.Installments {
		inst := &l.state.Installments[i]
		if domain.SameRef(inst.CardID, id) {
			inst.CardID = nil
			l.persist("save installment", inst.ID, l.store.SaveInstallment(ctx, l.userID, *inst))
		}
	}
	l.state.Cards = append(l.state.Cards[:idx:idx], l.state.Cards[idx+1:]...)
	l.persist("delete card", id, l.store.DeleteCard(ctx, l.userID, id))
	return true
}

// CardUsage sums every expense charged to the card.
func (l *Ledger) CardUsage(cardID string) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cardUsage(cardID)
}

func (l *Ledger) cardUsage(cardID string) decimal.Decimal {
	total := decimal.Zero
	for _, t := range l.state.Transactions {
		if t.Type == domain.Expense && domain.SameRef(t.CardID, cardID) {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// CardInvoice is the manually entered invoice value when present, otherwise
// the computed usage.
func (l *Ledger) CardInvoice(cardID string) (decimal.Decimal, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.state.Card(cardID)
	if !ok {
		return decimal.Zero, false
	}
	if c.ManualInvoiceValue != nil {
		return *c.ManualInvoiceValue, true
	}
	return l.cardUsage(cardID), true
}

// CardAvailable is the limit minus usage; it may go negative.
func (l *Ledger) CardAvailable(cardID string) (decimal.Decimal, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.state.Card(cardID)
	if !ok {
		return decimal.Zero, false
	}
	return c.Limit.Sub(l.cardUsage(cardID)), true
}
