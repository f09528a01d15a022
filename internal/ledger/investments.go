package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jask/fincontrol/internal/domain"
)

func (l *Ledger) AddInvestment(ctx context.Context, i domain.Investment) domain.Investment {
	l.mu.Lock()
	defer l.mu.Unlock()
	i.ID = l.newID()
	l.state.Investments = append(l.state.Investments, i)
	l.persist("save investment", i.ID, l.store.SaveInvestment(ctx, l.userID, i))
	return i
}

// UpdateInvestment records a new market value or other edits.
func (l *Ledger) UpdateInvestment(ctx context.Context, i domain.Investment) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for k := range l.state.Investments {
		if l.state.Investments[k].ID == i.ID {
			l.state.Investments[k] = i
			l.persist("save investment", i.ID, l.store.SaveInvestment(ctx, l.userID, i))
			return true
		}
	}
	return false
}

func (l *Ledger) DeleteInvestment(ctx context.Context, id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for k, i := range l.state.Investments {
		if i.ID == id {
			l.state.Investments = append(l.state.Investments[:k:k], l.state.Investments[k+1:]...)
			l.persist("delete investment", id, l.store.DeleteInvestment(ctx, l.userID, id))
			return true
		}
	}
	return false
}

// Portfolio totals the investments.
type Portfolio struct {
	Invested      decimal.Decimal
	Current       decimal.Decimal
	Return        decimal.Decimal
	ReturnPercent decimal.Decimal
}

func (l *Ledger) Portfolio() Portfolio {
	l.mu.Lock()
	defer l.mu.Unlock()
	p := Portfolio{Invested: decimal.Zero, Current: decimal.Zero, ReturnPercent: decimal.Zero}
	for _, i := range l.state.Investments {
		p.Invested = p.Invested.Add(i.InitialAmount)
		p.Current = p.Current.Add(i.CurrentAmount)
	}
	p.Return = p.Current.Sub(p.Invested)
	if p.Invested.IsPositive() {
		p.ReturnPercent = p.Return.Mul(decimal.NewFromInt(100)).Div(p.Invested).Round(2)
	}
	return p
}
