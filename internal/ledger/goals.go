package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jask/fincontrol/internal/domain"
)

func (l *Ledger) AddGoal(ctx context.Context, g domain.FinancialGoal) domain.FinancialGoal {
	l.mu.Lock()
	defer l.mu.Unlock()
	g.ID = l.newID()
	if g.Status == "" {
		g.Status = domain.GoalActive
	}
	l.state.Goals = append(l.state.Goals, g)
	l.persist("save goal", g.ID, l.store.SaveGoal(ctx, l.userID, g))
	return g
}

// UpdateGoal replaces a goal, including a direct edit of its current amount.
func (l *Ledger) UpdateGoal(ctx context.Context, g domain.FinancialGoal) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.state.Goals {
		if l.state.Goals[i].ID == g.ID {
			l.state.Goals[i] = g
			l.persist("save goal", g.ID, l.store.SaveGoal(ctx, l.userID, g))
			return true
		}
	}
	return false
}

// DeleteGoal removes a goal; contributing transactions stay, unlinked.
func (l *Ledger) DeleteGoal(ctx context.Context, id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, g := range l.state.Goals {
		if g.ID != id {
			continue
		}
		l.unlinkTransactions(ctx,
			func(t domain.Transaction) bool { return domain.SameRef(t.GoalID, id) },
			func(t *domain.Transaction) { t.GoalID = nil },
		)
		l.state.Goals = append(l.state.Goals[:i:i], l.state.Goals[i+1:]...)
		l.persist("delete goal", id, l.store.DeleteGoal(ctx, l.userID, id))
		return true
	}
	return false
}

// GoalProgress is current over target as a percentage, capped at 100.
func GoalProgress(g domain.FinancialGoal) decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}
	pct := g.CurrentAmount.Mul(decimal.NewFromInt(100)).Div(g.TargetAmount).Round(1)
	if pct.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.NewFromInt(100)
	}
	return pct
}
