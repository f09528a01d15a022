package ledger

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jask/fincontrol/internal/domain"
)

// Balance is the displayed balance, always recomputed from the offset and
// the all-time net flow.
func (l *Ledger) Balance() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.Balance()
}

// SetBalance makes the displayed balance equal target by solving for the
// offset; transaction history is not touched.
func (l *Ledger) SetBalance(ctx context.Context, target decimal.Decimal) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.BalanceOffset = target.Sub(l.state.NetFlow())
	l.persist("save settings", l.userID, l.store.SaveSettings(ctx, l.userID, l.state.Settings))
	return l.state.BalanceOffset
}

// SetBalanceOffset stores a raw offset.
func (l *Ledger) SetBalanceOffset(ctx context.Context, offset decimal.Decimal) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.BalanceOffset = offset
	l.persist("save settings", l.userID, l.store.SaveSettings(ctx, l.userID, l.state.Settings))
}

// ToggleDarkMode flips the theme preference and returns the new value.
func (l *Ledger) ToggleDarkMode(ctx context.Context) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.DarkMode = !l.state.DarkMode
	l.persist("save settings", l.userID, l.store.SaveSettings(ctx, l.userID, l.state.Settings))
	return l.state.DarkMode
}

// CategoryTotal is the expense sum of one category.
type CategoryTotal struct {
	CategoryID string
	Total      decimal.Decimal
}

// MonthSummary aggregates one month of transactions.
type MonthSummary struct {
	Month      string
	Income     decimal.Decimal
	Expense    decimal.Decimal
	Net        decimal.Decimal
	ByCategory []CategoryTotal
}

// Summary aggregates the transactions dated in month ("YYYY-MM"). Category
// totals are sorted by amount, largest first.
func (l *Ledger) Summary(month string) MonthSummary {
	l.mu.Lock()
	defer l.mu.Unlock()
	s := MonthSummary{Month: month, Income: decimal.Zero, Expense: decimal.Zero}
	byCat := map[string]decimal.Decimal{}
	for _, t := range l.state.Transactions {
		if !domain.InMonth(t.Date, month) {
			continue
		}
		switch t.Type {
		case domain.Income:
			s.Income = s.Income.Add(t.Amount)
		case domain.Expense:
			s.Expense = s.Expense.Add(t.Amount)
			byCat[t.CategoryID] = byCat[t.CategoryID].Add(t.Amount)
		}
	}
	s.Net = s.Income.Sub(s.Expense)
	for id, total := range byCat {
		s.ByCategory = append(s.ByCategory, CategoryTotal{CategoryID: id, Total: total})
	}
	sort.Slice(s.ByCategory, func(i, j int) bool {
		if c := s.ByCategory[i].Total.Cmp(s.ByCategory[j].Total); c != 0 {
			return c > 0
		}
		return s.ByCategory[i].CategoryID < s.ByCategory[j].CategoryID
	})
	return s
}
