package domain

import "github.com/shopspring/decimal"

// Category looks up a category by id.
func (s State) Category(id string) (Category, bool) {
	for _, c := range s.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

func (s State) Card(id string) (CreditCard, bool) {
	for _, c := range s.Cards {
		if c.ID == id {
			return c, true
		}
	}
	return CreditCard{}, false
}

func (s State) Goal(id string) (FinancialGoal, bool) {
	for _, g := range s.Goals {
		if g.ID == id {
			return g, true
		}
	}
	return FinancialGoal{}, false
}

func (s State) Installment(id string) (InstallmentPurchase, bool) {
	for _, i := range s.Installments {
		if i.ID == id {
			return i, true
		}
	}
	return InstallmentPurchase{}, false
}

func (s State) Transaction(id string) (Transaction, bool) {
	for _, t := range s.Transactions {
		if t.ID == id {
			return t, true
		}
	}
	return Transaction{}, false
}

// NetFlow returns all-time income minus all-time expense.
func (s State) NetFlow() decimal.Decimal {
	net := decimal.Zero
	for _, t := range s.Transactions {
		switch t.Type {
		case Income:
			net = net.Add(t.Amount)
		case Expense:
			net = net.Sub(t.Amount)
		}
	}
	return net
}

// Balance is the displayed account balance: offset plus all-time net flow.
func (s State) Balance() decimal.Decimal {
	return s.BalanceOffset.Add(s.NetFlow())
}

// Clone returns a copy whose slices can be mutated independently.
func (s State) Clone() State {
	out := s
	out.Transactions = append([]Transaction(nil), s.Transactions...)
	out.Categories = append([]Category(nil), s.Categories...)
	out.Cards = append([]CreditCard(nil), s.Cards...)
	out.RecurringExpenses = append([]RecurringExpense(nil), s.RecurringExpenses...)
	out.Installments = append([]InstallmentPurchase(nil), s.Installments...)
	out.Goals = append([]FinancialGoal(nil), s.Goals...)
	out.Investments = append([]Investment(nil), s.Investments...)
	return out
}
