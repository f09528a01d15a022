// Package testdata fills a ledger with sample data for demos.
package testdata

import (
	"context"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jask/fincontrol/internal/domain"
	"github.com/jask/fincontrol/internal/ledger"
)

// Seed creates sample cards, bills, installments, a goal and a few months
// of transactions, all through the ledger so the usual rules apply. Nothing
// is dated after the ledger's today. It returns the number of transactions
// created and is a no-op when the ledger already holds transactions.
func Seed(ctx context.Context, led *ledger.Ledger, rng *rand.Rand) int {
	if len(led.Snapshot().Transactions) > 0 {
		return 0
	}
	today := domain.DateOf(led.Today())
	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	created := 0
	add := func(tx domain.Transaction) {
		if tx.Date.After(today) {
			return
		}
		led.AddTransaction(ctx, tx)
		created++
	}

	card := led.AddCard(ctx, domain.CreditCard{
		Name: "Nubank", Limit: decimal.NewFromInt(6000), ClosingDay: 3, DueDay: 10,
	})
	goal := led.AddGoal(ctx, domain.FinancialGoal{
		Name: "Reserva de emergência", TargetAmount: decimal.NewFromInt(15000), CurrentAmount: decimal.Zero,
	})

	bills := []domain.RecurringExpense{
		{Name: "Aluguel", Amount: decimal.NewFromInt(1850), CategoryID: "cat_2", DueDay: 5},
		{Name: "Internet", Amount: decimal.RequireFromString("119.90"), CategoryID: "cat_9", DueDay: 10},
		{Name: "Academia", Amount: decimal.RequireFromString("99.90"), CategoryID: "cat_5", DueDay: 15},
	}
	for _, b := range bills {
		led.AddRecurring(ctx, b)
	}

	led.AddInstallment(ctx, domain.InstallmentPurchase{
		Description:       "Notebook",
		CategoryID:        "cat_6",
		CardID:            domain.Ref(card.ID),
		TotalInstallments: 10,
		InstallmentAmount: decimal.NewFromInt(420),
		PurchaseDate:      today.AddDate(0, -1, 0),
		DueDay:            10,
	})
	led.AddInstallment(ctx, domain.InstallmentPurchase{
		Description:       "Geladeira",
		CategoryID:        "cat_10",
		CardID:            domain.Ref(card.ID),
		TotalInstallments: 3,
		InstallmentAmount: decimal.RequireFromString("1133.33"),
		PurchaseDate:      today,
		DueDay:            28,
	})

	for m := 2; m >= 0; m-- {
		start := first.AddDate(0, -m, 0)
		add(domain.Transaction{
			Description: "Salário",
			Amount:      decimal.NewFromInt(7200),
			Type:        domain.Income,
			Date:        start.AddDate(0, 0, 4),
			CategoryID:  "cat_8",
		})
		add(domain.Transaction{
			Description: "Aporte reserva",
			Amount:      decimal.NewFromInt(500),
			Type:        domain.Income,
			Date:        start.AddDate(0, 0, 5),
			CategoryID:  "cat_7",
			GoalID:      domain.Ref(goal.ID),
		})
		for i := 0; i < 8; i++ {
			d := start.AddDate(0, 0, rng.Intn(27))
			desc := []string{"Mercado", "Padaria", "Uber", "Farmácia", "Cinema"}[rng.Intn(5)]
			cat := map[string]string{"Mercado": "cat_1", "Padaria": "cat_1", "Uber": "cat_3", "Farmácia": "cat_4", "Cinema": "cat_5"}[desc]
			tx := domain.Transaction{
				Description: desc,
				Amount:      decimal.New(int64(rng.Intn(25000)+500), -2),
				Type:        domain.Expense,
				Date:        d,
				CategoryID:  cat,
			}
			if rng.Intn(3) == 0 {
				tx.CardID = domain.Ref(card.ID)
			}
			add(tx)
		}
	}

	led.AddInvestment(ctx, domain.Investment{
		Name:          "Tesouro Selic",
		Type:          "renda fixa",
		InitialAmount: decimal.NewFromInt(3000),
		CurrentAmount: decimal.RequireFromString("3187.42"),
		StartDate:     today.AddDate(-1, 0, 0),
		CategoryID:    "cat_7",
	})
	led.SetBalanceOffset(ctx, decimal.NewFromInt(2500))
	return created
}
