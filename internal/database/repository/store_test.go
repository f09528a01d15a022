package repository_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jask/fincontrol/internal/database"
	"github.com/jask/fincontrol/internal/database/repository"
	"github.com/jask/fincontrol/internal/domain"
	"github.com/jask/fincontrol/internal/installment"
	"github.com/jask/fincontrol/internal/ledger"
)

const user = "u1"

func newDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.RunMigrations(dbPath))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.SeedDefaults(context.Background(), db, user))
	return db
}

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(s string) time.Time {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSeedDefaultsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newDB(t)
	require.NoError(t, database.SeedDefaults(ctx, db, user))

	st, err := repository.NewStore(db).Load(ctx, user)
	require.NoError(t, err)
	require.Len(t, st.Categories, 10)
	for i, c := range st.Categories {
		require.Equal(t, domain.DefaultCategories[i].ID, c.ID)
		require.Equal(t, domain.DefaultCategories[i].Color, c.Color)
		require.True(t, c.IsDefault)
	}
	require.True(t, st.BalanceOffset.IsZero())
	require.False(t, st.DarkMode)
	require.Empty(t, st.Transactions)
}

func TestSeedDefaultsKeepsCustomizedCategories(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newDB(t)
	store := repository.NewStore(db)

	require.NoError(t, store.DeleteCategory(ctx, user, "cat_5"))
	require.NoError(t, database.SeedDefaults(ctx, db, user))

	cats, err := store.Categories.List(ctx, user)
	require.NoError(t, err)
	require.Len(t, cats, 9)
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := repository.NewStore(newDB(t))

	manual := money("812.40")
	deadline := day("2026-12-31")
	notes := "loja online"
	require.NoError(t, store.SaveSettings(ctx, user, domain.Settings{BalanceOffset: money("-1065.95"), DarkMode: true}))
	require.NoError(t, store.SaveCategory(ctx, user, domain.Category{ID: "c-pets", Name: "Pets", Color: "#6366f1"}))
	require.NoError(t, store.SaveCard(ctx, user, domain.CreditCard{
		ID: "card-1", Name: "Nubank", Limit: money("5000"), ClosingDay: 3, DueDay: 10, ManualInvoiceValue: &manual,
	}))
	require.NoError(t, store.SaveGoal(ctx, user, domain.FinancialGoal{
		ID: "goal-1", Name: "Reserva", TargetAmount: money("10000"), CurrentAmount: money("250"),
		Deadline: &deadline, Status: domain.GoalActive,
	}))
	require.NoError(t, store.SaveRecurring(ctx, user, domain.RecurringExpense{
		ID: "rec-1", Name: "Internet", Amount: money("119.90"), CategoryID: "cat_9", DueDay: 10,
		Active: true, LastGeneratedMonth: "2026-03",
	}))
	inst := domain.InstallmentPurchase{
		ID: "inst-1", Description: "Notebook", CategoryID: "cat_6", CardID: domain.Ref("card-1"),
		TotalInstallments: 3, InstallmentAmount: money("1200"), PurchaseDate: day("2026-02-11"),
		DueDay: 20, Status: domain.InstallmentActive, LastGeneratedMonth: "2026-03", Notes: &notes,
	}
	inst.TotalAmount = installment.Total(inst)
	require.NoError(t, store.SaveInstallment(ctx, user, inst))
	require.NoError(t, store.SaveInvestment(ctx, user, domain.Investment{
		ID: "inv-1", Name: "Tesouro Selic", Type: "renda fixa", InitialAmount: money("1000"),
		CurrentAmount: money("1042.17"), StartDate: day("2025-08-01"), CategoryID: "cat_7",
	}))

	txs := []domain.Transaction{
		{ID: "tx-old", Description: "Salário", Amount: money("5000"), Type: domain.Income, Date: day("2026-03-05"), CategoryID: "cat_8", GoalID: domain.Ref("goal-1")},
		{ID: "tx-rec", Description: "(Fixo) Internet", Amount: money("119.90"), Type: domain.Expense, Date: day("2026-03-10"), CategoryID: "cat_9", RecurringExpenseID: domain.Ref("rec-1"), IsRecurring: true},
		{ID: "tx-inst", Description: "Notebook (1/3)", Amount: money("1200"), Type: domain.Expense, Date: day("2026-03-20"), CategoryID: "cat_6", CardID: domain.Ref("card-1"), InstallmentID: domain.Ref("inst-1")},
	}
	for _, tx := range txs {
		require.NoError(t, store.SaveTransaction(ctx, user, tx))
	}

	st, err := store.Load(ctx, user)
	require.NoError(t, err)

	require.True(t, st.BalanceOffset.Equal(money("-1065.95")))
	require.True(t, st.DarkMode)
	require.Len(t, st.Categories, 11)
	pets, ok := st.Category("c-pets")
	require.True(t, ok)
	require.False(t, pets.IsDefault)

	require.Len(t, st.Cards, 1)
	require.NotNil(t, st.Cards[0].ManualInvoiceValue)
	require.True(t, st.Cards[0].ManualInvoiceValue.Equal(manual))
	require.True(t, st.Cards[0].Limit.Equal(money("5000")))

	require.Len(t, st.Goals, 1)
	require.NotNil(t, st.Goals[0].Deadline)
	require.Equal(t, "2026-12-31", domain.FormatDate(*st.Goals[0].Deadline))

	require.Len(t, st.RecurringExpenses, 1)
	require.Equal(t, "2026-03", st.RecurringExpenses[0].LastGeneratedMonth)
	require.True(t, st.RecurringExpenses[0].Active)

	require.Len(t, st.Installments, 1)
	got := st.Installments[0]
	require.Equal(t, "2026-03", got.LastGeneratedMonth)
	require.Equal(t, domain.InstallmentActive, got.Status)
	require.True(t, got.TotalAmount.Equal(money("3600")))
	require.Equal(t, day("2026-02-11"), got.PurchaseDate)
	require.True(t, domain.SameRef(got.CardID, "card-1"))
	require.Equal(t, &notes, got.Notes)

	require.Len(t, st.Investments, 1)
	require.True(t, st.Investments[0].CurrentAmount.Equal(money("1042.17")))

	// newest first
	require.Len(t, st.Transactions, 3)
	require.Equal(t, "tx-inst", st.Transactions[0].ID)
	require.Equal(t, "tx-rec", st.Transactions[1].ID)
	require.Equal(t, "tx-old", st.Transactions[2].ID)
	require.True(t, st.Transactions[1].IsRecurring)
	require.True(t, domain.SameRef(st.Transactions[1].RecurringExpenseID, "rec-1"))
	require.True(t, domain.SameRef(st.Transactions[2].GoalID, "goal-1"))
	require.Nil(t, st.Transactions[2].CardID)
	require.Equal(t, 1, installment.PaidCount("inst-1", st.Transactions))
	require.True(t, st.Balance().Equal(money("2614.15")))
}

func TestDeleteClearsLinks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := repository.NewStore(newDB(t))

	require.NoError(t, store.SaveCard(ctx, user, domain.CreditCard{ID: "card-1", Name: "Inter", Limit: money("1000"), ClosingDay: 1, DueDay: 8}))
	require.NoError(t, store.SaveRecurring(ctx, user, domain.RecurringExpense{ID: "rec-1", Name: "Academia", Amount: money("99"), CategoryID: "cat_4", DueDay: 5, Active: true}))
	require.NoError(t, store.SaveInstallment(ctx, user, domain.InstallmentPurchase{
		ID: "inst-1", Description: "Sofá", CategoryID: "cat_2", CardID: domain.Ref("card-1"), TotalInstallments: 2,
		InstallmentAmount: money("700"), TotalAmount: money("1400"), PurchaseDate: day("2026-01-10"), DueDay: 15,
		Status: domain.InstallmentActive,
	}))
	require.NoError(t, store.SaveTransaction(ctx, user, domain.Transaction{
		ID: "tx-1", Description: "Sofá (1/2)", Amount: money("700"), Type: domain.Expense, Date: day("2026-01-15"),
		CategoryID: "cat_2", CardID: domain.Ref("card-1"), InstallmentID: domain.Ref("inst-1"),
	}))
	require.NoError(t, store.SaveTransaction(ctx, user, domain.Transaction{
		ID: "tx-2", Description: "(Fixo) Academia", Amount: money("99"), Type: domain.Expense, Date: day("2026-01-05"),
		CategoryID: "cat_4", RecurringExpenseID: domain.Ref("rec-1"), IsRecurring: true,
	}))

	require.NoError(t, store.DeleteCard(ctx, user, "card-1"))
	require.NoError(t, store.DeleteInstallment(ctx, user, "inst-1"))
	require.NoError(t, store.DeleteRecurring(ctx, user, "rec-1"))

	st, err := store.Load(ctx, user)
	require.NoError(t, err)
	require.Empty(t, st.Cards)
	require.Empty(t, st.Installments)
	require.Empty(t, st.RecurringExpenses)
	require.Len(t, st.Transactions, 2)
	for _, tx := range st.Transactions {
		require.Nil(t, tx.CardID)
		require.Nil(t, tx.InstallmentID)
		require.Nil(t, tx.RecurringExpenseID)
	}
}

func TestTransactionQueries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := repository.NewTransactionRepo(newDB(t))

	for _, tx := range []domain.Transaction{
		{ID: "a", Description: "Mercado Extra", Amount: money("230.10"), Type: domain.Expense, Date: day("2026-02-27"), CategoryID: "cat_1"},
		{ID: "b", Description: "Mercado Dia", Amount: money("48.00"), Type: domain.Expense, Date: day("2026-03-02"), CategoryID: "cat_1"},
		{ID: "c", Description: "Uber", Amount: money("23.50"), Type: domain.Expense, Date: day("2026-03-03"), CategoryID: "cat_3"},
		{ID: "d", Description: "Salário", Amount: money("7200"), Type: domain.Income, Date: day("2026-02-05"), CategoryID: "cat_8"},
	} {
		require.NoError(t, repo.Upsert(ctx, user, tx))
	}

	got, err := repo.List(ctx, user, domain.TransactionFilter{Month: "2026-03"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "c", got[0].ID)

	got, err = repo.List(ctx, user, domain.TransactionFilter{Search: "Mercado"})
	require.NoError(t, err)
	require.Len(t, got, 2)

	got, err = repo.List(ctx, user, domain.TransactionFilter{Month: "2026-03", CategoryID: "cat_1"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "b", got[0].ID)

	// sql filtering agrees with the in-memory filter
	all, err := repo.List(ctx, user, domain.TransactionFilter{})
	require.NoError(t, err)
	for _, f := range []domain.TransactionFilter{
		{Month: "2026-03", Type: domain.Expense},
		{Type: domain.Income},
		{Search: "mercado"},
		{Month: "2026-02", CategoryID: "cat_1"},
	} {
		got, err = repo.List(ctx, user, f)
		require.NoError(t, err)
		require.Equal(t, f.Apply(all), got, "%+v", f)
	}

	tx, err := repo.Get(ctx, user, "a")
	require.NoError(t, err)
	require.True(t, tx.Amount.Equal(money("230.1")))

	_, err = repo.Get(ctx, user, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.Get(ctx, "someone-else", "a")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUsersAreIsolated(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newDB(t)
	store := repository.NewStore(db)

	tx := domain.Transaction{ID: "tx-1", Description: "Padaria", Amount: money("12"), Type: domain.Expense, Date: day("2026-03-01"), CategoryID: "cat_1"}
	require.NoError(t, store.SaveTransaction(ctx, user, tx))

	tx.Description = "overwritten"
	require.NoError(t, store.SaveTransaction(ctx, "u2", tx))
	require.NoError(t, store.DeleteTransaction(ctx, "u2", "tx-1"))

	st, err := store.Load(ctx, user)
	require.NoError(t, err)
	require.Len(t, st.Transactions, 1)
	require.Equal(t, "Padaria", st.Transactions[0].Description)

	other, err := store.Load(ctx, "u2")
	require.NoError(t, err)
	require.Empty(t, other.Transactions)
	require.Empty(t, other.Categories)
	require.True(t, other.BalanceOffset.IsZero())
}

func TestReset(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newDB(t)
	store := repository.NewStore(db)
	require.NoError(t, database.SeedDefaults(ctx, db, "u2"))
	require.NoError(t, store.SaveTransaction(ctx, user, domain.Transaction{ID: "tx-1", Description: "x", Amount: money("1"), Type: domain.Expense, Date: day("2026-03-01"), CategoryID: "cat_1"}))

	require.NoError(t, database.Reset(ctx, db, user))

	st, err := store.Load(ctx, user)
	require.NoError(t, err)
	require.Empty(t, st.Transactions)
	require.Empty(t, st.Categories)

	other, err := store.Load(ctx, "u2")
	require.NoError(t, err)
	require.Len(t, other.Categories, 10)
}

func TestSchemaVersion(t *testing.T) {
	t.Parallel()
	dbPath := filepath.Join(t.TempDir(), "v.db")
	require.NoError(t, database.RunMigrations(dbPath))
	require.NoError(t, database.RunMigrations(dbPath))

	v, dirty, err := database.SchemaVersion(dbPath)
	require.NoError(t, err)
	require.False(t, dirty)
	require.Equal(t, uint(1), v)
}

func TestLedgerSurvivesReload(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := repository.NewStore(newDB(t))
	now := time.Date(2026, 3, 20, 9, 0, 0, 0, time.UTC)
	open := func() *ledger.Ledger {
		l := ledger.New(store, user, ledger.WithClock(func() time.Time { return now }))
		require.NoError(t, l.Load(ctx))
		return l
	}

	led := open()
	card := led.AddCard(ctx, domain.CreditCard{Name: "Nubank", Limit: money("5000"), ClosingDay: 3, DueDay: 10})
	led.AddRecurring(ctx, domain.RecurringExpense{Name: "Internet", Amount: money("119.90"), CategoryID: "cat_9", DueDay: 10})
	inst := led.AddInstallment(ctx, domain.InstallmentPurchase{
		Description: "Notebook", CategoryID: "cat_6", CardID: domain.Ref(card.ID), TotalInstallments: 3,
		InstallmentAmount: money("1200"), PurchaseDate: day("2026-03-01"), DueDay: 20,
	})
	rep := led.Refresh(ctx)
	require.Len(t, rep.Created, 2)

	// a fresh process the same month creates nothing new
	led = open()
	require.Empty(t, led.Refresh(ctx).Created)
	st := led.Snapshot()
	require.Len(t, st.Transactions, 2)
	require.Equal(t, "2026-03", st.RecurringExpenses[0].LastGeneratedMonth)
	got, ok := st.Installment(inst.ID)
	require.True(t, ok)
	require.Equal(t, "2026-03", got.LastGeneratedMonth)

	_, ok = led.PayNextInstallment(ctx, inst.ID)
	require.True(t, ok)
	_, ok = led.PayNextInstallment(ctx, inst.ID)
	require.True(t, ok)

	led = open()
	st = led.Snapshot()
	got, _ = st.Installment(inst.ID)
	require.Equal(t, domain.InstallmentCompleted, got.Status)
	require.Equal(t, 3, installment.PaidCount(inst.ID, st.Transactions))

	require.True(t, led.UndoLastInstallment(ctx, inst.ID))
	led = open()
	st = led.Snapshot()
	got, _ = st.Installment(inst.ID)
	require.Equal(t, domain.InstallmentActive, got.Status)
	require.Equal(t, 2, installment.PaidCount(inst.ID, st.Transactions))

	require.True(t, led.DeleteCard(ctx, card.ID))
	led = open()
	st = led.Snapshot()
	for _, tx := range st.Transactions {
		require.Nil(t, tx.CardID)
	}
	require.True(t, led.Balance().Equal(money("-2519.90")))
}
