package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestMonthKeyUsesLocalCalendarDate(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	// 01:00 UTC on the 1st is still the 31st in BRT.
	ts := time.Date(2026, 2, 1, 1, 0, 0, 0, time.UTC).In(loc)
	require.Equal(t, "2026-01", MonthKey(ts))
	require.Equal(t, "2026-01-31", FormatDate(DateOf(ts)))
}

func TestParseDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2026-03-09")
	require.NoError(t, err)
	require.Equal(t, "2026-03-09", FormatDate(d))
	require.True(t, InMonth(d, "2026-03"))
	require.False(t, InMonth(d, "2026-04"))

	_, err = ParseDate("09/03/2026")
	require.Error(t, err)
}

func TestBalanceIsOffsetPlusNetFlow(t *testing.T) {
	s := State{
		Settings: Settings{BalanceOffset: decimal.NewFromInt(50)},
		Transactions: []Transaction{
			{Amount: decimal.NewFromInt(1000), Type: Income},
			{Amount: decimal.RequireFromString("250.75"), Type: Expense},
		},
	}
	require.True(t, s.NetFlow().Equal(decimal.RequireFromString("749.25")))
	require.True(t, s.Balance().Equal(decimal.RequireFromString("799.25")))
}

func TestTransactionValidate(t *testing.T) {
	ok := Transaction{
		Description: "Mercado",
		Amount:      decimal.NewFromInt(10),
		Type:        Expense,
		Date:        time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		CategoryID:  "cat_1",
	}
	require.NoError(t, ok.Validate())

	bad := ok
	bad.Amount = decimal.Zero
	err := bad.Validate()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalid))

	bad = ok
	bad.Type = "transfer"
	require.Error(t, bad.Validate())
}

func TestInstallmentValidateRequiresTwoInstallments(t *testing.T) {
	inst := InstallmentPurchase{Description: "TV", TotalInstallments: 1, InstallmentAmount: decimal.NewFromInt(100), DueDay: 10}
	require.Error(t, inst.Validate())
	inst.TotalInstallments = 2
	require.NoError(t, inst.Validate())
	inst.DueDay = 32
	require.Error(t, inst.Validate())
}

func TestValidateReferences(t *testing.T) {
	s := NewState()
	tx := Transaction{CategoryID: "cat_1"}
	require.NoError(t, s.ValidateReferences(tx))

	tx.CardID = Ref("missing")
	require.Error(t, s.ValidateReferences(tx))
}

func TestStateValidate(t *testing.T) {
	s := NewState()
	s.Goals = []FinancialGoal{{ID: "g1", Name: "Viagem", TargetAmount: decimal.NewFromInt(4000)}}
	s.Transactions = []Transaction{{
		ID: "t1", Description: "Aporte", Amount: decimal.NewFromInt(100), Type: Income,
		Date: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), CategoryID: "cat_7", GoalID: Ref("g1"),
	}}
	require.NoError(t, s.Validate())

	bad := s.Clone()
	bad.Goals = nil
	err := bad.Validate()
	require.ErrorIs(t, err, ErrInvalid)
	require.Contains(t, err.Error(), "transaction t1")

	bad = s.Clone()
	bad.Installments = []InstallmentPurchase{{ID: "i1", Description: "TV", TotalInstallments: 1, InstallmentAmount: decimal.NewFromInt(1), DueDay: 1}}
	require.ErrorContains(t, bad.Validate(), "installment i1")
}

func TestNewStateCopiesDefaults(t *testing.T) {
	s := NewState()
	require.Len(t, s.Categories, 10)
	s.Categories[0].Name = "changed"
	require.Equal(t, "Alimentação", DefaultCategories[0].Name)
}

func TestRefAndSameRef(t *testing.T) {
	require.Nil(t, Ref(""))
	require.True(t, SameRef(Ref("a"), "a"))
	require.False(t, SameRef(nil, "a"))
	require.True(t, Transaction{InstallmentID: Ref("i")}.Generated())
	require.False(t, Transaction{}.Generated())
}

func TestShiftMonth(t *testing.T) {
	require.Equal(t, "2026-02", ShiftMonth("2026-03", -1))
	require.Equal(t, "2027-01", ShiftMonth("2026-12", 1))
	require.Equal(t, "2025-12", ShiftMonth("2026-01", -1))
	require.Equal(t, "bad", ShiftMonth("bad", 1))
}

func TestTransactionFilter(t *testing.T) {
	day := func(s string) time.Time {
		d, err := ParseDate(s)
		require.NoError(t, err)
		return d
	}
	txs := []Transaction{
		{ID: "a", Description: "Mercado Extra", Type: Expense, Date: day("2026-03-02"), CategoryID: "cat_1", CardID: Ref("card")},
		{ID: "b", Description: "Salário", Type: Income, Date: day("2026-03-05"), CategoryID: "cat_8"},
		{ID: "c", Description: "Notebook (1/3)", Type: Expense, Date: day("2026-02-25"), CategoryID: "cat_6", InstallmentID: Ref("inst")},
	}
	ids := func(f TransactionFilter) []string {
		var out []string
		for _, tx := range f.Apply(txs) {
			out = append(out, tx.ID)
		}
		return out
	}

	require.Equal(t, []string{"a", "b", "c"}, ids(TransactionFilter{}))
	require.Equal(t, []string{"a", "b"}, ids(TransactionFilter{Month: "2026-03"}))
	require.Equal(t, []string{"b"}, ids(TransactionFilter{Month: "2026-03", Type: Income}))
	require.Equal(t, []string{"a"}, ids(TransactionFilter{CardID: "card"}))
	require.Equal(t, []string{"c"}, ids(TransactionFilter{InstallmentID: "inst"}))
	require.Equal(t, []string{"a"}, ids(TransactionFilter{Search: "mercado"}))
	require.Equal(t, []string{"c"}, ids(TransactionFilter{CategoryID: "cat_6"}))
	require.Empty(t, ids(TransactionFilter{Month: "2026-04"}))
}
