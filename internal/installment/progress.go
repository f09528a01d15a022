package installment

import (
	"github.com/shopspring/decimal"

	"github.com/jask/fincontrol/internal/domain"
)

// Progress summarizes how far an installment purchase has been paid.
type Progress struct {
	Paid            int
	Remaining       int
	PaidAmount      decimal.Decimal
	RemainingAmount decimal.Decimal
	Percent         decimal.Decimal
}

// Total is installments times the installment amount.
func Total(inst domain.InstallmentPurchase) decimal.Decimal {
	return inst.InstallmentAmount.Mul(decimal.NewFromInt(int64(inst.TotalInstallments)))
}

// ProgressOf derives progress from linked transactions.
func ProgressOf(inst domain.InstallmentPurchase, txs []domain.Transaction) Progress {
	paid := PaidCount(inst.ID, txs)
	if paid > inst.TotalInstallments {
		paid = inst.TotalInstallments
	}
	remaining := inst.TotalInstallments - paid
	p := Progress{
		Paid:            paid,
		Remaining:       remaining,
		PaidAmount:      inst.InstallmentAmount.Mul(decimal.NewFromInt(int64(paid))),
		RemainingAmount: inst.InstallmentAmount.Mul(decimal.NewFromInt(int64(remaining))),
		Percent:         decimal.Zero,
	}
	if inst.TotalInstallments > 0 {
		p.Percent = decimal.NewFromInt(int64(paid * 100)).
			Div(decimal.NewFromInt(int64(inst.TotalInstallments))).
			Round(1)
	}
	return p
}
