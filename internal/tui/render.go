package tui

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jask/fincontrol/internal/domain"
	"github.com/jask/fincontrol/internal/installment"
	"github.com/jask/fincontrol/internal/ledger"
)

const barWidth = 20

func (a *App) View() string {
	th := newTheme(a.snap.DarkMode)
	var body string
	switch a.state {
	case viewTransactions:
		body = a.renderTransactions(th)
	default:
		body = a.renderDashboard(th)
	}
	if a.modal != modalNone {
		body += "\n\n" + a.renderModal(th)
	}
	if a.status != "" {
		body += "\n" + th.muted.Render(a.status)
	}
	return body
}

func (a *App) renderDashboard(th theme) string {
	var b strings.Builder
	month := a.month()
	b.WriteString(th.title.Render("FinControl - " + month))
	b.WriteString("\n")

	sum := a.led.Summary(month)
	fmt.Fprintf(&b, "Balance: %s\n", a.signed(th, a.snap.Balance()))
	fmt.Fprintf(&b, "Month:   %s in  %s out  net %s\n",
		th.income.Render(a.money(sum.Income)), th.expense.Render(a.money(sum.Expense)), a.signed(th, sum.Net))

	b.WriteString("\n" + th.section.Render("Installments") + "\n")
	if len(a.snap.Installments) == 0 {
		b.WriteString(th.muted.Render("  (none)") + "\n")
	}
	for i, inst := range a.snap.Installments {
		p := installment.ProgressOf(inst, a.snap.Transactions)
		line := fmt.Sprintf("%-24s %s %2d/%-2d %5s%%  %-9s %s left",
			truncate(inst.Description, 24), bar(th, p.Percent), p.Paid, inst.TotalInstallments,
			p.Percent.StringFixed(1), inst.Status, a.money(p.RemainingAmount))
		if i == a.instCursor {
			b.WriteString(th.selected.Render("▶ "+line) + "\n")
		} else {
			b.WriteString("  " + th.text.Render(line) + "\n")
		}
	}

	b.WriteString("\n" + th.section.Render("Recurring") + "\n")
	if len(a.snap.RecurringExpenses) == 0 {
		b.WriteString(th.muted.Render("  (none)") + "\n")
	}
	for _, r := range a.snap.RecurringExpenses {
		last := r.LastGeneratedMonth
		if last == "" {
			last = "never"
		}
		state := "day " + fmt.Sprint(r.DueDay)
		if !r.Active {
			state = "paused"
		}
		fmt.Fprintf(&b, "  %-24s %12s  %-7s last %s\n", truncate(r.Name, 24), a.money(r.Amount), state, last)
	}

	if len(a.snap.Goals) > 0 {
		b.WriteString("\n" + th.section.Render("Goals") + "\n")
		for _, g := range a.snap.Goals {
			pct := ledger.GoalProgress(g)
			fmt.Fprintf(&b, "  %-24s %s %5s%%  %s / %s\n",
				truncate(g.Name, 24), bar(th, pct), pct.StringFixed(1), a.money(g.CurrentAmount), a.money(g.TargetAmount))
		}
	}

	if len(sum.ByCategory) > 0 {
		b.WriteString("\n" + th.section.Render("Top categories") + "\n")
		for i, c := range sum.ByCategory {
			if i == 5 {
				break
			}
			fmt.Fprintf(&b, "  %-24s %12s\n", a.categoryName(c.CategoryID), a.money(c.Total))
		}
	}

	b.WriteString("\n" + th.muted.Render("[j/k] Select  [p] Pay next  [u] Undo  [c] Cancel  [r] Refresh  [d] Theme  [tab] Transactions  [q] Quit"))
	if a.reset != nil {
		b.WriteString(th.muted.Render("  [x] Reset"))
	}
	return b.String()
}

func (a *App) renderTransactions(th theme) string {
	var b strings.Builder
	title := "Transactions - " + a.transactionsMonth()
	switch a.txType {
	case domain.Expense:
		title += " (expenses)"
	case domain.Income:
		title += " (income)"
	}
	b.WriteString(th.title.Render(title))
	b.WriteString("\n")
	txs := a.visibleTransactions()
	if len(txs) == 0 {
		b.WriteString(th.muted.Render("  (no transactions this month)") + "\n")
	}
	for i, t := range txs {
		amount := a.money(t.Amount)
		if t.Type == domain.Expense {
			amount = th.expense.Render("-" + amount)
		} else {
			amount = th.income.Render("+" + amount)
		}
		marker := " "
		if i == a.txCursor {
			marker = "▶"
		}
		tags := ""
		switch {
		case t.InstallmentID != nil:
			tags = " [parcela]"
		case t.Generated(), t.IsRecurring:
			tags = " [fixo]"
		}
		fmt.Fprintf(&b, "%s %s  %-36s %14s  %s%s\n", marker, t.Date.Format(a.dateFormat),
			truncate(t.Description, 36), amount, a.categoryName(t.CategoryID), th.muted.Render(tags))
	}
	b.WriteString("\n" + th.muted.Render("[j/k] Move  [h/l] Month  [t] Type  [tab] Dashboard  [r] Refresh  [q] Quit"))
	return b.String()
}

func (a *App) renderModal(th theme) string {
	switch a.modal {
	case modalConfirmCancel:
		inst, _ := a.selectedInstallment()
		return th.warn.Render("Cancel "+inst.Description+"?") + "\nPaid installments are kept.\n[y] Yes  [n] No"
	case modalConfirmReset:
		return th.warn.Render("Reset all data?") + "\nThis deletes every transaction, bill and installment.\n[y] Yes  [n] No"
	default:
		return ""
	}
}

func (a *App) categoryName(id string) string {
	if c, ok := a.snap.Category(id); ok {
		return c.Name
	}
	return id
}

func (a *App) money(d decimal.Decimal) string {
	return a.currency + " " + d.StringFixed(2)
}

func (a *App) signed(th theme, d decimal.Decimal) string {
	if d.IsNegative() {
		return th.expense.Render("-" + a.money(d.Abs()))
	}
	return th.income.Render(a.money(d))
}

func bar(th theme, pct decimal.Decimal) string {
	filled := int(pct.Mul(decimal.NewFromInt(barWidth)).Div(decimal.NewFromInt(100)).IntPart())
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	return th.barFull.Render(strings.Repeat("█", filled)) + th.barEmpty.Render(strings.Repeat("░", barWidth-filled))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
