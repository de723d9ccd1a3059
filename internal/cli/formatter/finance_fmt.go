package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lifetrack/internal/analytics"
	"github.com/alexanderramin/lifetrack/internal/app"
	"github.com/alexanderramin/lifetrack/internal/domain"
	"github.com/shopspring/decimal"
)

const trendBarWidth = 20

// FormatEntryList renders ledger entries with right-aligned signed amounts.
func FormatEntryList(entries []*domain.LedgerEntry) string {
	if len(entries) == 0 {
		return Dim("No transactions found. Add one with: lifetrack finance add --type expense --amount 12.50 --desc Lunch") + "\n"
	}
	headers := []string{"ID", "DATE", "TYPE", "CATEGORY", "DESCRIPTION", "AMOUNT"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		sign := "+"
		if e.Type != domain.EntryIncome {
			sign = "-"
		}
		style := EntryTypeStyle(e.Type)
		rows = append(rows, []string{
			TruncID(e.ID),
			e.Date,
			style.Render(string(e.Type)),
			e.Category,
			Truncate(e.Description, 32),
			style.Render(sign + FormatMoney(e.Amount)),
		})
	}
	return RenderTableAligned(headers, rows, []int{5})
}

// FormatFinanceStats renders the month's income, expenses, savings and balance.
func FormatFinanceStats(month string, s analytics.FinanceStats) string {
	rows := [][]string{
		{"Income", StyleGreen.Render(FormatMoney(s.Income))},
		{"Expenses", StyleRed.Render(FormatMoney(s.Expenses))},
		{"Savings", StyleBlue.Render(FormatMoney(s.Savings))},
		{Bold("Balance"), SignedMoney(s.Balance)},
	}
	return RenderBox("Finances "+month, RenderTableAligned([]string{"", "AMOUNT"}, rows, []int{1}))
}

// FormatCategories renders the month's expenses per category with share bars.
func FormatCategories(cats []analytics.CategoryTotal) string {
	if len(cats) == 0 {
		return Dim("No expenses this month.") + "\n"
	}
	total := decimal.Zero
	for _, c := range cats {
		total = total.Add(c.Value)
	}
	rows := make([][]string, 0, len(cats))
	for _, c := range cats {
		share := 0.0
		if total.IsPositive() {
			share = c.Value.Div(total).InexactFloat64()
		}
		rows = append(rows, []string{c.Name, FormatMoney(c.Value), RenderProgress(share, 10)})
	}
	return RenderTableAligned([]string{"CATEGORY", "SPENT", "SHARE"}, rows, []int{1})
}

// FormatTrend renders one line per month with bars scaled to the largest value.
func FormatTrend(trend []analytics.TrendPoint) string {
	peak := decimal.Zero
	for _, p := range trend {
		peak = decimal.Max(peak, p.Income, p.Expenses, p.Savings)
	}
	scaled := func(d decimal.Decimal) int {
		if !peak.IsPositive() {
			return 0
		}
		return int(d.Div(peak).Mul(decimal.NewFromInt(trendBarWidth)).IntPart())
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s %s\n", StyleGreen.Render("■ income"), StyleRed.Render("■ expenses"), StyleBlue.Render("■ savings")))
	for _, p := range trend {
		b.WriteString(fmt.Sprintf("%-4s %s %s\n", p.Label,
			StyleGreen.Render(strings.Repeat(filledBlock, scaled(p.Income))),
			Dim(FormatMoney(p.Income))))
		b.WriteString(fmt.Sprintf("%-4s %s %s\n", "",
			StyleRed.Render(strings.Repeat(filledBlock, scaled(p.Expenses))),
			Dim(FormatMoney(p.Expenses))))
		b.WriteString(fmt.Sprintf("%-4s %s %s\n", "",
			StyleBlue.Render(strings.Repeat(filledBlock, scaled(p.Savings))),
			Dim(FormatMoney(p.Savings))))
	}
	return b.String()
}

// FormatFinanceSummary is the full "finance summary" page.
func FormatFinanceSummary(sum *app.FinanceSummary) string {
	var b strings.Builder
	b.WriteString(FormatFinanceStats(sum.Month, sum.Stats) + "\n\n")
	b.WriteString(Header("Spending by category") + "\n")
	b.WriteString(FormatCategories(sum.Categories) + "\n")
	b.WriteString(Header("Trend") + "\n")
	b.WriteString(FormatTrend(sum.Trend) + "\n")
	b.WriteString(Header("Transactions") + "\n")
	b.WriteString(FormatEntryList(sum.Entries))
	return b.String()
}
