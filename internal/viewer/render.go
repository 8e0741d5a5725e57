package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"fdrates/internal/domain/service/rates"
)

// ErrorBanner is the single message shown for every load failure. The
// viewer never surfaces transport detail to the terminal.
const ErrorBanner = "Could not load rates. Please try again later."

const EmptyResult = "No rates match your criteria."

var (
	colorBorder = lipgloss.Color("240")
	colorHeader = lipgloss.Color("39")
	colorPayout = lipgloss.Color("114")
	colorMuted  = lipgloss.Color("245")

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorHeader)
	payoutStyle = lipgloss.NewStyle().Foreground(colorPayout)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	dimStyle    = lipgloss.NewStyle().Foreground(colorBorder)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
)

func RenderError() string {
	return "\n  " + errorStyle.Render(ErrorBanner) + "\n"
}

func RenderEmpty() string {
	return "\n  " + mutedStyle.Render(EmptyResult) + "\n"
}

// RenderTable renders the projected quotes as a bordered table. Amounts are
// fixed to two decimals so payouts line up as currency.
func RenderTable(projections []rates.Projection, amount decimal.Decimal) string {
	headers := []string{"Bank", "FD Type", "Term", "Payout Schedule", "Rate", "AER", "Final Payout"}

	rows := make([][]string, 0, len(projections))
	for _, p := range projections {
		aer := "-"
		if p.Quote.AER != nil {
			aer = fmt.Sprintf("%.2f%%", *p.Quote.AER)
		}

		rows = append(rows, []string{
			p.Quote.BankName,
			p.Quote.FDType.String(),
			formatTerm(p.Quote.TermMonths),
			p.Quote.PayoutSchedule.String(),
			fmt.Sprintf("%.2f%%", p.Quote.InterestRate),
			aer,
			decimal.NewFromFloat(p.FinalPayout).StringFixed(2),
		})
	}

	var b strings.Builder

	b.WriteString("\n  ")
	b.WriteString(headerStyle.Render(fmt.Sprintf("Fixed deposit payouts for %s", amount.StringFixed(2))))
	b.WriteString("\n")
	b.WriteString(renderGrid(headers, rows))

	return b.String()
}

func formatTerm(months int) string {
	if months%12 == 0 {
		years := months / 12
		if years == 1 {
			return "1 year"
		}
		return fmt.Sprintf("%d years", years)
	}

	return fmt.Sprintf("%d months", months)
}

func renderGrid(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder

	border := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < len(widths)-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	border("╭", "┬", "╮")

	b.WriteString(dimStyle.Render("│"))
	for i, h := range headers {
		b.WriteString(headerStyle.Render(fmt.Sprintf(" %-*s ", widths[i], h)))
		b.WriteString(dimStyle.Render("│"))
	}
	b.WriteString("\n")

	border("├", "┼", "┤")

	for _, row := range rows {
		b.WriteString(dimStyle.Render("│"))
		for i, cell := range row {
			padded := fmt.Sprintf(" %-*s ", widths[i], cell)
			if i == len(row)-1 {
				b.WriteString(payoutStyle.Render(padded))
			} else {
				b.WriteString(padded)
			}
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
	}

	border("╰", "┴", "╯")

	return b.String()
}
