package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tessro/feedcast/internal/pricing"
	"github.com/tessro/feedcast/internal/tui/styles"
)

// Pricing displays the plans with a monthly/yearly toggle.
type Pricing struct {
	billing pricing.Billing
	plans   []pricing.Plan
}

// NewPricing creates a pricing card starting on billing.
func NewPricing(billing pricing.Billing) *Pricing {
	return &Pricing{billing: billing, plans: pricing.Plans()}
}

// Toggle flips between monthly and yearly.
func (p *Pricing) Toggle() {
	p.billing = p.billing.Toggle()
}

// Billing returns the billing period being shown.
func (p *Pricing) Billing() pricing.Billing {
	return p.billing
}

// Render renders the pricing panel
func (p *Pricing) Render(width, height int, focused bool) string {
	title := styles.PanelTitle("Pricing", focused)

	monthly, yearly := styles.Dim, styles.Dim
	if p.billing == pricing.Yearly {
		yearly = styles.Highlight
	} else {
		monthly = styles.Highlight
	}
	toggle := monthly.Render("Monthly") + styles.Dim.Render(" / ") + yearly.Render("Yearly")

	lines := []string{title, "", toggle, ""}
	for _, plan := range p.plans {
		lines = append(lines,
			styles.Title.Render(plan.Name)+"  "+styles.Price.Render(pricing.Price(plan, p.billing)),
			styles.Muted.Render(truncate(plan.Tagline, width-2)))
		if p.billing == pricing.Yearly {
			if note := pricing.YearlyNote(plan); note != "" {
				lines = append(lines, styles.Playing.Render(note))
			}
		}
		lines = append(lines, "")
	}

	panel := styles.Panel(focused).
		Width(width).
		Height(height)

	return panel.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
