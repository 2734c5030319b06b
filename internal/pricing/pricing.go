// Package pricing holds the FeedCast plans and the monthly/yearly toggle.
package pricing

import (
	"fmt"
	"strings"
)

// Billing is the billing period shown on the pricing card.
type Billing int

const (
	Monthly Billing = iota
	Yearly
)

// String returns the billing name.
func (b Billing) String() string {
	if b == Yearly {
		return "yearly"
	}
	return "monthly"
}

// Toggle returns the other billing period.
func (b Billing) Toggle() Billing {
	if b == Yearly {
		return Monthly
	}
	return Yearly
}

// ParseBilling parses "monthly" or "yearly".
func ParseBilling(s string) (Billing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "monthly", "month":
		return Monthly, nil
	case "yearly", "year", "annual":
		return Yearly, nil
	default:
		return Monthly, fmt.Errorf("invalid billing %q (must be monthly or yearly)", s)
	}
}

// Plan is a subscription tier. Prices are in cents.
type Plan struct {
	Name     string   `json:"name"`
	Tagline  string   `json:"tagline"`
	Monthly  int      `json:"monthly"`
	Yearly   int      `json:"yearly"`
	Features []string `json:"features"`
}

// Plans returns the built-in tiers.
func Plans() []Plan {
	return []Plan{
		{
			Name:     "Listener",
			Tagline:  "Your daily briefing, free",
			Features: []string{"1 personalised feed", "Daily 5-minute episode", "Web player"},
		},
		{
			Name:     "Pro",
			Tagline:  "For the news-obsessed",
			Monthly:  900,
			Yearly:   9000,
			Features: []string{"Unlimited feeds", "Full-length episodes", "Offline downloads", "Segment skipping"},
		},
		{
			Name:     "Team",
			Tagline:  "Briefings for the whole crew",
			Monthly:  2900,
			Yearly:   29000,
			Features: []string{"Everything in Pro", "Shared team feeds", "Priority support"},
		},
	}
}

// Cents returns the plan price for the billing period.
func (p Plan) Cents(b Billing) int {
	if b == Yearly {
		return p.Yearly
	}
	return p.Monthly
}

// Price formats the plan price, e.g. "$9/mo" or "$90/yr".
func Price(p Plan, b Billing) string {
	cents := p.Cents(b)
	if cents == 0 {
		return "Free"
	}
	suffix := "/mo"
	if b == Yearly {
		suffix = "/yr"
	}
	return formatCents(cents) + suffix
}

// YearlyNote describes the saving of yearly over monthly billing, or ""
// when there is none.
func YearlyNote(p Plan) string {
	full := p.Monthly * 12
	if p.Yearly == 0 || full <= p.Yearly {
		return ""
	}
	saved := full - p.Yearly
	if saved%p.Monthly == 0 {
		months := saved / p.Monthly
		if months == 1 {
			return "1 month free"
		}
		return fmt.Sprintf("%d months free", months)
	}
	return "save " + formatCents(saved)
}

func formatCents(cents int) string {
	if cents%100 == 0 {
		return fmt.Sprintf("$%d", cents/100)
	}
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
