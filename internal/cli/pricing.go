package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tessro/feedcast/internal/pricing"
)

var (
	pricingYearly  bool
	pricingMonthly bool
)

var pricingCmd = &cobra.Command{
	Use:   "pricing",
	Short: "Show the FeedCast plans",
	Long: `Show the plans and their prices. The billing period defaults to
pricing.billing in the config; --yearly and --monthly override it.`,
	Args: cobra.NoArgs,
	RunE: runPricing,
}

func init() {
	pricingCmd.Flags().BoolVarP(&pricingYearly, "yearly", "y", false, "show yearly prices")
	pricingCmd.Flags().BoolVarP(&pricingMonthly, "monthly", "m", false, "show monthly prices")
	pricingCmd.MarkFlagsMutuallyExclusive("yearly", "monthly")
	rootCmd.AddCommand(pricingCmd)
}

type planRow struct {
	Name     string   `json:"name"`
	Tagline  string   `json:"tagline"`
	Price    string   `json:"price"`
	Cents    int      `json:"cents"`
	Note     string   `json:"note,omitempty"`
	Features []string `json:"features"`
}

func runPricing(cmd *cobra.Command, args []string) error {
	billing, err := pricing.ParseBilling(cfg.Pricing.Billing)
	if err != nil {
		return err
	}
	switch {
	case pricingYearly:
		billing = pricing.Yearly
	case pricingMonthly:
		billing = pricing.Monthly
	}
	return writePricing(cmd.OutOrStdout(), billing, JSONOutput())
}

func writePricing(out io.Writer, billing pricing.Billing, asJSON bool) error {
	plans := pricing.Plans()
	rows := make([]planRow, len(plans))
	for i, p := range plans {
		rows[i] = planRow{
			Name:     p.Name,
			Tagline:  p.Tagline,
			Price:    pricing.Price(p, billing),
			Cents:    p.Cents(billing),
			Features: p.Features,
		}
		if billing == pricing.Yearly {
			rows[i].Note = pricing.YearlyNote(p)
		}
	}

	if asJSON {
		return writeJSON(out, map[string]any{
			"billing": billing.String(),
			"plans":   rows,
		})
	}

	table := NewTableWriter(out, "PLAN", "PRICE", "", "FEATURES")
	for _, r := range rows {
		table.Row(r.Name, r.Price, r.Note, strings.Join(r.Features, ", "))
	}
	table.Flush()
	fmt.Fprintf(out, "\nBilled %s. Run with --%s to compare.\n", billing, billing.Toggle())
	return nil
}
