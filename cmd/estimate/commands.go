package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/socialdots/site/internal/pricing"
)

func newQuoteCmd() *cobra.Command {
	var (
		req     pricing.Request
		asJSON  bool
		catalog = pricing.DefaultCatalog()
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Estimate the price of a project",
		Example: `  estimate quote --service web-development --complexity 2 --weeks 8 --team 3
  estimate quote --service ai-concierge --complexity 2 --weeks 4 --team 4 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := catalog.Estimate(req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Service\t%s\n", result.Service.Name)
			fmt.Fprintf(w, "Base price\t%s\n", pricing.FormatPrice(int64(result.Service.BasePrice)))
			fmt.Fprintf(w, "Complexity (%s)\t×%.1f\n", result.Tier.Label, result.ComplexityMultiplier)
			fmt.Fprintf(w, "Timeline (%d weeks)\t×%.1f\n", req.TimelineWeeks, result.TimelineMultiplier)
			fmt.Fprintf(w, "Team (%d people)\t×%.1f\n", req.TeamSize, result.TeamMultiplier)
			fmt.Fprintf(w, "Service multiplier\t×%.1f\n", result.ServiceMultiplier)
			fmt.Fprintf(w, "Estimated total\t%s\n", pricing.FormatPrice(result.Total))
			return w.Flush()
		},
	}

	b := pricing.SliderBounds
	cmd.Flags().StringVarP(&req.ServiceID, "service", "s", "", "service identifier, see the services command")
	cmd.Flags().IntVarP(&req.Complexity, "complexity", "c", b.Complexity.Min, fmt.Sprintf("complexity level %d-%d", b.Complexity.Min, b.Complexity.Max))
	cmd.Flags().IntVarP(&req.TimelineWeeks, "weeks", "w", 8, fmt.Sprintf("delivery timeline in weeks (site offers %d-%d)", b.TimelineWeeks.Min, b.TimelineWeeks.Max))
	cmd.Flags().IntVarP(&req.TeamSize, "team", "t", b.TeamSize.Min, fmt.Sprintf("team size (site offers %d-%d)", b.TeamSize.Min, b.TeamSize.Max))
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("service")

	return cmd
}

func newServicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "services",
		Short: "List the service catalog and complexity tiers",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := pricing.DefaultCatalog()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

			fmt.Fprintln(w, "ID\tNAME\tBASE PRICE\tMULTIPLIER")
			for _, s := range catalog.Services() {
				fmt.Fprintf(w, "%s\t%s\t%s\t×%.1f\n", s.ID, s.Name, pricing.FormatPrice(int64(s.BasePrice)), s.Multiplier)
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, "LEVEL\tTIER\tMULTIPLIER\t")
			for _, t := range catalog.Tiers() {
				fmt.Fprintf(w, "%d\t%s\t×%.1f\t\n", t.Level, t.Label, t.Multiplier)
			}
			return w.Flush()
		},
	}
}
