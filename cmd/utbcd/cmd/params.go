package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewParamsCmd returns the command printing the effective parameters.
func NewParamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Print the effective system parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := loadParams(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "price_initial: %s\n", params.PriceInitial)
			fmt.Fprintf(out, "slope_ppm: %s\n", params.SlopePpm)
			fmt.Fprintf(out, "fee_xyk_ppm: %s\n", params.FeeXykPpm)
			fmt.Fprintf(out, "fee_router_ppm: %s\n", params.FeeRouterPpm)
			fmt.Fprintf(out, "min_swap_foreign: %s\n", params.MinSwapForeign)
			fmt.Fprintf(out, "min_initial_foreign: %s\n", params.MinInitialForeign)
			fmt.Fprintf(out, "shares.user_ppm: %s\n", params.Shares.UserPpm)
			fmt.Fprintf(out, "shares.pol_ppm: %s\n", params.Shares.PolPpm)
			fmt.Fprintf(out, "shares.treasury_ppm: %s\n", params.Shares.TreasuryPpm)
			fmt.Fprintf(out, "shares.team_ppm: %s\n", params.Shares.TeamPpm)
			return nil
		},
	}
}
