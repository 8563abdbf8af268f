package cmd

import (
	"os"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/utbc-labs/utbc/x/utbc/types"
)

const flagConfig = "config"

// NewRootCmd returns the root command for utbcd.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "utbcd",
		Short: "UTBC token-economy simulator",
		Long: `utbcd drives a deterministic bonding-curve + AMM token economy:
quote both routes for a trade, inspect the effective parameters or run a
scripted trade sequence against a freshly constructed system.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String(flagConfig, "", "path to a YAML config file overriding the default parameters")

	rootCmd.AddCommand(
		NewRunCmd(),
		NewQuoteCmd(),
		NewParamsCmd(),
	)

	return rootCmd
}

// newLogger builds the CLI logger.
func newLogger() log.Logger {
	return log.NewLogger(os.Stderr)
}

// loadParams merges a config file (when given) onto the defaults and
// validates the result.
func loadParams(cmd *cobra.Command) (types.Params, error) {
	params := types.DefaultParams()

	path, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return params, err
	}
	if path == "" {
		return params, params.Validate()
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return params, types.ErrInvalidParams.Wrapf("reading config %s: %v", path, err)
	}

	for _, field := range []struct {
		key string
		dst *math.Int
	}{
		{"price_initial", &params.PriceInitial},
		{"slope_ppm", &params.SlopePpm},
		{"fee_xyk_ppm", &params.FeeXykPpm},
		{"fee_router_ppm", &params.FeeRouterPpm},
		{"min_swap_foreign", &params.MinSwapForeign},
		{"min_initial_foreign", &params.MinInitialForeign},
		{"shares.user_ppm", &params.Shares.UserPpm},
		{"shares.pol_ppm", &params.Shares.PolPpm},
		{"shares.treasury_ppm", &params.Shares.TreasuryPpm},
		{"shares.team_ppm", &params.Shares.TeamPpm},
	} {
		if !v.IsSet(field.key) {
			continue
		}
		parsed, ok := math.NewIntFromString(cast.ToString(v.Get(field.key)))
		if !ok {
			return params, types.ErrInvalidParams.Wrapf("config key %s is not an integer: %v", field.key, v.Get(field.key))
		}
		*field.dst = parsed
	}

	return params, params.Validate()
}

// parseTokens parses a whole-token amount into internal Precision units.
func parseTokens(s string) (math.Int, error) {
	n, ok := math.NewIntFromString(s)
	if !ok {
		return math.Int{}, types.ErrInvalidAmount.Wrapf("not an integer token amount: %q", s)
	}
	return n.Mul(types.Precision), nil
}
