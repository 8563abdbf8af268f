package cmd

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/utbc-labs/utbc/x/utbc/keeper"
)

const (
	flagTrades      = "trades"
	flagForeign     = "foreign"
	flagSellBack    = "sell-back"
	flagMetricsPort = "metrics-port"
)

// NewRunCmd returns the command driving a scripted trade sequence.
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a scripted trade sequence against a fresh system",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := loadParams(cmd)
			if err != nil {
				return err
			}

			logger := newLogger()

			port, err := cmd.Flags().GetInt(flagMetricsPort)
			if err != nil {
				return err
			}
			var metrics *keeper.Metrics
			if port > 0 {
				metrics = keeper.NewMetrics()
				StartPrometheusServer(logger, port)
			}

			k, err := keeper.NewKeeper(params, logger, metrics)
			if err != nil {
				return err
			}

			trades, err := cmd.Flags().GetInt(flagTrades)
			if err != nil {
				return err
			}
			foreignStr, err := cmd.Flags().GetString(flagForeign)
			if err != nil {
				return err
			}
			foreignIn, err := parseTokens(foreignStr)
			if err != nil {
				return err
			}
			sellBack, err := cmd.Flags().GetBool(flagSellBack)
			if err != nil {
				return err
			}

			received := math.ZeroInt()
			for i := 0; i < trades; i++ {
				res, err := k.SwapForeignToNative(foreignIn, math.ZeroInt())
				if err != nil {
					logger.Error("trade failed", "index", i, "err", err)
					continue
				}
				received = received.Add(res.AmountOut)
				logger.Info("trade executed",
					"index", i,
					"route", res.Route,
					"foreign_in", res.AmountIn,
					"native_out", res.AmountOut,
					"price_after", res.PriceAfter,
				)
			}

			if sellBack && received.IsPositive() {
				res, err := k.SwapNativeToForeign(received, math.ZeroInt())
				if err != nil {
					logger.Error("sell-back failed", "err", err)
				} else {
					logger.Info("sell-back executed",
						"native_in", res.AmountIn,
						"foreign_out", res.AmountOut,
					)
				}
			}

			printStates(cmd, k)
			return nil
		},
	}

	cmd.Flags().Int(flagTrades, 10, "number of foreign-in trades to execute")
	cmd.Flags().String(flagForeign, "1000", "foreign amount per trade, in whole tokens")
	cmd.Flags().Bool(flagSellBack, false, "sell all received native back after the trades")
	cmd.Flags().Int(flagMetricsPort, 0, "serve prometheus metrics on this port (0 disables)")

	return cmd
}

func printStates(cmd *cobra.Command, k *keeper.Keeper) {
	pool := k.Pool().State()
	minter := k.Minter().State()
	pol := k.Pol().State()
	fees := k.FeeManager().State()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "pool: native=%s foreign=%s lp=%s\n", pool.ReserveNative, pool.ReserveForeign, pool.SupplyLp)
	fmt.Fprintf(out, "minter: supply=%s treasury=%s team=%s price=%s\n", minter.Supply, minter.Treasury, minter.Team, minter.Price)
	fmt.Fprintf(out, "pol: lp=%s native_buf=%s foreign_buf=%s\n", pol.BalanceLp, pol.BufferNative, pol.BufferForeign)
	fmt.Fprintf(out, "fees: foreign=%s native=%s burned=%s\n", fees.FeesForeign, fees.FeesNative, fees.TotalNativeBurned)
}
