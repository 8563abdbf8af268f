package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/utbc-labs/utbc/x/utbc/keeper"
)

// NewQuoteCmd returns the command quoting both routes for a foreign amount.
func NewQuoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Quote both routes for a foreign amount on a fresh system",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := loadParams(cmd)
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

			k, err := keeper.NewKeeper(params, newLogger(), nil)
			if err != nil {
				return err
			}

			quote, err := k.QuoteBothRoutes(foreignIn)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "foreign_in: %s\n", foreignIn)
			fmt.Fprintf(out, "utbc_user_out: %s\n", quote.UtbcUserOut)
			fmt.Fprintf(out, "xyk_out: %s\n", quote.XykOut)
			return nil
		},
	}

	cmd.Flags().String(flagForeign, "1000", "foreign amount to quote, in whole tokens")

	return cmd
}
