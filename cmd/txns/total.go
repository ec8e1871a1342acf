package main

import (
	"fmt"

	"github.com/abdulrehman888/Transactions-app/internal/cli"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func totalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "total",
		Short: "Show the total transaction amount",
		Long: `Sum the amounts of all loaded transactions.

With --sender, only transactions sent by that client are summed. A sender
with no transactions sums to zero.`,
		RunE: runTotal,
	}

	cmd.Flags().StringP("sender", "s", "", "Only sum transactions sent by this client")
	_ = viper.BindPFlag("total.sender", cmd.Flags().Lookup("sender"))

	return cmd
}

func runTotal(_ *cobra.Command, _ []string) error {
	f := loadFetcher()
	sender := viper.GetString("total.sender")

	if sender != "" {
		fmt.Printf("Total sent by %s: %s\n", sender, cli.FormatAmount(f.TotalAmountSentBy(sender)))
		return nil
	}

	fmt.Printf("Total amount: %s\n", cli.FormatAmount(f.TotalAmount()))
	return nil
}
