package main

import (
	"fmt"

	"github.com/abdulrehman888/Transactions-app/internal/cli"
	"github.com/abdulrehman888/Transactions-app/internal/common"

	"github.com/spf13/cobra"
)

func topCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the top transactions and the top sender",
	}

	cmd.AddCommand(topTransactionsCmd())
	cmd.AddCommand(topSenderCmd())

	return cmd
}

func topTransactionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transactions",
		Short: "Show the 3 transactions with the highest amounts",
		Long: `Show the 3 transactions with the highest amounts, sorted descending.
Equal amounts keep their original file order. Fewer than 3 loaded
transactions is an error rather than a shorter list.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			f := loadFetcher()

			top3, err := f.Top3TransactionsByAmount()
			if err != nil {
				return common.NewUserError("cannot compute the top 3 transactions", err)
			}

			fmt.Println(cli.FormatTitle("Top 3 transactions by amount"))
			for i, tx := range top3 {
				fmt.Printf("  %d. %s → %s  %s\n",
					i+1, tx.SenderFullName, tx.BeneficiaryFullName, cli.FormatAmount(tx.Amount))
			}
			return nil
		},
	}
}

func topSenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sender",
		Short: "Show the sender with the greatest total sent amount",
		RunE: func(_ *cobra.Command, _ []string) error {
			f := loadFetcher()

			sender, ok := f.TopSender()
			if !ok {
				fmt.Println(cli.SubtleStyle.Render("No transactions loaded, no top sender"))
				return nil
			}

			fmt.Printf("Top sender: %s (%s sent)\n", sender, cli.FormatAmount(f.TotalAmountSentBy(sender)))
			return nil
		},
	}
}
