package main

import (
	"fmt"

	"github.com/abdulrehman888/Transactions-app/internal/cli"
	"github.com/abdulrehman888/Transactions-app/internal/common"

	"github.com/spf13/cobra"
)

func maxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "max",
		Short: "Show the highest transaction amount",
		RunE:  runMax,
	}
}

func runMax(_ *cobra.Command, _ []string) error {
	f := loadFetcher()

	max, err := f.MaxAmount()
	if err != nil {
		return common.NewUserError("cannot compute the maximum amount", err)
	}

	fmt.Printf("Max amount: %s\n", cli.FormatAmount(max))
	return nil
}
