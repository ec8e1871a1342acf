package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func clientsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clients",
		Short: "Count the unique clients",
		Long: `Count the distinct clients that sent or received a transaction.
A client appearing as sender, beneficiary, or both counts once.`,
		RunE: runClients,
	}
}

func runClients(_ *cobra.Command, _ []string) error {
	f := loadFetcher()

	fmt.Printf("Unique clients: %d\n", f.CountUniqueClients())
	return nil
}
