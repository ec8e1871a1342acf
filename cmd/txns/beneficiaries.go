package main

import (
	"fmt"
	"sort"

	"github.com/abdulrehman888/Transactions-app/internal/cli"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func beneficiariesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "beneficiaries",
		Short: "Index transactions by beneficiary",
		Long: `Index the loaded transactions by beneficiary name.

The default index is last-write-wins: a beneficiary with several
transactions shows only the last one in file order. Pass --grouped to see
every transaction per beneficiary instead.`,
		RunE: runBeneficiaries,
	}

	cmd.Flags().BoolP("grouped", "g", false, "Show all transactions per beneficiary")
	_ = viper.BindPFlag("beneficiaries.grouped", cmd.Flags().Lookup("grouped"))

	return cmd
}

func runBeneficiaries(_ *cobra.Command, _ []string) error {
	f := loadFetcher()
	grouped := viper.GetBool("beneficiaries.grouped")

	if grouped {
		byBeneficiary := f.GroupedByBeneficiary()
		for _, name := range sortedKeys(byBeneficiary) {
			fmt.Println(cli.FormatTitle(name))
			for _, tx := range byBeneficiary[name] {
				fmt.Printf("  from %s  %s\n", tx.SenderFullName, cli.FormatAmount(tx.Amount))
			}
		}
		return nil
	}

	byBeneficiary := f.TransactionsByBeneficiary()
	for _, name := range sortedKeys(byBeneficiary) {
		tx := byBeneficiary[name]
		fmt.Printf("%s  from %s  %s\n",
			cli.LabelStyle.Render(name), tx.SenderFullName, cli.FormatAmount(tx.Amount))
	}
	return nil
}

// Map iteration order is random; sort names for stable output.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
