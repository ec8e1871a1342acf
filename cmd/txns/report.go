package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abdulrehman888/Transactions-app/internal/cli"
	"github.com/abdulrehman888/Transactions-app/internal/common"

	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show the full analytical report",
		Long: `Run every query over the loaded transactions and render the combined
report: totals, maximum, unique clients, top sender, the top 3 transactions
and the compliance-issue overview.`,
		RunE: runReport,
	}
}

func runReport(_ *cobra.Command, _ []string) error {
	f := loadFetcher()

	var b strings.Builder

	b.WriteString(cli.FormatRow("Transactions", fmt.Sprintf("%d", f.Count())) + "\n")
	b.WriteString(cli.FormatRow("Total amount", cli.FormatAmount(f.TotalAmount())) + "\n")
	b.WriteString(cli.FormatRow("Unique clients", fmt.Sprintf("%d", f.CountUniqueClients())) + "\n")

	if max, err := f.MaxAmount(); err == nil {
		b.WriteString(cli.FormatRow("Max amount", cli.FormatAmount(max)) + "\n")
	} else {
		b.WriteString(cli.FormatRow("Max amount", cli.SubtleStyle.Render("n/a")) + "\n")
	}

	if sender, ok := f.TopSender(); ok {
		b.WriteString(cli.FormatRow("Top sender", sender) + "\n")
	} else {
		b.WriteString(cli.FormatRow("Top sender", cli.SubtleStyle.Render("n/a")) + "\n")
	}

	b.WriteString("\n" + cli.TitleStyle.UnsetMargins().Render(cli.ChartIcon+" Top 3 by amount") + "\n")
	top3, err := f.Top3TransactionsByAmount()
	switch {
	case err == nil:
		for i, tx := range top3 {
			b.WriteString(fmt.Sprintf("  %d. %s → %s  %s\n",
				i+1, tx.SenderFullName, tx.BeneficiaryFullName, cli.FormatAmount(tx.Amount)))
		}
	case errors.Is(err, common.ErrInsufficientData):
		b.WriteString(cli.SubtleStyle.Render("  fewer than 3 transactions loaded") + "\n")
	default:
		return err
	}

	b.WriteString("\n" + cli.TitleStyle.UnsetMargins().Render(cli.IssueIcon+" Compliance") + "\n")
	openIDs := f.UnsolvedIssueIDs()
	if len(openIDs) == 0 {
		b.WriteString("  " + cli.FormatSuccess("no open issues") + "\n")
	} else {
		b.WriteString(fmt.Sprintf("  %s\n", cli.FormatWarning(fmt.Sprintf("%d open issue(s): %v", len(openIDs), openIDs))))
	}
	b.WriteString(fmt.Sprintf("  %d solved issue message(s)\n", len(f.SolvedIssueMessages())))

	fmt.Println(cli.RenderBox(cli.LedgerIcon+" Transaction Report", strings.TrimRight(b.String(), "\n")))

	return nil
}
