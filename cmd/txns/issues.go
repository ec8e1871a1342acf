package main

import (
	"fmt"

	"github.com/abdulrehman888/Transactions-app/internal/cli"

	"github.com/spf13/cobra"
)

func issuesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issues",
		Short: "Inspect compliance issues",
		Long: `Inspect the compliance issues attached to the loaded transactions.

Subcommands list the open issue ids, the messages of solved issues, and
check whether a specific client has any open issue.`,
	}

	cmd.AddCommand(issuesOpenCmd())
	cmd.AddCommand(issuesSolvedCmd())
	cmd.AddCommand(issuesCheckCmd())

	return cmd
}

func issuesOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open",
		Short: "List the ids of all open compliance issues",
		RunE: func(_ *cobra.Command, _ []string) error {
			f := loadFetcher()

			ids := f.UnsolvedIssueIDs()
			if len(ids) == 0 {
				fmt.Println(cli.FormatSuccess("No open compliance issues"))
				return nil
			}

			fmt.Println(cli.FormatWarning(fmt.Sprintf("%d open compliance issue(s):", len(ids))))
			for _, id := range ids {
				fmt.Printf("  %s #%d\n", cli.IssueIcon, id)
			}
			return nil
		},
	}
}

func issuesSolvedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solved",
		Short: "List the messages of all solved compliance issues",
		RunE: func(_ *cobra.Command, _ []string) error {
			f := loadFetcher()

			messages := f.SolvedIssueMessages()
			if len(messages) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No solved issue messages"))
				return nil
			}

			for _, msg := range messages {
				fmt.Printf("  %s %s\n", cli.SuccessIcon, msg)
			}
			return nil
		},
	}
}

func issuesCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <client>",
		Short: "Check whether a client has open compliance issues",
		Long: `Check whether the named client, as sender or beneficiary, is party to at
least one transaction whose compliance issue has not been solved. The name
must match exactly.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			f := loadFetcher()
			client := args[0]

			if f.HasOpenComplianceIssues(client) {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("%s has open compliance issues", client)))
			} else {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s has no open compliance issues", client)))
			}
			return nil
		},
	}
}
