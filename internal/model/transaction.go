// Package model defines the core domain entities for the transaction reporting tool.
package model

import (
	"fmt"
)

// Transaction represents a single financial transfer between two named clients,
// with optional compliance-issue metadata attached by the upstream system.
type Transaction struct {
	IssueID             *int64  `json:"issueId"`
	IssueMessage        *string `json:"issueMessage"`
	SenderFullName      string  `json:"senderFullName"`
	BeneficiaryFullName string  `json:"beneficiaryFullName"`
	Amount              float64 `json:"amount"`
	IssueSolved         bool    `json:"issueSolved"`
}

// HasIssue reports whether a compliance issue is attached to the transaction.
func (t Transaction) HasIssue() bool {
	return t.IssueID != nil
}

// Involves reports whether the named client is the sender or the beneficiary.
// Matching is exact: no normalization or case-folding is applied to names.
func (t Transaction) Involves(client string) bool {
	return t.SenderFullName == client || t.BeneficiaryFullName == client
}

// Validate ensures the transaction carries the required fields.
// Issue metadata is optional and is never cross-validated against IssueSolved.
func (t Transaction) Validate() error {
	if t.SenderFullName == "" {
		return fmt.Errorf("sender full name is required")
	}

	if t.BeneficiaryFullName == "" {
		return fmt.Errorf("beneficiary full name is required")
	}

	if t.Amount < 0 {
		return fmt.Errorf("amount must not be negative, got %.2f", t.Amount)
	}

	return nil
}
