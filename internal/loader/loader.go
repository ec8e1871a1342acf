// Package loader reads the transactions data file and materializes the
// in-memory collection the query engine runs over.
package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/abdulrehman888/Transactions-app/internal/common"
	"github.com/abdulrehman888/Transactions-app/internal/config"
	"github.com/abdulrehman888/Transactions-app/internal/model"
)

// Parser implements strict parsing of the transactions JSON file.
type Parser struct{}

// NewParser creates a new transactions parser.
func NewParser() *Parser {
	return &Parser{}
}

// rawTransaction mirrors the file schema with pointer fields for everything
// the schema marks required, so a missing field is distinguishable from a
// zero value. Unknown fields are ignored.
type rawTransaction struct {
	Amount              *float64 `json:"amount"`
	SenderFullName      *string  `json:"senderFullName"`
	BeneficiaryFullName *string  `json:"beneficiaryFullName"`
	IssueID             *int64   `json:"issueId"`
	IssueMessage        *string  `json:"issueMessage"`
	IssueSolved         bool     `json:"issueSolved"`
}

// ParseFile parses a top-level JSON array of transaction records.
// Parsing is all-or-nothing: a malformed document or any record missing a
// required field fails the whole file. There is no partial-success mode.
func (p *Parser) ParseFile(reader io.Reader) ([]model.Transaction, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read transactions file: %w", err)
	}

	var raw []rawTransaction
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse transactions file: %w", err)
	}

	transactions := make([]model.Transaction, 0, len(raw))
	for i, record := range raw {
		tx, err := p.convertTransaction(record)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		transactions = append(transactions, tx)
	}

	return transactions, nil
}

// convertTransaction validates a raw record and converts it to the domain model.
func (p *Parser) convertTransaction(record rawTransaction) (model.Transaction, error) {
	if record.Amount == nil {
		return model.Transaction{}, fmt.Errorf("%w: missing amount", common.ErrInvalidRecord)
	}
	if record.SenderFullName == nil {
		return model.Transaction{}, fmt.Errorf("%w: missing senderFullName", common.ErrInvalidRecord)
	}
	if record.BeneficiaryFullName == nil {
		return model.Transaction{}, fmt.Errorf("%w: missing beneficiaryFullName", common.ErrInvalidRecord)
	}

	tx := model.Transaction{
		Amount:              *record.Amount,
		SenderFullName:      *record.SenderFullName,
		BeneficiaryFullName: *record.BeneficiaryFullName,
		IssueID:             record.IssueID,
		IssueSolved:         record.IssueSolved,
		IssueMessage:        record.IssueMessage,
	}

	if err := tx.Validate(); err != nil {
		return model.Transaction{}, fmt.Errorf("%w: %v", common.ErrInvalidRecord, err)
	}

	return tx, nil
}

// Load reads and parses the transactions file at path.
// Any I/O or parse failure is reported through the logger and degrades to an
// empty collection, so construction never fails.
func (p *Parser) Load(path string) []model.Transaction {
	path = config.ExpandPath(path)

	f, err := os.Open(path)
	if err != nil {
		common.LogError(err, "Failed to open transactions file", common.Fields{
			"file": path,
		})
		return nil
	}
	defer f.Close()

	transactions, err := p.ParseFile(f)
	if err != nil {
		common.LogError(err, "Failed to load transactions from file", common.Fields{
			"file": path,
		})
		return nil
	}

	common.LogInfo("Loaded transactions", common.Fields{
		"file":  path,
		"count": len(transactions),
	})

	return transactions
}
