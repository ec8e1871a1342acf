// Package fetcher implements the analytical queries over the in-memory
// transaction collection. Every operation is a pure read that recomputes its
// answer from the full collection; nothing here mutates the data set.
package fetcher

import (
	"sort"

	"github.com/abdulrehman888/Transactions-app/internal/common"
	"github.com/abdulrehman888/Transactions-app/internal/model"
)

// Fetcher answers analytical queries over a fixed transaction collection.
// The collection is copied at construction and never mutated afterwards, so a
// single Fetcher is safe for concurrent readers without locking.
type Fetcher struct {
	transactions []model.Transaction
}

// New creates a fetcher over a private copy of the given transactions.
// Input order is preserved; it determines result order for the order-sensitive
// queries and tie-breaking for the sort-based ones.
func New(transactions []model.Transaction) *Fetcher {
	owned := make([]model.Transaction, len(transactions))
	copy(owned, transactions)

	return &Fetcher{transactions: owned}
}

// Count returns the number of loaded transactions.
func (f *Fetcher) Count() int {
	return len(f.transactions)
}

// TotalAmount returns the sum of the amounts of all transactions.
// An empty collection sums to 0.
func (f *Fetcher) TotalAmount() float64 {
	var total float64
	for _, tx := range f.transactions {
		total += tx.Amount
	}
	return total
}

// TotalAmountSentBy returns the sum of the amounts of all transactions sent
// by the named client. A sender with no transactions sums to 0.
func (f *Fetcher) TotalAmountSentBy(senderFullName string) float64 {
	var total float64
	for _, tx := range f.transactions {
		if tx.SenderFullName == senderFullName {
			total += tx.Amount
		}
	}
	return total
}

// MaxAmount returns the highest transaction amount.
// An empty collection is a real failure, not a zero: common.ErrNoTransactions.
func (f *Fetcher) MaxAmount() (float64, error) {
	if len(f.transactions) == 0 {
		common.LogDebug("Max amount requested with no transactions loaded", nil)
		return 0, common.ErrNoTransactions
	}

	max := f.transactions[0].Amount
	for _, tx := range f.transactions[1:] {
		if tx.Amount > max {
			max = tx.Amount
		}
	}
	return max, nil
}

// CountUniqueClients counts the distinct clients that sent or received a
// transaction. A client appearing as sender, beneficiary, or both counts once.
func (f *Fetcher) CountUniqueClients() int {
	clients := make(map[string]struct{}, len(f.transactions)*2)
	for _, tx := range f.transactions {
		clients[tx.SenderFullName] = struct{}{}
		clients[tx.BeneficiaryFullName] = struct{}{}
	}
	return len(clients)
}

// HasOpenComplianceIssues reports whether the named client is party to at
// least one transaction whose compliance issue has not been solved.
// A client with no transactions at all has no open issues.
func (f *Fetcher) HasOpenComplianceIssues(clientFullName string) bool {
	for _, tx := range f.transactions {
		if tx.Involves(clientFullName) && !tx.IssueSolved {
			return true
		}
	}
	return false
}

// TransactionsByBeneficiary indexes transactions by beneficiary name.
// The index is last-write-wins: when a beneficiary received several
// transactions, only the last one in input order survives. Use
// GroupedByBeneficiary when every transaction matters.
func (f *Fetcher) TransactionsByBeneficiary() map[string]model.Transaction {
	byBeneficiary := make(map[string]model.Transaction, len(f.transactions))
	for _, tx := range f.transactions {
		byBeneficiary[tx.BeneficiaryFullName] = tx
	}
	return byBeneficiary
}

// GroupedByBeneficiary maps each beneficiary name to all of their
// transactions, in input order.
func (f *Fetcher) GroupedByBeneficiary() map[string][]model.Transaction {
	grouped := make(map[string][]model.Transaction)
	for _, tx := range f.transactions {
		grouped[tx.BeneficiaryFullName] = append(grouped[tx.BeneficiaryFullName], tx)
	}
	return grouped
}

// UnsolvedIssueIDs returns the distinct identifiers of all open compliance
// issues, in first-seen input order. Transactions without an issue are skipped.
func (f *Fetcher) UnsolvedIssueIDs() []int64 {
	seen := make(map[int64]struct{})
	var ids []int64
	for _, tx := range f.transactions {
		if tx.IssueSolved || !tx.HasIssue() {
			continue
		}
		if _, ok := seen[*tx.IssueID]; ok {
			continue
		}
		seen[*tx.IssueID] = struct{}{}
		ids = append(ids, *tx.IssueID)
	}
	return ids
}

// SolvedIssueMessages returns the messages of all solved compliance issues in
// input order. Records with no message are skipped rather than represented as
// empty strings.
func (f *Fetcher) SolvedIssueMessages() []string {
	var messages []string
	for _, tx := range f.transactions {
		if tx.IssueSolved && tx.IssueMessage != nil {
			messages = append(messages, *tx.IssueMessage)
		}
	}
	return messages
}

// Top3TransactionsByAmount returns the 3 transactions with the highest
// amounts, sorted descending; equal amounts keep their input order. Fewer than
// 3 loaded transactions is an all-or-nothing failure
// (common.ErrInsufficientData), never a shorter list.
func (f *Fetcher) Top3TransactionsByAmount() ([]model.Transaction, error) {
	const top = 3

	if len(f.transactions) < top {
		common.LogDebug("Top 3 requested with too few transactions", common.Fields{
			"count": len(f.transactions),
		})
		return nil, common.ErrInsufficientData
	}

	sorted := make([]model.Transaction, len(f.transactions))
	copy(sorted, f.transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount > sorted[j].Amount
	})

	return sorted[:top], nil
}

// TopSender returns the sender whose transactions sum to the greatest total
// amount. Ties go to the sender seen first in input order. The second return
// is false when no transactions are loaded.
func (f *Fetcher) TopSender() (string, bool) {
	if len(f.transactions) == 0 {
		return "", false
	}

	totals := make(map[string]float64, len(f.transactions))
	var order []string
	for _, tx := range f.transactions {
		if _, ok := totals[tx.SenderFullName]; !ok {
			order = append(order, tx.SenderFullName)
		}
		totals[tx.SenderFullName] += tx.Amount
	}

	// Single stable pass in first-seen order keeps the tie-break deterministic.
	topSender := order[0]
	for _, sender := range order[1:] {
		if totals[sender] > totals[topSender] {
			topSender = sender
		}
	}

	return topSender, true
}
