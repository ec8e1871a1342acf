package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abdulrehman888/Transactions-app/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `[
  {
    "amount": 430.2,
    "senderFullName": "Tom Shelby",
    "beneficiaryFullName": "Alfie Solomons",
    "issueId": 1,
    "issueSolved": false,
    "issueMessage": "Looks like money laundering"
  },
  {
    "amount": 150.2,
    "senderFullName": "Tom Shelby",
    "beneficiaryFullName": "Arthur Shelby",
    "issueId": null,
    "issueSolved": true,
    "issueMessage": null
  }
]`

func TestParseFile(t *testing.T) {
	parser := NewParser()

	transactions, err := parser.ParseFile(strings.NewReader(sampleJSON))
	require.NoError(t, err)
	require.Len(t, transactions, 2)

	first := transactions[0]
	assert.InDelta(t, 430.2, first.Amount, 0.001)
	assert.Equal(t, "Tom Shelby", first.SenderFullName)
	assert.Equal(t, "Alfie Solomons", first.BeneficiaryFullName)
	require.NotNil(t, first.IssueID)
	assert.Equal(t, int64(1), *first.IssueID)
	assert.False(t, first.IssueSolved)
	require.NotNil(t, first.IssueMessage)
	assert.Equal(t, "Looks like money laundering", *first.IssueMessage)

	second := transactions[1]
	assert.Nil(t, second.IssueID, "null issueId stays absent")
	assert.True(t, second.IssueSolved)
	assert.Nil(t, second.IssueMessage, "null issueMessage stays absent")
}

func TestParseFileEmptyArray(t *testing.T) {
	transactions, err := NewParser().ParseFile(strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestParseFileIgnoresUnknownFields(t *testing.T) {
	doc := `[{"amount": 5, "senderFullName": "A", "beneficiaryFullName": "B",
		"issueSolved": true, "currency": "GBP", "branch": "Small Heath"}]`

	transactions, err := NewParser().ParseFile(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, transactions, 1)
}

func TestParseFileStrictness(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "malformed JSON",
			doc:  `[{"amount": 5,`,
		},
		{
			name: "top level object instead of array",
			doc:  `{"amount": 5}`,
		},
		{
			name: "missing amount",
			doc:  `[{"senderFullName": "A", "beneficiaryFullName": "B", "issueSolved": true}]`,
		},
		{
			name: "missing sender",
			doc:  `[{"amount": 5, "beneficiaryFullName": "B", "issueSolved": true}]`,
		},
		{
			name: "missing beneficiary",
			doc:  `[{"amount": 5, "senderFullName": "A", "issueSolved": true}]`,
		},
		{
			name: "negative amount",
			doc:  `[{"amount": -5, "senderFullName": "A", "beneficiaryFullName": "B", "issueSolved": true}]`,
		},
		{
			name: "one bad record fails the whole file",
			doc: `[
				{"amount": 5, "senderFullName": "A", "beneficiaryFullName": "B", "issueSolved": true},
				{"amount": 7, "beneficiaryFullName": "D", "issueSolved": false}
			]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transactions, err := NewParser().ParseFile(strings.NewReader(tt.doc))
			assert.Error(t, err)
			assert.Empty(t, transactions, "no partial-success mode")
		})
	}
}

func TestParseFileMissingFieldError(t *testing.T) {
	doc := `[{"amount": 5, "beneficiaryFullName": "B", "issueSolved": true}]`

	_, err := NewParser().ParseFile(strings.NewReader(doc))
	assert.ErrorIs(t, err, common.ErrInvalidRecord)
	assert.Contains(t, err.Error(), "senderFullName")
}

func TestLoad(t *testing.T) {
	t.Run("valid file loads", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "transactions.json")
		require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o600))

		transactions := NewParser().Load(path)
		assert.Len(t, transactions, 2)
	})

	t.Run("missing file degrades to empty", func(t *testing.T) {
		transactions := NewParser().Load(filepath.Join(t.TempDir(), "nope.json"))
		assert.Empty(t, transactions)
	})

	t.Run("malformed file degrades to empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "transactions.json")
		require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))

		transactions := NewParser().Load(path)
		assert.Empty(t, transactions)
	})
}
