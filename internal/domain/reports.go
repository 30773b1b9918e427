package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNoTransactions is returned when no input rows survive extraction; the
// caller gets an explicit condition instead of an empty ledger.
var ErrNoTransactions = errors.New("no transactions to consolidate")

// VerificationStatus is the outcome of a balance replay check.
type VerificationStatus string

const (
	VerificationPassed VerificationStatus = "Passed"
	VerificationFailed VerificationStatus = "Failed"
	// VerificationIndeterminate means the statement's declared balances
	// could not be extracted, so the check degraded rather than failed.
	VerificationIndeterminate VerificationStatus = "Indeterminate"
)

// VerificationResult reports how the replayed ledger compares against the
// statement's declared opening and closing balances.
type VerificationResult struct {
	AccountNumber        string             `json:"account_number,omitempty"`
	Status               VerificationStatus `json:"status"`
	OpeningBalance       decimal.Decimal    `json:"opening_balance"`
	ClosingBalance       decimal.Decimal    `json:"closing_balance"`
	ComputedBalance      decimal.Decimal    `json:"computed_balance"`
	Difference           decimal.Decimal    `json:"difference"`
	DifferencePercentage decimal.Decimal    `json:"difference_percentage"`
	TotalIncome          decimal.Decimal    `json:"total_income"`
	TotalExpenses        decimal.Decimal    `json:"total_expenses"`
	Issues               []string           `json:"issues,omitempty"`
}

// ClassificationCounts summarizes how many transactions landed in each
// classification.
type ClassificationCounts struct {
	Unique       int `json:"unique"`
	InterAccount int `json:"inter_account"`
	Reversed     int `json:"reversed"`
}

// AccountSummary aggregates external (Unique-classified) activity for one
// account. Inter-account and reversed legs are excluded so the numbers
// reflect genuine external cash flow.
type AccountSummary struct {
	AccountNumber    string          `json:"account_number"`
	AccountName      string          `json:"account_name"`
	TransactionCount int             `json:"transaction_count"`
	ExternalIncome   decimal.Decimal `json:"external_income"`
	ExternalExpenses decimal.Decimal `json:"external_expenses"`
	ExternalNet      decimal.Decimal `json:"external_net"`
}

// Summary carries run-level processing counts.
type Summary struct {
	FilesProcessed        int    `json:"files_processed"`
	TransactionsExtracted int    `json:"transactions_extracted"`
	RowsSkipped           int    `json:"rows_skipped"`
	DuplicatesDropped     int    `json:"duplicates_dropped"`
	EarliestDate          string `json:"earliest_date,omitempty"`
	LatestDate            string `json:"latest_date,omitempty"`
	UniqueAccounts        int    `json:"unique_accounts"`
}

// ConsolidationReport is the top-level output of a consolidation run: the
// canonical ledger plus everything the summary renderer needs.
type ConsolidationReport struct {
	RunID               string               `json:"run_id"`
	GeneratedAt         string               `json:"generated_at"`
	Summary             Summary              `json:"summary"`
	Ledger              []*Transaction       `json:"ledger"`
	Classification      ClassificationCounts `json:"classification"`
	AccountSummaries    []AccountSummary     `json:"account_summaries"`
	Verifications       []VerificationResult `json:"verifications"`
	InterAccountVolume  decimal.Decimal      `json:"inter_account_volume"`
	ReversedVolume      decimal.Decimal      `json:"reversed_volume"`
	TotalExternalIncome decimal.Decimal      `json:"total_external_income"`
	TotalExternalExpenses decimal.Decimal    `json:"total_external_expenses"`
}
