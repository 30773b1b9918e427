package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Direction defines whether the transaction amount is a withdrawal or a deposit.
type Direction string

const (
	DirectionDebit  Direction = "DEBIT"
	DirectionCredit Direction = "CREDIT"
)

// Classification labels a transaction after reference-group analysis.
// Every transaction ends up in exactly one of these three states.
type Classification string

const (
	// ClassificationUnique marks an ordinary external transaction.
	ClassificationUnique Classification = "Unique"
	// ClassificationInterAccount marks one leg of a transfer between two
	// accounts covered by the same consolidated ledger.
	ClassificationInterAccount Classification = "InterAccount"
	// ClassificationReversed marks a transaction whose effect is cancelled
	// by another transaction in the same account and reference group.
	ClassificationReversed Classification = "Reversed"
)

// DedupNarrationPrefixLen is the number of narration characters that take
// part in the dedup identity key. Overlapping exports of the same statement
// period sometimes truncate narrations differently, so the identity key only
// looks at a stable prefix.
const DedupNarrationPrefixLen = 50

// Transaction is the canonical record produced by the record builder.
// Amounts are non-negative magnitudes; Direction tells which side of the
// ledger they land on.
type Transaction struct {
	SerialNo      int             `json:"serial_no"`
	AccountName   string          `json:"account_name"`
	AccountNumber string          `json:"account_number"`
	Date          time.Time       `json:"date"`
	ValueDate     *time.Time      `json:"value_date,omitempty"`
	Narration     string          `json:"narration"`
	ReferenceKey  string          `json:"reference_key"`
	Direction     Direction       `json:"direction"`
	Amount        decimal.Decimal `json:"amount"`
	Withdrawal    decimal.Decimal `json:"withdrawal_amount"`
	Deposit       decimal.Decimal `json:"deposit_amount"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
	Net           decimal.Decimal `json:"net_amount"`
	Class         Classification  `json:"classification"`
	Party         string          `json:"party,omitempty"`
	SourceFile    string          `json:"source_file"`
}

// NetAmount is deposit minus withdrawal.
func (t *Transaction) NetAmount() decimal.Decimal {
	return t.Deposit.Sub(t.Withdrawal)
}

// DedupKey is the composite identity used by the cross-file deduplicator.
// Two rows with the same key are the same physical transaction appearing in
// overlapping exports.
func (t *Transaction) DedupKey() string {
	narration := t.Narration
	if len(narration) > DedupNarrationPrefixLen {
		narration = narration[:DedupNarrationPrefixLen]
	}
	return fmt.Sprintf("%s|%s|%s|%s|%s",
		t.Date.Format(time.DateOnly),
		narration,
		t.Amount.String(),
		t.Direction,
		t.ReferenceKey,
	)
}

// IsIncome reports whether the transaction deposits money into the account.
func (t *Transaction) IsIncome() bool {
	return t.Direction == DirectionCredit
}
