package usecase

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/arpitgupta2712/BankTransact/internal/domain"
	"github.com/arpitgupta2712/BankTransact/internal/normalize"
)

// referenceKeyNarrationLen is how much of the narration becomes the grouping
// key when no structured reference number is available. Narration-derived
// keys are weaker identity signals than cheque/UTR numbers, but they
// guarantee every transaction gets some grouping key.
const referenceKeyNarrationLen = 100

// DefaultMarkerPhrases flags statement-section rows (opening/closing balance
// lines, running totals) that look like transactions but are not. Matched
// rows never reach the dedup or classification stages.
var DefaultMarkerPhrases = []string{
	"OPENING BALANCE",
	"CLOSING BALANCE",
	"TRANSACTION TOTAL",
}

// RecordBuilder assembles canonical Transactions from raw statement rows.
type RecordBuilder struct {
	markerPhrases []string
}

// NewRecordBuilder creates a builder. A nil or empty markerPhrases slice
// falls back to DefaultMarkerPhrases.
func NewRecordBuilder(markerPhrases []string) *RecordBuilder {
	if len(markerPhrases) == 0 {
		markerPhrases = DefaultMarkerPhrases
	}
	return &RecordBuilder{markerPhrases: markerPhrases}
}

// Build produces zero or one Transaction from a raw row. It returns nil for
// rows without a parseable date and for statement-section marker rows.
func (b *RecordBuilder) Build(row domain.RawRow, stmt *domain.Statement) *domain.Transaction {
	if b.isMarkerRow(row.Narration) {
		return nil
	}

	date := normalize.ParseDate(row.Date)
	if date == nil {
		return nil
	}

	tx := &domain.Transaction{
		AccountNumber: stmt.AccountNumber,
		Date:          *date,
		ValueDate:     normalize.ParseDate(row.ValueDate),
		Narration:     strings.TrimSpace(row.Narration),
		BalanceAfter:  normalize.ParseBalance(row.Balance),
		Class:         domain.ClassificationUnique,
		SourceFile:    stmt.SourceFile,
	}

	b.applyAmounts(tx, row)
	tx.Net = tx.NetAmount()
	tx.ReferenceKey = deriveReferenceKey(row.Reference, tx.Narration)

	return tx
}

// applyAmounts derives direction and the withdrawal/deposit split. An
// explicit DR/CR marker wins; otherwise the nonzero one of the two separate
// amount columns decides.
func (b *RecordBuilder) applyAmounts(tx *domain.Transaction, row domain.RawRow) {
	switch strings.ToUpper(strings.TrimSpace(row.DebitCredit)) {
	case "DR", "DEBIT":
		tx.Direction = domain.DirectionDebit
		tx.Amount = normalize.ParseAmount(row.Amount)
		tx.Withdrawal = tx.Amount
		tx.Deposit = decimal.Zero
		return
	case "CR", "CREDIT":
		tx.Direction = domain.DirectionCredit
		tx.Amount = normalize.ParseAmount(row.Amount)
		tx.Withdrawal = decimal.Zero
		tx.Deposit = tx.Amount
		return
	}

	withdrawal := normalize.ParseAmount(row.Withdrawal)
	deposit := normalize.ParseAmount(row.Deposit)
	if withdrawal.IsPositive() {
		tx.Direction = domain.DirectionDebit
		tx.Amount = withdrawal
		tx.Withdrawal = withdrawal
		tx.Deposit = decimal.Zero
	} else {
		tx.Direction = domain.DirectionCredit
		tx.Amount = deposit
		tx.Withdrawal = decimal.Zero
		tx.Deposit = deposit
	}
}

func (b *RecordBuilder) isMarkerRow(narration string) bool {
	upper := strings.ToUpper(narration)
	for _, phrase := range b.markerPhrases {
		if strings.Contains(upper, phrase) {
			return true
		}
	}
	return false
}

// deriveReferenceKey prefers a structured reference (cheque number, UTR)
// and falls back to a fixed-length narration prefix.
func deriveReferenceKey(reference, narration string) string {
	if ref := strings.TrimSpace(reference); ref != "" {
		return ref
	}
	if len(narration) > referenceKeyNarrationLen {
		return narration[:referenceKeyNarrationLen]
	}
	return narration
}
