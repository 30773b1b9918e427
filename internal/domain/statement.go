package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawRow is one loosely-structured statement row as extracted by a per-bank
// gateway. All fields are raw strings except the ones the gateway can only
// represent positionally; the record builder owns all normalization.
type RawRow struct {
	Date        string `json:"date"`
	ValueDate   string `json:"value_date"`
	Narration   string `json:"narration"`
	Reference   string `json:"reference"`
	Amount      string `json:"amount"`
	DebitCredit string `json:"debit_credit"`
	Withdrawal  string `json:"withdrawal"`
	Deposit     string `json:"deposit"`
	Balance     string `json:"balance"`
}

// Statement is one source file's worth of raw rows plus whatever file-level
// metadata the export declares. Any metadata field may be absent.
type Statement struct {
	AccountNumber  string           `json:"account_number"`
	SourceFile     string           `json:"source_file"`
	PeriodStart    *time.Time       `json:"period_start,omitempty"`
	PeriodEnd      *time.Time       `json:"period_end,omitempty"`
	OpeningBalance *decimal.Decimal `json:"opening_balance,omitempty"`
	ClosingBalance *decimal.Decimal `json:"closing_balance,omitempty"`
	Rows           []RawRow         `json:"rows"`
}

// CoverageDays is the declared statement period length in days, or 0 when
// the export did not declare a period. Files without declared coverage sort
// last during deduplication.
func (s *Statement) CoverageDays() int {
	if s.PeriodStart == nil || s.PeriodEnd == nil {
		return 0
	}
	days := int(s.PeriodEnd.Sub(*s.PeriodStart).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
