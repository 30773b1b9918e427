package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/arpitgupta2712/BankTransact/internal/domain"
	"github.com/arpitgupta2712/BankTransact/internal/normalize"
)

// ledgerHeader is the consolidated CSV column order.
var ledgerHeader = []string{
	"serial_no",
	"account_name",
	"account_number",
	"date",
	"value_date",
	"narration",
	"reference_key",
	"direction",
	"classification",
	"withdrawal_amount",
	"deposit_amount",
	"net_amount",
	"balance_after",
	"party",
	"source_file",
}

// WriteLedgerCSV writes the consolidated ledger to w.
func WriteLedgerCSV(w io.Writer, ledger []*domain.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(ledgerHeader); err != nil {
		return fmt.Errorf("could not write ledger header: %w", err)
	}

	for _, tx := range ledger {
		valueDate := ""
		if tx.ValueDate != nil {
			valueDate = tx.ValueDate.Format(time.DateOnly)
		}
		record := []string{
			fmt.Sprintf("%d", tx.SerialNo),
			tx.AccountName,
			tx.AccountNumber,
			tx.Date.Format(time.DateOnly),
			valueDate,
			tx.Narration,
			tx.ReferenceKey,
			string(tx.Direction),
			string(tx.Class),
			normalize.FormatAmount(tx.Withdrawal),
			normalize.FormatAmount(tx.Deposit),
			normalize.FormatAmount(tx.Net),
			normalize.FormatAmount(tx.BalanceAfter),
			tx.Party,
			tx.SourceFile,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("could not write ledger row %d: %w", tx.SerialNo, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
