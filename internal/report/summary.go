// Package report renders the consolidated ledger and the human-readable
// run summary consumed by people auditing the consolidation.
package report

import (
	"fmt"
	"strings"

	"github.com/arpitgupta2712/BankTransact/internal/domain"
	"github.com/arpitgupta2712/BankTransact/internal/normalize"
)

const rule = "--------------------------------------------------------------------------------"

// RenderSummary produces the sectioned plain-text summary of a consolidation
// run.
func RenderSummary(rep *domain.ConsolidationReport) string {
	var b strings.Builder

	section := func(title string) {
		fmt.Fprintf(&b, "\n%s\n%s\n", title, rule)
	}

	fmt.Fprintf(&b, "BANK STATEMENT CONSOLIDATION SUMMARY\n%s\n", rule)
	fmt.Fprintf(&b, "Run ID:       %s\n", rep.RunID)
	fmt.Fprintf(&b, "Generated at: %s\n", rep.GeneratedAt)

	section("PROCESSING")
	fmt.Fprintf(&b, "Files processed:        %d\n", rep.Summary.FilesProcessed)
	fmt.Fprintf(&b, "Transactions extracted: %d\n", rep.Summary.TransactionsExtracted)
	fmt.Fprintf(&b, "Rows skipped:           %d\n", rep.Summary.RowsSkipped)
	fmt.Fprintf(&b, "Duplicates dropped:     %d\n", rep.Summary.DuplicatesDropped)
	fmt.Fprintf(&b, "Period covered:         %s to %s\n", rep.Summary.EarliestDate, rep.Summary.LatestDate)

	section("CLASSIFICATION")
	fmt.Fprintf(&b, "Unique (external):       %d\n", rep.Classification.Unique)
	fmt.Fprintf(&b, "Inter-account transfers: %d (volume %s)\n",
		rep.Classification.InterAccount, normalize.FormatAmount(rep.InterAccountVolume))
	fmt.Fprintf(&b, "Reversed/cancelled:      %d (volume %s)\n",
		rep.Classification.Reversed, normalize.FormatAmount(rep.ReversedVolume))

	section("EXTERNAL ACTIVITY BY ACCOUNT")
	fmt.Fprintf(&b, "%-16s | %-16s | %5s | %15s | %15s | %15s\n",
		"Account", "Number", "Txns", "Income", "Expenses", "Net")
	fmt.Fprintln(&b, rule)
	for _, acc := range rep.AccountSummaries {
		fmt.Fprintf(&b, "%-16s | %-16s | %5d | %15s | %15s | %15s\n",
			acc.AccountName, acc.AccountNumber, acc.TransactionCount,
			normalize.FormatAmount(acc.ExternalIncome),
			normalize.FormatAmount(acc.ExternalExpenses),
			normalize.FormatAmount(acc.ExternalNet))
	}
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "%-16s | %-16s | %5s | %15s | %15s | %15s\n",
		"TOTAL", "", "",
		normalize.FormatAmount(rep.TotalExternalIncome),
		normalize.FormatAmount(rep.TotalExternalExpenses),
		normalize.FormatAmount(rep.TotalExternalIncome.Sub(rep.TotalExternalExpenses)))

	section("BALANCE VERIFICATION")
	for _, v := range rep.Verifications {
		fmt.Fprintf(&b, "Account %s: %s", v.AccountNumber, v.Status)
		if v.Status == domain.VerificationIndeterminate {
			fmt.Fprintf(&b, " (%s)\n", strings.Join(v.Issues, "; "))
			continue
		}
		fmt.Fprintf(&b, " (declared %s, computed %s, difference %s)\n",
			normalize.FormatAmount(v.ClosingBalance),
			normalize.FormatAmount(v.ComputedBalance),
			normalize.FormatAmount(v.Difference))
	}

	fmt.Fprintf(&b, "\n%s\nEND OF SUMMARY\n", rule)

	return b.String()
}
