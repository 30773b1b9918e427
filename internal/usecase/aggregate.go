package usecase

import (
	"sort"

	"github.com/arpitgupta2712/BankTransact/internal/domain"
)

// UnknownAccountName is the display name for account numbers absent from
// the configured mapping. Never an error.
const UnknownAccountName = "Unknown"

// Aggregate finalizes the ledger: sort by (account, date) with missing
// dates last, assign 1-based serial numbers, recompute net amounts, and map
// account numbers to display names.
func Aggregate(transactions []*domain.Transaction, accountNames map[string]string) {
	sort.SliceStable(transactions, func(i, j int) bool {
		a, b := transactions[i], transactions[j]
		if a.AccountNumber != b.AccountNumber {
			return a.AccountNumber < b.AccountNumber
		}
		if a.Date.IsZero() != b.Date.IsZero() {
			return !a.Date.IsZero()
		}
		return a.Date.Before(b.Date)
	})

	for i, tx := range transactions {
		tx.SerialNo = i + 1
		tx.Net = tx.NetAmount()
		if name, ok := accountNames[tx.AccountNumber]; ok {
			tx.AccountName = name
		} else {
			tx.AccountName = UnknownAccountName
		}
	}
}
