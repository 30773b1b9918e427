package usecase

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/arpitgupta2712/BankTransact/internal/domain"
)

// VerificationTolerance is the allowed gap between the replayed closing
// balance and the statement's declared one. Looser than GroupingTolerance
// because a full replay aggregates many per-row roundings.
var VerificationTolerance = decimal.NewFromInt(1)

// Verify replays transactions chronologically against the declared opening
// balance and compares the result with the declared closing balance. It
// never fails the run: missing declared balances produce an Indeterminate
// result with an explicit issue list.
func Verify(transactions []*domain.Transaction, opening, closing *decimal.Decimal) domain.VerificationResult {
	result := domain.VerificationResult{}

	for _, tx := range transactions {
		result.TotalIncome = result.TotalIncome.Add(tx.Deposit)
		result.TotalExpenses = result.TotalExpenses.Add(tx.Withdrawal)
	}

	if opening == nil || closing == nil {
		result.Status = domain.VerificationIndeterminate
		result.Issues = append(result.Issues, "could not extract opening/closing balance")
		return result
	}

	// Chronological replay; same-day rows keep their original relative
	// order so reruns are deterministic.
	ordered := make([]*domain.Transaction, len(transactions))
	copy(ordered, transactions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	running := *opening
	for _, tx := range ordered {
		running = running.Add(tx.Net)
	}

	result.OpeningBalance = *opening
	result.ClosingBalance = *closing
	result.ComputedBalance = running
	result.Difference = running.Sub(*closing)

	if closing.IsZero() {
		result.DifferencePercentage = decimal.Zero
	} else {
		result.DifferencePercentage = result.Difference.Abs().
			Div(closing.Abs()).
			Mul(decimal.NewFromInt(100))
	}

	if result.Difference.Abs().LessThan(VerificationTolerance) {
		result.Status = domain.VerificationPassed
	} else {
		result.Status = domain.VerificationFailed
	}

	return result
}
