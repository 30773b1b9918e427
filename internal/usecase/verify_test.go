package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/arpitgupta2712/BankTransact/internal/domain"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func verifyTx(day int, net string) *domain.Transaction {
	t := tx("111", "", net)
	t.Date = time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC)
	return t
}

func TestVerify_PassedWithinTolerance(t *testing.T) {
	// Net +500.00 against declared closing 10500.50: off by 0.50, inside
	// the one-unit tolerance.
	txs := []*domain.Transaction{
		verifyTx(1, "1500.00"),
		verifyTx(2, "-1000.00"),
	}

	result := Verify(txs, decPtr("10000.00"), decPtr("10500.50"))

	assert.Equal(t, domain.VerificationPassed, result.Status)
	assert.True(t, result.ComputedBalance.Equal(decimal.RequireFromString("10500.00")))
	assert.True(t, result.Difference.Equal(decimal.RequireFromString("-0.50")))
	assert.True(t, result.TotalIncome.Equal(decimal.RequireFromString("1500.00")))
	assert.True(t, result.TotalExpenses.Equal(decimal.RequireFromString("1000.00")))
	assert.Empty(t, result.Issues)
}

func TestVerify_FailedOutsideTolerance(t *testing.T) {
	txs := []*domain.Transaction{
		verifyTx(1, "1500.00"),
		verifyTx(2, "-1000.00"),
	}

	result := Verify(txs, decPtr("10000.00"), decPtr("10498.00"))

	assert.Equal(t, domain.VerificationFailed, result.Status)
	assert.True(t, result.Difference.Equal(decimal.RequireFromString("2.00")))
}

func TestVerify_ExactBoundaryFails(t *testing.T) {
	// |difference| == 1.0 is outside the strict less-than tolerance.
	txs := []*domain.Transaction{verifyTx(1, "500.00")}

	result := Verify(txs, decPtr("10000.00"), decPtr("10499.00"))

	assert.Equal(t, domain.VerificationFailed, result.Status)
	assert.True(t, result.Difference.Equal(decimal.NewFromInt(1)))
}

func TestVerify_MissingBalancesIndeterminate(t *testing.T) {
	txs := []*domain.Transaction{verifyTx(1, "500.00")}

	tests := []struct {
		name    string
		opening *decimal.Decimal
		closing *decimal.Decimal
	}{
		{name: "no opening", opening: nil, closing: decPtr("10500.00")},
		{name: "no closing", opening: decPtr("10000.00"), closing: nil},
		{name: "neither", opening: nil, closing: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Verify(txs, tt.opening, tt.closing)
			assert.Equal(t, domain.VerificationIndeterminate, result.Status)
			assert.Contains(t, result.Issues, "could not extract opening/closing balance")
			// Income/expense totals are still reported.
			assert.True(t, result.TotalIncome.Equal(decimal.RequireFromString("500.00")))
		})
	}
}

func TestVerify_ZeroClosingBalancePercentage(t *testing.T) {
	txs := []*domain.Transaction{verifyTx(1, "-10000.00")}

	result := Verify(txs, decPtr("10000.00"), decPtr("0.00"))

	assert.Equal(t, domain.VerificationPassed, result.Status)
	assert.True(t, result.DifferencePercentage.IsZero())
}

func TestVerify_DifferencePercentage(t *testing.T) {
	txs := []*domain.Transaction{verifyTx(1, "0.00")}

	result := Verify(txs, decPtr("110.00"), decPtr("100.00"))

	assert.Equal(t, domain.VerificationFailed, result.Status)
	assert.True(t, result.Difference.Equal(decimal.NewFromInt(10)))
	assert.True(t, result.DifferencePercentage.Equal(decimal.NewFromInt(10)))
}

func TestVerify_ReplayDeterministicAndInputOrderIndependentAcrossDays(t *testing.T) {
	a := []*domain.Transaction{
		verifyTx(1, "100.00"),
		verifyTx(2, "-40.00"),
		verifyTx(3, "15.00"),
	}
	b := []*domain.Transaction{a[2], a[0], a[1]}

	first := Verify(a, decPtr("1000.00"), decPtr("1075.00"))
	second := Verify(b, decPtr("1000.00"), decPtr("1075.00"))

	assert.True(t, first.ComputedBalance.Equal(second.ComputedBalance))
	assert.Equal(t, first.Status, second.Status)

	for i := 0; i < 3; i++ {
		again := Verify(a, decPtr("1000.00"), decPtr("1075.00"))
		assert.True(t, first.ComputedBalance.Equal(again.ComputedBalance))
	}
}

func TestVerify_DoesNotReorderInput(t *testing.T) {
	a := verifyTx(3, "10.00")
	b := verifyTx(1, "20.00")
	txs := []*domain.Transaction{a, b}

	Verify(txs, decPtr("0.00"), decPtr("30.00"))

	assert.Same(t, a, txs[0])
	assert.Same(t, b, txs[1])
}
