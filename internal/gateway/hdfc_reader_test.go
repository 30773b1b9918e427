package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/arpitgupta2712/BankTransact/internal/domain"
)

func TestHDFCStatementRepository_GetStatements(t *testing.T) {
	lines := []string{
		"HDFC BANK Ltd.",
		"MR JOHN EXAMPLE, Account No : 50100212345678",
		"Statement From : 01/04/2023 To : 30/06/2023",
		"Date,Narration,Chq./Ref.No.,Value Dt,Withdrawal Amt.,Deposit Amt.,Closing Balance",
		"05/04/2023,IMPS-507812345678-ACME TRADERS-HDFC,507812345678,05/04/2023,,\"12,000.00\",\"62,000.00\"",
		"18/04/2023,POS 416021XXXXXX GROCERY MART,0000416021,18/04/2023,\"3,450.75\",,\"58,549.25\"",
		"STATEMENT SUMMARY :-",
	}

	path := writeTempStatement(t, "hdfc_q1.csv", lines)

	repo := NewHDFCStatementRepository()
	statements, err := repo.GetStatements(context.Background(), []string{path})

	assert.NoError(t, err)
	if !assert.Len(t, statements, 1) {
		return
	}
	stmt := statements[0]

	assert.Equal(t, "50100212345678", stmt.AccountNumber)
	assert.Equal(t, "hdfc_q1.csv", stmt.SourceFile)

	if assert.NotNil(t, stmt.PeriodStart) {
		assert.Equal(t, time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC), *stmt.PeriodStart)
	}
	if assert.NotNil(t, stmt.PeriodEnd) {
		assert.Equal(t, time.Date(2023, time.June, 30, 0, 0, 0, 0, time.UTC), *stmt.PeriodEnd)
	}

	if assert.Len(t, stmt.Rows, 2) {
		assert.Equal(t, domain.RawRow{
			Date:       "05/04/2023",
			Narration:  "IMPS-507812345678-ACME TRADERS-HDFC",
			Reference:  "507812345678",
			ValueDate:  "05/04/2023",
			Withdrawal: "",
			Deposit:    "12,000.00",
			Balance:    "62,000.00",
		}, stmt.Rows[0])
		assert.Equal(t, "3,450.75", stmt.Rows[1].Withdrawal)
	}

	// No declared balances in the export, so they are derived from the
	// running-balance column: 62,000 minus the 12,000 deposit for opening,
	// last row's balance for closing.
	if assert.NotNil(t, stmt.OpeningBalance) {
		assert.True(t, stmt.OpeningBalance.Equal(decimal.RequireFromString("50000.00")),
			"opening = %s", stmt.OpeningBalance)
	}
	if assert.NotNil(t, stmt.ClosingBalance) {
		assert.True(t, stmt.ClosingBalance.Equal(decimal.RequireFromString("58549.25")),
			"closing = %s", stmt.ClosingBalance)
	}
}

func TestHDFCStatementRepository_DeriveOpeningUndoesWithdrawal(t *testing.T) {
	lines := []string{
		"Account No : 50100212349999",
		"Statement From : 01/05/2023 To : 31/05/2023",
		"Date,Narration,Chq./Ref.No.,Value Dt,Withdrawal Amt.,Deposit Amt.,Closing Balance",
		"02/05/2023,ATM WITHDRAWAL,ATW123,02/05/2023,\"2,000.00\",,\"8,000.00\"",
	}

	path := writeTempStatement(t, "hdfc_single.csv", lines)

	repo := NewHDFCStatementRepository()
	statements, err := repo.GetStatements(context.Background(), []string{path})

	assert.NoError(t, err)
	if assert.Len(t, statements, 1) {
		stmt := statements[0]
		if assert.NotNil(t, stmt.OpeningBalance) {
			assert.True(t, stmt.OpeningBalance.Equal(decimal.RequireFromString("10000.00")),
				"opening = %s", stmt.OpeningBalance)
		}
		if assert.NotNil(t, stmt.ClosingBalance) {
			assert.True(t, stmt.ClosingBalance.Equal(decimal.RequireFromString("8000.00")))
		}
	}
}

func TestHDFCStatementRepository_EmptyTable(t *testing.T) {
	lines := []string{
		"Account No : 50100212340000",
		"Statement From : 01/05/2023 To : 31/05/2023",
		"Date,Narration,Chq./Ref.No.,Value Dt,Withdrawal Amt.,Deposit Amt.,Closing Balance",
	}

	path := writeTempStatement(t, "hdfc_empty.csv", lines)

	repo := NewHDFCStatementRepository()
	statements, err := repo.GetStatements(context.Background(), []string{path})

	assert.NoError(t, err)
	if assert.Len(t, statements, 1) {
		assert.Empty(t, statements[0].Rows)
		assert.Nil(t, statements[0].OpeningBalance)
		assert.Nil(t, statements[0].ClosingBalance)
	}
}

func TestHDFCStatementRepository_Errors(t *testing.T) {
	repo := NewHDFCStatementRepository()
	ctx := context.Background()

	t.Run("file not found", func(t *testing.T) {
		got, err := repo.GetStatements(ctx, []string{"nonexistent_file.csv"})
		assert.Error(t, err)
		assert.Nil(t, got)
	})

	t.Run("no header row", func(t *testing.T) {
		path := writeTempStatement(t, "hdfc_headerless.csv", []string{
			"Account No : 50100212341234",
			"just some text",
		})

		got, err := repo.GetStatements(ctx, []string{path})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no transaction header row")
		assert.Nil(t, got)
	})
}
