package gateway

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arpitgupta2712/BankTransact/internal/domain"
	"github.com/arpitgupta2712/BankTransact/internal/normalize"
)

// HDFC statement exports carry the account number and statement period in
// preamble lines, then a header row and the transaction table with separate
// withdrawal and deposit columns:
//
//	Date, Narration, Chq./Ref.No., Value Dt, Withdrawal Amt., Deposit Amt., Closing Balance
//
// When the export declares no opening/closing balance the reader derives
// them from the running-balance column of the first and last transaction
// rows.

var (
	hdfcAccountRe = regexp.MustCompile(`Account No\s*:\s*(\d+)`)
	hdfcPeriodRe  = regexp.MustCompile(`Statement From\s*:?\s*(\d{2}/\d{2}/\d{4})\s*To\s*:?\s*(\d{2}/\d{2}/\d{4})`)
)

// HDFCStatementRepository implements the StatementRepository interface for
// HDFC CSV exports.
type HDFCStatementRepository struct{}

// NewHDFCStatementRepository creates a new repository instance.
func NewHDFCStatementRepository() *HDFCStatementRepository {
	return &HDFCStatementRepository{}
}

// GetStatements reads and parses multiple HDFC statement CSV files.
func (r *HDFCStatementRepository) GetStatements(ctx context.Context, paths []string) ([]domain.Statement, error) {
	statements := make([]domain.Statement, 0, len(paths))
	for _, path := range paths {
		stmt, err := r.readFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read HDFC statement %s: %w", path, err)
		}
		statements = append(statements, *stmt)
	}
	return statements, nil
}

func (r *HDFCStatementRepository) readFile(path string) (*domain.Statement, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	stmt := &domain.Statement{SourceFile: filepath.Base(path)}

	headerRow := -1
	for i, line := range lines {
		if m := hdfcAccountRe.FindStringSubmatch(line); m != nil {
			stmt.AccountNumber = m[1]
		}
		if m := hdfcPeriodRe.FindStringSubmatch(line); m != nil {
			stmt.PeriodStart = normalize.ParseDate(m[1])
			stmt.PeriodEnd = normalize.ParseDate(m[2])
		}
		if strings.Contains(line, "Narration") && strings.Contains(line, "Date") {
			headerRow = i
			break
		}
	}
	if headerRow < 0 {
		return nil, fmt.Errorf("no transaction header row found")
	}

	reader := csv.NewReader(strings.NewReader(strings.Join(lines[headerRow+1:], "\n")))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record: %w", err)
		}
		if len(record) < 7 {
			continue
		}

		stmt.Rows = append(stmt.Rows, domain.RawRow{
			Date:       strings.TrimSpace(record[0]),
			Narration:  strings.TrimSpace(record[1]),
			Reference:  strings.TrimSpace(record[2]),
			ValueDate:  strings.TrimSpace(record[3]),
			Withdrawal: strings.TrimSpace(record[4]),
			Deposit:    strings.TrimSpace(record[5]),
			Balance:    strings.TrimSpace(record[6]),
		})
	}

	r.deriveBalances(stmt)

	return stmt, nil
}

// deriveBalances backfills the declared balances from the running-balance
// column when the export has no summary section: opening is the first row's
// balance with that row's movement undone, closing is the last row's
// balance.
func (r *HDFCStatementRepository) deriveBalances(stmt *domain.Statement) {
	if len(stmt.Rows) == 0 || (stmt.OpeningBalance != nil && stmt.ClosingBalance != nil) {
		return
	}

	first := stmt.Rows[0]
	last := stmt.Rows[len(stmt.Rows)-1]

	if stmt.OpeningBalance == nil {
		opening := normalize.ParseBalance(first.Balance).
			Sub(normalize.ParseAmount(first.Deposit)).
			Add(normalize.ParseAmount(first.Withdrawal))
		stmt.OpeningBalance = &opening
	}
	if stmt.ClosingBalance == nil {
		closing := normalize.ParseBalance(last.Balance)
		stmt.ClosingBalance = &closing
	}
}
