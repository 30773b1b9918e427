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

// AXIS statement exports are CSV files with a free-text preamble (customer
// name, account number, statement period, branch codes) followed by a
// header row and the transaction table. The reader only extracts fields;
// all normalization happens in the core.

var (
	axisAccountRe = regexp.MustCompile(`Statement of Account No - (\d+)`)
	axisPeriodRe  = regexp.MustCompile(`for the period \(From : (\d{2}/\d{2}/\d{4}) To : (\d{2}/\d{2}/\d{4})\)`)
)

// AXISStatementRepository implements the StatementRepository interface for
// AXIS CSV exports.
type AXISStatementRepository struct{}

// NewAXISStatementRepository creates a new repository instance.
func NewAXISStatementRepository() *AXISStatementRepository {
	return &AXISStatementRepository{}
}

// GetStatements reads and parses multiple AXIS statement CSV files.
func (r *AXISStatementRepository) GetStatements(ctx context.Context, paths []string) ([]domain.Statement, error) {
	statements := make([]domain.Statement, 0, len(paths))
	for _, path := range paths {
		stmt, err := r.readFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read AXIS statement %s: %w", path, err)
		}
		statements = append(statements, *stmt)
	}
	return statements, nil
}

func (r *AXISStatementRepository) readFile(path string) (*domain.Statement, error) {
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
		if m := axisAccountRe.FindStringSubmatch(line); m != nil {
			stmt.AccountNumber = m[1]
		}
		if m := axisPeriodRe.FindStringSubmatch(line); m != nil {
			stmt.PeriodStart = normalize.ParseDate(m[1])
			stmt.PeriodEnd = normalize.ParseDate(m[2])
		}
		if strings.Contains(line, "S.No") && strings.Contains(line, "Transaction Date") {
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
		if len(record) < 9 {
			continue
		}

		particulars := strings.TrimSpace(record[3])

		// The balance column of the opening/closing marker rows is the
		// statement's declared balance; the rows themselves stay in the
		// raw set for the builder's marker hook to drop.
		upper := strings.ToUpper(particulars)
		if strings.Contains(upper, "OPENING BALANCE") {
			b := normalize.ParseBalance(record[6])
			stmt.OpeningBalance = &b
		}
		if strings.Contains(upper, "CLOSING BALANCE") {
			b := normalize.ParseBalance(record[6])
			stmt.ClosingBalance = &b
		}

		stmt.Rows = append(stmt.Rows, domain.RawRow{
			Date:        strings.TrimSpace(record[1]),
			ValueDate:   strings.TrimSpace(record[2]),
			Narration:   particulars,
			Amount:      strings.TrimSpace(record[4]),
			DebitCredit: strings.TrimSpace(record[5]),
			Balance:     strings.TrimSpace(record[6]),
			Reference:   strings.TrimSpace(record[7]),
		})
	}

	return stmt, nil
}
