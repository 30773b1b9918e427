package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"k8s.io/klog"

	"github.com/arpitgupta2712/BankTransact/internal/domain"
)

// ConsolidationUseCase orchestrates the full pipeline: read statements,
// build records, deduplicate across files, classify reference groups,
// aggregate the ledger, attribute parties to income, and verify balances
// per account.
type ConsolidationUseCase struct {
	repo         StatementRepository
	parties      PartyExtractor
	builder      *RecordBuilder
	accountNames map[string]string
}

// NewConsolidationUseCase creates a new instance of the usecase. parties may
// be nil when no counterparty attribution is wanted; accountNames may be nil
// (every account then displays as Unknown).
func NewConsolidationUseCase(repo StatementRepository, parties PartyExtractor, accountNames map[string]string, markerPhrases []string) *ConsolidationUseCase {
	return &ConsolidationUseCase{
		repo:         repo,
		parties:      parties,
		builder:      NewRecordBuilder(markerPhrases),
		accountNames: accountNames,
	}
}

// Consolidate runs the pipeline over the given statement files and returns
// the consolidated report. It returns domain.ErrNoTransactions when nothing
// survives extraction.
func (uc *ConsolidationUseCase) Consolidate(ctx context.Context, paths []string) (*domain.ConsolidationReport, error) {
	statements, err := uc.repo.GetStatements(ctx, paths)
	if err != nil {
		return nil, fmt.Errorf("could not get statements: %w", err)
	}

	klog.Infof("Processing %d statement files", len(statements))

	dedup := NewDeduplicator(uc.builder)
	results := dedup.Apply(statements)

	var ledger []*domain.Transaction
	summary := domain.Summary{FilesProcessed: len(statements)}
	for _, res := range results {
		ledger = append(ledger, res.Kept...)
		summary.DuplicatesDropped += res.Dropped
		summary.RowsSkipped += res.RowsSkipped
		klog.Infof("%s: kept %d transactions, dropped %d duplicates, skipped %d rows",
			res.SourceFile, len(res.Kept), res.Dropped, res.RowsSkipped)
	}

	if len(ledger) == 0 {
		return nil, domain.ErrNoTransactions
	}
	summary.TransactionsExtracted = len(ledger)

	Classify(ledger)
	Aggregate(ledger, uc.accountNames)
	uc.attributeParties(ledger)

	report := &domain.ConsolidationReport{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Summary:     summary,
		Ledger:      ledger,
	}

	uc.summarize(report)
	report.Verifications = uc.verifyAccounts(statements, ledger)

	klog.Infof("Consolidated %d transactions across %d accounts (%d unique, %d inter-account, %d reversed)",
		len(ledger), report.Summary.UniqueAccounts,
		report.Classification.Unique, report.Classification.InterAccount, report.Classification.Reversed)

	return report, nil
}

// attributeParties asks the party collaborator for a counterparty name on
// income transactions that represent real external cash flow.
func (uc *ConsolidationUseCase) attributeParties(ledger []*domain.Transaction) {
	if uc.parties == nil {
		return
	}
	for _, tx := range ledger {
		if tx.IsIncome() && tx.Class == domain.ClassificationUnique {
			tx.Party = uc.parties.ExtractParty(tx.Narration)
		}
	}
}

func (uc *ConsolidationUseCase) summarize(report *domain.ConsolidationReport) {
	accounts := make(map[string]*domain.AccountSummary)
	var accountOrder []string

	var earliest, latest time.Time
	two := decimal.NewFromInt(2)

	for _, tx := range report.Ledger {
		if earliest.IsZero() || tx.Date.Before(earliest) {
			earliest = tx.Date
		}
		if tx.Date.After(latest) {
			latest = tx.Date
		}

		acc, ok := accounts[tx.AccountNumber]
		if !ok {
			acc = &domain.AccountSummary{
				AccountNumber: tx.AccountNumber,
				AccountName:   tx.AccountName,
			}
			accounts[tx.AccountNumber] = acc
			accountOrder = append(accountOrder, tx.AccountNumber)
		}

		switch tx.Class {
		case domain.ClassificationUnique:
			report.Classification.Unique++
			acc.TransactionCount++
			if tx.IsIncome() {
				acc.ExternalIncome = acc.ExternalIncome.Add(tx.Deposit)
			} else {
				acc.ExternalExpenses = acc.ExternalExpenses.Add(tx.Withdrawal)
			}
		case domain.ClassificationInterAccount:
			report.Classification.InterAccount++
			report.InterAccountVolume = report.InterAccountVolume.Add(tx.Net.Abs())
		case domain.ClassificationReversed:
			report.Classification.Reversed++
			report.ReversedVolume = report.ReversedVolume.Add(tx.Net.Abs())
		}
	}

	// Each transfer and each reversal has two legs; volume counts the move
	// once.
	report.InterAccountVolume = report.InterAccountVolume.Div(two)
	report.ReversedVolume = report.ReversedVolume.Div(two)

	sort.Strings(accountOrder)
	for _, number := range accountOrder {
		acc := accounts[number]
		acc.ExternalNet = acc.ExternalIncome.Sub(acc.ExternalExpenses)
		report.AccountSummaries = append(report.AccountSummaries, *acc)
		report.TotalExternalIncome = report.TotalExternalIncome.Add(acc.ExternalIncome)
		report.TotalExternalExpenses = report.TotalExternalExpenses.Add(acc.ExternalExpenses)
	}

	report.Summary.UniqueAccounts = len(accounts)
	report.Summary.EarliestDate = earliest.Format(time.DateOnly)
	report.Summary.LatestDate = latest.Format(time.DateOnly)
}

// verifyAccounts replays each account's ledger against the declared
// balances of its statements: opening from the earliest-starting statement
// that declares one, closing from the latest-ending. A missing balance
// degrades to an Indeterminate result, never an error.
func (uc *ConsolidationUseCase) verifyAccounts(statements []domain.Statement, ledger []*domain.Transaction) []domain.VerificationResult {
	byAccount := make(map[string][]*domain.Transaction)
	var order []string
	for _, tx := range ledger {
		if _, ok := byAccount[tx.AccountNumber]; !ok {
			order = append(order, tx.AccountNumber)
		}
		byAccount[tx.AccountNumber] = append(byAccount[tx.AccountNumber], tx)
	}
	sort.Strings(order)

	var results []domain.VerificationResult
	for _, account := range order {
		opening, closing := declaredBalances(statements, account)
		res := Verify(byAccount[account], opening, closing)
		res.AccountNumber = account
		if res.Status == domain.VerificationFailed {
			klog.Warningf("Balance verification failed for account %s: difference %s", account, res.Difference.String())
		}
		results = append(results, res)
	}
	return results
}

func declaredBalances(statements []domain.Statement, account string) (opening, closing *decimal.Decimal) {
	var openStart, closeEnd *time.Time
	for i := range statements {
		stmt := &statements[i]
		if stmt.AccountNumber != account {
			continue
		}
		if stmt.OpeningBalance != nil {
			if opening == nil || (stmt.PeriodStart != nil && (openStart == nil || stmt.PeriodStart.Before(*openStart))) {
				opening = stmt.OpeningBalance
				openStart = stmt.PeriodStart
			}
		}
		if stmt.ClosingBalance != nil {
			if closing == nil || (stmt.PeriodEnd != nil && (closeEnd == nil || stmt.PeriodEnd.After(*closeEnd))) {
				closing = stmt.ClosingBalance
				closeEnd = stmt.PeriodEnd
			}
		}
	}
	return opening, closing
}
