package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"k8s.io/klog"

	"github.com/arpitgupta2712/BankTransact/internal/config"
	"github.com/arpitgupta2712/BankTransact/internal/domain"
	"github.com/arpitgupta2712/BankTransact/internal/gateway"
	"github.com/arpitgupta2712/BankTransact/internal/party"
	"github.com/arpitgupta2712/BankTransact/internal/report"
	"github.com/arpitgupta2712/BankTransact/internal/usecase"
)

func main() {
	statementsDir := flag.String("dir", "", "Directory containing bank statement CSV files (required)")
	bank := flag.String("bank", "axis", "Statement layout: axis or hdfc")
	configFile := flag.String("config", "", "Path to YAML config (account mapping, marker phrases)")
	outputFile := flag.String("output", "consolidated_statements.csv", "Path for the consolidated ledger CSV")
	summaryFile := flag.String("summary", "consolidation_summary.txt", "Path for the text summary")
	klog.InitFlags(nil)
	flag.Parse()

	if *statementsDir == "" {
		fmt.Println("Error: -dir is required.")
		flag.Usage()
		os.Exit(1)
	}

	paths, err := statementFiles(*statementsDir)
	if err != nil {
		klog.Fatalf("Could not list statement files: %v", err)
	}
	if len(paths) == 0 {
		klog.Fatalf("No CSV files found in %s", *statementsDir)
	}

	cfg, err := config.Read(*configFile)
	if err != nil {
		klog.Fatalf("Could not load config: %v", err)
	}

	// Wire the application: gateway (outermost), then the core usecase.
	var repo usecase.StatementRepository
	switch strings.ToLower(*bank) {
	case "axis":
		repo = gateway.NewAXISStatementRepository()
	case "hdfc":
		repo = gateway.NewHDFCStatementRepository()
	default:
		klog.Fatalf("Unknown bank layout %q (want axis or hdfc)", *bank)
	}

	uc := usecase.NewConsolidationUseCase(repo, party.NewExtractor(), cfg.AccountMapping, cfg.MarkerPhrases)

	rep, err := uc.Consolidate(context.Background(), paths)
	if err != nil {
		if errors.Is(err, domain.ErrNoTransactions) {
			klog.Fatalf("Nothing to consolidate: no valid transactions in %d files", len(paths))
		}
		klog.Fatalf("Consolidation failed: %v", err)
	}

	if err := writeLedger(*outputFile, rep); err != nil {
		klog.Fatalf("Could not write ledger: %v", err)
	}

	summary := report.RenderSummary(rep)
	if err := os.WriteFile(*summaryFile, []byte(summary), 0o644); err != nil {
		klog.Fatalf("Could not write summary: %v", err)
	}

	fmt.Print(summary)
	klog.Infof("Ledger written to %s, summary to %s", *outputFile, *summaryFile)
}

func statementFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func writeLedger(path string, rep *domain.ConsolidationReport) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.WriteLedgerCSV(f, rep.Ledger); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
