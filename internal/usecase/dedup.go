package usecase

import (
	"sort"

	"github.com/arpitgupta2712/BankTransact/internal/domain"
)

// Deduplicator drops transactions that appear in more than one statement
// file when exports cover overlapping periods. It is an explicit accumulator
// owned by one pipeline run; the seen-key set is never shared state.
type Deduplicator struct {
	builder *RecordBuilder
	seen    map[string]bool
}

// DedupResult is one file's contribution after deduplication.
type DedupResult struct {
	SourceFile   string
	Kept         []*domain.Transaction
	Dropped      int
	RowsSkipped  int
	CoverageDays int
}

func NewDeduplicator(builder *RecordBuilder) *Deduplicator {
	return &Deduplicator{
		builder: builder,
		seen:    make(map[string]bool),
	}
}

// Apply builds transactions from every statement and deduplicates them
// across files. Files are processed in coverage-priority order: longer
// declared periods first, ties broken by higher extracted row count, so the
// file assumed to be the authoritative source for a span wins and shorter
// overlapping re-exports only contribute rows the longer file missed.
func (d *Deduplicator) Apply(statements []domain.Statement) []DedupResult {
	ordered := make([]*domain.Statement, len(statements))
	for i := range statements {
		ordered[i] = &statements[i]
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		ci, cj := ordered[i].CoverageDays(), ordered[j].CoverageDays()
		if ci != cj {
			return ci > cj
		}
		return len(ordered[i].Rows) > len(ordered[j].Rows)
	})

	results := make([]DedupResult, 0, len(ordered))
	for _, stmt := range ordered {
		res := DedupResult{
			SourceFile:   stmt.SourceFile,
			CoverageDays: stmt.CoverageDays(),
		}
		for _, row := range stmt.Rows {
			tx := d.builder.Build(row, stmt)
			if tx == nil {
				res.RowsSkipped++
				continue
			}
			key := tx.DedupKey()
			if d.seen[key] {
				res.Dropped++
				continue
			}
			d.seen[key] = true
			res.Kept = append(res.Kept, tx)
		}
		results = append(results, res)
	}

	return results
}
