package usecase

import (
	"context"

	"github.com/arpitgupta2712/BankTransact/internal/domain"
)

// StatementRepository defines the interface for fetching raw statements.
// The usecase layer depends on this interface, not on a concrete per-bank
// reader.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go StatementRepository
type StatementRepository interface {
	GetStatements(ctx context.Context, paths []string) ([]domain.Statement, error)
}

// PartyExtractor attributes a counterparty name to a narration. An empty
// string means no party could be attributed; that is never an error.
type PartyExtractor interface {
	ExtractParty(narration string) string
}
