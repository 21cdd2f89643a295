package store

import (
	"context"

	"github.com/AngelCh415/FUNNEL_GO/internal/models"
)

// LedgerCache holds the last fetched sales ledger. Load reports ok=false on a
// miss (never-filled, invalidated or expired).
type LedgerCache interface {
	Load(ctx context.Context) (rows []models.Transaction, ok bool, err error)
	Save(ctx context.Context, rows []models.Transaction) error
	Invalidate(ctx context.Context) error
}
