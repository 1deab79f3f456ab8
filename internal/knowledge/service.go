package knowledge

import (
	"context"

	"go.uber.org/zap"

	"github.com/miriam-legal/backend/internal/metrics"
	"github.com/miriam-legal/backend/internal/storage/models"
	"github.com/miriam-legal/backend/pkg/logger"
)

// SearchLimit caps how many entries a search returns. There is no
// pagination or ranking beyond this.
const SearchLimit = 50

type Store interface {
	CountKnowledgeEntries(ctx context.Context) (int64, error)
	InsertKnowledgeEntries(ctx context.Context, entries []models.KnowledgeEntry) error
	SearchKnowledge(ctx context.Context, query, category, language string, limit int) ([]models.KnowledgeEntry, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Search filters the knowledge base. All parameters are optional; an
// empty query with no filters returns the whole collection up to the
// cap.
func (s *Service) Search(ctx context.Context, query, category, language string) ([]models.KnowledgeEntry, error) {
	metrics.KnowledgeSearches.Inc()
	return s.store.SearchKnowledge(ctx, query, category, language, SearchLimit)
}

// Seed populates the knowledge collection with the reference set if it
// is empty. The emptiness check plus the datastore's unique title
// index make the seed idempotent across restarts and safe against
// concurrent startups.
func (s *Service) Seed(ctx context.Context) error {
	count, err := s.store.CountKnowledgeEntries(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Debug("Knowledge base already seeded", zap.Int64("entries", count))
		return nil
	}

	entries := SeedEntries()
	if err := s.store.InsertKnowledgeEntries(ctx, entries); err != nil {
		return err
	}

	logger.Info("Knowledge base seeded", zap.Int("entries", len(entries)))
	return nil
}
