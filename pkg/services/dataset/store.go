package dataset

import (
	"context"
	"fmt"
	"sync"

	"github.com/de-tools/churn-atlas/pkg/adapters"
	"github.com/de-tools/churn-atlas/pkg/models/domain"
	"github.com/de-tools/churn-atlas/pkg/store/csvsource"
	"github.com/de-tools/churn-atlas/pkg/store/duckdb/customer"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Store owns the process-wide customer record cache. The first successful
// load publishes the collection; afterwards it is immutable and read without
// locking overhead until Invalidate. Concurrent first access is collapsed
// into a single underlying load.
type Store struct {
	durable customer.Store
	source  csvsource.Source

	group singleflight.Group

	mu      sync.RWMutex
	records []domain.CustomerRecord
}

func NewStore(durable customer.Store, source csvsource.Source) *Store {
	return &Store{
		durable: durable,
		source:  source,
	}
}

// Records returns the cached collection, loading it on first use. Fallback
// order: durable store first, then the bulk import source. A successful bulk
// import is written back to the durable store. Returns ErrDataUnavailable
// when every source is exhausted.
func (s *Store) Records(ctx context.Context) ([]domain.CustomerRecord, error) {
	s.mu.RLock()
	cached := s.records
	s.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	// The load itself runs outside the cache lock; singleflight guarantees
	// one execution with all concurrent callers sharing its outcome.
	v, err, _ := s.group.Do("records", func() (any, error) {
		s.mu.RLock()
		cached := s.records
		s.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		records, err := s.load(ctx)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.records = records
		s.mu.Unlock()
		return records, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.CustomerRecord), nil
}

// Invalidate drops the cache; the next Records call reloads from source.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.records = nil
	s.mu.Unlock()
}

func (s *Store) load(ctx context.Context) ([]domain.CustomerRecord, error) {
	logger := zerolog.Ctx(ctx)

	count, err := s.durable.Count(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("durable store unreachable, falling back to bulk import")
	} else if count > 0 {
		rows, err := s.durable.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("load customers from durable store: %w", err)
		}
		logger.Info().Int("records", len(rows)).Msg("loaded customer records from durable store")
		return adapters.MapStoreCustomersToDomain(rows), nil
	}

	rows, err := s.source.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: bulk import failed: %v", domain.ErrDataUnavailable, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: bulk source yielded zero records", domain.ErrDataUnavailable)
	}
	logger.Info().Int("records", len(rows)).Msg("loaded customer records from bulk source")

	// Upsert the imported rows so the next cold start hits the durable store.
	// Failures here degrade persistence, not the served collection.
	if err := s.durable.DeleteAll(ctx); err != nil {
		logger.Error().Err(err).Msg("failed to clear durable customer store")
	} else if err := s.durable.InsertMany(ctx, rows); err != nil {
		logger.Error().Err(err).Msg("failed to persist imported customer records")
	}

	return adapters.MapStoreCustomersToDomain(rows), nil
}
