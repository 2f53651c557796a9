package sync

import (
	"context"
	"sync"

	"icoltex-hub/feature/catalog"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service drives catalog syncs end-to-end: fetch raw items, unwrap, map,
// reconcile against the store, and report.
type Service struct {
	fetcher    Fetcher
	clients    *catalog.ClientStore
	products   *catalog.ProductStore
	categories *catalog.TaxonomyStore
	classes    *catalog.TaxonomyStore
	logger     *zap.Logger

	// The reconciler's lookup-then-write is not atomic, so two concurrent
	// runs over the same entity type could race into duplicate inserts.
	// One lock per entity type serializes them; different entity types may
	// still sync in parallel.
	locks map[EntityType]*sync.Mutex
}

// NewService creates a sync service over the given fetcher and database.
func NewService(fetcher Fetcher, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		fetcher:    fetcher,
		clients:    catalog.NewClientStore(db),
		products:   catalog.NewProductStore(db),
		categories: catalog.NewCategoryStore(db),
		classes:    catalog.NewClassStore(db),
		logger:     logger,
		locks: map[EntityType]*sync.Mutex{
			EntityClients:    {},
			EntityProducts:   {},
			EntityCategories: {},
			EntityClasses:    {},
		},
	}
}

// Configured reports whether the upstream API is reachable by configuration.
func (s *Service) Configured() bool {
	return s.fetcher.Configured()
}

// SyncClients reconciles the client catalog against the upstream feed.
func (s *Service) SyncClients(ctx context.Context) (*RunResult, error) {
	return s.run(ctx, EntityClients, &clientAdapter{store: s.clients})
}

// SyncProducts reconciles the product catalog against the upstream feed.
func (s *Service) SyncProducts(ctx context.Context) (*RunResult, error) {
	return s.run(ctx, EntityProducts, &productAdapter{store: s.products})
}

// SyncCategories reconciles the category taxonomy against the upstream feed.
func (s *Service) SyncCategories(ctx context.Context) (*RunResult, error) {
	return s.run(ctx, EntityCategories, newCategoryAdapter(s.categories))
}

// SyncClasses reconciles the class taxonomy against the upstream feed.
func (s *Service) SyncClasses(ctx context.Context) (*RunResult, error) {
	return s.run(ctx, EntityClasses, newClassAdapter(s.classes))
}

// run executes one sync. Configuration and fetch failures are fatal and
// return a nil result; everything after the fetch is per-record tolerant,
// so the caller always gets either an error or a complete result.
func (s *Service) run(ctx context.Context, entity EntityType, adapter Adapter) (*RunResult, error) {
	mu := s.locks[entity]
	mu.Lock()
	defer mu.Unlock()

	raw, err := s.fetcher.FetchRaw(ctx, entity)
	if err != nil {
		return nil, err
	}

	return reconcile(ctx, s.logger, raw, adapter), nil
}
