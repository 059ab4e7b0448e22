package heroes

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"hero-catalog/core/reconcile"
	"hero-catalog/core/superhero"
	"hero-catalog/feature/heroes/models"
	"hero-catalog/feature/heroes/pipeline"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// refreshTimeout bounds a shared refresh, which outlives the caller that started it.
const refreshTimeout = 2 * time.Minute

// Service owns the canonical catalog and coordinates the remote source with the store.
type Service struct {
	source    superhero.Client
	store     Store
	catalog   *Catalog
	publisher string
	logger    *zap.Logger

	refreshes singleflight.Group

	// writeMu orders catalog replacement against favorite toggles.
	writeMu sync.Mutex

	pendingMu sync.Mutex
	pending   map[int]pendingSave
	seq       uint64
}

type pendingSave struct {
	hero models.Hero
	seq  uint64
}

// NewService creates a heroes service.
func NewService(source superhero.Client, store Store, publisher string, logger *zap.Logger) *Service {
	return &Service{
		source:    source,
		store:     store,
		catalog:   NewCatalog(),
		publisher: publisher,
		logger:    logger,
		pending:   make(map[int]pendingSave),
	}
}

// Catalog exposes the in-memory collection.
func (s *Service) Catalog() *Catalog {
	return s.catalog
}

// Refresh fetches the remote catalog, reconciles it with the store and replaces the
// in-memory collection. Concurrent calls share one fetch. On failure the previous
// collection is kept. A caller whose ctx ends stops waiting, but the shared refresh
// keeps running for the others.
func (s *Service) Refresh(ctx context.Context) (*models.RefreshReport, error) {
	ch := s.refreshes.DoChan("refresh", func() (any, error) {
		shared, cancel := context.WithTimeout(context.WithoutCancel(ctx), refreshTimeout)
		defer cancel()
		return s.refresh(shared)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		report := *res.Val.(*models.RefreshReport)
		return &report, nil
	}
}

func (s *Service) refresh(ctx context.Context) (*models.RefreshReport, error) {
	start := time.Now()

	s.flushPending(ctx)

	chars, err := s.source.FetchAll(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch heroes", zap.Error(err))
		return nil, err
	}

	kept := FilterPublisher(chars, s.publisher)
	fetched := FromCharacters(kept)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	adapter := newFavoriteAdapter(s.store, s.pendingHeroes())
	result := reconcile.Reconcile(ctx, fetched, adapter)
	for _, f := range result.Failures {
		s.logger.Warn("Favorite lookup failed", zap.Int("id", f.Key), zap.Error(f.Err))
	}
	if result.Summary.BatchFallback {
		s.logger.Debug("Batch favorite lookup failed, used per-id lookups", zap.String("adapter", result.Summary.Adapter))
	}

	s.catalog.Replace(result.Items)

	report := &models.RefreshReport{
		Fetched:       len(chars),
		Kept:          s.catalog.Len(),
		PendingSaves:  s.PendingCount(),
		RefreshedAt:   s.catalog.RefreshedAt(),
		ExecutionTime: time.Since(start).String(),
	}
	for _, h := range result.Items {
		if h.IsFavorite {
			report.Favorites++
		}
	}
	for _, f := range result.Failures {
		report.LookupErrors = append(report.LookupErrors, f.Error())
	}

	s.logger.Info("Catalog refreshed",
		zap.String("adapter", result.Summary.Adapter),
		zap.Int("fetched", report.Fetched),
		zap.Int("kept", report.Kept),
		zap.Int("favorites", report.Favorites),
		zap.Int("lookup_errors", len(report.LookupErrors)),
	)
	return report, nil
}

// List returns a filtered and sorted view of the catalog, loading it first if needed.
func (s *Service) List(ctx context.Context, opts pipeline.Options) ([]models.Hero, error) {
	if !s.catalog.Loaded() {
		if _, err := s.Refresh(ctx); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotLoaded, err)
		}
	}
	return pipeline.Apply(s.catalog.Snapshot(), opts), nil
}

// ToggleFavorite flips the favorite flag of id and saves it. The flip is kept in memory
// even when the save fails; the record is then queued and retried on the next refresh.
func (s *Service) ToggleFavorite(ctx context.Context, id int) (*models.ToggleResult, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	hero, inCatalog := s.catalog.Get(id)
	if !inCatalog {
		var err error
		hero, err = s.lookupOutsideCatalog(ctx, id)
		if err != nil {
			return nil, err
		}
	}

	toggled := hero.Toggled()
	if inCatalog {
		s.catalog.Update(toggled)
	}

	result := &models.ToggleResult{Hero: toggled, Persisted: true}
	if err := s.store.Upsert(ctx, toggled); err != nil {
		s.logger.Warn("Failed to save favorite, queued for retry",
			zap.Int("id", id), zap.Bool("is_favorite", toggled.IsFavorite), zap.Error(err))
		s.queuePending(toggled)
		result.Persisted = false
		result.SaveError = err.Error()
		return result, nil
	}

	s.clearPending(id)
	return result, nil
}

// Restore marks every hero in list favorite. Heroes present in the catalog keep their
// fetched fields; the others are saved as given. Failed saves are queued like toggles.
func (s *Service) Restore(ctx context.Context, list []models.Hero) (*models.RestoreResult, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	result := &models.RestoreResult{}
	for _, h := range list {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		hero := h.Clone()
		if current, ok := s.catalog.Get(h.ID); ok {
			hero = current
		}
		hero.IsFavorite = true
		s.catalog.Update(hero)

		if err := s.store.Upsert(ctx, hero); err != nil {
			s.logger.Warn("Failed to restore favorite, queued for retry", zap.Int("id", hero.ID), zap.Error(err))
			s.queuePending(hero)
			result.Pending++
			continue
		}
		s.clearPending(hero.ID)
		result.Restored++
	}
	return result, nil
}

// lookupOutsideCatalog finds a hero shown from the favorites view but absent from the
// fetched catalog. A store read failure counts as not found.
func (s *Service) lookupOutsideCatalog(ctx context.Context, id int) (models.Hero, error) {
	if h, ok := s.pendingHero(id); ok {
		return h, nil
	}

	stored, err := s.store.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrHeroNotFound) {
			s.logger.Warn("Store lookup failed", zap.Int("id", id), zap.Error(err))
		}
		return models.Hero{}, ErrHeroNotFound
	}
	return *stored, nil
}

// Favorites returns the stored favorites with unsaved toggles applied.
func (s *Service) Favorites(ctx context.Context) ([]models.Hero, error) {
	stored, err := s.store.GetFavorites(ctx)
	if err != nil {
		s.logger.Error("Failed to load favorites", zap.Error(err))
		return nil, err
	}

	pending := s.pendingHeroes()
	out := make([]models.Hero, 0, len(stored)+len(pending))
	seen := make(map[int]bool, len(stored))
	for _, h := range stored {
		seen[h.ID] = true
		if p, ok := pending[h.ID]; ok {
			if p.IsFavorite {
				out = append(out, p)
			}
			continue
		}
		out = append(out, h)
	}
	for id, p := range pending {
		if !seen[id] && p.IsFavorite {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(a, b models.Hero) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

// Detail assembles the detail view of id. The biography is fetched alongside the hero;
// its failure becomes a display message instead of an error.
func (s *Service) Detail(ctx context.Context, id int) (*models.HeroDetail, error) {
	var (
		hero   models.Hero
		bio    *superhero.Biography
		bioErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if h, ok := s.catalog.Get(id); ok {
			hero = h
			return nil
		}
		h, err := s.lookupOutsideCatalog(gctx, id)
		if err != nil {
			return err
		}
		hero = h
		return nil
	})
	g.Go(func() error {
		bio, bioErr = s.source.FetchBiography(gctx, id)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	detail := &models.HeroDetail{
		Hero:         hero,
		ShareSubject: ShareSubject(hero),
		ShareText:    ShareText(hero),
	}
	if bioErr != nil {
		s.logger.Warn("Failed to load biography", zap.Int("id", id), zap.Error(bioErr))
		detail.BiographyError = BiographyErrorText(bioErr)
	} else {
		detail.Biography = BiographyFromRemote(bio)
	}
	return detail, nil
}

// Biography returns the biography of id straight from the remote source.
func (s *Service) Biography(ctx context.Context, id int) (*models.Biography, error) {
	bio, err := s.source.FetchBiography(ctx, id)
	if err != nil {
		return nil, err
	}
	return BiographyFromRemote(bio), nil
}

// RetryPendingSaves writes every queued toggle to the store and returns how many remain.
func (s *Service) RetryPendingSaves(ctx context.Context) int {
	s.flushPending(ctx)
	return s.PendingCount()
}

// PendingCount returns the number of toggles not yet written to the store.
func (s *Service) PendingCount() int {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()
	return len(s.pending)
}

// ShareSubject is the subject line used when sharing a hero.
func ShareSubject(h models.Hero) string {
	return "Check out this hero: " + h.Name
}

// ShareText is the body used when sharing a hero.
func ShareText(h models.Hero) string {
	return ShareSubject(h) + "\n" + h.Description
}

// BiographyErrorText renders a biography failure for display.
func BiographyErrorText(err error) string {
	return "Error loading biography: " + err.Error()
}

// flushPending holds writeMu so no toggle can be saved between a queued write and its
// removal from the queue.
func (s *Service) flushPending(ctx context.Context) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.pendingMu.Lock()
	batch := make([]pendingSave, 0, len(s.pending))
	for _, p := range s.pending {
		batch = append(batch, p)
	}
	s.pendingMu.Unlock()

	for _, p := range batch {
		if err := s.store.Upsert(ctx, p.hero); err != nil {
			s.logger.Warn("Retrying favorite save failed", zap.Int("id", p.hero.ID), zap.Error(err))
			continue
		}

		s.pendingMu.Lock()
		if cur, ok := s.pending[p.hero.ID]; ok && cur.seq == p.seq {
			delete(s.pending, p.hero.ID)
		}
		s.pendingMu.Unlock()
	}
}

func (s *Service) queuePending(h models.Hero) {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()
	s.seq++
	s.pending[h.ID] = pendingSave{hero: h.Clone(), seq: s.seq}
}

func (s *Service) clearPending(id int) {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()
	delete(s.pending, id)
}

func (s *Service) pendingHero(id int) (models.Hero, bool) {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()
	p, ok := s.pending[id]
	return p.hero, ok
}

func (s *Service) pendingHeroes() map[int]models.Hero {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()
	out := make(map[int]models.Hero, len(s.pending))
	for id, p := range s.pending {
		out[id] = p.hero.Clone()
	}
	return out
}
