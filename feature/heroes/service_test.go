package heroes_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hero-catalog/core/superhero"
	"hero-catalog/core/superhero/mocks"
	"hero-catalog/feature/heroes"
	"hero-catalog/feature/heroes/models"
	"hero-catalog/feature/heroes/pipeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

// memoryStore is a Store whose reads and writes can be made to fail.
type memoryStore struct {
	mu        sync.Mutex
	rows      map[int]models.Hero
	failRead  map[int]error
	failBatch error
	failWrite error
	writes    int

	// hold, when set, parks the next Upsert until release is closed.
	hold    chan struct{}
	release chan struct{}
}

func newMemoryStore(rows ...models.Hero) *memoryStore {
	s := &memoryStore{rows: map[int]models.Hero{}, failRead: map[int]error{}}
	for _, h := range rows {
		s.rows[h.ID] = h
	}
	return s
}

func (s *memoryStore) GetByID(_ context.Context, id int) (*models.Hero, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failRead[id]; err != nil {
		return nil, err
	}
	h, ok := s.rows[id]
	if !ok {
		return nil, heroes.ErrHeroNotFound
	}
	return &h, nil
}

func (s *memoryStore) GetByIDs(_ context.Context, ids []int) (map[int]models.Hero, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failBatch != nil {
		return nil, s.failBatch
	}
	out := map[int]models.Hero{}
	for _, id := range ids {
		if h, ok := s.rows[id]; ok {
			out[id] = h
		}
	}
	return out, nil
}

func (s *memoryStore) GetAll(_ context.Context) ([]models.Hero, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Hero, 0, len(s.rows))
	for _, h := range s.rows {
		out = append(out, h)
	}
	return out, nil
}

func (s *memoryStore) GetFavorites(_ context.Context) ([]models.Hero, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Hero
	for _, h := range s.rows {
		if h.IsFavorite {
			out = append(out, h)
		}
	}
	return out, nil
}

func (s *memoryStore) Upsert(_ context.Context, h models.Hero) error {
	s.mu.Lock()
	hold, release := s.hold, s.release
	s.hold, s.release = nil, nil
	s.mu.Unlock()
	if hold != nil {
		close(hold)
		<-release
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrite != nil {
		return s.failWrite
	}
	s.writes++
	s.rows[h.ID] = h
	return nil
}

func (s *memoryStore) setFailWrite(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWrite = err
}

// holdNextWrite parks the next Upsert. The returned channel closes once the write is
// parked; closing release lets it finish.
func (s *memoryStore) holdNextWrite(release chan struct{}) <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hold = make(chan struct{})
	s.release = release
	return s.hold
}

func (s *memoryStore) row(id int) (models.Hero, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.rows[id]
	return h, ok
}

func character(id int, name, publisher string, intelligence, strength int) superhero.Character {
	return superhero.Character{
		ID:         id,
		Name:       name,
		PowerStats: superhero.PowerStats{Intelligence: intelligence, Strength: strength},
		Biography:  superhero.Biography{Publisher: publisher},
	}
}

func heroNames(list []models.Hero) []string {
	out := make([]string, len(list))
	for i, h := range list {
		out[i] = h.Name
	}
	return out
}

func TestService_ThorHulkScenario(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	ctx := context.Background()

	source := new(mocks.Client)
	source.On("FetchAll", mock.Anything).Return([]superhero.Character{
		character(659, "Thor", "Marvel Comics", 69, 100),
		character(332, "Hulk", "Marvel Comics", 10, 100),
		character(70, "Batman", "DC Comics", 100, 26),
	}, nil)

	store := newMemoryStore(models.Hero{ID: 332, Name: "Hulk", IsFavorite: true})
	svc := heroes.NewService(source, store, "Marvel Comics", zap.NewNop())

	report, err := svc.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Fetched)
	assert.Equal(t, 2, report.Kept)
	assert.Equal(t, 1, report.Favorites)

	list, err := svc.List(ctx, pipeline.Options{Sort: pipeline.SortStrength, Ascending: false})
	require.NoError(t, err)
	assert.Equal(t, []string{"Thor", "Hulk"}, heroNames(list))
	assert.False(t, list[0].IsFavorite)
	assert.True(t, list[1].IsFavorite)

	// Reconciling again against the unchanged store yields the same catalog.
	first := svc.Catalog().Snapshot()
	_, err = svc.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, svc.Catalog().Snapshot())

	// Refresh performs no writes.
	assert.Equal(t, 0, store.writes)
	source.AssertExpectations(t)
}

func TestService_FavoritePrecedence(t *testing.T) {
	ctx := context.Background()

	source := new(mocks.Client)
	source.On("FetchAll", mock.Anything).Return([]superhero.Character{
		character(42, "Captain America", "Marvel Comics", 69, 19),
		character(7, "Black Widow", "Marvel Comics", 75, 13),
	}, nil)

	store := newMemoryStore(
		models.Hero{ID: 42, Name: "Old Name", Description: "stale", IsFavorite: true},
		models.Hero{ID: 7, Name: "Black Widow", IsFavorite: false},
	)
	svc := heroes.NewService(source, store, "Marvel Comics", zap.NewNop())

	_, err := svc.Refresh(ctx)
	require.NoError(t, err)

	captain, ok := svc.Catalog().Get(42)
	require.True(t, ok)
	assert.True(t, captain.IsFavorite)
	assert.Equal(t, "Captain America", captain.Name)
	assert.Equal(t, "Intelligence: 69, Strength: 19", captain.Description)

	widow, ok := svc.Catalog().Get(7)
	require.True(t, ok)
	assert.False(t, widow.IsFavorite)
}

func TestService_LookupFailureDegrades(t *testing.T) {
	ctx := context.Background()

	source := new(mocks.Client)
	source.On("FetchAll", mock.Anything).Return([]superhero.Character{
		character(1, "Iron Man", "Marvel Comics", 100, 85),
		character(2, "Thor", "Marvel Comics", 69, 100),
	}, nil)

	store := newMemoryStore(
		models.Hero{ID: 1, IsFavorite: true},
		models.Hero{ID: 2, IsFavorite: true},
	)
	store.failBatch = errors.New("batch unavailable")
	store.failRead[1] = errors.New("row locked")

	svc := heroes.NewService(source, store, "Marvel Comics", zap.NewNop())

	report, err := svc.Refresh(ctx)
	require.NoError(t, err)
	require.Len(t, report.LookupErrors, 1)
	assert.Contains(t, report.LookupErrors[0], "row locked")

	list := svc.Catalog().Snapshot()
	require.Len(t, list, 2)
	assert.False(t, list[0].IsFavorite)
	assert.True(t, list[1].IsFavorite)
}

func TestService_FetchFailureKeepsCatalog(t *testing.T) {
	ctx := context.Background()

	source := new(mocks.Client)
	source.On("FetchAll", mock.Anything).Return([]superhero.Character{
		character(1, "Iron Man", "Marvel Comics", 100, 85),
	}, nil).Once()
	source.On("FetchAll", mock.Anything).Return(nil, errors.New("network down")).Once()

	svc := heroes.NewService(source, newMemoryStore(), "Marvel Comics", zap.NewNop())

	_, err := svc.Refresh(ctx)
	require.NoError(t, err)

	_, err = svc.Refresh(ctx)
	assert.EqualError(t, err, "network down")
	assert.Equal(t, []string{"Iron Man"}, heroNames(svc.Catalog().Snapshot()))
	source.AssertNumberOfCalls(t, "FetchAll", 2)
}

func TestService_ListLoadsLazily(t *testing.T) {
	ctx := context.Background()

	source := new(mocks.Client)
	source.On("FetchAll", mock.Anything).Return(nil, errors.New("network down")).Once()
	source.On("FetchAll", mock.Anything).Return([]superhero.Character{
		character(1, "Iron Man", "Marvel Comics", 100, 85),
		character(2, "Iron Fist", "Marvel Comics", 63, 32),
		character(3, "Thor", "Marvel Comics", 69, 100),
	}, nil).Once()

	svc := heroes.NewService(source, newMemoryStore(), "Marvel Comics", zap.NewNop())

	_, err := svc.List(ctx, pipeline.Options{})
	assert.ErrorIs(t, err, heroes.ErrNotLoaded)

	list, err := svc.List(ctx, pipeline.Options{Query: "IRON", Sort: pipeline.SortName, Ascending: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Iron Fist", "Iron Man"}, heroNames(list))

	// Loaded now: no further fetch.
	_, err = svc.List(ctx, pipeline.Options{})
	require.NoError(t, err)
	source.AssertNumberOfCalls(t, "FetchAll", 2)
}

func TestService_ConcurrentRefreshIsCoalesced(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	release := make(chan struct{})
	var calls atomic.Int32

	source := new(mocks.Client)
	source.On("FetchAll", mock.Anything).
		Run(func(mock.Arguments) {
			calls.Add(1)
			<-release
		}).
		Return([]superhero.Character{character(1, "Iron Man", "Marvel Comics", 100, 85)}, nil)

	svc := heroes.NewService(source, newMemoryStore(), "Marvel Comics", zap.NewNop())

	var wg sync.WaitGroup
	errs := make(chan error, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Refresh(context.Background())
			errs <- err
		}()
	}

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
	// Let the other callers join the in-flight refresh.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.LessOrEqual(t, calls.Load(), int32(5))
	assert.Equal(t, 1, svc.Catalog().Len())
}

func TestService_ToggleFavorite(t *testing.T) {
	ctx := context.Background()

	source := new(mocks.Client)
	source.On("FetchAll", mock.Anything).Return([]superhero.Character{
		character(1, "Iron Man", "Marvel Comics", 100, 85),
	}, nil)

	store := newMemoryStore()
	svc := heroes.NewService(source, store, "Marvel Comics", zap.NewNop())
	_, err := svc.Refresh(ctx)
	require.NoError(t, err)

	original, _ := svc.Catalog().Get(1)

	res, err := svc.ToggleFavorite(ctx, 1)
	require.NoError(t, err)
	assert.True(t, res.Persisted)
	assert.True(t, res.Hero.IsFavorite)

	stored, ok := store.row(1)
	require.True(t, ok)
	assert.True(t, stored.IsFavorite)

	res, err = svc.ToggleFavorite(ctx, 1)
	require.NoError(t, err)
	back, _ := svc.Catalog().Get(1)
	assert.Equal(t, original, back)
	assert.Equal(t, original, res.Hero)

	_, err = svc.ToggleFavorite(ctx, 404)
	assert.ErrorIs(t, err, heroes.ErrHeroNotFound)
}

func TestService_ToggleOutsideCatalog(t *testing.T) {
	ctx := context.Background()

	store := newMemoryStore(models.Hero{ID: 9, Name: "Moon Knight", IsFavorite: true})
	svc := heroes.NewService(new(mocks.Client), store, "Marvel Comics", zap.NewNop())

	res, err := svc.ToggleFavorite(ctx, 9)
	require.NoError(t, err)
	assert.False(t, res.Hero.IsFavorite)

	favs, err := svc.Favorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, favs)
}

func TestService_ToggleSaveFailureIsRetried(t *testing.T) {
	ctx := context.Background()

	source := new(mocks.Client)
	source.On("FetchAll", mock.Anything).Return([]superhero.Character{
		character(1, "Iron Man", "Marvel Comics", 100, 85),
	}, nil)

	store := newMemoryStore()
	svc := heroes.NewService(source, store, "Marvel Comics", zap.NewNop())
	_, err := svc.Refresh(ctx)
	require.NoError(t, err)

	store.setFailWrite(errors.New("database is locked"))
	res, err := svc.ToggleFavorite(ctx, 1)
	require.NoError(t, err)
	assert.False(t, res.Persisted)
	assert.Contains(t, res.SaveError, "database is locked")
	assert.Equal(t, 1, svc.PendingCount())

	// The optimistic flip is visible and survives a refresh.
	h, _ := svc.Catalog().Get(1)
	assert.True(t, h.IsFavorite)

	report, err := svc.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.PendingSaves)
	h, _ = svc.Catalog().Get(1)
	assert.True(t, h.IsFavorite)

	favs, err := svc.Favorites(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Iron Man"}, heroNames(favs))

	store.setFailWrite(nil)
	assert.Equal(t, 0, svc.RetryPendingSaves(ctx))

	stored, ok := store.row(1)
	require.True(t, ok)
	assert.True(t, stored.IsFavorite)
}

func TestService_RetryDoesNotOverwriteNewerToggle(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	ctx := context.Background()

	source := new(mocks.Client)
	source.On("FetchAll", mock.Anything).Return([]superhero.Character{
		character(1, "Iron Man", "Marvel Comics", 100, 85),
	}, nil)

	store := newMemoryStore()
	svc := heroes.NewService(source, store, "Marvel Comics", zap.NewNop())
	_, err := svc.Refresh(ctx)
	require.NoError(t, err)

	store.setFailWrite(errors.New("database is locked"))
	res, err := svc.ToggleFavorite(ctx, 1)
	require.NoError(t, err)
	require.False(t, res.Persisted)
	require.True(t, res.Hero.IsFavorite)
	store.setFailWrite(nil)

	release := make(chan struct{})
	held := store.holdNextWrite(release)

	retried := make(chan int, 1)
	go func() { retried <- svc.RetryPendingSaves(ctx) }()
	<-held

	var toggleDone atomic.Bool
	toggled := make(chan *models.ToggleResult, 1)
	go func() {
		r, err := svc.ToggleFavorite(ctx, 1)
		assert.NoError(t, err)
		toggleDone.Store(true)
		toggled <- r
	}()

	// The toggle waits for the queued write to finish.
	assert.Never(t, toggleDone.Load, 50*time.Millisecond, 5*time.Millisecond)
	close(release)

	assert.Equal(t, 0, <-retried)
	second := <-toggled
	assert.True(t, second.Persisted)
	assert.False(t, second.Hero.IsFavorite)

	stored, ok := store.row(1)
	require.True(t, ok)
	assert.False(t, stored.IsFavorite)
	assert.Equal(t, 0, svc.PendingCount())

	_, err = svc.Refresh(ctx)
	require.NoError(t, err)
	h, _ := svc.Catalog().Get(1)
	assert.False(t, h.IsFavorite)
}

func TestService_CancelledCallerDoesNotFailSharedRefresh(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	release := make(chan struct{})
	var calls atomic.Int32

	source := new(mocks.Client)
	source.On("FetchAll", mock.Anything).
		Run(func(args mock.Arguments) {
			calls.Add(1)
			<-release
			assert.NoError(t, args.Get(0).(context.Context).Err())
		}).
		Return([]superhero.Character{character(1, "Iron Man", "Marvel Comics", 100, 85)}, nil)

	svc := heroes.NewService(source, newMemoryStore(), "Marvel Comics", zap.NewNop())

	first, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := svc.Refresh(first)
		firstErr <- err
	}()
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)

	secondErr := make(chan error, 1)
	go func() {
		report, err := svc.Refresh(context.Background())
		if err == nil {
			assert.Equal(t, 1, report.Kept)
			assert.False(t, report.RefreshedAt.IsZero())
		}
		secondErr <- err
	}()

	cancel()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(release)
	assert.NoError(t, <-secondErr)
	assert.True(t, svc.Catalog().Loaded())
}

func TestService_Detail(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	ctx := context.Background()

	source := new(mocks.Client)
	source.On("FetchAll", mock.Anything).Return([]superhero.Character{
		character(659, "Thor", "Marvel Comics", 69, 100),
		character(332, "Hulk", "Marvel Comics", 10, 100),
	}, nil)
	source.On("FetchBiography", mock.Anything, 659).Return(&superhero.Biography{
		FullName: "Thor Odinson", Publisher: "Marvel Comics", Alignment: "good",
	}, nil)
	source.On("FetchBiography", mock.Anything, 332).Return(nil, errors.New("unexpected status code: 500"))

	svc := heroes.NewService(source, newMemoryStore(), "Marvel Comics", zap.NewNop())
	_, err := svc.Refresh(ctx)
	require.NoError(t, err)

	detail, err := svc.Detail(ctx, 659)
	require.NoError(t, err)
	assert.Equal(t, "Thor", detail.Hero.Name)
	require.NotNil(t, detail.Biography)
	assert.Equal(t, "Thor Odinson", detail.Biography.FullName)
	assert.Empty(t, detail.BiographyError)
	assert.Equal(t, "Check out this hero: Thor", detail.ShareSubject)
	assert.Equal(t, "Check out this hero: Thor\nIntelligence: 69, Strength: 100", detail.ShareText)

	detail, err = svc.Detail(ctx, 332)
	require.NoError(t, err)
	assert.Nil(t, detail.Biography)
	assert.Equal(t, "Error loading biography: unexpected status code: 500", detail.BiographyError)

	source.On("FetchBiography", mock.Anything, 1).Return(nil, superhero.ErrNotFound)
	_, err = svc.Detail(ctx, 1)
	assert.ErrorIs(t, err, heroes.ErrHeroNotFound)
}

func TestService_Restore(t *testing.T) {
	ctx := context.Background()

	source := new(mocks.Client)
	source.On("FetchAll", mock.Anything).Return([]superhero.Character{
		character(659, "Thor", "Marvel Comics", 69, 100),
	}, nil)

	store := newMemoryStore()
	svc := heroes.NewService(source, store, "Marvel Comics", zap.NewNop())
	_, err := svc.Refresh(ctx)
	require.NoError(t, err)

	res, err := svc.Restore(ctx, []models.Hero{
		{ID: 659, Name: "Stale Thor"},
		{ID: 9, Name: "Moon Knight"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Restored)
	assert.Equal(t, 0, res.Pending)

	thor, _ := svc.Catalog().Get(659)
	assert.True(t, thor.IsFavorite)
	assert.Equal(t, "Thor", thor.Name)

	stored, ok := store.row(9)
	require.True(t, ok)
	assert.True(t, stored.IsFavorite)
}
