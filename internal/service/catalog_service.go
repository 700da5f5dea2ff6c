package service

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"sync"
	"time"

	"github.com/gradepath/gradepath-api/internal/domain"
	"github.com/gradepath/gradepath-api/internal/store"
	"github.com/gradepath/gradepath-api/internal/task"
)

// refreshTimeout bounds a single background refresh fetch.
const refreshTimeout = 30 * time.Second

// SnapshotCache is the secondary snapshot store consulted between the
// in-memory cache and the primary store. Implemented by
// rediscache.Cache; optional.
type SnapshotCache interface {
	GetCatalog(ctx context.Context, countryCode string) (*domain.CountryCatalog, error)
	SetCatalog(ctx context.Context, cat *domain.CountryCatalog, ttl time.Duration) error
	GetCareer(ctx context.Context, name, countryCode string) (*domain.Career, error)
	SetCareer(ctx context.Context, career *domain.Career, ttl time.Duration) error
}

// Refresher accepts background refresh tasks. Implemented by
// task.Runner; optional.
type Refresher interface {
	Submit(t task.Task) bool
}

// CatalogServiceConfig holds the freshness windows for cached data.
// The catalog changes rarely and is considered fresh for about a week;
// career and university data for about a day.
type CatalogServiceConfig struct {
	CatalogTTL time.Duration
	CareerTTL  time.Duration
}

// DefaultCatalogServiceConfig returns the standard freshness windows.
func DefaultCatalogServiceConfig() CatalogServiceConfig {
	return CatalogServiceConfig{
		CatalogTTL: 7 * 24 * time.Hour,
		CareerTTL:  24 * time.Hour,
	}
}

type snapshot[T any] struct {
	value     T
	fetchedAt time.Time
}

// CatalogService is an explicit read-through cache over the catalog and
// career stores with a stale-while-revalidate policy: a stale-but-
// present snapshot is returned immediately while a background refresh
// is kicked off, and the refresh replaces the snapshot only if the new
// data differs. When no snapshot exists and the fetch fails, the
// service fails closed with a typed unavailable error rather than
// silently evaluating against empty requirements.
type CatalogService struct {
	catalogs store.CatalogStore
	careers  store.CareerStore
	cache    SnapshotCache
	runner   Refresher
	config   CatalogServiceConfig
	logger   *slog.Logger

	mu           sync.RWMutex
	catalogSnaps map[string]snapshot[*domain.CountryCatalog]
	careerSnaps  map[string]snapshot[*domain.Career]

	// now is swappable for tests.
	now func() time.Time
}

// NewCatalogService creates a CatalogService. cache and runner may be
// nil: without a cache the service reads through to the stores only,
// and without a runner stale snapshots are refreshed inline on the
// next miss rather than in the background.
func NewCatalogService(
	catalogs store.CatalogStore,
	careers store.CareerStore,
	cache SnapshotCache,
	runner Refresher,
	config CatalogServiceConfig,
	logger *slog.Logger,
) *CatalogService {
	if catalogs == nil || careers == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("catalog and career stores cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CatalogService{
		catalogs:     catalogs,
		careers:      careers,
		cache:        cache,
		runner:       runner,
		config:       config,
		logger:       logger.With(slog.String("component", "catalog_service")),
		catalogSnaps: make(map[string]snapshot[*domain.CountryCatalog]),
		careerSnaps:  make(map[string]snapshot[*domain.Career]),
		now:          time.Now,
	}
}

// Catalog returns the subject catalog for a country. Unknown countries
// fail with store.ErrCountryNotFound; an unreachable store with no
// usable snapshot fails with store.ErrCatalogUnavailable.
func (s *CatalogService) Catalog(
	ctx context.Context,
	countryCode string,
) (*domain.CountryCatalog, error) {
	s.mu.RLock()
	snap, ok := s.catalogSnaps[countryCode]
	s.mu.RUnlock()

	if ok {
		if s.now().Sub(snap.fetchedAt) >= s.config.CatalogTTL {
			s.scheduleCatalogRefresh(countryCode)
		}
		return snap.value, nil
	}

	cat, err := s.fetchCatalog(ctx, countryCode)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", store.ErrCatalogUnavailable, err)
	}
	return cat, nil
}

// Career returns a career's requirement sets. Unknown careers fail with
// store.ErrCareerNotFound; an unreachable store with no usable snapshot
// fails with store.ErrCareerUnavailable.
func (s *CatalogService) Career(
	ctx context.Context,
	name, countryCode string,
) (*domain.Career, error) {
	key := careerSnapKey(name, countryCode)

	s.mu.RLock()
	snap, ok := s.careerSnaps[key]
	s.mu.RUnlock()

	if ok {
		if s.now().Sub(snap.fetchedAt) >= s.config.CareerTTL {
			s.scheduleCareerRefresh(name, countryCode)
		}
		return snap.value, nil
	}

	career, err := s.fetchCareer(ctx, name, countryCode)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", store.ErrCareerUnavailable, err)
	}
	return career, nil
}

// fetchCatalog reads through the snapshot cache to the primary store
// and memoizes whatever it finds.
func (s *CatalogService) fetchCatalog(
	ctx context.Context,
	countryCode string,
) (*domain.CountryCatalog, error) {
	if s.cache != nil {
		if cat, err := s.cache.GetCatalog(ctx, countryCode); err == nil {
			s.storeCatalogSnap(countryCode, cat)
			return cat, nil
		}
	}

	cat, err := s.catalogs.GetCatalog(ctx, countryCode)
	if err != nil {
		return nil, err
	}

	s.storeCatalogSnap(countryCode, cat)
	if s.cache != nil {
		if err := s.cache.SetCatalog(ctx, cat, s.config.CatalogTTL); err != nil {
			s.logger.WarnContext(ctx, "failed to write catalog snapshot",
				slog.String("country_code", countryCode),
				slog.String("error", err.Error()))
		}
	}
	return cat, nil
}

func (s *CatalogService) fetchCareer(
	ctx context.Context,
	name, countryCode string,
) (*domain.Career, error) {
	if s.cache != nil {
		if career, err := s.cache.GetCareer(ctx, name, countryCode); err == nil {
			s.storeCareerSnap(career)
			return career, nil
		}
	}

	career, err := s.careers.GetCareer(ctx, name, countryCode)
	if err != nil {
		return nil, err
	}

	s.storeCareerSnap(career)
	if s.cache != nil {
		if err := s.cache.SetCareer(ctx, career, s.config.CareerTTL); err != nil {
			s.logger.WarnContext(ctx, "failed to write career snapshot",
				slog.String("career", name),
				slog.String("error", err.Error()))
		}
	}
	return career, nil
}

func (s *CatalogService) storeCatalogSnap(countryCode string, cat *domain.CountryCatalog) {
	s.mu.Lock()
	s.catalogSnaps[countryCode] = snapshot[*domain.CountryCatalog]{
		value:     cat,
		fetchedAt: s.now(),
	}
	s.mu.Unlock()
}

func (s *CatalogService) storeCareerSnap(career *domain.Career) {
	s.mu.Lock()
	s.careerSnaps[careerSnapKey(career.Name, career.CountryCode)] = snapshot[*domain.Career]{
		value:     career,
		fetchedAt: s.now(),
	}
	s.mu.Unlock()
}

// scheduleCatalogRefresh submits a background refresh for a stale
// catalog snapshot. The refresh replaces the snapshot only when the
// fresh data actually differs; a failed refresh keeps the stale
// snapshot in place.
func (s *CatalogService) scheduleCatalogRefresh(countryCode string) {
	if s.runner == nil {
		return
	}

	s.runner.Submit(task.Func{
		TaskKey: "catalog-refresh:" + countryCode,
		Fn: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, refreshTimeout)
			defer cancel()

			fresh, err := s.catalogs.GetCatalog(ctx, countryCode)
			if err != nil {
				return fmt.Errorf("refresh catalog %s: %w", countryCode, err)
			}

			s.mu.RLock()
			current := s.catalogSnaps[countryCode].value
			s.mu.RUnlock()

			if reflect.DeepEqual(current, fresh) {
				// Unchanged: just bump the snapshot age.
				s.storeCatalogSnap(countryCode, current)
				return nil
			}

			s.storeCatalogSnap(countryCode, fresh)
			if s.cache != nil {
				if err := s.cache.SetCatalog(ctx, fresh, s.config.CatalogTTL); err != nil {
					s.logger.Warn("failed to write refreshed catalog snapshot",
						slog.String("country_code", countryCode),
						slog.String("error", err.Error()))
				}
			}
			s.logger.Info("catalog snapshot refreshed",
				slog.String("country_code", countryCode))
			return nil
		},
	})
}

func (s *CatalogService) scheduleCareerRefresh(name, countryCode string) {
	if s.runner == nil {
		return
	}

	key := careerSnapKey(name, countryCode)
	s.runner.Submit(task.Func{
		TaskKey: "career-refresh:" + key,
		Fn: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, refreshTimeout)
			defer cancel()

			fresh, err := s.careers.GetCareer(ctx, name, countryCode)
			if err != nil {
				return fmt.Errorf("refresh career %s: %w", key, err)
			}

			s.mu.RLock()
			current := s.careerSnaps[key].value
			s.mu.RUnlock()

			if reflect.DeepEqual(current, fresh) {
				s.storeCareerSnap(current)
				return nil
			}

			s.storeCareerSnap(fresh)
			if s.cache != nil {
				if err := s.cache.SetCareer(ctx, fresh, s.config.CareerTTL); err != nil {
					s.logger.Warn("failed to write refreshed career snapshot",
						slog.String("career", key),
						slog.String("error", err.Error()))
				}
			}
			s.logger.Info("career snapshot refreshed", slog.String("career", key))
			return nil
		},
	})
}

func careerSnapKey(name, countryCode string) string {
	return countryCode + ":" + name
}
