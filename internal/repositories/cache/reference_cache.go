package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_app/internal/middleware"
)

// ReferenceCache decorates a ReferenceReader with a read-through cache.
// Cache failures are logged and the call falls through to the wrapped reader.
type ReferenceCache struct {
	next  portsrepo.ReferenceReader
	store Store
	ttl   time.Duration
}

func NewReferenceCache(next portsrepo.ReferenceReader, store Store, ttl time.Duration) *ReferenceCache {
	return &ReferenceCache{next: next, store: store, ttl: ttl}
}

var _ portsrepo.ReferenceReader = (*ReferenceCache)(nil)

// cached returns the value stored under key, loading and storing it on a miss.
func cached[T any](ctx context.Context, c *ReferenceCache, key string, load func() (T, error)) (T, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if data, ok, err := c.store.Get(ctx, key); err != nil {
		logger.Warn("Reference cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	} else if ok {
		var value T
		if err := json.Unmarshal(data, &value); err == nil {
			return value, nil
		}
		logger.Warn("Discarding corrupt reference cache entry", slog.String("key", key))
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	data, err := json.Marshal(value)
	if err == nil {
		err = c.store.Set(ctx, key, data, c.ttl)
	}
	if err != nil {
		logger.Warn("Reference cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	return value, nil
}

func (c *ReferenceCache) ListRegions(ctx context.Context) ([]domain.Region, error) {
	return cached(ctx, c, "regions", func() ([]domain.Region, error) {
		return c.next.ListRegions(ctx)
	})
}

func (c *ReferenceCache) ListCommunes(ctx context.Context, regionID *int64) ([]domain.Commune, error) {
	key := "communes:all"
	if regionID != nil {
		key = "communes:region:" + strconv.FormatInt(*regionID, 10)
	}
	return cached(ctx, c, key, func() ([]domain.Commune, error) {
		return c.next.ListCommunes(ctx, regionID)
	})
}

func (c *ReferenceCache) ListPaymentTypes(ctx context.Context) ([]domain.PaymentType, error) {
	return cached(ctx, c, "payment_types", func() ([]domain.PaymentType, error) {
		return c.next.ListPaymentTypes(ctx)
	})
}

// FindPaymentTypeByID is not cached so that a NotFound is never remembered.
func (c *ReferenceCache) FindPaymentTypeByID(ctx context.Context, paymentTypeID int64) (*domain.PaymentType, error) {
	return c.next.FindPaymentTypeByID(ctx, paymentTypeID)
}

func (c *ReferenceCache) ListStatuses(ctx context.Context) ([]domain.Status, error) {
	return cached(ctx, c, "statuses", func() ([]domain.Status, error) {
		return c.next.ListStatuses(ctx)
	})
}

func (c *ReferenceCache) FindStatusByID(ctx context.Context, statusID int64) (*domain.Status, error) {
	return c.next.FindStatusByID(ctx, statusID)
}
