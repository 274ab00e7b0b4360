package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ifrashafqat/job-portal/internal/models"
	"github.com/ifrashafqat/job-portal/internal/observability"
)

// Adapter composes the optional durable tier over the always-present
// in-memory tier. A runtime failure on the durable side falls through to
// memory and stays a success for the caller; only the fallback tier
// failing too is an error.
type Adapter struct {
	durable  Store // nil when running fallback-only
	fallback *MemoryStore
	logger   *zap.Logger

	now   func() time.Time
	newID func() string
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithClock injects the creation-timestamp source.
func WithClock(now func() time.Time) Option {
	return func(a *Adapter) { a.now = now }
}

// WithIDGenerator injects the application-id source.
func WithIDGenerator(newID func() string) Option {
	return func(a *Adapter) { a.newID = newID }
}

// NewAdapter creates the adapter. durable may be nil (fallback-only mode).
func NewAdapter(durable Store, fallback *MemoryStore, logger *zap.Logger, opts ...Option) *Adapter {
	a := &Adapter{
		durable:  durable,
		fallback: fallback,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Create stamps identity, timestamp and the initial status, then writes
// through whichever tier answers first. The returned tier is informational.
func (a *Adapter) Create(ctx context.Context, app *models.Application) (*models.Application, Tier, error) {
	app.ID = a.newID()
	app.AppliedAt = a.now().UTC()
	if app.Status == "" {
		app.Status = models.StatusPending
	}

	if a.durable != nil {
		err := a.durable.Create(ctx, app)
		if err == nil {
			observability.StoreOperations.WithLabelValues("create", string(TierPostgres), "success").Inc()
			return app, TierPostgres, nil
		}
		a.degraded("create", err)
	}

	if err := a.fallback.Create(ctx, app); err != nil {
		observability.StoreOperations.WithLabelValues("create", string(TierMemory), "error").Inc()
		return nil, TierMemory, fmt.Errorf("fallback store create: %w", err)
	}
	observability.StoreOperations.WithLabelValues("create", string(TierMemory), "success").Inc()
	return app, TierMemory, nil
}

// List returns applications newest first. The read path never fails the
// caller: if both tiers misbehave it reports an empty, degraded listing.
func (a *Adapter) List(ctx context.Context) ListResult {
	if a.durable != nil {
		apps, err := a.durable.List(ctx)
		if err == nil {
			observability.StoreOperations.WithLabelValues("list", string(TierPostgres), "success").Inc()
			return ListResult{Applications: apps, Source: TierPostgres}
		}
		a.degraded("list", err)
		apps, _ = a.fallback.List(ctx)
		return ListResult{Applications: apps, Source: TierMemory, Degraded: true}
	}

	apps, _ := a.fallback.List(ctx)
	observability.StoreOperations.WithLabelValues("list", string(TierMemory), "success").Inc()
	return ListResult{Applications: apps, Source: TierMemory}
}

// UpdateStatus applies a status change wherever the record lives. Records
// created during a durable outage exist only in memory, so a not-found on
// the durable side still checks the fallback tier.
func (a *Adapter) UpdateStatus(ctx context.Context, id string, status models.Status) (*models.Application, Tier, error) {
	if a.durable != nil {
		app, err := a.durable.UpdateStatus(ctx, id, status)
		if err == nil {
			observability.StoreOperations.WithLabelValues("update_status", string(TierPostgres), "success").Inc()
			return app, TierPostgres, nil
		}
		if !errors.Is(err, models.ErrNotFound) {
			a.degraded("update_status", err)
		}
	}

	app, err := a.fallback.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, TierMemory, err
	}
	observability.StoreOperations.WithLabelValues("update_status", string(TierMemory), "success").Inc()
	return app, TierMemory, nil
}

func (a *Adapter) degraded(operation string, err error) {
	observability.StoreOperations.WithLabelValues(operation, string(TierPostgres), "error").Inc()
	observability.StoreFallbacks.Inc()
	a.logger.Warn("durable store unavailable, using in-memory fallback",
		zap.String("operation", operation),
		zap.Error(err))
}
