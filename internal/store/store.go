package store

import (
	"context"

	"github.com/ifrashafqat/job-portal/internal/models"
)

// Tier names the backend that served an operation.
type Tier string

const (
	TierPostgres Tier = "postgres"
	TierMemory   Tier = "memory"
)

// Store is the contract both tiers implement identically, so callers stay
// backend-agnostic. List returns newest first by AppliedAt.
type Store interface {
	Create(ctx context.Context, app *models.Application) error
	List(ctx context.Context) ([]models.Application, error)
	GetByID(ctx context.Context, id string) (*models.Application, error)
	UpdateStatus(ctx context.Context, id string, status models.Status) (*models.Application, error)
}

// ListResult carries a listing plus which tier served it. Degraded is set
// when the durable tier was configured but could not answer; callers must
// treat it as informational only.
type ListResult struct {
	Applications []models.Application
	Source       Tier
	Degraded     bool
}
