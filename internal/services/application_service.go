package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ifrashafqat/job-portal/internal/dtos"
	"github.com/ifrashafqat/job-portal/internal/models"
	"github.com/ifrashafqat/job-portal/internal/observability"
	"github.com/ifrashafqat/job-portal/internal/store"
	"github.com/ifrashafqat/job-portal/internal/validation"
)

// ApplicationService owns the server side of the intake pipeline: it
// re-validates payloads, persists them through the tiered store, and runs
// the status workflow.
type ApplicationService struct {
	Store  *store.Adapter
	Logger *zap.Logger
}

// NewApplicationService creates the service with its dependencies.
func NewApplicationService(s *store.Adapter, logger *zap.Logger) *ApplicationService {
	return &ApplicationService{
		Store:  s,
		Logger: logger,
	}
}

// Submit validates a payload and persists it. Field errors come back as a
// list and mean nothing was persisted; err is reserved for both persistence
// tiers failing.
func (s *ApplicationService) Submit(ctx context.Context, req *dtos.ApplicationRequest) (*models.Application, store.Tier, []models.FieldError, error) {
	result := validation.ValidateIntake(req)
	if !result.Valid {
		observability.Submissions.WithLabelValues("validation_failed").Inc()
		return nil, "", result.Errors, nil
	}

	app := validation.BuildApplication(req)
	created, tier, err := s.Store.Create(ctx, app)
	if err != nil {
		observability.Submissions.WithLabelValues("error").Inc()
		return nil, tier, nil, fmt.Errorf("persist application: %w", err)
	}

	observability.Submissions.WithLabelValues("accepted").Inc()
	s.Logger.Info("application received",
		zap.String("id", created.ID),
		zap.String("position", created.Position),
		zap.String("source", string(tier)))
	return created, tier, nil, nil
}

// List returns all applications, newest first, from whichever tier answers.
func (s *ApplicationService) List(ctx context.Context) store.ListResult {
	return s.Store.List(ctx)
}

// SetStatus moves an application to a new review status. The target must
// be one of the four enumerated statuses; anything else fails without
// touching the stored value. Pending may move directly to any of the
// other three.
func (s *ApplicationService) SetStatus(ctx context.Context, id string, status string) (*models.Application, error) {
	target := models.Status(status)
	if !target.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidStatus, status)
	}

	app, tier, err := s.Store.UpdateStatus(ctx, id, target)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("application status updated",
		zap.String("id", id),
		zap.String("status", status),
		zap.String("source", string(tier)))
	return app, nil
}
