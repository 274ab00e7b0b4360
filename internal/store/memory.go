package store

import (
	"context"
	"sort"
	"sync"

	"github.com/ifrashafqat/job-portal/internal/models"
)

// MemoryStore is the volatile fallback tier. It is an explicit object
// constructed once per process, never ambient state; entries are lost on
// restart, which is an accepted limitation of this tier.
type MemoryStore struct {
	mu   sync.RWMutex
	apps []models.Application
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Create(_ context.Context, app *models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apps = append(s.apps, *app)
	return nil
}

func (s *MemoryStore) List(_ context.Context) ([]models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Reverse insertion order first so the stable sort keeps later inserts
	// ahead of earlier ones when timestamps tie.
	out := make([]models.Application, 0, len(s.apps))
	for i := len(s.apps) - 1; i >= 0; i-- {
		out = append(out, s.apps[i])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AppliedAt.After(out[j].AppliedAt)
	})
	return out, nil
}

func (s *MemoryStore) GetByID(_ context.Context, id string) (*models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.apps {
		if s.apps[i].ID == id {
			app := s.apps[i]
			return &app, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *MemoryStore) UpdateStatus(_ context.Context, id string, status models.Status) (*models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.apps {
		if s.apps[i].ID == id {
			s.apps[i].Status = status
			app := s.apps[i]
			return &app, nil
		}
	}
	return nil, models.ErrNotFound
}
