package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/de-tools/repair-atlas/pkg/models/domain"
)

// Registry holds the processed photos of the current session. The
// projection engine itself is stateless; this is the serving layer's
// single source of truth that every aggregate is recomputed from.
type Registry struct {
	mu     sync.RWMutex
	photos map[string]domain.ProcessedPhoto
	order  []string
}

func NewRegistry() *Registry {
	return &Registry{
		photos: make(map[string]domain.ProcessedPhoto),
	}
}

// Add stores a processed photo and returns it with its assigned id.
// Re-processing a file name replaces the earlier entry in place under a
// fresh id, keeping its position, so a photo never counts twice in the
// portfolio.
func (r *Registry) Add(fileName string, profiles []domain.CostProfile) domain.ProcessedPhoto {
	photo := domain.ProcessedPhoto{
		ID:           uuid.NewString(),
		FileName:     fileName,
		CostProfiles: profiles,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, id := range r.order {
		if r.photos[id].FileName == fileName {
			delete(r.photos, id)
			r.order[i] = photo.ID
			r.photos[photo.ID] = photo
			return photo
		}
	}

	r.photos[photo.ID] = photo
	r.order = append(r.order, photo.ID)

	return photo
}

// List returns a snapshot of all photos in insertion order.
func (r *Registry) List() []domain.ProcessedPhoto {
	r.mu.RLock()
	defer r.mu.RUnlock()

	photos := make([]domain.ProcessedPhoto, 0, len(r.order))
	for _, id := range r.order {
		photos = append(photos, r.photos[id])
	}
	return photos
}

func (r *Registry) Get(id string) (domain.ProcessedPhoto, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	photo, ok := r.photos[id]
	return photo, ok
}

func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.photos[id]; !ok {
		return false
	}
	delete(r.photos, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Reset drops every photo.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.photos = make(map[string]domain.ProcessedPhoto)
	r.order = nil
}
