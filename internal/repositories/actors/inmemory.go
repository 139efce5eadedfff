package actors

import (
	"context"
	"sync"

	"github.com/lucasdlb17/fvtt-trpg/internal/domain/actor"
	"github.com/lucasdlb17/fvtt-trpg/internal/domain/item"
	trpgerr "github.com/lucasdlb17/fvtt-trpg/internal/errors"
	"github.com/lucasdlb17/fvtt-trpg/internal/uuid"
)

// InMemoryRepository is an in-memory implementation of the actor repository.
// Useful for testing and development.
type InMemoryRepository struct {
	mu            sync.RWMutex
	actors        map[string]*actor.Actor
	uuidGenerator uuid.Generator
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		actors:        make(map[string]*actor.Actor),
		uuidGenerator: uuid.NewGoogleUUIDGenerator(),
	}
}

// Create stores a new actor
func (r *InMemoryRepository) Create(ctx context.Context, a *actor.Actor) error {
	if a == nil {
		return trpgerr.InvalidArgument("actor cannot be nil")
	}
	if a.ID == "" {
		a.ID = r.uuidGenerator.New()
	}
	if a.OwnerID == "" {
		return trpgerr.InvalidArgument("actor owner ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.actors[a.ID]; exists {
		return trpgerr.AlreadyExistsf("actor with ID '%s' already exists", a.ID).
			WithMeta("actor_id", a.ID)
	}

	// Store a copy to avoid external modifications
	r.actors[a.ID] = a.Clone()
	return nil
}

// Get retrieves an actor by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*actor.Actor, error) {
	if id == "" {
		return nil, trpgerr.InvalidArgument("actor ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	a, exists := r.actors[id]
	if !exists {
		return nil, trpgerr.NotFoundf("actor with ID '%s' not found", id).
			WithMeta("actor_id", id)
	}

	return a.Clone(), nil
}

// ListByOwner retrieves all actors for a specific owner
func (r *InMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*actor.Actor, error) {
	if ownerID == "" {
		return nil, trpgerr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*actor.Actor
	for _, a := range r.actors {
		if a.OwnerID == ownerID {
			result = append(result, a.Clone())
		}
	}
	return result, nil
}

// Update replaces an existing actor's stored state
func (r *InMemoryRepository) Update(ctx context.Context, a *actor.Actor) error {
	if a == nil {
		return trpgerr.InvalidArgument("actor cannot be nil")
	}
	if a.ID == "" {
		return trpgerr.InvalidArgument("actor ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.actors[a.ID]; !exists {
		return trpgerr.NotFoundf("actor with ID '%s' not found", a.ID).
			WithMeta("actor_id", a.ID)
	}

	r.actors[a.ID] = a.Clone()
	return nil
}

// UpdateItems applies a batch of embedded item updates to a stored actor
func (r *InMemoryRepository) UpdateItems(ctx context.Context, actorID string, updates []item.Update) error {
	if actorID == "" {
		return trpgerr.InvalidArgument("actor ID is required")
	}
	if len(updates) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	a, exists := r.actors[actorID]
	if !exists {
		return trpgerr.NotFoundf("actor with ID '%s' not found", actorID).
			WithMeta("actor_id", actorID)
	}

	for _, u := range updates {
		target := a.Item(u.ID)
		if target == nil {
			return trpgerr.NotFoundf("actor '%s' has no item '%s'", actorID, u.ID).
				WithMeta("actor_id", actorID).
				WithMeta("item_id", u.ID)
		}
	}
	for _, u := range updates {
		u.Apply(a.Item(u.ID))
	}
	return nil
}

// Delete removes an actor
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return trpgerr.InvalidArgument("actor ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.actors[id]; !exists {
		return trpgerr.NotFoundf("actor with ID '%s' not found", id).
			WithMeta("actor_id", id)
	}

	delete(r.actors, id)
	return nil
}
