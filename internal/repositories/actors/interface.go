package actors

//go:generate mockgen -destination=mock/mock_repository.go -package=mockactors -source=interface.go

import (
	"context"

	"github.com/lucasdlb17/fvtt-trpg/internal/domain/actor"
	"github.com/lucasdlb17/fvtt-trpg/internal/domain/item"
)

// Repository defines the interface for actor persistence
type Repository interface {
	// Create stores a new actor
	Create(ctx context.Context, a *actor.Actor) error

	// Get retrieves an actor by ID
	Get(ctx context.Context, id string) (*actor.Actor, error)

	// ListByOwner retrieves all actors for a specific owner
	ListByOwner(ctx context.Context, ownerID string) ([]*actor.Actor, error)

	// Update replaces an existing actor's stored state
	Update(ctx context.Context, a *actor.Actor) error

	// UpdateItems applies a batch of embedded item updates to a stored actor
	UpdateItems(ctx context.Context, actorID string, updates []item.Update) error

	// Delete removes an actor
	Delete(ctx context.Context, id string) error
}
