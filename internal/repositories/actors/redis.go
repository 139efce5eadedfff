package actors

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/lucasdlb17/fvtt-trpg/internal/domain/actor"
	"github.com/lucasdlb17/fvtt-trpg/internal/domain/item"
	trpgerr "github.com/lucasdlb17/fvtt-trpg/internal/errors"
	"github.com/lucasdlb17/fvtt-trpg/internal/uuid"
)

// actorData represents the serialized form of an actor in Redis
type actorData struct {
	Actor     *actor.Actor `json:"actor"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
}

// NewRedisRepository creates a new Redis-backed actor repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		cfg.UUIDGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return &redisRepo{
		client:        cfg.Client,
		uuidGenerator: cfg.UUIDGenerator,
	}
}

// key generates the Redis key for an actor
func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("actor:%s", id)
}

// ownerActorsKey generates the Redis key for an owner's actor list
func (r *redisRepo) ownerActorsKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:actors", ownerID)
}

// Create stores a new actor
func (r *redisRepo) Create(ctx context.Context, a *actor.Actor) error {
	if a == nil {
		return trpgerr.InvalidArgument("actor cannot be nil")
	}
	if a.ID == "" {
		a.ID = r.uuidGenerator.New()
	}
	if a.OwnerID == "" {
		return trpgerr.InvalidArgument("actor owner ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(a.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check actor existence: %w", err)
	}
	if exists > 0 {
		return trpgerr.AlreadyExistsf("actor with ID '%s' already exists", a.ID).
			WithMeta("actor_id", a.ID)
	}

	data := actorData{Actor: a}
	data.CreatedAt = time.Now().UTC()
	data.UpdatedAt = data.CreatedAt

	jsonData, err := json.Marshal(&data)
	if err != nil {
		return fmt.Errorf("failed to marshal actor: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(a.ID), jsonData, 0)
	pipe.SAdd(ctx, r.ownerActorsKey(a.OwnerID), a.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create actor: %w", err)
	}

	return nil
}

// Get retrieves an actor by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*actor.Actor, error) {
	if id == "" {
		return nil, trpgerr.InvalidArgument("actor ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Result()
	if err == redis.Nil {
		return nil, trpgerr.NotFoundf("actor with ID '%s' not found", id).
			WithMeta("actor_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get actor: %w", err)
	}

	var data actorData
	if unmarshalErr := json.Unmarshal([]byte(jsonData), &data); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal actor: %w", unmarshalErr)
	}
	if data.Actor == nil {
		return nil, trpgerr.Internalf("actor record '%s' has no body", id)
	}

	return data.Actor, nil
}

// ListByOwner retrieves all actors for a specific owner. Actors are fetched
// concurrently; records that fail to load are skipped.
func (r *redisRepo) ListByOwner(ctx context.Context, ownerID string) ([]*actor.Actor, error) {
	if ownerID == "" {
		return nil, trpgerr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, r.ownerActorsKey(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list actor IDs: %w", err)
	}

	results := make([]*actor.Actor, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			a, err := r.Get(gctx, id)
			if err != nil {
				if trpgerr.IsNotFound(err) {
					return nil
				}
				return err
			}
			results[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	actors := make([]*actor.Actor, 0, len(results))
	for _, a := range results {
		if a != nil {
			actors = append(actors, a)
		}
	}
	return actors, nil
}

// Update replaces an existing actor's stored state
func (r *redisRepo) Update(ctx context.Context, a *actor.Actor) error {
	if a == nil {
		return trpgerr.InvalidArgument("actor cannot be nil")
	}
	if a.ID == "" {
		return trpgerr.InvalidArgument("actor ID is required")
	}

	existingData, err := r.client.Get(ctx, r.key(a.ID)).Result()
	if err == redis.Nil {
		return trpgerr.NotFoundf("actor with ID '%s' not found", a.ID).
			WithMeta("actor_id", a.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to get existing actor: %w", err)
	}

	var existing actorData
	if unmarshalErr := json.Unmarshal([]byte(existingData), &existing); unmarshalErr != nil {
		return fmt.Errorf("failed to unmarshal existing actor: %w", unmarshalErr)
	}

	data := actorData{
		Actor:     a,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now().UTC(),
	}

	jsonData, err := json.Marshal(&data)
	if err != nil {
		return fmt.Errorf("failed to marshal actor: %w", err)
	}

	if err := r.client.Set(ctx, r.key(a.ID), jsonData, 0).Err(); err != nil {
		return fmt.Errorf("failed to update actor: %w", err)
	}

	if existing.Actor != nil && existing.Actor.OwnerID != a.OwnerID {
		pipe := r.client.Pipeline()
		pipe.SRem(ctx, r.ownerActorsKey(existing.Actor.OwnerID), a.ID)
		pipe.SAdd(ctx, r.ownerActorsKey(a.OwnerID), a.ID)
		if _, err := pipe.Exec(ctx); err != nil {
			return fmt.Errorf("failed to update actor indexes: %w", err)
		}
	}

	return nil
}

// UpdateItems applies a batch of embedded item updates in one write. Updates
// naming items the actor does not own are rejected before anything is stored.
func (r *redisRepo) UpdateItems(ctx context.Context, actorID string, updates []item.Update) error {
	if actorID == "" {
		return trpgerr.InvalidArgument("actor ID is required")
	}
	if len(updates) == 0 {
		return nil
	}

	a, err := r.Get(ctx, actorID)
	if err != nil {
		return err
	}

	for _, u := range updates {
		target := a.Item(u.ID)
		if target == nil {
			return trpgerr.NotFoundf("actor '%s' has no item '%s'", actorID, u.ID).
				WithMeta("actor_id", actorID).
				WithMeta("item_id", u.ID)
		}
		u.Apply(target)
	}

	return r.Update(ctx, a)
}

// Delete removes an actor
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return trpgerr.InvalidArgument("actor ID is required")
	}

	a, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, r.ownerActorsKey(a.OwnerID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete actor: %w", err)
	}

	return nil
}
