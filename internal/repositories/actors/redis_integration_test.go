//go:build integration

package actors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasdlb17/fvtt-trpg/internal/domain/item"
	trpgerr "github.com/lucasdlb17/fvtt-trpg/internal/errors"
	"github.com/lucasdlb17/fvtt-trpg/internal/testutils"
)

func TestRedisRepositoryRoundTrip(t *testing.T) {
	client := testutils.CreateTestRedisClientOrSkip(t)
	repo := NewRedisRepository(&RedisRepoConfig{Client: client})
	ctx := context.Background()

	a := testutils.CreateTestCharacter("char-1", "owner-1", "Aldric")
	a.Items = append(a.Items, testutils.CreateTestArmor("armor-1", "Breastplate", 4, nil))
	require.NoError(t, repo.Create(ctx, a))

	got, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, "Aldric", got.Name)
	assert.Len(t, got.Items, 2)
	assert.Equal(t, 16, got.Abilities["str"].Value)

	got.Attributes.HP.Value = 7
	require.NoError(t, repo.Update(ctx, got))

	used := 2
	require.NoError(t, repo.UpdateItems(ctx, "char-1", []item.Update{
		{ID: "char-1-class", HitDiceUsed: &used},
	}))

	got, err = repo.Get(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, 7, got.Attributes.HP.Value)
	assert.Equal(t, 2, got.Item("char-1-class").Class.HitDiceUsed)

	actors, err := repo.ListByOwner(ctx, "owner-1")
	require.NoError(t, err)
	assert.Len(t, actors, 1)

	require.NoError(t, repo.Delete(ctx, "char-1"))
	_, err = repo.Get(ctx, "char-1")
	assert.True(t, trpgerr.IsNotFound(err))

	actors, err = repo.ListByOwner(ctx, "owner-1")
	require.NoError(t, err)
	assert.Empty(t, actors)
}

func TestRedisRepositoryContainerRoundTrip(t *testing.T) {
	rc := testutils.NewRedisContainer(t)
	repo := NewRedisRepository(&RedisRepoConfig{Client: rc.Client})
	ctx := context.Background()

	a := testutils.CreateTestCharacter("", "owner-1", "Brina")
	require.NoError(t, repo.Create(ctx, a))
	require.NotEmpty(t, a.ID)

	got, err := repo.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Brina", got.Name)
}
