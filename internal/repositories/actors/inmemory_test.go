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

func TestInMemoryCreateAndGet(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	a := testutils.CreateTestCharacter("char-1", "owner-1", "Aldric")
	require.NoError(t, repo.Create(ctx, a))

	got, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, "Aldric", got.Name)

	// stored state is isolated from the caller's copy
	a.Name = "Mutated"
	got2, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, "Aldric", got2.Name)

	// and reads are isolated from each other
	got.Name = "Mutated Read"
	got3, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, "Aldric", got3.Name)
}

func TestInMemoryCreateGeneratesID(t *testing.T) {
	repo := NewInMemoryRepository()
	a := testutils.CreateTestCharacter("", "owner-1", "Aldric")

	require.NoError(t, repo.Create(context.Background(), a))
	assert.NotEmpty(t, a.ID)
}

func TestInMemoryCreateDuplicate(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	a := testutils.CreateTestCharacter("char-1", "owner-1", "Aldric")
	require.NoError(t, repo.Create(ctx, a))

	err := repo.Create(ctx, testutils.CreateTestCharacter("char-1", "owner-2", "Copy"))
	assert.Equal(t, trpgerr.CodeAlreadyExists, trpgerr.GetCode(err))
}

func TestInMemoryGetNotFound(t *testing.T) {
	repo := NewInMemoryRepository()

	_, err := repo.Get(context.Background(), "missing")
	assert.True(t, trpgerr.IsNotFound(err))
}

func TestInMemoryListByOwner(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutils.CreateTestCharacter("char-1", "owner-1", "Aldric")))
	require.NoError(t, repo.Create(ctx, testutils.CreateTestCharacter("char-2", "owner-1", "Brina")))
	require.NoError(t, repo.Create(ctx, testutils.CreateTestCharacter("char-3", "owner-2", "Corvin")))

	actors, err := repo.ListByOwner(ctx, "owner-1")
	require.NoError(t, err)
	assert.Len(t, actors, 2)

	actors, err = repo.ListByOwner(ctx, "owner-3")
	require.NoError(t, err)
	assert.Empty(t, actors)
}

func TestInMemoryUpdate(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	a := testutils.CreateTestCharacter("char-1", "owner-1", "Aldric")
	require.NoError(t, repo.Create(ctx, a))

	a.Attributes.HP.Value = 12
	require.NoError(t, repo.Update(ctx, a))

	got, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, 12, got.Attributes.HP.Value)
}

func TestInMemoryUpdateNotFound(t *testing.T) {
	repo := NewInMemoryRepository()

	a := testutils.CreateTestCharacter("missing", "owner-1", "Aldric")
	err := repo.Update(context.Background(), a)
	assert.True(t, trpgerr.IsNotFound(err))
}

func TestInMemoryUpdateItems(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	a := testutils.CreateTestCharacter("char-1", "owner-1", "Aldric")
	require.NoError(t, repo.Create(ctx, a))

	used := 3
	require.NoError(t, repo.UpdateItems(ctx, "char-1", []item.Update{
		{ID: "char-1-class", HitDiceUsed: &used},
	}))

	got, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Item("char-1-class").Class.HitDiceUsed)
}

func TestInMemoryUpdateItemsAtomicValidation(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	a := testutils.CreateTestCharacter("char-1", "owner-1", "Aldric")
	require.NoError(t, repo.Create(ctx, a))

	used := 3
	err := repo.UpdateItems(ctx, "char-1", []item.Update{
		{ID: "char-1-class", HitDiceUsed: &used},
		{ID: "no-such-item", HitDiceUsed: &used},
	})
	require.True(t, trpgerr.IsNotFound(err))

	// nothing from the batch was applied
	got, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Item("char-1-class").Class.HitDiceUsed)
}

func TestInMemoryDelete(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutils.CreateTestCharacter("char-1", "owner-1", "Aldric")))
	require.NoError(t, repo.Delete(ctx, "char-1"))

	_, err := repo.Get(ctx, "char-1")
	assert.True(t, trpgerr.IsNotFound(err))

	assert.True(t, trpgerr.IsNotFound(repo.Delete(ctx, "char-1")))
}
