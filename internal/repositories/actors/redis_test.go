package actors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/lucasdlb17/fvtt-trpg/internal/domain/item"
	trpgerr "github.com/lucasdlb17/fvtt-trpg/internal/errors"
	"github.com/lucasdlb17/fvtt-trpg/internal/testutils"
	internaluuid "github.com/lucasdlb17/fvtt-trpg/internal/uuid"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.repo = NewRedisRepository(&RedisRepoConfig{
		Client:        s.mockClient,
		UUIDGenerator: &internaluuid.SequenceGenerator{IDs: []string{"actor-1", "actor-2"}},
	})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

// matchKeyOnly compares only the command name and key, since stored records
// embed write timestamps.
func matchKeyOnly(expected, actual []interface{}) error {
	for i := 0; i < 2 && i < len(expected); i++ {
		if fmt.Sprint(expected[i]) != fmt.Sprint(actual[i]) {
			return fmt.Errorf("arg %d: expected %v, got %v", i, expected[i], actual[i])
		}
	}
	return nil
}

func (s *RedisRepoTestSuite) seededRecord(id, ownerID string) string {
	a := testutils.CreateTestCharacter(id, ownerID, "Aldric")
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	data, err := json.Marshal(&actorData{Actor: a, CreatedAt: now, UpdatedAt: now})
	s.Require().NoError(err)
	return string(data)
}

func (s *RedisRepoTestSuite) TestCreate() {
	ctx := context.Background()
	a := testutils.CreateTestCharacter("char-1", "owner-1", "Aldric")

	s.mock.ExpectExists("actor:char-1").SetVal(0)
	s.mock.CustomMatch(matchKeyOnly).ExpectSet("actor:char-1", "", 0).SetVal("OK")
	s.mock.ExpectSAdd("owner:owner-1:actors", "char-1").SetVal(1)

	s.NoError(s.repo.Create(ctx, a))
}

func (s *RedisRepoTestSuite) TestCreateGeneratesID() {
	ctx := context.Background()
	a := testutils.CreateTestCharacter("", "owner-1", "Aldric")
	a.Items = nil

	s.mock.ExpectExists("actor:actor-1").SetVal(0)
	s.mock.CustomMatch(matchKeyOnly).ExpectSet("actor:actor-1", "", 0).SetVal("OK")
	s.mock.ExpectSAdd("owner:owner-1:actors", "actor-1").SetVal(1)

	s.NoError(s.repo.Create(ctx, a))
	s.Equal("actor-1", a.ID)
}

func (s *RedisRepoTestSuite) TestCreateAlreadyExists() {
	ctx := context.Background()
	a := testutils.CreateTestCharacter("char-1", "owner-1", "Aldric")

	s.mock.ExpectExists("actor:char-1").SetVal(1)

	err := s.repo.Create(ctx, a)
	s.Error(err)
	s.Equal(trpgerr.CodeAlreadyExists, trpgerr.GetCode(err))
}

func (s *RedisRepoTestSuite) TestCreateValidation() {
	ctx := context.Background()

	s.Error(s.repo.Create(ctx, nil))

	a := testutils.CreateTestCharacter("char-1", "", "Aldric")
	err := s.repo.Create(ctx, a)
	s.Error(err)
	s.Equal(trpgerr.CodeInvalidArgument, trpgerr.GetCode(err))
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()

	s.mock.ExpectGet("actor:char-1").SetVal(s.seededRecord("char-1", "owner-1"))

	a, err := s.repo.Get(ctx, "char-1")
	s.NoError(err)
	s.Equal("char-1", a.ID)
	s.Equal("owner-1", a.OwnerID)
	s.Len(a.Items, 1)
}

func (s *RedisRepoTestSuite) TestGetNotFound() {
	ctx := context.Background()

	s.mock.ExpectGet("actor:missing").RedisNil()

	_, err := s.repo.Get(ctx, "missing")
	s.Error(err)
	s.True(trpgerr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestGetDependencyError() {
	ctx := context.Background()

	s.mock.ExpectGet("actor:char-1").SetErr(errors.New("redis error"))

	_, err := s.repo.Get(ctx, "char-1")
	s.Error(err)
	s.False(trpgerr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestGetEmptyID() {
	_, err := s.repo.Get(context.Background(), "")
	s.Error(err)
	s.Equal(trpgerr.CodeInvalidArgument, trpgerr.GetCode(err))
}

func (s *RedisRepoTestSuite) TestListByOwner() {
	ctx := context.Background()

	s.mock.ExpectSMembers("owner:owner-1:actors").SetVal([]string{"char-1"})
	s.mock.ExpectGet("actor:char-1").SetVal(s.seededRecord("char-1", "owner-1"))

	actors, err := s.repo.ListByOwner(ctx, "owner-1")
	s.NoError(err)
	s.Len(actors, 1)
	s.Equal("char-1", actors[0].ID)
}

func (s *RedisRepoTestSuite) TestListByOwnerSkipsMissingRecords() {
	ctx := context.Background()

	s.mock.ExpectSMembers("owner:owner-1:actors").SetVal([]string{"ghost"})
	s.mock.ExpectGet("actor:ghost").RedisNil()

	actors, err := s.repo.ListByOwner(ctx, "owner-1")
	s.NoError(err)
	s.Empty(actors)
}

func (s *RedisRepoTestSuite) TestUpdate() {
	ctx := context.Background()
	a := testutils.CreateTestCharacter("char-1", "owner-1", "Aldric")
	a.Name = "Aldric the Bold"

	s.mock.ExpectGet("actor:char-1").SetVal(s.seededRecord("char-1", "owner-1"))
	s.mock.CustomMatch(matchKeyOnly).ExpectSet("actor:char-1", "", 0).SetVal("OK")

	s.NoError(s.repo.Update(ctx, a))
}

func (s *RedisRepoTestSuite) TestUpdateReindexesOnOwnerChange() {
	ctx := context.Background()
	a := testutils.CreateTestCharacter("char-1", "owner-2", "Aldric")

	s.mock.ExpectGet("actor:char-1").SetVal(s.seededRecord("char-1", "owner-1"))
	s.mock.CustomMatch(matchKeyOnly).ExpectSet("actor:char-1", "", 0).SetVal("OK")
	s.mock.ExpectSRem("owner:owner-1:actors", "char-1").SetVal(1)
	s.mock.ExpectSAdd("owner:owner-2:actors", "char-1").SetVal(1)

	s.NoError(s.repo.Update(ctx, a))
}

func (s *RedisRepoTestSuite) TestUpdateNotFound() {
	ctx := context.Background()
	a := testutils.CreateTestCharacter("char-1", "owner-1", "Aldric")

	s.mock.ExpectGet("actor:char-1").RedisNil()

	err := s.repo.Update(ctx, a)
	s.True(trpgerr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestUpdateItemsRejectsUnknownItem() {
	ctx := context.Background()

	s.mock.ExpectGet("actor:char-1").SetVal(s.seededRecord("char-1", "owner-1"))

	err := s.repo.UpdateItems(ctx, "char-1", []item.Update{
		{ID: "no-such-item", UsesValue: intPtr(1)},
	})
	s.Error(err)
	s.True(trpgerr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestUpdateItemsEmptyBatchIsNoop() {
	s.NoError(s.repo.UpdateItems(context.Background(), "char-1", nil))
}

func (s *RedisRepoTestSuite) TestDelete() {
	ctx := context.Background()

	s.mock.ExpectGet("actor:char-1").SetVal(s.seededRecord("char-1", "owner-1"))
	s.mock.ExpectDel("actor:char-1").SetVal(1)
	s.mock.ExpectSRem("owner:owner-1:actors", "char-1").SetVal(1)

	s.NoError(s.repo.Delete(ctx, "char-1"))
}

func (s *RedisRepoTestSuite) TestDeleteNotFound() {
	ctx := context.Background()

	s.mock.ExpectGet("actor:missing").RedisNil()

	err := s.repo.Delete(ctx, "missing")
	s.True(trpgerr.IsNotFound(err))
}

func intPtr(v int) *int {
	return &v
}
