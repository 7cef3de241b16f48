package shared_test

import (
	"context"
	"errors"
	"paroisse/shared"
	"paroisse/shared/cache/mocks"
	"paroisse/shared/dto"
	"paroisse/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCalculateTotalPage(t *testing.T) {
	assert.Equal(t, 1, shared.CalculateTotalPage(0, 10))
	assert.Equal(t, 1, shared.CalculateTotalPage(5, 0))
	assert.Equal(t, 3, shared.CalculateTotalPage(21, 10))
	assert.Equal(t, 2, shared.CalculateTotalPage(20, 10))
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID(int64(7), "id", "parishes")

	where, args := group.GetWhereClause()

	assert.Equal(t, "(parishes.id = :id)", where)
	assert.Equal(t, int64(7), args["id"])
}

func TestFilterAllEq(t *testing.T) {
	group := shared.FilterAllEq("intentions", []string{"parish_id", "celebration_date"}, []any{int64(3), "15/03/2026"})

	where, args := group.GetWhereClause()

	assert.Equal(t, dto.FilterGroupOperatorAnd, group.Operator)
	assert.Equal(t, "(intentions.parish_id = :parish_id AND intentions.celebration_date = :celebration_date)", where)
	assert.Equal(t, "15/03/2026", args["celebration_date"])
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "parish:get:12", shared.BuildCacheKey("parish:get", 12))
	assert.Equal(t, "parish:gets", shared.BuildCacheKey("parish:gets"))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := mocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().Clear(gomock.Any(), "parish:gets*").Return(nil)
	redisCache.EXPECT().Clear(gomock.Any(), "schedule:catalog*").Return(errors.New("redis down"))

	shared.InvalidateCaches(context.Background(), redisCache, "parish:gets")
	shared.InvalidateCaches(context.Background(), redisCache, "schedule:catalog")
}

func TestParseID(t *testing.T) {
	id, err := shared.ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "0", "-3", "abc"} {
		_, err := shared.ParseID(raw)
		require.Error(t, err, raw)
		assert.Equal(t, failure.KindValidation, failure.GetKind(err), raw)
	}
}
