package shared_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"hostdeck/shared"
	cacheMocks "hostdeck/shared/cache/mocks"
	"hostdeck/shared/constant"
	"hostdeck/shared/dto"
	"hostdeck/shared/failure"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "no data", total: 0, limit: 10, expected: 1},
		{name: "exact pages", total: 20, limit: 10, expected: 2},
		{name: "partial last page", total: 21, limit: 10, expected: 3},
		{name: "no limit", total: 21, limit: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	price := 0.0
	title := "Beachfront Villa"

	req := struct {
		Title   *string  `db:"title"`
		Price   *float64 `db:"airbnb_price"`
		Skipped string   `db:"location"`
		NoTag   string
	}{
		Title: &title,
		Price: &price,
		NoTag: "ignored",
	}

	fields := shared.TransformFields(req, "host-1")

	assert.Equal(t, "Beachfront Villa", fields["title"])
	assert.Equal(t, 0.0, fields["airbnb_price"])
	assert.NotContains(t, fields, "location")
	assert.Equal(t, "host-1", fields[constant.FieldModifiedBy])
	assert.Contains(t, fields, constant.FieldModifiedAt)
	assert.Len(t, fields, 4)
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("abc", "id", "listings")

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(listings.id = :id)", where)
	assert.Equal(t, "abc", args["id"])
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "listing:get", shared.BuildCacheKey("listing:get"))
	assert.Equal(t, "listing:get:owner:42", shared.BuildCacheKey("listing:get", "owner", "42"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	filterA := dto.FilterGroup{Filters: []any{dto.Filter{Field: "owner_id", Value: "a", Operator: dto.FilterOperatorEq}}}
	filterB := dto.FilterGroup{Filters: []any{dto.Filter{Field: "owner_id", Value: "b", Operator: dto.FilterOperatorEq}}}
	params := dto.QueryParams{Page: 1, Limit: 10}

	keyA := shared.BuildCacheKeyWithQuery("listing:get_all", params, filterA)
	keyB := shared.BuildCacheKeyWithQuery("listing:get_all", params, filterB)

	assert.NotEqual(t, keyA, keyB)
	assert.Equal(t, keyA, shared.BuildCacheKeyWithQuery("listing:get_all", params, filterA))
	assert.Contains(t, keyA, "listing:get_all:")
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "listing:get_all*").Return(nil)
	shared.InvalidateCaches(context.Background(), mockCache, "listing:get_all")

	mockCache.EXPECT().Clear(gomock.Any(), "listing:count*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), mockCache, "listing:count")
}

func TestSimulateLatency(t *testing.T) {
	assert.NoError(t, shared.SimulateLatency(context.Background(), 0))
	assert.NoError(t, shared.SimulateLatency(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, shared.SimulateLatency(ctx, time.Hour))
}

func TestMockDelay(t *testing.T) {
	assert.Equal(t, 500*time.Millisecond, shared.MockDelay(500))
	assert.Equal(t, time.Duration(0), shared.MockDelay(0))
}

func TestHostID(t *testing.T) {
	hostID, err := shared.HostID(context.WithValue(context.Background(), constant.ContextKeyHostID, "host-1"))
	assert.NoError(t, err)
	assert.Equal(t, "host-1", hostID)

	_, err = shared.HostID(context.Background())
	assert.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
}
