package repository

import (
	"testing"
	"time"

	"hostdeck/internal/domains/integration/model"
	listingModel "hostdeck/internal/domains/listing/model"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository() *repositoryImpl {
	return &repositoryImpl{builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar)}
}

func TestByOwnerQuery(t *testing.T) {
	query, args, err := newTestRepository().byOwnerQuery("host-1")

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, owner_id, platform, connected, api_key_hint, last_sync, created_at, modified_at, "+
		"created_by, modified_by FROM integrations WHERE owner_id = $1 ORDER BY platform", query)
	assert.Equal(t, []any{"host-1"}, args)
}

func TestUpsertQuery(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	query, args, err := newTestRepository().upsertQuery(model.Integration{
		ID:         "integration-1",
		OwnerID:    "host-1",
		Platform:   listingModel.PlatformVrbo,
		Connected:  true,
		APIKeyHint: "****abcd",
		LastSync:   &now,
	})

	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO integrations (id,owner_id,platform,connected,api_key_hint,last_sync,")
	assert.Contains(t, query, "VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10) ON CONFLICT (owner_id, platform) DO UPDATE SET")
	require.Len(t, args, 10)
	assert.Equal(t, listingModel.PlatformVrbo, args[2])
	assert.Equal(t, true, args[3])
	assert.Equal(t, "****abcd", args[4])
}
