package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hostdeck/infras/otel"
	"hostdeck/infras/postgres"
	"hostdeck/internal/domains/integration/model"
	"hostdeck/shared/constant"
	"hostdeck/shared/logger"

	sq "github.com/Masterminds/squirrel"
)

var selectColumns = []string{
	model.FieldID,
	model.FieldOwnerID,
	model.FieldPlatform,
	model.FieldConnected,
	model.FieldAPIKeyHint,
	model.FieldLastSync,
	constant.FieldCreatedAt,
	constant.FieldModifiedAt,
	constant.FieldCreatedBy,
	constant.FieldModifiedBy,
}

type Integration interface {
	GetByOwner(ctx context.Context, ownerID string) ([]model.Integration, error)
	// Upsert stores the connection state of one (owner, platform) pair.
	Upsert(ctx context.Context, integration model.Integration) error
}

type repositoryImpl struct {
	db      *postgres.Connection
	otel    otel.Otel
	builder sq.StatementBuilderType
}

func New(db *postgres.Connection, otel otel.Otel) Integration {
	return &repositoryImpl{
		db:      db,
		otel:    otel,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repositoryImpl) GetByOwner(ctx context.Context, ownerID string) (res []model.Integration, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".integration.GetByOwner")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query, args, err := r.byOwnerQuery(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to build integration query: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	res = []model.Integration{}

	if err = r.db.Read.SelectContext(ctx, &res, query, args...); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get integrations: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Upsert(ctx context.Context, integration model.Integration) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".integration.Upsert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query, args, err := r.upsertQuery(integration)
	if err != nil {
		return fmt.Errorf("failed to build integration upsert: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = r.db.Write.ExecContext(ctx, query, args...); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to upsert integration: %w", err)
	}

	return nil
}

func (r *repositoryImpl) byOwnerQuery(ownerID string) (string, []any, error) {
	return r.builder.
		Select(selectColumns...).
		From(model.TableName).
		Where(sq.Eq{model.FieldOwnerID: ownerID}).
		OrderBy(model.FieldPlatform).
		ToSql()
}

func (r *repositoryImpl) upsertQuery(i model.Integration) (string, []any, error) {
	return r.builder.
		Insert(model.TableName).
		Columns(selectColumns...).
		Values(i.ID, i.OwnerID, i.Platform, i.Connected, i.APIKeyHint, i.LastSync, i.CreatedAt, i.ModifiedAt, i.CreatedBy, i.ModifiedBy).
		Suffix("ON CONFLICT (owner_id, platform) DO UPDATE SET " +
			"connected = EXCLUDED.connected, api_key_hint = EXCLUDED.api_key_hint, last_sync = EXCLUDED.last_sync, " +
			"modified_at = EXCLUDED.modified_at, modified_by = EXCLUDED.modified_by").
		ToSql()
}
