package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hostdeck/infras/otel"
	"hostdeck/infras/postgres"
	"hostdeck/internal/domains/listing/model"
	"hostdeck/shared/constant"
	gDto "hostdeck/shared/dto"
	"hostdeck/shared/logger"
	gRepo "hostdeck/shared/repository"
	"hostdeck/shared/timezone"

	sq "github.com/Masterminds/squirrel"
)

var ErrNotFound = errors.New("listing not found")

type Listing interface {
	Insert(ctx context.Context, model model.Listing) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Listing, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Listing, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetByOwner(ctx context.Context, ownerID string) ([]model.Listing, error)
	UpdateAvailability(ctx context.Context, id, ownerID string, availability model.Availability) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Listing]
	db      *postgres.Connection
	otel    otel.Otel
	builder sq.StatementBuilderType
}

func New(db *postgres.Connection, otel otel.Otel) Listing {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Listing](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
		builder:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// GetByOwner returns every listing of the owner, newest first.
func (r *repositoryImpl) GetByOwner(ctx context.Context, ownerID string) (res []model.Listing, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".listing.GetByOwner")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query, args, err := r.byOwnerQuery(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to build listing query: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	res = []model.Listing{}

	if err = r.db.Read.SelectContext(ctx, &res, query, args...); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get listings by owner: %w", err)
	}

	return res, nil
}

// UpdateAvailability replaces the availability of one owned listing.
func (r *repositoryImpl) UpdateAvailability(ctx context.Context, id, ownerID string, availability model.Availability) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".listing.UpdateAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query, args, err := r.availabilityQuery(id, ownerID, availability, timezone.Now())
	if err != nil {
		return fmt.Errorf("failed to build availability update: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := r.db.Write.ExecContext(ctx, query, args...)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to update availability: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *repositoryImpl) byOwnerQuery(ownerID string) (string, []any, error) {
	return r.builder.
		Select(r.InsertColumns...).
		From(model.TableName).
		Where(sq.Eq{model.FieldOwnerID: ownerID}).
		OrderBy(constant.FieldCreatedAt + " DESC").
		ToSql()
}

func (r *repositoryImpl) availabilityQuery(id, ownerID string, availability model.Availability, now time.Time) (string, []any, error) {
	return r.builder.
		Update(model.TableName).
		Set(model.FieldAvailability, availability.Normalize()).
		Set(constant.FieldModifiedAt, now).
		Set(constant.FieldModifiedBy, ownerID).
		Where(sq.Eq{model.FieldID: id, model.FieldOwnerID: ownerID}).
		ToSql()
}
