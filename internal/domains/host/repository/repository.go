package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hostdeck/infras/otel"
	"hostdeck/infras/postgres"
	"hostdeck/internal/domains/host/model"
	gDto "hostdeck/shared/dto"
	gRepo "hostdeck/shared/repository"
)

type Host interface {
	Insert(ctx context.Context, model model.Host) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Host, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Host]
}

func New(db *postgres.Connection, otel otel.Otel) Host {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Host](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
