package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkwell/internal/domain/model"
)

type AdminWriter interface {
	Insert(ctx context.Context, admin *model.Admin) error
}

type AdminRetriever interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Admin, error)
	GetByEmail(ctx context.Context, email string) (*model.Admin, error)
}
