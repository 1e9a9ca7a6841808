package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkwell/internal/domain/model"
)

// CategoryUpdate carries replacement values computed by the resolver; the
// Description slice is the full merged list, not a delta.
type CategoryUpdate struct {
	Name        string
	Description []string
	Thumbnail   *model.File
}

type CategoryWriter interface {
	Insert(ctx context.Context, category *model.Category) error
	// PushSubcategory appends sub unless an entry with the same lowercased
	// name already exists. Reports whether the append happened.
	PushSubcategory(ctx context.Context, categoryID primitive.ObjectID, sub model.Subcategory) (bool, error)
	RemoveSubcategory(ctx context.Context, categoryID, subcategoryID primitive.ObjectID) error
	Update(ctx context.Context, id primitive.ObjectID, update CategoryUpdate) error
}

type CategoryRetriever interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Category, error)
	// GetByName matches the exact name case-insensitively.
	GetByName(ctx context.Context, name string) (*model.Category, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Category, error)
	GetAll(ctx context.Context) ([]model.Category, error)
}

type CategoryRemover interface {
	Remove(ctx context.Context, id primitive.ObjectID) error
}
