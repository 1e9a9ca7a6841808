package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkwell/internal/domain/dto"
	"inkwell/internal/domain/model"
)

// BlogUpdate carries a partial update; blank strings and nil fields leave the
// stored value unchanged.
type BlogUpdate struct {
	Title           string
	MetaDescription string
	Content         string
	CategoryID      *primitive.ObjectID
	SubcategoryID   *primitive.ObjectID
	Tags            []string
	Thumbnail       *model.File
}

type BlogWriter interface {
	Insert(ctx context.Context, blog *model.Blog) error
	Update(ctx context.Context, id primitive.ObjectID, update BlogUpdate) (*model.Blog, error)
}

type BlogRetriever interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Blog, error)
}

type BlogLister interface {
	// List composes the search/filter/pagination query from the raw request
	// parameters and returns one page plus the count of all matches.
	List(ctx context.Context, params dto.ListParams, resultPerPage int64) ([]model.Blog, int64, error)
	ListByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]model.Blog, error)
	EstimatedCount(ctx context.Context) (int64, error)
	CountByCategory(ctx context.Context, categoryID primitive.ObjectID) (int64, error)
	CountBySubcategory(ctx context.Context, categoryID, subcategoryID primitive.ObjectID) (int64, error)
}

type BlogRemover interface {
	Remove(ctx context.Context, id primitive.ObjectID) error
}
