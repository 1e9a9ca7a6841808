package abstraction

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkwell/internal/domain/dto"
)

type Blogs interface {
	Create(ctx context.Context, authorID primitive.ObjectID, req dto.CreateBlogRequest,
		thumbnail *dto.ThumbnailUpload) (dto.BlogView, error)
	List(ctx context.Context, params dto.ListParams) (dto.ListResponse, error)
	Get(ctx context.Context, id string) (dto.BlogView, error)
	Update(ctx context.Context, authorID primitive.ObjectID, id string, req dto.UpdateBlogRequest,
		thumbnail *dto.ThumbnailUpload) (dto.BlogView, error)
	Delete(ctx context.Context, authorID primitive.ObjectID, id string) error
}
