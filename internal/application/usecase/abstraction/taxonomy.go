package abstraction

import (
	"context"

	"inkwell/internal/domain/dto"
	"inkwell/internal/domain/entity"
	"inkwell/internal/domain/model"
)

// Taxonomy maintains the category/subcategory hierarchy as the canonical
// vocabulary for blog classification.
type Taxonomy interface {
	// ResolveOrCreate finds the named category and subcategory, creating
	// whichever is missing, and returns their stable identifiers.
	ResolveOrCreate(ctx context.Context, categoryName, subcategoryName string) (entity.TaxonomyResolution, error)
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest,
		thumbnail *dto.ThumbnailUpload) (dto.CategoryView, error)
	UpdateCategory(ctx context.Context, id string, req dto.UpdateCategoryRequest,
		thumbnail *dto.ThumbnailUpload) (dto.CategoryView, error)
	DeleteCategory(ctx context.Context, id string) error
	DeleteSubcategory(ctx context.Context, categoryID, subcategoryName string) error
	ListCategories(ctx context.Context) ([]dto.CategoryView, error)
	BlogsByCategory(ctx context.Context, name string) ([]dto.BlogView, error)
	// Denormalize turns stored identifier references into display values:
	// nested category name and flat subcategory name (null when dangling).
	Denormalize(ctx context.Context, blogs []model.Blog) ([]dto.BlogView, error)
}
