package handler

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkwell/internal/domain/dto"
	"inkwell/internal/domain/entity"
	"inkwell/internal/domain/model"
)

// Function-backed stubs for the usecase interfaces. Unset functions fail the
// handler with a nil dereference, which is exactly what an unexpected call
// deserves in a test.

type stubAuth struct {
	registerFn func(ctx context.Context, req dto.RegisterRequest) (*model.Admin, error)
	loginFn    func(ctx context.Context, req dto.LoginRequest) (string, *model.Admin, error)
	logoutFn   func(ctx context.Context, tokenID string, expiresAt time.Time) error
}

func (s *stubAuth) Register(ctx context.Context, req dto.RegisterRequest) (*model.Admin, error) {
	return s.registerFn(ctx, req)
}

func (s *stubAuth) Login(ctx context.Context, req dto.LoginRequest) (string, *model.Admin, error) {
	return s.loginFn(ctx, req)
}

func (s *stubAuth) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	return s.logoutFn(ctx, tokenID, expiresAt)
}

type stubBlogs struct {
	createFn func(ctx context.Context, authorID primitive.ObjectID, req dto.CreateBlogRequest,
		thumbnail *dto.ThumbnailUpload) (dto.BlogView, error)
	listFn   func(ctx context.Context, params dto.ListParams) (dto.ListResponse, error)
	getFn    func(ctx context.Context, id string) (dto.BlogView, error)
	updateFn func(ctx context.Context, authorID primitive.ObjectID, id string, req dto.UpdateBlogRequest,
		thumbnail *dto.ThumbnailUpload) (dto.BlogView, error)
	deleteFn func(ctx context.Context, authorID primitive.ObjectID, id string) error
}

func (s *stubBlogs) Create(ctx context.Context, authorID primitive.ObjectID, req dto.CreateBlogRequest,
	thumbnail *dto.ThumbnailUpload,
) (dto.BlogView, error) {
	return s.createFn(ctx, authorID, req, thumbnail)
}

func (s *stubBlogs) List(ctx context.Context, params dto.ListParams) (dto.ListResponse, error) {
	return s.listFn(ctx, params)
}

func (s *stubBlogs) Get(ctx context.Context, id string) (dto.BlogView, error) {
	return s.getFn(ctx, id)
}

func (s *stubBlogs) Update(ctx context.Context, authorID primitive.ObjectID, id string, req dto.UpdateBlogRequest,
	thumbnail *dto.ThumbnailUpload,
) (dto.BlogView, error) {
	return s.updateFn(ctx, authorID, id, req, thumbnail)
}

func (s *stubBlogs) Delete(ctx context.Context, authorID primitive.ObjectID, id string) error {
	return s.deleteFn(ctx, authorID, id)
}

type stubTaxonomy struct {
	resolveFn func(ctx context.Context, categoryName, subcategoryName string) (entity.TaxonomyResolution, error)
	createFn  func(ctx context.Context, req dto.CreateCategoryRequest,
		thumbnail *dto.ThumbnailUpload) (dto.CategoryView, error)
	updateFn func(ctx context.Context, id string, req dto.UpdateCategoryRequest,
		thumbnail *dto.ThumbnailUpload) (dto.CategoryView, error)
	deleteFn      func(ctx context.Context, id string) error
	deleteSubFn   func(ctx context.Context, categoryID, subcategoryName string) error
	listFn        func(ctx context.Context) ([]dto.CategoryView, error)
	byCategoryFn  func(ctx context.Context, name string) ([]dto.BlogView, error)
	denormalizeFn func(ctx context.Context, blogs []model.Blog) ([]dto.BlogView, error)
}

func (s *stubTaxonomy) ResolveOrCreate(ctx context.Context, categoryName, subcategoryName string) (entity.TaxonomyResolution, error) {
	return s.resolveFn(ctx, categoryName, subcategoryName)
}

func (s *stubTaxonomy) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest,
	thumbnail *dto.ThumbnailUpload,
) (dto.CategoryView, error) {
	return s.createFn(ctx, req, thumbnail)
}

func (s *stubTaxonomy) UpdateCategory(ctx context.Context, id string, req dto.UpdateCategoryRequest,
	thumbnail *dto.ThumbnailUpload,
) (dto.CategoryView, error) {
	return s.updateFn(ctx, id, req, thumbnail)
}

func (s *stubTaxonomy) DeleteCategory(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubTaxonomy) DeleteSubcategory(ctx context.Context, categoryID, subcategoryName string) error {
	return s.deleteSubFn(ctx, categoryID, subcategoryName)
}

func (s *stubTaxonomy) ListCategories(ctx context.Context) ([]dto.CategoryView, error) {
	return s.listFn(ctx)
}

func (s *stubTaxonomy) BlogsByCategory(ctx context.Context, name string) ([]dto.BlogView, error) {
	return s.byCategoryFn(ctx, name)
}

func (s *stubTaxonomy) Denormalize(ctx context.Context, blogs []model.Blog) ([]dto.BlogView, error) {
	return s.denormalizeFn(ctx, blogs)
}
