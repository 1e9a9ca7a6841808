package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkwell/internal/domain/apperror"
	"inkwell/internal/domain/dto"
	"inkwell/internal/domain/entity"
	"inkwell/internal/domain/model"
	"inkwell/internal/domain/repository/database"
)

// In-memory stand-ins for the store interfaces. They mirror the real
// implementations' error contracts (apperror kinds, duplicate guards) so the
// usecases exercise the same paths they would against Mongo.

type fakeAdminStore struct {
	admins map[primitive.ObjectID]*model.Admin
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{admins: map[primitive.ObjectID]*model.Admin{}}
}

func (s *fakeAdminStore) Insert(_ context.Context, admin *model.Admin) error {
	for _, existing := range s.admins {
		if existing.Email == admin.Email {
			return apperror.Validation("email already exists")
		}
	}

	admin.ID = primitive.NewObjectID()
	s.admins[admin.ID] = admin

	return nil
}

func (s *fakeAdminStore) GetByID(_ context.Context, id primitive.ObjectID) (*model.Admin, error) {
	admin, ok := s.admins[id]
	if !ok {
		return nil, apperror.NotFound("admin not found")
	}

	return admin, nil
}

func (s *fakeAdminStore) GetByEmail(_ context.Context, email string) (*model.Admin, error) {
	for _, admin := range s.admins {
		if admin.Email == email {
			return admin, nil
		}
	}

	return nil, apperror.NotFound("admin not found")
}

type fakeCategoryStore struct {
	categories map[primitive.ObjectID]*model.Category
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{categories: map[primitive.ObjectID]*model.Category{}}
}

func (s *fakeCategoryStore) Insert(_ context.Context, category *model.Category) error {
	for _, existing := range s.categories {
		if strings.EqualFold(existing.Name, category.Name) {
			return apperror.Conflict("category already exists")
		}
	}

	category.ID = primitive.NewObjectID()
	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now
	s.categories[category.ID] = category

	return nil
}

func (s *fakeCategoryStore) PushSubcategory(_ context.Context, categoryID primitive.ObjectID, sub model.Subcategory) (bool, error) {
	category, ok := s.categories[categoryID]
	if !ok {
		return false, apperror.NotFound("category not found")
	}
	if category.SubcategoryByName(sub.Name) != nil {
		return false, nil
	}

	category.Subcategories = append(category.Subcategories, sub)

	return true, nil
}

func (s *fakeCategoryStore) RemoveSubcategory(_ context.Context, categoryID, subcategoryID primitive.ObjectID) error {
	category, ok := s.categories[categoryID]
	if !ok {
		return apperror.NotFound("category not found")
	}

	kept := category.Subcategories[:0]
	for _, sub := range category.Subcategories {
		if sub.ID != subcategoryID {
			kept = append(kept, sub)
		}
	}
	category.Subcategories = kept

	return nil
}

func (s *fakeCategoryStore) Update(_ context.Context, id primitive.ObjectID, update database.CategoryUpdate) error {
	category, ok := s.categories[id]
	if !ok {
		return apperror.NotFound("category not found")
	}

	if update.Name != "" {
		for _, existing := range s.categories {
			if existing.ID != id && strings.EqualFold(existing.Name, update.Name) {
				return apperror.Conflict("category already exists")
			}
		}
		category.Name = update.Name
	}
	if update.Description != nil {
		category.Description = update.Description
	}
	if update.Thumbnail != nil {
		category.Thumbnail = update.Thumbnail
	}
	category.UpdatedAt = time.Now()

	return nil
}

func (s *fakeCategoryStore) GetByID(_ context.Context, id primitive.ObjectID) (*model.Category, error) {
	category, ok := s.categories[id]
	if !ok {
		return nil, apperror.NotFound("category not found")
	}

	return category, nil
}

func (s *fakeCategoryStore) GetByName(_ context.Context, name string) (*model.Category, error) {
	for _, category := range s.categories {
		if strings.EqualFold(category.Name, name) {
			return category, nil
		}
	}

	return nil, apperror.NotFound("category not found")
}

func (s *fakeCategoryStore) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]model.Category, error) {
	out := make([]model.Category, 0, len(ids))
	for _, id := range ids {
		if category, ok := s.categories[id]; ok {
			out = append(out, *category)
		}
	}

	return out, nil
}

func (s *fakeCategoryStore) GetAll(_ context.Context) ([]model.Category, error) {
	out := make([]model.Category, 0, len(s.categories))
	for _, category := range s.categories {
		out = append(out, *category)
	}

	return out, nil
}

func (s *fakeCategoryStore) Remove(_ context.Context, id primitive.ObjectID) error {
	if _, ok := s.categories[id]; !ok {
		return apperror.NotFound("category not found")
	}
	delete(s.categories, id)

	return nil
}

func categoryThumbnailUpdate(objectID string) database.CategoryUpdate {
	return database.CategoryUpdate{
		Thumbnail: &model.File{ID: objectID, URL: "http://images.local/" + objectID},
	}
}

type fakeBlogStore struct {
	blogs map[primitive.ObjectID]*model.Blog
}

func newFakeBlogStore() *fakeBlogStore {
	return &fakeBlogStore{blogs: map[primitive.ObjectID]*model.Blog{}}
}

func (s *fakeBlogStore) Insert(_ context.Context, blog *model.Blog) error {
	blog.ID = primitive.NewObjectID()
	now := time.Now()
	blog.CreatedAt = now
	blog.UpdatedAt = now
	s.blogs[blog.ID] = blog

	return nil
}

func (s *fakeBlogStore) Update(_ context.Context, id primitive.ObjectID, update database.BlogUpdate) (*model.Blog, error) {
	blog, ok := s.blogs[id]
	if !ok {
		return nil, apperror.NotFound("blog not found")
	}

	if update.Title != "" {
		blog.Title = update.Title
	}
	if update.MetaDescription != "" {
		blog.MetaDescription = update.MetaDescription
	}
	if update.Content != "" {
		blog.Content = update.Content
	}
	if update.CategoryID != nil {
		blog.CategoryID = *update.CategoryID
	}
	if update.SubcategoryID != nil {
		blog.SubcategoryID = *update.SubcategoryID
	}
	if update.Tags != nil {
		blog.Tags = update.Tags
	}
	if update.Thumbnail != nil {
		blog.Thumbnail = update.Thumbnail
	}
	blog.UpdatedAt = time.Now()

	return blog, nil
}

func (s *fakeBlogStore) GetByID(_ context.Context, id primitive.ObjectID) (*model.Blog, error) {
	blog, ok := s.blogs[id]
	if !ok {
		return nil, apperror.NotFound("blog not found")
	}

	return blog, nil
}

func (s *fakeBlogStore) List(_ context.Context, _ dto.ListParams, _ int64) ([]model.Blog, int64, error) {
	out := make([]model.Blog, 0, len(s.blogs))
	for _, blog := range s.blogs {
		out = append(out, *blog)
	}

	return out, int64(len(out)), nil
}

func (s *fakeBlogStore) ListByCategory(_ context.Context, categoryID primitive.ObjectID) ([]model.Blog, error) {
	out := make([]model.Blog, 0)
	for _, blog := range s.blogs {
		if blog.CategoryID == categoryID {
			out = append(out, *blog)
		}
	}

	return out, nil
}

func (s *fakeBlogStore) EstimatedCount(_ context.Context) (int64, error) {
	return int64(len(s.blogs)), nil
}

func (s *fakeBlogStore) CountByCategory(_ context.Context, categoryID primitive.ObjectID) (int64, error) {
	var n int64
	for _, blog := range s.blogs {
		if blog.CategoryID == categoryID {
			n++
		}
	}

	return n, nil
}

func (s *fakeBlogStore) CountBySubcategory(_ context.Context, categoryID, subcategoryID primitive.ObjectID) (int64, error) {
	var n int64
	for _, blog := range s.blogs {
		if blog.CategoryID == categoryID && blog.SubcategoryID == subcategoryID {
			n++
		}
	}

	return n, nil
}

func (s *fakeBlogStore) Remove(_ context.Context, id primitive.ObjectID) error {
	if _, ok := s.blogs[id]; !ok {
		return apperror.NotFound("blog not found")
	}
	delete(s.blogs, id)

	return nil
}

type fakeUploader struct {
	uploads int
	failErr error
}

func (u *fakeUploader) Upload(_ context.Context, body io.Reader, _ int64, folder, _ string) (entity.UploadResult, error) {
	if u.failErr != nil {
		return entity.UploadResult{}, u.failErr
	}

	_, _ = io.Copy(io.Discard, body)
	u.uploads++
	id := fmt.Sprintf("%s/object-%d", folder, u.uploads)

	return entity.UploadResult{
		ID:  id,
		URL: "http://images.local/" + id,
	}, nil
}

type fakeImageRemover struct {
	removed []string
	failErr error
}

func (r *fakeImageRemover) Remove(_ context.Context, objectID string) error {
	if r.failErr != nil {
		return r.failErr
	}
	r.removed = append(r.removed, objectID)

	return nil
}

type fakePublisher struct {
	events []string
}

func (p *fakePublisher) Publish(_ context.Context, event, entityID string) error {
	p.events = append(p.events, event+":"+entityID)

	return nil
}

type fakeSessionStore struct {
	revoked map[string]bool
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{revoked: map[string]bool{}}
}

func (s *fakeSessionStore) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if ttl > 0 {
		s.revoked[tokenID] = true
	}

	return nil
}

func (s *fakeSessionStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return s.revoked[tokenID], nil
}
