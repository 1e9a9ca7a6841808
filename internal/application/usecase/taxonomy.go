package usecase

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkwell/internal/domain/apperror"
	"inkwell/internal/domain/dto"
	"inkwell/internal/domain/entity"
	"inkwell/internal/domain/model"
	"inkwell/internal/domain/repository/broker"
	"inkwell/internal/domain/repository/database"
	"inkwell/internal/domain/repository/minio"
	"inkwell/pkg/logger"
)

const categoryThumbnailFolder = "category-thumbnails"

// Taxonomy resolves human-entered category/subcategory names into stable
// identifiers and denormalizes them back into display names at read time.
type Taxonomy struct {
	writer       database.CategoryWriter
	retriever    database.CategoryRetriever
	remover      database.CategoryRemover
	blogLister   database.BlogLister
	admins       database.AdminRetriever
	uploader     minio.Uploader
	imageRemover minio.Remover
	publisher    broker.Publisher
}

func NewTaxonomy(writer database.CategoryWriter, retriever database.CategoryRetriever,
	remover database.CategoryRemover, blogLister database.BlogLister, admins database.AdminRetriever,
	uploader minio.Uploader, imageRemover minio.Remover, publisher broker.Publisher,
) *Taxonomy {
	return &Taxonomy{
		writer:       writer,
		retriever:    retriever,
		remover:      remover,
		blogLister:   blogLister,
		admins:       admins,
		uploader:     uploader,
		imageRemover: imageRemover,
		publisher:    publisher,
	}
}

// ResolveOrCreate is idempotent: resolving the same pair twice yields the same
// identifiers. The unique collated index on category names and the guarded
// subcategory push make the sequence safe under concurrent creation; losers
// of either race simply re-read the winner's document.
func (t *Taxonomy) ResolveOrCreate(ctx context.Context, categoryName, subcategoryName string) (entity.TaxonomyResolution, error) {
	categoryName = strings.TrimSpace(categoryName)
	subcategoryName = strings.TrimSpace(subcategoryName)
	if categoryName == "" || subcategoryName == "" {
		return entity.TaxonomyResolution{}, apperror.Validation("category and subcategory names are required")
	}

	category, err := t.retriever.GetByName(ctx, categoryName)
	if apperror.IsKind(err, apperror.KindNotFound) {
		fresh := &model.Category{Name: categoryName, Subcategories: []model.Subcategory{}}
		switch insertErr := t.writer.Insert(ctx, fresh); {
		case insertErr == nil:
			category = fresh
			t.publish(ctx, "category.created", category.ID.Hex())
		case apperror.IsKind(insertErr, apperror.KindConflict):
			// Lost the create race; the winner's document is authoritative.
			if category, err = t.retriever.GetByName(ctx, categoryName); err != nil {
				return entity.TaxonomyResolution{}, err
			}
		default:
			return entity.TaxonomyResolution{}, insertErr
		}
	} else if err != nil {
		return entity.TaxonomyResolution{}, err
	}

	if sub := category.SubcategoryByName(subcategoryName); sub != nil {
		return entity.TaxonomyResolution{
			CategoryID:      category.ID,
			SubcategoryID:   sub.ID,
			SubcategoryName: sub.Name,
		}, nil
	}

	if _, err := t.writer.PushSubcategory(ctx, category.ID, model.NewSubcategory(subcategoryName)); err != nil {
		return entity.TaxonomyResolution{}, err
	}

	// Re-read to learn which append won; ours may have been beaten by a
	// concurrent resolve of the same name.
	category, err = t.retriever.GetByID(ctx, category.ID)
	if err != nil {
		return entity.TaxonomyResolution{}, err
	}
	sub := category.SubcategoryByName(subcategoryName)
	if sub == nil {
		return entity.TaxonomyResolution{}, apperror.Internal("subcategory vanished after append", nil)
	}

	return entity.TaxonomyResolution{
		CategoryID:      category.ID,
		SubcategoryID:   sub.ID,
		SubcategoryName: sub.Name,
	}, nil
}

// CreateCategory uses idempotent-merge semantics: re-submitting an existing
// name folds net-new subcategories and description text into the existing
// document instead of failing with a duplicate error.
func (t *Taxonomy) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest,
	thumbnail *dto.ThumbnailUpload,
) (dto.CategoryView, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return dto.CategoryView{}, apperror.Validation("category name is required")
	}

	subNames := splitNames(req.SubCategories)
	if len(subNames) == 0 {
		return dto.CategoryView{}, apperror.Validation("at least one subcategory name is required")
	}

	category, err := t.retriever.GetByName(ctx, name)
	created := false
	if apperror.IsKind(err, apperror.KindNotFound) {
		fresh := &model.Category{Name: name, Subcategories: []model.Subcategory{}}
		for _, sub := range subNames {
			if fresh.SubcategoryByName(sub) == nil {
				fresh.Subcategories = append(fresh.Subcategories, model.NewSubcategory(sub))
			}
		}
		if desc := strings.TrimSpace(req.Description); desc != "" {
			fresh.Description = []string{desc}
		}

		switch insertErr := t.writer.Insert(ctx, fresh); {
		case insertErr == nil:
			category, created = fresh, true
		case apperror.IsKind(insertErr, apperror.KindConflict):
			if category, err = t.retriever.GetByName(ctx, name); err != nil {
				return dto.CategoryView{}, err
			}
		default:
			return dto.CategoryView{}, insertErr
		}
	} else if err != nil {
		return dto.CategoryView{}, err
	}

	if !created {
		if err := t.mergeInto(ctx, category, req.Description, subNames); err != nil {
			return dto.CategoryView{}, err
		}
	}

	if thumbnail != nil {
		if err := t.replaceThumbnail(ctx, category, thumbnail); err != nil {
			return dto.CategoryView{}, err
		}
	}

	category, err = t.retriever.GetByID(ctx, category.ID)
	if err != nil {
		return dto.CategoryView{}, err
	}

	if created {
		t.publish(ctx, "category.created", category.ID.Hex())
	} else {
		t.publish(ctx, "category.updated", category.ID.Hex())
	}

	return categoryView(category), nil
}

// UpdateCategory merges the supplied fields; each is independently optional.
func (t *Taxonomy) UpdateCategory(ctx context.Context, id string, req dto.UpdateCategoryRequest,
	thumbnail *dto.ThumbnailUpload,
) (dto.CategoryView, error) {
	categoryID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return dto.CategoryView{}, apperror.Validation("invalid category id")
	}

	category, err := t.retriever.GetByID(ctx, categoryID)
	if err != nil {
		return dto.CategoryView{}, err
	}

	if name := strings.TrimSpace(req.Name); name != "" && name != category.Name {
		if err := t.writer.Update(ctx, categoryID, database.CategoryUpdate{Name: name}); err != nil {
			return dto.CategoryView{}, err
		}
	}

	if err := t.mergeInto(ctx, category, req.Description, splitNames(req.SubCategories)); err != nil {
		return dto.CategoryView{}, err
	}

	if thumbnail != nil {
		if err := t.replaceThumbnail(ctx, category, thumbnail); err != nil {
			return dto.CategoryView{}, err
		}
	}

	category, err = t.retriever.GetByID(ctx, categoryID)
	if err != nil {
		return dto.CategoryView{}, err
	}

	t.publish(ctx, "category.updated", category.ID.Hex())

	return categoryView(category), nil
}

// DeleteCategory refuses while any blog references the category; removing it
// implicitly removes every embedded subcategory.
func (t *Taxonomy) DeleteCategory(ctx context.Context, id string) error {
	categoryID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperror.Validation("invalid category id")
	}

	category, err := t.retriever.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}

	referencing, err := t.blogLister.CountByCategory(ctx, categoryID)
	if err != nil {
		return err
	}
	if referencing > 0 {
		return apperror.Conflict("cannot delete category: blogs still reference it")
	}

	if err := t.remover.Remove(ctx, categoryID); err != nil {
		return err
	}

	if category.Thumbnail != nil {
		if err := t.imageRemover.Remove(ctx, category.Thumbnail.ID); err != nil {
			logger.Error("failed to remove category thumbnail", "id", category.Thumbnail.ID, "err", err)
		}
	}

	t.publish(ctx, "category.deleted", categoryID.Hex())

	return nil
}

func (t *Taxonomy) DeleteSubcategory(ctx context.Context, categoryID, subcategoryName string) error {
	id, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return apperror.Validation("invalid category id")
	}

	category, err := t.retriever.GetByID(ctx, id)
	if err != nil {
		return err
	}

	sub := category.SubcategoryByName(subcategoryName)
	if sub == nil {
		return apperror.NotFound("subcategory not found")
	}

	referencing, err := t.blogLister.CountBySubcategory(ctx, id, sub.ID)
	if err != nil {
		return err
	}
	if referencing > 0 {
		return apperror.Conflict("cannot delete subcategory: blogs still reference it")
	}

	if err := t.writer.RemoveSubcategory(ctx, id, sub.ID); err != nil {
		return err
	}

	t.publish(ctx, "category.updated", id.Hex())

	return nil
}

func (t *Taxonomy) ListCategories(ctx context.Context) ([]dto.CategoryView, error) {
	categories, err := t.retriever.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]dto.CategoryView, 0, len(categories))
	for i := range categories {
		views = append(views, categoryView(&categories[i]))
	}

	return views, nil
}

func (t *Taxonomy) BlogsByCategory(ctx context.Context, name string) ([]dto.BlogView, error) {
	category, err := t.retriever.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}

	blogs, err := t.blogLister.ListByCategory(ctx, category.ID)
	if err != nil {
		return nil, err
	}

	return t.Denormalize(ctx, blogs)
}

// Denormalize replaces stored identifier references with display values. A
// dangling subcategory reference yields a null display name, never an error,
// and the embedded subcategory list is stripped from the nested category.
func (t *Taxonomy) Denormalize(ctx context.Context, blogs []model.Blog) ([]dto.BlogView, error) {
	categoryIDs := make([]primitive.ObjectID, 0, len(blogs))
	seen := make(map[primitive.ObjectID]bool, len(blogs))
	for _, blog := range blogs {
		if !seen[blog.CategoryID] {
			seen[blog.CategoryID] = true
			categoryIDs = append(categoryIDs, blog.CategoryID)
		}
	}

	categories := make(map[primitive.ObjectID]*model.Category, len(categoryIDs))
	if len(categoryIDs) > 0 {
		found, err := t.retriever.GetByIDs(ctx, categoryIDs)
		if err != nil {
			return nil, err
		}
		for i := range found {
			categories[found[i].ID] = &found[i]
		}
	}

	authors := make(map[primitive.ObjectID]*model.Admin)

	views := make([]dto.BlogView, 0, len(blogs))
	for _, blog := range blogs {
		view := dto.BlogView{
			ID:              blog.ID.Hex(),
			Title:           blog.Title,
			MetaDescription: blog.MetaDescription,
			Content:         blog.Content,
			Tags:            blog.Tags,
			Thumbnail:       blog.Thumbnail,
			CreatedAt:       blog.CreatedAt,
			UpdatedAt:       blog.UpdatedAt,
		}
		if view.Tags == nil {
			view.Tags = []string{}
		}

		view.Category = dto.CategoryRef{ID: blog.CategoryID.Hex()}
		if category, ok := categories[blog.CategoryID]; ok {
			view.Category.Name = category.Name
			if sub := category.SubcategoryByID(blog.SubcategoryID); sub != nil {
				subName := sub.Name
				view.SubCategory = &subName
			}
		}

		author, ok := authors[blog.AuthorID]
		if !ok {
			fetched, err := t.admins.GetByID(ctx, blog.AuthorID)
			if err != nil && !apperror.IsKind(err, apperror.KindNotFound) {
				return nil, err
			}
			author = fetched
			authors[blog.AuthorID] = author
		}
		view.Author = dto.AuthorRef{ID: blog.AuthorID.Hex()}
		if author != nil {
			view.Author.FullName = author.FullName
		}

		views = append(views, view)
	}

	return views, nil
}

// mergeInto folds net-new description text and subcategory names into an
// existing category. Descriptions de-duplicate by exact value, subcategory
// names case-insensitively.
func (t *Taxonomy) mergeInto(ctx context.Context, category *model.Category, description string, subNames []string) error {
	for _, name := range subNames {
		if category.SubcategoryByName(name) != nil {
			continue
		}
		if _, err := t.writer.PushSubcategory(ctx, category.ID, model.NewSubcategory(name)); err != nil {
			return err
		}
	}

	desc := strings.TrimSpace(description)
	if desc == "" {
		return nil
	}
	for _, existing := range category.Description {
		if existing == desc {
			return nil
		}
	}

	merged := append(append([]string{}, category.Description...), desc)

	return t.writer.Update(ctx, category.ID, database.CategoryUpdate{Description: merged})
}

// replaceThumbnail removes the currently stored object before uploading the
// replacement, matching the image store's ownership contract.
func (t *Taxonomy) replaceThumbnail(ctx context.Context, category *model.Category, thumbnail *dto.ThumbnailUpload) error {
	if category.Thumbnail != nil {
		if err := t.imageRemover.Remove(ctx, category.Thumbnail.ID); err != nil {
			logger.Error("failed to remove old category thumbnail", "id", category.Thumbnail.ID, "err", err)
		}
	}

	result, err := t.uploader.Upload(ctx, thumbnail.Body, thumbnail.Size, categoryThumbnailFolder, thumbnail.Filename)
	if err != nil {
		return err
	}

	return t.writer.Update(ctx, category.ID, database.CategoryUpdate{
		Thumbnail: &model.File{ID: result.ID, URL: result.URL},
	})
}

func (t *Taxonomy) publish(ctx context.Context, event, id string) {
	if t.publisher == nil {
		return
	}
	if err := t.publisher.Publish(ctx, event, id); err != nil {
		logger.Error("failed to publish event", "event", event, "id", id, "err", err)
	}
}

func categoryView(category *model.Category) dto.CategoryView {
	names := make([]string, 0, len(category.Subcategories))
	for _, sub := range category.Subcategories {
		names = append(names, sub.Name)
	}

	return dto.CategoryView{
		ID:               category.ID.Hex(),
		Name:             category.Name,
		Description:      category.Description,
		Thumbnail:        category.Thumbnail,
		SubCategoryNames: names,
	}
}

func splitNames(joined string) []string {
	parts := strings.Split(joined, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			names = append(names, trimmed)
		}
	}

	return names
}
