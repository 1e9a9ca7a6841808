package usecase

import (
	"context"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkwell/internal/application/usecase/abstraction"
	"inkwell/internal/domain/apperror"
	"inkwell/internal/domain/dto"
	"inkwell/internal/domain/model"
	"inkwell/internal/domain/repository/broker"
	"inkwell/internal/domain/repository/database"
	"inkwell/internal/domain/repository/minio"
	"inkwell/pkg/logger"
)

const (
	blogThumbnailFolder = "blog-thumbnails"
	resultPerPage       = 15
)

type Blogs struct {
	writer       database.BlogWriter
	retriever    database.BlogRetriever
	lister       database.BlogLister
	remover      database.BlogRemover
	taxonomy     abstraction.Taxonomy
	uploader     minio.Uploader
	imageRemover minio.Remover
	publisher    broker.Publisher
}

func NewBlogs(writer database.BlogWriter, retriever database.BlogRetriever,
	lister database.BlogLister, remover database.BlogRemover, taxonomy abstraction.Taxonomy,
	uploader minio.Uploader, imageRemover minio.Remover, publisher broker.Publisher,
) *Blogs {
	return &Blogs{
		writer:       writer,
		retriever:    retriever,
		lister:       lister,
		remover:      remover,
		taxonomy:     taxonomy,
		uploader:     uploader,
		imageRemover: imageRemover,
		publisher:    publisher,
	}
}

func (b *Blogs) Create(ctx context.Context, authorID primitive.ObjectID, req dto.CreateBlogRequest,
	thumbnail *dto.ThumbnailUpload,
) (dto.BlogView, error) {
	if thumbnail == nil {
		return dto.BlogView{}, apperror.Validation("thumbnail is required")
	}

	resolution, err := b.taxonomy.ResolveOrCreate(ctx, req.Category, req.SubCategory)
	if err != nil {
		return dto.BlogView{}, err
	}

	uploaded, err := b.uploader.Upload(ctx, thumbnail.Body, thumbnail.Size, blogThumbnailFolder, thumbnail.Filename)
	if err != nil {
		return dto.BlogView{}, err
	}

	blog := &model.Blog{
		Title:           req.Title,
		MetaDescription: req.MetaDescription,
		Content:         req.Content,
		CategoryID:      resolution.CategoryID,
		SubcategoryID:   resolution.SubcategoryID,
		Tags:            splitNames(req.Tags),
		Thumbnail:       &model.File{ID: uploaded.ID, URL: uploaded.URL},
		AuthorID:        authorID,
	}

	if err := b.writer.Insert(ctx, blog); err != nil {
		// The document never landed, so the object is orphaned.
		if removeErr := b.imageRemover.Remove(ctx, uploaded.ID); removeErr != nil {
			logger.Error("failed to remove orphaned thumbnail", "id", uploaded.ID, "err", removeErr)
		}

		return dto.BlogView{}, err
	}

	b.publishEvent(ctx, "blog.created", blog.ID.Hex())

	return b.view(ctx, blog)
}

func (b *Blogs) List(ctx context.Context, params dto.ListParams) (dto.ListResponse, error) {
	total, err := b.lister.EstimatedCount(ctx)
	if err != nil {
		return dto.ListResponse{}, err
	}

	blogs, filtered, err := b.lister.List(ctx, params, resultPerPage)
	if err != nil {
		return dto.ListResponse{}, err
	}

	views, err := b.taxonomy.Denormalize(ctx, blogs)
	if err != nil {
		return dto.ListResponse{}, err
	}

	return dto.ListResponse{
		Success:       true,
		TotalCount:    total,
		FilteredCount: filtered,
		ResultPerPage: resultPerPage,
		CurrentPage:   currentPage(params),
		TotalPages:    (filtered + resultPerPage - 1) / resultPerPage,
		Data:          views,
	}, nil
}

func (b *Blogs) Get(ctx context.Context, id string) (dto.BlogView, error) {
	blogID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return dto.BlogView{}, apperror.Validation("invalid blog id")
	}

	blog, err := b.retriever.GetByID(ctx, blogID)
	if err != nil {
		return dto.BlogView{}, err
	}

	return b.view(ctx, blog)
}

func (b *Blogs) Update(ctx context.Context, authorID primitive.ObjectID, id string, req dto.UpdateBlogRequest,
	thumbnail *dto.ThumbnailUpload,
) (dto.BlogView, error) {
	blogID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return dto.BlogView{}, apperror.Validation("invalid blog id")
	}

	blog, err := b.retriever.GetByID(ctx, blogID)
	if err != nil {
		return dto.BlogView{}, err
	}
	if blog.AuthorID != authorID {
		return dto.BlogView{}, apperror.Forbidden("only the author can update this blog")
	}

	update := database.BlogUpdate{
		Title:           req.Title,
		MetaDescription: req.MetaDescription,
		Content:         req.Content,
	}
	if req.Tags != "" {
		update.Tags = splitNames(req.Tags)
	}

	// Reclassification needs both halves of the pair so the resolved
	// subcategory is guaranteed to live inside the resolved category.
	if req.Category != "" || req.SubCategory != "" {
		if req.Category == "" || req.SubCategory == "" {
			return dto.BlogView{}, apperror.Validation("category and subCategory must be supplied together")
		}
		resolution, err := b.taxonomy.ResolveOrCreate(ctx, req.Category, req.SubCategory)
		if err != nil {
			return dto.BlogView{}, err
		}
		update.CategoryID = &resolution.CategoryID
		update.SubcategoryID = &resolution.SubcategoryID
	}

	if thumbnail != nil {
		if blog.Thumbnail != nil {
			if err := b.imageRemover.Remove(ctx, blog.Thumbnail.ID); err != nil {
				logger.Error("failed to remove old blog thumbnail", "id", blog.Thumbnail.ID, "err", err)
			}
		}
		uploaded, err := b.uploader.Upload(ctx, thumbnail.Body, thumbnail.Size, blogThumbnailFolder, thumbnail.Filename)
		if err != nil {
			return dto.BlogView{}, err
		}
		update.Thumbnail = &model.File{ID: uploaded.ID, URL: uploaded.URL}
	}

	updated, err := b.writer.Update(ctx, blogID, update)
	if err != nil {
		return dto.BlogView{}, err
	}

	b.publishEvent(ctx, "blog.updated", blogID.Hex())

	return b.view(ctx, updated)
}

// Delete removes the thumbnail object before the document; a dangling
// document is recoverable, a leaked object is not discoverable.
func (b *Blogs) Delete(ctx context.Context, authorID primitive.ObjectID, id string) error {
	blogID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperror.Validation("invalid blog id")
	}

	blog, err := b.retriever.GetByID(ctx, blogID)
	if err != nil {
		return err
	}
	if blog.AuthorID != authorID {
		return apperror.Forbidden("only the author can delete this blog")
	}

	if blog.Thumbnail != nil {
		if err := b.imageRemover.Remove(ctx, blog.Thumbnail.ID); err != nil {
			return err
		}
	}

	if err := b.remover.Remove(ctx, blogID); err != nil {
		return err
	}

	b.publishEvent(ctx, "blog.deleted", blogID.Hex())

	return nil
}

// currentPage mirrors the store's pagination default: 1 when absent,
// non-numeric or below 1.
func currentPage(params dto.ListParams) int64 {
	page, err := strconv.ParseInt(params["page"], 10, 64)
	if err != nil || page < 1 {
		return 1
	}

	return page
}

func (b *Blogs) view(ctx context.Context, blog *model.Blog) (dto.BlogView, error) {
	views, err := b.taxonomy.Denormalize(ctx, []model.Blog{*blog})
	if err != nil {
		return dto.BlogView{}, err
	}
	if len(views) == 0 {
		return dto.BlogView{}, apperror.Internal("denormalization returned nothing", nil)
	}

	return views[0], nil
}

func (b *Blogs) publishEvent(ctx context.Context, event, id string) {
	if b.publisher == nil {
		return
	}
	if err := b.publisher.Publish(ctx, event, id); err != nil {
		logger.Error("failed to publish event", "event", event, "id", id, "err", err)
	}
}
