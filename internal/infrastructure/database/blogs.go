package database

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"inkwell/internal/domain/apperror"
	"inkwell/internal/domain/dto"
	"inkwell/internal/domain/model"
	"inkwell/internal/domain/repository/database"
	"inkwell/internal/infrastructure/database/query"
)

type BlogWriter struct {
	db *Database
}

func NewBlogWriter(db *Database) *BlogWriter {
	return &BlogWriter{db: db}
}

func (w *BlogWriter) Insert(ctx context.Context, blog *model.Blog) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	now := time.Now()
	blog.CreatedAt = now
	blog.UpdatedAt = now

	coll := w.db.Client.Database(w.db.DBName).Collection(BlogCollection)

	res, err := coll.InsertOne(ctx, blog)
	if err != nil {
		return err
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		blog.ID = id
	}

	return nil
}

func (w *BlogWriter) Update(ctx context.Context, id primitive.ObjectID, update database.BlogUpdate) (*model.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now()}
	if update.Title != "" {
		set["title"] = update.Title
	}
	if update.MetaDescription != "" {
		set["meta_description"] = update.MetaDescription
	}
	if update.Content != "" {
		set["content"] = update.Content
	}
	if update.CategoryID != nil {
		set["category_id"] = *update.CategoryID
	}
	if update.SubcategoryID != nil {
		set["subcategory_id"] = *update.SubcategoryID
	}
	if update.Tags != nil {
		set["tags"] = update.Tags
	}
	if update.Thumbnail != nil {
		set["thumbnail"] = update.Thumbnail
	}

	coll := w.db.Client.Database(w.db.DBName).Collection(BlogCollection)

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var blog model.Blog
	err := coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&blog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("blog not found")
		}

		return nil, err
	}

	return &blog, nil
}

type BlogRetriever struct {
	db *Database
}

func NewBlogRetriever(db *Database) *BlogRetriever {
	return &BlogRetriever{db: db}
}

func (r *BlogRetriever) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(BlogCollection)

	var blog model.Blog
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&blog); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("blog not found")
		}

		return nil, err
	}

	return &blog, nil
}

type BlogLister struct {
	db *Database
}

func NewBlogLister(db *Database) *BlogLister {
	return &BlogLister{db: db}
}

// List composes the filter from params, counts all matches, then applies the
// pagination window. Counting runs on the unlimited filter; skip/limit only
// shape the returned page.
func (l *BlogLister) List(ctx context.Context, params dto.ListParams, resultPerPage int64) ([]model.Blog, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	composer := query.NewComposer(params, &taxonomyLookup{db: l.db})

	filter, err := composer.Compose(ctx)
	if err != nil {
		return nil, 0, err
	}

	coll := l.db.Client.Database(l.db.DBName).Collection(BlogCollection)

	filtered, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip, limit := composer.Pagination(resultPerPage)
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var blogs []model.Blog
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, 0, err
	}

	return blogs, filtered, nil
}

func (l *BlogLister) ListByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]model.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	coll := l.db.Client.Database(l.db.DBName).Collection(BlogCollection)

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := coll.Find(ctx, bson.M{"category_id": categoryID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var blogs []model.Blog
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}

	return blogs, nil
}

func (l *BlogLister) EstimatedCount(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	coll := l.db.Client.Database(l.db.DBName).Collection(BlogCollection)

	return coll.EstimatedDocumentCount(ctx)
}

func (l *BlogLister) CountByCategory(ctx context.Context, categoryID primitive.ObjectID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	coll := l.db.Client.Database(l.db.DBName).Collection(BlogCollection)

	return coll.CountDocuments(ctx, bson.M{"category_id": categoryID})
}

func (l *BlogLister) CountBySubcategory(ctx context.Context, categoryID, subcategoryID primitive.ObjectID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	coll := l.db.Client.Database(l.db.DBName).Collection(BlogCollection)

	return coll.CountDocuments(ctx, bson.M{
		"category_id":    categoryID,
		"subcategory_id": subcategoryID,
	})
}

type BlogRemover struct {
	db *Database
}

func NewBlogRemover(db *Database) *BlogRemover {
	return &BlogRemover{db: db}
}

func (r *BlogRemover) Remove(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(BlogCollection)

	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperror.NotFound("blog not found")
	}

	return nil
}

// taxonomyLookup backs the query composer with the categories collection.
type taxonomyLookup struct {
	db *Database
}

func (t *taxonomyLookup) CategoryIDByName(ctx context.Context, name string) (primitive.ObjectID, bool, error) {
	coll := t.db.Client.Database(t.db.DBName).Collection(CategoryCollection)

	opts := options.FindOne().
		SetCollation(caseInsensitive).
		SetProjection(bson.M{"_id": 1})

	var doc struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	err := coll.FindOne(ctx, bson.M{"name": name}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return primitive.NilObjectID, false, nil
		}

		return primitive.NilObjectID, false, err
	}

	return doc.ID, true, nil
}

func (t *taxonomyLookup) SubcategoryIDsByFragment(ctx context.Context, fragment string) ([]primitive.ObjectID, error) {
	coll := t.db.Client.Database(t.db.DBName).Collection(CategoryCollection)

	// Narrow server-side with a substring match, then pick the matching
	// entries out of each candidate's embedded list.
	filter := bson.M{"subcategories.name_lower": primitive.Regex{
		Pattern: regexp.QuoteMeta(strings.ToLower(fragment)),
	}}

	cursor, err := coll.Find(ctx, filter, options.Find().SetProjection(bson.M{"subcategories": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []model.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}

	lower := strings.ToLower(fragment)
	ids := make([]primitive.ObjectID, 0)
	for _, category := range categories {
		for _, sub := range category.Subcategories {
			if strings.Contains(sub.NameLower, lower) {
				ids = append(ids, sub.ID)
			}
		}
	}

	return ids, nil
}
