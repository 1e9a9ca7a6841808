package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"inkwell/internal/domain/apperror"
	"inkwell/internal/domain/model"
	"inkwell/internal/domain/repository/database"
)

type CategoryWriter struct {
	db *Database
}

func NewCategoryWriter(db *Database) *CategoryWriter {
	return &CategoryWriter{db: db}
}

// Insert creates the category. The unique collated index on name turns a
// concurrent create of the same name into a Conflict the resolver recovers
// from by re-reading.
func (w *CategoryWriter) Insert(ctx context.Context, category *model.Category) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now

	coll := w.db.Client.Database(w.db.DBName).Collection(CategoryCollection)

	res, err := coll.InsertOne(ctx, category)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.Conflict("category already exists")
		}

		return err
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		category.ID = id
	}

	return nil
}

// PushSubcategory appends sub in a single guarded update: the filter excludes
// documents already holding the lowercased name, so two concurrent appends of
// the same name cannot both land.
func (w *CategoryWriter) PushSubcategory(ctx context.Context, categoryID primitive.ObjectID, sub model.Subcategory) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	coll := w.db.Client.Database(w.db.DBName).Collection(CategoryCollection)

	res, err := coll.UpdateOne(ctx,
		bson.M{
			"_id":                      categoryID,
			"subcategories.name_lower": bson.M{"$ne": sub.NameLower},
		},
		bson.M{
			"$push": bson.M{"subcategories": sub},
			"$set":  bson.M{"updated_at": time.Now()},
		})
	if err != nil {
		return false, err
	}

	return res.ModifiedCount == 1, nil
}

func (w *CategoryWriter) RemoveSubcategory(ctx context.Context, categoryID, subcategoryID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	coll := w.db.Client.Database(w.db.DBName).Collection(CategoryCollection)

	res, err := coll.UpdateOne(ctx,
		bson.M{"_id": categoryID},
		bson.M{
			"$pull": bson.M{"subcategories": bson.M{"_id": subcategoryID}},
			"$set":  bson.M{"updated_at": time.Now()},
		})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("category not found")
	}

	return nil
}

func (w *CategoryWriter) Update(ctx context.Context, id primitive.ObjectID, update database.CategoryUpdate) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now()}
	if update.Name != "" {
		set["name"] = update.Name
	}
	if update.Description != nil {
		set["description"] = update.Description
	}
	if update.Thumbnail != nil {
		set["thumbnail"] = update.Thumbnail
	}

	coll := w.db.Client.Database(w.db.DBName).Collection(CategoryCollection)

	res, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.Conflict("a category with that name already exists")
		}

		return err
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("category not found")
	}

	return nil
}

type CategoryRetriever struct {
	db *Database
}

func NewCategoryRetriever(db *Database) *CategoryRetriever {
	return &CategoryRetriever{db: db}
}

func (r *CategoryRetriever) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(CategoryCollection)

	var category model.Category
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&category); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("category not found")
		}

		return nil, err
	}

	return &category, nil
}

func (r *CategoryRetriever) GetByName(ctx context.Context, name string) (*model.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(CategoryCollection)

	opts := options.FindOne().SetCollation(caseInsensitive)

	var category model.Category
	if err := coll.FindOne(ctx, bson.M{"name": name}, opts).Decode(&category); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("category not found")
		}

		return nil, err
	}

	return &category, nil
}

func (r *CategoryRetriever) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(CategoryCollection)

	cursor, err := coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []model.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *CategoryRetriever) GetAll(ctx context.Context) ([]model.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(CategoryCollection)

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []model.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

type CategoryRemover struct {
	db *Database
}

func NewCategoryRemover(db *Database) *CategoryRemover {
	return &CategoryRemover{db: db}
}

func (r *CategoryRemover) Remove(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(CategoryCollection)

	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperror.NotFound("category not found")
	}

	return nil
}
