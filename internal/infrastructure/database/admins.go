package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"inkwell/internal/domain/apperror"
	"inkwell/internal/domain/model"
)

type AdminWriter struct {
	db *Database
}

func NewAdminWriter(db *Database) *AdminWriter {
	return &AdminWriter{db: db}
}

func (w *AdminWriter) Insert(ctx context.Context, admin *model.Admin) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	coll := w.db.Client.Database(w.db.DBName).Collection(AdminCollection)

	res, err := coll.InsertOne(ctx, admin)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.Validation("email already exists")
		}

		return err
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		admin.ID = id
	}

	return nil
}

type AdminRetriever struct {
	db *Database
}

func NewAdminRetriever(db *Database) *AdminRetriever {
	return &AdminRetriever{db: db}
}

func (r *AdminRetriever) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(AdminCollection)

	var admin model.Admin
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&admin); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("admin not found")
		}

		return nil, err
	}

	return &admin, nil
}

func (r *AdminRetriever) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(AdminCollection)

	var admin model.Admin
	if err := coll.FindOne(ctx, bson.M{"email": email}).Decode(&admin); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("admin not found")
		}

		return nil, err
	}

	return &admin, nil
}
