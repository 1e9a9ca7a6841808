package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog always stores the stable category and subcategory identifiers; display
// names are attached at read time only.
type Blog struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title           string             `bson:"title" json:"title"`
	MetaDescription string             `bson:"meta_description" json:"metaDescription"`
	Content         string             `bson:"content" json:"content"`
	CategoryID      primitive.ObjectID `bson:"category_id" json:"categoryId"`
	SubcategoryID   primitive.ObjectID `bson:"subcategory_id" json:"subCategoryId"`
	Tags            []string           `bson:"tags" json:"tags"`
	Thumbnail       *File              `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	AuthorID        primitive.ObjectID `bson:"author_id" json:"authorId"`
	CreatedAt       time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updatedAt"`
}
