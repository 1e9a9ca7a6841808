package model

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is the root of the two-level taxonomy. Subcategories are embedded
// value records owned by their parent; they have no independent lifecycle and
// no external collection.
type Category struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Description   []string           `bson:"description,omitempty" json:"description,omitempty"`
	Thumbnail     *File              `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Subcategories []Subcategory      `bson:"subcategories" json:"subCategories"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

// Subcategory name is unique within its parent only, compared case-insensitively.
// NameLower is the dense comparison key the store's push-if-absent guard runs on.
type Subcategory struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Name      string             `bson:"name" json:"name"`
	NameLower string             `bson:"name_lower" json:"-"`
}

func NewSubcategory(name string) Subcategory {
	return Subcategory{
		ID:        primitive.NewObjectID(),
		Name:      name,
		NameLower: strings.ToLower(name),
	}
}

// SubcategoryByID returns the embedded entry for id, or nil when it no longer
// exists (e.g. deleted after a blog was written).
func (c *Category) SubcategoryByID(id primitive.ObjectID) *Subcategory {
	for i := range c.Subcategories {
		if c.Subcategories[i].ID == id {
			return &c.Subcategories[i]
		}
	}

	return nil
}

// SubcategoryByName matches case-insensitively.
func (c *Category) SubcategoryByName(name string) *Subcategory {
	lower := strings.ToLower(name)
	for i := range c.Subcategories {
		if c.Subcategories[i].NameLower == lower {
			return &c.Subcategories[i]
		}
	}

	return nil
}
