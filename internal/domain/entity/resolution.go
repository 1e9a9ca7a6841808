package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// TaxonomyResolution is the outcome of resolving (and possibly creating) a
// category/subcategory pair from human-entered names.
type TaxonomyResolution struct {
	CategoryID      primitive.ObjectID
	SubcategoryID   primitive.ObjectID
	SubcategoryName string
}
