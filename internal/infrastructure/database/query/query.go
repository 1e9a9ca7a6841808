// Package query composes paginated blog listing queries from untyped request
// parameters. Taxonomy-dependent terms (category, subcategory) are resolved to
// stable identifiers through a TaxonomyLookup so the composed filter never
// matches on display names.
package query

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkwell/internal/domain/apperror"
	"inkwell/internal/domain/dto"
)

// TaxonomyLookup resolves human-entered taxonomy names into identifiers.
type TaxonomyLookup interface {
	// CategoryIDByName matches the exact category name case-insensitively.
	CategoryIDByName(ctx context.Context, name string) (primitive.ObjectID, bool, error)
	// SubcategoryIDsByFragment returns the IDs of every subcategory whose name
	// contains the fragment, compared case-insensitively.
	SubcategoryIDsByFragment(ctx context.Context, fragment string) ([]primitive.ObjectID, error)
}

// reserved keys are consumed by Search and Pagination and never treated as
// field filters.
var reserved = map[string]bool{
	"title":       true,
	"category":    true,
	"subcategory": true,
	"tags":        true,
	"page":        true,
	"limit":       true,
}

// filterFields is the allow-list of filterable fields: external name to stored
// field. Anything else fails the request instead of being forwarded verbatim
// into the store's query language.
var filterFields = map[string]string{
	"author":    "author_id",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

var operators = map[string]string{
	"eq":  "$eq",
	"gt":  "$gt",
	"gte": "$gte",
	"lt":  "$lt",
	"lte": "$lte",
}

var filterKeyPattern = regexp.MustCompile(`^([a-zA-Z]+)\[([a-z]+)\]$`)

type Composer struct {
	params dto.ListParams
	lookup TaxonomyLookup
}

func NewComposer(params dto.ListParams, lookup TaxonomyLookup) *Composer {
	return &Composer{params: params, lookup: lookup}
}

// Search builds the free-text part of the filter. Blank or absent parameters
// impose no constraint. An unknown category or subcategory name yields a term
// that matches nothing, never an error.
func (c *Composer) Search(ctx context.Context) (bson.M, error) {
	out := bson.M{}

	if title := strings.TrimSpace(c.params["title"]); title != "" {
		out["title"] = primitive.Regex{Pattern: regexp.QuoteMeta(title), Options: "i"}
	}

	if category := strings.TrimSpace(c.params["category"]); category != "" {
		id, found, err := c.lookup.CategoryIDByName(ctx, category)
		if err != nil {
			return nil, err
		}
		if !found {
			id = primitive.NilObjectID
		}
		out["category_id"] = id
	}

	if fragment := strings.TrimSpace(c.params["subcategory"]); fragment != "" {
		ids, err := c.lookup.SubcategoryIDsByFragment(ctx, fragment)
		if err != nil {
			return nil, err
		}
		out["subcategory_id"] = bson.M{"$in": ids}
	}

	if tags := strings.TrimSpace(c.params["tags"]); tags != "" {
		values := splitTrimmed(tags)
		if len(values) > 0 {
			out["tags"] = bson.M{"$in": values}
		}
	}

	return out, nil
}

// Filter builds the comparison part of the filter from the remaining
// parameters, in `field[op]=value` form (a bare `field=value` means equality).
// Fields and operators outside the allow-list are a validation error.
func (c *Composer) Filter() (bson.M, error) {
	out := bson.M{}

	for key, value := range c.params {
		if reserved[key] {
			continue
		}

		field, op := key, "eq"
		if m := filterKeyPattern.FindStringSubmatch(key); m != nil {
			field, op = m[1], m[2]
		}

		stored, ok := filterFields[field]
		if !ok {
			return nil, apperror.Validation(fmt.Sprintf("unsupported filter field %q", field))
		}

		mongoOp, ok := operators[op]
		if !ok {
			return nil, apperror.Validation(fmt.Sprintf("unsupported filter operator %q", op))
		}

		parsed, err := parseFilterValue(field, value)
		if err != nil {
			return nil, err
		}

		term, exists := out[stored].(bson.M)
		if !exists {
			term = bson.M{}
			out[stored] = term
		}
		term[mongoOp] = parsed
	}

	return out, nil
}

// Compose conjoins Search and Filter. The two operate on disjoint field sets,
// so a plain merge preserves AND semantics.
func (c *Composer) Compose(ctx context.Context) (bson.M, error) {
	filter, err := c.Filter()
	if err != nil {
		return nil, err
	}

	search, err := c.Search(ctx)
	if err != nil {
		return nil, err
	}

	for field, term := range search {
		filter[field] = term
	}

	return filter, nil
}

// Page is the requested 1-based page, defaulting to 1 when absent, non-numeric
// or below 1.
func (c *Composer) Page() int64 {
	page, err := strconv.ParseInt(c.params["page"], 10, 64)
	if err != nil || page < 1 {
		return 1
	}

	return page
}

// Pagination returns the skip/limit window for a fixed page size.
func (c *Composer) Pagination(resultPerPage int64) (skip, limit int64) {
	return resultPerPage * (c.Page() - 1), resultPerPage
}

func parseFilterValue(field, value string) (any, error) {
	switch field {
	case "author":
		id, err := primitive.ObjectIDFromHex(value)
		if err != nil {
			return nil, apperror.Validation("author filter must be a valid identifier")
		}

		return id, nil
	case "createdAt", "updatedAt":
		if t, err := time.Parse(time.RFC3339, value); err == nil {
			return t, nil
		}
		if t, err := time.Parse("2006-01-02", value); err == nil {
			return t, nil
		}

		return nil, apperror.Validation(fmt.Sprintf("%s filter must be an RFC 3339 timestamp or a date", field))
	}

	return nil, apperror.Validation(fmt.Sprintf("unsupported filter field %q", field))
}

func splitTrimmed(joined string) []string {
	parts := strings.Split(joined, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}

	return values
}
