package dto

import (
	"time"

	"inkwell/internal/domain/model"
)

// MutationResponse is the envelope for create/update/delete operations.
type MutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ListResponse is the envelope for paginated blog listings.
type ListResponse struct {
	Success       bool       `json:"success"`
	TotalCount    int64      `json:"totalCount"`
	FilteredCount int64      `json:"filteredCount"`
	ResultPerPage int64      `json:"resultPerPage"`
	CurrentPage   int64      `json:"currentPage"`
	TotalPages    int64      `json:"totalPages"`
	Data          []BlogView `json:"data"`
}

// CategoryRef is the stripped category payload nested in blog views: the
// display name only, never the full subcategory list.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type AuthorRef struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}

// BlogView is the denormalized read model. SubCategory is null when the
// referenced subcategory no longer exists in its parent.
type BlogView struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	MetaDescription string      `json:"metaDescription"`
	Content         string      `json:"content"`
	Category        CategoryRef `json:"category"`
	SubCategory     *string     `json:"subCategory"`
	Tags            []string    `json:"tags"`
	Thumbnail       *model.File `json:"thumbnail,omitempty"`
	Author          AuthorRef   `json:"author"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// CategoryView flattens a category for listings: subcategory display names only.
type CategoryView struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Description      []string    `json:"description,omitempty"`
	Thumbnail        *model.File `json:"thumbnail,omitempty"`
	SubCategoryNames []string    `json:"subCategoryNames"`
}

type TokenResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
	AdminID string `json:"adminId"`
}
