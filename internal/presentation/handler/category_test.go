package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/internal/domain/apperror"
	"inkwell/internal/domain/dto"
)

func TestCategoryCreateHandler(t *testing.T) {
	t.Run("creates with subcategories", func(t *testing.T) {
		var gotReq dto.CreateCategoryRequest
		taxonomy := &stubTaxonomy{
			createFn: func(_ context.Context, req dto.CreateCategoryRequest,
				_ *dto.ThumbnailUpload,
			) (dto.CategoryView, error) {
				gotReq = req

				return dto.CategoryView{Name: req.Name, SubCategoryNames: []string{"Go"}}, nil
			},
		}

		e := echo.New()
		h := NewCategoryHandler(taxonomy)
		e.POST("/category", h.Create)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, multipartRequest(t, http.MethodPost, "/category", map[string]string{
			"name":          "Tech",
			"subCategories": "Go,Rust",
		}, false))

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Tech", gotReq.Name)
		assert.Equal(t, "Go,Rust", gotReq.SubCategories)
	})

	t.Run("missing subcategories fail validation", func(t *testing.T) {
		e := echo.New()
		h := NewCategoryHandler(&stubTaxonomy{})
		e.POST("/category", h.Create)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, multipartRequest(t, http.MethodPost, "/category", map[string]string{
			"name": "Tech",
		}, false))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCategoryDeleteHandler(t *testing.T) {
	taxonomy := &stubTaxonomy{
		deleteFn: func(_ context.Context, id string) error {
			if id == "referenced" {
				return apperror.Conflict("cannot delete category: blogs still reference it")
			}

			return nil
		},
	}

	e := echo.New()
	h := NewCategoryHandler(taxonomy)
	e.DELETE("/category/:id", h.Delete)

	t.Run("unreferenced category deletes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/category/free", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("referenced category maps to 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/category/referenced", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp dto.MutationResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Message, "still reference")
	})
}

func TestDeleteSubcategoryHandler(t *testing.T) {
	var gotCategoryID, gotName string
	taxonomy := &stubTaxonomy{
		deleteSubFn: func(_ context.Context, categoryID, name string) error {
			gotCategoryID, gotName = categoryID, name

			return nil
		},
	}

	e := echo.New()
	h := NewCategoryHandler(taxonomy)
	e.DELETE("/category/:id/subcategory/:name", h.DeleteSubcategory)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/category/cat1/subcategory/Go", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cat1", gotCategoryID)
	assert.Equal(t, "Go", gotName)
}

func TestCategoryListHandler(t *testing.T) {
	taxonomy := &stubTaxonomy{
		listFn: func(_ context.Context) ([]dto.CategoryView, error) {
			return []dto.CategoryView{
				{Name: "Life", SubCategoryNames: []string{"Travel"}},
				{Name: "Tech", SubCategoryNames: []string{"Go", "Rust"}},
			}, nil
		},
	}

	e := echo.New()
	h := NewCategoryHandler(taxonomy)
	e.GET("/category", h.List)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/category", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Tech")
	assert.Contains(t, rec.Body.String(), "Travel")
}

func TestBlogsByCategoryHandler(t *testing.T) {
	taxonomy := &stubTaxonomy{
		byCategoryFn: func(_ context.Context, name string) ([]dto.BlogView, error) {
			if name == "ghost" {
				return nil, apperror.NotFound("category not found")
			}

			return []dto.BlogView{{Title: "a post in " + name}}, nil
		},
	}

	e := echo.New()
	h := NewCategoryHandler(taxonomy)
	e.GET("/category/blogs/:name", h.BlogsByCategory)

	t.Run("lists the category's blogs", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/category/blogs/tech", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "a post in tech")
	})

	t.Run("unknown category maps to 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/category/blogs/ghost", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
