package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"inkwell/internal/application/usecase/abstraction"
	"inkwell/internal/domain/dto"
)

type CategoryHandler struct {
	taxonomy abstraction.Taxonomy
}

func NewCategoryHandler(taxonomy abstraction.Taxonomy) *CategoryHandler {
	return &CategoryHandler{taxonomy: taxonomy}
}

func (h *CategoryHandler) Create(c echo.Context) error {
	var req dto.CreateCategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	thumbnail, closeThumbnail, err := thumbnailFromForm(c)
	if err != nil {
		return writeError(c, err)
	}
	defer closeThumbnail()

	view, err := h.taxonomy.CreateCategory(c.Request().Context(), req, thumbnail)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.MutationResponse{
		Success: true,
		Message: "category created",
		Data:    view,
	})
}

func (h *CategoryHandler) Update(c echo.Context) error {
	var req dto.UpdateCategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	thumbnail, closeThumbnail, err := thumbnailFromForm(c)
	if err != nil {
		return writeError(c, err)
	}
	defer closeThumbnail()

	view, err := h.taxonomy.UpdateCategory(c.Request().Context(), c.Param("id"), req, thumbnail)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MutationResponse{
		Success: true,
		Message: "category updated",
		Data:    view,
	})
}

func (h *CategoryHandler) Delete(c echo.Context) error {
	if err := h.taxonomy.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MutationResponse{
		Success: true,
		Message: "category deleted",
	})
}

func (h *CategoryHandler) DeleteSubcategory(c echo.Context) error {
	err := h.taxonomy.DeleteSubcategory(c.Request().Context(), c.Param("id"), c.Param("name"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MutationResponse{
		Success: true,
		Message: "subcategory deleted",
	})
}

func (h *CategoryHandler) List(c echo.Context) error {
	views, err := h.taxonomy.ListCategories(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MutationResponse{
		Success: true,
		Message: "categories found",
		Data:    views,
	})
}

func (h *CategoryHandler) BlogsByCategory(c echo.Context) error {
	views, err := h.taxonomy.BlogsByCategory(c.Request().Context(), c.Param("name"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MutationResponse{
		Success: true,
		Message: "blogs found",
		Data:    views,
	})
}
