package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkwell/internal/application/usecase/abstraction"
	"inkwell/internal/domain/dto"
	"inkwell/internal/presentation"
)

type BlogHandler struct {
	blogs abstraction.Blogs
}

func NewBlogHandler(blogs abstraction.Blogs) *BlogHandler {
	return &BlogHandler{blogs: blogs}
}

func (h *BlogHandler) Create(c echo.Context) error {
	var req dto.CreateBlogRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	thumbnail, closeThumbnail, err := thumbnailFromForm(c)
	if err != nil {
		return writeError(c, err)
	}
	defer closeThumbnail()

	authorID, _ := c.Get(presentation.KeyAdminID).(primitive.ObjectID)

	view, err := h.blogs.Create(c.Request().Context(), authorID, req, thumbnail)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.MutationResponse{
		Success: true,
		Message: "blog created",
		Data:    view,
	})
}

func (h *BlogHandler) List(c echo.Context) error {
	params := dto.ListParamsFromQuery(c.QueryParams())

	resp, err := h.blogs.List(c.Request().Context(), params)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *BlogHandler) Get(c echo.Context) error {
	view, err := h.blogs.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MutationResponse{
		Success: true,
		Message: "blog found",
		Data:    view,
	})
}

func (h *BlogHandler) Update(c echo.Context) error {
	var req dto.UpdateBlogRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	thumbnail, closeThumbnail, err := thumbnailFromForm(c)
	if err != nil {
		return writeError(c, err)
	}
	defer closeThumbnail()

	authorID, _ := c.Get(presentation.KeyAdminID).(primitive.ObjectID)

	view, err := h.blogs.Update(c.Request().Context(), authorID, c.Param("id"), req, thumbnail)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MutationResponse{
		Success: true,
		Message: "blog updated",
		Data:    view,
	})
}

func (h *BlogHandler) Delete(c echo.Context) error {
	authorID, _ := c.Get(presentation.KeyAdminID).(primitive.ObjectID)

	if err := h.blogs.Delete(c.Request().Context(), authorID, c.Param("id")); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MutationResponse{
		Success: true,
		Message: "blog deleted",
	})
}
