package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"inkwell/internal/application/usecase/abstraction"
	"inkwell/internal/domain/dto"
	"inkwell/internal/presentation"
)

type AdminHandler struct {
	auth abstraction.Auth
}

func NewAdminHandler(auth abstraction.Auth) *AdminHandler {
	return &AdminHandler{auth: auth}
}

func (h *AdminHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	admin, err := h.auth.Register(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.MutationResponse{
		Success: true,
		Message: "admin registered",
		Data:    admin,
	})
}

func (h *AdminHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	signed, admin, err := h.auth.Login(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TokenResponse{
		Success: true,
		Message: "logged in",
		Token:   signed,
		AdminID: admin.ID.Hex(),
	})
}

func (h *AdminHandler) Logout(c echo.Context) error {
	tokenID, _ := c.Get(presentation.KeyTokenID).(string)
	expiresAt, _ := c.Get(presentation.KeyTokenExpiry).(time.Time)

	if err := h.auth.Logout(c.Request().Context(), tokenID, expiresAt); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MutationResponse{
		Success: true,
		Message: "logged out",
	})
}
