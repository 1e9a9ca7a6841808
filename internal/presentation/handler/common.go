package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"inkwell/internal/domain/apperror"
	"inkwell/internal/domain/dto"
	"inkwell/pkg/logger"
)

const thumbnailField = "thumbnail"

var validate = validator.New()

// writeError maps a usecase error to its HTTP status. Internal errors are
// logged and masked; everything else carries its message to the client.
func writeError(c echo.Context, err error) error {
	status := apperror.StatusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "path", c.Path(), "err", err)
		message = "internal server error"
	}

	return c.JSON(status, dto.MutationResponse{
		Success: false,
		Message: message,
	})
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return apperror.Validation("malformed request body")
	}
	if err := validate.Struct(req); err != nil {
		return apperror.Validation(err.Error())
	}

	return nil
}

// thumbnailFromForm pulls the optional thumbnail file out of the multipart
// payload. The returned closer is safe to defer even when no file was sent.
func thumbnailFromForm(c echo.Context) (*dto.ThumbnailUpload, func(), error) {
	noop := func() {}

	fileHeader, err := c.FormFile(thumbnailField)
	if err != nil {
		// Absent file, or not a multipart request at all.
		return nil, noop, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, noop, apperror.Validation("unreadable thumbnail file")
	}

	return &dto.ThumbnailUpload{
		Body:     file,
		Size:     fileHeader.Size,
		Filename: fileHeader.Filename,
	}, func() { closeMultipart(file) }, nil
}

func closeMultipart(file multipart.File) {
	if err := file.Close(); err != nil {
		logger.Warn("failed to close multipart file", "err", err)
	}
}
