package minio

import (
	"context"
	"io"

	"inkwell/internal/domain/entity"
)

type Uploader interface {
	Upload(ctx context.Context, body io.Reader, size int64, folder, name string) (entity.UploadResult, error)
}
