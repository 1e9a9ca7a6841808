package minio

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"inkwell/internal/domain/apperror"
	"inkwell/internal/domain/entity"
	"inkwell/pkg/utils"
)

type Uploader struct {
	client *Client
	cfg    *UploaderConfig
}

func NewUploader(client *Client, cfg *UploaderConfig) *Uploader {
	return &Uploader{
		client: client,
		cfg:    cfg,
	}
}

// Upload sniffs the payload's real content type, rejects anything that is not
// an image, and stores it under a fresh object key inside folder. The caller's
// file name only influences logging; the key is always server-generated.
func (u *Uploader) Upload(ctx context.Context, body io.Reader, size int64, folder, name string) (entity.UploadResult, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.Timeout)*time.Millisecond)
	defer cancel()

	if size <= 0 {
		return entity.UploadResult{}, apperror.Validation("empty thumbnail upload")
	}
	if u.cfg.MaxSize > 0 && size > u.cfg.MaxSize {
		return entity.UploadResult{}, apperror.Validation(
			fmt.Sprintf("thumbnail exceeds the %d byte limit", u.cfg.MaxSize))
	}

	buffered := bufio.NewReader(body)
	header, err := buffered.Peek(3072)
	if err != nil && err != io.EOF {
		return entity.UploadResult{}, err
	}

	detected := mimetype.Detect(header)
	if !strings.HasPrefix(detected.String(), "image/") {
		return entity.UploadResult{}, apperror.Validation(
			fmt.Sprintf("thumbnail must be an image, got %s", detected.String()))
	}

	objectName := path.Join(folder, uuid.New().String()+utils.GetExtensionFromMimeType(detected.String()))

	info, err := u.client.MinioClient.PutObject(ctx, u.cfg.Bucket, objectName, buffered, size,
		minio.PutObjectOptions{
			ContentType: detected.String(),
		})
	if err != nil {
		return entity.UploadResult{}, err
	}

	return entity.UploadResult{
		ID:     objectName,
		URL:    fmt.Sprintf("%s/%s/%s", u.client.PublicURL, u.cfg.Bucket, objectName),
		Bucket: u.cfg.Bucket,
		Size:   info.Size,
		Type:   detected.String(),
	}, nil
}
