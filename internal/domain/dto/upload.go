package dto

import "io"

// ThumbnailUpload wraps a multipart file part handed down to the image store.
type ThumbnailUpload struct {
	Body     io.Reader
	Size     int64
	Filename string
}
