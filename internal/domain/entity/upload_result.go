package entity

// UploadResult describes an object accepted by the image store.
type UploadResult struct {
	ID     string
	URL    string
	Bucket string
	Size   int64
	Type   string
}
