package model

// File references an object owned by the image store: the object key used for
// deletion plus the public URL served to clients.
type File struct {
	ID  string `bson:"file_id" json:"fileId"`
	URL string `bson:"url" json:"url"`
}
