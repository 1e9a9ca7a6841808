package dto

// RegisterRequest creates a new admin account.
type RegisterRequest struct {
	FullName string `json:"full_name" form:"full_name" validate:"required,max=50"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// CreateBlogRequest carries the multipart form fields of a blog creation; the
// thumbnail file itself is read from the multipart payload separately.
type CreateBlogRequest struct {
	Title           string `form:"title" validate:"required,max=100"`
	MetaDescription string `form:"metaDescription" validate:"required,max=150"`
	Content         string `form:"content" validate:"required"`
	Category        string `form:"category" validate:"required,max=50"`
	SubCategory     string `form:"subCategory" validate:"required,max=50"`
	Tags            string `form:"tags" validate:"required"`
}

// UpdateBlogRequest fields are all optional; blank means "leave unchanged".
type UpdateBlogRequest struct {
	Title           string `form:"title" validate:"omitempty,max=100"`
	MetaDescription string `form:"metaDescription" validate:"omitempty,max=150"`
	Content         string `form:"content"`
	Category        string `form:"category" validate:"omitempty,max=50"`
	SubCategory     string `form:"subCategory" validate:"omitempty,max=50"`
	Tags            string `form:"tags"`
}

type CreateCategoryRequest struct {
	Name          string `form:"name" validate:"required,max=50"`
	Description   string `form:"description"`
	SubCategories string `form:"subCategories" validate:"required"`
}

type UpdateCategoryRequest struct {
	Name          string `form:"name" validate:"omitempty,max=50"`
	Description   string `form:"description"`
	SubCategories string `form:"subCategories"`
}
