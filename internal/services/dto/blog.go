package dto

type CreateBlogRequest struct {
	Title   string   `json:"title" validate:"required,min=3,max=200"`
	Content string   `json:"content" validate:"required"`
	Tags    []string `json:"tags,omitempty"`
}

type UpdateBlogRequest struct {
	Title   *string  `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Content *string  `json:"content,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}
