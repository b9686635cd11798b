package dto

type CreatePostRequest struct {
	Title     string `form:"title" validate:"required,min=3,max=255"`
	Body      string `form:"body" validate:"required,min=10"`
	Published *bool  `form:"published"`
}

type UpdatePostRequest struct {
	Title     *string `form:"title" validate:"omitempty,min=3,max=255"`
	Body      *string `form:"body" validate:"omitempty,min=10"`
	Published *bool   `form:"published"`
}
