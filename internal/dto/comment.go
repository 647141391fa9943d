package dto

// CreateCommentRequest is the body of POST /comments.
type CreateCommentRequest struct {
	ReportID int64  `json:"report" validate:"required,gt=0"`
	Content  string `json:"content" validate:"required,max=5000"`
}

// UpdateCommentRequest replaces a comment's content.
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,max=5000"`
}

// CommentQuery binds the GET /comments query string.
type CommentQuery struct {
	ReportID *int64 `form:"report"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}
