package dto

// UpdateNotificationRequest marks a notification read or unread.
type UpdateNotificationRequest struct {
	IsRead *bool `json:"is_read" validate:"required"`
}

// NotificationQuery binds the GET /notifications query string.
type NotificationQuery struct {
	IsRead   *bool `form:"is_read"`
	Page     int   `form:"page"`
	PageSize int   `form:"page_size"`
}
