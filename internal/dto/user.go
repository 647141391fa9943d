package dto

// UpdateUserRequest applies a partial profile update. Role changes are admin-only.
type UpdateUserRequest struct {
	Email            *string `json:"email" validate:"omitempty,email"`
	FirstName        *string `json:"first_name" validate:"omitempty,max=150"`
	LastName         *string `json:"last_name" validate:"omitempty,max=150"`
	IDNumber         *string `json:"id_number" validate:"omitempty,max=50"`
	ContactNumber    *string `json:"contact_number" validate:"omitempty,max=20"`
	ProfileAvatarURL *string `json:"profile_avatar_url" validate:"omitempty,url"`
	Role             *string `json:"user_type" validate:"omitempty,oneof=student admin"`
}

// UserQuery binds the GET /users query string.
type UserQuery struct {
	Role      string `form:"user_type"`
	Search    string `form:"search"`
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
	SortBy    string `form:"sort"`
	SortOrder string `form:"order"`
}
