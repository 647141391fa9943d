package models

import (
	"fmt"
	"strings"
	"time"
)

// UserRole is the closed set of account types.
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleAdmin   UserRole = "admin"
)

// ParseRole accepts only known roles, case-insensitively.
func ParseRole(raw string) (UserRole, error) {
	role := UserRole(strings.ToLower(strings.TrimSpace(raw)))
	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q", raw)
	}
	return role, nil
}

// Valid reports whether the role belongs to the closed set.
func (r UserRole) Valid() bool {
	return r == RoleStudent || r == RoleAdmin
}

// DefaultAvatarURL returns the generated avatar used when a user supplies none.
func DefaultAvatarURL(username string) string {
	return "https://api.dicebear.com/9.x/adventurer/svg?seed=" + username
}

// User represents an application user stored in the users table.
type User struct {
	ID               string    `db:"id" json:"id"`
	Username         string    `db:"username" json:"username"`
	Email            string    `db:"email" json:"email"`
	PasswordHash     string    `db:"password_hash" json:"-"`
	FirstName        string    `db:"first_name" json:"first_name"`
	LastName         string    `db:"last_name" json:"last_name"`
	Role             UserRole  `db:"user_type" json:"user_type"`
	IDNumber         *string   `db:"id_number" json:"id_number"`
	ContactNumber    *string   `db:"contact_number" json:"contact_number"`
	ProfileAvatarURL string    `db:"profile_avatar_url" json:"profile_avatar_url"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Summary returns the public projection embedded in other resources.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:               u.ID,
		Username:         u.Username,
		Email:            u.Email,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		ProfileAvatarURL: u.ProfileAvatarURL,
	}
}

// UserSummary is the nested user shape in reports, comments, claims and notifications.
type UserSummary struct {
	ID               string `db:"id" json:"id"`
	Username         string `db:"username" json:"username"`
	Email            string `db:"email" json:"email"`
	FirstName        string `db:"first_name" json:"first_name"`
	LastName         string `db:"last_name" json:"last_name"`
	ProfileAvatarURL string `db:"profile_avatar_url" json:"profile_avatar_url"`
}

// UserFilter captures filtering criteria for listing users.
type UserFilter struct {
	Role      *UserRole
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}

// NewPagination normalises page values the same way repositories do.
func NewPagination(page, pageSize, total int) *Pagination {
	page, pageSize = NormalizePage(page, pageSize)
	return &Pagination{Page: page, PageSize: pageSize, TotalCount: total}
}

// NormalizePage clamps page to >= 1 and page size to (0, 100], defaulting to 20.
func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
