package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/lostfound-api/internal/dto"
	"github.com/noah-isme/lostfound-api/internal/models"
	"github.com/noah-isme/lostfound-api/internal/policy"
	appErrors "github.com/noah-isme/lostfound-api/pkg/errors"
)

type userRepository interface {
	List(ctx context.Context, filter models.UserFilter) ([]models.User, int, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
	RevokeUserRefreshTokens(ctx context.Context, userID string) error
}

// UserService handles the user directory.
type UserService struct {
	repo      userRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewUserService creates an instance of UserService.
func NewUserService(repo userRepository, validate *validator.Validate, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &UserService{repo: repo, validator: validate, logger: logger}
}

// List returns paginated users. Admin-only.
func (s *UserService) List(ctx context.Context, actor policy.Actor, query dto.UserQuery) ([]models.User, *models.Pagination, error) {
	if !actor.IsAdmin() {
		return nil, nil, appErrors.Clone(appErrors.ErrForbidden, "only admins can list users")
	}
	filter := models.UserFilter{
		Search:    strings.TrimSpace(query.Search),
		Page:      query.Page,
		PageSize:  query.PageSize,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
	}
	if query.Role != "" {
		role, err := models.ParseRole(query.Role)
		if err != nil {
			return nil, nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
		}
		filter.Role = &role
	}

	users, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list users")
	}
	return users, models.NewPagination(query.Page, query.PageSize, total), nil
}

// Get returns a user. Non-admins can only see themselves; others are NotFound.
func (s *UserService) Get(ctx context.Context, actor policy.Actor, id string) (*models.User, error) {
	if !actor.IsAdmin() && actor.ID != id {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load user")
	}
	return user, nil
}

// Update applies a partial profile update. Only admins can change roles.
func (s *UserService) Update(ctx context.Context, actor policy.Actor, id string, req dto.UpdateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid update payload")
	}
	user, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanMutateUser(actor, user) {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "you can only modify your own account")
	}

	roleChanged := false
	if req.Role != nil {
		role, err := models.ParseRole(*req.Role)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
		}
		if role != user.Role && !actor.IsAdmin() {
			return nil, appErrors.Clone(appErrors.ErrForbidden, "only admins can change user_type")
		}
		roleChanged = role != user.Role
		user.Role = role
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != strings.ToLower(user.Email) {
			if existing, err := s.repo.FindByEmail(ctx, email); err == nil && existing.ID != user.ID {
				return nil, appErrors.Clone(appErrors.ErrConflict, "email already exists")
			} else if err != nil && !errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check email uniqueness")
			}
		}
		user.Email = email
	}
	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.IDNumber != nil {
		user.IDNumber = optionalString(*req.IDNumber)
	}
	if req.ContactNumber != nil {
		user.ContactNumber = optionalString(*req.ContactNumber)
	}
	if req.ProfileAvatarURL != nil {
		user.ProfileAvatarURL = strings.TrimSpace(*req.ProfileAvatarURL)
		if user.ProfileAvatarURL == "" {
			user.ProfileAvatarURL = models.DefaultAvatarURL(user.Username)
		}
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update user")
	}
	if roleChanged {
		if err := s.repo.RevokeUserRefreshTokens(ctx, user.ID); err != nil {
			s.logger.Warn("failed to revoke refresh tokens after role change", zap.String("user_id", user.ID), zap.Error(err))
		}
	}
	return user, nil
}

// Delete removes a user and everything they own. Admin-only.
func (s *UserService) Delete(ctx context.Context, actor policy.Actor, id string) error {
	if !actor.IsAdmin() {
		return appErrors.Clone(appErrors.ErrForbidden, "only admins can delete users")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete user")
	}
	return nil
}
