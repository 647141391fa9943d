package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/lostfound-api/internal/dto"
	"github.com/noah-isme/lostfound-api/internal/models"
)

func newUserFixture() (*UserService, *mockUserStore) {
	owner, other, admin := studentOwner, studentOther, adminUser
	repo := newMockUserStore(&owner, &other, &admin)
	return NewUserService(repo, nil, nil), repo
}

func TestUserServiceListAdminOnly(t *testing.T) {
	svc, _ := newUserFixture()

	_, _, err := svc.List(context.Background(), actorOf(studentOwner), dto.UserQuery{})
	assertStatus(t, err, http.StatusForbidden)

	users, page, err := svc.List(context.Background(), actorOf(adminUser), dto.UserQuery{Role: "student"})
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, 2, page.TotalCount)

	_, _, err = svc.List(context.Background(), actorOf(adminUser), dto.UserQuery{Role: "staff"})
	assertStatus(t, err, http.StatusBadRequest)
}

func TestUserServiceGetHidesOtherUsers(t *testing.T) {
	svc, _ := newUserFixture()

	_, err := svc.Get(context.Background(), actorOf(studentOwner), studentOther.ID)
	assertStatus(t, err, http.StatusNotFound)

	user, err := svc.Get(context.Background(), actorOf(studentOwner), studentOwner.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", user.Username)

	_, err = svc.Get(context.Background(), actorOf(adminUser), studentOther.ID)
	require.NoError(t, err)
}

func TestUserServiceUpdateProfile(t *testing.T) {
	svc, repo := newUserFixture()
	first, avatar, email := "Robert", "", "Robert@Example.com"

	user, err := svc.Update(context.Background(), actorOf(studentOwner), studentOwner.ID, dto.UpdateUserRequest{FirstName: &first, ProfileAvatarURL: &avatar, Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "Robert", user.FirstName)
	assert.Equal(t, "robert@example.com", user.Email)
	assert.Equal(t, models.DefaultAvatarURL("bob"), user.ProfileAvatarURL)
	assert.Equal(t, "Robert", repo.users[studentOwner.ID].FirstName)

	taken := "carol@example.com"
	_, err = svc.Update(context.Background(), actorOf(studentOwner), studentOwner.ID, dto.UpdateUserRequest{Email: &taken})
	assertStatus(t, err, http.StatusConflict)
}

func TestUserServiceRoleChanges(t *testing.T) {
	svc, repo := newUserFixture()
	admin := "admin"

	_, err := svc.Update(context.Background(), actorOf(studentOwner), studentOwner.ID, dto.UpdateUserRequest{Role: &admin})
	assertStatus(t, err, http.StatusForbidden)
	assert.Equal(t, models.RoleStudent, repo.users[studentOwner.ID].Role)

	user, err := svc.Update(context.Background(), actorOf(adminUser), studentOwner.ID, dto.UpdateUserRequest{Role: &admin})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.Equal(t, []string{studentOwner.ID}, repo.revokedUsers)
}

func TestUserServiceDeleteAdminOnly(t *testing.T) {
	svc, repo := newUserFixture()

	assertStatus(t, svc.Delete(context.Background(), actorOf(studentOwner), studentOther.ID), http.StatusForbidden)
	require.NoError(t, svc.Delete(context.Background(), actorOf(adminUser), studentOther.ID))
	assert.NotContains(t, repo.users, studentOther.ID)
	assertStatus(t, svc.Delete(context.Background(), actorOf(adminUser), studentOther.ID), http.StatusNotFound)
}
