package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/lostfound-api/internal/models"
)

var (
	owner    = Actor{ID: "owner", Role: models.RoleStudent}
	stranger = Actor{ID: "stranger", Role: models.RoleStudent}
	admin    = Actor{ID: "admin", Role: models.RoleAdmin}
)

func TestAuthorizeReadsAlwaysPass(t *testing.T) {
	assert.True(t, Authorize(Actor{}, Read, nil, false))
	assert.True(t, Authorize(stranger, Read, []string{"owner"}, false))
}

func TestAuthorizeWrites(t *testing.T) {
	tests := []struct {
		name   string
		actor  Actor
		owners []string
		bypass bool
		want   bool
	}{
		{"owner", owner, []string{"owner"}, false, true},
		{"stranger", stranger, []string{"owner"}, true, false},
		{"admin with bypass", admin, []string{"owner"}, true, true},
		{"admin without bypass", admin, []string{"owner"}, false, false},
		{"anonymous", Actor{}, []string{""}, true, false},
		{"second owner", owner, []string{"author", "owner"}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Authorize(tt.actor, Write, tt.owners, tt.bypass))
		})
	}
}

func TestEntityRules(t *testing.T) {
	report := &models.Report{ReportedBy: "owner"}
	assert.True(t, CanMutateReport(owner, report))
	assert.True(t, CanMutateReport(admin, report))
	assert.False(t, CanMutateReport(stranger, report))

	claim := &models.Claim{ClaimedBy: "stranger"}
	assert.True(t, CanMutateClaim(stranger, claim))
	assert.False(t, CanMutateClaim(admin, claim))
	assert.False(t, CanMutateClaim(owner, claim))

	comment := &models.Comment{UserID: "stranger"}
	assert.True(t, CanMutateComment(stranger, comment, report))
	assert.True(t, CanMutateComment(owner, comment, report))
	assert.False(t, CanMutateComment(admin, comment, report))
	assert.False(t, CanMutateComment(owner, comment, nil))

	n := &models.Notification{UserID: "owner"}
	assert.True(t, CanMutateNotification(owner, n))
	assert.False(t, CanMutateNotification(admin, n))

	user := &models.User{ID: "stranger"}
	assert.True(t, CanMutateUser(stranger, user))
	assert.True(t, CanMutateUser(admin, user))
	assert.False(t, CanMutateUser(owner, user))
}

func TestActorFromClaims(t *testing.T) {
	assert.Equal(t, Actor{}, ActorFromClaims(nil))
	actor := ActorFromClaims(&models.JWTClaims{UserID: "u1", Username: "ada", Role: models.RoleAdmin})
	assert.Equal(t, "u1", actor.ID)
	assert.Equal(t, "ada", actor.Username)
	assert.True(t, actor.IsAdmin())
}
