// Package policy holds the single ownership/role capability check shared by
// every resource service.
package policy

import "github.com/noah-isme/lostfound-api/internal/models"

// Verb distinguishes safe reads from mutations.
type Verb int

const (
	Read Verb = iota
	Write
)

// Actor is the authenticated caller as seen by the policy.
type Actor struct {
	ID       string
	Username string
	Role     models.UserRole
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// ActorFromClaims converts token claims into an Actor. Nil claims yield the zero Actor.
func ActorFromClaims(claims *models.JWTClaims) Actor {
	if claims == nil {
		return Actor{}
	}
	return Actor{ID: claims.UserID, Username: claims.Username, Role: claims.Role}
}

// Authorize grants reads unconditionally. Writes are granted to admins when
// adminBypass is set, and otherwise only to an actor listed in owners.
func Authorize(actor Actor, verb Verb, owners []string, adminBypass bool) bool {
	if verb == Read {
		return true
	}
	if actor.ID == "" {
		return false
	}
	if adminBypass && actor.IsAdmin() {
		return true
	}
	for _, owner := range owners {
		if owner != "" && owner == actor.ID {
			return true
		}
	}
	return false
}

// ReportOwners returns the users allowed to mutate a report besides admins.
func ReportOwners(report *models.Report) []string {
	return []string{report.ReportedBy}
}

// ClaimOwners returns the users allowed to mutate a claim.
func ClaimOwners(claim *models.Claim) []string {
	return []string{claim.ClaimedBy}
}

// CommentOwners returns the comment author and the owner of the parent report.
func CommentOwners(comment *models.Comment, report *models.Report) []string {
	owners := []string{comment.UserID}
	if report != nil {
		owners = append(owners, report.ReportedBy)
	}
	return owners
}

// NotificationOwners returns the notification recipient.
func NotificationOwners(n *models.Notification) []string {
	return []string{n.UserID}
}

// UserOwners returns the account holder.
func UserOwners(user *models.User) []string {
	return []string{user.ID}
}

// CanMutateReport applies the report rule: owner or admin.
func CanMutateReport(actor Actor, report *models.Report) bool {
	return Authorize(actor, Write, ReportOwners(report), true)
}

// CanMutateClaim applies the claim rule: claimant only.
func CanMutateClaim(actor Actor, claim *models.Claim) bool {
	return Authorize(actor, Write, ClaimOwners(claim), false)
}

// CanMutateComment applies the comment rule: author or parent report owner.
func CanMutateComment(actor Actor, comment *models.Comment, report *models.Report) bool {
	return Authorize(actor, Write, CommentOwners(comment, report), false)
}

// CanMutateNotification applies the notification rule: recipient only.
func CanMutateNotification(actor Actor, n *models.Notification) bool {
	return Authorize(actor, Write, NotificationOwners(n), false)
}

// CanMutateUser applies the account rule: self or admin.
func CanMutateUser(actor Actor, user *models.User) bool {
	return Authorize(actor, Write, UserOwners(user), true)
}
