// Package access makes the authorization decisions for categories and
// events. Decisions are pure reads: the evaluator never mutates state and
// never converts a denial into an error. Callers map a false result to an
// HTTP status at the operation boundary.
package access

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Role is the level of access a share grant confers on a category.
type Role int

const (
	Viewer Role = iota
	Editor
)

var roleToString = map[Role]string{
	Viewer: "viewer",
	Editor: "editor",
}

var roleFromString = map[string]Role{
	"viewer": Viewer,
	"editor": Editor,
}

func (r Role) String() string {
	return roleToString[r]
}

func RoleFromString(s string) (Role, error) {
	s = strings.ToLower(s)
	if val, ok := roleFromString[s]; ok {
		return val, nil
	}
	return -1, fmt.Errorf("invalid share role: %s", s)
}

// Grant is a share record reduced to what authorization needs.
type Grant struct {
	Role Role
}

// GrantSource looks up the share grant for a (category, user) pair.
// A nil grant with nil error means no grant exists; that is not a failure.
type GrantSource interface {
	FindGrant(ctx context.Context, categoryID, userID uuid.UUID) (*Grant, error)
}

// Resource is the authorization-relevant surface shared by categories and
// events: who owns it, and which category scopes its share grants. For a
// category the CategoryID is its own id.
type Resource struct {
	OwnerID    uuid.UUID
	CategoryID uuid.UUID
}

// IsOwner reports whether the actor owns the resource.
func (res Resource) IsOwner(actor uuid.UUID) bool {
	return res.OwnerID == actor
}

// Evaluator answers allow/deny for (actor, resource, action) triples,
// combining ownership with grant lookups from a GrantSource.
type Evaluator struct {
	Grants GrantSource
}

func NewEvaluator(grants GrantSource) *Evaluator {
	return &Evaluator{Grants: grants}
}

// CanRead allows the owner and any grantee, viewer or editor alike.
func (e *Evaluator) CanRead(ctx context.Context, actor uuid.UUID, res Resource) (bool, error) {
	if res.IsOwner(actor) {
		return true, nil
	}
	grant, err := e.Grants.FindGrant(ctx, res.CategoryID, actor)
	if err != nil {
		return false, err
	}
	return grant != nil, nil
}

// CanWrite allows the owner, or a grantee holding the editor role on the
// resource's category. Event ownership is independent from category
// ownership: an editor who created an event in a shared category passes
// the owner check here even though the category belongs to someone else.
func (e *Evaluator) CanWrite(ctx context.Context, actor uuid.UUID, res Resource) (bool, error) {
	if res.IsOwner(actor) {
		return true, nil
	}
	grant, err := e.Grants.FindGrant(ctx, res.CategoryID, actor)
	if err != nil {
		return false, err
	}
	return grant != nil && grant.Role == Editor, nil
}

// CanManage allows only the owner. Renaming, recoloring, deleting, and
// sharing a category are never delegated to grantees; an editor role must
// not escalate into category management.
func (e *Evaluator) CanManage(actor uuid.UUID, res Resource) bool {
	return res.IsOwner(actor)
}
