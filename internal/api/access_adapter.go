package api

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/GinsengJuice/CalendarApp/internal/access"
	"github.com/GinsengJuice/CalendarApp/internal/database"
)

// dbGrantSource feeds share grants from the database into the evaluator.
type dbGrantSource struct {
	q *database.Queries
}

func (s dbGrantSource) FindGrant(ctx context.Context, categoryID, userID uuid.UUID) (*access.Grant, error) {
	share, err := s.q.FindShare(ctx, database.FindShareParams{
		CategoryID: categoryID,
		GranteeID:  userID,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	role, err := access.RoleFromString(share.ShareRole)
	if err != nil {
		return nil, err
	}
	return &access.Grant{Role: role}, nil
}

func categoryResource(c database.Category) access.Resource {
	return access.Resource{OwnerID: c.OwnerID, CategoryID: c.ID}
}

func eventResource(e database.Event) access.Resource {
	return access.Resource{OwnerID: e.OwnerID, CategoryID: e.CategoryID}
}
