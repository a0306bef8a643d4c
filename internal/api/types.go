package api

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Token        string    `json:"token,omitempty"`
	RefreshToken string    `json:"refresh_token,omitempty"`
}

// Category is a named, colored grouping of events; the unit of sharing.
// IsShared and ShareRole are set only on categories shared *to* the
// requesting user, never on owned ones.
type Category struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	OwnerID   uuid.UUID `json:"owner_id"`
	IsShared  bool      `json:"is_shared,omitempty"`
	ShareRole string    `json:"share_role,omitempty"`
}

type Event struct {
	ID         uuid.UUID `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Title      string    `json:"title"`
	Notes      string    `json:"notes,omitempty"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Color      string    `json:"color"`
	CategoryID uuid.UUID `json:"category_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
}

type Share struct {
	ID         uuid.UUID `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	CategoryID uuid.UUID `json:"category_id"`
	GranteeID  uuid.UUID `json:"grantee_id"`
	Role       string    `json:"role"`
	GrantedBy  uuid.UUID `json:"granted_by"`
}

const defaultColor = "#007bff"
