package api

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/GinsengJuice/CalendarApp/internal/access"
	"github.com/GinsengJuice/CalendarApp/internal/database"
)

// handleShareCategory grants a viewer or editor role on a category to
// another user, looked up by email. Only the owner may grant, and the
// unique constraint on (category_id, grantee_id) turns a concurrent
// duplicate grant into a conflict instead of a second row.
func (cfg *APIConfig) handleShareCategory(w http.ResponseWriter, r *http.Request) {
	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	type rqSchema struct {
		CategoryID string `json:"category_id"`
		Email      string `json:"email"`
		Role       string `json:"role"`
	}

	rqPayload, err := decodePayload[rqSchema](r)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failure decoding parameters", err)
		return
	}

	if rqPayload.CategoryID == "" || rqPayload.Email == "" || rqPayload.Role == "" {
		respondWithError(w, http.StatusBadRequest, "category_id, email and role are required", nil)
		return
	}

	role, err := access.RoleFromString(rqPayload.Role)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "role must be viewer or editor", err)
		return
	}

	categoryID, err := uuid.Parse(rqPayload.CategoryID)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid category_id", err)
		return
	}

	dbCategory, err := cfg.db.GetCategoryByID(r.Context(), categoryID)
	if errors.Is(err, sql.ErrNoRows) {
		respondWithError(w, http.StatusNotFound, "category does not exist", nil)
		return
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not get category", err)
		return
	}

	if !cfg.access.CanManage(validatedUserID, categoryResource(dbCategory)) {
		respondWithError(w, http.StatusUnauthorized, "only the owner may share a category", nil)
		return
	}

	grantee, err := cfg.db.GetUserByEmail(r.Context(), rqPayload.Email)
	if errors.Is(err, sql.ErrNoRows) {
		respondWithError(w, http.StatusNotFound, "no user with that email", nil)
		return
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not look up user", err)
		return
	}

	if grantee.ID == validatedUserID {
		respondWithError(w, http.StatusBadRequest, "cannot share a category with yourself", nil)
		return
	}

	dbShare, err := cfg.db.CreateShare(r.Context(), database.CreateShareParams{
		CategoryID: categoryID,
		GranteeID:  grantee.ID,
		ShareRole:  role.String(),
		GrantedBy:  validatedUserID,
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			respondWithError(w, http.StatusConflict, "category already shared with this user", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "could not create share", err)
		return
	}

	rspPayload := Share{
		ID:         dbShare.ID,
		CreatedAt:  dbShare.CreatedAt,
		CategoryID: dbShare.CategoryID,
		GranteeID:  dbShare.GranteeID,
		Role:       dbShare.ShareRole,
		GrantedBy:  dbShare.GrantedBy,
	}

	respondWithJSON(w, http.StatusCreated, rspPayload)
}

// handleRevokeShare is idempotent: revoking a grant that does not exist
// still reports success.
func (cfg *APIConfig) handleRevokeShare(w http.ResponseWriter, r *http.Request) {
	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	pathCategoryID, err := parseUUIDFromPath("category_id", r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "", err)
		return
	}

	pathUserID, err := parseUUIDFromPath("user_id", r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "", err)
		return
	}

	dbCategory, err := cfg.db.GetCategoryByID(r.Context(), pathCategoryID)
	if errors.Is(err, sql.ErrNoRows) {
		respondWithError(w, http.StatusNotFound, "category does not exist", nil)
		return
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not get category", err)
		return
	}

	if !cfg.access.CanManage(validatedUserID, categoryResource(dbCategory)) {
		respondWithError(w, http.StatusUnauthorized, "only the owner may revoke a share", nil)
		return
	}

	err = cfg.db.DeleteShare(r.Context(), database.DeleteShareParams{
		CategoryID: pathCategoryID,
		GranteeID:  pathUserID,
	})
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not revoke share", err)
		return
	}

	respondWithCode(w, http.StatusNoContent)
}
