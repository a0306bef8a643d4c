package api

import (
	"database/sql"
	"errors"
	"net/http"

	ics "github.com/arran4/golang-ical"

	"github.com/GinsengJuice/CalendarApp/internal/database"
)

func (cfg *APIConfig) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	type rqSchema struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	}

	rqPayload, err := decodePayload[rqSchema](r)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failure decoding parameters", err)
		return
	}

	if rqPayload.Name == "" {
		respondWithError(w, http.StatusBadRequest, "name not provided", nil)
		return
	}
	if rqPayload.Color == "" {
		rqPayload.Color = defaultColor
	}

	dbCategory, err := cfg.db.CreateCategory(r.Context(), database.CreateCategoryParams{
		Name:    rqPayload.Name,
		Color:   rqPayload.Color,
		OwnerID: validatedUserID,
	})
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not create category", err)
		return
	}

	rspPayload := Category{
		ID:        dbCategory.ID,
		CreatedAt: dbCategory.CreatedAt,
		UpdatedAt: dbCategory.UpdatedAt,
		Name:      dbCategory.Name,
		Color:     dbCategory.Color,
		OwnerID:   dbCategory.OwnerID,
	}

	respondWithJSON(w, http.StatusCreated, rspPayload)
}

// handleGetCategories returns the categories the actor owns plus the ones
// shared to them, the latter annotated with is_shared and share_role.
func (cfg *APIConfig) handleGetCategories(w http.ResponseWriter, r *http.Request) {
	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	owned, err := cfg.db.GetOwnedCategories(r.Context(), validatedUserID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not retrieve categories", err)
		return
	}

	shared, err := cfg.db.GetSharedCategories(r.Context(), validatedUserID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not retrieve shared categories", err)
		return
	}

	categories := make([]Category, 0, len(owned)+len(shared))
	for _, c := range owned {
		categories = append(categories, Category{
			ID:        c.ID,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
			Name:      c.Name,
			Color:     c.Color,
			OwnerID:   c.OwnerID,
		})
	}
	for _, row := range shared {
		categories = append(categories, Category{
			ID:        row.Category.ID,
			CreatedAt: row.Category.CreatedAt,
			UpdatedAt: row.Category.UpdatedAt,
			Name:      row.Category.Name,
			Color:     row.Category.Color,
			OwnerID:   row.Category.OwnerID,
			IsShared:  true,
			ShareRole: row.ShareRole,
		})
	}

	type rspSchema struct {
		Categories []Category `json:"categories"`
	}

	respondWithJSON(w, http.StatusOK, rspSchema{Categories: categories})
}

func (cfg *APIConfig) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	pathCategoryID, err := parseUUIDFromPath("category_id", r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "", err)
		return
	}

	type rqSchema struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	}

	rqPayload, err := decodePayload[rqSchema](r)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failure decoding parameters", err)
		return
	}

	// existence is checked before authorization: a missing category is a
	// 404 for everyone, shared or not
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
		respondWithError(w, http.StatusUnauthorized, "only the owner may modify a category", nil)
		return
	}

	if rqPayload.Name == "" {
		rqPayload.Name = dbCategory.Name
	}
	if rqPayload.Color == "" {
		rqPayload.Color = dbCategory.Color
	}

	updated, err := cfg.db.UpdateCategory(r.Context(), database.UpdateCategoryParams{
		ID:    pathCategoryID,
		Name:  rqPayload.Name,
		Color: rqPayload.Color,
	})
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to update category", err)
		return
	}

	rspPayload := Category{
		ID:        updated.ID,
		CreatedAt: updated.CreatedAt,
		UpdatedAt: updated.UpdatedAt,
		Name:      updated.Name,
		Color:     updated.Color,
		OwnerID:   updated.OwnerID,
	}

	respondWithJSON(w, http.StatusOK, rspPayload)
}

// handleDeleteCategory removes a category with its events and share
// grants. Children go first, inside one transaction, so a reader never
// sees a deleted category with surviving events. The janitor sweep picks
// up anything an interrupted cascade leaves behind.
func (cfg *APIConfig) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	pathCategoryID, err := parseUUIDFromPath("category_id", r)
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
		respondWithError(w, http.StatusUnauthorized, "only the owner may delete a category", nil)
		return
	}

	tx, err := cfg.sqlDB.BeginTx(r.Context(), nil)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not start cascade delete", err)
		return
	}
	defer tx.Rollback()

	qtx := cfg.db.WithTx(tx)
	if err := qtx.DeleteEventsByCategoryID(r.Context(), pathCategoryID); err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not delete category events", err)
		return
	}
	if err := qtx.DeleteSharesByCategoryID(r.Context(), pathCategoryID); err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not delete category shares", err)
		return
	}
	if err := qtx.DeleteCategoryByID(r.Context(), pathCategoryID); err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not delete category", err)
		return
	}
	if err := tx.Commit(); err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not commit cascade delete", err)
		return
	}

	respondWithCode(w, http.StatusNoContent)
}

func (cfg *APIConfig) handleGetCategoryShares(w http.ResponseWriter, r *http.Request) {
	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	pathCategoryID, err := parseUUIDFromPath("category_id", r)
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
		respondWithError(w, http.StatusUnauthorized, "only the owner may list category shares", nil)
		return
	}

	dbShares, err := cfg.db.GetSharesForCategory(r.Context(), pathCategoryID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not retrieve shares", err)
		return
	}

	shares := make([]Share, 0, len(dbShares))
	for _, s := range dbShares {
		shares = append(shares, Share{
			ID:         s.ID,
			CreatedAt:  s.CreatedAt,
			CategoryID: s.CategoryID,
			GranteeID:  s.GranteeID,
			Role:       s.ShareRole,
			GrantedBy:  s.GrantedBy,
		})
	}

	type rspSchema struct {
		Shares []Share `json:"shares"`
	}

	respondWithJSON(w, http.StatusOK, rspSchema{Shares: shares})
}

// handleExportCategoryICS renders a category's events as an iCalendar
// document; any actor with read access may export.
func (cfg *APIConfig) handleExportCategoryICS(w http.ResponseWriter, r *http.Request) {
	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	pathCategoryID, err := parseUUIDFromPath("category_id", r)
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

	canRead, err := cfg.access.CanRead(r.Context(), validatedUserID, categoryResource(dbCategory))
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not evaluate access", err)
		return
	}
	if !canRead {
		respondWithError(w, http.StatusUnauthorized, "no access to this category", nil)
		return
	}

	dbEvents, err := cfg.db.GetEventsByCategoryID(r.Context(), pathCategoryID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not retrieve events", err)
		return
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//CalendarApp//EN")
	cal.SetName(dbCategory.Name)
	for _, e := range dbEvents {
		vevent := cal.AddEvent(e.ID.String())
		vevent.SetCreatedTime(e.CreatedAt)
		vevent.SetModifiedAt(e.UpdatedAt)
		vevent.SetStartAt(e.StartTime)
		vevent.SetEndAt(e.EndTime)
		vevent.SetSummary(e.Title)
		if e.Notes != "" {
			vevent.SetDescription(e.Notes)
		}
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(cal.Serialize())); err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not write calendar", err)
	}
}
