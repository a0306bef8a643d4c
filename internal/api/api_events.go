package api

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/GinsengJuice/CalendarApp/internal/database"
)

// handleGetEvents returns every event the actor may see: their own plus
// all events in categories shared to them, regardless of role.
func (cfg *APIConfig) handleGetEvents(w http.ResponseWriter, r *http.Request) {
	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	dbEvents, err := cfg.db.GetVisibleEvents(r.Context(), validatedUserID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not retrieve events", err)
		return
	}

	events := make([]Event, 0, len(dbEvents))
	for _, e := range dbEvents {
		events = append(events, Event{
			ID:         e.ID,
			CreatedAt:  e.CreatedAt,
			UpdatedAt:  e.UpdatedAt,
			Title:      e.Title,
			Notes:      e.Notes,
			StartTime:  e.StartTime,
			EndTime:    e.EndTime,
			Color:      e.Color,
			CategoryID: e.CategoryID,
			OwnerID:    e.OwnerID,
		})
	}

	type rspSchema struct {
		Events []Event `json:"events"`
	}

	respondWithJSON(w, http.StatusOK, rspSchema{Events: events})
}

func (cfg *APIConfig) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	type rqSchema struct {
		Title      string `json:"title"`
		Notes      string `json:"notes"`
		StartTime  string `json:"start_time"`
		EndTime    string `json:"end_time"`
		Color      string `json:"color"`
		CategoryID string `json:"category_id"`
	}

	rqPayload, err := decodePayload[rqSchema](r)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failure decoding parameters", err)
		return
	}

	if rqPayload.Title == "" || rqPayload.StartTime == "" || rqPayload.EndTime == "" || rqPayload.CategoryID == "" {
		respondWithError(w, http.StatusBadRequest, "title, start_time, end_time and category_id are required", nil)
		return
	}

	categoryID, err := uuid.Parse(rqPayload.CategoryID)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid category_id", err)
		return
	}

	startTime, err := parseTimestamp(rqPayload.StartTime)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid start_time", err)
		return
	}
	endTime, err := parseTimestamp(rqPayload.EndTime)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid end_time", err)
		return
	}
	if !endTime.After(startTime) {
		respondWithError(w, http.StatusBadRequest, "end_time must be after start_time", nil)
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

	canWrite, err := cfg.access.CanWrite(r.Context(), validatedUserID, categoryResource(dbCategory))
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not evaluate access", err)
		return
	}
	if !canWrite {
		respondWithError(w, http.StatusUnauthorized, "no write access to this category", nil)
		return
	}

	if rqPayload.Color == "" {
		rqPayload.Color = dbCategory.Color
	}

	// the creator becomes the event owner, even in a category owned by
	// someone else
	dbEvent, err := cfg.db.CreateEvent(r.Context(), database.CreateEventParams{
		Title:      rqPayload.Title,
		Notes:      rqPayload.Notes,
		StartTime:  startTime,
		EndTime:    endTime,
		Color:      rqPayload.Color,
		CategoryID: categoryID,
		OwnerID:    validatedUserID,
	})
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not create event", err)
		return
	}

	respondWithJSON(w, http.StatusCreated, Event{
		ID:         dbEvent.ID,
		CreatedAt:  dbEvent.CreatedAt,
		UpdatedAt:  dbEvent.UpdatedAt,
		Title:      dbEvent.Title,
		Notes:      dbEvent.Notes,
		StartTime:  dbEvent.StartTime,
		EndTime:    dbEvent.EndTime,
		Color:      dbEvent.Color,
		CategoryID: dbEvent.CategoryID,
		OwnerID:    dbEvent.OwnerID,
	})
}

// handleUpdateEvent patches an event in place. Omitted fields keep their
// stored values, and the owner column is never part of the update, so a
// crafted payload cannot reassign ownership.
func (cfg *APIConfig) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	pathEventID, err := parseUUIDFromPath("event_id", r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "", err)
		return
	}

	type rqSchema struct {
		Title      string `json:"title"`
		Notes      string `json:"notes"`
		StartTime  string `json:"start_time"`
		EndTime    string `json:"end_time"`
		Color      string `json:"color"`
		CategoryID string `json:"category_id"`
	}

	rqPayload, err := decodePayload[rqSchema](r)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failure decoding parameters", err)
		return
	}

	dbEvent, err := cfg.db.GetEventByID(r.Context(), pathEventID)
	if errors.Is(err, sql.ErrNoRows) {
		respondWithError(w, http.StatusNotFound, "event does not exist", nil)
		return
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not get event", err)
		return
	}

	canWrite, err := cfg.access.CanWrite(r.Context(), validatedUserID, eventResource(dbEvent))
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not evaluate access", err)
		return
	}
	if !canWrite {
		respondWithError(w, http.StatusUnauthorized, "no write access to this event", nil)
		return
	}

	if rqPayload.Title == "" {
		rqPayload.Title = dbEvent.Title
	}
	if rqPayload.Notes == "" {
		rqPayload.Notes = dbEvent.Notes
	}
	if rqPayload.Color == "" {
		rqPayload.Color = dbEvent.Color
	}

	startTime := dbEvent.StartTime
	if rqPayload.StartTime != "" {
		startTime, err = parseTimestamp(rqPayload.StartTime)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid start_time", err)
			return
		}
	}
	endTime := dbEvent.EndTime
	if rqPayload.EndTime != "" {
		endTime, err = parseTimestamp(rqPayload.EndTime)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid end_time", err)
			return
		}
	}
	if !endTime.After(startTime) {
		respondWithError(w, http.StatusBadRequest, "end_time must be after start_time", nil)
		return
	}

	categoryID := dbEvent.CategoryID
	if rqPayload.CategoryID != "" {
		categoryID, err = uuid.Parse(rqPayload.CategoryID)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid category_id", err)
			return
		}
	}
	if categoryID != dbEvent.CategoryID {
		// moving the event needs write access in the destination too
		targetCategory, err := cfg.db.GetCategoryByID(r.Context(), categoryID)
		if errors.Is(err, sql.ErrNoRows) {
			respondWithError(w, http.StatusNotFound, "category does not exist", nil)
			return
		}
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "could not get category", err)
			return
		}
		canWrite, err = cfg.access.CanWrite(r.Context(), validatedUserID, categoryResource(targetCategory))
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "could not evaluate access", err)
			return
		}
		if !canWrite {
			respondWithError(w, http.StatusUnauthorized, "no write access to the target category", nil)
			return
		}
	}

	updated, err := cfg.db.UpdateEvent(r.Context(), database.UpdateEventParams{
		ID:         pathEventID,
		Title:      rqPayload.Title,
		Notes:      rqPayload.Notes,
		StartTime:  startTime,
		EndTime:    endTime,
		Color:      rqPayload.Color,
		CategoryID: categoryID,
	})
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to update event", err)
		return
	}

	respondWithJSON(w, http.StatusOK, Event{
		ID:         updated.ID,
		CreatedAt:  updated.CreatedAt,
		UpdatedAt:  updated.UpdatedAt,
		Title:      updated.Title,
		Notes:      updated.Notes,
		StartTime:  updated.StartTime,
		EndTime:    updated.EndTime,
		Color:      updated.Color,
		CategoryID: updated.CategoryID,
		OwnerID:    updated.OwnerID,
	})
}

func (cfg *APIConfig) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	pathEventID, err := parseUUIDFromPath("event_id", r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "", err)
		return
	}

	dbEvent, err := cfg.db.GetEventByID(r.Context(), pathEventID)
	if errors.Is(err, sql.ErrNoRows) {
		respondWithError(w, http.StatusNotFound, "event does not exist", nil)
		return
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not get event", err)
		return
	}

	canWrite, err := cfg.access.CanWrite(r.Context(), validatedUserID, eventResource(dbEvent))
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not evaluate access", err)
		return
	}
	if !canWrite {
		respondWithError(w, http.StatusUnauthorized, "no write access to this event", nil)
		return
	}

	if err := cfg.db.DeleteEventByID(r.Context(), pathEventID); err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not delete event", err)
		return
	}

	respondWithCode(w, http.StatusNoContent)
}
