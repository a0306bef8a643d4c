package api

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/GinsengJuice/CalendarApp/internal/assistant"
	"github.com/GinsengJuice/CalendarApp/internal/database"
)

type assistantResponse struct {
	AIResponse     string  `json:"ai_response"`
	IsFunctionCall bool    `json:"is_function_call"`
	Event          *Event  `json:"event,omitempty"`
	Events         []Event `json:"events,omitempty"`
}

// handleAssistantChat forwards the user's message to the oracle and, when
// the model asks for a tool call, executes it under the caller's identity
// and access rights.
func (cfg *APIConfig) handleAssistantChat(w http.ResponseWriter, r *http.Request) {
	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	if cfg.oracle == nil {
		respondWithError(w, http.StatusServiceUnavailable, "assistant is not configured", nil)
		return
	}

	type rqSchema struct {
		Message         string `json:"message"`
		CurrentDatetime string `json:"current_datetime"`
		CategoryID      string `json:"category_id"`
	}

	rqPayload, err := decodePayload[rqSchema](r)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failure decoding parameters", err)
		return
	}

	if rqPayload.Message == "" {
		respondWithError(w, http.StatusBadRequest, "message not provided", nil)
		return
	}

	now := time.Now()
	if rqPayload.CurrentDatetime != "" {
		now, err = parseTimestamp(rqPayload.CurrentDatetime)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid current_datetime", err)
			return
		}
	}

	reply, err := cfg.oracle.Chat(r.Context(), rqPayload.Message, now)
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "assistant request failed", err)
		return
	}

	if reply.Call == nil {
		respondWithJSON(w, http.StatusOK, assistantResponse{AIResponse: reply.Text})
		return
	}

	switch reply.Call.Name {
	case assistant.ToolCreateEvent:
		cfg.assistantCreateEvent(w, r, validatedUserID, rqPayload.CategoryID, reply.Call.Args)
	case assistant.ToolGetEventsByDate:
		cfg.assistantGetEventsByDate(w, r, validatedUserID, rqPayload.CategoryID, reply.Call.Args)
	default:
		respondWithError(w, http.StatusBadGateway, "assistant requested an unknown action", fmt.Errorf("unknown tool: %s", reply.Call.Name))
	}
}

func stringArg(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

// assistantCategory resolves which category an assistant-created event
// lands in: the explicitly requested one, or the actor's oldest owned
// category as a fallback.
func (cfg *APIConfig) assistantCategory(r *http.Request, actorID uuid.UUID, requestedID string) (database.Category, error) {
	if requestedID != "" {
		categoryID, err := uuid.Parse(requestedID)
		if err != nil {
			return database.Category{}, fmt.Errorf("invalid category_id: %w", err)
		}
		return cfg.db.GetCategoryByID(r.Context(), categoryID)
	}
	return cfg.db.GetFirstOwnedCategory(r.Context(), actorID)
}

func (cfg *APIConfig) assistantCreateEvent(w http.ResponseWriter, r *http.Request, actorID uuid.UUID, requestedCategoryID string, args map[string]any) {
	title := stringArg(args, "title")
	if title == "" {
		respondWithError(w, http.StatusBadGateway, "assistant did not provide an event title", nil)
		return
	}

	startTime, err := parseTimestamp(stringArg(args, "startTime"))
	if err != nil || startTime.IsZero() {
		respondWithError(w, http.StatusBadGateway, "assistant did not provide a usable start time", err)
		return
	}

	endTime := startTime.Add(time.Hour)
	if raw := stringArg(args, "endTime"); raw != "" {
		endTime, err = parseTimestamp(raw)
		if err != nil {
			respondWithError(w, http.StatusBadGateway, "assistant did not provide a usable end time", err)
			return
		}
	}
	if !endTime.After(startTime) {
		endTime = startTime.Add(time.Hour)
	}

	dbCategory, err := cfg.assistantCategory(r, actorID, requestedCategoryID)
	if errors.Is(err, sql.ErrNoRows) {
		respondWithError(w, http.StatusBadRequest, "no category available for the event; create one first", nil)
		return
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not resolve category", err)
		return
	}

	canWrite, err := cfg.access.CanWrite(r.Context(), actorID, categoryResource(dbCategory))
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not evaluate access", err)
		return
	}
	if !canWrite {
		respondWithError(w, http.StatusUnauthorized, "no write access to this category", nil)
		return
	}

	dbEvent, err := cfg.db.CreateEvent(r.Context(), database.CreateEventParams{
		Title:      title,
		Notes:      stringArg(args, "notes"),
		StartTime:  startTime,
		EndTime:    endTime,
		Color:      dbCategory.Color,
		CategoryID: dbCategory.ID,
		OwnerID:    actorID,
	})
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not create event", err)
		return
	}

	event := Event{
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
	}

	respondWithJSON(w, http.StatusOK, assistantResponse{
		AIResponse: fmt.Sprintf("Scheduled %q on %s in %q.",
			dbEvent.Title,
			dbEvent.StartTime.Format("Mon, 02 Jan 2006 at 15:04"),
			dbCategory.Name,
		),
		IsFunctionCall: true,
		Event:          &event,
	})
}

func (cfg *APIConfig) assistantGetEventsByDate(w http.ResponseWriter, r *http.Request, actorID uuid.UUID, requestedCategoryID string, args map[string]any) {
	day, err := parseTimestamp(stringArg(args, "date"))
	if err != nil || day.IsZero() {
		respondWithError(w, http.StatusBadGateway, "assistant did not provide a usable date", err)
		return
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)

	var dbEvents []database.Event
	if requestedCategoryID != "" {
		dbCategory, err := cfg.assistantCategory(r, actorID, requestedCategoryID)
		if errors.Is(err, sql.ErrNoRows) {
			respondWithError(w, http.StatusNotFound, "category does not exist", nil)
			return
		}
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "could not resolve category", err)
			return
		}

		canRead, err := cfg.access.CanRead(r.Context(), actorID, categoryResource(dbCategory))
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "could not evaluate access", err)
			return
		}
		if !canRead {
			respondWithError(w, http.StatusUnauthorized, "no access to this category", nil)
			return
		}

		dbEvents, err = cfg.db.GetEventsInRange(r.Context(), database.GetEventsInRangeParams{
			CategoryID: dbCategory.ID,
			StartTime:  dayStart,
			EndTime:    dayEnd,
		})
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "could not retrieve events", err)
			return
		}
	} else {
		visible, err := cfg.db.GetVisibleEvents(r.Context(), actorID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "could not retrieve events", err)
			return
		}
		for _, e := range visible {
			if !e.StartTime.Before(dayStart) && !e.StartTime.After(dayEnd) {
				dbEvents = append(dbEvents, e)
			}
		}
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

	msg := fmt.Sprintf("You have %d event(s) on %s.", len(events), dayStart.Format("Mon, 02 Jan 2006"))
	if len(events) == 0 {
		msg = fmt.Sprintf("Your calendar is clear on %s.", dayStart.Format("Mon, 02 Jan 2006"))
	}

	respondWithJSON(w, http.StatusOK, assistantResponse{
		AIResponse:     msg,
		IsFunctionCall: true,
		Events:         events,
	})
}
