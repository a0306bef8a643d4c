package api

import (
	"net/http"

	"github.com/GinsengJuice/CalendarApp/internal/auth"
	"github.com/GinsengJuice/CalendarApp/internal/database"
)

func (cfg *APIConfig) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	type rqSchema struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}

	rqPayload, err := decodePayload[rqSchema](r)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failure decoding parameters", err)
		return
	}

	if rqPayload.Email == "" || rqPayload.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Missing email or password", nil)
		return
	}

	hashedPass, err := auth.HashPassword(rqPayload.Password)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failure processing request to create user", err)
		return
	}

	dbUser, err := cfg.db.CreateUser(r.Context(), database.CreateUserParams{
		Email:          rqPayload.Email,
		Name:           rqPayload.Name,
		HashedPassword: hashedPass,
	})
	if err != nil {
		respondWithError(w, http.StatusConflict, "A user with that email already exists", err)
		return
	}

	rspPayload := User{
		ID:        dbUser.ID,
		CreatedAt: dbUser.CreatedAt,
		UpdatedAt: dbUser.UpdatedAt,
		Email:     dbUser.Email,
		Name:      dbUser.Name,
	}

	respondWithJSON(w, http.StatusCreated, rspPayload)
}

func (cfg *APIConfig) handleUpdateUserCredentials(w http.ResponseWriter, r *http.Request) {
	type rqSchema struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	rqPayload, err := decodePayload[rqSchema](r)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Error decoding parameters", err)
		return
	}

	if rqPayload.Email == "" || rqPayload.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Missing email or password", nil)
		return
	}

	hashedPass, err := auth.HashPassword(rqPayload.Password)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failure processing credentials", err)
		return
	}

	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	_, err = cfg.db.UpdateUserCredentials(r.Context(), database.UpdateUserCredentialsParams{
		ID:             validatedUserID,
		Email:          rqPayload.Email,
		HashedPassword: hashedPass,
	})
	if err != nil {
		respondWithError(w, http.StatusNotModified, "Couldn't modify user credentials", err)
		return
	}

	respondWithText(w, http.StatusNoContent, "User '"+rqPayload.Email+"' updated successfully!")
}

func (cfg *APIConfig) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	type rqSchema struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	rqPayload, err := decodePayload[rqSchema](r)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Error decoding parameters", err)
		return
	}

	if rqPayload.Email == "" || rqPayload.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Missing email or password", nil)
		return
	}

	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	dbUser, err := cfg.db.GetUserByEmail(r.Context(), rqPayload.Email)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Incorrect email or password", err)
		return
	}
	if validatedUserID != dbUser.ID {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	match, err := auth.CheckPasswordHash(rqPayload.Password, dbUser.HashedPassword)
	if err != nil || !match {
		respondWithError(w, http.StatusUnauthorized, "Incorrect email or password", err)
		return
	}

	err = cfg.db.DeleteUserByID(r.Context(), validatedUserID)
	if err != nil {
		respondWithError(w, http.StatusNotModified, "Couldn't delete user", err)
		return
	}

	respondWithText(w, http.StatusOK, "The user was deleted.")
}
