// Package api handles routes and their associated handlers
package api

import (
	"net/http"
)

func SetupMux(cfg *APIConfig) http.Handler {
	mux := http.NewServeMux()

	// middleware
	mdAuth := cfg.middlewareAuthenticate

	// REGISTER API HANDLERS
	// ======================

	// Admin & State
	mux.HandleFunc("GET /api/healthz", cfg.handleReadiness)
	mux.Handle("GET /admin/metrics", metricsHandler())
	mux.HandleFunc("POST /admin/reset", cfg.handleDeleteAllUsers)
	mux.HandleFunc("GET /admin/users", cfg.handleGetAllUsers)
	mux.HandleFunc("GET /admin/users/count", cfg.handleGetTotalUserCount)
	// User authentication
	mux.HandleFunc("POST /api/users", cfg.handleCreateUser)
	mux.HandleFunc("DELETE /api/users", mdAuth(cfg.handleDeleteUser))
	mux.HandleFunc("PUT /api/users", mdAuth(cfg.handleUpdateUserCredentials))
	mux.HandleFunc("POST /api/login", cfg.handleLoginUser)
	mux.HandleFunc("POST /api/refresh", cfg.handleCheckRefreshToken)
	mux.HandleFunc("POST /api/revoke", cfg.handleRevokeRefreshToken)
	// Categories
	mux.HandleFunc("GET /api/categories", mdAuth(cfg.handleGetCategories))
	mux.HandleFunc("POST /api/categories", mdAuth(cfg.handleCreateCategory))
	mux.HandleFunc("PUT /api/categories/{category_id}", mdAuth(cfg.handleUpdateCategory))
	mux.HandleFunc("DELETE /api/categories/{category_id}", mdAuth(cfg.handleDeleteCategory))
	mux.HandleFunc("GET /api/categories/{category_id}/shares", mdAuth(cfg.handleGetCategoryShares))
	mux.HandleFunc("GET /api/categories/{category_id}/ics", mdAuth(cfg.handleExportCategoryICS))
	// Shares
	mux.HandleFunc("POST /api/shares", mdAuth(cfg.handleShareCategory))
	mux.HandleFunc("DELETE /api/shares/{category_id}/{user_id}", mdAuth(cfg.handleRevokeShare))
	// Events
	mux.HandleFunc("GET /api/events", mdAuth(cfg.handleGetEvents))
	mux.HandleFunc("POST /api/events", mdAuth(cfg.handleCreateEvent))
	mux.HandleFunc("PUT /api/events/{event_id}", mdAuth(cfg.handleUpdateEvent))
	mux.HandleFunc("DELETE /api/events/{event_id}", mdAuth(cfg.handleDeleteEvent))
	// Assistant
	mux.HandleFunc("POST /api/assistant", mdAuth(cfg.handleAssistantChat))

	return middlewareMetrics(mux)
}
