package caltest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
)

// ========== MIDDLEWARE ==========

func headerJSON(req *http.Request) *http.Request {
	req.Header.Set("Content-Type", "application/json")
	return req
}

func requireToken(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %v", token))
	return req
}

// USER CRUD

func CreateUser(email, name, password string) *http.Request {
	payload := strings.NewReader(fmt.Sprintf(`{"email":"%v","name":"%v","password":"%v"}`, email, name, password))
	req := httptest.NewRequest(http.MethodPost, "/api/users", payload)
	return headerJSON(req)
}

func GetUserCount() *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/admin/users/count", nil)
	return headerJSON(req)
}

func DeleteUser(token, email, password string) *http.Request {
	payload := strings.NewReader(fmt.Sprintf(`{"email":"%v","password":"%v"}`, email, password))
	req := httptest.NewRequest(http.MethodDelete, "/api/users", payload)
	return headerJSON(requireToken(req, token))
}

func UpdateUser(token, email, password string) *http.Request {
	payload := strings.NewReader(fmt.Sprintf(`{"email":"%v","password":"%v"}`, email, password))
	req := httptest.NewRequest(http.MethodPut, "/api/users", payload)
	return headerJSON(requireToken(req, token))
}

func DeleteAllUsers() *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/admin/reset", nil)
	return req
}

// USER AUTH

func LoginUser(email, password string) *http.Request {
	payload := strings.NewReader(fmt.Sprintf(`{"email":"%v","password":"%v"}`, email, password))
	req := httptest.NewRequest(http.MethodPost, "/api/login", payload)
	return headerJSON(req)
}

// CATEGORY CRUD

func CreateCategory(token, name, color string) *http.Request {
	payload := strings.NewReader(fmt.Sprintf(`{"name":"%v","color":"%v"}`, name, color))
	req := httptest.NewRequest(http.MethodPost, "/api/categories", payload)
	return headerJSON(requireToken(req, token))
}

func GetCategories(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	return headerJSON(requireToken(req, token))
}

func UpdateCategory(token, categoryID, name, color string) *http.Request {
	payload := strings.NewReader(fmt.Sprintf(`{"name":"%v","color":"%v"}`, name, color))
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/categories/%v", categoryID), payload)
	return headerJSON(requireToken(req, token))
}

func DeleteCategory(token, categoryID string) *http.Request {
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/categories/%v", categoryID), nil)
	return headerJSON(requireToken(req, token))
}

func GetCategoryShares(token, categoryID string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/categories/%v/shares", categoryID), nil)
	return headerJSON(requireToken(req, token))
}

func ExportCategoryICS(token, categoryID string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/categories/%v/ics", categoryID), nil)
	return requireToken(req, token)
}

// SHARE CRUD

func ShareCategory(token, categoryID, email, role string) *http.Request {
	payload := strings.NewReader(fmt.Sprintf(`{"category_id":"%v","email":"%v","role":"%v"}`, categoryID, email, role))
	req := httptest.NewRequest(http.MethodPost, "/api/shares", payload)
	return headerJSON(requireToken(req, token))
}

func RevokeShare(token, categoryID, userID string) *http.Request {
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/shares/%v/%v", categoryID, userID), nil)
	return headerJSON(requireToken(req, token))
}

// EVENT CRUD

func CreateEvent(token, title, startTime, endTime, categoryID string) *http.Request {
	payload := strings.NewReader(fmt.Sprintf(`{"title":"%v","start_time":"%v","end_time":"%v","category_id":"%v"}`, title, startTime, endTime, categoryID))
	req := httptest.NewRequest(http.MethodPost, "/api/events", payload)
	return headerJSON(requireToken(req, token))
}

func GetEvents(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	return headerJSON(requireToken(req, token))
}

func UpdateEvent(token, eventID, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/events/%v", eventID), strings.NewReader(body))
	return headerJSON(requireToken(req, token))
}

func DeleteEvent(token, eventID string) *http.Request {
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/events/%v", eventID), nil)
	return headerJSON(requireToken(req, token))
}

// ASSISTANT

func AskAssistant(token, message, currentDatetime, categoryID string) *http.Request {
	payload := strings.NewReader(fmt.Sprintf(`{"message":"%v","current_datetime":"%v","category_id":"%v"}`, message, currentDatetime, categoryID))
	req := httptest.NewRequest(http.MethodPost, "/api/assistant", payload)
	return headerJSON(requireToken(req, token))
}
