package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"server/internal/domain"
)

// Register creates a user unless the email is already taken. The duplicate
// case is a sentinel response, not an error: the client treats a null
// insertedId as "already registered".
func (a *App) Register(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	email, _ := fields["email"].(string)
	name, _ := fields["name"].(string)
	if !strings.Contains(email, "@") {
		a.error(w, http.StatusBadRequest, "bad_request", "a valid email is required")
		return
	}

	existing, err := a.Users.GetByEmail(r.Context(), email)
	if err != nil {
		a.fault(w, r, err)
		return
	}
	if existing != nil {
		a.json(w, http.StatusOK, map[string]any{"message": "User already exists", "insertedId": nil})
		return
	}

	// Extra profile fields travel verbatim in the properties document.
	delete(fields, "email")
	delete(fields, "name")
	props, err := json.Marshal(fields)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid profile fields")
		return
	}

	id, err := a.Users.Create(r.Context(), &domain.User{Email: email, Name: name, Properties: props})
	if err != nil {
		a.fault(w, r, err)
		return
	}
	if id == "" {
		// Lost the race against a concurrent registration for the same email.
		a.json(w, http.StatusOK, map[string]any{"message": "User already exists", "insertedId": nil})
		return
	}
	a.json(w, http.StatusCreated, map[string]any{"message": "User registered", "insertedId": id})
}

type userUpdateRequest struct {
	Name string `json:"name"`
}

func (a *App) UserUpdateName(w http.ResponseWriter, r *http.Request) {
	var req userUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "name is required")
		return
	}

	updated, err := a.Users.UpdateName(r.Context(), chi.URLParam(r, "email"), req.Name)
	if err != nil {
		a.fault(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"updated": updated})
}
