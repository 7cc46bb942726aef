package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mdmasudrana9/mpms-dashboard-service/analytics"
	"github.com/mdmasudrana9/mpms-dashboard-service/models"
	"github.com/mdmasudrana9/mpms-dashboard-service/services"
)

type SprintHandler struct {
	service *services.SprintService
}

func NewSprintHandler(service *services.SprintService) *SprintHandler {
	return &SprintHandler{service: service}
}

func (h *SprintHandler) CreateSprint(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{"admin", "manager"}); err != nil {
		http.Error(w, "Access forbidden: insufficient permissions", http.StatusForbidden)
		return
	}

	var sprint models.Sprint
	if err := json.NewDecoder(r.Body).Decode(&sprint); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.CreateSprint(r.Context(), sprint)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *SprintHandler) GetAllSprints(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{"admin", "manager", "member"}); err != nil {
		http.Error(w, "Access forbidden: insufficient permissions", http.StatusForbidden)
		return
	}

	sprints, err := h.service.GetAllSprints(r.Context(), r.URL.Query().Get("projectId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sprints)
}

func (h *SprintHandler) GetSprintByID(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{"admin", "manager", "member"}); err != nil {
		http.Error(w, "Access forbidden: insufficient permissions", http.StatusForbidden)
		return
	}

	sprint, err := h.service.GetSprintByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sprint)
}

func (h *SprintHandler) UpdateSprint(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{"admin", "manager"}); err != nil {
		http.Error(w, "Access forbidden: insufficient permissions", http.StatusForbidden)
		return
	}

	var updates map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.service.UpdateSprint(r.Context(), mux.Vars(r)["id"], updates)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

type reorderRequest struct {
	ProjectID string   `json:"projectId"`
	SprintIDs []string `json:"sprintIds"`
}

// ReorderSprints applies a drag-and-drop ordering. The sprint list must be
// a complete permutation of the project's sprints; anything else is a 400.
func (h *SprintHandler) ReorderSprints(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{"admin", "manager"}); err != nil {
		http.Error(w, "Access forbidden: insufficient permissions", http.StatusForbidden)
		return
	}

	var req reorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.ProjectID == "" || len(req.SprintIDs) == 0 {
		http.Error(w, "projectId and sprintIds are required", http.StatusBadRequest)
		return
	}

	sprints, err := h.service.ReorderSprints(r.Context(), req.ProjectID, req.SprintIDs)
	if err != nil {
		if errors.Is(err, analytics.ErrInvalidReorder) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sprints)
}

func (h *SprintHandler) DeleteSprint(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{"admin", "manager"}); err != nil {
		http.Error(w, "Access forbidden: insufficient permissions", http.StatusForbidden)
		return
	}

	if err := h.service.DeleteSprint(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
