package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mdmasudrana9/mpms-dashboard-service/logging"
	"github.com/mdmasudrana9/mpms-dashboard-service/models"
	"github.com/mdmasudrana9/mpms-dashboard-service/services"
	"github.com/mdmasudrana9/mpms-dashboard-service/utils"
)

type AuthHandler struct {
	service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type loginResponse struct {
	Token string           `json:"token"`
	User  *models.AuthUser `json:"user"`
}

// Login forwards the credentials to the remote API and, on success, mints
// the dashboard session token the browser uses for every later call.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.service.Login(r.Context(), req)
	if err != nil {
		logging.Logger.Warnf("Event ID: LOGIN_FAILED, Description: Login failed for %s: %v", req.Email, err)
		writeServiceError(w, err)
		return
	}

	role := string(models.RoleMember)
	if user != nil && user.Role != "" {
		role = string(user.Role)
	}
	token, err := utils.GenerateToken(req.Email, role)
	if err != nil {
		http.Error(w, "failed to issue session token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token, User: user})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.service.Logout()
	w.WriteHeader(http.StatusNoContent)
}

// Register creates a member account. Admin only.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{"admin"}); err != nil {
		http.Error(w, "Access forbidden: insufficient permissions", http.StatusForbidden)
		return
	}

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.service.CreateMember(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// GetAllUsers lists user accounts. Admin and manager.
func (h *AuthHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{"admin", "manager"}); err != nil {
		http.Error(w, "Access forbidden: insufficient permissions", http.StatusForbidden)
		return
	}

	users, err := h.service.GetAllUsers(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}
