package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mdmasudrana9/mpms-dashboard-service/gateway"
	"github.com/mdmasudrana9/mpms-dashboard-service/logging"
	"github.com/mdmasudrana9/mpms-dashboard-service/models"
)

type AuthService struct {
	gateway *gateway.Client
}

func NewAuthService(gw *gateway.Client) *AuthService {
	return &AuthService{gateway: gw}
}

type loginData struct {
	AccessToken string           `json:"accessToken"`
	User        *models.AuthUser `json:"user"`
}

// Login authenticates against the remote API and authorizes the gateway
// session with the issued token. The refresh cookie the API sets on this
// response is captured by the gateway for later renewals.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthUser, error) {
	var data loginData
	err := s.gateway.Do(ctx, gateway.Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   req,
	}, &data)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	if data.AccessToken == "" {
		return nil, fmt.Errorf("login response contained no access token")
	}

	s.gateway.Session().Authorize(data.AccessToken, data.User)
	logging.Logger.Infof("Event ID: USER_LOGGED_IN, Description: Session authorized for %s", req.Email)
	return data.User, nil
}

// Logout clears the gateway session. The remote API holds no server-side
// session to invalidate beyond the refresh credential expiring on its own.
func (s *AuthService) Logout() {
	s.gateway.Session().Clear()
	logging.Logger.Infof("Event ID: USER_LOGGED_OUT, Description: Session cleared")
}

// CreateMember registers a new member account.
func (s *AuthService) CreateMember(ctx context.Context, req models.RegisterRequest) (*models.AuthUser, error) {
	var user models.AuthUser
	err := s.gateway.Do(ctx, gateway.Request{
		Method: http.MethodPost,
		Path:   "/users/create-member",
		Body:   req,
	}, &user)
	if err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}
	return &user, nil
}

// GetAllUsers lists every user account.
func (s *AuthService) GetAllUsers(ctx context.Context) ([]models.AuthUser, error) {
	var users []models.AuthUser
	err := s.gateway.Do(ctx, gateway.Request{
		Method: http.MethodGet,
		Path:   "/users/all",
	}, &users)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}
