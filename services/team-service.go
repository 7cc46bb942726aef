package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mdmasudrana9/mpms-dashboard-service/gateway"
	"github.com/mdmasudrana9/mpms-dashboard-service/models"
)

type TeamService struct {
	gateway *gateway.Client
}

func NewTeamService(gw *gateway.Client) *TeamService {
	return &TeamService{gateway: gw}
}

func (s *TeamService) CreateTeamMember(ctx context.Context, member models.TeamMember) (*models.TeamMember, error) {
	var created models.TeamMember
	err := s.gateway.Do(ctx, gateway.Request{
		Method: http.MethodPost,
		Path:   "/team/create",
		Body:   member,
	}, &created)
	if err != nil {
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}
	return &created, nil
}

func (s *TeamService) GetAllTeamMembers(ctx context.Context) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := s.gateway.Do(ctx, gateway.Request{
		Method: http.MethodGet,
		Path:   "/team",
	}, &members)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch team members: %w", err)
	}
	return members, nil
}

func (s *TeamService) GetTeamMemberByID(ctx context.Context, memberID string) (*models.TeamMember, error) {
	var member models.TeamMember
	err := s.gateway.Do(ctx, gateway.Request{
		Method: http.MethodGet,
		Path:   "/team/" + memberID,
	}, &member)
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *TeamService) UpdateTeamMember(ctx context.Context, memberID string, updates map[string]interface{}) (*models.TeamMember, error) {
	var updated models.TeamMember
	err := s.gateway.Do(ctx, gateway.Request{
		Method: http.MethodPatch,
		Path:   "/team/" + memberID,
		Body:   updates,
	}, &updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update team member: %w", err)
	}
	return &updated, nil
}

func (s *TeamService) DeleteTeamMember(ctx context.Context, memberID string) error {
	err := s.gateway.Do(ctx, gateway.Request{
		Method: http.MethodDelete,
		Path:   "/team/" + memberID,
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to delete team member: %w", err)
	}
	return nil
}
