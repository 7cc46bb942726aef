package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mdmasudrana9/mpms-dashboard-service/gateway"
	"github.com/mdmasudrana9/mpms-dashboard-service/models"
)

type TaskService struct {
	gateway *gateway.Client
}

func NewTaskService(gw *gateway.Client) *TaskService {
	return &TaskService{gateway: gw}
}

func (s *TaskService) CreateTask(ctx context.Context, task models.Task) (*models.Task, error) {
	if task.Status == "" {
		task.Status = models.StatusTodo
	}
	var created models.Task
	err := s.gateway.Do(ctx, gateway.Request{
		Method: http.MethodPost,
		Path:   "/task/create-task",
		Body:   task,
	}, &created)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &created, nil
}

// GetAllTasks lists tasks, narrowed by the non-empty fields of filter.
func (s *TaskService) GetAllTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	query := url.Values{}
	if filter.ProjectID != "" {
		query.Set("projectId", filter.ProjectID)
	}
	if filter.SprintID != "" {
		query.Set("sprintId", filter.SprintID)
	}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	if filter.Priority != "" {
		query.Set("priority", string(filter.Priority))
	}

	var tasks []models.Task
	err := s.gateway.Do(ctx, gateway.Request{
		Method: http.MethodGet,
		Path:   "/task",
		Query:  query,
	}, &tasks)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) GetTaskByID(ctx context.Context, taskID string) (*models.Task, error) {
	var task models.Task
	err := s.gateway.Do(ctx, gateway.Request{
		Method: http.MethodGet,
		Path:   "/task/" + taskID,
	}, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, taskID string, updates map[string]interface{}) (*models.Task, error) {
	var updated models.Task
	err := s.gateway.Do(ctx, gateway.Request{
		Method: http.MethodPatch,
		Path:   "/task/" + taskID,
		Body:   updates,
	}, &updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return &updated, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, taskID string) error {
	err := s.gateway.Do(ctx, gateway.Request{
		Method: http.MethodDelete,
		Path:   "/task/" + taskID,
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
