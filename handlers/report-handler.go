package handlers

import (
	"net/http"

	"github.com/mdmasudrana9/mpms-dashboard-service/analytics"
	"github.com/mdmasudrana9/mpms-dashboard-service/models"
	"github.com/mdmasudrana9/mpms-dashboard-service/services"
)

type ReportHandler struct {
	projects *services.ProjectService
	tasks    *services.TaskService
	team     *services.TeamService
}

func NewReportHandler(projects *services.ProjectService, tasks *services.TaskService, team *services.TeamService) *ReportHandler {
	return &ReportHandler{projects: projects, tasks: tasks, team: team}
}

// GetProjectReport serves the per-project progress rollup, recomputed from
// the task collection. Admin and manager.
func (h *ReportHandler) GetProjectReport(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{"admin", "manager"}); err != nil {
		http.Error(w, "Access forbidden: insufficient permissions", http.StatusForbidden)
		return
	}

	ctx := r.Context()

	projects, err := h.projects.GetAllProjects(ctx)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	tasks, err := h.tasks.GetAllTasks(ctx, models.TaskFilter{})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if projectID := r.URL.Query().Get("projectId"); projectID != "" {
		var filtered []models.Project
		for _, p := range projects {
			if p.ID == projectID {
				filtered = append(filtered, p)
			}
		}
		projects = filtered
	}

	writeJSON(w, http.StatusOK, analytics.ProjectProgressRollup(projects, tasks))
}

// GetUserTimeReport serves the per-user time-logged summary. Admin and
// manager.
func (h *ReportHandler) GetUserTimeReport(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{"admin", "manager"}); err != nil {
		http.Error(w, "Access forbidden: insufficient permissions", http.StatusForbidden)
		return
	}

	ctx := r.Context()

	tasks, err := h.tasks.GetAllTasks(ctx, models.TaskFilter{})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	members, err := h.team.GetAllTeamMembers(ctx)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	tasks = analytics.FilterTasksByProject(tasks, r.URL.Query().Get("projectId"))

	writeJSON(w, http.StatusOK, analytics.UserTimeSummary(tasks, members))
}
