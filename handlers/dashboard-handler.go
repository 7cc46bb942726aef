package handlers

import (
	"net/http"
	"time"

	"github.com/mdmasudrana9/mpms-dashboard-service/analytics"
	"github.com/mdmasudrana9/mpms-dashboard-service/logging"
	"github.com/mdmasudrana9/mpms-dashboard-service/models"
	"github.com/mdmasudrana9/mpms-dashboard-service/services"
	"github.com/mdmasudrana9/mpms-dashboard-service/store"
)

// DashboardHandler fans out to the remote API for the three collections the
// summary needs and derives the dashboard view. Each collection lands in a
// sequenced snapshot, so a slow response from an earlier refresh can never
// clobber a newer one; the summary is always computed from the latest fully
// resolved snapshots.
type DashboardHandler struct {
	projects *services.ProjectService
	tasks    *services.TaskService
	team     *services.TeamService

	projectSnap store.Snapshot[[]models.Project]
	taskSnap    store.Snapshot[[]models.Task]
	teamSnap    store.Snapshot[[]models.TeamMember]
}

func NewDashboardHandler(projects *services.ProjectService, tasks *services.TaskService, team *services.TeamService) *DashboardHandler {
	return &DashboardHandler{projects: projects, tasks: tasks, team: team}
}

// GetSummary serves the dashboard view. All roles.
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	if err := checkRole(r, []string{"admin", "manager", "member"}); err != nil {
		http.Error(w, "Access forbidden: insufficient permissions", http.StatusForbidden)
		return
	}

	ctx := r.Context()

	projectTag := h.projectSnap.Begin()
	projects, err := h.projects.GetAllProjects(ctx)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.projectSnap.Commit(projectTag, projects)

	taskTag := h.taskSnap.Begin()
	tasks, err := h.tasks.GetAllTasks(ctx, models.TaskFilter{})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.taskSnap.Commit(taskTag, tasks)

	teamTag := h.teamSnap.Begin()
	members, err := h.team.GetAllTeamMembers(ctx)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.teamSnap.Commit(teamTag, members)

	projects, _ = h.projectSnap.Get()
	tasks, _ = h.taskSnap.Get()
	members, _ = h.teamSnap.Get()

	summary := analytics.BuildSummary(projects, tasks, members, time.Now())
	logging.Logger.Infof("Event ID: DASHBOARD_SUMMARY_BUILT, Description: Summary over %d projects, %d tasks, %d members", len(projects), len(tasks), len(members))

	writeJSON(w, http.StatusOK, summary)
}
