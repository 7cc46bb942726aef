package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sony/gobreaker"

	"github.com/mdmasudrana9/mpms-dashboard-service/gateway"
	"github.com/mdmasudrana9/mpms-dashboard-service/handlers"
	"github.com/mdmasudrana9/mpms-dashboard-service/logging"
	"github.com/mdmasudrana9/mpms-dashboard-service/middleware"
	"github.com/mdmasudrana9/mpms-dashboard-service/services"
)

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Role")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	logging.InitLogger()

	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting Dashboard Service...")
	if err := godotenv.Load(".env"); err != nil {
		logging.Logger.Warnf("Event ID: ENV_LOAD_WARNING, Description: No .env file loaded: %v", err)
	}

	apiBaseURL := os.Getenv("API_BASE_URL")
	if apiBaseURL == "" {
		logging.Logger.Fatalf("Event ID: CONFIG_ERROR, Description: API_BASE_URL is not set in the environment variables.")
	}
	if os.Getenv("JWT_SECRET") == "" {
		logging.Logger.Fatalf("Event ID: CONFIG_ERROR, Description: JWT_SECRET is not set in the environment variables.")
	}

	apiBreaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "MPMSApiCB",
		MaxRequests: 1,
		Timeout:     5 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Infof("Event ID: CIRCUIT_BREAKER_STATE_CHANGE, Description: Circuit Breaker '%s' changed from '%s' to '%s'", name, from.String(), to.String())
		},
	})

	httpClient := &http.Client{Timeout: 15 * time.Second}
	session := gateway.NewSession()
	notificationService := services.NewNotificationService()
	gw := gateway.NewClient(apiBaseURL, os.Getenv("REFRESH_COOKIE_NAME"), session, notificationService, httpClient, apiBreaker)

	authService := services.NewAuthService(gw)
	projectService := services.NewProjectService(gw)
	taskService := services.NewTaskService(gw)
	sprintService := services.NewSprintService(gw)
	teamService := services.NewTeamService(gw)

	authHandler := handlers.NewAuthHandler(authService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)
	sprintHandler := handlers.NewSprintHandler(sprintService)
	teamHandler := handlers.NewTeamHandler(teamService)
	dashboardHandler := handlers.NewDashboardHandler(projectService, taskService, teamService)
	reportHandler := handlers.NewReportHandler(projectService, taskService, teamService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	r := mux.NewRouter()

	r.HandleFunc("/api/auth/login", authHandler.Login).Methods(http.MethodPost)

	protected := r.PathPrefix("/api").Subrouter()
	protected.Use(middleware.JWTAuthMiddleware)

	protected.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	protected.HandleFunc("/users", authHandler.GetAllUsers).Methods(http.MethodGet)

	protected.HandleFunc("/dashboard", dashboardHandler.GetSummary).Methods(http.MethodGet)
	protected.HandleFunc("/reports/projects", reportHandler.GetProjectReport).Methods(http.MethodGet)
	protected.HandleFunc("/reports/users", reportHandler.GetUserTimeReport).Methods(http.MethodGet)

	protected.HandleFunc("/projects", projectHandler.CreateProject).Methods(http.MethodPost)
	protected.HandleFunc("/projects", projectHandler.GetAllProjects).Methods(http.MethodGet)
	protected.HandleFunc("/projects/{id}", projectHandler.GetProjectByID).Methods(http.MethodGet)
	protected.HandleFunc("/projects/{id}", projectHandler.UpdateProject).Methods(http.MethodPatch)
	protected.HandleFunc("/projects/{id}", projectHandler.DeleteProject).Methods(http.MethodDelete)

	protected.HandleFunc("/tasks", taskHandler.CreateTask).Methods(http.MethodPost)
	protected.HandleFunc("/tasks", taskHandler.GetAllTasks).Methods(http.MethodGet)
	protected.HandleFunc("/tasks/{id}", taskHandler.GetTaskByID).Methods(http.MethodGet)
	protected.HandleFunc("/tasks/{id}", taskHandler.UpdateTask).Methods(http.MethodPatch)
	protected.HandleFunc("/tasks/{id}", taskHandler.DeleteTask).Methods(http.MethodDelete)

	protected.HandleFunc("/sprints/reorder", sprintHandler.ReorderSprints).Methods(http.MethodPut)
	protected.HandleFunc("/sprints", sprintHandler.CreateSprint).Methods(http.MethodPost)
	protected.HandleFunc("/sprints", sprintHandler.GetAllSprints).Methods(http.MethodGet)
	protected.HandleFunc("/sprints/{id}", sprintHandler.GetSprintByID).Methods(http.MethodGet)
	protected.HandleFunc("/sprints/{id}", sprintHandler.UpdateSprint).Methods(http.MethodPatch)
	protected.HandleFunc("/sprints/{id}", sprintHandler.DeleteSprint).Methods(http.MethodDelete)

	protected.HandleFunc("/team", teamHandler.CreateTeamMember).Methods(http.MethodPost)
	protected.HandleFunc("/team", teamHandler.GetAllTeamMembers).Methods(http.MethodGet)
	protected.HandleFunc("/team/{id}", teamHandler.GetTeamMemberByID).Methods(http.MethodGet)
	protected.HandleFunc("/team/{id}", teamHandler.UpdateTeamMember).Methods(http.MethodPatch)
	protected.HandleFunc("/team/{id}", teamHandler.DeleteTeamMember).Methods(http.MethodDelete)

	protected.HandleFunc("/notifications", notificationHandler.GetNotifications).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/{id}/read", notificationHandler.MarkNotificationRead).Methods(http.MethodPatch)

	corsRouter := enableCORS(r)

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}
	serverAddress := fmt.Sprintf(":%s", serverPort)
	logging.Logger.Infof("Event ID: SERVER_START_INFO, Description: Dashboard service running on http://localhost%s", serverAddress)

	if err := http.ListenAndServe(serverAddress, corsRouter); err != nil {
		logging.Logger.Fatalf("Event ID: SERVER_FATAL_ERROR, Description: Server failed to start: %v", err)
	}
}
