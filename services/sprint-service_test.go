package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdmasudrana9/mpms-dashboard-service/gateway"
	"github.com/mdmasudrana9/mpms-dashboard-service/models"
)

// fakeSprintAPI is an in-memory stand-in for the remote sprint endpoints.
type fakeSprintAPI struct {
	mu      sync.Mutex
	sprints map[string]*models.Sprint
	patches []string
}

func newFakeSprintAPI(sprints ...models.Sprint) *fakeSprintAPI {
	api := &fakeSprintAPI{sprints: make(map[string]*models.Sprint)}
	for i := range sprints {
		s := sprints[i]
		api.sprints[s.ID] = &s
	}
	return api
}

func respond(w http.ResponseWriter, status int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": status < 400,
		"message": message,
		"data":    data,
	})
}

func (api *fakeSprintAPI) router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/sprint", func(w http.ResponseWriter, req *http.Request) {
		api.mu.Lock()
		defer api.mu.Unlock()
		projectID := req.URL.Query().Get("projectId")
		var out []models.Sprint
		for _, s := range api.sprints {
			if projectID == "" || s.ProjectID == projectID {
				out = append(out, *s)
			}
		}
		respond(w, http.StatusOK, "ok", out)
	}).Methods(http.MethodGet)

	r.HandleFunc("/sprint/{id}", func(w http.ResponseWriter, req *http.Request) {
		api.mu.Lock()
		defer api.mu.Unlock()
		s, ok := api.sprints[mux.Vars(req)["id"]]
		if !ok {
			respond(w, http.StatusNotFound, "Sprint not found", nil)
			return
		}
		respond(w, http.StatusOK, "ok", *s)
	}).Methods(http.MethodGet)

	r.HandleFunc("/sprint/{id}", func(w http.ResponseWriter, req *http.Request) {
		api.mu.Lock()
		defer api.mu.Unlock()
		id := mux.Vars(req)["id"]
		s, ok := api.sprints[id]
		if !ok {
			respond(w, http.StatusNotFound, "Sprint not found", nil)
			return
		}
		var updates struct {
			Order        *int `json:"order"`
			SprintNumber *int `json:"sprintNumber"`
		}
		if err := json.NewDecoder(req.Body).Decode(&updates); err != nil {
			respond(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		if updates.Order != nil {
			s.Order = *updates.Order
		}
		if updates.SprintNumber != nil {
			s.SprintNumber = *updates.SprintNumber
		}
		api.patches = append(api.patches, id)
		respond(w, http.StatusOK, "ok", *s)
	}).Methods(http.MethodPatch)

	r.HandleFunc("/sprint/{id}", func(w http.ResponseWriter, req *http.Request) {
		api.mu.Lock()
		defer api.mu.Unlock()
		id := mux.Vars(req)["id"]
		if _, ok := api.sprints[id]; !ok {
			respond(w, http.StatusNotFound, "Sprint not found", nil)
			return
		}
		delete(api.sprints, id)
		respond(w, http.StatusOK, "deleted", nil)
	}).Methods(http.MethodDelete)

	return r
}

func newSprintServiceForTest(t *testing.T, api *fakeSprintAPI) *SprintService {
	t.Helper()
	server := httptest.NewServer(api.router())
	t.Cleanup(server.Close)

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{Name: "test"})
	gw := gateway.NewClient(server.URL, "", gateway.NewSession(), nil, &http.Client{}, breaker)
	return NewSprintService(gw)
}

func TestReorderSprintsPersistsNewOrder(t *testing.T) {
	api := newFakeSprintAPI(
		models.Sprint{ID: "s1", ProjectID: "p1", Order: 0, SprintNumber: 1},
		models.Sprint{ID: "s2", ProjectID: "p1", Order: 1, SprintNumber: 2},
		models.Sprint{ID: "s3", ProjectID: "p1", Order: 2, SprintNumber: 3},
	)
	service := newSprintServiceForTest(t, api)

	result, err := service.ReorderSprints(context.Background(), "p1", []string{"s3", "s1", "s2"})
	require.NoError(t, err)

	require.Len(t, result, 3)
	assert.Equal(t, "s3", result[0].ID)
	assert.Equal(t, 1, result[0].SprintNumber)
	assert.Equal(t, "s1", result[1].ID)
	assert.Equal(t, "s2", result[2].ID)

	// Every sprint moved, so every sprint was patched.
	assert.ElementsMatch(t, []string{"s1", "s2", "s3"}, api.patches)

	assert.Equal(t, 0, api.sprints["s3"].Order)
	assert.Equal(t, 1, api.sprints["s1"].Order)
	assert.Equal(t, 2, api.sprints["s2"].Order)
}

func TestReorderSprintsSkipsUnchangedPositions(t *testing.T) {
	api := newFakeSprintAPI(
		models.Sprint{ID: "s1", ProjectID: "p1", Order: 0, SprintNumber: 1},
		models.Sprint{ID: "s2", ProjectID: "p1", Order: 1, SprintNumber: 2},
		models.Sprint{ID: "s3", ProjectID: "p1", Order: 2, SprintNumber: 3},
	)
	service := newSprintServiceForTest(t, api)

	_, err := service.ReorderSprints(context.Background(), "p1", []string{"s1", "s3", "s2"})
	require.NoError(t, err)

	// s1 stayed at position 0; only the swapped pair is patched.
	assert.ElementsMatch(t, []string{"s2", "s3"}, api.patches)
}

func TestReorderSprintsRejectsIncompleteList(t *testing.T) {
	api := newFakeSprintAPI(
		models.Sprint{ID: "s1", ProjectID: "p1", Order: 0, SprintNumber: 1},
		models.Sprint{ID: "s2", ProjectID: "p1", Order: 1, SprintNumber: 2},
	)
	service := newSprintServiceForTest(t, api)

	_, err := service.ReorderSprints(context.Background(), "p1", []string{"s2"})
	require.Error(t, err)
	assert.Empty(t, api.patches, "nothing persisted on a rejected reorder")
}

func TestDeleteSprintRenumbersRemainder(t *testing.T) {
	api := newFakeSprintAPI(
		models.Sprint{ID: "s1", ProjectID: "p1", Order: 0, SprintNumber: 1},
		models.Sprint{ID: "s2", ProjectID: "p1", Order: 1, SprintNumber: 2},
		models.Sprint{ID: "s3", ProjectID: "p1", Order: 2, SprintNumber: 3},
		models.Sprint{ID: "x1", ProjectID: "p2", Order: 0, SprintNumber: 1},
	)
	service := newSprintServiceForTest(t, api)

	err := service.DeleteSprint(context.Background(), "s2")
	require.NoError(t, err)

	_, exists := api.sprints["s2"]
	assert.False(t, exists)

	assert.Equal(t, 0, api.sprints["s1"].Order)
	assert.Equal(t, 1, api.sprints["s1"].SprintNumber)
	assert.Equal(t, 1, api.sprints["s3"].Order)
	assert.Equal(t, 2, api.sprints["s3"].SprintNumber)

	// The other project is untouched.
	assert.Equal(t, 0, api.sprints["x1"].Order)
	assert.Equal(t, 1, api.sprints["x1"].SprintNumber)
}
