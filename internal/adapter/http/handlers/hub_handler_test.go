package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"studioo/internal/adapter/http/handlers/mocks"
	"studioo/internal/domain/entities"
	"studioo/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

// withUser stands in for RequireAuth.
func withUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func newHubRouter(h *HubHandler) *gin.Engine {
	r := gin.New()
	hub := r.Group("/v1/hub", withUser("user-1"))
	hub.GET("/me", h.GetProfile)
	hub.GET("/projects", h.ListProjects)
	hub.GET("/projects/:id", h.GetProject)
	hub.PATCH("/projects/:id", h.UpdateProject)
	return r
}

func TestHubHandler_GetProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mocks.NewMockIClientUseCase(ctrl)
		r := newHubRouter(NewHubHandler(clients, nil))

		clients.EXPECT().GetProfile(gomock.Any(), "user-1").Return(entities.Client{ID: "client-1", Name: "Acme Owner", Email: "owner@acme.ae"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/hub/me", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not a partner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mocks.NewMockIClientUseCase(ctrl)
		r := newHubRouter(NewHubHandler(clients, nil))

		clients.EXPECT().GetProfile(gomock.Any(), "user-1").Return(entities.Client{}, usecase.ErrClientNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/hub/me", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body := decodeError(t, w); body["code"] != "CLIENT_PROFILE_NOT_FOUND" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestHubHandler_Projects(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mocks.NewMockIProjectUseCase(ctrl)
		r := newHubRouter(NewHubHandler(nil, projects))

		projects.EXPECT().ListProjects(gomock.Any(), "user-1").Return([]entities.Project{
			{ID: "proj-1", Title: "Launch Event", Status: entities.ProjectStatusInProgress},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/hub/projects", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(got) != 1 || got[0]["status"] != "In Progress" {
			t.Fatalf("unexpected list: %v", got)
		}
	})

	t.Run("get other client's project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mocks.NewMockIProjectUseCase(ctrl)
		r := newHubRouter(NewHubHandler(nil, projects))

		projects.EXPECT().GetProject(gomock.Any(), "user-1", "proj-9").Return(entities.Project{}, usecase.ErrProjectNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/hub/projects/proj-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mocks.NewMockIProjectUseCase(ctrl)
		r := newHubRouter(NewHubHandler(nil, projects))

		projects.EXPECT().ListProjects(gomock.Any(), "user-1").Return(nil, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/hub/projects", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestHubHandler_UpdateProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mocks.NewMockIProjectUseCase(ctrl)
		r := newHubRouter(NewHubHandler(nil, projects))

		req := httptest.NewRequest(http.MethodPatch, "/v1/hub/projects/proj-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mocks.NewMockIProjectUseCase(ctrl)
		r := newHubRouter(NewHubHandler(nil, projects))

		projects.EXPECT().UpdateProjectDetails(gomock.Any(), "user-1", "proj-1", gomock.Any()).
			Return(entities.Project{}, entities.ValidationErrors{{Field: "title", Code: entities.CodeRequired}})

		req := httptest.NewRequest(http.MethodPatch, "/v1/hub/projects/proj-1", bytes.NewBufferString(`{"title":""}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mocks.NewMockIProjectUseCase(ctrl)
		r := newHubRouter(NewHubHandler(nil, projects))

		want := entities.ProjectDetails{Title: "Launch Event v2", Description: "Evening launch", Location: "Dubai", StartDate: "2025-06-01"}
		projects.EXPECT().UpdateProjectDetails(gomock.Any(), "user-1", "proj-1", want).
			Return(entities.Project{ID: "proj-1", Title: "Launch Event v2", Status: entities.ProjectStatusInProgress}, nil)

		body := `{"title":" Launch Event v2 ","description":"Evening launch","location":"Dubai","start_date":"2025-06-01"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/hub/projects/proj-1", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})
}
