package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studioo/internal/adapter/http/dto/request"
	"studioo/internal/adapter/http/dto/response"
	"studioo/internal/adapter/http/middleware"
	"studioo/internal/domain/entities"
	"studioo/internal/i18n"
	"studioo/internal/usecase"
	"studioo/pkg"
)

var errInvalidProjectPayload = pkg.NewDomainErrorSimple("INVALID_PROJECT_INPUT", "Invalid project payload", http.StatusBadRequest)

// HubHandler serves the partner hub. Every route runs behind RequireAuth.
type HubHandler struct {
	clients  usecase.IClientUseCase
	projects usecase.IProjectUseCase
}

func NewHubHandler(clients usecase.IClientUseCase, projects usecase.IProjectUseCase) *HubHandler {
	return &HubHandler{clients: clients, projects: projects}
}

// GetProfile godoc
// @Summary      Current partner profile
// @Tags         hub
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.ClientResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /hub/me [get]
func (h *HubHandler) GetProfile(c *gin.Context) {
	client, err := h.clients.GetProfile(c.Request.Context(), middleware.UserIDFrom(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

func (h *HubHandler) ListProjects(c *gin.Context) {
	projects, err := h.projects.ListProjects(c.Request.Context(), middleware.UserIDFrom(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProjects(projects))
}

func (h *HubHandler) GetProject(c *gin.Context) {
	project, err := h.projects.GetProject(c.Request.Context(), middleware.UserIDFrom(c), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}

// UpdateProject godoc
// @Summary      Edit project details
// @Description  Status, owner and timeline are managed by the studio and cannot be changed.
// @Tags         hub
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id       path      string                          true  "Project ID"
// @Param        payload  body      request.ProjectDetailsRequest   true  "Details"
// @Success      200  {object}  response.ProjectResponse
// @Failure      422  {object}  pkg.HTTPError
// @Router       /hub/projects/{id} [patch]
func (h *HubHandler) UpdateProject(c *gin.Context) {
	var payload request.ProjectDetailsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	project, err := h.projects.UpdateProjectDetails(c.Request.Context(), middleware.UserIDFrom(c), c.Param("id"), payload.ToDetails())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}

func (h *HubHandler) fail(c *gin.Context, err error) {
	appErr := mapHubError(c, err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapHubError(c *gin.Context, err error) *pkg.AppError {
	var verrs entities.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		lang := middleware.LanguageFrom(c)
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", i18n.T(lang, "error.validation"), http.StatusUnprocessableEntity).
			WithDetails(response.FromValidationErrors(verrs, lang))
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing user", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidProjectID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_PROFILE_NOT_FOUND", "No partner profile for this account", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
