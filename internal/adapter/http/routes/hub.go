package routes

import (
	"github.com/gin-gonic/gin"

	"studioo/internal/adapter/http/handlers"
	"studioo/internal/adapter/http/middleware"
)

const PathHub = "/hub"

func addHubRoutes(rg *gin.RouterGroup, verifier *middleware.TokenVerifier, hubHandler *handlers.HubHandler) {
	hub := rg.Group(PathHub, middleware.RequireAuth(verifier))
	{
		hub.GET("/me", hubHandler.GetProfile)
		hub.GET("/projects", hubHandler.ListProjects)
		hub.GET("/projects/:id", hubHandler.GetProject)
		hub.PATCH("/projects/:id", hubHandler.UpdateProject)
	}
}
