package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studioo/internal/adapter/http/middleware"
	"studioo/internal/usecase"
)

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListCatalog godoc
// @Summary      List engagements with their priced options
// @Tags         catalog
// @Produce      json
// @Param        engagement  query     string  false  "Engagement key, e.g. project/photography"
// @Success      200  {array}   usecase.EngagementView
// @Router       /catalog [get]
func (h *CatalogHandler) ListCatalog(c *gin.Context) {
	lang := middleware.LanguageFrom(c)

	if key := c.Query("engagement"); key != "" {
		view, err := h.usecase.GetEngagement(lang, key)
		if err != nil {
			appErr := mapQuoteWizardError(err, lang)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, []usecase.EngagementView{view})
		return
	}

	c.JSON(http.StatusOK, h.usecase.ListEngagements(lang))
}
