package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"studioo/internal/adapter/http/dto/request"
	"studioo/internal/adapter/http/dto/response"
	"studioo/internal/adapter/http/middleware"
	"studioo/internal/domain/entities"
	"studioo/internal/domain/wizard"
	"studioo/internal/i18n"
	"studioo/internal/presentation"
	"studioo/internal/usecase"
	"studioo/pkg"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	errInvalidWizardPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errInvalidLanguage      = pkg.NewDomainErrorSimple("INVALID_LANGUAGE", "Supported languages are en and ar", http.StatusBadRequest)
)

// QuoteWizardHandler exposes the quote wizard. Every step operation answers
// with the full session so the client can render the current step.
type QuoteWizardHandler struct {
	usecase usecase.IQuoteWizardUseCase
}

func NewQuoteWizardHandler(uc usecase.IQuoteWizardUseCase) *QuoteWizardHandler {
	return &QuoteWizardHandler{usecase: uc}
}

type startSessionRequest struct {
	Language string `json:"language"`
}

// StartSession godoc
// @Summary      Start a quote session
// @Tags         quotes
// @Produce      json
// @Success      201  {object}  response.SessionResponse
// @Router       /quotes/sessions [post]
func (h *QuoteWizardHandler) StartSession(c *gin.Context) {
	lang := middleware.LanguageFrom(c)

	var payload startSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
			return
		}
	}
	if payload.Language != "" {
		parsed, err := i18n.Parse(payload.Language)
		if err != nil {
			c.JSON(errInvalidLanguage.HTTPStatus, errInvalidLanguage.ToHTTPError())
			return
		}
		lang = parsed
	}

	s, err := h.usecase.StartSession(c.Request.Context(), lang, middleware.UserIDFrom(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(s, lang))
}

// GetSession godoc
// @Summary      Get a quote session
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.SessionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/sessions/{id} [get]
func (h *QuoteWizardHandler) GetSession(c *gin.Context) {
	s, err := h.usecase.GetSession(c.Request.Context(), c.Param("id"))
	h.respond(c, s, err)
}

func (h *QuoteWizardHandler) SelectEngagement(c *gin.Context) {
	var payload request.EngagementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}
	e, err := payload.ResolveEngagement()
	if err != nil {
		h.fail(c, err)
		return
	}

	s, err := h.usecase.SelectEngagement(c.Request.Context(), c.Param("id"), e, payload.Advance)
	h.respond(c, s, err)
}

func (h *QuoteWizardHandler) UpdateConfiguration(c *gin.Context) {
	var payload request.ConfigurationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.UpdateConfiguration(c.Request.Context(), c.Param("id"), payload.ToInput())
	h.respond(c, s, err)
}

func (h *QuoteWizardHandler) UpdateContact(c *gin.Context) {
	var payload request.ContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.UpdateContact(c.Request.Context(), c.Param("id"), payload.ToContactInfo())
	h.respond(c, s, err)
}

// Next godoc
// @Summary      Advance to the next step
// @Description  Validates the current step. From contact info it compiles the quote.
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.SessionResponse
// @Failure      422  {object}  pkg.HTTPError
// @Router       /quotes/sessions/{id}/next [post]
func (h *QuoteWizardHandler) Next(c *gin.Context) {
	s, err := h.usecase.Next(c.Request.Context(), c.Param("id"))
	h.respond(c, s, err)
}

func (h *QuoteWizardHandler) Back(c *gin.Context) {
	s, err := h.usecase.Back(c.Request.Context(), c.Param("id"))
	h.respond(c, s, err)
}

func (h *QuoteWizardHandler) Reset(c *gin.Context) {
	s, err := h.usecase.Reset(c.Request.Context(), c.Param("id"))
	h.respond(c, s, err)
}

// GetQuote returns the printable quote document of a completed session.
func (h *QuoteWizardHandler) GetQuote(c *gin.Context) {
	doc, ok := h.document(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *QuoteWizardHandler) DownloadPDF(c *gin.Context) {
	h.download(c, "pdf", contentTypePDF, presentation.GeneratePDF)
}

func (h *QuoteWizardHandler) DownloadXLSX(c *gin.Context) {
	h.download(c, "xlsx", contentTypeXLSX, presentation.GenerateXLSX)
}

// Submit godoc
// @Summary      Submit the compiled quote
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      201  {object}  response.SubmissionResponse
// @Failure      409  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /quotes/sessions/{id}/submit [post]
func (h *QuoteWizardHandler) Submit(c *gin.Context) {
	req, err := h.usecase.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromQuoteRequest(req))
}

func (h *QuoteWizardHandler) download(c *gin.Context, ext, contentType string, render func(presentation.Document) ([]byte, error)) {
	doc, ok := h.document(c)
	if !ok {
		return
	}
	body, err := render(doc)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.%s"`, doc.QuoteNumber, ext))
	c.Data(http.StatusOK, contentType, body)
}

func (h *QuoteWizardHandler) document(c *gin.Context) (presentation.Document, bool) {
	s, err := h.usecase.GetSession(c.Request.Context(), c.Param("id"))
	if err == nil && (s.Step != entities.StepComplete || s.Quote == nil) {
		err = usecase.ErrQuoteNotReady
	}
	if err != nil {
		h.fail(c, err)
		return presentation.Document{}, false
	}
	return presentation.NewDocument(*s.Quote, middleware.LanguageFrom(c)), true
}

func (h *QuoteWizardHandler) respond(c *gin.Context, s entities.WizardSession, err error) {
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s, middleware.LanguageFrom(c)))
}

func (h *QuoteWizardHandler) fail(c *gin.Context, err error) {
	appErr := mapQuoteWizardError(err, middleware.LanguageFrom(c))
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapQuoteWizardError(err error, lang i18n.Language) *pkg.AppError {
	var verrs entities.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", i18n.T(lang, "error.validation"), http.StatusUnprocessableEntity).
			WithDetails(response.FromValidationErrors(verrs, lang))
	case errors.Is(err, usecase.ErrInvalidSessionID),
		errors.Is(err, request.ErrMissingEngagement),
		errors.Is(err, entities.ErrInvalidEngagement),
		errors.Is(err, entities.ErrUnknownService),
		errors.Is(err, entities.ErrNilConfiguration),
		errors.Is(err, entities.ErrConfigurationMismatch):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", i18n.T(lang, "error.session_not_found"), http.StatusNotFound)
	case errors.Is(err, wizard.ErrWrongStep), errors.Is(err, wizard.ErrTerminalStep):
		return pkg.NewDomainErrorSimple("WRONG_STEP", i18n.T(lang, "error.wrong_step"), http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotReady):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_READY", i18n.T(lang, "error.quote_not_ready"), http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNumberConflict):
		return pkg.NewDomainErrorSimple("QUOTE_NUMBER_TAKEN", i18n.T(lang, "error.quote_number_taken"), http.StatusConflict)
	case errors.Is(err, usecase.ErrSubmissionFailed):
		return pkg.NewDomainError("SUBMISSION_FAILED", i18n.T(lang, "error.submission_failed"), err, http.StatusBadGateway).AsRetryable()
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
