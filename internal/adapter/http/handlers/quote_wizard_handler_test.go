package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"studioo/internal/adapter/http/handlers/mocks"
	"studioo/internal/adapter/http/middleware"
	"studioo/internal/domain/entities"
	"studioo/internal/domain/wizard"
	"studioo/internal/i18n"
	"studioo/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newWizardRouter(h *QuoteWizardHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Language())
	s := r.Group("/v1/quotes/sessions")
	s.POST("", h.StartSession)
	s.GET("/:id", h.GetSession)
	s.PUT("/:id/engagement", h.SelectEngagement)
	s.PUT("/:id/configuration", h.UpdateConfiguration)
	s.PUT("/:id/contact", h.UpdateContact)
	s.POST("/:id/next", h.Next)
	s.POST("/:id/back", h.Back)
	s.POST("/:id/reset", h.Reset)
	s.GET("/:id/quote", h.GetQuote)
	s.GET("/:id/quote.pdf", h.DownloadPDF)
	s.GET("/:id/quote.xlsx", h.DownloadXLSX)
	s.POST("/:id/submit", h.Submit)
	return r
}

func completedSession() entities.WizardSession {
	q := entities.Quote{
		QuoteNumber:  "QSVI0Y0-AAAA",
		Date:         time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		Engagement:   entities.ProjectEngagement(entities.ServicePhotography),
		ClientName:   "Sara Haddad",
		ClientEmail:  "sara@example.com",
		ClientPhone:  "+971500000000",
		ProjectName:  "Photography - Event",
		LineItems:    []entities.LineItem{{Option: "sub_service:Event", Description: "Photography - Event (per hour)", Quantity: 3, Rate: 500, Total: 1500}},
		GrandTotal:   1500,
		Currency:     "AED",
		ValidityDays: 30,
	}
	return entities.WizardSession{
		ID:         "sess-1",
		Step:       entities.StepComplete,
		Language:   "en",
		Engagement: q.Engagement,
		Quote:      &q,
	}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return body
}

func TestQuoteWizardHandler_StartSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("language from accept-language", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteWizardUseCase(ctrl)
		r := newWizardRouter(NewQuoteWizardHandler(uc))

		uc.EXPECT().StartSession(gomock.Any(), i18n.Arabic, "").Return(entities.WizardSession{ID: "sess-1", Step: entities.StepSelectEngagement, Language: "ar"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/sessions", nil)
		req.Header.Set("Accept-Language", "ar-AE,ar;q=0.9")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"dir":"rtl"`) {
			t.Fatalf("expected rtl session, got %s", w.Body.String())
		}
	})

	t.Run("explicit language in body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteWizardUseCase(ctrl)
		r := newWizardRouter(NewQuoteWizardHandler(uc))

		uc.EXPECT().StartSession(gomock.Any(), i18n.English, "").Return(entities.WizardSession{ID: "sess-1", Step: entities.StepSelectEngagement}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/sessions?lang=ar", bytes.NewBufferString(`{"language":"en"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("unsupported language", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteWizardUseCase(ctrl)
		r := newWizardRouter(NewQuoteWizardHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/sessions", bytes.NewBufferString(`{"language":"fr"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuoteWizardHandler_GetSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteWizardUseCase(ctrl)
	r := newWizardRouter(NewQuoteWizardHandler(uc))

	uc.EXPECT().GetSession(gomock.Any(), "missing").Return(entities.WizardSession{}, usecase.ErrSessionNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/quotes/sessions/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if body := decodeError(t, w); body["code"] != "SESSION_NOT_FOUND" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestQuoteWizardHandler_SelectEngagement(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("by key with advance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteWizardUseCase(ctrl)
		r := newWizardRouter(NewQuoteWizardHandler(uc))

		e := entities.ProjectEngagement(entities.ServiceVideoProduction)
		uc.EXPECT().SelectEngagement(gomock.Any(), "sess-1", e, true).Return(entities.WizardSession{ID: "sess-1", Step: entities.StepConfigure, Engagement: e}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/quotes/sessions/sess-1/engagement", bytes.NewBufferString(`{"key":"project/video-production","advance":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"step":"configure"`) {
			t.Fatalf("expected configure step, got %s", w.Body.String())
		}
	})

	t.Run("missing engagement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteWizardUseCase(ctrl)
		r := newWizardRouter(NewQuoteWizardHandler(uc))

		req := httptest.NewRequest(http.MethodPut, "/v1/quotes/sessions/sess-1/engagement", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown service key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteWizardUseCase(ctrl)
		r := newWizardRouter(NewQuoteWizardHandler(uc))

		req := httptest.NewRequest(http.MethodPut, "/v1/quotes/sessions/sess-1/engagement", bytes.NewBufferString(`{"key":"project/knitting"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("wrong step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteWizardUseCase(ctrl)
		r := newWizardRouter(NewQuoteWizardHandler(uc))

		uc.EXPECT().SelectEngagement(gomock.Any(), "sess-1", entities.RetainerEngagement(), false).Return(entities.WizardSession{}, wizard.ErrWrongStep)

		req := httptest.NewRequest(http.MethodPut, "/v1/quotes/sessions/sess-1/engagement", bytes.NewBufferString(`{"type":"Retainer"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestQuoteWizardHandler_UpdateConfiguration(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteWizardUseCase(ctrl)
	r := newWizardRouter(NewQuoteWizardHandler(uc))

	want := entities.ConfigurationInput{SubService: "Event", Quantity: 3, AddOns: []string{"Drone Coverage"}, Logistics: "Within Dubai", Delivery: "Standard"}
	uc.EXPECT().UpdateConfiguration(gomock.Any(), "sess-1", want).Return(entities.WizardSession{ID: "sess-1", Step: entities.StepConfigure}, nil)

	body := `{"sub_service":"Event","quantity":3,"addons":["Drone Coverage"],"logistics":"Within Dubai","delivery":"Standard"}`
	req := httptest.NewRequest(http.MethodPut, "/v1/quotes/sessions/sess-1/configuration", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestQuoteWizardHandler_Next(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("validation errors are localized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteWizardUseCase(ctrl)
		r := newWizardRouter(NewQuoteWizardHandler(uc))

		verrs := entities.ValidationErrors{
			{Field: "name", Code: entities.CodeRequired},
			{Field: "email", Code: entities.CodeInvalidFormat},
		}
		uc.EXPECT().Next(gomock.Any(), "sess-1").Return(entities.WizardSession{ID: "sess-1", Step: entities.StepContactInfo}, verrs)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/sessions/sess-1/next?lang=ar", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body struct {
			Code    string `json:"code"`
			Details []struct {
				Field   string `json:"field"`
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"details"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.Code != "VALIDATION_ERROR" || len(body.Details) != 2 {
			t.Fatalf("unexpected body: %+v", body)
		}
		if body.Details[1].Field != "email" || body.Details[1].Message != i18n.ValidationMessage(i18n.Arabic, "email", entities.CodeInvalidFormat) {
			t.Fatalf("expected arabic email message, got %+v", body.Details[1])
		}
	})

	t.Run("compiled quote is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteWizardUseCase(ctrl)
		r := newWizardRouter(NewQuoteWizardHandler(uc))

		uc.EXPECT().Next(gomock.Any(), "sess-1").Return(completedSession(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/sessions/sess-1/next", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"grand_total_text":"AED 1,500.00"`) {
			t.Fatalf("expected quote document, got %s", w.Body.String())
		}
	})

	t.Run("terminal step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteWizardUseCase(ctrl)
		r := newWizardRouter(NewQuoteWizardHandler(uc))

		uc.EXPECT().Next(gomock.Any(), "sess-1").Return(completedSession(), wizard.ErrTerminalStep)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/sessions/sess-1/next", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestQuoteWizardHandler_BackAndReset(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteWizardUseCase(ctrl)
	r := newWizardRouter(NewQuoteWizardHandler(uc))

	uc.EXPECT().Back(gomock.Any(), "sess-1").Return(entities.WizardSession{ID: "sess-1", Step: entities.StepContactInfo}, nil)
	uc.EXPECT().Reset(gomock.Any(), "sess-1").Return(entities.WizardSession{ID: "sess-1", Step: entities.StepSelectEngagement}, nil)

	for _, path := range []string{"/v1/quotes/sessions/sess-1/back", "/v1/quotes/sessions/sess-1/reset"} {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestQuoteWizardHandler_Quote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not ready", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteWizardUseCase(ctrl)
		r := newWizardRouter(NewQuoteWizardHandler(uc))

		uc.EXPECT().GetSession(gomock.Any(), "sess-1").Return(entities.WizardSession{ID: "sess-1", Step: entities.StepConfigure}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/sessions/sess-1/quote", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("document json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteWizardUseCase(ctrl)
		r := newWizardRouter(NewQuoteWizardHandler(uc))

		uc.EXPECT().GetSession(gomock.Any(), "sess-1").Return(completedSession(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/sessions/sess-1/quote", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"quote_number":"QSVI0Y0-AAAA"`) {
			t.Fatalf("unexpected document: %s", w.Body.String())
		}
	})

	t.Run("xlsx download", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteWizardUseCase(ctrl)
		r := newWizardRouter(NewQuoteWizardHandler(uc))

		uc.EXPECT().GetSession(gomock.Any(), "sess-1").Return(completedSession(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/sessions/sess-1/quote.xlsx", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="QSVI0Y0-AAAA.xlsx"` {
			t.Fatalf("unexpected disposition %q", got)
		}
		if !bytes.HasPrefix(w.Body.Bytes(), []byte("PK")) {
			t.Fatalf("expected zip container")
		}
	})

	t.Run("pdf download", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteWizardUseCase(ctrl)
		r := newWizardRouter(NewQuoteWizardHandler(uc))

		uc.EXPECT().GetSession(gomock.Any(), "sess-1").Return(completedSession(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/sessions/sess-1/quote.pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Header().Get("Content-Type") != contentTypePDF || !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
			t.Fatalf("expected pdf body")
		}
	})
}

func TestQuoteWizardHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteWizardUseCase(ctrl)
		r := newWizardRouter(NewQuoteWizardHandler(uc))

		uc.EXPECT().Submit(gomock.Any(), "sess-1").Return(entities.QuoteRequest{
			ID:          "req-1",
			QuoteNumber: "QSVI0Y0-AAAA",
			Status:      entities.QuoteRequestStatusReceived,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/sessions/sess-1/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"request_id":"req-1"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("failure is retryable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteWizardUseCase(ctrl)
		r := newWizardRouter(NewQuoteWizardHandler(uc))

		uc.EXPECT().Submit(gomock.Any(), "sess-1").Return(entities.QuoteRequest{}, errors.Join(usecase.ErrSubmissionFailed, errors.New("dynamo down")))

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/sessions/sess-1/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		body := decodeError(t, w)
		if body["code"] != "SUBMISSION_FAILED" || body["retryable"] != true {
			t.Fatalf("unexpected body: %v", body)
		}
		if strings.Contains(w.Body.String(), "dynamo down") {
			t.Fatalf("internal cause must not leak")
		}
	})

	t.Run("quote number conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteWizardUseCase(ctrl)
		r := newWizardRouter(NewQuoteWizardHandler(uc))

		uc.EXPECT().Submit(gomock.Any(), "sess-1").Return(entities.QuoteRequest{}, usecase.ErrQuoteNumberConflict)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/sessions/sess-1/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
