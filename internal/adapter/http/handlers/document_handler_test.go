package handlers

import (
	"net/http"
	"testing"

	"joinerypro/internal/adapter/http/handlers/mocks"
	"joinerypro/internal/domain/entities"
	"joinerypro/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newDocumentRouter(t *testing.T) (*gin.Engine, *mocks.MockIDocumentUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIDocumentUseCase(ctrl)
	h := NewDocumentHandler(uc)

	r := gin.New()
	r.GET("/v1/documents/next-id", h.NextDocumentID)
	r.GET("/v1/quotes", h.ListQuotes)
	r.POST("/v1/quotes", h.CreateQuote)
	r.POST("/v1/quotes/:id/convert", h.ConvertQuote)
	r.GET("/v1/invoices/:id", h.GetInvoice)
	r.POST("/v1/invoices", h.CreateInvoice)
	r.PUT("/v1/invoices/:id/status", h.UpdateInvoiceStatus)
	return r, uc
}

func TestDocumentHandler_NextDocumentID(t *testing.T) {
	t.Run("normalizes type", func(t *testing.T) {
		r, uc := newDocumentRouter(t)
		uc.EXPECT().GenerateDocumentID(gomock.Any(), entities.DocumentTypeInvoice).Return("FAC-2024-003", nil)

		w := performRequest(r, http.MethodGet, "/v1/documents/next-id?type=invoice", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]string
		decodeBody(t, w, &body)
		if body["id"] != "FAC-2024-003" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		r, uc := newDocumentRouter(t)
		uc.EXPECT().GenerateDocumentID(gomock.Any(), entities.DocumentType("RECEIPT")).Return("", usecase.ErrInvalidDocumentType)

		w := performRequest(r, http.MethodGet, "/v1/documents/next-id?type=receipt", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestDocumentHandler_CreateQuote(t *testing.T) {
	t.Run("item without description", func(t *testing.T) {
		r, _ := newDocumentRouter(t)
		w := performRequest(r, http.MethodPost, "/v1/quotes", `{"clientId":"c1","items":[{"quantity":1,"unitPrice":10,"total":10}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate id", func(t *testing.T) {
		r, uc := newDocumentRouter(t)
		uc.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).Return(entities.Quote{}, usecase.ErrDocumentIDTaken)

		w := performRequest(r, http.MethodPost, "/v1/quotes", `{"id":"DEV-2024-001","clientId":"c1","totalAmount":100}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success adds vat", func(t *testing.T) {
		r, uc := newDocumentRouter(t)
		uc.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, q entities.Quote) (entities.Quote, error) {
			if q.ClientID != "c1" || len(q.Items) != 1 || q.Status != entities.DocStatusDraft {
				t.Fatalf("unexpected quote passed to usecase: %+v", q)
			}
			q.ID = "DEV-2024-001"
			return q, nil
		})

		w := performRequest(r, http.MethodPost, "/v1/quotes", `{"clientId":"c1","status":"draft","totalAmount":1000,"items":[{"description":"Dressing","quantity":1,"unitPrice":1000,"total":1000}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		decodeBody(t, w, &body)
		if body["id"] != "DEV-2024-001" || body["totalWithVat"] != 1200.0 {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestDocumentHandler_ConvertQuote(t *testing.T) {
	t.Run("missing quote", func(t *testing.T) {
		r, uc := newDocumentRouter(t)
		uc.EXPECT().ConvertQuoteToInvoice(gomock.Any(), "DEV-2024-009").Return(entities.Invoice{}, usecase.ErrQuoteNotFound)

		w := performRequest(r, http.MethodPost, "/v1/quotes/DEV-2024-009/convert", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newDocumentRouter(t)
		uc.EXPECT().ConvertQuoteToInvoice(gomock.Any(), "DEV-2024-001").
			Return(entities.Invoice{ID: "FAC-2024-001", QuoteID: "DEV-2024-001", TotalAmount: 500, Status: entities.DocStatusSent}, nil)

		w := performRequest(r, http.MethodPost, "/v1/quotes/DEV-2024-001/convert", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		decodeBody(t, w, &body)
		if body["quoteId"] != "DEV-2024-001" || body["balance"] != 500.0 {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestDocumentHandler_UpdateInvoiceStatus(t *testing.T) {
	t.Run("missing status", func(t *testing.T) {
		r, _ := newDocumentRouter(t)
		w := performRequest(r, http.MethodPut, "/v1/invoices/FAC-2024-001/status", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newDocumentRouter(t)
		uc.EXPECT().UpdateInvoiceStatus(gomock.Any(), "FAC-2024-001", entities.DocStatusPaid).
			Return(entities.Invoice{ID: "FAC-2024-001", Status: entities.DocStatusPaid}, nil)

		w := performRequest(r, http.MethodPut, "/v1/invoices/FAC-2024-001/status", `{"status":"paid"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestDocumentHandler_ListQuotesEmpty(t *testing.T) {
	r, uc := newDocumentRouter(t)
	uc.EXPECT().ListQuotes(gomock.Any()).Return(nil, nil)

	w := performRequest(r, http.MethodGet, "/v1/quotes", "")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("expected empty json array, got %d %s", w.Code, w.Body.String())
	}
}
