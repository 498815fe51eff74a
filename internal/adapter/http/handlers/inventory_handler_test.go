package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"joinerypro/internal/adapter/http/handlers/mocks"
	"joinerypro/internal/domain/entities"
	"joinerypro/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newInventoryRouter(t *testing.T) (*gin.Engine, *mocks.MockIInventoryUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIInventoryUseCase(ctrl)
	h := NewInventoryHandler(uc)

	r := gin.New()
	r.GET("/v1/materials/low-stock", h.LowStockMaterials)
	r.GET("/v1/materials/:id", h.GetMaterial)
	r.POST("/v1/materials", h.AddMaterial)
	r.POST("/v1/materials/:id/restock", h.RestockMaterial)
	r.POST("/v1/materials/:id/consume", h.ConsumeMaterial)
	r.PUT("/v1/materials/:id/stock", h.AdjustStock)
	r.GET("/v1/usage", h.ListMaterialUsage)
	return r, uc
}

func TestInventoryHandler_AddMaterial(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		r, _ := newInventoryRouter(t)
		w := performRequest(r, http.MethodPost, "/v1/materials", `{"unit":"m2","costPerUnit":10}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("negative cost", func(t *testing.T) {
		r, _ := newInventoryRouter(t)
		w := performRequest(r, http.MethodPost, "/v1/materials", `{"name":"MDF","unit":"m2","costPerUnit":-1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newInventoryRouter(t)
		uc.EXPECT().AddMaterial(gomock.Any(), entities.Material{Name: "MDF 18mm", Unit: "m2", CostPerUnit: 50, CurrentStock: 10, MinStockLevel: 2}).
			Return(entities.Material{ID: "m1", Name: "MDF 18mm", Unit: "m2", CostPerUnit: 50, CurrentStock: 10, MinStockLevel: 2}, nil)

		w := performRequest(r, http.MethodPost, "/v1/materials", `{"name":" MDF 18mm ","unit":"m2","costPerUnit":50,"currentStock":10,"minStockLevel":2}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var got entities.Material
		decodeBody(t, w, &got)
		if got.ID != "m1" {
			t.Fatalf("unexpected body: %+v", got)
		}
	})
}

func TestInventoryHandler_GetMaterial(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newInventoryRouter(t)
		uc.EXPECT().GetMaterial(gomock.Any(), "missing").Return(entities.Material{}, usecase.ErrMaterialNotFound)

		w := performRequest(r, http.MethodGet, "/v1/materials/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]string
		decodeBody(t, w, &body)
		if body["code"] != "MATERIAL_NOT_FOUND" {
			t.Fatalf("unexpected error body: %v", body)
		}
	})

	t.Run("low-stock is not an id", func(t *testing.T) {
		r, uc := newInventoryRouter(t)
		uc.EXPECT().LowStockMaterials(gomock.Any()).Return([]entities.Material{{ID: "m2"}}, nil)

		w := performRequest(r, http.MethodGet, "/v1/materials/low-stock", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestInventoryHandler_RestockMaterial(t *testing.T) {
	t.Run("zero quantity", func(t *testing.T) {
		r, _ := newInventoryRouter(t)
		w := performRequest(r, http.MethodPost, "/v1/materials/m1/restock", `{"quantity":0,"unitCost":10}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newInventoryRouter(t)
		res := usecase.RestockResult{
			Material: entities.Material{ID: "m1", CurrentStock: 15, CostPerUnit: 60},
			Expense:  entities.NewExpense("t1", time.Now(), 300, entities.ExpenseCategoryRestockInventory, "Réappro"),
		}
		uc.EXPECT().RestockMaterial(gomock.Any(), "m1", 5.0, 60.0, "Bois & Co").Return(res, nil)

		w := performRequest(r, http.MethodPost, "/v1/materials/m1/restock", `{"quantity":5,"unitCost":60,"supplier":"Bois & Co"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got usecase.RestockResult
		decodeBody(t, w, &got)
		if got.Material.CurrentStock != 15 || got.Expense.Amount != 300 {
			t.Fatalf("unexpected body: %+v", got)
		}
	})
}

func TestInventoryHandler_ConsumeMaterial(t *testing.T) {
	t.Run("insufficient stock", func(t *testing.T) {
		r, uc := newInventoryRouter(t)
		uc.EXPECT().ConsumeMaterial(gomock.Any(), "p1", "m1", 20.0).Return(entities.MaterialUsage{}, usecase.ErrInsufficientStock)

		w := performRequest(r, http.MethodPost, "/v1/materials/m1/consume", `{"projectId":"p1","quantity":20}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("missing project", func(t *testing.T) {
		r, _ := newInventoryRouter(t)
		w := performRequest(r, http.MethodPost, "/v1/materials/m1/consume", `{"quantity":2}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newInventoryRouter(t)
		uc.EXPECT().ConsumeMaterial(gomock.Any(), "p1", "m1", 2.0).
			Return(entities.MaterialUsage{ID: "u1", ProjectID: "p1", MaterialID: "m1", Quantity: 2, CostAtTimeOfUse: 50}, nil)

		w := performRequest(r, http.MethodPost, "/v1/materials/m1/consume", `{"projectId":"p1","quantity":2}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestInventoryHandler_AdjustStock(t *testing.T) {
	t.Run("zero is a valid count", func(t *testing.T) {
		r, uc := newInventoryRouter(t)
		uc.EXPECT().AdjustStock(gomock.Any(), "m1", 0.0).Return(entities.Material{ID: "m1"}, nil)

		w := performRequest(r, http.MethodPut, "/v1/materials/m1/stock", `{"quantity":0}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing quantity", func(t *testing.T) {
		r, _ := newInventoryRouter(t)
		w := performRequest(r, http.MethodPut, "/v1/materials/m1/stock", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestInventoryHandler_ListMaterialUsage(t *testing.T) {
	r, uc := newInventoryRouter(t)
	uc.EXPECT().ListMaterialUsage(gomock.Any(), "p1").Return(nil, errors.New("load jp_usage: boom"))

	w := performRequest(r, http.MethodGet, "/v1/usage?projectId=p1", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
