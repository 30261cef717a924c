package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kheireldine/ai-investor-portal/internal/models"
	"github.com/kheireldine/ai-investor-portal/internal/services"
)

type mockRequestService struct {
	createRequestFn func(investorID uint, requestType string, amount float64) (*models.CapitalRequest, error)
	listRequestsFn  func(investorID uint) ([]models.CapitalRequest, error)
}

func (m *mockRequestService) CreateRequest(investorID uint, requestType string, amount float64) (*models.CapitalRequest, error) {
	if m.createRequestFn != nil {
		return m.createRequestFn(investorID, requestType, amount)
	}
	return &models.CapitalRequest{}, nil
}

func (m *mockRequestService) ListRequests(investorID uint) ([]models.CapitalRequest, error) {
	if m.listRequestsFn != nil {
		return m.listRequestsFn(investorID)
	}
	return []models.CapitalRequest{}, nil
}

var _ services.RequestServicer = (*mockRequestService)(nil)

func setupRequestRouter(handler *RequestHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectInvestorID(1))
	auth.POST("/requests", handler.CreateRequest)
	auth.GET("/requests", handler.ListRequests)
	return r
}

func TestRequestHandler_CreateRequest(t *testing.T) {
	t.Run("returns 201 with confirmation message", func(t *testing.T) {
		var gotType string
		var gotAmount float64
		svc := &mockRequestService{
			createRequestFn: func(investorID uint, requestType string, amount float64) (*models.CapitalRequest, error) {
				gotType, gotAmount = requestType, amount
				return &models.CapitalRequest{
					Base:       models.Base{ID: 1},
					InvestorID: investorID,
					Type:       requestType,
					Amount:     amount,
					Status:     models.RequestStatusPending,
					Timestamp:  time.Now().UTC(),
				}, nil
			},
		}
		r := setupRequestRouter(NewRequestHandler(svc))

		rec := doRequest(r, "POST", "/requests", `{"type":"deposit","amount":250.5}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["message"] != "Request submitted" {
			t.Errorf("unexpected message: %v", result["message"])
		}
		if gotType != "deposit" || gotAmount != 250.5 {
			t.Errorf("service called with %s/%v", gotType, gotAmount)
		}
	})

	t.Run("accepts a zero amount", func(t *testing.T) {
		var gotAmount = -1.0
		svc := &mockRequestService{
			createRequestFn: func(investorID uint, requestType string, amount float64) (*models.CapitalRequest, error) {
				gotAmount = amount
				return &models.CapitalRequest{
					Base:       models.Base{ID: 1},
					InvestorID: investorID,
					Type:       requestType,
					Amount:     amount,
					Status:     models.RequestStatusPending,
					Timestamp:  time.Now().UTC(),
				}, nil
			},
		}
		r := setupRequestRouter(NewRequestHandler(svc))

		rec := doRequest(r, "POST", "/requests", `{"type":"deposit","amount":0}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotAmount != 0 {
			t.Errorf("service called with amount %v, want 0", gotAmount)
		}
	})

	t.Run("returns 400 on invalid body", func(t *testing.T) {
		r := setupRequestRouter(NewRequestHandler(&mockRequestService{}))

		for _, body := range []string{
			`{}`,
			`{"type":"   ","amount":10}`,
			`{"type":"deposit"}`,
			`not json`,
		} {
			rec := doRequest(r, "POST", "/requests", body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("body %q: expected 400, got %d", body, rec.Code)
			}
		}
	})
}

func TestRequestHandler_ListRequests(t *testing.T) {
	t.Run("returns requests with RFC3339 UTC timestamps", func(t *testing.T) {
		created := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
		svc := &mockRequestService{
			listRequestsFn: func(investorID uint) ([]models.CapitalRequest, error) {
				return []models.CapitalRequest{
					{InvestorID: investorID, Type: "deposit", Amount: 100, Status: "pending", Timestamp: created},
					{InvestorID: investorID, Type: "withdrawal", Amount: 50, Status: "pending", Timestamp: created.Add(time.Minute)},
				}, nil
			},
		}
		r := setupRequestRouter(NewRequestHandler(svc))

		rec := doRequest(r, "GET", "/requests", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		items := parseJSONArray(t, rec)
		if len(items) != 2 {
			t.Fatalf("expected 2 requests, got %d", len(items))
		}
		first := items[0].(map[string]interface{})
		if first["type"] != "deposit" || first["amount"].(float64) != 100 || first["status"] != "pending" {
			t.Errorf("unexpected first request: %v", first)
		}
		if first["timestamp"] != "2025-03-14T09:26:53Z" {
			t.Errorf("expected RFC3339 UTC timestamp, got %v", first["timestamp"])
		}
	})

	t.Run("returns empty array when no requests", func(t *testing.T) {
		r := setupRequestRouter(NewRequestHandler(&mockRequestService{}))

		rec := doRequest(r, "GET", "/requests", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if body := rec.Body.String(); body != "[]" {
			t.Errorf("expected [], got %s", body)
		}
	})
}
