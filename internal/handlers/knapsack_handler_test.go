package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ms-knapsack-go/internal/service"

	"github.com/gin-gonic/gin"
)

func newTestRouter(h *KnapsackHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", h.HealthCheck)
	r.GET("/api/knapsack/algorithms", h.GetSupportedAlgorithms)
	r.POST("/api/knapsack/solve", h.Solve)
	return r
}

func TestHealthCheck(t *testing.T) {
	r := newTestRouter(NewKnapsackHandler())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGetSupportedAlgorithms(t *testing.T) {
	r := newTestRouter(NewKnapsackHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/knapsack/algorithms", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSolveEndpointReturnsSolution(t *testing.T) {
	r := newTestRouter(NewKnapsackHandler())

	payload := []byte(`{"items":[{"weight":10,"profit":60},{"weight":20,"profit":100},{"weight":30,"profit":120}],"capacity":50,"method":"Dp"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/knapsack/solve", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp service.SolveResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Solution == nil || resp.Solution.TotalValue != 220 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestSolveEndpointRejectsMalformedJSON(t *testing.T) {
	r := newTestRouter(NewKnapsackHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/knapsack/solve", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSolveEndpointRejectsInvalidCapacity(t *testing.T) {
	r := newTestRouter(NewKnapsackHandler())

	payload := []byte(`{"items":[{"weight":1,"profit":1}],"capacity":0}`)
	req := httptest.NewRequest(http.MethodPost, "/api/knapsack/solve", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
