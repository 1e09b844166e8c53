package handlers

import (
	"net/http"

	"ms-knapsack-go/internal/service"

	"github.com/gin-gonic/gin"
)

// KnapsackHandler handles HTTP requests for the knapsack solvers.
type KnapsackHandler struct {
	service *service.KnapsackService
}

// NewKnapsackHandler creates a new knapsack handler.
func NewKnapsackHandler() *KnapsackHandler {
	return &KnapsackHandler{service: service.NewKnapsackService()}
}

// HealthCheck returns the health status of the service.
func (h *KnapsackHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "ms-knapsack-go",
		"status":  "healthy",
		"methods": []string{"Dp", "Bkt", "Fptas", "MinKnap"},
	})
}

// GetSupportedAlgorithms returns information about the supported solvers.
func (h *KnapsackHandler) GetSupportedAlgorithms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"algorithms": h.service.SupportedAlgorithms(),
		"message":    "Supported 0/1 knapsack solvers",
	})
}

// Solve handles a solve request against the requested method (MinKnap by
// default). A malformed body, an unknown method, or an input validation
// failure (InputError) all map to 400.
func (h *KnapsackHandler) Solve(c *gin.Context) {
	var req service.SolveRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid request format",
			"details": err.Error(),
		})
		return
	}

	result := h.service.Solve(req)

	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadRequest
	}

	c.JSON(status, result)
}
