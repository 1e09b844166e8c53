package main

import (
	"os"

	"ms-knapsack-go/internal/handlers"

	"github.com/gin-gonic/gin"
)

func main() {
	port := getEnv("PORT", "8080")

	knapsackHandler := handlers.NewKnapsackHandler()

	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.GET("/health", knapsackHandler.HealthCheck)

	api := r.Group("/api/knapsack")
	{
		api.GET("/algorithms", knapsackHandler.GetSupportedAlgorithms)
		api.POST("/solve", knapsackHandler.Solve)
	}

	gin.SetMode(gin.ReleaseMode)
	r.Run(":" + port)
}

// getEnv gets environment variable with fallback to default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
