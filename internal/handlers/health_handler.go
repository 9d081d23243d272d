package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// Health reports that the server is up
// @Summary     Health check
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse
// @Router      /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
