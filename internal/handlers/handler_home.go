package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHome godoc
// @Summary Health check
// @Description Reports that the computation service is up
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func GetHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
