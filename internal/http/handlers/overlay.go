package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/overlay
func GetOverlay(c *gin.Context) {
	features, err := Overlay.Classify(Store.Items(), Completion.State())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"features": features, "count": len(features)})
}
