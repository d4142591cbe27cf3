package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// POST /api/itineraries/:id/completion/toggle
func ToggleCompletion(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}
	// only catalogued itineraries can be toggled
	if _, err := Store.Get(id); err != nil {
		RespondDomainError(c, err)
		return
	}

	done, err := Completion.Toggle(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "completed": done})
}

// GET /api/completion
func GetCompletion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"completion": Completion.State()})
}

// GET /api/completion/summary
func GetCompletionSummary(c *gin.Context) {
	c.JSON(http.StatusOK, Completion.Summarize(Store.Items()))
}
