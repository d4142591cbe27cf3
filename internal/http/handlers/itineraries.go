package handlers

import (
	"net/http"
	"strconv"

	"motoroutes/internal/domain"
	"motoroutes/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/itineraries?search=&kind=&sort=
func GetItineraries(c *gin.Context) {
	var q domain.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid query", err)
		return
	}
	view := services.ApplyQuery(Store.Items(), q)
	c.JSON(http.StatusOK, gin.H{
		"itineraries": view,
		"count":       len(view),
	})
}

type editFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// PUT /api/itineraries/:id/field
func EditItineraryField(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}

	var req editFieldRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	it, err := Store.EditField(id, req.Field, req.Value)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"itinerary": it})
}
