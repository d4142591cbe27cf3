package handlers

import (
	"net/http"

	"motoroutes/internal/domain"
	"motoroutes/internal/http/middleware"
	"motoroutes/internal/services"

	"github.com/gin-gonic/gin"
)

// GetTripReport returns the printable catalogue report (inline PDF).
func GetTripReport(c *gin.Context) {
	svc := services.ReportService{
		Loader: func() ([]domain.Itinerary, domain.CompletionState, error) {
			return Store.Items(), Completion.State(), nil
		},
		RequestID: middleware.GetRequestID(c),
	}

	pdfBytes, filename, err := svc.TripReport()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "report generation failed", err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
