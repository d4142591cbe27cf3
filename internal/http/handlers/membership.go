package handlers

import (
	"errors"
	"net/http"

	"motoroutes/internal/http/middleware"
	"motoroutes/internal/membership"

	"github.com/gin-gonic/gin"
)

// GET /api/membership/status
//
// A failed status check is an implicit logout: the client must
// re-authenticate, it is not a server error.
func GetMembershipStatus(c *gin.Context) {
	status, err := Membership.CheckStatus(c.Request.Context(), middleware.GetAuthToken(c))
	if err != nil {
		if errors.Is(err, membership.ErrUnauthenticated) {
			RespondError(c, http.StatusUnauthorized, "membership check failed, please sign in again", nil)
			return
		}
		RespondError(c, http.StatusBadGateway, "membership service error", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"active": status.Active, "plan": status.Plan})
}

type checkoutRequest struct {
	Plan string `json:"plan"`
}

// POST /api/membership/checkout
func CreateCheckoutSession(c *gin.Context) {
	var req checkoutRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Plan == "" {
		RespondError(c, http.StatusBadRequest, "plan is required", nil)
		return
	}

	url, err := Membership.CreateCheckout(c.Request.Context(), middleware.GetAuthToken(c), req.Plan)
	if err != nil {
		RespondError(c, http.StatusBadGateway, "failed to create checkout session", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
