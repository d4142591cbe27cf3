package handlers

import (
	"net/http"
	"strings"
	"time"

	"motoroutes/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	rider, err := Riders.GetByEmail(strings.TrimSpace(req.Email))
	if err != nil {
		if domain.IsNotFound(err) {
			RespondError(c, http.StatusUnauthorized, "wrong email or password", nil)
		} else {
			RespondError(c, http.StatusInternalServerError, "login failed", err)
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rider.PasswordHash), []byte(req.Password)); err != nil {
		RespondError(c, http.StatusUnauthorized, "wrong email or password", nil)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"rider_id": rider.ID,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString(jwtSecret)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to sign token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": signed, "rider": rider})
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || len(req.Password) < 8 {
		RespondError(c, http.StatusBadRequest, "email required and password must have at least 8 characters", nil)
		return
	}

	if _, err := Riders.GetByEmail(req.Email); err == nil {
		RespondError(c, http.StatusBadRequest, "email already registered", nil)
		return
	} else if !domain.IsNotFound(err) {
		RespondError(c, http.StatusInternalServerError, "registration failed", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "registration failed", err)
		return
	}

	rider, err := Riders.Create(strings.TrimSpace(req.Name), req.Email, string(hash))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "registration failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"rider": rider})
}
