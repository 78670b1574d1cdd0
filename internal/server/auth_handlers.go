package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/djcoder02-glitch/claim-portal-backend/internal/models"
	"github.com/djcoder02-glitch/claim-portal-backend/internal/repository"
	"github.com/djcoder02-glitch/claim-portal-backend/pkg/utils"
)

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and user profile
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expires_at"`
	User      *models.User `json:"user"`
}

// Login handles POST /api/auth/login
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "email and password are required")
		return
	}

	user, err := h.users.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, Response{Success: false, Error: "invalid credentials"})
			return
		}
		h.fail(c, err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, Response{Success: false, Error: "invalid credentials"})
		return
	}

	token, expiresAt, err := GenerateToken(user, h.authCfg.JWTSecret, h.authCfg.TokenExpireHours)
	if err != nil {
		h.fail(c, err)
		return
	}

	ok(c, LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		User:      user,
	})
}

// Me handles GET /api/auth/me
func (h *Handlers) Me(c *gin.Context) {
	user, err := h.users.GetByID(c.GetString(ctxUserID))
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, user)
}

// RegisterRequest is the admin user-creation payload
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// Register handles POST /api/auth/register (admin only)
func (h *Handlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "email and password are required")
		return
	}
	if err := utils.ValidateEmail(req.Email); err != nil {
		badRequest(c, err.Error())
		return
	}
	if req.Role == "" {
		req.Role = models.RoleUser
	}
	if req.Role != models.RoleAdmin && req.Role != models.RoleUser {
		badRequest(c, "role must be admin or user")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.fail(c, err)
		return
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
	}
	if err := h.users.Create(user); err != nil {
		h.fail(c, err)
		return
	}
	created(c, user)
}
