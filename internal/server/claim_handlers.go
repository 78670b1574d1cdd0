package server

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/djcoder02-glitch/claim-portal-backend/internal/models"
	"github.com/djcoder02-glitch/claim-portal-backend/internal/repository"
)

// CreateClaimRequest is the claim submission payload
type CreateClaimRequest struct {
	PolicyTypeID string  `json:"policy_type_id" binding:"required"`
	Amount       float64 `json:"amount"`
}

// ListClaimsRequest holds list query parameters
type ListClaimsRequest struct {
	Status       string `form:"status"`
	PolicyTypeID string `form:"policy_type_id"`
	Limit        int    `form:"limit"`
	Offset       int    `form:"offset"`
}

func newClaimNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("CLM-%d-%s", time.Now().Year(), suffix)
}

// CreateClaim handles POST /api/claims
func (h *Handlers) CreateClaim(c *gin.Context) {
	var req CreateClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "policy_type_id is required")
		return
	}

	if _, err := h.policyTypes.GetByID(req.PolicyTypeID); err != nil {
		h.fail(c, err)
		return
	}

	claim := &models.Claim{
		ID:           uuid.NewString(),
		ClaimNumber:  newClaimNumber(),
		PolicyTypeID: req.PolicyTypeID,
		Status:       models.StatusSubmitted,
		Amount:       req.Amount,
		FormData:     "{}",
	}
	if err := h.claims.Create(claim); err != nil {
		h.fail(c, err)
		return
	}
	created(c, claim)
}

// ListClaims handles GET /api/claims
func (h *Handlers) ListClaims(c *gin.Context) {
	var req ListClaimsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, "invalid query parameters")
		return
	}
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 20
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	claims, err := h.claims.List(repository.ListFilter{
		Status:       req.Status,
		PolicyTypeID: req.PolicyTypeID,
		Limit:        req.Limit,
		Offset:       req.Offset,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, claims)
}

// GetClaim handles GET /api/claims/:id
func (h *Handlers) GetClaim(c *gin.Context) {
	claim, err := h.claims.GetByID(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, claim)
}

// UpdateStatusRequest is the status transition payload
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateClaimStatus handles PATCH /api/claims/:id/status
func (h *Handlers) UpdateClaimStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "status is required")
		return
	}
	if !models.IsValidStatus(req.Status) {
		badRequest(c, fmt.Sprintf("unknown status: %s", req.Status))
		return
	}
	if err := h.claims.UpdateStatus(c.Param("id"), req.Status); err != nil {
		h.fail(c, err)
		return
	}
	ok(c, gin.H{"status": req.Status})
}

// UpdateAmountRequest is the amount correction payload
type UpdateAmountRequest struct {
	Amount float64 `json:"amount"`
}

// UpdateClaimAmount handles PATCH /api/claims/:id/amount
func (h *Handlers) UpdateClaimAmount(c *gin.Context) {
	var req UpdateAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "amount is required")
		return
	}
	if req.Amount < 0 {
		badRequest(c, "amount must not be negative")
		return
	}
	if err := h.claims.UpdateAmount(c.Param("id"), req.Amount); err != nil {
		h.fail(c, err)
		return
	}
	ok(c, gin.H{"amount": req.Amount})
}

// DeleteClaim handles DELETE /api/claims/:id (admin only)
func (h *Handlers) DeleteClaim(c *gin.Context) {
	if err := h.claims.Delete(c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	ok(c, gin.H{"deleted": true})
}
