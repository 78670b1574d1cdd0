package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/djcoder02-glitch/claim-portal-backend/internal/models"
)

// ListPolicyTypes handles GET /api/policy-types
func (h *Handlers) ListPolicyTypes(c *gin.Context) {
	types, err := h.policyTypes.List()
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, types)
}

// PolicyTypeRequest is the create/update payload
type PolicyTypeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreatePolicyType handles POST /api/admin/policy-types
func (h *Handlers) CreatePolicyType(c *gin.Context) {
	var req PolicyTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "name is required")
		return
	}

	pt := &models.PolicyType{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := h.policyTypes.Create(pt); err != nil {
		h.fail(c, err)
		return
	}
	created(c, pt)
}

// UpdatePolicyType handles PUT /api/admin/policy-types/:id
func (h *Handlers) UpdatePolicyType(c *gin.Context) {
	var req PolicyTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "name is required")
		return
	}

	pt, err := h.policyTypes.GetByID(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	pt.Name = req.Name
	pt.Description = req.Description
	if err := h.policyTypes.Update(pt); err != nil {
		h.fail(c, err)
		return
	}
	ok(c, pt)
}

// DeletePolicyType handles DELETE /api/admin/policy-types/:id
func (h *Handlers) DeletePolicyType(c *gin.Context) {
	if err := h.policyTypes.Delete(c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	ok(c, gin.H{"deleted": c.Param("id")})
}
