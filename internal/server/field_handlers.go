package server

import (
	"github.com/gin-gonic/gin"

	"github.com/djcoder02-glitch/claim-portal-backend/internal/models"
	"github.com/djcoder02-glitch/claim-portal-backend/internal/registry"
	"github.com/djcoder02-glitch/claim-portal-backend/pkg/utils"
)

// DraftResponse is the loadDraft result: field values plus the three
// metadata side-tables, and the combined descriptor set for rendering.
type DraftResponse struct {
	Values         map[string]models.FieldValue `json:"values"`
	StandardFields []models.FieldDescriptor     `json:"standard_fields"`
	CustomFields   []models.FieldDescriptor     `json:"custom_fields"`
	HiddenFields   []string                     `json:"hidden_fields"`
	LabelOverrides map[string]string            `json:"label_overrides"`
	Version        int64                        `json:"version"`
}

// GetDraft handles GET /api/claims/:id/draft
func (h *Handlers) GetDraft(c *gin.Context) {
	claimID := c.Param("id")

	claim, err := h.claims.GetByID(claimID)
	if err != nil {
		h.fail(c, err)
		return
	}
	policyType, err := h.policyTypes.GetByID(claim.PolicyTypeID)
	if err != nil {
		h.fail(c, err)
		return
	}

	draft, err := h.store.LoadDraft(claimID)
	if err != nil {
		h.fail(c, err)
		return
	}

	ok(c, DraftResponse{
		Values:         draft.Values,
		StandardFields: registry.GetDescriptors(policyType.Name),
		CustomFields:   draft.CustomFields,
		HiddenFields:   draft.HiddenFields,
		LabelOverrides: draft.LabelOverrides,
		Version:        draft.Version,
	})
}

// CommitFieldRequest carries one field value
type CommitFieldRequest struct {
	Value models.FieldValue `json:"value"`
}

// CommitField handles PUT /api/claims/:id/fields/:name
func (h *Handlers) CommitField(c *gin.Context) {
	name := c.Param("name")
	if err := utils.ValidateFieldName(name); err != nil {
		badRequest(c, err.Error())
		return
	}

	var req CommitFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid field value")
		return
	}

	if err := h.store.CommitField(c.Param("id"), name, req.Value); err != nil {
		h.fail(c, err)
		return
	}
	ok(c, gin.H{"saved": name})
}

// CommitAllRequest carries the whole form's values
type CommitAllRequest struct {
	Values map[string]models.FieldValue `json:"values" binding:"required"`
}

// CommitAllFields handles PUT /api/claims/:id/fields
func (h *Handlers) CommitAllFields(c *gin.Context) {
	var req CommitAllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "values map is required")
		return
	}
	if err := h.store.CommitAll(c.Param("id"), req.Values); err != nil {
		h.fail(c, err)
		return
	}
	ok(c, gin.H{"saved": len(req.Values)})
}

// HideField handles POST /api/claims/:id/fields/:name/hide
func (h *Handlers) HideField(c *gin.Context) {
	if err := h.store.HideField(c.Param("id"), c.Param("name")); err != nil {
		h.fail(c, err)
		return
	}
	ok(c, gin.H{"hidden": c.Param("name")})
}

// UnhideField handles POST /api/claims/:id/fields/:name/unhide
func (h *Handlers) UnhideField(c *gin.Context) {
	if err := h.store.UnhideField(c.Param("id"), c.Param("name")); err != nil {
		h.fail(c, err)
		return
	}
	ok(c, gin.H{"unhidden": c.Param("name")})
}

// RelabelRequest carries a display-label override
type RelabelRequest struct {
	Label string `json:"label" binding:"required"`
}

// RelabelField handles PUT /api/claims/:id/fields/:name/label
func (h *Handlers) RelabelField(c *gin.Context) {
	var req RelabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "label is required")
		return
	}
	if err := h.store.RelabelField(c.Param("id"), c.Param("name"), utils.SanitizeString(req.Label)); err != nil {
		h.fail(c, err)
		return
	}
	ok(c, gin.H{"label": req.Label})
}

// AddCustomFieldRequest names the target section
type AddCustomFieldRequest struct {
	SectionID string `json:"section_id" binding:"required"`
}

// AddCustomField handles POST /api/claims/:id/custom-fields
func (h *Handlers) AddCustomField(c *gin.Context) {
	var req AddCustomFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "section_id is required")
		return
	}
	desc, err := h.store.AddCustomField(c.Param("id"), req.SectionID)
	if err != nil {
		h.fail(c, err)
		return
	}
	created(c, desc)
}

// RemoveCustomField handles DELETE /api/claims/:id/custom-fields/:name
func (h *Handlers) RemoveCustomField(c *gin.Context) {
	if err := h.store.RemoveCustomField(c.Param("id"), c.Param("name")); err != nil {
		h.fail(c, err)
		return
	}
	ok(c, gin.H{"removed": c.Param("name")})
}
