package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/djcoder02-glitch/claim-portal-backend/internal/assessment"
	"github.com/djcoder02-glitch/claim-portal-backend/internal/models"
)

// GetAssessment handles GET /api/claims/:id/assessment
func (h *Handlers) GetAssessment(c *gin.Context) {
	a, err := h.worksheet.Get(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, a)
}

// UpdateSparesRequest carries one or both spares tables
type UpdateSparesRequest struct {
	Spares              *models.SparesTable `json:"spares"`
	SupplementarySpares *models.SparesTable `json:"supplementary_spares"`
}

// UpdateSpares handles PUT /api/claims/:id/assessment/spares
func (h *Handlers) UpdateSpares(c *gin.Context) {
	var req UpdateSparesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid spares payload")
		return
	}
	a, err := h.worksheet.UpdateSpares(c.Param("id"), req.Spares, req.SupplementarySpares)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, a)
}

// UpdateLabourRequest carries one or both labour tables
type UpdateLabourRequest struct {
	Labour              *models.LabourTable `json:"labour"`
	SupplementaryLabour *models.LabourTable `json:"supplementary_labour"`
}

// UpdateLabour handles PUT /api/claims/:id/assessment/labour
func (h *Handlers) UpdateLabour(c *gin.Context) {
	var req UpdateLabourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid labour payload")
		return
	}
	a, err := h.worksheet.UpdateLabour(c.Param("id"), req.Labour, req.SupplementaryLabour)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, a)
}

// UpdateSummaryRequest carries the user-editable summary fields
type UpdateSummaryRequest struct {
	Header       *models.AssessmentHeader `json:"header"`
	SalvageValue *float64                 `json:"salvage_value"`
	PolicyExcess *float64                 `json:"policy_excess"`
}

// UpdateAssessmentSummary handles PUT /api/claims/:id/assessment/summary
func (h *Handlers) UpdateAssessmentSummary(c *gin.Context) {
	var req UpdateSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid summary payload")
		return
	}
	a, err := h.worksheet.UpdateSummary(c.Param("id"), assessment.SummaryInput{
		Header:       req.Header,
		SalvageValue: req.SalvageValue,
		PolicyExcess: req.PolicyExcess,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, a)
}

// ExportAssessment handles GET /api/claims/:id/assessment/export.
// Pending worksheet edits are flushed first so the workbook reflects
// the latest state.
func (h *Handlers) ExportAssessment(c *gin.Context) {
	claimID := c.Param("id")
	h.worksheet.Flush(claimID)

	claim, err := h.claims.GetByID(claimID)
	if err != nil {
		h.fail(c, err)
		return
	}
	a, err := h.worksheet.Get(claimID)
	if err != nil {
		h.fail(c, err)
		return
	}

	content, err := h.exporter.Export(claim, a)
	if err != nil {
		h.fail(c, err)
		return
	}

	filename := fmt.Sprintf("assessment_%s_%s.xlsx", claim.ClaimNumber, time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}
