package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/djcoder02-glitch/claim-portal-backend/internal/report"
)

// ReportRequest carries optional session-local presentation overrides.
// They apply to this render only and are never persisted.
type ReportRequest struct {
	Order   []string        `json:"order"`
	Visible map[string]bool `json:"visible"`
}

func (r ReportRequest) overrides() *report.Overrides {
	if len(r.Order) == 0 && len(r.Visible) == 0 {
		return nil
	}
	return &report.Overrides{Order: r.Order, Visible: r.Visible}
}

// buildReport flushes pending worksheet edits, loads the claim's full state
// and assembles the report document.
func (h *Handlers) buildReport(c *gin.Context) (*report.Document, string, bool) {
	claimID := c.Param("id")

	var req ReportRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid report payload")
			return nil, "", false
		}
	}

	h.worksheet.Flush(claimID)

	claim, err := h.claims.GetByID(claimID)
	if err != nil {
		h.fail(c, err)
		return nil, "", false
	}
	policyType, err := h.policyTypes.GetByID(claim.PolicyTypeID)
	if err != nil {
		h.fail(c, err)
		return nil, "", false
	}
	fd, _, err := h.store.Get(claimID)
	if err != nil {
		h.fail(c, err)
		return nil, "", false
	}
	docs, err := h.documents.ListByClaim(claimID)
	if err != nil {
		h.fail(c, err)
		return nil, "", false
	}

	doc := h.assembler.Assemble(report.Input{
		Claim:      claim,
		PolicyType: policyType,
		FormData:   fd,
		Documents:  docs,
		Overrides:  req.overrides(),
	})
	return doc, claim.ClaimNumber, true
}

// AssembleReport handles POST /api/claims/:id/report. Returns the report
// document JSON without rendering it.
func (h *Handlers) AssembleReport(c *gin.Context) {
	doc, _, okay := h.buildReport(c)
	if !okay {
		return
	}
	ok(c, doc)
}

// RenderReportPDF handles POST /api/claims/:id/report/pdf
func (h *Handlers) RenderReportPDF(c *gin.Context) {
	doc, claimNumber, okay := h.buildReport(c)
	if !okay {
		return
	}

	content, err := h.renderer.RenderPDF(c.Request.Context(), doc)
	if err != nil {
		c.JSON(http.StatusBadGateway, Response{Success: false, Error: err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="report_%s.pdf"`, claimNumber))
	c.Data(http.StatusOK, "application/pdf", content)
}

// RenderReportHTML handles POST /api/claims/:id/report/html
func (h *Handlers) RenderReportHTML(c *gin.Context) {
	doc, _, okay := h.buildReport(c)
	if !okay {
		return
	}

	html, err := h.renderer.RenderHTML(c.Request.Context(), doc)
	if err != nil {
		c.JSON(http.StatusBadGateway, Response{Success: false, Error: err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
