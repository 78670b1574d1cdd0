package server

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/djcoder02-glitch/claim-portal-backend/internal/models"
	"github.com/djcoder02-glitch/claim-portal-backend/internal/sections"
)

// ListSections handles GET /api/claims/:id/sections
func (h *Handlers) ListSections(c *gin.Context) {
	secs, err := h.organizer.List(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, secs)
}

// ListSectionTemplates handles GET /api/claims/:id/sections/templates
func (h *Handlers) ListSectionTemplates(c *gin.Context) {
	ok(c, sections.Templates())
}

// CreateSectionRequest is the section creation payload. TemplateID switches
// to template-based creation; Name then overrides the template name.
type CreateSectionRequest struct {
	Name       string `json:"name"`
	ColorTag   string `json:"color"`
	TemplateID string `json:"template_id"`
}

// CreateSection handles POST /api/claims/:id/sections
func (h *Handlers) CreateSection(c *gin.Context) {
	var req CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid section payload")
		return
	}

	var section *models.Section
	var err error
	if req.TemplateID != "" {
		section, err = h.organizer.CreateSectionFromTemplate(c.Param("id"), req.TemplateID, req.Name)
	} else {
		if req.Name == "" {
			badRequest(c, "section name is required")
			return
		}
		section, err = h.organizer.CreateSection(c.Param("id"), req.Name, req.ColorTag)
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	created(c, section)
}

// ReorderRequest lists every section id in the new visual order
type ReorderRequest struct {
	Order []string `json:"order" binding:"required"`
}

// ReorderSections handles PUT /api/claims/:id/sections/order
func (h *Handlers) ReorderSections(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "order array is required")
		return
	}
	if err := h.organizer.Reorder(c.Param("id"), req.Order); err != nil {
		h.fail(c, err)
		return
	}
	secs, err := h.organizer.List(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, secs)
}

// RemoveSection handles DELETE /api/claims/:id/sections/:sectionID
func (h *Handlers) RemoveSection(c *gin.Context) {
	if err := h.organizer.RemoveSection(c.Param("id"), c.Param("sectionID")); err != nil {
		h.fail(c, err)
		return
	}
	ok(c, gin.H{"removed": c.Param("sectionID")})
}

// ToggleSectionCollapsed handles POST /api/claims/:id/sections/:sectionID/collapse
func (h *Handlers) ToggleSectionCollapsed(c *gin.Context) {
	if err := h.organizer.ToggleCollapsed(c.Param("id"), c.Param("sectionID")); err != nil {
		h.fail(c, err)
		return
	}
	ok(c, gin.H{"toggled": c.Param("sectionID")})
}

// AddSectionField handles POST /api/claims/:id/sections/:sectionID/fields
func (h *Handlers) AddSectionField(c *gin.Context) {
	desc, err := h.organizer.AddField(c.Param("id"), c.Param("sectionID"))
	if err != nil {
		h.fail(c, err)
		return
	}
	created(c, desc)
}

// AddTableRequest gives the new grid's dimensions
type AddTableRequest struct {
	Name string `json:"name"`
	Rows int    `json:"rows" binding:"required"`
	Cols int    `json:"cols" binding:"required"`
}

// AddSectionTable handles POST /api/claims/:id/sections/:sectionID/tables
func (h *Handlers) AddSectionTable(c *gin.Context) {
	var req AddTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "rows and cols are required")
		return
	}
	table, err := h.organizer.AddTable(c.Param("id"), c.Param("sectionID"), req.Name, req.Rows, req.Cols)
	if err != nil {
		h.fail(c, err)
		return
	}
	created(c, table)
}

// UpdateTableRequest replaces a table's cells
type UpdateTableRequest struct {
	Data [][]models.TableCell `json:"data" binding:"required"`
}

// UpdateSectionTable handles PUT /api/claims/:id/sections/:sectionID/tables/:tableID
func (h *Handlers) UpdateSectionTable(c *gin.Context) {
	var req UpdateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "data grid is required")
		return
	}
	if err := h.organizer.UpdateTable(c.Param("id"), c.Param("sectionID"), c.Param("tableID"), req.Data); err != nil {
		h.fail(c, err)
		return
	}
	ok(c, gin.H{"updated": c.Param("tableID")})
}

// UploadSectionImage handles POST /api/claims/:id/sections/:sectionID/images.
// Multipart form with one file and a slot index (0-5).
func (h *Handlers) UploadSectionImage(c *gin.Context) {
	slot, err := strconv.Atoi(c.PostForm("slot"))
	if err != nil || slot < 0 || slot >= models.SectionImageSlots {
		badRequest(c, fmt.Sprintf("slot must be 0-%d", models.SectionImageSlots-1))
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		badRequest(c, "file is required")
		return
	}
	defer file.Close()

	if header.Size > h.maxUpload {
		c.JSON(http.StatusRequestEntityTooLarge, Response{Success: false, Error: "file too large"})
		return
	}

	content, err := io.ReadAll(io.LimitReader(file, h.maxUpload))
	if err != nil {
		h.fail(c, err)
		return
	}

	claimID := c.Param("id")
	sectionID := c.Param("sectionID")

	url, err := h.objects.SaveSectionImage(claimID, sectionID, slot, header.Filename, content)
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := h.organizer.SetSectionImage(claimID, sectionID, slot, url); err != nil {
		h.fail(c, err)
		return
	}
	created(c, gin.H{"url": url})
}
