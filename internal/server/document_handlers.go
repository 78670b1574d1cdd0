package server

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/djcoder02-glitch/claim-portal-backend/internal/models"
)

// ListDocuments handles GET /api/claims/:id/documents
func (h *Handlers) ListDocuments(c *gin.Context) {
	docs, err := h.documents.ListByClaim(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, docs)
}

// UploadDocument handles POST /api/claims/:id/documents. Multipart form
// with the file and an optional label that groups documents in reports.
// PDF uploads get their text layer extracted and stored alongside.
func (h *Handlers) UploadDocument(c *gin.Context) {
	claimID := c.Param("id")
	if _, err := h.claims.GetByID(claimID); err != nil {
		h.fail(c, err)
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

	label := c.PostForm("label")
	if label == "" {
		label = "General"
	}

	storedPath, err := h.objects.SaveDocument(claimID, header.Filename, content)
	if err != nil {
		h.fail(c, err)
		return
	}

	contentType := header.Header.Get("Content-Type")
	doc := &models.Document{
		ID:          uuid.New().String(),
		ClaimID:     claimID,
		FieldLabel:  label,
		FileName:    header.Filename,
		ContentType: contentType,
		SizeBytes:   header.Size,
		StoragePath: storedPath,
		UploadedAt:  time.Now().UTC(),
	}

	if h.extractor.SupportsContentType(contentType) {
		if abs, pathErr := h.objects.AbsolutePath(storedPath); pathErr == nil {
			text, exErr := h.extractor.ExtractText(abs)
			if exErr != nil {
				// extraction is best effort; the upload still succeeds
				h.logger.Warn("Text extraction failed",
					zap.String("claim_id", claimID),
					zap.String("file", header.Filename),
					zap.Error(exErr))
			} else {
				doc.ExtractedText = text
			}
		}
	}

	if err := h.documents.Create(doc); err != nil {
		h.fail(c, err)
		return
	}
	created(c, doc)
}

// DownloadDocument handles GET /api/documents/:docID/content
func (h *Handlers) DownloadDocument(c *gin.Context) {
	doc, err := h.documents.GetByID(c.Param("docID"))
	if err != nil {
		h.fail(c, err)
		return
	}

	content, err := h.objects.Read(doc.StoragePath)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+doc.FileName+`"`)
	contentType := doc.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(http.StatusOK, contentType, content)
}
