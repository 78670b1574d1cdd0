package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/djcoder02-glitch/claim-portal-backend/internal/assessment"
	"github.com/djcoder02-glitch/claim-portal-backend/internal/config"
	"github.com/djcoder02-glitch/claim-portal-backend/internal/export"
	"github.com/djcoder02-glitch/claim-portal-backend/internal/extract"
	"github.com/djcoder02-glitch/claim-portal-backend/internal/formdata"
	"github.com/djcoder02-glitch/claim-portal-backend/internal/report"
	"github.com/djcoder02-glitch/claim-portal-backend/internal/repository"
	"github.com/djcoder02-glitch/claim-portal-backend/internal/sections"
	"github.com/djcoder02-glitch/claim-portal-backend/internal/storage"
)

// Handlers contains all HTTP request handlers and their dependencies
type Handlers struct {
	claims      *repository.ClaimRepository
	policyTypes *repository.PolicyTypeRepository
	documents   *repository.DocumentRepository
	users       *repository.UserRepository
	store       *formdata.Store
	organizer   *sections.Organizer
	worksheet   *assessment.Service
	assembler   *report.Assembler
	renderer    *report.RenderClient
	objects     storage.ObjectStorage
	extractor   *extract.PDFExtractor
	exporter    *export.ExcelExporter
	authCfg     config.AuthConfig
	maxUpload   int64
	logger      *zap.Logger
}

// Deps bundles handler dependencies for construction
type Deps struct {
	Claims      *repository.ClaimRepository
	PolicyTypes *repository.PolicyTypeRepository
	Documents   *repository.DocumentRepository
	Users       *repository.UserRepository
	Store       *formdata.Store
	Organizer   *sections.Organizer
	Worksheet   *assessment.Service
	Assembler   *report.Assembler
	Renderer    *report.RenderClient
	Objects     storage.ObjectStorage
	Extractor   *extract.PDFExtractor
	Exporter    *export.ExcelExporter
	AuthCfg     config.AuthConfig
	MaxUploadMB int
	Logger      *zap.Logger
}

// NewHandlers creates the handler set
func NewHandlers(d Deps) *Handlers {
	return &Handlers{
		claims:      d.Claims,
		policyTypes: d.PolicyTypes,
		documents:   d.Documents,
		users:       d.Users,
		store:       d.Store,
		organizer:   d.Organizer,
		worksheet:   d.Worksheet,
		assembler:   d.Assembler,
		renderer:    d.Renderer,
		objects:     d.Objects,
		extractor:   d.Extractor,
		exporter:    d.Exporter,
		authCfg:     d.AuthCfg,
		maxUpload:   int64(d.MaxUploadMB) * 1024 * 1024,
		logger:      d.Logger,
	}
}

// Response is the standard JSON envelope
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Success: true, Data: data})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Response{Success: false, Error: msg})
}

// fail maps core errors onto HTTP statuses
func (h *Handlers) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, Response{Success: false, Error: "not found"})
	case errors.Is(err, repository.ErrVersionConflict):
		c.JSON(http.StatusConflict, Response{Success: false, Error: "concurrent update, please retry"})
	case errors.Is(err, sections.ErrSectionNotFound):
		c.JSON(http.StatusNotFound, Response{Success: false, Error: "section not found"})
	case errors.Is(err, sections.ErrStandardSection):
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "standard sections cannot be removed"})
	case errors.Is(err, sections.ErrTemplateUnknown):
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "unknown section template"})
	default:
		h.logger.Error("Request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Success: false, Error: err.Error()})
	}
}

// HealthResponse is the health check payload
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(c *gin.Context) {
	ok(c, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   "1.0.0",
	})
}
