// Package server is the HTTP adapter: it translates REST requests into core
// calls and wraps results in the standard response envelope.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/djcoder02-glitch/claim-portal-backend/internal/config"
)

// Server is the HTTP server adapter
type Server struct {
	cfg        config.ServerConfig
	httpServer *http.Server
	router     *gin.Engine
	handlers   *Handlers
	authCfg    config.AuthConfig
	logger     *zap.Logger
}

// NewServer creates the HTTP server around the given handlers
func NewServer(cfg config.ServerConfig, authCfg config.AuthConfig, handlers *Handlers, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	s := &Server{
		cfg:      cfg,
		router:   router,
		handlers: handlers,
		authCfg:  authCfg,
		logger:   logger,
	}

	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(requestLogger(s.logger))

	corsCfg := cors.DefaultConfig()
	if len(s.cfg.CORSOrigins) == 1 && s.cfg.CORSOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = s.cfg.CORSOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	s.router.Use(cors.New(corsCfg))
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handlers.HealthCheck)

	api := s.router.Group("/api")

	api.POST("/auth/login", s.handlers.Login)

	authed := api.Group("")
	authed.Use(AuthRequired(s.authCfg.JWTSecret))
	{
		authed.GET("/auth/me", s.handlers.Me)

		authed.GET("/policy-types", s.handlers.ListPolicyTypes)

		authed.GET("/claims", s.handlers.ListClaims)
		authed.POST("/claims", s.handlers.CreateClaim)
		authed.GET("/claims/:id", s.handlers.GetClaim)
		authed.PATCH("/claims/:id/status", s.handlers.UpdateClaimStatus)
		authed.PATCH("/claims/:id/amount", s.handlers.UpdateClaimAmount)

		authed.GET("/claims/:id/draft", s.handlers.GetDraft)
		authed.PUT("/claims/:id/fields", s.handlers.CommitAllFields)
		authed.PUT("/claims/:id/fields/:name", s.handlers.CommitField)
		authed.POST("/claims/:id/fields/:name/hide", s.handlers.HideField)
		authed.POST("/claims/:id/fields/:name/unhide", s.handlers.UnhideField)
		authed.PUT("/claims/:id/fields/:name/label", s.handlers.RelabelField)
		authed.POST("/claims/:id/custom-fields", s.handlers.AddCustomField)
		authed.DELETE("/claims/:id/custom-fields/:name", s.handlers.RemoveCustomField)

		authed.GET("/claims/:id/sections", s.handlers.ListSections)
		authed.GET("/claims/:id/sections/templates", s.handlers.ListSectionTemplates)
		authed.POST("/claims/:id/sections", s.handlers.CreateSection)
		authed.PUT("/claims/:id/sections/order", s.handlers.ReorderSections)
		authed.DELETE("/claims/:id/sections/:sectionID", s.handlers.RemoveSection)
		authed.POST("/claims/:id/sections/:sectionID/collapse", s.handlers.ToggleSectionCollapsed)
		authed.POST("/claims/:id/sections/:sectionID/fields", s.handlers.AddSectionField)
		authed.POST("/claims/:id/sections/:sectionID/tables", s.handlers.AddSectionTable)
		authed.PUT("/claims/:id/sections/:sectionID/tables/:tableID", s.handlers.UpdateSectionTable)
		authed.POST("/claims/:id/sections/:sectionID/images", s.handlers.UploadSectionImage)

		authed.GET("/claims/:id/assessment", s.handlers.GetAssessment)
		authed.PUT("/claims/:id/assessment/spares", s.handlers.UpdateSpares)
		authed.PUT("/claims/:id/assessment/labour", s.handlers.UpdateLabour)
		authed.PUT("/claims/:id/assessment/summary", s.handlers.UpdateAssessmentSummary)
		authed.GET("/claims/:id/assessment/export", s.handlers.ExportAssessment)

		authed.GET("/claims/:id/documents", s.handlers.ListDocuments)
		authed.POST("/claims/:id/documents", s.handlers.UploadDocument)
		authed.GET("/documents/:docID/content", s.handlers.DownloadDocument)

		authed.POST("/claims/:id/report", s.handlers.AssembleReport)
		authed.POST("/claims/:id/report/pdf", s.handlers.RenderReportPDF)
		authed.POST("/claims/:id/report/html", s.handlers.RenderReportHTML)
	}

	admin := api.Group("")
	admin.Use(AuthRequired(s.authCfg.JWTSecret), AdminRequired())
	{
		admin.POST("/auth/register", s.handlers.Register)
		admin.DELETE("/claims/:id", s.handlers.DeleteClaim)
		admin.POST("/policy-types", s.handlers.CreatePolicyType)
		admin.PUT("/policy-types/:id", s.handlers.UpdatePolicyType)
		admin.DELETE("/policy-types/:id", s.handlers.DeletePolicyType)
	}
}

// Start runs the server until ctx is cancelled
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("HTTP server shutdown requested")
		return s.Stop()
	case err := <-errCh:
		s.logger.Error("HTTP server error", zap.Error(err))
		return err
	}
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop() error {
	if s.httpServer == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("HTTP server shutdown error", zap.Error(err))
		return err
	}

	s.logger.Info("HTTP server stopped")
	return nil
}

// Router exposes the gin engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.String("latency", time.Since(start).String()),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
