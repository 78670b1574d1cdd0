package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/subosito/gotenv"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/djcoder02-glitch/claim-portal-backend/internal/assessment"
	"github.com/djcoder02-glitch/claim-portal-backend/internal/autosave"
	"github.com/djcoder02-glitch/claim-portal-backend/internal/config"
	"github.com/djcoder02-glitch/claim-portal-backend/internal/export"
	"github.com/djcoder02-glitch/claim-portal-backend/internal/extract"
	"github.com/djcoder02-glitch/claim-portal-backend/internal/formdata"
	"github.com/djcoder02-glitch/claim-portal-backend/internal/models"
	"github.com/djcoder02-glitch/claim-portal-backend/internal/report"
	"github.com/djcoder02-glitch/claim-portal-backend/internal/repository"
	"github.com/djcoder02-glitch/claim-portal-backend/internal/sections"
	"github.com/djcoder02-glitch/claim-portal-backend/internal/server"
	"github.com/djcoder02-glitch/claim-portal-backend/internal/storage"
	"github.com/djcoder02-glitch/claim-portal-backend/pkg/database"
	"github.com/djcoder02-glitch/claim-portal-backend/pkg/utils"
)

func main() {
	// Load .env if present, then configuration
	_ = gotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := utils.NewLogger(utils.LoggerConfig{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Claim Portal",
		zap.String("version", "1.0.0"),
		zap.Int("port", cfg.Server.Port))

	// Initialize database and apply migrations
	db, err := database.New(database.Config{
		Path:            cfg.Database.Path,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	migrator := database.NewMigrator(db, logger)
	if err := migrator.Run(); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Initialize repositories
	claimRepo := repository.NewClaimRepository(db.DB, logger)
	policyTypeRepo := repository.NewPolicyTypeRepository(db.DB, logger)
	documentRepo := repository.NewDocumentRepository(db.DB, logger)
	userRepo := repository.NewUserRepository(db.DB, logger)

	if err := bootstrapAdmin(userRepo, logger); err != nil {
		logger.Fatal("Failed to bootstrap admin user", zap.Error(err))
	}

	// Core components
	store := formdata.NewStore(claimRepo, logger)
	organizer := sections.NewOrganizer(store, logger)
	scheduler := autosave.NewScheduler(cfg.Autosave.Delay, logger)
	worksheet := assessment.NewService(store, scheduler, logger)

	assembler := report.NewAssembler(cfg.Report.CompanyName, logger)
	renderer := report.NewRenderClient(report.RenderConfig{
		BaseURL:  cfg.Render.BaseURL,
		PDFPath:  cfg.Render.PDFPath,
		HTMLPath: cfg.Render.HTMLPath,
		Timeout:  cfg.Render.Timeout,
	}, logger)

	objects, err := storage.NewLocalStorage(cfg.Storage.BaseDir, logger)
	if err != nil {
		logger.Fatal("Failed to initialize storage", zap.Error(err))
	}

	extractor := extract.NewPDFExtractor(logger)
	exporter := export.NewExcelExporter(cfg.Report.CompanyName, logger)

	handlers := server.NewHandlers(server.Deps{
		Claims:      claimRepo,
		PolicyTypes: policyTypeRepo,
		Documents:   documentRepo,
		Users:       userRepo,
		Store:       store,
		Organizer:   organizer,
		Worksheet:   worksheet,
		Assembler:   assembler,
		Renderer:    renderer,
		Objects:     objects,
		Extractor:   extractor,
		Exporter:    exporter,
		AuthCfg:     cfg.Auth,
		MaxUploadMB: cfg.Storage.MaxUploadMB,
		Logger:      logger,
	})

	srv := server.NewServer(cfg.Server, cfg.Auth, handlers, logger)

	// Run until interrupted, then drain pending autosaves before exit
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		logger.Error("Server exited with error", zap.Error(err))
	}

	scheduler.Stop()
	logger.Info("Shutdown complete")
}

// bootstrapAdmin creates the initial admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD when no user with that email exists yet.
func bootstrapAdmin(users *repository.UserRepository, logger *zap.Logger) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	if _, err := users.GetByEmail(email); err == nil {
		return nil
	} else if err != repository.ErrNotFound {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	if err := users.Create(&models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}); err != nil {
		return err
	}

	logger.Info("Admin user created", zap.String("email", email))
	return nil
}
