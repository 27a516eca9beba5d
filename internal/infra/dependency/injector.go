// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/alumni-portal/backoffice/config"
	"github.com/alumni-portal/backoffice/internal/application/adapter"
	"github.com/alumni-portal/backoffice/internal/application/usecase/donation"
	"github.com/alumni-portal/backoffice/internal/application/usecase/report"
	"github.com/alumni-portal/backoffice/internal/application/usecase/settings"
	"github.com/alumni-portal/backoffice/internal/domain/entity"
	"github.com/alumni-portal/backoffice/internal/infra/cache"
	"github.com/alumni-portal/backoffice/internal/infra/server/router"
	"github.com/alumni-portal/backoffice/internal/integration/adapters"
	"github.com/alumni-portal/backoffice/internal/integration/email"
	"github.com/alumni-portal/backoffice/internal/integration/email/templates"
	"github.com/alumni-portal/backoffice/internal/integration/entrypoint/controller"
	"github.com/alumni-portal/backoffice/internal/integration/entrypoint/middleware"
	"github.com/alumni-portal/backoffice/internal/integration/export"
	"github.com/alumni-portal/backoffice/internal/integration/persistence"
	settingsstore "github.com/alumni-portal/backoffice/internal/integration/settings"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
	RateLimiter *middleware.RateLimiter
}

// Options carries the infrastructure the injector wires into the application.
// Archive may be nil, which disables export archiving.
type Options struct {
	DB            *gorm.DB
	DBHealthCheck controller.HealthChecker
	Redis         *redis.Client
	Archive       adapter.ExportArchive
	EmailSender   adapter.EmailSender
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, opts Options) (*Injector, error) {
	// Create repositories and stores
	donationRepo := persistence.NewDonationRepository(opts.DB)
	emailQueueRepo := persistence.NewEmailQueueRepository(opts.DB)
	signatoryStore := settingsstore.NewRedisSignatoryStore(opts.Redis)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer)
	exporter, err := NewReportExporter(&cfg.Report)
	if err != nil {
		return nil, err
	}
	emailService := email.NewService(emailQueueRepo, cfg.Report.DefaultOrganization)

	emailSender := opts.EmailSender
	if emailSender == nil {
		emailSender = NewEmailSender(&cfg.Email)
	}
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	worker := email.NewWorker(emailQueueRepo, emailSender, renderer, email.WorkerConfig{
		PollInterval:    cfg.Email.PollInterval,
		BatchSize:       cfg.Email.BatchSize,
		CleanupInterval: email.DefaultWorkerConfig().CleanupInterval,
		RetentionDays:   email.DefaultWorkerConfig().RetentionDays,
	})

	// Create donation use cases
	listDonationsUseCase := donation.NewListDonationsUseCase(donationRepo)
	createDonationUseCase := donation.NewCreateDonationUseCase(donationRepo)
	getDonationUseCase := donation.NewGetDonationUseCase(donationRepo)
	updateDonationUseCase := donation.NewUpdateDonationUseCase(donationRepo)
	deleteDonationUseCase := donation.NewDeleteDonationUseCase(donationRepo)
	toggleVisibilityUseCase := donation.NewToggleVisibilityUseCase(donationRepo)
	resyncArchiveUseCase := donation.NewResyncArchiveUseCase(donationRepo)

	// Create report use cases
	generateReportUseCase := report.NewGenerateReportUseCase(donationRepo)
	exportDetailedUseCase := report.NewExportDetailedCSVUseCase(donationRepo, exporter, opts.Archive)
	exportSummaryUseCase := report.NewExportSummaryCSVUseCase(donationRepo, exporter, opts.Archive)
	exportDocumentUseCase := report.NewExportDocumentUseCase(donationRepo, exporter, opts.Archive)
	emailReportUseCase := report.NewEmailReportUseCase(donationRepo, exporter, emailService, cfg.Report.Title)

	// Create settings use cases
	getSignatoryUseCase := settings.NewGetSignatoryUseCase(signatoryStore, DefaultSignatory(&cfg.Report))
	updateSignatoryUseCase := settings.NewUpdateSignatoryUseCase(signatoryStore)

	// Create controllers
	healthController := controller.NewHealthController(opts.DBHealthCheck, cache.HealthCheck(opts.Redis))

	donationController := controller.NewDonationController(
		listDonationsUseCase,
		createDonationUseCase,
		getDonationUseCase,
		updateDonationUseCase,
		deleteDonationUseCase,
		toggleVisibilityUseCase,
		resyncArchiveUseCase,
	)

	reportController := controller.NewReportController(
		generateReportUseCase,
		exportDetailedUseCase,
		exportSummaryUseCase,
		exportDocumentUseCase,
		emailReportUseCase,
		getSignatoryUseCase,
	)

	settingsController := controller.NewSettingsController(
		getSignatoryUseCase,
		updateSignatoryUseCase,
	)

	// Create middleware
	exportRateLimiter := middleware.NewRateLimiter(cfg.Report.ExportRateLimit, cfg.Report.ExportRateWindow)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(healthController, donationController, reportController, settingsController, exportRateLimiter, authMiddleware)

	return &Injector{
		Config:      cfg,
		DB:          opts.DB,
		Router:      r,
		EmailWorker: worker,
		RateLimiter: exportRateLimiter,
	}, nil
}

// NewReportExporter builds the CSV and document exporter from the report settings.
func NewReportExporter(cfg *config.ReportConfig) (*export.ReportExporter, error) {
	exporter, err := export.NewReportExporter(export.DocumentConfig{
		Title:            cfg.Title,
		BannerURL:        cfg.BannerURL,
		ClosingStatement: cfg.ClosingStatement,
		AutoPrint:        cfg.AutoPrint,
	}, cfg.Locale, cfg.CurrencySymbol)
	if err != nil {
		return nil, fmt.Errorf("failed to create report exporter: %w", err)
	}
	return exporter, nil
}

// DefaultSignatory returns the signatory configured for deployments where none was saved yet.
func DefaultSignatory(cfg *config.ReportConfig) entity.Signatory {
	return entity.Signatory{
		Name:         cfg.DefaultSignatoryName,
		Title:        cfg.DefaultSignatoryTitle,
		Organization: cfg.DefaultOrganization,
		Address:      cfg.DefaultAddress,
	}.Normalize()
}

// NewEmailSender returns the Resend client, or a logging mock when no API key is configured.
func NewEmailSender(cfg *config.EmailConfig) adapter.EmailSender {
	if cfg.ResendAPIKey == "" {
		slog.Warn("RESEND_API_KEY not set, report emails will not leave this process")
		return email.NewMockEmailSender()
	}
	return email.NewResendClient(cfg.ResendAPIKey, cfg.FromName, cfg.FromEmail)
}
