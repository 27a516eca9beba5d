// Package main is the command-line donation report exporter.
//
// It reads the donation store configured through the environment and writes the
// requested export into an output directory:
//
//	report --format summary --from 2024-01-01 --to 2024-12-31 --sections category,monthly --out ./exports
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/alumni-portal/backoffice/config"
	"github.com/alumni-portal/backoffice/internal/application/usecase/report"
	"github.com/alumni-portal/backoffice/internal/application/usecase/settings"
	"github.com/alumni-portal/backoffice/internal/domain/entity"
	domainerror "github.com/alumni-portal/backoffice/internal/domain/error"
	"github.com/alumni-portal/backoffice/internal/infra/cache"
	"github.com/alumni-portal/backoffice/internal/infra/db"
	"github.com/alumni-portal/backoffice/internal/infra/dependency"
	"github.com/alumni-portal/backoffice/internal/integration/delivery"
	"github.com/alumni-portal/backoffice/internal/integration/entrypoint/dto"
	"github.com/alumni-portal/backoffice/internal/integration/persistence"
	settingsstore "github.com/alumni-portal/backoffice/internal/integration/settings"
)

type options struct {
	format   string
	out      string
	from     string
	to       string
	category string
	donor    string
	sections string
	verbose  bool
}

func main() {
	_ = godotenv.Load()

	var opts options
	flags := pflag.NewFlagSet("report", pflag.ExitOnError)
	flags.StringVarP(&opts.format, "format", "f", "summary", "export format: detailed, summary or document")
	flags.StringVarP(&opts.out, "out", "o", ".", "output directory")
	flags.StringVar(&opts.from, "from", "", "first donation date to include (YYYY-MM-DD)")
	flags.StringVar(&opts.to, "to", "", "last donation date to include (YYYY-MM-DD)")
	flags.StringVarP(&opts.category, "category", "c", "", "only include this category")
	flags.StringVarP(&opts.donor, "donor", "d", "", "only include donors whose name contains this text")
	flags.StringVarP(&opts.sections, "sections", "s", "", "comma-separated sections: category,monthly,yearly,detailed (default all)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log progress")
	_ = flags.Parse(os.Args[1:])

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	path, err := run(ctx, config.Load(), opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "report:", err)
		var reportErr *domainerror.ReportError
		if errors.As(err, &reportErr) && reportErr.Code == domainerror.ErrCodeEmptyExport {
			os.Exit(2)
		}
		os.Exit(1)
	}
	fmt.Println(path)
}

func run(ctx context.Context, cfg *config.Config, opts options) (string, error) {
	query := dto.ReportQuery{
		StartDate: opts.from,
		EndDate:   opts.to,
		Category:  opts.category,
		Donor:     opts.donor,
		Sections:  opts.sections,
	}
	filter, err := query.ToFilter()
	if err != nil {
		return "", err
	}
	sections, err := query.ToSections()
	if err != nil {
		return "", err
	}

	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		return "", err
	}
	defer database.Close()

	out, err := delivery.NewDirectory(opts.out)
	if err != nil {
		return "", err
	}

	exporter, err := dependency.NewReportExporter(&cfg.Report)
	if err != nil {
		return "", err
	}
	donationRepo := persistence.NewDonationRepository(database.DB())

	var output *report.ExportOutput
	switch strings.ToLower(opts.format) {
	case "detailed":
		output, err = report.NewExportDetailedCSVUseCase(donationRepo, exporter, nil).Execute(ctx, report.ExportDetailedCSVInput{
			Filter:   filter,
			Delivery: out,
		})
	case "summary":
		output, err = report.NewExportSummaryCSVUseCase(donationRepo, exporter, nil).Execute(ctx, report.ExportSummaryCSVInput{
			Filter:   filter,
			Sections: sections,
			Delivery: out,
		})
	case "document":
		getSignatory, closeStore := signatorySource(cfg)
		defer closeStore()

		signatory, err := getSignatory.Execute(ctx)
		if err != nil {
			return "", err
		}
		output, err = report.NewExportDocumentUseCase(donationRepo, exporter, nil).Execute(ctx, report.ExportDocumentInput{
			Filter:    filter,
			Sections:  sections,
			Signatory: signatory.Signatory,
			Surface:   out,
		})
		if err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("unknown format %q, expected detailed, summary or document", opts.format)
	}
	if err != nil {
		return "", err
	}

	slog.Info("Report exported", "file", output.Filename, "donations", output.DonationCount, "bytes", output.Size)
	return out.Path(output.Filename), nil
}

// signatorySource reads the saved signatory from Redis, falling back to the configured
// defaults when Redis is not reachable from the machine running the export.
func signatorySource(cfg *config.Config) (*settings.GetSignatoryUseCase, func()) {
	defaults := dependency.DefaultSignatory(&cfg.Report)

	client, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		slog.Warn("Settings store unavailable, using default signatory", "error", err)
		return settings.NewGetSignatoryUseCase(staticSignatory{}, defaults), func() {}
	}
	return settings.NewGetSignatoryUseCase(settingsstore.NewRedisSignatoryStore(client), defaults), func() { _ = client.Close() }
}

// staticSignatory is a signatory store that never has a saved value.
type staticSignatory struct{}

func (staticSignatory) Get(ctx context.Context) (entity.Signatory, bool, error) {
	return entity.Signatory{}, false, nil
}

func (staticSignatory) Save(ctx context.Context, signatory entity.Signatory) error {
	return errors.New("settings store unavailable")
}
