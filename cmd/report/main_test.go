package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alumni-portal/backoffice/config"
	"github.com/alumni-portal/backoffice/internal/domain/entity"
	"github.com/alumni-portal/backoffice/internal/infra/db"
	"github.com/alumni-portal/backoffice/internal/integration/persistence"
)

func seedStore(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.Load()
	cfg.Database.Driver = db.DriverSQLite
	cfg.Database.SQLitePath = filepath.Join(t.TempDir(), "backoffice.db")
	cfg.Redis.URL = "redis://127.0.0.1:1/0"
	cfg.Report.Locale = "en"
	cfg.Report.DefaultSignatoryName = "Default Treasurer"

	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer database.Close()
	if err := database.Migrate(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	repo := persistence.NewDonationRepository(database.DB())
	for _, d := range []*entity.Donation{
		entity.NewDonation("Maria Santos", decimal.NewFromInt(1000), "PHP", "Books", entity.DonationCategoryLibrary, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)),
		entity.NewDonation("Jose Rizal", decimal.NewFromInt(5000), "PHP", "Grants", entity.DonationCategoryScholarship, time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)),
	} {
		if err := repo.Create(context.Background(), d); err != nil {
			t.Fatalf("failed to seed donation: %v", err)
		}
	}
	return cfg
}

func TestRun_Formats(t *testing.T) {
	cfg := seedStore(t)

	tests := []struct {
		format   string
		suffix   string
		contains string
	}{
		{"detailed", ".csv", "Date,Donor Name,Email,Amount"},
		{"summary", ".csv", "Metric,Value"},
		{"document", ".html", "Default Treasurer"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out := t.TempDir()
			path, err := run(context.Background(), cfg, options{format: tt.format, out: out})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.HasSuffix(path, tt.suffix) {
				t.Errorf("expected %s file, got %s", tt.suffix, path)
			}
			content, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("failed to read export: %v", err)
			}
			if !strings.Contains(string(content), tt.contains) {
				t.Errorf("expected export to contain %q", tt.contains)
			}
		})
	}
}

func TestRun_Errors(t *testing.T) {
	cfg := seedStore(t)

	tests := []struct {
		name string
		opts options
	}{
		{"unknown format", options{format: "pdf"}},
		{"bad date", options{format: "summary", from: "yesterday"}},
		{"bad section", options{format: "summary", sections: "weekly"}},
		{"empty export", options{format: "detailed", donor: "nobody"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.out = t.TempDir()
			if _, err := run(context.Background(), cfg, tt.opts); err == nil {
				t.Error("expected error")
			}
		})
	}
}
