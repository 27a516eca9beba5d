package db

import (
	"path/filepath"
	"testing"

	"github.com/alumni-portal/backoffice/config"
)

func TestNewConnection_SQLite(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver:     DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "nested", "backoffice.db"),
	}

	database, err := NewConnection(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer database.Close()

	if err := database.Migrate(); err != nil {
		t.Fatalf("unexpected migration error: %v", err)
	}
	if !database.DB().Migrator().HasTable("donations") {
		t.Error("expected donations table")
	}
	if !database.HealthCheck() {
		t.Error("expected healthy database")
	}
}

func TestNewConnection_UnknownDriver(t *testing.T) {
	if _, err := NewConnection(&config.DatabaseConfig{Driver: "mongodb"}); err == nil {
		t.Error("expected unsupported driver error")
	}
}
