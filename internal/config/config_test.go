package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	// An empty directory exercises the defaults path; a missing file is not
	// an error.
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Address != ":8080" {
		t.Errorf("server.address = %q", cfg.Server.Address)
	}
	if cfg.Database.URI != "mongodb://localhost:27017" {
		t.Errorf("database.uri = %q", cfg.Database.URI)
	}
	if cfg.Database.Name != "mindful_media" {
		t.Errorf("database.name = %q", cfg.Database.Name)
	}
	if cfg.Admin.APIBase != "http://localhost:8080" {
		t.Errorf("admin.api_base = %q", cfg.Admin.APIBase)
	}
	if cfg.JWT.Expiration.Hours() != 1 {
		t.Errorf("jwt.expiration = %v", cfg.JWT.Expiration)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  address: ":9090"
database:
  name: "media_test"
admin:
  api_base: "http://media.internal:9090"
  email: "admin@example.com"
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Address != ":9090" {
		t.Errorf("server.address = %q", cfg.Server.Address)
	}
	if cfg.Database.Name != "media_test" {
		t.Errorf("database.name = %q", cfg.Database.Name)
	}
	if cfg.Admin.Email != "admin@example.com" {
		t.Errorf("admin.email = %q", cfg.Admin.Email)
	}
	// Unset keys still fall back to defaults.
	if cfg.Database.URI != "mongodb://localhost:27017" {
		t.Errorf("database.uri = %q", cfg.Database.URI)
	}
}
