package config_test

import (
	"testing"

	"github.com/toolkithub/accounts/internal/config"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_TYPE", "mysql")
	t.Setenv("DB_DATABASE", "accounts")
	t.Setenv("DB_USER", "accounts")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("AUTH_MODE", "token")
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("PORT", "")
	t.Setenv("ADMIN_IDENTITIES", "")
	t.Setenv("DEFAULT_CREDIT_ALLOWANCE", "")
	t.Setenv("CATALOG_AUTO_INIT", "")
}

func TestLoadDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Port != "3000" {
		t.Errorf("Expected default port 3000, got %s", cfg.Port)
	}
	if cfg.DefaultCreditAllowance != 100 {
		t.Errorf("Expected default allowance 100, got %d", cfg.DefaultCreditAllowance)
	}
	if !cfg.CatalogAutoInit {
		t.Error("Expected catalog auto-init on by default")
	}
	if cfg.AdminIdentities != nil {
		t.Errorf("Expected no admin identities, got %v", cfg.AdminIdentities)
	}
}

func TestLoadAdminIdentities(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("ADMIN_IDENTITIES", "id-1, id-2,,id-3 ")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if len(cfg.AdminIdentities) != 3 {
		t.Fatalf("Expected 3 admin identities, got %v", cfg.AdminIdentities)
	}
	if cfg.AdminIdentities[0] != "id-1" || cfg.AdminIdentities[1] != "id-2" || cfg.AdminIdentities[2] != "id-3" {
		t.Errorf("Expected trimmed identities, got %v", cfg.AdminIdentities)
	}
}

func TestLoadRequiresDatabase(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DB_DATABASE", "")

	if _, err := config.Load(); err == nil {
		t.Error("Expected error for missing DB_DATABASE")
	}
}

func TestLoadSqliteSkipsUser(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DB_TYPE", "sqlite")
	t.Setenv("DB_USER", "")

	if _, err := config.Load(); err != nil {
		t.Errorf("Expected sqlite to not require DB_USER, got: %v", err)
	}
}

func TestLoadAuthorizerModeValidation(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("AUTH_MODE", "authorizer")
	t.Setenv("AUTHZ_URL", "")
	t.Setenv("AUTHZ_CLIENT_ID", "")

	if _, err := config.Load(); err == nil {
		t.Error("Expected error for missing AUTHZ_URL in authorizer mode")
	}

	t.Setenv("AUTHZ_URL", "http://localhost:8080")
	if _, err := config.Load(); err == nil {
		t.Error("Expected error for missing AUTHZ_CLIENT_ID in authorizer mode")
	}

	t.Setenv("AUTHZ_CLIENT_ID", "client-id")
	if _, err := config.Load(); err != nil {
		t.Errorf("Expected valid authorizer config, got: %v", err)
	}
}

func TestLoadRejectsUnknownAuthMode(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("AUTH_MODE", "magic")

	if _, err := config.Load(); err == nil {
		t.Error("Expected error for unknown auth mode")
	}
}

func TestLoadTokenModeRequiresSecret(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("AUTH_JWT_SECRET", "")

	if _, err := config.Load(); err == nil {
		t.Error("Expected error for missing AUTH_JWT_SECRET in token mode")
	}
}
