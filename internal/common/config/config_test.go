package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPPort != 3000 {
		t.Errorf("HTTPPort = %d, want 3000", cfg.HTTPPort)
	}
	if cfg.DB.Port != 5432 {
		t.Errorf("DB.Port = %d, want 5432", cfg.DB.Port)
	}
	if cfg.MQ.Enabled() {
		t.Error("MQ must be disabled when MQ_HOST is unset")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("MQ_HOST", "mq.internal")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPPort != 8080 {
		t.Errorf("HTTPPort = %d, want 8080", cfg.HTTPPort)
	}
	if cfg.DB.Host != "db.internal" {
		t.Errorf("DB.Host = %q", cfg.DB.Host)
	}
	if !cfg.MQ.Enabled() {
		t.Error("MQ must be enabled when MQ_HOST is set")
	}
}

func TestGetEnvIntBadValue(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-number")
	if got := getEnvInt("HTTP_PORT", 3000); got != 3000 {
		t.Errorf("getEnvInt fell back to %d, want 3000", got)
	}
}
