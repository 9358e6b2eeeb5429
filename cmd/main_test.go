package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

// writeTestConfig lays out configs/config.yml under a temp working directory
// the way loadConfig expects to find it.
func writeTestConfig(t *testing.T, yml string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatalf("mkdir configs: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "configs", "config.yml"), []byte(yml), 0o644); err != nil {
		t.Fatalf("write config.yml: %v", err)
	}
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWd); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
}

func TestLoadConfig_EnvOverridesNestedKey(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	writeTestConfig(t, "port: \"8080\"\nweather:\n  api_key: \"\"\n")
	t.Setenv("ENERGYAI_WEATHER_API_KEY", "secret-from-env")

	if err := loadConfig(); err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if got := viper.GetString("weather.api_key"); got != "secret-from-env" {
		t.Fatalf("weather.api_key = %q, want env override", got)
	}
	// file values stay readable alongside env overrides
	if got := viper.GetString("port"); got != "8080" {
		t.Fatalf("port = %q, want 8080", got)
	}
}

func TestLoadConfig_EnvOverridesSecrets(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	writeTestConfig(t, "smtp:\n  password: \"\"\njwt:\n  signing_key: change-me-in-production\n")
	t.Setenv("ENERGYAI_SMTP_PASSWORD", "smtp-secret")
	t.Setenv("ENERGYAI_JWT_SIGNING_KEY", "prod-key")

	if err := loadConfig(); err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if got := viper.GetString("smtp.password"); got != "smtp-secret" {
		t.Fatalf("smtp.password = %q, want env override", got)
	}
	if got := viper.GetString("jwt.signing_key"); got != "prod-key" {
		t.Fatalf("jwt.signing_key = %q, want env override", got)
	}
}
