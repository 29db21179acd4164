package config

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CORS_ALLOW_ORIGINS", "")
	t.Setenv("LOCAL_STORE_DIR", "")
	t.Setenv("ENV", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Port)
	}
	if want := []string{"http://localhost:5173"}; !reflect.DeepEqual(cfg.CORSAllowOrigin, want) {
		t.Errorf("cors = %v, want %v", cfg.CORSAllowOrigin, want)
	}
	if cfg.LocalStoreDir != "./data" {
		t.Errorf("store dir = %q, want ./data", cfg.LocalStoreDir)
	}
	if cfg.Env != "dev" {
		t.Errorf("env = %q, want dev", cfg.Env)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://app.example.com, https://staging.example.com ,")
	t.Setenv("ENV", "PROD")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("port = %q, want 9000", cfg.Port)
	}
	want := []string{"https://app.example.com", "https://staging.example.com"}
	if !reflect.DeepEqual(cfg.CORSAllowOrigin, want) {
		t.Errorf("cors = %v, want %v", cfg.CORSAllowOrigin, want)
	}
	if cfg.Env != "production" {
		t.Errorf("env = %q, want production", cfg.Env)
	}
}

func TestNormalizeEnv(t *testing.T) {
	cases := map[string]string{
		"prod":       "production",
		"Production": "production",
		"staging":    "staging",
		"local":      "local",
		"":           "dev",
		"weird":      "dev",
	}
	for in, want := range cases {
		if got := normalizeEnv(in); got != want {
			t.Errorf("normalizeEnv(%q) = %q, want %q", in, got, want)
		}
	}
}
