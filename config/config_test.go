package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"weather-widget/datasource"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeFile(t, `{
		"openWeatherMap": {"apiKey": "abc"},
		"port": 9090,
		"requestTimeout": "3s",
		"discardStale": true
	}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.OpenWeatherMap.APIKey != "abc" || cfg.Port != 9090 || !cfg.DiscardStale {
		t.Errorf("unexpected config %+v", cfg)
	}
	if time.Duration(cfg.RequestTimeout) != 3*time.Second {
		t.Errorf("requestTimeout = %v", time.Duration(cfg.RequestTimeout))
	}
	if cfg.OpenWeatherMap.BaseURL != datasource.DefaultBaseURL || cfg.AssetsDir != "" {
		t.Errorf("defaults were lost: %+v", cfg)
	}
}

func TestLoadConfigRejectsBadInput(t *testing.T) {
	for _, body := range []string{
		`{"requestTimeout": 5}`,
		`{"requestTimeout": "soon"}`,
		`{"unknownField": 1}`,
		`not json`,
	} {
		if _, err := LoadConfig(writeFile(t, body)); err == nil {
			t.Errorf("LoadConfig(%s) should fail", body)
		}
	}
}

func TestLoadWithoutFileUsesDefaultsAndEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("OPENWEATHERMAP_API_KEY", "from-env")
	t.Setenv("PORT", "7070")
	t.Setenv("ASSETS_DIR", "/srv/icons")
	t.Setenv("OPENWEATHERMAP_BASE_URL", "")

	cfg, err := Load("missing.json")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OpenWeatherMap.APIKey != "from-env" || cfg.Port != 7070 || cfg.AssetsDir != "/srv/icons" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
	if cfg.OpenWeatherMap.BaseURL != datasource.DefaultBaseURL {
		t.Errorf("empty env value should keep the default, got %q", cfg.OpenWeatherMap.BaseURL)
	}
	if cfg.RequestTimeout != 0 {
		t.Errorf("requests should not time out by default")
	}
}

func TestLoadRejectsBadPort(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "eighty")
	if _, err := Load("missing.json"); err == nil {
		t.Fatal("expected an error for a non-numeric PORT")
	}
}
