package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/toba/ghtask/internal/testutil"
)

const testYAML = `repository: https://github.com/octo/tracker
username: alice
api_url: http://localhost:8080/api/v2/json
date_layout: "2006-01-02 15:04"
timezone: Europe/Berlin
`

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	return testutil.WriteFile(t, "", ConfigFileName, content)
}

func TestLoad(t *testing.T) {
	path := writeTempConfig(t, testYAML)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Repository != "https://github.com/octo/tracker" {
		t.Errorf("repository = %q", cfg.Repository)
	}
	if cfg.Username != "alice" {
		t.Errorf("username = %q, want alice", cfg.Username)
	}
	if cfg.APIURL != "http://localhost:8080/api/v2/json" {
		t.Errorf("api_url = %q", cfg.APIURL)
	}
	if cfg.DateLayout != "2006-01-02 15:04" {
		t.Errorf("date_layout = %q", cfg.DateLayout)
	}
	if cfg.TokenEnv != "GITHUB_TOKEN" {
		t.Errorf("token_env = %q, want default GITHUB_TOKEN", cfg.TokenEnv)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log_level = %q, want info", cfg.LogLevel)
	}
	if cfg.Location().String() != "Europe/Berlin" {
		t.Errorf("location = %v, want Europe/Berlin", cfg.Location())
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), ConfigFileName))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TokenEnv != "GITHUB_TOKEN" || cfg.Repository != "" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
	if cfg.Location() != time.Local {
		t.Errorf("location = %v, want local", cfg.Location())
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "bad yaml", content: "repository: [unclosed", want: "parsing"},
		{name: "bad timezone", content: "timezone: Mars/Olympus", want: "invalid timezone"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeTempConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestFindConfigSearchesUpward(t *testing.T) {
	path := writeTempConfig(t, testYAML)
	nested := filepath.Join(filepath.Dir(path), "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	found, err := FindConfig(nested)
	if err != nil {
		t.Fatal(err)
	}
	if found != path {
		t.Errorf("found = %q, want %q", found, path)
	}

	t.Chdir(nested)
	cfg, err := LoadFromDirectory(".")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Username != "alice" {
		t.Errorf("username = %q, want alice", cfg.Username)
	}
}

func TestLoadFromDirectoryWithoutConfig(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadFromDirectory(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Repository != "" || cfg.TokenEnv != "GITHUB_TOKEN" || cfg.LogLevel != "info" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestResolveToken(t *testing.T) {
	env := map[string]string{"GITHUB_TOKEN": " from-env\n", "OTHER": "other"}
	getenv := func(k string) string { return env[k] }

	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{name: "file token wins", cfg: Config{Token: "file", TokenEnv: "OTHER"}, want: "file"},
		{name: "default env", cfg: Config{}, want: "from-env"},
		{name: "custom env", cfg: Config{TokenEnv: "OTHER"}, want: "other"},
		{name: "unset env", cfg: Config{TokenEnv: "MISSING"}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.ResolveToken(getenv); got != tt.want {
				t.Errorf("token = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSaveOmitsToken(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{Repository: "https://github.com/octo/tracker", Token: "s3cret"}
	if err := cfg.Save(dir); err != nil {
		t.Fatal(err)
	}

	content := testutil.ReadFile(t, filepath.Join(dir, ConfigFileName))
	if strings.Contains(content, "s3cret") {
		t.Errorf("saved config contains token:\n%s", content)
	}
	if !strings.Contains(content, "repository: https://github.com/octo/tracker") {
		t.Errorf("saved config missing repository:\n%s", content)
	}
	if cfg.Token != "s3cret" {
		t.Error("Save cleared the in-memory token")
	}
}
