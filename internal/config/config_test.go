package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// clearEnv isolates a test from the developer's shell and any .env file in
// the package directory.
func clearEnv(t *testing.T) {
	for _, k := range []string{"PORT", "GIN_MODE", "DATABASE_URL", "LOG_LEVEL", "LOG_JSON",
		"CAREER_TIPS_FILE", "CV_OUTPUT_DIR", "CORS_ORIGINS", "DB_AUTO_MIGRATE", "JOBBOARD_CONFIG"} {
		t.Setenv(k, "")
	}
	t.Chdir(t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestFromYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "jobboard.yaml", `
server:
  port: "9090"
  corsOrigins: ["https://jobs.example.com"]
database:
  dsn: "host=db dbname=jobs"
  autoMigrate: false
files:
  careerTips: /srv/tips.json
`)

	cfg, err := FromYAML(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, []string{"https://jobs.example.com"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "host=db dbname=jobs", cfg.Database.DSN)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "/srv/tips.json", cfg.Files.CareerTips)
	assert.Equal(t, "generated_cvs", cfg.Files.CVOutputDir)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "custom.yaml", "server:\n  port: \"9090\"\n")
	t.Setenv("JOBBOARD_CONFIG", path)
	t.Setenv("PORT", "7070")
	t.Setenv("DATABASE_URL", "postgres://u:p@db/jobs")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("LOG_JSON", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "postgres://u:p@db/jobs", cfg.Database.DSN)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.True(t, cfg.Log.JSON)
}

func TestLoadReadsDotEnv(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides variables that are already set, even to ""
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))
	writeFile(t, ".", ".env", "LOG_LEVEL=debug\n")
	t.Cleanup(func() { os.Unsetenv("LOG_LEVEL") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsBadBool(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_AUTO_MIGRATE", "sometimes")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	clearEnv(t)
	t.Setenv("JOBBOARD_CONFIG", writeFile(t, t.TempDir(), "bad.yaml", "server: [\n"))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Database.DSN = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Server.CORSOrigins = nil
	assert.Error(t, cfg.Validate())
}
