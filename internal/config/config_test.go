package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAndValidate(t *testing.T) {
	path := writeYAML(t, `
fetch:
  req_per_sec: 0.5
  concurrency: 4
schools:
  - name: MIT
    urls:
      - https://economics.mit.edu/job-market
enrich:
  model: gemini-2.0-flash
  delay_seconds: 2
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Schools, 1)
	assert.Equal(t, "MIT", cfg.Schools[0].Name)
	assert.Equal(t, 0.5, cfg.Fetch.ReqPerSec)

	_, v := NormalizeAndValidate(cfg)
	assert.True(t, v.OK(), "errors: %v", v.Errors)
}

func TestValidateCatchesBadRoster(t *testing.T) {
	var cfg Config
	cfg.Schools = []School{
		{Name: "MIT", URLs: []string{"https://a.example.edu"}},
		{Name: "mit", URLs: []string{"https://b.example.edu"}},
		{Name: "Yale"},
		{Name: "Brown", URLs: []string{"not a url"}},
	}
	_, v := NormalizeAndValidate(cfg)
	assert.False(t, v.OK())
	assert.Len(t, v.Errors, 3) // duplicate, empty urls, bad url
}

func TestValidateEmptyRoster(t *testing.T) {
	_, v := NormalizeAndValidate(Config{})
	assert.False(t, v.OK())
}

func TestNormalizeTrimsExtraCompanies(t *testing.T) {
	var cfg Config
	cfg.Schools = []School{{Name: "MIT", URLs: []string{"https://a.example.edu"}}}
	cfg.Classify.ExtraTechCompanies = []string{" Wise ", "wise", "", "Zopa"}
	out, v := NormalizeAndValidate(cfg)
	assert.True(t, v.OK())
	assert.Equal(t, []string{"Wise", "Zopa"}, out.Classify.ExtraTechCompanies)
}

func TestEnsureUserConfigCopiesDefault(t *testing.T) {
	dataDir := t.TempDir()
	def := writeYAML(t, "fetch:\n  req_per_sec: 1\n")

	userPath, err := EnsureUserConfig(dataDir, def)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, "config.yml"), userPath)

	b, err := os.ReadFile(userPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), "req_per_sec")

	// Second call keeps the existing user copy.
	require.NoError(t, os.WriteFile(userPath, []byte("fetch:\n  req_per_sec: 9\n"), 0o644))
	again, err := EnsureUserConfig(dataDir, def)
	require.NoError(t, err)
	b, err = os.ReadFile(again)
	require.NoError(t, err)
	assert.Contains(t, string(b), "req_per_sec: 9")
}

func TestOverlaySchools(t *testing.T) {
	var cfg Config
	cfg.Schools = []School{{Name: "MIT", URLs: []string{"https://a.example.edu"}}}

	overlay := writeYAML(t, `
schools:
  - name: Duke
    urls:
      - https://econ.duke.edu/placements
`)
	require.NoError(t, OverlaySchools(&cfg, overlay))
	require.Len(t, cfg.Schools, 1)
	assert.Equal(t, "Duke", cfg.Schools[0].Name)

	// Missing overlay file is not an error.
	require.NoError(t, OverlaySchools(&cfg, filepath.Join(t.TempDir(), "absent.yml")))
	assert.Equal(t, "Duke", cfg.Schools[0].Name)
}
