package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("WEMTOOL_MAPPING", "")
	t.Setenv("WEMTOOL_LOG_LEVEL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultMappingPath, cfg.MappingPath)
	assert.Equal(t, []string{".json"}, cfg.Scan.Extensions)
	assert.Equal(t, "Other", cfg.Analyze.CatchAll)
	assert.Equal(t, DefaultWorkerMultiplier*runtime.NumCPU(), cfg.WorkerCount())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Setenv("WEMTOOL_MAPPING", "")
	t.Setenv("WEMTOOL_LOG_LEVEL", "")

	path := filepath.Join(t.TempDir(), "wemtool.toml")
	content := `
mapping_path = "maps/custom.json"
workers = 3

[scan]
exclude = ["**/Localized/**"]

[analyze]
categories = ["Act_", "VO_"]
catch_all = "Misc"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "maps/custom.json", cfg.MappingPath)
	assert.Equal(t, 3, cfg.WorkerCount())
	assert.Equal(t, []string{"**/Localized/**"}, cfg.Scan.Exclude)
	assert.Equal(t, []string{".json"}, cfg.Scan.Extensions, "unset keys keep defaults")
	assert.Equal(t, []string{"Act_", "VO_"}, cfg.Analyze.Categories)
	assert.Equal(t, "Misc", cfg.Analyze.CatchAll)
	assert.Equal(t, ".wem", cfg.Analyze.Extension)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wemtool.toml")
	require.NoError(t, os.WriteFile(path, []byte(`mapping_path = "file.json"`), 0644))
	t.Setenv("WEMTOOL_MAPPING", "env.json")
	t.Setenv("WEMTOOL_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env.json", cfg.MappingPath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wemtool.toml")
	require.NoError(t, os.WriteFile(path, []byte("workers = ["), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Analyze.Extension = "wem"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.WorkerMultiplier = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Scan.Extensions = []string{"json"}
	assert.Error(t, cfg.Validate())

	assert.NoError(t, Default().Validate())
}

func TestPath(t *testing.T) {
	t.Setenv("WEMTOOL_CONFIG", "")
	assert.Equal(t, DefaultConfigPath, Path())

	t.Setenv("WEMTOOL_CONFIG", "/etc/wemtool.toml")
	assert.Equal(t, "/etc/wemtool.toml", Path())
}
