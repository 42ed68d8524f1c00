package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"wemtool/internal/domain"
)

const (
	DefaultMappingPath  = "wem_mapping.json"
	DefaultAnalysisPath = "wem_analysis.json"
	DefaultConfigPath   = "wemtool.toml"

	DefaultWorkerMultiplier = 2
)

// Config is the tool configuration. Zero-valued fields in a config file
// keep their defaults.
type Config struct {
	MappingPath  string `toml:"mapping_path"`
	AnalysisPath string `toml:"analysis_path"`
	IndexPath    string `toml:"index_path"`

	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`

	// Workers overrides WorkerMultiplier * NumCPU when > 0
	Workers          int `toml:"workers"`
	WorkerMultiplier int `toml:"worker_multiplier"`

	Scan     Scan     `toml:"scan"`
	Analyze  Analyze  `toml:"analyze"`
	Relocate Relocate `toml:"relocate"`
}

// Scan configures the metadata scanner
type Scan struct {
	Extensions []string `toml:"extensions"`
	AssetKinds []string `toml:"asset_kinds"`
	Exclude    []string `toml:"exclude"`
	OnlyFolder string   `toml:"only_folder"`
}

// Analyze configures the category analyzer
type Analyze struct {
	Extension  string   `toml:"extension"`
	Categories []string `toml:"categories"`
	CatchAll   string   `toml:"catch_all"`
	Exclude    []string `toml:"exclude"`
	Sizes      bool     `toml:"sizes"`
}

// Relocate configures the relocation engine
type Relocate struct {
	// LogDir receives per-direction error logs; empty means the destination root
	LogDir string `toml:"log_dir"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		MappingPath:      DefaultMappingPath,
		AnalysisPath:     DefaultAnalysisPath,
		IndexPath:        defaultIndexPath(),
		LogLevel:         "info",
		LogFormat:        "text",
		WorkerMultiplier: DefaultWorkerMultiplier,
		Scan: Scan{
			Extensions: []string{".json"},
			AssetKinds: append([]string(nil), domain.DefaultAssetKinds...),
		},
		Analyze: Analyze{
			Extension:  ".wem",
			Categories: append([]string(nil), domain.DefaultCategoryPrefixes...),
			CatchAll:   domain.DefaultCatchAll,
		},
	}
}

// defaultIndexPath places the SQLite index under the XDG data directory
func defaultIndexPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "wemtool", "index.db")
}

// Path returns the config file path from WEMTOOL_CONFIG, falling back to DefaultConfigPath.
func Path() string {
	if env := os.Getenv("WEMTOOL_CONFIG"); env != "" {
		return env
	}
	return DefaultConfigPath
}

// Load reads the TOML file at path over the defaults and then applies
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("failed to read config: %w", err)
		default:
			var file Config
			if err := toml.Unmarshal(data, &file); err != nil {
				return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
			cfg.merge(file)
		}
	}

	cfg.applyEnv()
	return cfg, cfg.Validate()
}

func (c *Config) merge(o Config) {
	setString(&c.MappingPath, o.MappingPath)
	setString(&c.AnalysisPath, o.AnalysisPath)
	setString(&c.IndexPath, o.IndexPath)
	setString(&c.LogLevel, o.LogLevel)
	setString(&c.LogFormat, o.LogFormat)
	if o.Workers > 0 {
		c.Workers = o.Workers
	}
	if o.WorkerMultiplier > 0 {
		c.WorkerMultiplier = o.WorkerMultiplier
	}

	setSlice(&c.Scan.Extensions, o.Scan.Extensions)
	setSlice(&c.Scan.AssetKinds, o.Scan.AssetKinds)
	setSlice(&c.Scan.Exclude, o.Scan.Exclude)
	setString(&c.Scan.OnlyFolder, o.Scan.OnlyFolder)

	setString(&c.Analyze.Extension, o.Analyze.Extension)
	setSlice(&c.Analyze.Categories, o.Analyze.Categories)
	setString(&c.Analyze.CatchAll, o.Analyze.CatchAll)
	setSlice(&c.Analyze.Exclude, o.Analyze.Exclude)
	c.Analyze.Sizes = c.Analyze.Sizes || o.Analyze.Sizes

	setString(&c.Relocate.LogDir, o.Relocate.LogDir)
}

func (c *Config) applyEnv() {
	setString(&c.MappingPath, os.Getenv("WEMTOOL_MAPPING"))
	setString(&c.IndexPath, os.Getenv("WEMTOOL_INDEX"))
	setString(&c.LogLevel, os.Getenv("WEMTOOL_LOG_LEVEL"))
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setSlice(dst *[]string, v []string) {
	if len(v) > 0 {
		*dst = v
	}
}

// Validate checks the configuration for values the engine cannot run with
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.WorkerMultiplier < 1 {
		return fmt.Errorf("worker_multiplier must be at least 1, got %d", c.WorkerMultiplier)
	}
	for _, ext := range c.Scan.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("scan extension %q must start with a dot", ext)
		}
	}
	if !strings.HasPrefix(c.Analyze.Extension, ".") {
		return fmt.Errorf("analyze extension %q must start with a dot", c.Analyze.Extension)
	}
	return nil
}

// WorkerCount is the bounded pool size
func (c Config) WorkerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return c.WorkerMultiplier * runtime.NumCPU()
}
