package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// EnvConfigDir names the environment variable that overrides config
// directory discovery.
const EnvConfigDir = "BIDSCAN_CONFIG_DIR"

const (
	baseFileName  = "base.toml"
	localFileName = "local.toml"
)

// Paths contains the dataset and output directory configuration.
type Paths struct {
	BIDSProjectDir     string `toml:"bids_project_dir"`
	InventoryOutputDir string `toml:"inventory_output_dir"`
	CodeRoot           string `toml:"code_root"`
	SingularityDir     string `toml:"singularity_dir"`
	VenvDir            string `toml:"venv_dir"`
	OutputDir          string `toml:"output_dir"`
}

// Slurm contains batch-scheduler defaults consumed by the job submission
// wrappers. The scanner itself never reads these; they ride along so one
// config file serves the whole project.
type Slurm struct {
	Partition string `toml:"partition"`
	Time      string `toml:"time"`
	Memory    string `toml:"memory"`
	CPUs      string `toml:"cpus"`
	Email     string `toml:"email"`
}

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Inventory contains configuration for inventory generation.
type Inventory struct {
	// CellStyle selects what present cells hold: "path" writes the relative
	// file path, "presence" writes a fixed marker.
	CellStyle      string `toml:"cell_style"`
	HistoryEnabled bool   `toml:"history_enabled"`
	HistoryPath    string `toml:"history_path"`
}

// Config encapsulates all configuration values for bidscan.
//
// Sections:
//   - Paths: dataset root, inventory output, and project directories
//   - Slurm: scheduler defaults for the batch submission wrappers
//   - Logging: log level and format
//   - Inventory: cell rendering and scan history settings
type Config struct {
	Paths     Paths     `toml:"paths"`
	Slurm     Slurm     `toml:"slurm"`
	Logging   Logging   `toml:"logging"`
	Inventory Inventory `toml:"inventory"`
}

// legacyKeys captures the historical flat-key layout where path settings
// lived at the document's top level instead of under [paths]. Values are
// folded into the nested sections during normalize.
type legacyKeys struct {
	BIDSProjectDir     string `toml:"bids_project_dir"`
	InventoryOutputDir string `toml:"inventory_output_dir"`
	OutputDir          string `toml:"output_dir"`
}

// Load resolves the config directory (explicit dir, or discovery when dir is
// empty), reads base.toml, overlays local.toml when present, and returns the
// normalized, validated configuration along with the directory it came from.
// A missing local.toml is not an error; callers may log it as advisory.
func Load(dir string) (*Config, string, error) {
	resolved := dir
	if resolved == "" {
		found, err := FindConfigDir()
		if err != nil {
			return nil, "", err
		}
		resolved = found
	} else {
		expanded, err := expandPath(resolved)
		if err != nil {
			return nil, "", err
		}
		resolved = expanded
	}

	cfg := Default()
	var legacy legacyKeys

	basePath := filepath.Join(resolved, baseFileName)
	baseData, err := os.ReadFile(basePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("base config file not found: %s", basePath)
		}
		return nil, "", fmt.Errorf("read base config: %w", err)
	}
	if err := decodeLayer(baseData, &cfg, &legacy); err != nil {
		return nil, "", fmt.Errorf("parse %s: %w", basePath, err)
	}

	localPath := filepath.Join(resolved, localFileName)
	localData, err := os.ReadFile(localPath)
	switch {
	case err == nil:
		// Decoding the override into the already-populated struct merges
		// tables key-by-key and replaces scalars, which is exactly the
		// layering contract.
		if err := decodeLayer(localData, &cfg, &legacy); err != nil {
			return nil, "", fmt.Errorf("parse %s: %w", localPath, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// Optional override; base alone is a complete configuration.
	default:
		return nil, "", fmt.Errorf("read local config: %w", err)
	}

	if err := cfg.normalize(legacy); err != nil {
		return nil, "", err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, resolved, nil
}

func decodeLayer(data []byte, cfg *Config, legacy *legacyKeys) error {
	if err := toml.Unmarshal(data, cfg); err != nil {
		return err
	}
	return toml.Unmarshal(data, legacy)
}

// HasLocalOverride reports whether the resolved config directory carries a
// local.toml.
func HasLocalOverride(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, localFileName))
	return err == nil && !info.IsDir()
}

// FindConfigDir locates the configuration directory. Strategies, first hit
// wins:
//  1. the BIDSCAN_CONFIG_DIR environment variable;
//  2. an upward walk from the working directory (at most maxSearchDepth
//     levels) looking for a config/ child containing base.toml;
//  3. a config directory next to the running executable.
func FindConfigDir() (string, error) {
	if value, ok := os.LookupEnv(EnvConfigDir); ok && strings.TrimSpace(value) != "" {
		dir, err := expandPath(value)
		if err != nil {
			return "", err
		}
		if info, statErr := os.Stat(dir); statErr == nil && info.IsDir() {
			return dir, nil
		}
		return "", fmt.Errorf("%s points at %s, which is not a directory", EnvConfigDir, dir)
	}

	if wd, err := os.Getwd(); err == nil {
		if dir, ok := searchUpward(wd); ok {
			return dir, nil
		}
	}

	if exe, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), "config")
		if hasBaseConfig(candidate) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf(
		"could not locate config directory: set %s or ensure config/%s exists in the project root",
		EnvConfigDir, baseFileName,
	)
}

const maxSearchDepth = 5

func searchUpward(start string) (string, bool) {
	current := start
	for i := 0; i < maxSearchDepth; i++ {
		candidate := filepath.Join(current, "config")
		if hasBaseConfig(candidate) {
			return candidate, true
		}
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}
	return "", false
}

func hasBaseConfig(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, baseFileName))
	return err == nil && !info.IsDir()
}

// CreateSample writes a sample base.toml to the given directory, creating it
// if needed. Refuses to clobber an existing file.
func CreateSample(dir string) (string, error) {
	expanded, err := expandPath(dir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(expanded, 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	target := filepath.Join(expanded, baseFileName)
	if _, err := os.Stat(target); err == nil {
		return "", fmt.Errorf("config file already exists: %s", target)
	}
	if err := os.WriteFile(target, []byte(sampleConfig), 0o644); err != nil {
		return "", fmt.Errorf("write sample config: %w", err)
	}
	return target, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}
