package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// normalize folds legacy flat keys into the nested sections, expands user
// paths, and fills defaults left blank by the config files. Runs once at
// load; nothing downstream sees the legacy layout.
func (c *Config) normalize(legacy legacyKeys) error {
	c.foldLegacy(legacy)
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeSlurm()
	c.normalizeLogging()
	return c.normalizeInventory()
}

// foldLegacy applies historical top-level keys wherever the nested section
// left the value unset. Nested keys always win.
func (c *Config) foldLegacy(legacy legacyKeys) {
	if c.Paths.BIDSProjectDir == "" {
		c.Paths.BIDSProjectDir = legacy.BIDSProjectDir
	}
	if c.Paths.InventoryOutputDir == "" {
		c.Paths.InventoryOutputDir = legacy.InventoryOutputDir
	}
	if c.Paths.OutputDir == "" {
		c.Paths.OutputDir = legacy.OutputDir
	}
}

func (c *Config) normalizePaths() error {
	fields := []struct {
		name  string
		value *string
	}{
		{"paths.bids_project_dir", &c.Paths.BIDSProjectDir},
		{"paths.inventory_output_dir", &c.Paths.InventoryOutputDir},
		{"paths.code_root", &c.Paths.CodeRoot},
		{"paths.singularity_dir", &c.Paths.SingularityDir},
		{"paths.venv_dir", &c.Paths.VenvDir},
		{"paths.output_dir", &c.Paths.OutputDir},
	}
	for _, field := range fields {
		trimmed := strings.TrimSpace(*field.value)
		if trimmed == "" {
			*field.value = ""
			continue
		}
		expanded, err := expandPath(trimmed)
		if err != nil {
			return fmt.Errorf("%s: %w", field.name, err)
		}
		*field.value = expanded
	}
	// Inventory output falls back to a subdirectory of the general output
	// location when not configured explicitly.
	if c.Paths.InventoryOutputDir == "" && c.Paths.OutputDir != "" {
		c.Paths.InventoryOutputDir = joinPath(c.Paths.OutputDir, "inventory")
	}
	return nil
}

func (c *Config) normalizeSlurm() {
	c.Slurm.Partition = strings.TrimSpace(c.Slurm.Partition)
	c.Slurm.Email = strings.TrimSpace(c.Slurm.Email)
	if strings.TrimSpace(c.Slurm.Time) == "" {
		c.Slurm.Time = defaultSlurmTime
	}
	if strings.TrimSpace(c.Slurm.Memory) == "" {
		c.Slurm.Memory = defaultSlurmMemory
	}
	if strings.TrimSpace(c.Slurm.CPUs) == "" {
		c.Slurm.CPUs = defaultSlurmCPUs
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}

func (c *Config) normalizeInventory() error {
	c.Inventory.CellStyle = strings.ToLower(strings.TrimSpace(c.Inventory.CellStyle))
	if c.Inventory.CellStyle == "" {
		c.Inventory.CellStyle = defaultCellStyle
	}
	if strings.TrimSpace(c.Inventory.HistoryPath) == "" {
		c.Inventory.HistoryPath = defaultHistoryPath
	}
	expanded, err := expandPath(c.Inventory.HistoryPath)
	if err != nil {
		return fmt.Errorf("inventory.history_path: %w", err)
	}
	c.Inventory.HistoryPath = expanded
	return nil
}

func joinPath(dir, name string) string {
	return filepath.Join(dir, name)
}
