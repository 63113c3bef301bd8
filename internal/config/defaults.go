package config

const (
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultCellStyle     = "path"
	defaultHistoryPath   = "~/.local/share/bidscan/history.db"
	defaultSlurmTime     = "12:00:00"
	defaultSlurmMemory   = "16G"
	defaultSlurmCPUs     = "4"
	inventoryFileName    = "bids_file_inventory.tsv"
	CellStylePath        = "path"
	CellStylePresence    = "presence"
	defaultHistoryOnLoad = true
)

// Default returns a Config populated with repository defaults. Path defaults
// are intentionally empty: a dataset root must come from the config file or
// the command line.
func Default() Config {
	return Config{
		Slurm: Slurm{
			Time:   defaultSlurmTime,
			Memory: defaultSlurmMemory,
			CPUs:   defaultSlurmCPUs,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Inventory: Inventory{
			CellStyle:      defaultCellStyle,
			HistoryEnabled: defaultHistoryOnLoad,
			HistoryPath:    defaultHistoryPath,
		},
	}
}

// DefaultInventoryPath returns the output file path implied by the
// configuration, or empty when no output directory is configured.
func (c *Config) DefaultInventoryPath() string {
	if c.Paths.InventoryOutputDir == "" {
		return ""
	}
	return joinPath(c.Paths.InventoryOutputDir, inventoryFileName)
}
