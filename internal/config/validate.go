package config

import (
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	return c.validateInventory()
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format: unsupported value %q (use console or json)", c.Logging.Format)
	}
}

func (c *Config) validateInventory() error {
	switch c.Inventory.CellStyle {
	case CellStylePath, CellStylePresence:
	default:
		return fmt.Errorf("inventory.cell_style: unsupported value %q (use path or presence)", c.Inventory.CellStyle)
	}
	if c.Inventory.HistoryEnabled && strings.TrimSpace(c.Inventory.HistoryPath) == "" {
		return fmt.Errorf("inventory.history_path must be set when inventory.history_enabled is true")
	}
	return nil
}
