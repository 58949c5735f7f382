package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# SMC Journal Configuration

[storage]
# Path to the state database. Defaults to journal.db in this directory.
# db_path = ""

[ui]
# Enable colored output
color_enabled = true
# Date format for display
date_format = "02-Jan-2006"

[logging]
# Log level: debug, info, warn, error
level = "info"
# Write logs to a rotating file under logs/
file = true
# Maximum log file size in megabytes
max_size = 50
# Number of rotated files to keep
max_backups = 5
# Maximum age of rotated files in days
max_age = 30
`

// createTemplateConfig writes a default config.toml so first runs
// work without any manual setup.
func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	return os.WriteFile(path, []byte(configTemplate), 0644)
}
