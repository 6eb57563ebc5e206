package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Init writes the built-in default configuration to path. Existing files are
// only overwritten when force is set.
func Init(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", path)
		}
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("marshal default configuration: %w", err)
	}

	header := "# citypress site configuration.\n" +
		"# Values left empty fall back to the built-in defaults; ${VAR} references\n" +
		"# are expanded from the environment (and .env / .env.local) at load time.\n"
	if err := os.WriteFile(path, append([]byte(header), data...), 0o644); err != nil {
		return fmt.Errorf("write configuration file: %w", err)
	}
	return nil
}
