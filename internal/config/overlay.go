// config/overlay.go
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type schoolsFile struct {
	Schools []School `yaml:"schools"`
}

// OverlaySchools replaces the roster from a separate schools.yml when one
// exists, so the URL list can be updated without touching the main config.
func OverlaySchools(cfg *Config, schoolsPath string) error {
	b, err := os.ReadFile(schoolsPath)
	if err != nil {
		// Missing schools file should not kill startup
		return nil
	}

	var sf schoolsFile
	if err := yaml.Unmarshal(b, &sf); err != nil {
		return err
	}

	if len(sf.Schools) > 0 {
		cfg.Schools = sf.Schools
	}
	return nil
}
