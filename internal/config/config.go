// engine/internal/config/config.go
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// School is one department and the placement URLs to scrape for it.
// Multiple URLs per school are normal: job-market page, historical
// placements page, sometimes a PDF.
type School struct {
	Name string   `yaml:"name"`
	URLs []string `yaml:"urls"`
}

type Config struct {
	App struct {
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Fetch struct {
		ReqPerSec      float64 `yaml:"req_per_sec"`
		TimeoutSeconds int     `yaml:"timeout_seconds"`
		Concurrency    int     `yaml:"concurrency"`
		SaveRaw        bool    `yaml:"save_raw"`
	} `yaml:"fetch"`

	Schools []School `yaml:"schools"`

	Classify struct {
		// ExtraTechCompanies extends the built-in employer keyword list.
		ExtraTechCompanies []string `yaml:"extra_tech_companies"`
	} `yaml:"classify"`

	Enrich struct {
		Model        string `yaml:"model"`
		DelaySeconds int    `yaml:"delay_seconds"`
	} `yaml:"enrich"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
