package termsheet

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Default template file names, looked up in the template directory when no
// explicit path is given.
const (
	DefaultTemplateGFA = "template_ts.docx"
	DefaultTemplateCII = "template_cii.docx"
)

// Config carries the environment-tunable settings of the generator. Command
// line flags override it per invocation.
type Config struct {
	// LogMode selects the logger encoder, "dev" or "prod".
	LogMode string `env:"TERMSHEET_LOG_MODE" envDefault:"dev"`
	// TemplateDir is where the default templates and the profile workbook
	// are looked up.
	TemplateDir string `env:"TERMSHEET_TEMPLATE_DIR" envDefault:"."`
	// OutputDir is where generated documents are written.
	OutputDir string `env:"TERMSHEET_OUTPUT_DIR" envDefault:"."`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
