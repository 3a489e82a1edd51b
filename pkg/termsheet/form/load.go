package form

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadGFA reads a GFA snapshot from a YAML file. Fields absent from the
// file keep the defaults of DefaultGFA.
func LoadGFA(path string) (GFA, error) {
	f := DefaultGFA()
	if err := loadYAML(path, &f); err != nil {
		return GFA{}, err
	}
	return f, nil
}

// LoadCII reads a CII snapshot from a YAML file. Fields absent from the
// file keep the defaults of DefaultCII.
func LoadCII(path string) (CII, error) {
	f := DefaultCII()
	if err := loadYAML(path, &f); err != nil {
		return CII{}, err
	}
	return f, nil
}

func loadYAML(path string, out interface{}) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading form snapshot %s: %w", path, err)
	}
	if err := yaml.Unmarshal(content, out); err != nil {
		return fmt.Errorf("decoding form snapshot %s: %w", path, err)
	}
	return nil
}
