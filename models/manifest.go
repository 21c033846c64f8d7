package models

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// DatasetSource describes one CSV source declared in the dataset manifest.
// ColumnKinds optionally overrides the inferred kind of individual columns
// (e.g. forcing a low-cardinality identifier column back to "string").
type DatasetSource struct {
	Name        string            `yaml:"name"`
	Title       string            `yaml:"title"`
	Path        string            `yaml:"path"`
	ColumnKinds map[string]string `yaml:"columnKinds,omitempty"`
}

type DatasetManifest struct {
	Datasets []DatasetSource `yaml:"datasets"`
}

// LoadManifest reads the YAML manifest naming every dataset served by this
// process. Invoked once at startup; any problem here is fatal.
func LoadManifest(path string) (*DatasetManifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var manifest DatasetManifest
	if err := yaml.NewDecoder(f).Decode(&manifest); err != nil {
		return nil, fmt.Errorf("malformed dataset manifest %s : %v", path, err)
	}

	if len(manifest.Datasets) == 0 {
		return nil, fmt.Errorf("dataset manifest %s lists no datasets", path)
	}

	return &manifest, nil
}
