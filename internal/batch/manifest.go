package batch

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/labelscan/labelscan/internal/extract"
)

// Manifest is the YAML description of a batch run:
//
//	workers: 4
//	items:
//	  - id: shampoo-01
//	    source: images/shampoo.jpg
//	    category: cosmetics
//	  - source: https://example.com/biscuits.png
//	    category: food
type Manifest struct {
	// Workers overrides the pool size for this run; 0 keeps the
	// configured default.
	Workers int            `yaml:"workers"`
	Items   []ManifestItem `yaml:"items"`
}

// ManifestItem is one image entry in a manifest.
type ManifestItem struct {
	// ID labels the item in results and error reports; omitted IDs get a
	// generated UUID.
	ID string `yaml:"id"`
	// Source is a local file path or an http(s) URL.
	Source string `yaml:"source"`
	// Category is the product category hint; empty means unspecified.
	Category string `yaml:"category"`
}

// LoadManifest reads and validates a YAML manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if len(m.Items) == 0 {
		return nil, fmt.Errorf("manifest %s contains no items", path)
	}
	for i, item := range m.Items {
		if item.Source == "" {
			return nil, fmt.Errorf("manifest item %d has no source", i)
		}
	}
	return &m, nil
}

// Tasks converts the manifest items to runnable tasks, generating UUIDs for
// items without an explicit ID.
func (m *Manifest) Tasks() []Task {
	tasks := make([]Task, 0, len(m.Items))
	for _, item := range m.Items {
		id := item.ID
		if id == "" {
			id = uuid.NewString()
		}
		tasks = append(tasks, Task{
			ID:       id,
			Source:   item.Source,
			Category: extract.ParseCategory(item.Category),
		})
	}
	return tasks
}
