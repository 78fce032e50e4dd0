package swse

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/docflowGM/foundryvtt-swse-sub004/internal/errors"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/modifiers"
)

// catalogFile is the on-disk shape of a domain catalog overlay
type catalogFile struct {
	Domains []modifiers.Domain `yaml:"domains"`
}

// LoadCatalogFile reads domain definitions from a YAML file and layers
// them over the builtin table. An entry sharing a builtin key replaces
// it; new keys extend the table.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading domain catalog %s", path)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrapf(err, "parsing domain catalog %s", path)
	}

	return BuiltinCatalog().Merge(file.Domains)
}
