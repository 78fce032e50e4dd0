package cli

import (
	"encoding/json"
	"os"

	"github.com/docflowGM/foundryvtt-swse-sub004/internal/domain/entity"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/errors"
)

// LoadSnapshot reads an entity snapshot from a JSON file, fills enum
// defaults, and validates it.
func LoadSnapshot(path string) (*entity.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading snapshot %s", path)
	}

	var snap entity.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrapf(err, "parsing snapshot %s", path)
	}

	snap.Normalize()
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	return &snap, nil
}
