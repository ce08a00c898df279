package content

import (
	"encoding/json/v2"
	"os"

	"github.com/writermorphosis/writermorphosis-server/internal/errors"
)

// Load reads a dataset from a JSON file and builds a catalog from it.
// Timestamps use RFC 3339. Validation failures surface as VALIDATION errors.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.CodeInternal, "reading dataset %s", path)
	}

	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, errors.Wrapf(err, errors.CodeValidation, "parsing dataset %s", path)
	}
	return New(ds)
}

// LoadDefault builds a catalog from the built-in dataset.
func LoadDefault() (*Catalog, error) {
	return New(DefaultDataset())
}
