package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
)

// StorageConfig locates the item catalog directory, mirroring the
// teacher's AssetConfig path-validation idiom.
type StorageConfig struct {
	CatalogDir string `json:"catalog_dir"`
}

func (c *StorageConfig) Validate() error {
	el := errors.NewErrorList()

	if c.CatalogDir == "" {
		el.Add(fmt.Errorf("catalog_dir is required"))
	} else if _, err := os.Stat(c.CatalogDir); err != nil {
		el.Add(fmt.Errorf("invalid catalog_dir: %w", err))
	}

	return el.Err()
}
