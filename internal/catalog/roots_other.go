//go:build !windows

package catalog

import (
	"fmt"

	"mpvremote/internal/models"
)

// listRoots only has meaning on hosts with multiple filesystem roots.
func listRoots() ([]models.DirEntry, error) {
	return nil, fmt.Errorf("volume listing is not available on this platform")
}
