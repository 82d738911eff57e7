//go:build windows

package catalog

import (
	"os"

	"mpvremote/internal/domain/consts"
	"mpvremote/internal/models"
)

// listRoots probes drive letters A: through Z: and returns the ones that
// exist. A drive that disappears mid-probe is simply omitted.
func listRoots() ([]models.DirEntry, error) {
	var roots []models.DirEntry
	for c := 'A'; c <= 'Z'; c++ {
		drive := string(c) + `:\`
		info, err := os.Stat(drive)
		if err != nil || !info.IsDir() {
			continue
		}
		roots = append(roots, models.DirEntry{
			Path:     []string{drive},
			Type:     consts.EntryTypeDir,
			Modified: float64(info.ModTime().UnixNano()) / 1e9,
			Size:     info.Size(),
		})
	}
	return roots, nil
}
