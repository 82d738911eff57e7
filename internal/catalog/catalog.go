// Package catalog enumerates directory contents and applies the ordering
// the browsing frontend renders: directories first (most recently modified
// first), then files in case-insensitive name order.
package catalog

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"mpvremote/internal/domain/consts"
	"mpvremote/internal/models"
	"mpvremote/internal/pathutil"

	"github.com/rs/zerolog/log"
)

// List returns the ordered entries of path. Hidden (dot-prefixed) entries
// are included; callers rendering listings filter them with Visible.
// Entries whose metadata probe fails (e.g. broken symlinks) are skipped
// with a logged warning, not surfaced as an error.
func List(path string) ([]models.DirEntry, error) {
	if path == consts.WinRootPath {
		return listRoots()
	}

	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	entries := make([]models.DirEntry, 0, len(dirEntries))
	for _, e := range dirEntries {
		full := filepath.Join(path, e.Name())
		entry, ok := statEntry(full)
		if !ok {
			continue
		}
		entries = append(entries, entry)
	}

	sortEntries(entries)
	return entries, nil
}

// Visible filters out entries whose name begins with a dot. The raw
// catalog keeps them so JSON clients can decide for themselves.
func Visible(entries []models.DirEntry) []models.DirEntry {
	visible := make([]models.DirEntry, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(entryName(e), ".") {
			continue
		}
		visible = append(visible, e)
	}
	return visible
}

// PlayAllTarget synthesizes the glob target that plays a directory's
// contents. Selection happens at glob expansion, not by enumerating the
// listing, so listing filters do not affect what plays.
func PlayAllTarget(dir string) string {
	return filepath.Join(dir, "*")
}

// statEntry probes a path and builds its listing entry.
func statEntry(path string) (models.DirEntry, bool) {
	info, err := os.Stat(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("skipping unreadable entry")
		return models.DirEntry{}, false
	}

	kind := consts.EntryTypeFile
	if info.IsDir() {
		kind = consts.EntryTypeDir
	}

	return models.DirEntry{
		Path:     pathutil.Split(path),
		Type:     kind,
		Modified: float64(info.ModTime().UnixNano()) / 1e9,
		Size:     info.Size(),
	}, true
}

// sortEntries applies the rendering order in place.
func sortEntries(entries []models.DirEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		aDir := a.Type == consts.EntryTypeDir
		bDir := b.Type == consts.EntryTypeDir
		if aDir != bDir {
			return aDir
		}
		if aDir {
			return a.Modified > b.Modified
		}
		return strings.ToLower(entryName(a)) < strings.ToLower(entryName(b))
	})
}

func entryName(e models.DirEntry) string {
	if len(e.Path) == 0 {
		return ""
	}
	return e.Path[len(e.Path)-1]
}
