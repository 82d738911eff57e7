// Package pathutil converts between filesystem paths and the ordered
// segment arrays used on the wire by the browsing frontend.
package pathutil

import (
	"path/filepath"
	"strings"
)

// Split breaks a path into its ordered segments. Absolute paths keep the
// root (or drive root) as their first segment, so Join(Split(p)) round
// trips: "/home/x" -> ["/", "home", "x"], `C:\media` -> [`C:\`, "media"].
func Split(path string) []string {
	path = filepath.Clean(path)
	vol := filepath.VolumeName(path)
	rest := path[len(vol):]

	var segs []string
	switch {
	case strings.HasPrefix(rest, string(filepath.Separator)):
		segs = append(segs, vol+string(filepath.Separator))
		rest = strings.TrimPrefix(rest, string(filepath.Separator))
	case vol != "":
		segs = append(segs, vol)
	}

	if rest != "" && rest != "." {
		segs = append(segs, strings.Split(rest, string(filepath.Separator))...)
	}
	return segs
}

// Join reassembles segments produced by Split into a single path.
func Join(segs []string) string {
	return filepath.Join(segs...)
}
