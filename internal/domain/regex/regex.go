// Package regex compiles and caches various regex expressions.
package regex

import (
	"regexp"
)

var (
	FolderFlag *regexp.Regexp
)

// FolderFlagCompile compiles the allow-list for per-directory player flags.
// Only track selection (aid/sid/vid, alang/slang/vlang and their secondary-
// variants) and sub/audio delay options may come from an untrusted
// mpv-remote.conf. Do not widen this set without review: it is the only
// gate between folder config files and the player's argument list.
func FolderFlagCompile() *regexp.Regexp {
	if FolderFlag == nil {
		FolderFlag = regexp.MustCompile(`^((secondary-)?(a|s|v)(id|lang)|(sub|audio)(-delay))=[0-9a-z.\-]+$`)
	}
	return FolderFlag
}
