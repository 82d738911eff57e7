package pathutil

import (
	"path/filepath"
	"runtime"
	"testing"
)

// TestSplitRoundTrip tests that Join(Split(p)) reproduces the cleaned path.
func TestSplitRoundTrip(t *testing.T) {
	t.Parallel()

	paths := []string{
		string(filepath.Separator),
		filepath.Join(string(filepath.Separator), "home", "user", "media"),
		filepath.Join("relative", "dir"),
	}
	for _, p := range paths {
		segs := Split(p)
		if got := Join(segs); got != filepath.Clean(p) {
			t.Errorf("round trip mismatch for %q: segs %v joined to %q", p, segs, got)
		}
	}
}

// TestSplitRootSegment tests that absolute paths keep their root as the
// first segment.
func TestSplitRootSegment(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		segs := Split(`C:\media\shows`)
		if len(segs) != 3 || segs[0] != `C:\` {
			t.Fatalf("segments mismatch: %v", segs)
		}
		return
	}

	segs := Split("/home/user")
	want := []string{"/", "home", "user"}
	if len(segs) != len(want) {
		t.Fatalf("segments mismatch: got %v want %v", segs, want)
	}
	for i := range want {
		if segs[i] != want[i] {
			t.Fatalf("segment %d mismatch: got %v want %v", i, segs, want)
		}
	}
}
