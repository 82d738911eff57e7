package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"mpvremote/internal/models"
	"mpvremote/internal/pathutil"
	"mpvremote/internal/player"
	"mpvremote/internal/preferences"
)

type fakePlayer struct {
	targets []string
	err     error
}

func (f *fakePlayer) Play(target string) error {
	if f.err != nil {
		return f.err
	}
	f.targets = append(f.targets, target)
	return nil
}

type dispatchCall struct {
	name string
	val  string
}

type fakeDispatcher struct {
	calls  []dispatchCall
	status player.SendStatus
}

func (f *fakeDispatcher) Dispatch(name, rawVal string) player.SendStatus {
	f.calls = append(f.calls, dispatchCall{name: name, val: rawVal})
	return f.status
}

type fakeHistory struct {
	recorded []string
	entries  []models.HistoryEntry
	since    time.Time
	limit    int
	err      error
}

func (f *fakeHistory) RecordPlay(target string) (int64, error) {
	f.recorded = append(f.recorded, target)
	return int64(len(f.recorded)), nil
}

func (f *fakeHistory) RecentPlays(since time.Time, limit int) ([]models.HistoryEntry, error) {
	f.since = since
	f.limit = limit
	return f.entries, f.err
}

type testEnv struct {
	server     *Server
	player     *fakePlayer
	dispatcher *fakeDispatcher
	history    *fakeHistory
}

func newTestEnv(t *testing.T, prefs *preferences.Preferences) *testEnv {
	t.Helper()
	if prefs == nil {
		prefs = &preferences.Preferences{}
	}
	p := &fakePlayer{}
	d := &fakeDispatcher{status: player.StatusAccepted}
	h := &fakeHistory{}
	staticDir := t.TempDir()
	return &testEnv{
		server:     New(prefs, p, d, h, staticDir),
		player:     p,
		dispatcher: d,
		history:    h,
	}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.server.Router().ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) *strings.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	return strings.NewReader(string(data))
}

// TestAuthRequired tests the exact-match credential check and challenge.
func TestAuthRequired(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, &preferences.Preferences{AuthHeader: "Basic c2VjcmV0"})

	req := httptest.NewRequest(http.MethodPost, "/control", jsonBody(t, models.ControlRequest{Command: "pause"}))
	rec := env.do(req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status mismatch: got %d want %d", rec.Code, http.StatusUnauthorized)
	}
	if got := rec.Header().Get("WWW-Authenticate"); got != `Basic realm="mpv-remote"` {
		t.Fatalf("challenge mismatch: got %q", got)
	}

	req = httptest.NewRequest(http.MethodPost, "/control", jsonBody(t, models.ControlRequest{Command: "pause"}))
	req.Header.Set("Authorization", "Basic c2VjcmV0")
	if rec = env.do(req); rec.Code != http.StatusOK {
		t.Fatalf("status mismatch with credential: got %d want %d", rec.Code, http.StatusOK)
	}
}

// TestNoCredentialMeansOpenAccess tests that without a login file every
// request is accepted.
func TestNoCredentialMeansOpenAccess(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/control", jsonBody(t, models.ControlRequest{Command: "pause"}))
	if rec := env.do(req); rec.Code != http.StatusOK {
		t.Fatalf("status mismatch: got %d want %d", rec.Code, http.StatusOK)
	}
}

// TestHandleDir tests the JSON directory listing.
func TestHandleDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "movie.mkv"), []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatalf("failed to make dir: %v", err)
	}

	env := newTestEnv(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/dir", jsonBody(t, pathutil.Split(dir)))
	rec := env.do(req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status mismatch: got %d body %q", rec.Code, rec.Body.String())
	}

	var listing models.Listing
	if err := json.NewDecoder(rec.Body).Decode(&listing); err != nil {
		t.Fatalf("failed to decode listing: %v", err)
	}
	if len(listing.Content) != 2 {
		t.Fatalf("content length mismatch: got %d want 2", len(listing.Content))
	}
	if listing.Content[0].Type != "dir" || listing.Content[1].Type != "file" {
		t.Fatalf("ordering mismatch: %+v", listing.Content)
	}
	if got := pathutil.Join(listing.Path); got != dir {
		t.Fatalf("path echo mismatch: got %q want %q", got, dir)
	}
}

// TestHandleDirErrors tests the error channels for browse requests.
func TestHandleDirErrors(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/dir", strings.NewReader("not json"))
	if rec := env.do(req); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad body status mismatch: got %d want %d", rec.Code, http.StatusBadRequest)
	}

	missing := filepath.Join(t.TempDir(), "nope")
	req = httptest.NewRequest(http.MethodPost, "/dir", jsonBody(t, pathutil.Split(missing)))
	rec := env.do(req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing dir status mismatch: got %d want %d", rec.Code, http.StatusNotFound)
	}
	if rec.Body.Len() == 0 {
		t.Fatalf("expected error text in body")
	}
}

// TestHandlePlay tests playback start and history recording.
func TestHandlePlay(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/play", jsonBody(t, []string{"/", "media", "movie.mkv"}))
	rec := env.do(req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status mismatch: got %d body %q", rec.Code, rec.Body.String())
	}

	want := filepath.Join("/", "media", "movie.mkv")
	if len(env.player.targets) != 1 || env.player.targets[0] != want {
		t.Fatalf("play targets mismatch: %v", env.player.targets)
	}
	if len(env.history.recorded) != 1 || env.history.recorded[0] != want {
		t.Fatalf("history mismatch: %v", env.history.recorded)
	}
}

// TestHandlePlaySpawnFailure tests that a failed spawn is swallowed: the
// client still sees success but no history row is written.
func TestHandlePlaySpawnFailure(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)
	env.player.err = errors.New("no such executable")

	req := httptest.NewRequest(http.MethodPost, "/play", jsonBody(t, []string{"/", "media", "movie.mkv"}))
	rec := env.do(req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status mismatch: got %d want %d", rec.Code, http.StatusOK)
	}
	if len(env.history.recorded) != 0 {
		t.Fatalf("failed plays must not be recorded, got %v", env.history.recorded)
	}
}

// TestHandleControl tests command dispatch and the always-success contract.
func TestHandleControl(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/control", jsonBody(t, models.ControlRequest{Command: "seek", Val: "12.5"}))
	rec := env.do(req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status mismatch: got %d", rec.Code)
	}
	if len(env.dispatcher.calls) != 1 || env.dispatcher.calls[0] != (dispatchCall{name: "seek", val: "12.5"}) {
		t.Fatalf("dispatch calls mismatch: %+v", env.dispatcher.calls)
	}

	// A stale channel is still a success externally.
	env.dispatcher.status = player.StatusStale
	req = httptest.NewRequest(http.MethodPost, "/control", jsonBody(t, models.ControlRequest{Command: "pause"}))
	if rec = env.do(req); rec.Code != http.StatusOK {
		t.Fatalf("stale channel status mismatch: got %d want %d", rec.Code, http.StatusOK)
	}
}

// TestStaticTraversalGuard tests that asset names are checked against the
// literal directory listing, not resolved against the filesystem.
func TestStaticTraversalGuard(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)
	if err := os.WriteFile(filepath.Join(env.server.staticDir, "app.css"), []byte("body{}"), 0644); err != nil {
		t.Fatalf("failed to write asset: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/static/app.css", nil)
	rec := env.do(req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status mismatch: got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/css; charset=utf-8" {
		t.Fatalf("content type mismatch: got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/static/../secret", nil)
	if rec = env.do(req); rec.Code != http.StatusNotFound {
		t.Fatalf("traversal status mismatch: got %d want %d", rec.Code, http.StatusNotFound)
	}

	req = httptest.NewRequest(http.MethodGet, "/static/missing.js", nil)
	if rec = env.do(req); rec.Code != http.StatusNotFound {
		t.Fatalf("missing asset status mismatch: got %d want %d", rec.Code, http.StatusNotFound)
	}
}

// TestIndexPage tests that the root path serves index.html.
func TestIndexPage(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)
	if err := os.WriteFile(filepath.Join(env.server.staticDir, "index.html"), []byte("<html>remote</html>"), 0644); err != nil {
		t.Fatalf("failed to write index: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := env.do(req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status mismatch: got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "remote") {
		t.Fatalf("index body mismatch: %q", rec.Body.String())
	}
}

// TestHandleHistory tests query parameter handling for history reads.
func TestHandleHistory(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)
	env.history.entries = []models.HistoryEntry{
		{ID: 1, Target: "/media/movie.mkv", StartedAt: time.Now()},
	}

	req := httptest.NewRequest(http.MethodGet, "/history?since=2025-01-02&limit=5", nil)
	rec := env.do(req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status mismatch: got %d body %q", rec.Code, rec.Body.String())
	}
	if env.history.limit != 5 {
		t.Fatalf("limit mismatch: got %d want 5", env.history.limit)
	}
	if env.history.since.IsZero() {
		t.Fatalf("since should be parsed, got zero time")
	}

	var entries []models.HistoryEntry
	if err := json.NewDecoder(rec.Body).Decode(&entries); err != nil {
		t.Fatalf("failed to decode history: %v", err)
	}
	if len(entries) != 1 || entries[0].Target != "/media/movie.mkv" {
		t.Fatalf("entries mismatch: %+v", entries)
	}

	req = httptest.NewRequest(http.MethodGet, "/history?since=garbage", nil)
	if rec = env.do(req); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad since status mismatch: got %d want %d", rec.Code, http.StatusBadRequest)
	}
}
