package server

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"mpvremote/internal/domain/consts"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// handleIndex serves the landing page from the static asset directory.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data, err := os.ReadFile(filepath.Join(s.staticDir, consts.IndexFile))
	if err != nil {
		respondNotFound(w, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

// handleStatic serves one asset by name. The name must appear in the
// static directory's literal listing; that membership check is the sole
// path traversal guard, so no filesystem resolution happens first.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}

	if !s.staticAssetExists(name) {
		respondNotFound(w, "file not found")
		return
	}

	data, err := os.ReadFile(filepath.Join(s.staticDir, name))
	if err != nil {
		log.Error().Err(err).Str("name", name).Msg("failed to read static asset")
		respondNotFound(w, "error reading file")
		return
	}

	ct := consts.StaticContentTypes[filepath.Ext(name)]
	if ct == "" {
		ct = "application/octet-stream"
	}
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", consts.StaticCacheAge))
	w.Header().Set("Content-Type", ct)
	w.Write(data)
}

// staticAssetExists reports whether name is a direct child of the static
// directory.
func (s *Server) staticAssetExists(name string) bool {
	entries, err := os.ReadDir(s.staticDir)
	if err != nil {
		log.Warn().Err(err).Str("dir", s.staticDir).Msg("could not list static directory")
		return false
	}
	for _, e := range entries {
		if e.Name() == name {
			return true
		}
	}
	return false
}
