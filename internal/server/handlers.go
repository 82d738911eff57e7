package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"mpvremote/internal/catalog"
	"mpvremote/internal/models"
	"mpvremote/internal/pathutil"

	"github.com/araddon/dateparse"
	"github.com/rs/zerolog/log"
)

// handleDir lists a directory given its ordered path segments.
func (s *Server) handleDir(w http.ResponseWriter, r *http.Request) {
	segs, ok := decodeSegments(w, r)
	if !ok {
		return
	}

	path := pathutil.Join(segs)
	entries, err := catalog.List(path)
	if err != nil {
		respondNotFound(w, err.Error())
		return
	}

	writeJSON(w, models.Listing{
		Path:    pathutil.Split(path),
		Content: entries,
	})
}

// handlePlay starts playback of the file or glob named by the path
// segments. The previous player, if any, is always replaced. A spawn
// failure is logged but still answered with success; player I/O never
// fails a request.
func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	segs, ok := decodeSegments(w, r)
	if !ok {
		return
	}

	target := pathutil.Join(segs)
	if err := s.player.Play(target); err != nil {
		log.Error().Err(err).Str("target", target).Msg("failed to start playback")
		w.WriteHeader(http.StatusOK)
		return
	}

	if s.history != nil {
		if _, err := s.history.RecordPlay(target); err != nil {
			log.Error().Err(err).Str("target", target).Msg("failed to record playback history")
		}
	}

	w.WriteHeader(http.StatusOK)
}

// handleControl dispatches one control command. The response is success
// regardless of whether the command reached a live player; a stale
// channel is logged, not surfaced.
func (s *Server) handleControl(w http.ResponseWriter, r *http.Request) {
	var req models.ControlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	status := s.dispatcher.Dispatch(req.Command, req.Val)
	log.Debug().Str("command", req.Command).Stringer("status", status).Msg("control dispatched")

	w.WriteHeader(http.StatusOK)
}

// handleHistory returns recent playback starts, most recent first.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	var since time.Time
	if raw := r.URL.Query().Get("since"); raw != "" {
		t, err := dateparse.ParseAny(raw)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid since value %q: %v", raw, err), http.StatusBadRequest)
			return
		}
		since = t
	}

	limit := 25
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid limit value %q: %v", raw, err), http.StatusBadRequest)
			return
		}
		limit = n
	}

	entries, err := s.history.RecentPlays(since, limit)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []models.HistoryEntry{}
	}

	writeJSON(w, entries)
}

// decodeSegments reads an ordered path-segment array from the body. A body
// that does not parse is a client error; an empty array never names a
// valid path.
func decodeSegments(w http.ResponseWriter, r *http.Request) ([]string, bool) {
	var segs []string
	if err := json.NewDecoder(r.Body).Decode(&segs); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return nil, false
	}
	if len(segs) == 0 {
		respondNotFound(w, "empty path")
		return nil, false
	}
	return segs, true
}

// respondNotFound writes the coarse error channel: a 404 with the error
// text as plain-text body.
func respondNotFound(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(msg))
}

// writeJSON encodes v as the response body.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode JSON response")
	}
}
