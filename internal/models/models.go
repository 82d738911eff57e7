// Package models holds structs for modelling data, e.g. directory entries, history rows, etc.
package models

import (
	"time"
)

// DirEntry is one row of a directory listing. Path carries the ordered
// segments of the entry's absolute path, matching the wire format the
// browsing frontend expects.
type DirEntry struct {
	Path     []string `json:"path"`
	Type     string   `json:"type"`
	Modified float64  `json:"modified"`
	Size     int64    `json:"size"`
}

// Listing is the response body for a directory browse request.
type Listing struct {
	Path    []string   `json:"path"`
	Content []DirEntry `json:"content"`
}

// ControlRequest is the body of a player control request.
type ControlRequest struct {
	Command string `json:"command"`
	Val     string `json:"val"`
}

// HistoryEntry records one playback start.
type HistoryEntry struct {
	ID        int64     `json:"id" db:"id"`
	Target    string    `json:"target" db:"target"`
	StartedAt time.Time `json:"started_at" db:"started_at"`
}

// Config holds settings decoded from an optional TOML config file. Zero
// values mean "not set" and leave the flag defaults alone.
type Config struct {
	Port       int    `toml:"port"`
	ConfigDir  string `toml:"config_dir"`
	StaticDir  string `toml:"static_dir"`
	MpvPath    string `toml:"mpv_path"`
	DBPath     string `toml:"db_path"`
	LogFile    string `toml:"log_file"`
	DebugLevel int    `toml:"debug"`
}
