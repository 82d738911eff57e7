package main

import (
	"fmt"
	"path/filepath"

	"mpvremote/internal/control"
	"mpvremote/internal/database"
	"mpvremote/internal/domain/keys"
	"mpvremote/internal/player"
	"mpvremote/internal/preferences"
	"mpvremote/internal/repo"
	"mpvremote/internal/server"

	"github.com/spf13/viper"
)

// initializeApplication sets up the application for the current run.
func initializeApplication() (*server.Server, *player.Session, *database.Database, error) {
	configDir := viper.GetString(keys.ConfigDir)

	prefs, err := preferences.Load(configDir)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load preferences from %q: %w", configDir, err)
	}

	dbPath := viper.GetString(keys.DBPath)
	if dbPath == "" {
		dbPath = filepath.Join(configDir, "history.db")
	}

	db, err := database.InitDB(dbPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize database at %q: %w", dbPath, err)
	}
	history := repo.GetHistoryStore(db.DB)

	session := player.NewSession(prefs, viper.GetString(keys.MpvPath))
	dispatcher := control.NewRouter(prefs, session)

	srv := server.New(prefs, session, dispatcher, history, viper.GetString(keys.StaticDir))
	return srv, session, db, nil
}
