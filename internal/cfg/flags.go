package cfg

import (
	"mpvremote/internal/domain/keys"

	"github.com/spf13/viper"
)

// initProgramFlags initializes the root-level program flags.
func initProgramFlags() {

	// Listen port
	rootCmd.PersistentFlags().IntP(keys.Port, "p", 9876, "Port the HTTP server listens on")
	viper.BindPFlag(keys.Port, rootCmd.PersistentFlags().Lookup(keys.Port))

	// Preferences directory (commands, mpv.conf, login)
	rootCmd.PersistentFlags().StringP(keys.ConfigDir, "c", "preferences", "Directory holding the commands table, mpv.conf and login file")
	viper.BindPFlag(keys.ConfigDir, rootCmd.PersistentFlags().Lookup(keys.ConfigDir))

	// Web frontend assets
	rootCmd.PersistentFlags().String(keys.StaticDir, "static", "Directory the web frontend assets are served from")
	viper.BindPFlag(keys.StaticDir, rootCmd.PersistentFlags().Lookup(keys.StaticDir))

	// Player binary (empty picks a platform default)
	rootCmd.PersistentFlags().String(keys.MpvPath, "", "Path to the mpv executable")
	viper.BindPFlag(keys.MpvPath, rootCmd.PersistentFlags().Lookup(keys.MpvPath))

	// History database location
	rootCmd.PersistentFlags().String(keys.DBPath, "", "Path to the playback history database (defaults to history.db in the config dir)")
	viper.BindPFlag(keys.DBPath, rootCmd.PersistentFlags().Lookup(keys.DBPath))

	// Optional TOML config file
	rootCmd.PersistentFlags().String(keys.TomlPath, "", "Path to a TOML config file (flags take precedence)")
	viper.BindPFlag(keys.TomlPath, rootCmd.PersistentFlags().Lookup(keys.TomlPath))

	rootCmd.PersistentFlags().Int(keys.DebugLevel, 0, "Debug level (0-2)")
	viper.BindPFlag(keys.DebugLevel, rootCmd.PersistentFlags().Lookup(keys.DebugLevel))

	rootCmd.PersistentFlags().String(keys.LogFile, "", "Write logs to this file as well as the console")
	viper.BindPFlag(keys.LogFile, rootCmd.PersistentFlags().Lookup(keys.LogFile))
}
