// Package keys holds the viper keys used throughout the program.
package keys

// Terminal keys
const (
	ConfigDir string = "config-dir"
	StaticDir string = "static-dir"
	DBPath    string = "db-path"
	MpvPath   string = "mpv-path"
	Port      string = "port"
	TomlPath  string = "config-file"

	DebugLevel string = "debug"
	LogFile    string = "log-file"
)

// Primary program
const (
	Execute string = "execute"
)
