// Package consts holds various global, unchanging values.
package consts

// Player process defaults.
const (
	MpvExecutable    = "mpv"
	MpvExecutableWin = "mpv.com"
)

// MpvBaseArgs are always passed to the player ahead of user flags. The
// control channel is the player's stdin, so terminal input must stay off.
var MpvBaseArgs = [...]string{"--input-terminal=no", "--input-file=/dev/stdin"}

// Preference file names inside the configuration directory.
const (
	CommandsFile  = "commands"
	MpvConfFile   = "mpv.conf"
	LoginFile     = "login"
	FolderCfgFile = "mpv-remote.conf"
)

// FileTemplatePrefix marks a command template whose body lives in a
// separate file rather than inline in the commands table.
const FileTemplatePrefix = "file="

// TemplatePlaceholder is substituted with the numeric parameter at
// dispatch time.
const TemplatePlaceholder = "{}"

// NumericCommands take a floating point parameter; every other command is
// sent verbatim. Widening this set widens what reaches the player, so
// treat changes with the same care as the folder flag allow-list.
var NumericCommands = map[string]bool{
	"vol_set":    true,
	"seek":       true,
	"subdelay":   true,
	"audiodelay": true,
}

// QuitCommand asks the player to exit gracefully before a forced kill.
const QuitCommand = "quit"

// WinRootPath is the sentinel browse path that enumerates drive letters
// on Windows hosts.
const WinRootPath = "WINROOT"

// Entry types returned in directory listings.
const (
	EntryTypeDir  = "dir"
	EntryTypeFile = "file"
)

// StaticContentTypes maps asset extensions to their content type. Anything
// else is served as octet-stream.
var StaticContentTypes = map[string]string{
	".css":  "text/css; charset=utf-8",
	".html": "text/html; charset=utf-8",
	".js":   "application/javascript; charset=utf-8",
}

// StaticCacheAge is the max-age for static asset responses, in seconds.
const StaticCacheAge = 315360000

// AuthRealm is sent in the WWW-Authenticate challenge.
const AuthRealm = `Basic realm="mpv-remote"`

// IndexFile is served for the root path.
const IndexFile = "index.html"
