// Package preferences loads the command table, player flags and optional
// credential from the configuration directory, and resolves per-directory
// flag overrides at play time.
package preferences

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mpvremote/internal/domain/consts"
	"mpvremote/internal/domain/regex"
	"mpvremote/internal/models"

	"github.com/rs/zerolog/log"
)

// Preferences holds everything loaded from the configuration directory.
// Immutable after Load, safe for concurrent reads.
type Preferences struct {
	Commands    map[string]models.Command
	GlobalFlags []string

	// AuthHeader is the exact Authorization header value required on
	// every request. Empty means no credential file was present and auth
	// is disabled.
	AuthHeader string
}

// Load reads the configuration directory. A missing or malformed commands
// table is fatal; missing mpv.conf or login files mean the feature is
// simply absent.
func Load(dir string) (*Preferences, error) {
	commands, err := loadCommands(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load command table: %w", err)
	}

	flags, err := loadGlobalFlags(filepath.Join(dir, consts.MpvConfFile))
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load %s: %w", consts.MpvConfFile, err)
		}
		log.Warn().Str("dir", dir).Msgf("no %s found, starting player without global flags", consts.MpvConfFile)
	}

	auth, err := loadCredential(filepath.Join(dir, consts.LoginFile))
	if err != nil {
		return nil, fmt.Errorf("failed to load credential: %w", err)
	}
	if auth == "" {
		log.Info().Msg("no login file present, authentication disabled")
	}

	return &Preferences{
		Commands:    commands,
		GlobalFlags: flags,
		AuthHeader:  auth,
	}, nil
}

// Command looks up a compiled command by name.
func (p *Preferences) Command(name string) (models.Command, bool) {
	c, ok := p.Commands[name]
	return c, ok
}

// FolderFlags returns the allow-listed player flags from the mpv-remote.conf
// beside the playback target, if one exists. Lines failing the allow-list
// are dropped, never passed through.
func FolderFlags(target string) []string {
	confPath := filepath.Join(filepath.Dir(target), consts.FolderCfgFile)
	data, err := os.ReadFile(confPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", confPath).Msg("could not read folder config")
		}
		return nil
	}

	allowed := regex.FolderFlagCompile()

	var flags []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if !allowed.MatchString(line) {
			if line != "" {
				log.Debug().Str("path", confPath).Str("line", line).Msg("dropping disallowed folder flag")
			}
			continue
		}
		flags = append(flags, "--"+line)
	}
	return flags
}

// loadCommands parses the commands table: one "name=template" per line.
// Templates prefixed with "file=" are read from the named file, resolved
// against the configuration directory when relative.
func loadCommands(dir string) (map[string]models.Command, error) {
	path := filepath.Join(dir, consts.CommandsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	commands := make(map[string]models.Command)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		name, template, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("malformed command line %q in %s", line, path)
		}
		if body, ok := strings.CutPrefix(template, consts.FileTemplatePrefix); ok {
			if !filepath.IsAbs(body) {
				body = filepath.Join(dir, body)
			}
			content, err := os.ReadFile(body)
			if err != nil {
				return nil, fmt.Errorf("failed to read template file for command %q: %w", name, err)
			}
			template = strings.TrimRight(string(content), "\n")
		}
		commands[name] = models.CompileCommand(name, template)
	}
	return commands, nil
}

// loadGlobalFlags parses an mpv.conf style file: strip "#" comments, trim
// whitespace, skip empty lines, prefix each survivor with "--".
func loadGlobalFlags(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var flags []string
	for _, line := range strings.Split(string(data), "\n") {
		option, _, _ := strings.Cut(line, "#")
		option = strings.TrimSpace(option)
		if option == "" {
			continue
		}
		flags = append(flags, "--"+option)
	}
	return flags, nil
}

// loadCredential reads the login file and precomputes the full header
// value the client must present. An absent file disables auth.
func loadCredential(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	encoded := base64.StdEncoding.EncodeToString([]byte(strings.TrimSpace(string(data))))
	return "Basic " + encoded, nil
}
