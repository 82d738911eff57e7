// Package player owns the single mpv subprocess and its stdin control
// stream. Every operation is serialized behind one mutex: two concurrent
// play requests can never race on the process handle, and a control write
// can never hit a stream that is mid-teardown.
package player

import (
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"mpvremote/internal/domain/consts"
	"mpvremote/internal/preferences"

	"github.com/rs/zerolog/log"
)

// SendStatus reports what happened to a control write. Every outcome is a
// success from the client's perspective; stale channels are only logged.
type SendStatus int

const (
	// StatusAccepted means the write reached the control stream.
	StatusAccepted SendStatus = iota
	// StatusStale means there was no live stream or the write failed.
	StatusStale
	// StatusDropped means the command was never routed to the player.
	StatusDropped
)

func (s SendStatus) String() string {
	switch s {
	case StatusAccepted:
		return "accepted"
	case StatusStale:
		return "stale"
	case StatusDropped:
		return "dropped"
	default:
		return "unknown"
	}
}

// process is the slice of os.Process the session needs.
type process interface {
	Kill() error
}

// launchFunc starts the player with the given argv and hands back its
// handle and writable control stream. Swappable in tests.
type launchFunc func(argv []string) (process, io.WriteCloser, error)

// Session is the single player subprocess owner. Exactly zero or one live
// player is attributable to the service at any time.
type Session struct {
	mu      sync.Mutex
	prefs   *preferences.Preferences
	mpvPath string
	launch  launchFunc

	proc  process
	stdin io.WriteCloser
}

// NewSession returns an idle session. mpvPath may be empty to use the
// platform default executable name.
func NewSession(prefs *preferences.Preferences, mpvPath string) *Session {
	if mpvPath == "" {
		mpvPath = DefaultMpvPath()
	}
	return &Session{
		prefs:   prefs,
		mpvPath: mpvPath,
		launch:  launchMpv,
	}
}

// DefaultMpvPath returns the player executable name for this platform.
func DefaultMpvPath() string {
	if runtime.GOOS == "windows" {
		return consts.MpvExecutableWin
	}
	return consts.MpvExecutable
}

// Play tears down any previous player and spawns a new one for target.
// A play request always wins over whatever was previously playing; quit
// and kill failures on the old process are logged and swallowed.
func (s *Session) Play(target string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.quitLocked()

	argv := s.buildArgs(target)
	log.Info().Strs("argv", argv).Msg("starting player")

	proc, stdin, err := s.launch(argv)
	if err != nil {
		return fmt.Errorf("failed to start player: %w", err)
	}

	s.proc = proc
	s.stdin = stdin
	return nil
}

// Send writes one control command to the player. A dead or missing
// control channel is reported as stale, never as an error: the caller's
// contract is best-effort delivery.
func (s *Session) Send(text string) SendStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stdin == nil {
		log.Warn().Str("command", text).Msg("no player session, dropping control write")
		return StatusStale
	}
	if _, err := io.WriteString(s.stdin, text+"\n"); err != nil {
		log.Warn().Err(err).Str("command", text).Msg("control channel is stale")
		return StatusStale
	}
	log.Debug().Str("command", text).Msg("control command written")
	return StatusAccepted
}

// Stop tears down the current player, if any. Used at shutdown.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quitLocked()
}

// quitLocked asks the current player to quit, then kills it regardless.
// The kill can race the graceful quit; both failures are swallowed. Must
// hold s.mu.
func (s *Session) quitLocked() {
	if s.stdin != nil {
		if _, err := io.WriteString(s.stdin, consts.QuitCommand+"\n"); err != nil {
			log.Debug().Err(err).Msg("graceful quit write failed")
		}
	}
	if s.proc != nil {
		if err := s.proc.Kill(); err != nil {
			log.Debug().Err(err).Msg("player kill failed")
		}
	}
}

// buildArgs resolves the full player argument list for target:
// base args, then global flags, then allow-listed folder overrides, then
// the terminator and the playback targets.
func (s *Session) buildArgs(target string) []string {
	targets := expandTarget(target)

	argv := make([]string, 0, 1+len(consts.MpvBaseArgs)+len(s.prefs.GlobalFlags)+len(targets)+8)
	argv = append(argv, s.mpvPath)
	argv = append(argv, consts.MpvBaseArgs[:]...)
	argv = append(argv, s.prefs.GlobalFlags...)
	argv = append(argv, preferences.FolderFlags(target)...)
	argv = append(argv, "--")
	argv = append(argv, targets...)
	return argv
}

// expandTarget expands glob targets server-side so the play-all affordance
// feeds the player a concrete playlist. Non-glob targets and patterns with
// no matches pass through untouched.
func expandTarget(target string) []string {
	if !strings.ContainsAny(target, "*?[") {
		return []string{target}
	}
	matches, err := filepath.Glob(target)
	if err != nil || len(matches) == 0 {
		return []string{target}
	}
	return matches
}

// launchMpv starts the real player process with its stdin attached as the
// control stream. A detached goroutine reaps the process when it exits;
// it never mutates session state, so a dead player simply leaves a stale
// handle until the next play request.
func launchMpv(argv []string) (process, io.WriteCloser, error) {
	cmd := exec.Command(argv[0], argv[1:]...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open control stream: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, nil, err
	}

	pid := cmd.Process.Pid
	go func() {
		err := cmd.Wait()
		log.Debug().Err(err).Int("pid", pid).Msg("player exited")
	}()

	return cmd.Process, stdin, nil
}
