// Package control validates incoming control commands and routes them to
// the player session.
package control

import (
	"strconv"

	"mpvremote/internal/domain/consts"
	"mpvremote/internal/player"
	"mpvremote/internal/preferences"

	"github.com/rs/zerolog/log"
)

// Sender is the slice of the player session the router needs.
type Sender interface {
	Send(text string) player.SendStatus
}

// Router resolves command names against the loaded command table and
// forwards the resolved text to the player.
type Router struct {
	prefs   *preferences.Preferences
	session Sender
}

// NewRouter wires a command table to a player session.
func NewRouter(prefs *preferences.Preferences, session Sender) *Router {
	return &Router{prefs: prefs, session: session}
}

// Dispatch resolves and forwards one command. Unknown names never reach
// the player. A numeric command with a value that fails to parse degrades
// to an empty substitution rather than a rejection.
func (r *Router) Dispatch(name, rawVal string) player.SendStatus {
	cmd, ok := r.prefs.Command(name)
	if !ok {
		log.Debug().Str("command", name).Msg("unknown control command, not routed")
		return player.StatusDropped
	}

	var val *float64
	if consts.NumericCommands[name] {
		if f, err := strconv.ParseFloat(rawVal, 64); err == nil {
			val = &f
		} else {
			log.Debug().Str("command", name).Str("val", rawVal).Msg("non-numeric parameter, substituting empty")
		}
	}

	return r.session.Send(cmd.Resolve(val))
}
