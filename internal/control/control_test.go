package control

import (
	"testing"

	"mpvremote/internal/models"
	"mpvremote/internal/player"
	"mpvremote/internal/preferences"
)

type fakeSender struct {
	sent []string
}

func (f *fakeSender) Send(text string) player.SendStatus {
	f.sent = append(f.sent, text)
	return player.StatusAccepted
}

func newTestRouter() (*Router, *fakeSender) {
	prefs := &preferences.Preferences{
		Commands: map[string]models.Command{
			"pause":   models.CompileCommand("pause", "cycle pause"),
			"seek":    models.CompileCommand("seek", "seek {} absolute-percent"),
			"vol_set": models.CompileCommand("vol_set", "set volume {}"),
		},
	}
	sender := &fakeSender{}
	return NewRouter(prefs, sender), sender
}

// TestDispatchLiteral tests that a parameterless command is sent verbatim.
func TestDispatchLiteral(t *testing.T) {
	t.Parallel()

	r, sender := newTestRouter()
	if status := r.Dispatch("pause", ""); status != player.StatusAccepted {
		t.Fatalf("Dispatch() status mismatch: got %v want %v", status, player.StatusAccepted)
	}
	if len(sender.sent) != 1 || sender.sent[0] != "cycle pause" {
		t.Fatalf("sent commands mismatch: %v", sender.sent)
	}
}

// TestDispatchNumeric tests float substitution into the template.
func TestDispatchNumeric(t *testing.T) {
	t.Parallel()

	r, sender := newTestRouter()
	r.Dispatch("seek", "12.5")
	r.Dispatch("vol_set", "80")

	want := []string{"seek 12.5 absolute-percent", "set volume 80"}
	if len(sender.sent) != 2 || sender.sent[0] != want[0] || sender.sent[1] != want[1] {
		t.Fatalf("sent commands mismatch: got %v want %v", sender.sent, want)
	}
}

// TestDispatchNonNumericValue tests that a malformed value degrades to an
// empty substitution instead of a rejection.
func TestDispatchNonNumericValue(t *testing.T) {
	t.Parallel()

	r, sender := newTestRouter()
	if status := r.Dispatch("seek", "not-a-number"); status != player.StatusAccepted {
		t.Fatalf("Dispatch() status mismatch: got %v", status)
	}
	if len(sender.sent) != 1 || sender.sent[0] != "seek  absolute-percent" {
		t.Fatalf("sent commands mismatch: %v", sender.sent)
	}
}

// TestDispatchUnknownCommand tests that unknown names never reach the player.
func TestDispatchUnknownCommand(t *testing.T) {
	t.Parallel()

	r, sender := newTestRouter()
	if status := r.Dispatch("rm_rf", "1"); status != player.StatusDropped {
		t.Fatalf("Dispatch() status mismatch: got %v want %v", status, player.StatusDropped)
	}
	if len(sender.sent) != 0 {
		t.Fatalf("expected no control writes, got %v", sender.sent)
	}
}

// TestDispatchIgnoresValueForLiteral tests that parameterless commands
// ignore any supplied value.
func TestDispatchIgnoresValueForLiteral(t *testing.T) {
	t.Parallel()

	r, sender := newTestRouter()
	r.Dispatch("pause", "3.5")
	if len(sender.sent) != 1 || sender.sent[0] != "cycle pause" {
		t.Fatalf("sent commands mismatch: %v", sender.sent)
	}
}
