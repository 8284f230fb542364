package paginate

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/dshills/discordkit/event"
)

// Button action names; the full component id is "<session id>:<action>".
const (
	actionPrevious = "previous"
	actionNext     = "next"
	actionStop     = "stop"
	actionSelect   = "select"
)

// NotYourMenuReply is the ephemeral denial sent when a user other than the
// session owner presses a paginator button.
const NotYourMenuReply = "You are not the user who created this menu!"

// session is the state shared by all paginator flavors: page position,
// reply target, owner, and the registered button set.
//
// Transitions are serialized by mu. The dispatch executor may run two
// presses on the same session concurrently; without the lock they would
// race on current and on the render cache.
type session struct {
	mu sync.Mutex

	id      string // "<uuid>:<ownerID>", the registered component prefix
	ownerID string
	pages   int
	current int
	wrap    bool

	buttons   []event.Button
	destroyed bool
	log       *slog.Logger

	// Exactly one of the two targets is set. A message-backed session owns
	// surface once the first page has been sent.
	msg     event.MessageResponder
	surface event.MessageSurface
	inter   event.InteractionResponder
}

func (s *session) isCommand() bool {
	return s.inter != nil
}

// buttonID builds the full component id for one of the session's buttons.
func (s *session) buttonID(action string) string {
	return s.id + ":" + action
}

// buttonAction extracts the action suffix from a pressed component id.
func buttonAction(componentID string) string {
	idx := strings.LastIndex(componentID, ":")
	if idx < 0 {
		return ""
	}
	return componentID[idx+1:]
}

// nextIndex returns the page to the right of current, or -1 when at the
// last page and wrapping is off.
func (s *session) nextIndex() int {
	switch {
	case s.current < s.pages-1:
		return s.current + 1
	case s.wrap:
		return 0
	default:
		return -1
	}
}

// prevIndex returns the page to the left of current, or -1 when at the
// first page and wrapping is off.
func (s *session) prevIndex() int {
	switch {
	case s.current > 0:
		return s.current - 1
	case s.wrap:
		return s.pages - 1
	default:
		return -1
	}
}

// show sends or edits the host message to display p with the session's
// buttons.
func (s *session) show(p event.Page) error {
	if s.isCommand() {
		return s.inter.EditPage(p, s.buttons)
	}
	if s.surface == nil {
		surface, err := s.msg.SendPage(p, s.buttons)
		if err != nil {
			return err
		}
		s.surface = surface
		return nil
	}
	return s.surface.EditPage(p, s.buttons)
}

// destroy tears the session down: the UI components are removed, or the
// host message deleted. The correlation registration ages out of the
// bounded registry on its own; a press racing the teardown is ignored.
func (s *session) destroy(deleteMessage bool) error {
	s.destroyed = true
	switch {
	case deleteMessage && s.isCommand():
		return s.inter.DeleteOriginal()
	case deleteMessage && s.surface != nil:
		return s.surface.Delete()
	case s.isCommand():
		return s.inter.ClearComponents()
	case s.surface != nil:
		return s.surface.ClearComponents()
	}
	// Never shown, nothing to tear down.
	return nil
}

// deny answers a press from a non-owning user.
func (s *session) deny(ev event.ComponentActivation) error {
	s.log.Warn("paginator button pressed by non-owner",
		"session", s.id, "user", ev.UserID)
	return ev.Responder.Reply(NotYourMenuReply, true)
}

// navButtons builds the standard previous/stop/next row, inserting a
// "Select This" button when withSelect is set.
func (s *session) navButtons(withSelect bool) []event.Button {
	buttons := []event.Button{
		{ID: s.buttonID(actionPrevious), Emoji: "⬅", Style: event.ButtonPrimary},
		{ID: s.buttonID(actionStop), Emoji: "\U0001F5D1", Style: event.ButtonDanger},
	}
	if withSelect {
		buttons = append(buttons, event.Button{
			ID:    s.buttonID(actionSelect),
			Label: "Select This",
			Style: event.ButtonSuccess,
		})
	}
	return append(buttons, event.Button{
		ID: s.buttonID(actionNext), Emoji: "➡", Style: event.ButtonPrimary,
	})
}
