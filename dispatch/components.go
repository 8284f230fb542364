package dispatch

import (
	"log/slog"
	"strings"

	"github.com/dshills/discordkit/correlate"
	"github.com/dshills/discordkit/event"
)

// ComponentFunc handles an interactive-component activation.
type ComponentFunc func(ev event.ComponentActivation) error

// ModalFunc handles a modal submission.
type ModalFunc func(ev event.ModalSubmit) error

// NotValidReply is sent when a button press matches no registered session.
const NotValidReply = "This button is no longer valid."

// ButtonRegistry correlates button component ids back to the callback that
// owns them. Buttons are matched by prefix: one session registers a single
// session-unique prefix and owns every button id sharing it. The registry
// is bounded; when it fills, the oldest registered prefix is evicted, so a
// press on a long-forgotten session simply misses.
type ButtonRegistry struct {
	cache *correlate.Cache[ComponentFunc]
	log   *slog.Logger
}

// NewButtonRegistry creates a standalone button registry with the given
// cache capacity. The Builder creates one per Handler; constructing your
// own is only needed for tests or custom wiring.
func NewButtonRegistry(capacity int, log *slog.Logger) (*ButtonRegistry, error) {
	if log == nil {
		log = slog.Default()
	}
	cache, err := correlate.New[ComponentFunc](capacity)
	if err != nil {
		return nil, err
	}
	return &ButtonRegistry{cache: cache, log: log}, nil
}

// Register binds every button whose component id starts with prefix to fn.
// Re-registering a live prefix replaces the callback in place.
func (r *ButtonRegistry) Register(prefix string, fn ComponentFunc) {
	r.cache.Add(prefix, fn)
	r.log.Debug("registered button set", "prefix", prefix)
}

// Resolve finds the callback owning componentID, if its prefix is still
// registered.
func (r *ButtonRegistry) Resolve(componentID string) (ComponentFunc, bool) {
	return r.cache.Find(func(prefix string) bool {
		return strings.HasPrefix(componentID, prefix)
	})
}
