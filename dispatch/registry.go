package dispatch

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dshills/discordkit/command"
)

// Registry holds one command set per kind and enforces the uniqueness
// invariant at registration time: within a kind's correlation namespace,
// names (and for chat commands, aliases) are unique case-insensitively.
// Because registration rejects collisions up front, dispatch-time
// resolution is unambiguous.
type Registry struct {
	mu    sync.RWMutex
	kinds map[command.Kind][]*command.Command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{kinds: make(map[command.Kind][]*command.Command)}
}

// Register adds cmd to its kind's set. It returns ErrDuplicateName when the
// command's name - or for chat commands, any alias - collides with a
// command already registered in the same namespace.
func (r *Registry) Register(cmd *command.Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.kinds[cmd.Kind] {
		for _, name := range cmd.Names() {
			if existing.Matches(name) {
				return fmt.Errorf("%w: %q is already registered as a %s command",
					ErrDuplicateName, name, cmd.Kind)
			}
		}
	}

	// Chat aliases live in the same namespace as the command's own names,
	// so a command must not collide with itself either.
	seen := make(map[string]struct{}, len(cmd.Aliases)+1)
	for _, name := range cmd.Names() {
		lower := strings.ToLower(name)
		if _, dup := seen[lower]; dup {
			return fmt.Errorf("%w: command %q lists %q more than once",
				ErrDuplicateName, cmd.Name, name)
		}
		seen[lower] = struct{}{}
	}

	r.kinds[cmd.Kind] = append(r.kinds[cmd.Kind], cmd)
	return nil
}

// Resolve returns the command of the given kind whose name or alias equals
// key case-insensitively, or nil when none matches.
func (r *Registry) Resolve(kind command.Kind, key string) *command.Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, cmd := range r.kinds[kind] {
		if cmd.Matches(key) {
			return cmd
		}
	}
	return nil
}

// Commands returns the commands registered under kind.
func (r *Registry) Commands(kind command.Kind) []*command.Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*command.Command, len(r.kinds[kind]))
	copy(out, r.kinds[kind])
	return out
}

// Count returns how many commands of kind are registered.
func (r *Registry) Count(kind command.Kind) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.kinds[kind])
}
