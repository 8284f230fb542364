package dispatch

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/dshills/discordkit/command"
	"github.com/dshills/discordkit/correlate"
)

// DefaultPrefix is the chat command prefix used when none is configured.
const DefaultPrefix = "!"

// DefaultCacheSize is the component correlation cache capacity used when
// none is configured.
const DefaultCacheSize = 100

// Builder assembles a Handler. All validation runs in Build so that
// misconfiguration is caught before the dispatcher goes live.
type Builder struct {
	commands  []*command.Command
	owners    []string
	prefix    string
	cacheSize int
	log       *slog.Logger
	metrics   bool
	help      bool
}

// NewBuilder creates a builder with the default prefix and cache size.
func NewBuilder() *Builder {
	return &Builder{
		prefix:    DefaultPrefix,
		cacheSize: DefaultCacheSize,
	}
}

// AddCommands queues commands for registration. May be called repeatedly.
func (b *Builder) AddCommands(cmds ...*command.Command) *Builder {
	b.commands = append(b.commands, cmds...)
	return b
}

// AddOwners adds user ids allowed to run owner-only commands. When no
// owners are configured, the application owner is resolved once at ready
// time.
func (b *Builder) AddOwners(ids ...string) *Builder {
	b.owners = append(b.owners, ids...)
	return b
}

// WithPrefix sets the chat command prefix. It must be a single
// non-whitespace character.
func (b *Builder) WithPrefix(prefix string) *Builder {
	b.prefix = prefix
	return b
}

// WithCacheSize sets the component correlation cache capacity.
func (b *Builder) WithCacheSize(n int) *Builder {
	b.cacheSize = n
	return b
}

// WithLogger sets the structured logger used by the handler and executor.
func (b *Builder) WithLogger(log *slog.Logger) *Builder {
	b.log = log
	return b
}

// WithMetrics enables per-command dispatch statistics.
func (b *Builder) WithMetrics() *Builder {
	b.metrics = true
	return b
}

// WithHelpCommand registers a built-in "help" chat command that lists the
// registered commands with their help text. Build fails with
// ErrDuplicateName if the caller registered a command named "help" too.
func (b *Builder) WithHelpCommand() *Builder {
	b.help = true
	return b
}

// Build validates the configuration and constructs the Handler.
func (b *Builder) Build() (*Handler, error) {
	if len(b.commands) == 0 {
		return nil, ErrNoCommands
	}
	if utf8.RuneCountInString(b.prefix) != 1 || strings.TrimSpace(b.prefix) == "" {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidPrefix, b.prefix)
	}

	log := b.log
	if log == nil {
		log = slog.Default()
	}

	var metrics *Metrics
	if b.metrics {
		metrics = NewMetrics()
	}

	buttons, err := NewButtonRegistry(b.cacheSize, log)
	if err != nil {
		return nil, err
	}
	selects, err := correlate.New[ComponentFunc](b.cacheSize)
	if err != nil {
		return nil, err
	}
	modals, err := correlate.New[ModalFunc](b.cacheSize)
	if err != nil {
		return nil, err
	}

	h := &Handler{
		registry: NewRegistry(),
		buttons:  buttons,
		selects:  selects,
		modals:   modals,
		executor: NewExecutor(log, metrics),
		prefix:   b.prefix,
		owners:   append([]string(nil), b.owners...),
		log:      log,
		metrics:  metrics,
	}

	componentOwners := make(map[string]string)
	for _, cmd := range b.commands {
		if err := cmd.Validate(); err != nil {
			return nil, err
		}
		if err := h.registry.Register(cmd); err != nil {
			return nil, err
		}
		if err := h.registerCapabilities(cmd, componentOwners); err != nil {
			return nil, err
		}
	}

	if b.help {
		if err := h.registry.Register(helpCommand(h)); err != nil {
			return nil, err
		}
	}

	for _, kind := range []command.Kind{
		command.KindChat, command.KindSlash,
		command.KindUserContext, command.KindMessageContext,
	} {
		log.Info("registered commands",
			"kind", kind.String(), "count", h.registry.Count(kind))
	}

	return h, nil
}

// registerCapabilities wires a command's declared interactive components
// into the correlation caches. This is the registration-time counterpart of
// the original runtime capability checks: by the time dispatch starts,
// every component callback is already resolvable. owners tracks which
// command claimed each component id so that colliding declarations fail the
// build instead of silently overwriting each other.
func (h *Handler) registerCapabilities(cmd *command.Command, owners map[string]string) error {
	claim := func(kind, id string) error {
		key := kind + " " + id
		if owner, taken := owners[key]; taken {
			return fmt.Errorf("%w: %s id %q is declared by both %q and %q",
				ErrDuplicateComponentID, kind, id, owner, cmd.Name)
		}
		owners[key] = cmd.Name
		return nil
	}

	for _, cap := range cmd.Capabilities {
		switch c := cap.(type) {
		case command.Buttons:
			if err := claim("button", c.ID); err != nil {
				return err
			}
			h.buttons.Register(c.ID, c.Handle)
		case command.SelectMenu:
			if err := claim("select", c.ID); err != nil {
				return err
			}
			h.selects.Add(c.ID, c.Handle)
		case command.Modal:
			if err := claim("modal", c.ID); err != nil {
				return err
			}
			h.modals.Add(c.ID, c.Handle)
		case command.Autocomplete:
			// Resolved through the command itself at dispatch time.
		}
	}
	return nil
}
