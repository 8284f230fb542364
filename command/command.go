package command

import (
	"fmt"
	"strings"

	"github.com/dshills/discordkit/event"
)

// Kind is the invocation surface of a command.
type Kind int

const (
	// KindChat is a free-text message starting with the configured prefix.
	KindChat Kind = iota + 1
	// KindSlash is a structured (slash) command invocation.
	KindSlash
	// KindUserContext is a context-menu command invoked on a user.
	KindUserContext
	// KindMessageContext is a context-menu command invoked on a message.
	KindMessageContext
)

// String returns the kind's display name.
func (k Kind) String() string {
	switch k {
	case KindChat:
		return "chat"
	case KindSlash:
		return "slash"
	case KindUserContext:
		return "user context"
	case KindMessageContext:
		return "message context"
	default:
		return "unknown"
	}
}

// DefaultHelp is used when a command supplies no help text.
const DefaultHelp = "No help provided for this command."

// ChatFunc handles a chat command. args is the message content with the
// prefix, command name, and following separator stripped.
type ChatFunc func(ev event.Message, args string) error

// SlashFunc handles a structured command invocation.
type SlashFunc func(ev event.CommandInvocation) error

// ContextFunc handles a user- or message-context invocation.
type ContextFunc func(ev event.ContextInvocation) error

// Command is a named, registrable unit of behavior. Exactly one of the
// handler fields matching Kind must be set. Aliases and OwnerOnly apply to
// chat commands only.
type Command struct {
	Name      string
	Help      string
	Kind      Kind
	Aliases   []string
	OwnerOnly bool

	Chat    ChatFunc
	Slash   SlashFunc
	Context ContextFunc

	// Capabilities declares the command's interactive components. The
	// dispatcher registers them into its correlation caches at build time.
	Capabilities []Capability
}

// HelpText returns Help, or DefaultHelp when unset.
func (c *Command) HelpText() string {
	if c.Help == "" {
		return DefaultHelp
	}
	return c.Help
}

// Names returns the command's name followed by its aliases. For chat
// commands this is the full correlation namespace the command occupies.
func (c *Command) Names() []string {
	names := make([]string, 0, len(c.Aliases)+1)
	names = append(names, c.Name)
	names = append(names, c.Aliases...)
	return names
}

// Matches reports whether key equals the command's name or one of its
// aliases, compared case-insensitively.
func (c *Command) Matches(key string) bool {
	for _, n := range c.Names() {
		if strings.EqualFold(n, key) {
			return true
		}
	}
	return false
}

// Validate checks the command's internal consistency. It is called by the
// dispatcher builder so that malformed commands fail at build time, never
// at dispatch time.
func (c *Command) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: command has no name", ErrInvalidCommand)
	}
	if strings.ContainsAny(c.Name, " \t\n") {
		return fmt.Errorf("%w: name %q must not contain whitespace", ErrInvalidCommand, c.Name)
	}

	switch c.Kind {
	case KindChat:
		if c.Chat == nil {
			return fmt.Errorf("%w: chat command %q has no Chat handler", ErrInvalidCommand, c.Name)
		}
		if c.Slash != nil || c.Context != nil {
			return fmt.Errorf("%w: chat command %q has a non-chat handler set", ErrInvalidCommand, c.Name)
		}
		for _, a := range c.Aliases {
			if a == "" || strings.ContainsAny(a, " \t\n") {
				return fmt.Errorf("%w: command %q has invalid alias %q", ErrInvalidCommand, c.Name, a)
			}
		}
	case KindSlash:
		if c.Slash == nil {
			return fmt.Errorf("%w: slash command %q has no Slash handler", ErrInvalidCommand, c.Name)
		}
		if err := c.requirePlainStructured(); err != nil {
			return err
		}
	case KindUserContext, KindMessageContext:
		if c.Context == nil {
			return fmt.Errorf("%w: %s command %q has no Context handler", ErrInvalidCommand, c.Kind, c.Name)
		}
		if err := c.requirePlainStructured(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: command %q has unknown kind %d", ErrInvalidCommand, c.Name, c.Kind)
	}

	for _, cap := range c.Capabilities {
		if err := cap.validate(c); err != nil {
			return err
		}
	}
	return nil
}

// requirePlainStructured rejects chat-only fields on non-chat commands.
func (c *Command) requirePlainStructured() error {
	if len(c.Aliases) > 0 {
		return fmt.Errorf("%w: %s command %q cannot have aliases", ErrInvalidCommand, c.Kind, c.Name)
	}
	if c.OwnerOnly {
		return fmt.Errorf("%w: %s command %q cannot be owner-only", ErrInvalidCommand, c.Kind, c.Name)
	}
	if c.Chat != nil {
		return fmt.Errorf("%w: %s command %q has a Chat handler set", ErrInvalidCommand, c.Kind, c.Name)
	}
	return nil
}

// Spec returns the platform descriptor for structured commands, or false
// for chat commands, which are never pushed to the platform.
func (c *Command) Spec() (event.CommandSpec, bool) {
	spec := event.CommandSpec{Name: c.Name, Description: c.HelpText()}
	switch c.Kind {
	case KindSlash:
		spec.Kind = event.SpecSlash
	case KindUserContext:
		spec.Kind = event.SpecUserContext
	case KindMessageContext:
		spec.Kind = event.SpecMessageContext
	default:
		return event.CommandSpec{}, false
	}
	return spec, true
}
