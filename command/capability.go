package command

import (
	"fmt"

	"github.com/dshills/discordkit/event"
)

// Capability is an interactive-component declaration attached to a Command.
// The concrete variants are Buttons, SelectMenu, Modal, and Autocomplete.
type Capability interface {
	validate(owner *Command) error
}

// Buttons declares that a command attaches buttons whose component ids all
// share ID as a prefix. When any such button is pressed, Handle is invoked
// with the activation.
type Buttons struct {
	// ID is the shared component-id prefix. Individual button ids are
	// conventionally "<ID>:<name>".
	ID     string
	Handle func(ev event.ComponentActivation) error
}

func (b Buttons) validate(owner *Command) error {
	if b.ID == "" {
		return fmt.Errorf("%w: command %q declares Buttons with empty id", ErrInvalidCapability, owner.Name)
	}
	if b.Handle == nil {
		return fmt.Errorf("%w: command %q declares Buttons with nil handler", ErrInvalidCapability, owner.Name)
	}
	return nil
}

// SelectMenu declares that a command attaches a select menu. Activations
// are matched by exact component id.
type SelectMenu struct {
	ID     string
	Handle func(ev event.ComponentActivation) error
}

func (s SelectMenu) validate(owner *Command) error {
	if s.ID == "" {
		return fmt.Errorf("%w: command %q declares SelectMenu with empty id", ErrInvalidCapability, owner.Name)
	}
	if s.Handle == nil {
		return fmt.Errorf("%w: command %q declares SelectMenu with nil handler", ErrInvalidCapability, owner.Name)
	}
	return nil
}

// Modal declares that a command opens a modal. Submissions are matched by
// exact modal id.
type Modal struct {
	ID     string
	Handle func(ev event.ModalSubmit) error
}

func (m Modal) validate(owner *Command) error {
	if m.ID == "" {
		return fmt.Errorf("%w: command %q declares Modal with empty id", ErrInvalidCapability, owner.Name)
	}
	if m.Handle == nil {
		return fmt.Errorf("%w: command %q declares Modal with nil handler", ErrInvalidCapability, owner.Name)
	}
	return nil
}

// Autocomplete declares that a slash command answers autocomplete requests
// for its options.
type Autocomplete struct {
	Handle func(ev event.Autocomplete) error
}

// AutocompleteHandler returns the command's autocomplete handler, or nil
// when the capability was not declared.
func (c *Command) AutocompleteHandler() func(ev event.Autocomplete) error {
	for _, cap := range c.Capabilities {
		if a, ok := cap.(Autocomplete); ok {
			return a.Handle
		}
	}
	return nil
}

func (a Autocomplete) validate(owner *Command) error {
	if owner.Kind != KindSlash {
		return fmt.Errorf("%w: %s command %q cannot declare Autocomplete", ErrInvalidCapability, owner.Kind, owner.Name)
	}
	if a.Handle == nil {
		return fmt.Errorf("%w: command %q declares Autocomplete with nil handler", ErrInvalidCapability, owner.Name)
	}
	return nil
}
