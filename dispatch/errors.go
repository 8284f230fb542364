package dispatch

import "errors"

var (
	// ErrNoCommands indicates Build was called with no commands added.
	ErrNoCommands = errors.New("dispatch: cannot build a handler without any commands")

	// ErrInvalidPrefix indicates the chat prefix is not a single
	// non-whitespace character.
	ErrInvalidPrefix = errors.New("dispatch: prefix must be a single non-whitespace character")

	// ErrDuplicateName indicates a command name or alias collides with one
	// already registered in the same namespace.
	ErrDuplicateName = errors.New("dispatch: duplicate command name")

	// ErrDuplicateComponentID indicates two commands declare a capability
	// with the same component id.
	ErrDuplicateComponentID = errors.New("dispatch: duplicate component id")
)
