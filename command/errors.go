package command

import "errors"

var (
	// ErrInvalidCommand indicates a command failed construction-time
	// validation.
	ErrInvalidCommand = errors.New("command: invalid command")

	// ErrInvalidCapability indicates a declared capability is malformed or
	// not allowed on the command's kind.
	ErrInvalidCapability = errors.New("command: invalid capability")
)
