package paginate

import "errors"

var (
	// ErrNoButtonRegistry indicates no button registry was supplied.
	ErrNoButtonRegistry = errors.New("paginate: a paginator must have a button registry")

	// ErrAmbiguousTarget indicates the builder was given both a message
	// target and a command target, or neither.
	ErrAmbiguousTarget = errors.New("paginate: exactly one reply target must be set")

	// ErrNoOwner indicates no owner user id was set and none could be
	// inferred from the reply target.
	ErrNoOwner = errors.New("paginate: an owner user id is required")

	// ErrNoPages indicates the paginator was given zero pages of content.
	ErrNoPages = errors.New("paginate: at least one page is required")

	// ErrNoRenderer indicates a dynamic paginator was built without a page
	// renderer.
	ErrNoRenderer = errors.New("paginate: a dynamic paginator must have a renderer")

	// ErrBothSelect indicates both a command-style and a message-style
	// select continuation were supplied; only the one matching the reply
	// target may be wired.
	ErrBothSelect = errors.New("paginate: cannot have both select continuations")

	// ErrSelectMismatch indicates the select continuation's style does not
	// match the configured reply target.
	ErrSelectMismatch = errors.New("paginate: select continuation does not match the reply target")
)
