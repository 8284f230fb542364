package event

// MessageResponder replies in the channel a message arrived from.
type MessageResponder interface {
	// Reply sends a plain-text reply to the originating message.
	Reply(content string) error

	// SendPage sends a rendered page with optional buttons and returns a
	// surface for later edits to the sent message.
	SendPage(p Page, buttons []Button) (MessageSurface, error)
}

// MessageSurface is a previously sent message the library keeps editing.
type MessageSurface interface {
	// EditPage replaces the message's page payload and buttons.
	EditPage(p Page, buttons []Button) error

	// ClearComponents removes all interactive components from the message.
	ClearComponents() error

	// Delete deletes the message.
	Delete() error
}

// InteractionResponder responds to a structured-command, component, or
// modal interaction.
type InteractionResponder interface {
	// Acknowledged reports whether the interaction has already received its
	// primary response (a reply or a defer).
	Acknowledged() bool

	// Defer acknowledges the interaction with a visible "thinking" state.
	Defer(ephemeral bool) error

	// DeferUpdate acknowledges a component interaction without changing the
	// host message. Only valid for component activations.
	DeferUpdate() error

	// Reply sends the primary reply. Ephemeral replies are visible only to
	// the invoking user.
	Reply(content string, ephemeral bool) error

	// ReplyMenu sends the primary reply with a select menu attached.
	ReplyMenu(content string, menu Select, ephemeral bool) error

	// OpenModal opens a modal dialog as the primary response. Only valid
	// before any other response has been sent.
	OpenModal(m Modal) error

	// EditOriginal edits the original (typically deferred) response text,
	// dropping any embeds and components it carried.
	EditOriginal(content string) error

	// EditPage replaces the original response with a rendered page and
	// buttons.
	EditPage(p Page, buttons []Button) error

	// ClearComponents removes all components from the original response.
	ClearComponents() error

	// DeleteOriginal deletes the original response.
	DeleteOriginal() error
}

// AutocompleteResponder answers an autocomplete request.
type AutocompleteResponder interface {
	// Suggest sends the suggestion list. An empty list is valid and clears
	// the suggestions.
	Suggest(choices []Choice) error
}

// CommandRegistrar pushes structured command descriptors to the platform.
type CommandRegistrar interface {
	PushCommands(specs []CommandSpec) error
}

// OwnerResolver looks up the application owner's user id.
type OwnerResolver interface {
	AppOwnerID() (string, error)
}
