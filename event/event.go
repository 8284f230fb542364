package event

// ComponentType identifies which interactive element produced a
// ComponentActivation.
type ComponentType int

const (
	// ComponentButton is a clickable message button.
	ComponentButton ComponentType = iota + 1
	// ComponentSelect is a select menu (string or entity).
	ComponentSelect
)

// Message is an inbound free-text chat message.
type Message struct {
	ID         string
	ChannelID  string
	GuildID    string
	AuthorID   string
	AuthorName string
	Content    string
	FromBot    bool

	Responder MessageResponder
}

// CommandInvocation is an inbound structured (slash) command invocation.
// Name is the platform-assigned full command name, including any
// subcommand path ("config set").
type CommandInvocation struct {
	Name     string
	UserID   string
	UserName string
	Options  map[string]string

	Responder InteractionResponder
}

// ContextInvocation is an inbound context-menu invocation. Exactly one of
// TargetUserID or TargetMessageID is set, depending on whether the command
// was invoked on a user or on a message.
type ContextInvocation struct {
	Name     string
	UserID   string
	UserName string

	TargetUserID    string
	TargetMessageID string
	TargetContent   string

	Responder InteractionResponder
}

// Autocomplete is an inbound autocomplete request for a structured command
// option. Partial holds the text the user has typed so far into the focused
// option.
type Autocomplete struct {
	CommandName string
	Focused     string
	Partial     string

	Responder AutocompleteResponder
}

// ComponentActivation is an inbound activation of an interactive component.
// ComponentID is the short-lived identifier assigned when the component was
// attached; Values carries the chosen values for select menus.
type ComponentActivation struct {
	Type        ComponentType
	ComponentID string
	UserID      string
	UserName    string
	Values      []string

	Responder InteractionResponder
}

// ModalSubmit is an inbound modal submission. Fields maps the modal's input
// identifiers to the submitted values.
type ModalSubmit struct {
	ModalID string
	UserID  string
	Fields  map[string]string

	Responder InteractionResponder
}

// Ready signals that the platform session is live. It carries the
// collaborators the dispatcher needs exactly once at startup: a registrar to
// push structured command descriptors, and a resolver for the application
// owner when no owner ids were configured.
type Ready struct {
	Registrar CommandRegistrar
	Owner     OwnerResolver
}

// SpecKind identifies the platform surface of a pushed command descriptor.
type SpecKind int

const (
	SpecSlash SpecKind = iota + 1
	SpecUserContext
	SpecMessageContext
)

// CommandSpec is the minimal descriptor of a structured command pushed to
// the platform at ready time. Rich payloads (options, localization) are the
// adapter's concern.
type CommandSpec struct {
	Name        string
	Description string
	Kind        SpecKind
}

// Choice is a single autocomplete suggestion.
type Choice struct {
	Name  string
	Value string
}
