package event

// ButtonStyle selects the platform rendering of a button.
type ButtonStyle int

const (
	ButtonPrimary ButtonStyle = iota + 1
	ButtonSecondary
	ButtonSuccess
	ButtonDanger
)

// Page is the minimal renderable payload for one page of a paginated UI.
// The adapter decides how it maps onto the platform's rich message format.
type Page struct {
	Title  string
	Body   string
	Footer string
	Fields []PageField
}

// PageField is a labeled value rendered inside a page.
type PageField struct {
	Name   string
	Value  string
	Inline bool
}

// Button describes one interactive button attached to a message. ID is the
// component identifier used for correlation when the button is pressed.
type Button struct {
	ID    string
	Label string
	Emoji string
	Style ButtonStyle
}

// SelectOption is one choice in a select menu.
type SelectOption struct {
	Label       string
	Value       string
	Description string
}

// Select describes a select menu attached to a message. ID is the
// component identifier used for correlation when a choice is made.
type Select struct {
	ID          string
	Placeholder string
	Options     []SelectOption
}

// ModalField is one text input inside a modal.
type ModalField struct {
	ID          string
	Label       string
	Placeholder string
	Paragraph   bool
	Required    bool
}

// Modal describes a modal dialog opened as the primary response to an
// interaction. ID is the identifier submissions correlate by.
type Modal struct {
	ID     string
	Title  string
	Fields []ModalField
}
