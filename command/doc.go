// Package command defines the registrable unit of behavior: a named
// Command bound to one invocation surface (Kind) plus optional interactive
// capabilities.
//
// A Command is immutable after registration. Its identity is the
// case-insensitive Name (and, for chat commands, the Aliases); the
// dispatcher enforces uniqueness within each kind's namespace at
// registration time so that dispatch-time resolution is never ambiguous.
//
// Instead of runtime type-assertions ("does this command also handle
// buttons?"), interactive behavior is declared with explicit capability
// values: Buttons, SelectMenu, Modal, and Autocomplete. The dispatcher
// inspects these once, at registration, and wires the component callbacks
// into its correlation caches.
package command
