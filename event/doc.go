// Package event defines the boundary between the dispatch engine and the
// messaging platform.
//
// Inbound values (Message, CommandInvocation, ContextInvocation,
// Autocomplete, ComponentActivation, ModalSubmit, Ready) are plain structs
// built by a platform adapter from raw gateway traffic. Outbound behavior is
// expressed as small interfaces (MessageResponder, InteractionResponder,
// MessageSurface, ...) that the adapter implements against the real
// platform session.
//
// Keeping both directions platform-agnostic means the dispatcher, the
// correlation cache, and the paginators can all be exercised in tests with
// in-memory fakes; only the discord package touches the wire.
//
// # Reply model
//
// Interactions on the platform are acknowledged exactly once. A handler may
// either reply directly, or defer and later edit the original response.
// InteractionResponder.Acknowledged reports whether the primary reply has
// happened, which the executor uses to pick between editing the deferred
// response and sending a fresh ephemeral reply when a handler fails.
package event
