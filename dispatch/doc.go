// Package dispatch routes inbound platform events to registered commands
// and coordinates their execution.
//
// The Handler is the central switchboard. A platform adapter feeds it one
// event per inbound gateway payload; the Handler classifies the event,
// resolves the responsible command or component callback, and hands the
// invocation to the Executor, which runs it off the event-delivery path
// with failure containment.
//
// # Resolution
//
// Each event kind resolves through a different surface:
//
//   - Chat messages: the configured single-character prefix, then a
//     case-insensitive name/alias lookup in the chat namespace.
//   - Structured and context-menu commands: exact full-name match against
//     the platform-assigned command name.
//   - Buttons: the component id is matched by *prefix* against keys in a
//     bounded correlation cache, so one session can own many buttons under
//     a shared prefix.
//   - Select menus and modals: exact component/modal id match.
//
// A miss is not an error. Most unresolved events are dropped silently;
// button presses are the exception and get an ephemeral "no longer valid"
// reply, because the owning session may simply have been evicted and the
// user needs feedback.
//
// # Build-time validation
//
// Handlers are constructed through the Builder, which validates the prefix,
// every command, and name/alias uniqueness before anything goes live.
// Misconfiguration surfaces as an error from Build, never at dispatch time.
//
// # Execution isolation
//
// Every resolved invocation runs on its own goroutine. Errors and panics
// from handler code are caught, logged with the command name, and converted
// into a best-effort user-visible fallback reply; they never reach the
// event-delivery path or affect other in-flight invocations.
package dispatch
