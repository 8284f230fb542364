// Package paginate provides button-driven paged message UIs built on the
// dispatch engine's button correlation registry.
//
// Two paginators are provided. Static pages through a fixed list of
// pre-rendered pages. Dynamic holds raw page data and renders pages lazily
// through a caller-supplied Renderer, memoizing each result; after every
// transition it pre-renders both neighbor pages so a subsequent press never
// waits on the renderer. Dynamic can also carry a "select" continuation
// that hands the current page's backing data (not its rendered form) to the
// caller, which may start a nested paginator for drill-down menus; the
// outer session deliberately stays alive after a select.
//
// Every session registers a unique component-id prefix with the button
// registry; all of its buttons share that prefix, and presses from any user
// other than the session owner are answered with an ephemeral denial.
// Sessions live until explicitly stopped, abandoned, or evicted from the
// bounded registry - there is no time-based expiry.
//
// Transitions within one session are serialized by a per-session mutex, so
// two rapid presses cannot race on the page position or the render cache.
package paginate
