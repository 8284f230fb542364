// Package correlate provides a bounded cache that maps short-lived
// component identifiers back to the callback responsible for them.
//
// The cache holds at most capacity entries. When a new key is added to a
// full cache the oldest *inserted* key is evicted - eviction is FIFO, not
// LRU. Component identifiers are registered once per session and are not
// kept alive by repeated activations, so FIFO bounds memory
// deterministically regardless of access pattern at O(1) eviction cost. The
// trade-off is a small risk of evicting a still-used but old session under
// heavy load; callers must treat a lookup miss as a normal outcome.
package correlate
