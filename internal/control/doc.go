// Package control drives the remote service on behalf of the dashboard.
//
// Poller keeps state.Store stats fresh: one fetch on Activate, then one per
// interval (2s by default) until Deactivate. Every fetch runs in its own
// goroutine, so overlapping fetches are possible and resolve in any order.
// Failures are logged and otherwise ignored.
//
// Dispatcher runs the operator's commands. Set is guarded by the store's
// in-flight flag and reports a SetOutcome; Get always records a read result,
// substituting ReadErrorText when the read fails. Neither returns an error to
// the caller beyond the value in its result.
package control
