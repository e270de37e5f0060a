// Package app is the composition root for lsmdash.
//
// # Startup
//
//  1. Load config (TOML file, LSMDASH_API_URL override, defaults)
//  2. Route log and log/slog output to the log file via tea.LogToFile
//  3. Load UI preferences (failures fall back to defaults)
//  4. Build the lsmdb HTTP client
//  5. Create the shared state.Store, the control.Poller and the
//     control.Dispatcher
//  6. Activate the poller (first stats fetch fires immediately)
//  7. Run the Bubble Tea UI until the user quits
//  8. Deactivate the poller
//
// # Error Handling
//
// Only startup problems are fatal: a bad config file, an unusable log path, an
// invalid api_url or a terminal the UI cannot drive. Everything after startup
// is owned by the component that hit it. Stats failures are logged, write
// failures raise a modal, read failures show an error text in the result pane.
//
// Nothing waits for in-flight requests on shutdown. With request_timeout
// unset a hung request could otherwise hold the process open forever.
package app
