// Package ui provides the Bubble Tea dashboard for lsmdash: two stat cards,
// a write form and a read form.
//
// The text inputs are the operator's view of the store's pending fields:
// every keystroke is mirrored into state.Store, and commands always read the
// store, never the widgets. Set and Get run inside tea.Cmds through
// control.Dispatcher so the event loop never blocks on the network. The model
// re-reads the store on a short tick, which is how poller updates reach the
// screen.
//
// A failed write opens an alert modal that swallows all input except quit
// until it is dismissed.
//
// Key bindings:
//
//   - tab/shift+tab (or up/down): move between Key, Value and Search key
//   - enter: Set Key from the write form, Get Key from the search field
//   - ctrl+r: fetch stats now
//   - ctrl+l: toggle the log pane
//   - ctrl+t: cycle theme (saved to prefs)
//   - f1: help
//   - ctrl+c: quit
package ui
