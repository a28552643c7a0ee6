// Package ui contains the Bubble Tea program that hosts a pop-up.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Messages the model owns (keys, resizes, close and notice requests,
//     content watcher events) are routed through a typed handler registry.
//     Everything else is forwarded to the pop-up, which fans it out to the
//     widgets that animate or take input.
//   - Button actions run through the internal/ui/command bus so each
//     activation is traced and its resulting message re-enters Update.
//
// Reloading:
//   - When a backend.Watcher is supplied, Update waits for its events and
//     rebuilds the pop-up through the Builder. A failed rebuild keeps the
//     current pop-up on screen and shows the error in the status line.
package ui
