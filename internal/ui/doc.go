// Package ui contains the Bubble Tea program that shows a sectioned list with
// an index bar along its right edge.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Each tea.Msg is
//     routed through a typed handler registry so key presses, resizes, mouse
//     events, index bar timers and source reloads each land in a focused
//     function.
//   - Mouse events are translated into list-area coordinates and offered to
//     the overlay.Controller first. Only events the controller does not claim
//     scroll or select rows in the list.
//   - overlay.HideMsg values produced by the bar's auto-hide timer are passed
//     back to the controller, which ignores any that a later show or drag has
//     superseded.
//
// State ownership:
//   - internal/ui/state.List tracks items, filtering, the cursor and the
//     viewport offset. The Model satisfies overlay.List by forwarding
//     ScrollToPosition to it.
//   - Every change to the visible items (filter edits, source reloads)
//     rebuilds the section index and hands it to the controller, which
//     re-derives its geometry and drops any drag that no longer fits.
//
// Rendering draws the header, the list rows, then composes the index bar over
// the list rows before appending the status line and filter prompt.
package ui
