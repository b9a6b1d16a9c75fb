// Package ui contains the Bubble Tea program that renders the popup's single
// text field.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Each message is
//     routed through a typed handler registry: focus reports (tea.FocusMsg,
//     tea.BlurMsg, FocusRefreshMsg) drive the session's FocusHandle, key
//     presses either request close or go to the text field, and size changes
//     resize the layout.
//   - Every Update ends with one frame: the RenderHandle copies the field value
//     into the session text and, when a focus gain was posted since the last
//     frame, force-focuses the field. Bubble Tea renders after each Update, so
//     one Update is one frame.
//
// State ownership:
//   - The text, the focus flags and the close state live in a
//     session.Controller shared with the focus watcher goroutine. The Model
//     only holds capability handles and the textinput widget mirroring the
//     text.
//   - Closing goes through the CloseHandle exactly once; Result exposes what it
//     returned after the program exits.
package ui
