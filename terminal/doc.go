// Package terminal provides a cell-buffer terminal with a flat input event model.
//
// Features:
//   - 24-bit RGB cells with style attributes, flushed with cell-level diffing
//   - tcell screen backend (real terminals and tcell's simulation screen)
//   - Edge-triggered mouse events (press, release, move, drag) derived from
//     tcell's level-triggered button masks
//   - Service wrapper with a polling goroutine and non-blocking event reads
//
// Callers draw into a row-major []Cell and hand it to Flush once per frame.
package terminal
