// Package tui provides immediate-mode TUI primitives for the terminal package.
//
// Core abstraction is Region, representing a rectangular area within a cell buffer.
// All drawing operations are relative to region bounds with automatic clipping.
//
// Design principles:
//   - Immediate mode: no retained widget state, app owns render loop
//   - Region is a small value type; widgets are values rebuilt every frame
//   - Composable: regions nest via Sub(), layout helpers split regions
//
// Button is the interactive widget: it derives a border style from the frame's input
// event, runs a bound command on press and paints text then border.
//
// Usage pattern:
//
//	cells := make([]terminal.Cell, w*h)
//	root := tui.NewRegion(cells, w, 0, 0, w, h)
//	root.Fill(bgColor)
//
//	ev := latch.Next(svc.Poll(100 * time.Millisecond))
//	cols := tui.SplitH(root.Inset(1), 0.5, 0.5)
//	tui.NewButton("OK").
//	    WithAlign(tui.AlignCenter).
//	    OnLeftClick(func() { shared.Set("clicked") }).
//	    Render(cols[0], ev)
//
//	term.Flush(cells, w, h)
package tui
