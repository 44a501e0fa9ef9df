package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/lixenwraith/termbutton/audio"
	"github.com/lixenwraith/termbutton/terminal"
	"github.com/lixenwraith/termbutton/terminal/tui"
)

const (
	initialText = "No button clicked yet"
	titleText   = "termbutton"
	hintText    = "left-click: set text  right-click: reset  m: mute  q: quit"

	defaultLabel   = "default button,\nclick me"
	defaultMessage = "you clicked the button"
	customLabel    = "custom button,\nno, click me"
	customMessage  = "you made the right choice"
)

// soundBoard plays click feedback; Player is nil while audio is disabled
type soundBoard interface {
	Click(btn terminal.MouseButton) bool
	Player() audio.Player
}

// app holds the frame state the loop carries between frames
type app struct {
	theme tui.Theme
	latch *tui.InputLatch
	text  *SharedText
	audio soundBoard

	cells []terminal.Cell
	w, h  int
	frame int
}

func newApp(theme tui.Theme, policy tui.LatchPolicy, sounds soundBoard) *app {
	return &app{
		theme: theme,
		latch: tui.NewInputLatch(policy),
		text:  NewSharedText(initialText),
		audio: sounds,
	}
}

// screenLayout is the regions of one frame
type screenLayout struct {
	title   tui.Region
	display tui.Region
	left    tui.Region
	right   tui.Region
	hint    tui.Region
}

// layout splits root: margin 1, then 25/50/25 rows; the middle row is inset by 1 and
// split into a text display above two side-by-side buttons
func layout(root tui.Region) screenLayout {
	rows := tui.SplitV(root.Inset(1), 0.25, 0.5, 0.25)
	mid := tui.SplitV(rows[1].Inset(1), 0.5, 0.5)
	buttons := tui.SplitH(mid[1], 0.5, 0.5)
	return screenLayout{
		title:   rows[0],
		display: mid[0],
		left:    buttons[0],
		right:   buttons[1],
		hint:    rows[2],
	}
}

// resize reallocates the cell buffer when the terminal size changes
func (a *app) resize(w, h int) {
	if w == a.w && h == a.h && len(a.cells) == w*h {
		return
	}
	a.w, a.h = w, h
	a.cells = make([]terminal.Cell, w*h)
	log.Printf("resize %dx%d", w, h)
}

// render draws one frame against the latched event and returns the cell buffer
func (a *app) render(ev terminal.Event, w, h int) []terminal.Cell {
	a.resize(w, h)
	a.frame++
	clear(a.cells)

	root := tui.NewRegion(a.cells, w, 0, 0, w, h)
	root.Fill(a.theme.Bg)
	l := layout(root)

	l.title.TextCenter(0, titleText, a.theme.HeaderFg, terminal.RGB{}, terminal.AttrBold)

	s1 := a.button(defaultLabel, defaultMessage).Render(l.left, ev)
	s2 := a.customButton().Render(l.right, ev)

	// After the buttons so a click shows in the same frame
	a.renderDisplay(l.display)

	l.hint.TextCenter(l.hint.H-1, hintText, a.theme.HintFg, terminal.RGB{}, terminal.AttrDim)
	a.renderStatus(l.hint, ev, s1, s2)

	return a.cells
}

// renderStatus shows the frame's event, button states and latch policy on the hint area's
// first row; the event section survives narrow terminals longest
func (a *app) renderStatus(r tui.Region, ev terminal.Event, s1, s2 tui.VisualState) {
	if r.H < 2 {
		return
	}
	label := tui.Style{Fg: a.theme.HintFg}
	value := tui.Style{Fg: a.theme.HeaderFg}

	pointer := "-"
	if ev.IsMouse() {
		pointer = fmt.Sprintf("%s %s @%d,%d", ev.MouseBtn, ev.MouseAction, ev.MouseX, ev.MouseY)
	}

	opts := tui.DefaultBarOpts()
	opts.Align = tui.AlignCenter
	r.StatusBar(0, []tui.BarSection{
		{Label: "event ", Value: pointer, LabelStyle: label, ValueStyle: value, Priority: 3},
		{Label: "b1 ", Value: s1.String(), LabelStyle: label, ValueStyle: value, Priority: 2},
		{Label: "b2 ", Value: s2.String(), LabelStyle: label, ValueStyle: value, Priority: 2},
		{Label: "latch ", Value: a.latch.Policy.String(), LabelStyle: label, ValueStyle: value, Priority: 1},
		{Label: "sound ", Value: a.soundState(), LabelStyle: label, ValueStyle: value, Priority: 1},
		{Label: "frame ", Value: strconv.Itoa(a.frame), LabelStyle: label, ValueStyle: value},
	}, opts)
}

// renderDisplay draws the shared text centered in both directions
func (a *app) renderDisplay(r tui.Region) {
	p := tui.Paragraph{
		Text:  a.text.Get(),
		Style: tui.Style{Fg: a.theme.HeaderFg},
		Align: tui.AlignCenter,
		Wrap:  &tui.Wrap{Trim: true},
	}
	lines := len(p.Lines(r.W))
	p.Render(tui.Center(r, r.W, lines))
}

// button builds a themed demo button: left-click shows message, right-click resets
// Middle-click only plays feedback
func (a *app) button(label, message string) tui.Button {
	return tui.NewThemedButton(label, a.theme).
		OnLeftClick(func() {
			a.text.Set(message)
			a.click(terminal.MouseBtnLeft)
		}).
		OnRightClick(func() {
			a.text.Reset()
			a.click(terminal.MouseBtnRight)
		}).
		OnMiddleClick(func() {
			a.click(terminal.MouseBtnMiddle)
		})
}

// customButton keeps one border color and changes the line per state instead
func (a *app) customButton() tui.Button {
	return a.button(customLabel, customMessage).
		WithNormal(tui.NewBlock(tui.LineRounded, a.theme.Fg)).
		WithHovered(tui.NewBlock(tui.LineHeavy, a.theme.Fg)).
		WithPressed(tui.NewBlock(tui.LineSingle, a.theme.Fg))
}

func (a *app) click(btn terminal.MouseButton) {
	if a.audio != nil {
		a.audio.Click(btn)
	}
}

// toggleMute flips click sounds, no-op while audio is disabled
func (a *app) toggleMute() {
	if a.audio == nil {
		return
	}
	if p := a.audio.Player(); p != nil {
		log.Printf("sound muted: %v", p.ToggleMute())
	}
}

// soundState names the audio state for the status row
func (a *app) soundState() string {
	if a.audio == nil {
		return "off"
	}
	p := a.audio.Player()
	switch {
	case p == nil || !p.IsRunning():
		return "off"
	case p.IsMuted():
		return "muted"
	default:
		return "on"
	}
}
