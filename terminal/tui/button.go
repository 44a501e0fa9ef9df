package tui

import "github.com/lixenwraith/termbutton/terminal"

// Command is the action bound to a pointer button
// Invoke runs synchronously inside Render and must not block
type Command interface {
	Invoke()
}

// CommandFunc adapts a plain function to Command
type CommandFunc func()

// Invoke calls f
func (f CommandFunc) Invoke() {
	f()
}

// VisualState is the border style selector derived from the current event
type VisualState uint8

const (
	StateNormal VisualState = iota
	StateHovered
	StatePressed
)

// String returns human-readable state name
func (s VisualState) String() string {
	switch s {
	case StateHovered:
		return "Hovered"
	case StatePressed:
		return "Pressed"
	default:
		return "Normal"
	}
}

// Button is a clickable bordered text box
//
// A Button is a value built each frame, rendered once against that frame's event and
// dropped. It keeps no state between frames; commands are its only side channel.
type Button struct {
	Text      string
	TextStyle Style

	Normal  Block
	Hovered Block
	Pressed Block

	Align  Alignment
	Wrap   *Wrap // nil disables wrapping
	Margin Margin
	Scroll Scroll

	OnLeft   Command
	OnRight  Command
	OnMiddle Command
}

// NewButton returns a button with rounded borders (white, green on hover, red on press),
// left-aligned wrapping text, a one-cell margin and no commands
func NewButton(text string) Button {
	normal, hovered, pressed := DefaultTheme.ButtonBlocks()
	return Button{
		Text:      text,
		TextStyle: Style{Fg: DefaultTheme.Fg},
		Normal:    normal,
		Hovered:   hovered,
		Pressed:   pressed,
		Align:     AlignLeft,
		Wrap:      &Wrap{Trim: false},
		Margin:    Margin{Horizontal: 1, Vertical: 1},
	}
}

// NewThemedButton returns NewButton with border blocks, text color and alignment from theme
func NewThemedButton(text string, theme Theme) Button {
	b := NewButton(text)
	b.Normal, b.Hovered, b.Pressed = theme.ButtonBlocks()
	b.TextStyle = Style{Fg: theme.Fg}
	b.Align = theme.ButtonAlign
	return b
}

func (b Button) WithText(text string) Button {
	b.Text = text
	return b
}

func (b Button) WithTextStyle(s Style) Button {
	b.TextStyle = s
	return b
}

func (b Button) WithNormal(block Block) Button {
	b.Normal = block
	return b
}

func (b Button) WithHovered(block Block) Button {
	b.Hovered = block
	return b
}

func (b Button) WithPressed(block Block) Button {
	b.Pressed = block
	return b
}

func (b Button) WithAlign(a Alignment) Button {
	b.Align = a
	return b
}

func (b Button) WithWrap(w Wrap) Button {
	b.Wrap = &w
	return b
}

func (b Button) WithoutWrap() Button {
	b.Wrap = nil
	return b
}

func (b Button) WithMargin(m Margin) Button {
	b.Margin = m
	return b
}

func (b Button) WithScroll(s Scroll) Button {
	b.Scroll = s
	return b
}

// OnClick binds cmd to a pointer button, replacing any previous binding
// Buttons other than left, right and middle are ignored
func (b Button) OnClick(btn terminal.MouseButton, cmd Command) Button {
	switch btn {
	case terminal.MouseBtnLeft:
		b.OnLeft = cmd
	case terminal.MouseBtnRight:
		b.OnRight = cmd
	case terminal.MouseBtnMiddle:
		b.OnMiddle = cmd
	}
	return b
}

func (b Button) OnLeftClick(f func()) Button {
	return b.OnClick(terminal.MouseBtnLeft, CommandFunc(f))
}

func (b Button) OnRightClick(f func()) Button {
	return b.OnClick(terminal.MouseBtnRight, CommandFunc(f))
}

func (b Button) OnMiddleClick(f func()) Button {
	return b.OnClick(terminal.MouseBtnMiddle, CommandFunc(f))
}

// CommandFor returns the command bound to btn, nil when unbound
func (b Button) CommandFor(btn terminal.MouseButton) Command {
	switch btn {
	case terminal.MouseBtnLeft:
		return b.OnLeft
	case terminal.MouseBtnRight:
		return b.OnRight
	case terminal.MouseBtnMiddle:
		return b.OnMiddle
	}
	return nil
}

// StyleFor returns the border block for a visual state
func (b Button) StyleFor(state VisualState) Block {
	switch state {
	case StateHovered:
		return b.Hovered
	case StatePressed:
		return b.Pressed
	default:
		return b.Normal
	}
}

// Resolve derives the visual state for ev against rect and the command a press selects
// It has no side effects; the returned command may be nil for an unbound button
//
//   - non-mouse event: Normal
//   - move inside rect: Hovered
//   - press of left, right or middle inside rect: Pressed, plus that button's command
//   - anything else (outside, release, drag, wheel): Normal
func (b Button) Resolve(rect Rect, ev terminal.Event) (VisualState, Command) {
	if !ev.IsMouse() {
		return StateNormal, nil
	}
	if !IsInside(Point{X: ev.MouseX, Y: ev.MouseY}, rect) {
		return StateNormal, nil
	}

	switch ev.MouseAction {
	case terminal.MouseActionMove:
		return StateHovered, nil
	case terminal.MouseActionPress:
		switch ev.MouseBtn {
		case terminal.MouseBtnLeft, terminal.MouseBtnRight, terminal.MouseBtnMiddle:
			return StatePressed, b.CommandFor(ev.MouseBtn)
		}
	}
	return StateNormal, nil
}

// Paint draws text into the margin-shrunk region, then the state's border over the whole
// region. The border is always written last so overflowing text cannot cover it.
func (b Button) Paint(r Region, state VisualState) {
	Paragraph{
		Text:   b.Text,
		Style:  b.TextStyle,
		Align:  b.Align,
		Wrap:   b.Wrap,
		Scroll: b.Scroll,
	}.Render(r.Inner(b.Margin))

	b.StyleFor(state).Render(r)
}

// Render resolves ev against the region bounds, runs the selected command once, then paints
// Command panics propagate to the caller and abort the frame
func (b Button) Render(r Region, ev terminal.Event) VisualState {
	state, cmd := b.Resolve(r.Rect(), ev)
	if cmd != nil {
		cmd.Invoke()
	}
	b.Paint(r, state)
	return state
}
