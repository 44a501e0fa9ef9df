package tui

import "github.com/lixenwraith/termbutton/terminal"

// BarSection is one label/value segment of a status bar
type BarSection struct {
	Label      string
	Value      string
	LabelStyle Style
	ValueStyle Style
	Priority   int // Higher survives truncation
}

// width returns display width of the section
func (s BarSection) width() int {
	return StringWidth(s.Label) + StringWidth(s.Value)
}

// BarOpts configures status bar rendering
type BarOpts struct {
	Separator string // Between sections, default " │ "
	SepStyle  Style
	Bg        terminal.RGB // Zero keeps the existing background
	Align     Alignment
	Padding   int // Left/right padding, default 1
}

// DefaultBarOpts returns right-aligned sections with a dim separator
func DefaultBarOpts() BarOpts {
	return BarOpts{
		Separator: " │ ",
		SepStyle:  Style{Fg: terminal.RGB{R: 80, G: 80, B: 100}},
		Padding:   1,
		Align:     AlignRight,
	}
}

// StatusBar renders sections on row y, dropping lowest priority sections until they fit
func (r Region) StatusBar(y int, sections []BarSection, opts BarOpts) {
	if y < 0 || y >= r.H || len(sections) == 0 {
		return
	}
	if opts.Separator == "" {
		opts.Separator = " │ "
	}
	if opts.Padding <= 0 {
		opts.Padding = 1
	}

	if !opts.Bg.IsZero() {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', terminal.RGB{}, opts.Bg, terminal.AttrNone)
		}
	}

	sepW := StringWidth(opts.Separator)
	availW := r.W - opts.Padding*2
	sections = fitSections(sections, sepW, availW)
	totalW := sectionsWidth(sections, sepW)

	// Sections render into the padded inner row, clipped there
	row := r.Sub(opts.Padding, y, availW, 1)
	x := max(opts.Align.offset(totalW, availW), 0)
	for i, sec := range sections {
		x += row.Text(x, 0, sec.Label, sec.LabelStyle.Fg, opts.Bg, sec.LabelStyle.Attr)
		x += row.Text(x, 0, sec.Value, sec.ValueStyle.Fg, opts.Bg, sec.ValueStyle.Attr)
		if i < len(sections)-1 {
			x += row.Text(x, 0, opts.Separator, opts.SepStyle.Fg, opts.Bg, opts.SepStyle.Attr)
		}
	}
}

func sectionsWidth(sections []BarSection, sepW int) int {
	total := 0
	for i, sec := range sections {
		total += sec.width()
		if i < len(sections)-1 {
			total += sepW
		}
	}
	return total
}

// fitSections removes lowest priority sections until the rest fit availW
// The last remaining section is kept and clipped by the caller
func fitSections(sections []BarSection, sepW, availW int) []BarSection {
	secs := append([]BarSection(nil), sections...)
	for len(secs) > 1 && sectionsWidth(secs, sepW) > availW {
		minIdx := 0
		for i, sec := range secs {
			if sec.Priority < secs[minIdx].Priority {
				minIdx = i
			}
		}
		secs = append(secs[:minIdx], secs[minIdx+1:]...)
	}
	return secs
}
