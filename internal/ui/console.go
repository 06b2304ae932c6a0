package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	consoleLines  = 10
	maxLineLength = 120
)

// LineSource supplies the log lines shown by the console.
type LineSource interface {
	Lines() []string
}

// Console draws the most recent log lines in a box docked by the "console" style.
// Hidden by default; the backquote key toggles it.
type Console struct {
	ui   *Engine
	src  LineSource
	open bool
}

// NewConsole returns a hidden console over src.
func NewConsole(ui *Engine, src LineSource) *Console {
	return &Console{ui: ui, src: src}
}

// SetOpen shows or hides the console.
func (c *Console) SetOpen(open bool) {
	c.open = open
}

// Update toggles visibility on backquote.
func (c *Console) Update() {
	if rl.IsKeyPressed(rl.KeyGrave) {
		c.open = !c.open
	}
}

// Draw renders the tail of the log when open.
func (c *Console) Draw() {
	if !c.open {
		return
	}
	st := c.ui.Style("console", "")
	lineHeight := st.FontSize + 4
	h := st.Padding*2 + consoleLines*lineHeight
	x, y := c.ui.Place(st, st.Width, h)
	c.ui.Box(rl.NewRectangle(float32(x), float32(y), float32(st.Width), float32(h)), st)

	lines := c.src.Lines()
	start := 0
	if len(lines) > consoleLines {
		start = len(lines) - consoleLines
	}
	for i := start; i < len(lines); i++ {
		line := lines[i]
		if len(line) > maxLineLength {
			line = line[:maxLineLength-3] + "..."
		}
		c.ui.Text(line, x+st.Padding, y+st.Padding+int32(i-start)*lineHeight, st)
	}
}
