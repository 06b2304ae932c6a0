package ui

import (
	_ "embed"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"transform-viewer/internal/ui/stylesheet"
)

//go:embed default.css
var defaultCSS string

// Engine owns the stylesheet and font shared by every widget and draws styled boxes and
// text with raylib. Resolved styles are cached per class/id and dropped when the sheet
// changes, so steady-state frames do no style work.
// If a font is loaded (LoadFont), text uses it; otherwise raylib's default font is used.
type Engine struct {
	sheet  *stylesheet.Stylesheet
	styles map[string]stylesheet.ComputedStyle
	font   rl.Font
}

// New creates an engine with the built-in stylesheet.
func New() *Engine {
	sheet, _ := stylesheet.ParseCSS(defaultCSS)
	return &Engine{sheet: sheet, styles: make(map[string]stylesheet.ComputedStyle)}
}

// LoadCSS parses the CSS file at path and replaces the current stylesheet.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sheet, err := stylesheet.ParseCSS(string(data))
	if err != nil {
		return err
	}
	e.sheet = sheet
	clear(e.styles)
	return nil
}

// LoadFont loads a TTF font from path for text rendering. If loading fails, the engine keeps using the default font.
// Call after the window/OpenGL context exists.
func (e *Engine) LoadFont(path string) error {
	f := rl.LoadFont(path)
	if f.Texture.ID == 0 {
		return os.ErrNotExist
	}
	e.Unload()
	e.font = f
	return nil
}

// Unload releases the custom font, if any.
func (e *Engine) Unload() {
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
		e.font = rl.Font{}
	}
}

// Style returns the computed style for class and optional id.
func (e *Engine) Style(class, id string) stylesheet.ComputedStyle {
	key := class + "#" + id
	if st, ok := e.styles[key]; ok {
		return st
	}
	st := e.sheet.Resolve(class, id)
	e.styles[key] = st
	return st
}

// Place returns the top-left corner of a w×h box positioned by st. Percentages are
// relative to the free space, so left: 100% docks the box to the right edge.
func (e *Engine) Place(st stylesheet.ComputedStyle, w, h int32) (x, y int32) {
	x, y = st.Left, st.Top
	if st.LeftPct >= 0 {
		x = (int32(rl.GetScreenWidth()) - w) * st.LeftPct / 100
	}
	if st.TopPct >= 0 {
		y = (int32(rl.GetScreenHeight()) - h) * st.TopPct / 100
	}
	return x, y
}

// Box draws the background and 1px border of st over r.
func (e *Engine) Box(r rl.Rectangle, st stylesheet.ComputedStyle) {
	x, y, w, h := int32(r.X), int32(r.Y), int32(r.Width), int32(r.Height)
	if st.Background.A > 0 {
		rl.DrawRectangle(x, y, w, h, st.Background)
	}
	if st.HasBorder && w > 0 && h > 0 {
		rl.DrawRectangleLines(x, y, w, h, st.Border)
	}
}

// Text draws s at (x, y) in st's color and size.
func (e *Engine) Text(s string, x, y int32, st stylesheet.ComputedStyle) {
	if e.font.Texture.ID != 0 {
		rl.DrawTextEx(e.font, s, rl.NewVector2(float32(x), float32(y)), float32(st.FontSize), 1, st.Color)
		return
	}
	rl.DrawText(s, x, y, st.FontSize, st.Color)
}

// MeasureText returns the pixel width of s at size.
func (e *Engine) MeasureText(s string, size int32) int32 {
	if e.font.Texture.ID != 0 {
		return int32(rl.MeasureTextEx(e.font, s, float32(size), 1).X)
	}
	return rl.MeasureText(s, size)
}

// Clicked reports whether the left mouse button was pressed this frame inside r.
func Clicked(r rl.Rectangle) bool {
	return rl.IsMouseButtonPressed(rl.MouseButtonLeft) && rl.CheckCollisionPointRec(rl.GetMousePosition(), r)
}
