package controls

import (
	"unicode/utf8"

	"transform-viewer/internal/viewstate"
)

// Field is a numeric text input bound to one preview-transform axis. While focused it
// shows the raw text being typed; every edit is parsed with ParseFloat and pushed to the
// store immediately, so a half-typed "-" shows up as NaN in the matrix.
type Field struct {
	Label string

	get     func(viewstate.ViewState) float64
	patch   func(*float64) viewstate.Patch
	buf     string
	focused bool
}

// TransformFields returns the nine fields (position, rotation, scale × X, Y, Z).
func TransformFields() []*Field {
	f := func(label string, get func(viewstate.ViewState) float64, patch func(*float64) viewstate.Patch) *Field {
		return &Field{Label: label, get: get, patch: patch}
	}
	return []*Field{
		f("Position X", func(v viewstate.ViewState) float64 { return v.PositionX }, func(p *float64) viewstate.Patch { return viewstate.Patch{PositionX: p} }),
		f("Position Y", func(v viewstate.ViewState) float64 { return v.PositionY }, func(p *float64) viewstate.Patch { return viewstate.Patch{PositionY: p} }),
		f("Position Z", func(v viewstate.ViewState) float64 { return v.PositionZ }, func(p *float64) viewstate.Patch { return viewstate.Patch{PositionZ: p} }),
		f("Rotation X", func(v viewstate.ViewState) float64 { return v.RotationX }, func(p *float64) viewstate.Patch { return viewstate.Patch{RotationX: p} }),
		f("Rotation Y", func(v viewstate.ViewState) float64 { return v.RotationY }, func(p *float64) viewstate.Patch { return viewstate.Patch{RotationY: p} }),
		f("Rotation Z", func(v viewstate.ViewState) float64 { return v.RotationZ }, func(p *float64) viewstate.Patch { return viewstate.Patch{RotationZ: p} }),
		f("Scale X", func(v viewstate.ViewState) float64 { return v.ScaleX }, func(p *float64) viewstate.Patch { return viewstate.Patch{ScaleX: p} }),
		f("Scale Y", func(v viewstate.ViewState) float64 { return v.ScaleY }, func(p *float64) viewstate.Patch { return viewstate.Patch{ScaleY: p} }),
		f("Scale Z", func(v viewstate.ViewState) float64 { return v.ScaleZ }, func(p *float64) viewstate.Patch { return viewstate.Patch{ScaleZ: p} }),
	}
}

// Focused reports whether the field is capturing typing.
func (f *Field) Focused() bool {
	return f.focused
}

// Focus starts editing with the current value as text.
func (f *Field) Focus(st viewstate.ViewState) {
	f.focused = true
	f.buf = FormatValue(f.get(st))
}

// Blur stops editing. The store already holds the last parsed value.
func (f *Field) Blur() {
	f.focused = false
	f.buf = ""
}

// Text is what the field displays: the edit buffer while focused, else the stored value.
func (f *Field) Text(st viewstate.ViewState) string {
	if f.focused {
		return f.buf
	}
	return FormatValue(f.get(st))
}

// Input appends r to the buffer and commits the result. Ignored unless focused.
func (f *Field) Input(store *viewstate.Store, r rune) {
	if !f.focused || !acceptable(r) {
		return
	}
	f.buf += string(r)
	f.commit(store)
}

// Backspace removes the last rune and commits the result.
func (f *Field) Backspace(store *viewstate.Store) {
	if !f.focused || f.buf == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(f.buf)
	f.buf = f.buf[:len(f.buf)-size]
	f.commit(store)
}

// Step adds delta to the stored value, like the arrow buttons of a number input.
func (f *Field) Step(store *viewstate.Store, delta float64) {
	v := f.get(store.Snapshot()) + delta
	store.Replace(f.patch(viewstate.Float(v)))
	if f.focused {
		f.buf = FormatValue(v)
	}
}

func (f *Field) commit(store *viewstate.Store) {
	store.Replace(f.patch(viewstate.Float(ParseFloat(f.buf))))
}

// acceptable mirrors what a number input lets through.
func acceptable(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r == '.', r == '-', r == '+', r == 'e', r == 'E':
		return true
	}
	return false
}
