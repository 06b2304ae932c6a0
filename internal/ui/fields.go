package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"transform-viewer/internal/controls"
	"transform-viewer/internal/viewstate"
)

// Fields is the box of nine numeric inputs for the preview transform.
type Fields struct {
	ui     *Engine
	store  *viewstate.Store
	fields []*controls.Field
}

// NewFields returns the input box over store.
func NewFields(ui *Engine, store *viewstate.Store) *Fields {
	return &Fields{ui: ui, store: store, fields: controls.TransformFields()}
}

// Capturing reports whether a field has keyboard focus. Panning is suppressed while it does.
func (f *Fields) Capturing() bool {
	return f.focused() != nil
}

func (f *Fields) focused() *controls.Field {
	for _, fd := range f.fields {
		if fd.Focused() {
			return fd
		}
	}
	return nil
}

func (f *Fields) layout() (rl.Rectangle, []rl.Rectangle) {
	box := f.ui.Style("fields", "")
	row := f.ui.Style("field", "")
	input := f.ui.Style("field-input", "")

	h := box.Padding*2 + row.Height*int32(len(f.fields))
	x, y := f.ui.Place(box, box.Width, h)
	inputs := make([]rl.Rectangle, len(f.fields))
	for i := range f.fields {
		ry := y + box.Padding + int32(i)*row.Height
		inputs[i] = rl.NewRectangle(float32(x+box.Width-box.Padding-input.Width), float32(ry+1), float32(input.Width), float32(row.Height-2))
	}
	return rl.NewRectangle(float32(x), float32(y), float32(box.Width), float32(h)), inputs
}

// Update routes clicks and typing to the fields. Call once per frame before drawing.
func (f *Fields) Update() {
	_, inputs := f.layout()
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		mouse := rl.GetMousePosition()
		st := f.store.Snapshot()
		for i, fd := range f.fields {
			switch {
			case rl.CheckCollisionPointRec(mouse, inputs[i]):
				if !fd.Focused() {
					fd.Focus(st)
				}
			case fd.Focused():
				fd.Blur()
			}
		}
	}

	fd := f.focused()
	if fd == nil {
		// Drain typed characters so they don't leak into the next focus.
		for rl.GetCharPressed() != 0 {
		}
		return
	}
	for {
		c := rl.GetCharPressed()
		if c == 0 {
			break
		}
		fd.Input(f.store, rune(c))
	}
	if rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace) {
		fd.Backspace(f.store)
	}
	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressedRepeat(rl.KeyUp) {
		fd.Step(f.store, 1)
	}
	if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressedRepeat(rl.KeyDown) {
		fd.Step(f.store, -1)
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) || rl.IsKeyPressed(rl.KeyEscape) {
		fd.Blur()
	}
}

// Draw renders the labels and inputs.
func (f *Fields) Draw() {
	st := f.store.Snapshot()
	bounds, inputs := f.layout()
	box := f.ui.Style("fields", "")
	row := f.ui.Style("field", "")
	input := f.ui.Style("field-input", "")

	f.ui.Box(bounds, box)
	for i, fd := range f.fields {
		r := inputs[i]
		labelY := int32(r.Y) + (int32(r.Height)-row.FontSize)/2
		f.ui.Text(fd.Label, int32(bounds.X)+box.Padding, labelY, row)

		f.ui.Box(r, input)
		text := fd.Text(st)
		if fd.Focused() {
			rl.DrawRectangleLinesEx(r, 2, input.Accent)
			text += "|"
		}
		f.ui.Text(text, int32(r.X)+input.Padding, int32(r.Y)+(int32(r.Height)-input.FontSize)/2, input)
	}
}
