package ui

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"transform-viewer/internal/controls"
	"transform-viewer/internal/viewstate"
)

const readoutLineHeight = 12

// Panel is the debug control panel: collapsible folders of sliders plus the read-only
// matrix readout. Layout is recomputed every frame from the stylesheet, so it follows
// window size and folder state without caching.
type Panel struct {
	ui       *Engine
	store    *viewstate.Store
	folders  []*controls.Folder
	dragging *controls.Slider
	dragRect rl.Rectangle
}

// NewPanel returns the panel over store.
func NewPanel(ui *Engine, store *viewstate.Store) *Panel {
	return &Panel{ui: ui, store: store, folders: controls.DebugPanel()}
}

// row is one laid-out line of the panel.
type row struct {
	rect    rl.Rectangle
	folder  *controls.Folder
	slider  *controls.Slider
	readout *controls.Readout
}

func (p *Panel) layout(st viewstate.ViewState) (rl.Rectangle, []row) {
	panel := p.ui.Style("dg-panel", "")
	title := p.ui.Style("dg-title", "")
	line := p.ui.Style("dg-row", "")

	var rows []row
	y := float32(0)
	for _, f := range p.folders {
		rows = append(rows, row{rect: rl.NewRectangle(0, y, float32(panel.Width), float32(title.Height)), folder: f})
		y += float32(title.Height)
		if !f.Open {
			continue
		}
		for i := range f.Sliders {
			rows = append(rows, row{rect: rl.NewRectangle(0, y, float32(panel.Width), float32(line.Height)), slider: &f.Sliders[i]})
			y += float32(line.Height)
		}
		for i := range f.Readouts {
			lines := strings.Count(f.Readouts[i].Text(st), "\n") + 1
			h := float32(line.Height + int32(lines)*readoutLineHeight)
			rows = append(rows, row{rect: rl.NewRectangle(0, y, float32(panel.Width), h), readout: &f.Readouts[i]})
			y += h
		}
	}

	x, top := p.ui.Place(panel, panel.Width, int32(y))
	for i := range rows {
		rows[i].rect.X += float32(x)
		rows[i].rect.Y += float32(top)
	}
	return rl.NewRectangle(float32(x), float32(top), float32(panel.Width), y), rows
}

// trackRect is the slider track inside a row: right of the label, left of the value box.
func (p *Panel) trackRect(r rl.Rectangle) rl.Rectangle {
	line := p.ui.Style("dg-row", "")
	track := p.ui.Style("dg-track", "")
	value := p.ui.Style("dg-value", "")
	left := r.X + r.Width*0.4
	right := r.X + r.Width - float32(value.Width) - float32(line.Padding)*2
	return rl.NewRectangle(left, r.Y+(r.Height-float32(track.Height))/2, right-left, float32(track.Height))
}

// Update handles folder toggling and slider dragging. It reports whether the mouse is
// over the panel, so the caller can keep clicks from reaching the scene.
func (p *Panel) Update() bool {
	bounds, rows := p.layout(p.store.Snapshot())
	mouse := rl.GetMousePosition()

	if p.dragging != nil {
		if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
			p.setFromMouse(p.dragging, p.dragRect, mouse.X)
		} else {
			p.dragging = nil
		}
		return true
	}

	for _, r := range rows {
		switch {
		case r.folder != nil && Clicked(r.rect):
			r.folder.Toggle()
		case r.slider != nil:
			track := p.trackRect(r.rect)
			if Clicked(track) {
				p.dragging, p.dragRect = r.slider, track
				p.setFromMouse(r.slider, track, mouse.X)
			}
		}
	}
	return rl.CheckCollisionPointRec(mouse, bounds)
}

func (p *Panel) setFromMouse(s *controls.Slider, track rl.Rectangle, mouseX float32) {
	frac := (mouseX - track.X) / track.Width
	s.Set(p.store, s.ValueAt(frac))
}

// Draw renders the panel for the current state.
func (p *Panel) Draw() {
	st := p.store.Snapshot()
	bounds, rows := p.layout(st)
	p.ui.Box(bounds, p.ui.Style("dg-panel", ""))

	title := p.ui.Style("dg-title", "")
	line := p.ui.Style("dg-row", "")
	track := p.ui.Style("dg-track", "")
	value := p.ui.Style("dg-value", "")
	readout := p.ui.Style("dg-readout", "")

	for _, r := range rows {
		x, y := int32(r.rect.X), int32(r.rect.Y)
		switch {
		case r.folder != nil:
			p.ui.Box(r.rect, title)
			marker := "> "
			if r.folder.Open {
				marker = "v "
			}
			p.ui.Text(marker+r.folder.Title, x+title.Padding, y+(int32(r.rect.Height)-title.FontSize)/2, title)

		case r.slider != nil:
			p.ui.Box(r.rect, line)
			p.ui.Text(r.slider.Name, x+line.Padding, y+(int32(r.rect.Height)-line.FontSize)/2, line)

			tr := p.trackRect(r.rect)
			p.ui.Box(tr, track)
			v := r.slider.Value(st)
			fill := tr
			fill.Width = tr.Width * r.slider.Fraction(v)
			rl.DrawRectangleRec(fill, track.Accent)

			vb := rl.NewRectangle(tr.X+tr.Width+float32(line.Padding), tr.Y, float32(value.Width), tr.Height)
			p.ui.Box(vb, value)
			p.ui.Text(controls.FormatValue(v), int32(vb.X)+value.Padding, int32(vb.Y)+value.Padding, value)

		case r.readout != nil:
			p.ui.Box(r.rect, line)
			p.ui.Text(r.readout.Name, x+line.Padding, y+line.Padding, line)
			body := rl.NewRectangle(r.rect.X+r.rect.Width*0.4, r.rect.Y+float32(line.Padding), r.rect.Width*0.6-float32(line.Padding), r.rect.Height-float32(line.Padding)*2)
			p.ui.Box(body, readout)
			for i, l := range strings.Split(r.readout.Text(st), "\n") {
				p.ui.Text(l, int32(body.X)+readout.Padding, int32(body.Y)+readout.Padding+int32(i)*readoutLineHeight, readout)
			}
		}
	}
}
