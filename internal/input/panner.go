package input

import "transform-viewer/internal/viewstate"

// PanStep is how far one key press moves the preview position.
const PanStep = 0.1

// Panner moves the preview position on the XZ plane: forward/back along Z, left/right
// along X. Each press is independent; there is no diagonal or repeat handling beyond that.
type Panner struct {
	store    *viewstate.Store
	step     float64
	suppress func() bool
}

// NewPanner returns a panner writing to store.
func NewPanner(store *viewstate.Store) *Panner {
	return &Panner{store: store, step: PanStep}
}

// SuppressWhen makes the panner ignore keys while fn reports true, e.g. while a text field
// has focus and W/A/S/D are being typed.
func (p *Panner) SuppressWhen(fn func() bool) {
	p.suppress = fn
}

// HandleKey applies key and reports whether it moved the position.
func (p *Panner) HandleKey(key Key) bool {
	if p.suppress != nil && p.suppress() {
		return false
	}
	var dx, dz float64
	switch key {
	case KeyForward:
		dz = -p.step
	case KeyBack:
		dz = p.step
	case KeyLeft:
		dx = -p.step
	case KeyRight:
		dx = p.step
	default:
		return false
	}
	p.store.Update(func(v viewstate.ViewState) viewstate.ViewState {
		v.PositionX += dx
		v.PositionZ += dz
		return v
	})
	return true
}

// Attach subscribes the panner to kb. The returned func detaches it.
func (p *Panner) Attach(kb *Keyboard) (release func()) {
	return kb.Listen(func(k Key) { p.HandleKey(k) })
}
