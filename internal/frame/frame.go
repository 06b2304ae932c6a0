package frame

import (
	"transform-viewer/internal/object"
	"transform-viewer/internal/viewstate"
)

// Updater runs the per-refresh work: spin and scale the managed objects, recompute the
// preview matrix text, then hand the frame to the renderer.
// It reads the store on every tick, so a UI edit made before a tick is applied by that tick.
type Updater struct {
	store   *viewstate.Store
	objects *object.Set
	render  func()
	ticks   uint64
}

// New returns an Updater over store and objects. render may be nil (headless use).
func New(store *viewstate.Store, objects *object.Set, render func()) *Updater {
	return &Updater{store: store, objects: objects, render: render}
}

// Tick performs one frame update. It has no failure modes; an empty object set just skips
// the object pass.
func (u *Updater) Tick() {
	s := u.store.Snapshot()

	u.objects.Each(func(o *object.Object) {
		o.Rotate(s.RotationDeltaX, s.RotationDeltaY)
		o.SetUniformScale(s.UniformScale)
	})

	u.store.SetMatrixText(s.Matrix().Text())

	if u.render != nil {
		u.render()
	}
	u.ticks++
}

// Ticks returns how many times Tick has run.
func (u *Updater) Ticks() uint64 {
	return u.ticks
}
