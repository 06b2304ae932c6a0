package viewer

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"transform-viewer/internal/capture"
	"transform-viewer/internal/config"
	"transform-viewer/internal/debug"
	"transform-viewer/internal/fonts"
	"transform-viewer/internal/frame"
	"transform-viewer/internal/input"
	"transform-viewer/internal/loader"
	"transform-viewer/internal/logger"
	"transform-viewer/internal/object"
	"transform-viewer/internal/render"
	"transform-viewer/internal/ui"
	"transform-viewer/internal/viewstate"
)

// Viewer is the mounted view: it owns the state store, the managed objects, the asset
// loader, the renderer and the overlays for one window lifetime. All state is created in
// Mount and dropped in Unmount; nothing survives a remount.
type Viewer struct {
	cfg config.Config
	log *logger.Logger
	kb  *input.Keyboard

	store   *viewstate.Store
	objects *object.Set
	updater *frame.Updater
	loader  *loader.Loader
	scene   *render.Scene

	ui      *ui.Engine
	panel   *ui.Panel
	fields  *ui.Fields
	console *ui.Console
	overlay *debug.Overlay

	release     []func()
	captureNext bool
}

// New returns an unmounted viewer.
func New(cfg config.Config, log *logger.Logger, kb *input.Keyboard) *Viewer {
	return &Viewer{cfg: cfg, log: log, kb: kb}
}

// Mount creates the store with defaults, adds the cube, queues the asset loads and
// registers the keyboard listeners.
func (v *Viewer) Mount() error {
	v.store = viewstate.New()
	v.objects = object.NewSet()
	v.scene = render.New(v.cfg.Render)
	v.scene.Mount()
	v.objects.Add(object.New("cube", render.Cube{}))

	v.ui = ui.New()
	v.applyUIConfig()
	v.panel = ui.NewPanel(v.ui, v.store)
	v.fields = ui.NewFields(v.ui, v.store)
	v.console = ui.NewConsole(v.ui, v.log)
	v.overlay = debug.New(v.cfg.Render.ShowFPS, v.stats)
	v.updater = frame.New(v.store, v.objects, v.draw)

	v.loader = loader.New(v.scene, v.log.Logger)
	v.loader.RequestCopies(v.cfg.Asset.Path, v.cfg.Asset.Copies, func(label string, root any) {
		v.objects.Add(object.New(label+" model", root))
	})

	panner := input.NewPanner(v.store)
	panner.SuppressWhen(v.fields.Capturing)
	v.release = append(v.release,
		panner.Attach(v.kb),
		v.kb.Listen(v.handleKey),
	)

	v.log.Info().Str("asset", v.cfg.Asset.Path).Int("copies", v.cfg.Asset.Copies).Msg("viewer mounted")
	return nil
}

// applyUIConfig loads the configured font and stylesheet. Failures are logged and the
// built-in look is kept.
func (v *Viewer) applyUIConfig() {
	if name := v.cfg.UI.Font; name != "" {
		path, err := fonts.Find(name)
		if err == nil {
			err = v.ui.LoadFont(path)
		}
		if err != nil {
			v.log.Warn().Err(err).Str("font", name).Msg("font not loaded")
		}
	}
	if path := v.cfg.UI.Stylesheet; path != "" {
		if err := v.ui.LoadCSS(path); err != nil {
			v.log.Warn().Err(err).Str("stylesheet", path).Msg("stylesheet not loaded")
		}
	}
}

func (v *Viewer) handleKey(k input.Key) {
	if v.fields.Capturing() {
		return
	}
	switch k {
	case input.KeyCapture:
		v.captureNext = true
	case input.KeyToggleFPS:
		v.overlay.Toggle()
	}
}

func (v *Viewer) stats() debug.Stats {
	return debug.Stats{Objects: v.objects.Len(), Pending: v.loader.Pending(), Ticks: v.updater.Ticks()}
}

// Update resolves at most one pending load and handles overlay input.
func (v *Viewer) Update() {
	v.loader.Poll()
	v.console.Update()
	v.panel.Update()
	v.fields.Update()
}

// Draw runs one frame tick; the updater calls back into draw once the matrix text is fresh.
func (v *Viewer) Draw() {
	v.updater.Tick()
}

func (v *Viewer) draw() {
	v.scene.Draw(v.objects.Objects())
	v.panel.Draw()
	v.fields.Draw()
	v.console.Draw()
	v.overlay.Draw()
}

// Grab saves a screenshot if one was requested since the last frame.
func (v *Viewer) Grab() {
	if !v.captureNext {
		return
	}
	v.captureNext = false
	path, err := capture.Save(v.cfg.Capture.Dir, render.Screenshot(), v.cfg.Capture.Scale, time.Now())
	if err != nil {
		v.log.Error().Err(err).Msg("capture failed")
		return
	}
	v.log.Info().Str("path", path).Msg("capture saved")
}

// Background is the clear color.
func (v *Viewer) Background() rl.Color {
	return v.scene.Background
}

// Unmount releases listeners and GPU resources and drops the store.
func (v *Viewer) Unmount() {
	for _, release := range v.release {
		release()
	}
	v.release = nil
	for _, o := range v.objects.Clear() {
		v.scene.Release(o.Handle)
	}
	v.scene.Unload()
	v.ui.Unload()
	v.store = nil
	v.log.Info().Msg("viewer unmounted")
}
