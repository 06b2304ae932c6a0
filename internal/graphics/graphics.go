package graphics

import (
	"context"

	rl "github.com/gen2brain/raylib-go/raylib"

	"transform-viewer/internal/config"
	"transform-viewer/internal/input"
)

// View is what Run hosts. Mount runs once after the window opens and Unmount once before it
// closes, on every exit path. Update runs before drawing each frame and Draw between
// BeginDrawing and EndDrawing, after the background is cleared.
type View interface {
	Mount() error
	Update()
	Draw()
	Unmount()
	Background() rl.Color
}

// Grabber is implemented by views that read back the finished frame (e.g. screenshots).
// Grab runs after Draw, once everything queued has been flushed, before the buffers swap.
type Grabber interface {
	Grab()
}

// Run opens the window, mounts view and runs the frame loop until the window is closed or
// ctx is cancelled. Key presses for input.Codes(), including OS auto-repeat, are dispatched
// through kb before view.Update. The window is sized from cfg, or to the primary monitor when
// cfg leaves width or height at zero, and is not resizable.
func Run(ctx context.Context, cfg config.Window, kb *input.Keyboard, view View) error {
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		// raylib sizes a 0x0 window to the current monitor.
		w, h = 0, 0
	}
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(w, h, cfg.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull) // Escape blurs input fields; close via the window button
	if cfg.TargetFPS > 0 {
		rl.SetTargetFPS(cfg.TargetFPS)
	}

	if err := view.Mount(); err != nil {
		return err
	}
	defer view.Unmount()

	grab, _ := view.(Grabber)
	codes := input.Codes()
	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			return nil
		}
		for _, code := range codes {
			if rl.IsKeyPressed(code) || rl.IsKeyPressedRepeat(code) {
				kb.DispatchCode(code)
			}
		}
		view.Update()

		rl.BeginDrawing()
		rl.ClearBackground(view.Background())
		view.Draw()
		if grab != nil {
			rl.DrawRenderBatchActive()
			grab.Grab()
		}
		rl.EndDrawing()
	}
	return nil
}
