package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 16
	padding    = 10
	lineHeight = fontSize + 4
	// updateInterval: only refresh the text every N frames to reduce allocations.
	updateInterval = 30
)

// Stats are the numbers shown under the FPS counter.
type Stats struct {
	Objects int
	Pending int
	Ticks   uint64
}

// Overlay draws the FPS counter and viewer stats in the top-left corner. Hidden unless
// ShowFPS is set; F3 toggles it.
type Overlay struct {
	ShowFPS bool

	stats      func() Stats
	frameCount uint32
	lines      [3]string
	memStats   runtime.MemStats
}

// New returns an overlay that polls stats when visible. stats may be nil.
func New(show bool, stats func() Stats) *Overlay {
	return &Overlay{ShowFPS: show, stats: stats}
}

// Toggle flips visibility.
func (d *Overlay) Toggle() {
	d.ShowFPS = !d.ShowFPS
	d.lines = [3]string{}
}

// Draw renders the overlay when visible.
func (d *Overlay) Draw() {
	if !d.ShowFPS {
		return
	}
	d.frameCount++
	if d.frameCount%updateInterval == 0 || d.lines[0] == "" {
		d.refresh()
	}
	y := int32(padding)
	for _, line := range d.lines {
		if line == "" {
			continue
		}
		rl.DrawText(line, padding, y, fontSize, rl.Green)
		y += lineHeight
	}
}

func (d *Overlay) refresh() {
	d.lines[0] = fmt.Sprintf("FPS: %d", rl.GetFPS())
	runtime.ReadMemStats(&d.memStats)
	d.lines[1] = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
	if d.stats != nil {
		s := d.stats()
		d.lines[2] = fmt.Sprintf("Objects: %d  Loading: %d  Ticks: %d", s.Objects, s.Pending, s.Ticks)
	}
}
