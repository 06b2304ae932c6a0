package controls

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"

	"transform-viewer/internal/transform"
	"transform-viewer/internal/viewstate"
)

func clamp[T constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Slider is a debug-panel slider bound to one ViewState field. Values are snapped to Step
// and clamped to [Min, Max]; this is the only place those ranges are enforced.
type Slider struct {
	Name           string
	Min, Max, Step float64

	get   func(viewstate.ViewState) float64
	patch func(*float64) viewstate.Patch
}

// Snap clamps v to the slider range and rounds it to the nearest multiple of Step.
func (s Slider) Snap(v float64) float64 {
	v = clamp(v, s.Min, s.Max)
	if s.Step > 0 {
		v = math.Round(v/s.Step) * s.Step
	}
	return clamp(v, s.Min, s.Max)
}

// Fraction returns where v sits along the track, 0 at Min and 1 at Max. NaN sits at 0.
func (s Slider) Fraction(v float64) float32 {
	span := s.Max - s.Min
	f := float32((v - s.Min) / span)
	if span <= 0 || math32.IsNaN(f) {
		return 0
	}
	return clamp(f, 0, 1)
}

// ValueAt maps a track fraction to a snapped value.
func (s Slider) ValueAt(frac float32) float64 {
	return s.Snap(s.Min + float64(clamp(frac, 0, 1))*(s.Max-s.Min))
}

// Value reads the bound field from st.
func (s Slider) Value(st viewstate.ViewState) float64 {
	return s.get(st)
}

// Set snaps v and writes it to store.
func (s Slider) Set(store *viewstate.Store, v float64) {
	store.Replace(s.patch(viewstate.Float(s.Snap(v))))
}

// Readout is a read-only text row.
type Readout struct {
	Name string
	get  func(viewstate.ViewState) string
}

// Text returns the current text.
func (r Readout) Text(st viewstate.ViewState) string {
	return r.get(st)
}

// Folder groups sliders and readouts under a collapsible title.
type Folder struct {
	Title    string
	Open     bool
	Sliders  []Slider
	Readouts []Readout
}

// Toggle opens or closes the folder.
func (f *Folder) Toggle() {
	f.Open = !f.Open
}

// DebugPanel returns the viewer's control folders, both open.
func DebugPanel() []*Folder {
	return []*Folder{
		{
			Title: "Cube Rotation",
			Open:  true,
			Sliders: []Slider{
				{
					Name: "Rotation X", Min: viewstate.RotationDeltaMin, Max: viewstate.RotationDeltaMax, Step: viewstate.RotationDeltaStep,
					get:   func(v viewstate.ViewState) float64 { return v.RotationDeltaX },
					patch: func(f *float64) viewstate.Patch { return viewstate.Patch{RotationDeltaX: f} },
				},
				{
					Name: "Rotation Y", Min: viewstate.RotationDeltaMin, Max: viewstate.RotationDeltaMax, Step: viewstate.RotationDeltaStep,
					get:   func(v viewstate.ViewState) float64 { return v.RotationDeltaY },
					patch: func(f *float64) viewstate.Patch { return viewstate.Patch{RotationDeltaY: f} },
				},
			},
			Readouts: []Readout{
				{Name: "Transformation Matrix", get: func(v viewstate.ViewState) string { return v.MatrixText }},
			},
		},
		{
			Title: "Cube Scale",
			Open:  true,
			Sliders: []Slider{
				{
					Name: "Scale", Min: viewstate.UniformScaleMin, Max: viewstate.UniformScaleMax, Step: viewstate.UniformScaleStep,
					get:   func(v viewstate.ViewState) float64 { return v.UniformScale },
					patch: func(f *float64) viewstate.Patch { return viewstate.Patch{UniformScale: f} },
				},
			},
		},
	}
}

// FormatValue renders a slider or field value for display.
func FormatValue(v float64) string {
	return transform.FormatNumber(v)
}
