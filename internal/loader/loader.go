package loader

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
)

var (
	// ErrLoad wraps any failure reported by the backend (missing file, parse error).
	ErrLoad = errors.New("asset load failed")
	// ErrNoScene means the asset loaded but carried no scene root.
	ErrNoScene = errors.New("asset has no scene")
)

// Asset is the result of a backend load. Root is the renderable scene root; nil means
// the file contained no scene.
type Asset struct {
	Root any
}

// Backend performs the actual load. Implementations that touch the GPU must be called on
// the render thread, which is why the Loader resolves requests from Poll.
type Backend interface {
	Load(path string) (Asset, error)
}

// BackendFunc adapts a plain function to Backend.
type BackendFunc func(path string) (Asset, error)

// Load calls f(path).
func (f BackendFunc) Load(path string) (Asset, error) {
	return f(path)
}

// OnLoaded receives a successfully loaded root together with the request label.
type OnLoaded func(label string, root any)

type request struct {
	label    string
	path     string
	onLoaded OnLoaded
}

// Loader queues load requests and resolves them one per Poll. Failures are logged with the
// request label and otherwise dropped: no retry, no dedup, no callback.
type Loader struct {
	backend Backend
	log     zerolog.Logger
	pending []request
}

// New returns a Loader using backend and logging through log.
func New(backend Backend, log zerolog.Logger) *Loader {
	return &Loader{backend: backend, log: log}
}

// Request queues a load of path. onLoaded runs on a later Poll if the load succeeds.
func (l *Loader) Request(label, path string, onLoaded OnLoaded) {
	l.pending = append(l.pending, request{label: label, path: path, onLoaded: onLoaded})
}

// RequestCopies queues n independent loads of the same path, labelled "first", "second", ...
// Each success yields its own root.
func (l *Loader) RequestCopies(path string, n int, onLoaded OnLoaded) {
	for i := 1; i <= n; i++ {
		l.Request(Ordinal(i), path, onLoaded)
	}
}

// Pending returns the number of unresolved requests.
func (l *Loader) Pending() int {
	return len(l.pending)
}

// Poll resolves the oldest pending request, if any, and reports whether it did.
func (l *Loader) Poll() bool {
	if len(l.pending) == 0 {
		return false
	}
	req := l.pending[0]
	l.pending = l.pending[1:]

	root, err := l.load(req.path)
	if err != nil {
		l.log.Error().Err(err).Str("attempt", req.label).Str("path", req.path).
			Msgf("error loading %s model", req.label)
		return true
	}
	l.log.Info().Str("attempt", req.label).Str("path", req.path).
		Msgf("%s model loaded", req.label)
	if req.onLoaded != nil {
		req.onLoaded(req.label, root)
	}
	return true
}

// Drain polls until no requests remain.
func (l *Loader) Drain() {
	for l.Poll() {
	}
}

func (l *Loader) load(path string) (any, error) {
	asset, err := l.backend.Load(path)
	switch {
	case errors.Is(err, ErrNoScene):
		return nil, err
	case err != nil:
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
	case asset.Root == nil:
		return nil, fmt.Errorf("%w: %s", ErrNoScene, path)
	}
	return asset.Root, nil
}

var ordinals = []string{"first", "second", "third", "fourth", "fifth"}

// Ordinal returns the English ordinal for i (1-based), falling back to "#i".
func Ordinal(i int) string {
	if i >= 1 && i <= len(ordinals) {
		return ordinals[i-1]
	}
	return "#" + strconv.Itoa(i)
}
