package input

import (
	"sync"

	"github.com/sasha-s/go-deadlock"
)

// Key is a logical key the viewer reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyForward
	KeyBack
	KeyLeft
	KeyRight
	KeyCapture
	KeyToggleFPS
)

// Raw key codes as reported by the window layer. Letters share their ASCII code.
const (
	codeA   int32 = 65
	codeD   int32 = 68
	codeS   int32 = 83
	codeW   int32 = 87
	codeF3  int32 = 292
	codeF12 int32 = 301
)

var keyByCode = map[int32]Key{
	codeW:   KeyForward,
	codeS:   KeyBack,
	codeA:   KeyLeft,
	codeD:   KeyRight,
	codeF12: KeyCapture,
	codeF3:  KeyToggleFPS,
}

// Codes returns the raw key codes worth polling, in a stable order.
func Codes() []int32 {
	return []int32{codeW, codeS, codeA, codeD, codeF12, codeF3}
}

// FromCode maps a raw key code to a Key. Unknown codes map to KeyNone.
func FromCode(code int32) Key {
	return keyByCode[code]
}

// Handler receives every key-down event, including OS auto-repeat.
type Handler func(Key)

// Keyboard fans key-down events out to listeners. Listen returns a release func so a
// listener lives exactly as long as the view that registered it.
type Keyboard struct {
	mu        deadlock.Mutex
	listeners map[int]Handler
	nextID    int
}

// NewKeyboard returns a keyboard with no listeners.
func NewKeyboard() *Keyboard {
	return &Keyboard{listeners: make(map[int]Handler)}
}

// Listen registers h. Calling release more than once is harmless.
func (k *Keyboard) Listen(h Handler) (release func()) {
	k.mu.Lock()
	id := k.nextID
	k.nextID++
	k.listeners[id] = h
	k.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			k.mu.Lock()
			delete(k.listeners, id)
			k.mu.Unlock()
		})
	}
}

// Listeners returns the number of registered listeners.
func (k *Keyboard) Listeners() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.listeners)
}

// Dispatch delivers key to every listener. KeyNone is dropped.
func (k *Keyboard) Dispatch(key Key) {
	if key == KeyNone {
		return
	}
	k.mu.Lock()
	hs := make([]Handler, 0, len(k.listeners))
	for _, h := range k.listeners {
		hs = append(hs, h)
	}
	k.mu.Unlock()
	for _, h := range hs {
		h(key)
	}
}

// DispatchCode maps code with FromCode and dispatches it.
func (k *Keyboard) DispatchCode(code int32) {
	k.Dispatch(FromCode(code))
}
