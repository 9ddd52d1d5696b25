// Package outside detects pointer activations that land outside a bound screen
// region.
package outside

import "sync"

// EventKind classifies a pointer event.
type EventKind int

const (
	// Press is a mouse button press.
	Press EventKind = iota
	// Touch is a touch-style activation.
	Touch
	// Other covers motion, release and wheel events, which never dismiss.
	Other
)

// Point is a cell position on screen.
type Point struct {
	X int
	Y int
}

// Event is a pointer event delivered to every listener of a Document.
type Event struct {
	Kind   EventKind
	Target Point
}

// Region is a rectangle of cells. A zero-sized region contains nothing.
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether p lies inside the region.
func (r Region) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Empty reports whether the region has no area.
func (r Region) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Listener receives dispatched events.
type Listener func(Event)

// Document is the program-wide dispatch surface for pointer events.
type Document struct {
	mu        sync.Mutex
	listeners map[uint64]Listener
	next      uint64
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{listeners: make(map[uint64]Listener)}
}

// AddListener registers fn and returns the function that removes it.
func (d *Document) AddListener(fn Listener) func() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.listeners == nil {
		d.listeners = make(map[uint64]Listener)
	}
	id := d.next
	d.next++
	d.listeners[id] = fn

	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		delete(d.listeners, id)
	}
}

// Listeners returns the number of registered listeners.
func (d *Document) Listeners() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners)
}

// Dispatch delivers ev to every listener registered at the time of the call.
func (d *Document) Dispatch(ev Event) {
	d.mu.Lock()
	snapshot := make([]Listener, 0, len(d.listeners))
	for _, fn := range d.listeners {
		snapshot = append(snapshot, fn)
	}
	d.mu.Unlock()

	for _, fn := range snapshot {
		fn(ev)
	}
}

// Watcher owns one region and calls onOutside for every press or touch that
// lands outside it. It holds a single document listener until Close.
type Watcher struct {
	region    Region
	onOutside func()
	release   func()
	once      sync.Once
	closed    bool
}

// Watch registers a watcher on doc.
func Watch(doc *Document, onOutside func()) *Watcher {
	w := &Watcher{onOutside: onOutside}
	w.release = doc.AddListener(w.handle)
	return w
}

// Bind replaces the watched region.
func (w *Watcher) Bind(region Region) {
	w.region = region
}

// Region returns the watched region.
func (w *Watcher) Region() Region {
	return w.region
}

// Close deregisters the listener. Only the first call has an effect.
func (w *Watcher) Close() error {
	w.once.Do(func() {
		w.closed = true
		if w.release != nil {
			w.release()
		}
	})
	return nil
}

func (w *Watcher) handle(ev Event) {
	if w.closed || w.onOutside == nil {
		return
	}
	if ev.Kind != Press && ev.Kind != Touch {
		return
	}
	if w.region.Contains(ev.Target) {
		return
	}
	w.onOutside()
}
