// Package geometry publishes box size changes to interested components.
package geometry

import "sync"

// Box is a width/height pair in terminal cells.
type Box struct {
	Width  int
	Height int
}

// Empty reports whether the box has not been laid out yet.
func (b Box) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Observer fans box changes out to subscribers. Publishing an unchanged box
// notifies nobody.
type Observer struct {
	mu     sync.Mutex
	box    Box
	set    bool
	nextID int
	subs   map[int]func(Box)
}

// NewObserver creates an Observer with no box yet.
func NewObserver() *Observer {
	return &Observer{subs: make(map[int]func(Box))}
}

// Subscribe registers fn and returns a function that deregisters it. If a box
// has already been published, fn is called with it right away.
func (o *Observer) Subscribe(fn func(Box)) (cancel func()) {
	o.mu.Lock()
	id := o.nextID
	o.nextID++
	o.subs[id] = fn
	box, set := o.box, o.set
	o.mu.Unlock()

	if set {
		fn(box)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			o.mu.Lock()
			delete(o.subs, id)
			o.mu.Unlock()
		})
	}
}

// Publish records b and notifies subscribers if it differs from the last box.
func (o *Observer) Publish(b Box) {
	o.mu.Lock()
	if o.set && o.box == b {
		o.mu.Unlock()
		return
	}
	o.box = b
	o.set = true

	fns := make([]func(Box), 0, len(o.subs))
	for _, fn := range o.subs {
		fns = append(fns, fn)
	}
	o.mu.Unlock()

	for _, fn := range fns {
		fn(b)
	}
}

func (o *Observer) Current() (Box, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.box, o.set
}
