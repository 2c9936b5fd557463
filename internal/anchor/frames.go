package anchor

// Scheduler runs a callback after the next frame has been drawn.
type Scheduler interface {
	NextFrame(fn func())
}

// FrameLoop is a cooperative frame clock. The host calls Tick once per drawn
// frame; callbacks queued during a tick run on the following one, so two
// chained NextFrame calls span two frames.
type FrameLoop struct {
	queue []func()
}

// NewFrameLoop returns an empty FrameLoop.
func NewFrameLoop() *FrameLoop {
	return &FrameLoop{}
}

// NextFrame implements Scheduler.
func (f *FrameLoop) NextFrame(fn func()) {
	f.queue = append(f.queue, fn)
}

// Tick runs every callback queued before this call.
func (f *FrameLoop) Tick() {
	if len(f.queue) == 0 {
		return
	}
	batch := f.queue
	f.queue = nil
	for _, fn := range batch {
		fn()
	}
}

// Pending reports whether a Tick would run anything.
func (f *FrameLoop) Pending() bool {
	return len(f.queue) > 0
}

// Reset drops all queued callbacks.
func (f *FrameLoop) Reset() {
	f.queue = nil
}
