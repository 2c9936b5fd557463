// Package anchor keeps a live transcript pinned to its newest content unless
// the user has scrolled away from the bottom.
//
// An Anchor is driven by two independent events: the transcript changed, and
// the region scrolled. Scrolling to the bottom after an append is deferred by
// two frames so the new content is laid out before the scroll, and the scroll
// is committed before the geometry used for the next decision is read.
//
// All methods must be called from the UI goroutine.
package anchor

import (
	"go.uber.org/zap"
)

// NearBottomFraction is the share of the viewport height within which the
// region still counts as being at the bottom.
const NearBottomFraction = 0.2

// Snapshot describes a scrollable region at one instant.
type Snapshot struct {
	ScrollTop    int
	ScrollHeight int
	ClientHeight int
}

// DistanceToBottom returns how far the viewport is from the end of content.
func (s Snapshot) DistanceToBottom() int {
	return s.ScrollHeight - (s.ScrollTop + s.ClientHeight)
}

// NearBottom reports whether the viewport is within NearBottomFraction of its
// own height from the end of content.
func (s Snapshot) NearBottom() bool {
	return float64(s.DistanceToBottom()) <= float64(s.ClientHeight)*NearBottomFraction
}

// Region is the scrollable area an Anchor controls.
type Region interface {
	// Snapshot returns the current geometry, or false while the region is
	// not attached.
	Snapshot() (Snapshot, bool)
	// ScrollToBottom moves the viewport to the end of content.
	ScrollToBottom()
}

// Anchor tracks whether a Region follows new content.
type Anchor struct {
	region Region
	frames Scheduler
	logger *zap.Logger

	following bool

	prev    Snapshot
	hasPrev bool
	prevLen int

	scrollQueued  bool
	refreshQueued bool
	scrollTicking bool

	closed bool
}

// Option configures an Anchor.
type Option func(*Anchor)

// WithLogger attaches a logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *Anchor) { a.logger = l }
}

// WithLength sets the transcript length the Anchor starts from.
func WithLength(n int) Option {
	return func(a *Anchor) { a.prevLen = n }
}

// New returns an Anchor in the following state. If the region is already
// attached its geometry becomes the first stored snapshot.
func New(region Region, frames Scheduler, opts ...Option) *Anchor {
	a := &Anchor{
		region:    region,
		frames:    frames,
		logger:    zap.NewNop(),
		following: true,
	}
	for _, opt := range opts {
		opt(a)
	}
	if snap, ok := a.current(); ok {
		a.store(snap)
	}
	return a
}

// Following reports whether the region tracks new content.
func (a *Anchor) Following() bool {
	return a.following
}

// Stored returns the snapshot the next append decision will be based on.
func (a *Anchor) Stored() (Snapshot, bool) {
	return a.prev, a.hasPrev
}

// OnTranscript handles a transcript change. length is the message count after
// the change; an unchanged length still re-pins a following region, which
// covers content that grew in place.
func (a *Anchor) OnTranscript(length int) {
	if a.closed {
		return
	}
	if _, ok := a.current(); !ok {
		return
	}

	added := length > a.prevLen
	a.prevLen = length

	if added {
		if a.wasNearBottom() && !a.following {
			a.following = true
			a.logger.Debug("transcript grew near bottom, following again")
		}
		if a.following {
			a.scheduleScroll()
		} else {
			a.scheduleRefresh()
		}
		return
	}

	if a.following {
		a.scheduleScroll()
	}
}

// OnScroll handles a raw scroll event. Bursts are coalesced so at most one
// evaluation runs per frame, using the geometry current at that frame.
func (a *Anchor) OnScroll() {
	if a.closed || a.scrollTicking {
		return
	}
	if _, ok := a.current(); !ok {
		return
	}

	a.scrollTicking = true
	a.frames.NextFrame(func() {
		a.scrollTicking = false
		if a.closed {
			return
		}
		snap, ok := a.current()
		if !ok {
			return
		}
		a.store(snap)

		following := snap.NearBottom()
		if following != a.following {
			a.logger.Debug("scroll changed follow state",
				zap.Bool("following", following),
				zap.Int("distance", snap.DistanceToBottom()),
				zap.Int("client_height", snap.ClientHeight))
		}
		a.following = following
	})
}

// Close detaches the Anchor. Pending callbacks become no-ops and later events
// are ignored.
func (a *Anchor) Close() {
	a.closed = true
}

// wasNearBottom evaluates the stored pre-change snapshot. Without one, this
// is the first paint and counts as being at the bottom.
func (a *Anchor) wasNearBottom() bool {
	if !a.hasPrev || a.prev.ScrollHeight == 0 {
		return true
	}
	return a.prev.NearBottom()
}

// scheduleScroll waits one frame for layout, a second for the scroll to land,
// then records the resulting geometry. Only one such chain is pending at a
// time; it reads the region when it runs, not when it was scheduled.
func (a *Anchor) scheduleScroll() {
	if a.scrollQueued {
		return
	}
	a.scrollQueued = true

	a.frames.NextFrame(func() {
		a.frames.NextFrame(func() {
			a.scrollQueued = false
			if a.closed || !a.following {
				return
			}
			if _, ok := a.current(); !ok {
				return
			}
			a.region.ScrollToBottom()
			if snap, ok := a.current(); ok {
				a.store(snap)
			}
		})
	})
}

func (a *Anchor) scheduleRefresh() {
	if a.refreshQueued {
		return
	}
	a.refreshQueued = true

	a.frames.NextFrame(func() {
		a.refreshQueued = false
		if a.closed {
			return
		}
		if snap, ok := a.current(); ok {
			a.store(snap)
		}
	})
}

func (a *Anchor) current() (Snapshot, bool) {
	if a.region == nil {
		return Snapshot{}, false
	}
	return a.region.Snapshot()
}

func (a *Anchor) store(s Snapshot) {
	a.prev = s
	a.hasPrev = true
}
