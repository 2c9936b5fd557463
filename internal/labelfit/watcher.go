package labelfit

// Watcher keeps the visible count for one card and refits only when the box,
// the summary height or the label set changes.
type Watcher struct {
	fitter *Fitter
	last   Request
	fitted bool
	count  int
}

// NewWatcher returns a Watcher whose count starts at the full label count.
func NewWatcher(f *Fitter) *Watcher {
	return &Watcher{fitter: f}
}

// Observe feeds the current geometry and returns the count to render. A zero
// width is treated as "not laid out" and keeps the previous count.
func (w *Watcher) Observe(req Request) int {
	labelsChanged := !w.fitted || !sameLabels(w.last.Labels, req.Labels)

	if req.ContainerWidth <= 0 {
		if labelsChanged {
			w.count = len(req.Labels)
			w.last.Labels = req.Labels
			w.fitted = false
		}
		return w.count
	}

	if !labelsChanged &&
		w.last.ContainerWidth == req.ContainerWidth &&
		w.last.ContainerHeight == req.ContainerHeight &&
		w.last.SiblingContentHeight == req.SiblingContentHeight {
		return w.count
	}

	w.count = w.fitter.Fit(req).VisibleCount
	w.last = req
	w.fitted = true
	return w.count
}

// Count returns the last computed count.
func (w *Watcher) Count() int {
	return w.count
}

func sameLabels(a, b []Label) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
