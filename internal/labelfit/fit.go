// Package labelfit decides how many hashtag badges fit on a card row.
//
// The packing itself works on plain widths so it can be tested without a
// terminal. Widths come from a Measurer, which renders each badge in the
// badge style and reads its size back.
package labelfit

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Heuristic constants. Tests assert on these exact values.
const (
	ShortSummaryRatio = 0.3
	LongSummaryRatio  = 0.6
	ShortGrowFactor   = 0.5
	LongShrinkFactor  = 0.7
)

// Defaults for a cell-based layout.
const (
	DefaultGap            = 1
	DefaultMinSpareHeight = 2
)

// Label is one badge candidate.
type Label struct {
	ID   string
	Text string
}

// Request is the input snapshot for one fitting pass.
type Request struct {
	ContainerWidth       int
	ContainerHeight      int // total content height of the card body
	SiblingContentHeight int // height used by the summary above the labels
	Labels               []Label
}

// Result holds the number of labels to render.
type Result struct {
	VisibleCount int
}

// Overflow returns how many labels the "+N more" indicator covers.
func (r Result) Overflow(total int) int {
	if r.VisibleCount >= total {
		return 0
	}
	return total - r.VisibleCount
}

// Measurer returns the rendered width of each text in the badge style.
type Measurer interface {
	MeasureWidths(texts []string) ([]int, error)
}

var errWidthCount = errors.New("measurer returned wrong number of widths")

// Fitter runs the greedy pack and the summary balance heuristic.
type Fitter struct {
	measurer       Measurer
	gap            int
	minSpareHeight int
	indicator      func(n int) string
	logger         *zap.Logger
}

// Option configures a Fitter.
type Option func(*Fitter)

// WithGap sets the space between badges.
func WithGap(gap int) Option {
	return func(f *Fitter) { f.gap = gap }
}

// WithMinSpareHeight sets the vertical room a short summary must leave,
// strictly more than h, before it may grow the label count.
func WithMinSpareHeight(h int) Option {
	return func(f *Fitter) { f.minSpareHeight = h }
}

// WithIndicator sets the overflow indicator text for n hidden labels.
func WithIndicator(fn func(n int) string) Option {
	return func(f *Fitter) { f.indicator = fn }
}

// WithLogger attaches a logger.
func WithLogger(l *zap.Logger) Option {
	return func(f *Fitter) { f.logger = l }
}

// IndicatorText is the default overflow text.
func IndicatorText(n int) string {
	return fmt.Sprintf("+%d more", n)
}

// NewFitter creates a Fitter backed by m.
func NewFitter(m Measurer, opts ...Option) *Fitter {
	f := &Fitter{
		measurer:       m,
		gap:            DefaultGap,
		minSpareHeight: DefaultMinSpareHeight,
		indicator:      IndicatorText,
		logger:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fit returns how many labels of req fit. A zero width, an empty label set or
// a failed measurement all yield the full count.
func (f *Fitter) Fit(req Request) Result {
	total := len(req.Labels)
	if total == 0 || req.ContainerWidth <= 0 {
		return Result{VisibleCount: total}
	}

	widths, indicatorWidth, err := f.measure(req.Labels)
	if err != nil {
		f.logger.Debug("label measurement failed, showing all labels",
			zap.Int("labels", total), zap.Error(err))
		return Result{VisibleCount: total}
	}

	greedy := Pack(widths, indicatorWidth, f.gap, req.ContainerWidth)
	count := Balance(greedy, total, req.SiblingContentHeight, req.ContainerHeight, f.minSpareHeight)

	f.logger.Debug("labels fitted",
		zap.Int("width", req.ContainerWidth),
		zap.Int("greedy", greedy),
		zap.Int("visible", count),
		zap.Int("total", total))

	return Result{VisibleCount: count}
}

// measure treats a panicking measurer as a failed one.
func (f *Fitter) measure(labels []Label) (widths []int, indicatorWidth int, err error) {
	if f.measurer == nil {
		return nil, 0, errors.New("no measurer")
	}

	defer func() {
		if r := recover(); r != nil {
			widths, indicatorWidth = nil, 0
			err = fmt.Errorf("measurer panicked: %v", r)
		}
	}()

	texts := make([]string, 0, len(labels)+1)
	for _, l := range labels {
		texts = append(texts, l.Text)
	}
	texts = append(texts, f.indicator(len(labels)))

	all, err := f.measurer.MeasureWidths(texts)
	if err != nil {
		return nil, 0, err
	}
	if len(all) != len(texts) {
		return nil, 0, errWidthCount
	}

	return all[:len(labels)], all[len(labels)], nil
}

// Pack walks widths left to right and returns how many fit in containerWidth.
// Every label except the last must leave room for the indicator.
func Pack(widths []int, indicatorWidth, gap, containerWidth int) int {
	count := 0
	current := 0

	for i, w := range widths {
		last := i == len(widths)-1
		required := current + w
		if !last {
			required += indicatorWidth + gap
		}
		if required > containerWidth {
			break
		}
		current += w + gap
		count++
	}

	return count
}

// Balance adjusts a greedy count by how much of the card the summary takes,
// then clamps the result to [1, total].
func Balance(greedy, total, siblingHeight, containerHeight, minSpareHeight int) int {
	if total <= 0 {
		return 0
	}

	adjusted := greedy
	if containerHeight > 0 {
		ratio := float64(siblingHeight) / float64(containerHeight)
		spare := containerHeight - siblingHeight

		switch {
		case ratio < ShortSummaryRatio && spare > minSpareHeight:
			adjusted = greedy + floor(float64(total-greedy)*ShortGrowFactor)
			if adjusted > total {
				adjusted = total
			}
		case ratio > LongSummaryRatio:
			adjusted = floor(float64(greedy) * LongShrinkFactor)
			if adjusted < 1 {
				adjusted = 1
			}
		}
	}

	if adjusted < 1 {
		adjusted = 1
	}
	if adjusted > total {
		adjusted = total
	}
	return adjusted
}

// floor truncates x, absorbing float error from the fractional constants.
func floor(x float64) int {
	return int(math.Floor(x + 1e-9))
}
