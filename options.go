package xoverlay

import "github.com/gogpu/xoverlay/internal/extract"

// Option configures an Overlay during construction.
//
// Example:
//
//	ov, err := xoverlay.New(subject, clip, xoverlay.AutoSolver(),
//		xoverlay.WithOutputDirection(xoverlay.Clockwise),
//		xoverlay.WithMinOutputArea(4),
//	)
type Option func(*options)

type options struct {
	preserveInputCollinear  bool
	preserveOutputCollinear bool
	outputDirection         extract.Direction
	minOutputArea           int64
}

func defaultOptions() options {
	return options{
		preserveInputCollinear:  false,
		preserveOutputCollinear: false,
		outputDirection:         extract.CounterClockwise,
		minOutputArea:           0,
	}
}

// WithPreserveInputCollinear keeps collinear middle vertices in input
// contours instead of dropping them during cleanup.
func WithPreserveInputCollinear(preserve bool) Option {
	return func(o *options) {
		o.preserveInputCollinear = preserve
	}
}

// WithPreserveOutputCollinear keeps collinear middle vertices in
// extracted output rings instead of dropping them.
func WithPreserveOutputCollinear(preserve bool) Option {
	return func(o *options) {
		o.preserveOutputCollinear = preserve
	}
}

// WithOutputDirection sets the winding direction of each shape's outer
// contour; holes always carry the opposite winding. Defaults to
// CounterClockwise.
func WithOutputDirection(dir Direction) Option {
	return func(o *options) {
		o.outputDirection = extract.Direction(dir)
	}
}

// WithMinOutputArea drops any extracted ring whose absolute area falls
// below area. Defaults to 0 (keep everything).
func WithMinOutputArea(area int64) Option {
	return func(o *options) {
		o.minOutputArea = area
	}
}
