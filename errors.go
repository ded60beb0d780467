package xoverlay

import "github.com/gogpu/xoverlay/internal/xerr"

// ErrNotValidPath is returned when a contour edge is neither
// axis-aligned nor exactly ±45°.
var ErrNotValidPath = xerr.ErrNotValidPath

// ErrEmptyPath is returned when both the subject and clip contour
// collections are empty.
var ErrEmptyPath = xerr.ErrEmptyPath
