// Package xerr holds the sentinel errors shared by the xoverlay root
// package and internal/ingest, kept in their own package (rather than
// on the root package directly) so internal packages can return them
// without an import cycle back through the root package.
package xerr

import "errors"

// ErrNotValidPath indicates an input edge has a slope other than
// vertical, horizontal, or ±45°.
var ErrNotValidPath = errors.New("xoverlay: edge is not axis-aligned or ±45°")

// ErrEmptyPath indicates a contour has fewer than three distinct
// points after deduplication. Per spec, this is not fatal: the
// offending contour is silently skipped by internal/ingest. It is
// exported so a caller that wants to know why a contour vanished can
// still check with errors.Is against a wrapped diagnostic, though
// New/Run never return it directly.
var ErrEmptyPath = errors.New("xoverlay: contour has fewer than three distinct points")
