// Package xoverlay performs Boolean set operations — union, intersect,
// difference, inverse difference, symmetric difference (xor), and the
// subject-only/clip-only projections — on planar polygon collections
// whose edges are restricted to axis-aligned and ±45° directions on an
// integer coordinate grid.
//
// # Overview
//
// Inputs are two contour collections, subject and clip. Each contour
// is a closed polygon ring whose edges must all be vertical,
// horizontal, or exactly ±45°; any other slope is rejected with
// ErrNotValidPath. The output is a collection of shapes, each an outer
// contour plus zero or more holes, satisfying the chosen fill rule
// under the chosen overlay rule.
//
// # Quick Start
//
//	import "github.com/gogpu/xoverlay"
//
//	square := []xoverlay.Contour{{
//		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
//	}}
//	diamond := []xoverlay.Contour{{
//		{X: 5, Y: -5}, {X: 15, Y: 5}, {X: 5, Y: 15}, {X: -5, Y: 5},
//	}}
//
//	ov, err := xoverlay.New(square, diamond, xoverlay.AutoSolver())
//	if err != nil {
//		log.Fatal(err)
//	}
//	shapes, err := ov.Run(xoverlay.NonZero, xoverlay.Union)
//
// # Pipeline
//
// Contours are sharded into x-coordinate columns, self-intersections
// are found and cut, a winding-count sweep assigns fill states, an
// overlay rule filters the result into a planar graph, and a
// nearest-turn walk extracts the final oriented contours. See the
// internal/ package tree for each stage.
//
// # Coordinate System
//
// Coordinates are plain integers with no implied scale; orientation
// is mathematical (counterclockwise is positive area), not the
// top-left/y-down convention of screen-space graphics.
//
// # Concurrency
//
// A Solver value controls how many goroutines process columns in
// parallel; the sequential and parallel paths always produce
// bit-identical output for the same input and options.
package xoverlay
