// SPDX-FileCopyrightText: 2024 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package display

import (
	"math"
)

const (
	// PreviewWidth and PreviewHeight are the size of a monitor in the
	// visual editing space, whatever its resolution.
	PreviewWidth  = 80.0
	PreviewHeight = 45.0

	// ReferencePreviewWidth is the mode width, in visual units, that maps
	// back to physical pixels at apply time.
	ReferencePreviewWidth = PreviewWidth

	// VisualScale converts physical pixels to visual units at query time.
	VisualScale = 1.0 / 24.0

	defaultCanvasWidth  = 400.0
	defaultCanvasHeight = 200.0
	defaultSnapDistance = 10.0
)

type LayoutOptions struct {
	CanvasWidth  float64
	CanvasHeight float64
	SnapDistance float64
}

func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{
		CanvasWidth:  defaultCanvasWidth,
		CanvasHeight: defaultCanvasHeight,
		SnapDistance: defaultSnapDistance,
	}
}

// bounds returns the range the center of a preview may occupy so that the
// whole preview stays on the canvas.
func (o LayoutOptions) bounds() (minX, maxX, minY, maxY float64) {
	halfW := o.CanvasWidth / 2
	halfH := o.CanvasHeight / 2
	marginX := PreviewWidth / 2
	marginY := PreviewHeight / 2
	return -halfW + marginX, halfW - marginX, -halfH + marginY, halfH - marginY
}

func (o LayoutOptions) clamp(p Point) Point {
	minX, maxX, minY, maxY := o.bounds()
	return Point{
		X: clampFloat(p.X, minX, maxX),
		Y: clampFloat(p.Y, minY, maxY),
	}
}

func clampFloat(v, min, max float64) float64 {
	// a canvas smaller than the preview collapses onto its center
	if min > max {
		return 0
	}
	return math.Max(min, math.Min(max, v))
}

func toVisual(p Position) Point {
	return Point{
		X: float64(p.X) * VisualScale,
		Y: float64(p.Y) * VisualScale,
	}
}

func (s *LayoutState) BeginDrag(idx int) bool {
	if !s.validMonitor(idx) {
		return false
	}
	s.dragging = idx
	return true
}

func (s *LayoutState) EndDrag() {
	s.dragging = NoSelection
}

func (s *LayoutState) Dragging() (int, bool) {
	if !s.validMonitor(s.dragging) {
		return NoSelection, false
	}
	return s.dragging, true
}

// DragBy moves the monitor at idx by delta, keeps it on the canvas and snaps
// it to the left of a neighbor that is close enough. When several neighbors
// qualify the last one in monitor order wins. Invalid indices and non-finite
// deltas are ignored.
func (s *LayoutState) DragBy(idx int, delta Point) {
	if !s.validMonitor(idx) || !delta.finite() {
		return
	}

	opts := s.Options
	pos := opts.clamp(s.Monitors[idx].Visual.Add(delta))

	minX, maxX, _, _ := opts.bounds()
	for j := range s.Monitors {
		if j == idx {
			continue
		}
		target := s.Monitors[j].Visual.X - PreviewWidth
		if target < minX || target > maxX {
			continue
		}
		if math.Abs(pos.X-target) < opts.SnapDistance {
			pos.X = target
		}
	}

	s.Monitors[idx].Visual = pos
}

// PhysicalPositionFor maps the visual position of the monitor at idx back to
// physical pixels, scaled by the width of the selected mode. The top-left
// most visual coordinates of the whole group map to (0, 0).
func (s *LayoutState) PhysicalPositionFor(idx int) (Position, bool) {
	mode, ok := s.SelectedModeInfo()
	if !ok || !s.validMonitor(idx) {
		return Position{}, false
	}
	return s.physicalPosition(idx, mode.Width), true
}

func (s *LayoutState) physicalPosition(idx, modeWidth int) Position {
	scale := float64(modeWidth) / ReferencePreviewWidth

	minX := math.MaxFloat64
	minY := math.MaxFloat64
	for _, m := range s.Monitors {
		minX = math.Min(minX, m.Visual.X)
		minY = math.Min(minY, m.Visual.Y)
	}

	v := s.Monitors[idx].Visual
	return Position{
		X: int(math.Round((v.X - minX) * scale)),
		Y: int(math.Round((v.Y - minY) * scale)),
	}
}
