// SPDX-FileCopyrightText: 2024 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package display

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDragBy_clamp(t *testing.T) {
	tests := []struct {
		name  string
		delta Point
		want  Point
	}{
		{
			name:  "inside",
			delta: Point{X: 10, Y: -5},
			want:  Point{X: 10, Y: -5},
		},
		{
			name:  "far right and up",
			delta: Point{X: 1e9, Y: -1e9},
			want:  Point{X: 160, Y: -77.5},
		},
		{
			name:  "far left and down",
			delta: Point{X: -1e9, Y: 1e9},
			want:  Point{X: -160, Y: 77.5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(Point{})
			s.DragBy(0, tt.delta)
			assert.Equal(t, tt.want, s.Monitors[0].Visual)

			// clamping again changes nothing
			s.DragBy(0, Point{})
			assert.Equal(t, tt.want, s.Monitors[0].Visual)
		})
	}
}

func TestDragBy_clampCustomCanvas(t *testing.T) {
	s := newTestState(Point{})
	s.Options = LayoutOptions{CanvasWidth: 600, CanvasHeight: 300, SnapDistance: 10}

	s.DragBy(0, Point{X: 1000, Y: 1000})
	assert.Equal(t, Point{X: 260, Y: 127.5}, s.Monitors[0].Visual)
}

func TestDragBy_invalidIndex(t *testing.T) {
	s := newTestState(Point{X: 1, Y: 2})
	s.DragBy(-1, Point{X: 5})
	s.DragBy(1, Point{X: 5})
	assert.Equal(t, Point{X: 1, Y: 2}, s.Monitors[0].Visual)

	empty := NewLayoutState()
	empty.DragBy(0, Point{X: 5})
	assert.Empty(t, empty.Monitors)
}

func TestDragBy_nonFiniteDelta(t *testing.T) {
	deltas := []Point{
		{X: math.NaN()},
		{Y: math.NaN()},
		{X: math.Inf(1)},
		{Y: math.Inf(-1)},
	}
	for _, delta := range deltas {
		s := newTestState(Point{X: 10, Y: 5}, Point{X: 100})
		s.DragBy(0, delta)
		assert.Equal(t, Point{X: 10, Y: 5}, s.Monitors[0].Visual)

		s.SelectMonitor(1)
		s.SelectMode(0)
		pos, ok := s.PhysicalPositionFor(1)
		require.True(t, ok)
		assert.Equal(t, Position{X: 2160, Y: 0}, pos)
	}
}

func TestDragBy_snapToLeftOfNeighbor(t *testing.T) {
	s := newTestState(Point{}, Point{X: 100, Y: 30})

	s.DragBy(0, Point{X: 15, Y: 3})
	assert.Equal(t, 20.0, s.Monitors[0].Visual.X)
	assert.Equal(t, 3.0, s.Monitors[0].Visual.Y)
	assert.Equal(t, Point{X: 100, Y: 30}, s.Monitors[1].Visual)
}

func TestDragBy_noSnapOutsideThreshold(t *testing.T) {
	s := newTestState(Point{}, Point{X: 100})

	s.DragBy(0, Point{X: 5})
	// 15 away from 20
	assert.Equal(t, 5.0, s.Monitors[0].Visual.X)
}

// Several neighbors qualify: the last one in monitor order wins. This is
// iteration order, not a priority rule.
func TestDragBy_snapLastMatchWins(t *testing.T) {
	s := newTestState(Point{}, Point{X: 100}, Point{X: 105})

	s.DragBy(0, Point{X: 22})
	assert.Equal(t, 25.0, s.Monitors[0].Visual.X)
}

func TestDragBy_snapTargetOffCanvas(t *testing.T) {
	// snapping would put the preview at -165, left of the -160 bound
	s := newTestState(Point{}, Point{X: -85})

	s.DragBy(0, Point{X: -1000})
	assert.Equal(t, -160.0, s.Monitors[0].Visual.X)
}

func TestBeginDrag(t *testing.T) {
	s := newTestState(Point{}, Point{X: 80})

	assert.False(t, s.BeginDrag(2))
	_, ok := s.Dragging()
	assert.False(t, ok)

	require.True(t, s.BeginDrag(1))
	idx, ok := s.Dragging()
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	s.EndDrag()
	_, ok = s.Dragging()
	assert.False(t, ok)
}

func TestPhysicalPositionFor(t *testing.T) {
	s := newTestState(Point{}, Point{X: 80})
	_, ok := s.PhysicalPositionFor(0)
	assert.False(t, ok, "no mode selected")

	require.True(t, s.SelectMonitor(1))
	require.True(t, s.SelectMode(0))

	pos, ok := s.PhysicalPositionFor(1)
	require.True(t, ok)
	assert.Equal(t, Position{X: 1920, Y: 0}, pos)

	pos, ok = s.PhysicalPositionFor(0)
	require.True(t, ok)
	assert.Equal(t, Position{}, pos)

	_, ok = s.PhysicalPositionFor(2)
	assert.False(t, ok)
}

func TestPhysicalPosition_normalized(t *testing.T) {
	s := newTestState(Point{X: -50, Y: -20}, Point{X: 30, Y: 10})

	assert.Equal(t, Position{}, s.physicalPosition(0, 1920))
	assert.Equal(t, Position{X: 1920, Y: 720}, s.physicalPosition(1, 1920))
}

func TestPhysicalPosition_singleMonitor(t *testing.T) {
	for _, v := range []Point{{}, {X: -160, Y: 77.5}, {X: 33.3, Y: -12}} {
		s := newTestState(v)
		assert.Equal(t, Position{}, s.physicalPosition(0, 3840))
	}
}

func TestPhysicalPosition_rounding(t *testing.T) {
	s := newTestState(Point{}, Point{X: 0.3, Y: 0.5})

	// scale 2560 / 80 = 32
	assert.Equal(t, Position{X: 10, Y: 16}, s.physicalPosition(1, 2560))
}
