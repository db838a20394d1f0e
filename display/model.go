// SPDX-FileCopyrightText: 2024 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package display

import (
	"fmt"
	"math"
)

// NoSelection marks an absent monitor or mode selection.
const NoSelection = -1

// Mode is one display timing supported by an output, as reported by the
// server. It is never mutated after parsing.
type Mode struct {
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Refresh   float64 `json:"refresh"`
	Preferred bool    `json:"preferred"`
	Current   bool    `json:"current"`
}

func (m Mode) String() string {
	return fmt.Sprintf("%dx%d @ %.2f Hz", m.Width, m.Height, m.Refresh)
}

// Position is a point in the server's physical pixel space.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Point is a point in the visual editing space, relative to the canvas center.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

type Monitor struct {
	Name    string `json:"name"`
	Model   string `json:"model"`
	Enabled bool   `json:"enabled"`
	Modes   []Mode `json:"modes"`

	// Physical is the offset reported by the last query.
	Physical Position `json:"physical"`
	// Visual is owned by the layout engine.
	Visual Point `json:"visual"`

	AdaptiveSync bool    `json:"adaptive_sync"`
	Scale        float64 `json:"scale"`
}

func (m *Monitor) String() string {
	return fmt.Sprintf("<Monitor name=%s model=%q>", m.Name, m.Model)
}

// CurrentMode returns the index of the mode flagged as current, or
// NoSelection.
func (m *Monitor) CurrentMode() int {
	for i, mode := range m.Modes {
		if mode.Current {
			return i
		}
	}
	return NoSelection
}

// LayoutState is the aggregate the front-ends read and mutate. It has a
// single owner and no locking of its own.
type LayoutState struct {
	Monitors        []Monitor `json:"monitors"`
	SelectedMonitor int       `json:"selected_monitor"`
	SelectedMode    int       `json:"selected_mode"`
	MonitorEnabled  bool      `json:"monitor_enabled"`
	AdaptiveSync    bool      `json:"adaptive_sync"`
	LastCommand     string    `json:"last_command,omitempty"`

	LastError string        `json:"-"`
	Options   LayoutOptions `json:"-"`

	dragging int
}

func NewLayoutState() *LayoutState {
	return &LayoutState{
		SelectedMonitor: NoSelection,
		SelectedMode:    NoSelection,
		MonitorEnabled:  true,
		Options:         DefaultLayoutOptions(),
		dragging:        NoSelection,
	}
}

func (s *LayoutState) validMonitor(idx int) bool {
	return idx >= 0 && idx < len(s.Monitors)
}

// SelectMonitor selects the monitor at idx. A mode selection that is out of
// range for the new monitor is dropped.
func (s *LayoutState) SelectMonitor(idx int) bool {
	if !s.validMonitor(idx) {
		return false
	}
	s.SelectedMonitor = idx
	if s.SelectedMode >= len(s.Monitors[idx].Modes) {
		s.SelectedMode = NoSelection
	}
	return true
}

func (s *LayoutState) SelectMode(idx int) bool {
	mon, ok := s.SelectedMonitorInfo()
	if !ok || idx < 0 || idx >= len(mon.Modes) {
		return false
	}
	s.SelectedMode = idx
	return true
}

func (s *LayoutState) ClearSelection() {
	s.SelectedMonitor = NoSelection
	s.SelectedMode = NoSelection
}

func (s *LayoutState) SelectedMonitorInfo() (*Monitor, bool) {
	if !s.validMonitor(s.SelectedMonitor) {
		return nil, false
	}
	return &s.Monitors[s.SelectedMonitor], true
}

func (s *LayoutState) SelectedModeInfo() (Mode, bool) {
	mon, ok := s.SelectedMonitorInfo()
	if !ok || s.SelectedMode < 0 || s.SelectedMode >= len(mon.Modes) {
		return Mode{}, false
	}
	return mon.Modes[s.SelectedMode], true
}

func (s *LayoutState) MonitorByName(name string) (int, bool) {
	for i := range s.Monitors {
		if s.Monitors[i].Name == name {
			return i, true
		}
	}
	return NoSelection, false
}

// revalidate drops indices that no longer point into the current snapshot.
func (s *LayoutState) revalidate() {
	if !s.validMonitor(s.SelectedMonitor) {
		s.ClearSelection()
	} else if _, ok := s.SelectedModeInfo(); !ok {
		s.SelectedMode = NoSelection
	}
	if !s.validMonitor(s.dragging) {
		s.dragging = NoSelection
	}
}
