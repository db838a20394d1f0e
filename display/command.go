// SPDX-FileCopyrightText: 2024 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package display

import (
	"strings"
)

// Command is a program with discrete arguments. It is never passed through
// a shell.
type Command struct {
	Program string
	Args    []string
}

// String renders the command for display and copying.
func (c *Command) String() string {
	return strings.Join(append([]string{c.Program}, c.Args...), " ")
}

type ApplyRequest struct {
	Monitor      *Monitor
	Mode         Mode
	Enabled      bool
	AdaptiveSync bool
	Position     Position
}

// BuildApplyCommand synthesizes the command for the selected monitor and
// mode. It returns false when either selection is missing or stale.
func (s *LayoutState) BuildApplyCommand(b Backend) (*Command, bool) {
	mon, ok := s.SelectedMonitorInfo()
	if !ok {
		return nil, false
	}
	mode, ok := s.SelectedModeInfo()
	if !ok {
		return nil, false
	}

	req := ApplyRequest{
		Monitor:      mon,
		Mode:         mode,
		Enabled:      s.MonitorEnabled,
		AdaptiveSync: s.AdaptiveSync,
		Position:     s.physicalPosition(s.SelectedMonitor, mode.Width),
	}
	return b.CommandFor(req), true
}
