// SPDX-FileCopyrightText: 2024 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package display

// Refresh replaces the monitor list with a new snapshot from b. On failure
// the previous monitors are kept and LastError describes the problem.
func (s *LayoutState) Refresh(b Backend) error {
	monitors, err := b.Query()
	if err != nil {
		logger.Warning("failed to query monitors:", err)
		s.LastError = err.Error()
		return err
	}

	for i := range monitors {
		monitors[i].Visual = toVisual(monitors[i].Physical)
	}
	s.Monitors = monitors
	s.LastError = ""
	s.revalidate()

	logger.Debugf("refresh via %s: %d monitors", b.Name(), len(monitors))
	return nil
}
