// SPDX-FileCopyrightText: 2024 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package display

import (
	"github.com/godbus/dbus/v5"
	"github.com/linuxdeepin/go-lib/dbusutil"
)

func (m *Manager) GetInterfaceName() string {
	return dbusInterface
}

func (m *Manager) Refresh() *dbus.Error {
	err := m.refresh()
	return dbusutil.ToError(err)
}

func (m *Manager) ListMonitors() (string, *dbus.Error) {
	monitors, err := m.listMonitors()
	return monitors, dbusutil.ToError(err)
}

func (m *Manager) SelectMonitor(idx int32) *dbus.Error {
	err := m.selectMonitor(int(idx))
	return dbusutil.ToError(err)
}

func (m *Manager) SelectMode(idx int32) *dbus.Error {
	err := m.selectMode(int(idx))
	return dbusutil.ToError(err)
}

func (m *Manager) SetMonitorEnabled(enabled bool) *dbus.Error {
	m.update(func(s *LayoutState) {
		s.MonitorEnabled = enabled
	})
	return nil
}

func (m *Manager) SetAdaptiveSync(enabled bool) *dbus.Error {
	m.update(func(s *LayoutState) {
		s.AdaptiveSync = enabled
	})
	return nil
}

func (m *Manager) BeginDrag(idx int32) *dbus.Error {
	m.update(func(s *LayoutState) {
		s.BeginDrag(int(idx))
	})
	return nil
}

func (m *Manager) DragMonitor(idx int32, dx, dy float64) *dbus.Error {
	m.update(func(s *LayoutState) {
		s.DragBy(int(idx), Point{X: dx, Y: dy})
	})
	return nil
}

func (m *Manager) EndDrag() *dbus.Error {
	m.update(func(s *LayoutState) {
		s.EndDrag()
	})
	return nil
}

func (m *Manager) GetPhysicalPosition(idx int32) (x, y int32, busErr *dbus.Error) {
	pos, err := m.physicalPosition(int(idx))
	if err != nil {
		return 0, 0, dbusutil.ToError(err)
	}
	return int32(pos.X), int32(pos.Y), nil
}

func (m *Manager) Apply() (string, *dbus.Error) {
	cmd, err := m.apply()
	return cmd, dbusutil.ToError(err)
}

func (m *Manager) Save() *dbus.Error {
	err := m.save()
	return dbusutil.ToError(err)
}
