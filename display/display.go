// SPDX-FileCopyrightText: 2024 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package display

import (
	"github.com/linuxdeepin/go-lib/dbusutil"
	"github.com/linuxdeepin/go-lib/log"
)

var logger = log.NewLogger("waydisplay/display")

const (
	dbusServiceName = "org.deepin.dde.WayDisplay1"
	dbusInterface   = dbusServiceName
	dbusPath        = "/org/deepin/dde/WayDisplay1"
)

type Options struct {
	Backend   Backend
	Runner    Runner
	StateFile string
	Layout    LayoutOptions
}

// Start loads the saved layout, queries the monitors once and exports the
// manager on the session bus.
func Start(service *dbusutil.Service, opts Options) (*Manager, error) {
	m := newManager(service, opts)
	m.init()
	err := service.Export(dbusPath, m)
	if err != nil {
		return nil, err
	}

	err = service.RequestName(dbusServiceName)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func SetLogLevel(level log.Priority) {
	logger.SetLogLevel(level)
}
