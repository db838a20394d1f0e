// SPDX-FileCopyrightText: 2024 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/linuxdeepin/go-lib/dbusutil"
	"github.com/linuxdeepin/waydisplay/config"
	"github.com/linuxdeepin/waydisplay/display"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

func newDaemonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "daemon",
		Short: "Export the layout service on the session bus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDaemon()
		},
	}
}

func runDaemon() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := newApp()
	service, err := dbusutil.NewSessionService()
	if err != nil {
		return xerrors.Errorf("failed to connect session bus: %w", err)
	}

	m, err := display.Start(service, display.Options{
		Backend:   a.backend,
		Runner:    a.runner,
		StateFile: a.stateFile,
		Layout:    a.state.Options,
	})
	if err != nil {
		return xerrors.Errorf("failed to start display service: %w", err)
	}
	defer m.Shutdown()

	w, err := config.Watch(configFile, func(cfg *config.Config) {
		m.SetOptions(layoutOptions(cfg))
	})
	if err != nil {
		logger.Warning("config changes will not be picked up:", err)
	} else {
		defer w.Close()
	}

	logger.Info("daemon started")
	<-ctx.Done()
	logger.Info("shutting down daemon")
	return nil
}
