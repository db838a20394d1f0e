// SPDX-FileCopyrightText: 2024 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"os"
	"os/exec"

	"github.com/linuxdeepin/waydisplay/config"
	"github.com/linuxdeepin/waydisplay/display"
	"github.com/linuxdeepin/waydisplay/display/xorg"
)

// app carries what every subcommand needs: the config, the chosen backend
// and the saved layout.
type app struct {
	cfg       *config.Config
	backend   display.Backend
	runner    display.Runner
	stateFile string
	state     *display.LayoutState
}

func newApp() *app {
	cfg := config.LoadOrDefault(configFile)
	runner := display.ExecRunner{}

	stateFile := cfg.StateFile
	if stateFile == "" {
		stateFile = display.DefaultStateFile()
	}

	a := &app{
		cfg:       cfg,
		backend:   selectBackend(cfg, runner),
		runner:    runner,
		stateFile: stateFile,
	}
	a.state = display.LoadStateOrDefault(stateFile)
	a.state.Options = layoutOptions(cfg)
	return a
}

func (a *app) save() {
	err := display.SaveState(a.stateFile, a.state)
	if err != nil {
		logger.Warning("failed to save state:", err)
	}
}

func layoutOptions(cfg *config.Config) display.LayoutOptions {
	return display.LayoutOptions{
		CanvasWidth:  cfg.CanvasWidth,
		CanvasHeight: cfg.CanvasHeight,
		SnapDistance: cfg.SnapDistance,
	}
}

func selectBackend(cfg *config.Config, runner display.Runner) display.Backend {
	switch cfg.Backend {
	case config.BackendWlr:
		return display.NewWlrBackend(cfg.Tool, runner)
	case config.BackendXorg:
		return xorg.NewBackend()
	}

	if os.Getenv("WAYLAND_DISPLAY") != "" {
		if _, err := exec.LookPath(cfg.Tool); err == nil {
			return display.NewWlrBackend(cfg.Tool, runner)
		}
		logger.Warningf("%s not found in PATH", cfg.Tool)
	}
	if os.Getenv("DISPLAY") != "" {
		logger.Debug("use xorg backend")
		return xorg.NewBackend()
	}
	return display.NewWlrBackend(cfg.Tool, runner)
}
