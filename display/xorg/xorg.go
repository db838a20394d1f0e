// SPDX-FileCopyrightText: 2024 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package xorg reads the output layout of an X server through RandR and
// reconfigures it with xrandr.
package xorg

import (
	"fmt"

	x "github.com/linuxdeepin/go-x11-client"
	"github.com/linuxdeepin/go-x11-client/ext/randr"
	"github.com/linuxdeepin/go-lib/log"
	"github.com/linuxdeepin/waydisplay/display"
	"golang.org/x/xerrors"
)

var logger = log.NewLogger("waydisplay/xorg")

const xrandrProgram = "xrandr"

type Backend struct {
	Program string
}

func NewBackend() *Backend {
	return &Backend{Program: xrandrProgram}
}

func (b *Backend) Name() string {
	return "xorg"
}

func (b *Backend) Query() ([]display.Monitor, error) {
	conn, err := x.NewConn()
	if err != nil {
		return nil, &display.ExecError{Program: "X connection", Err: err}
	}
	defer conn.Close()

	monitors, err := queryMonitors(conn)
	if err != nil {
		return nil, &display.ParseError{Err: err}
	}
	return monitors, nil
}

func queryMonitors(conn *x.Conn) ([]display.Monitor, error) {
	root := conn.GetDefaultScreen().Root
	resources, err := randr.GetScreenResources(conn, root).Reply(conn)
	if err != nil {
		return nil, xerrors.Errorf("failed to get screen resources: %w", err)
	}
	cfgTs := resources.ConfigTimestamp

	modeInfos := make(map[uint32]randr.ModeInfo, len(resources.Modes))
	for _, mi := range resources.Modes {
		modeInfos[uint32(mi.Id)] = mi
	}

	var monitors []display.Monitor
	for _, output := range resources.Outputs {
		outputInfo, err := randr.GetOutputInfo(conn, output, cfgTs).Reply(conn)
		if err != nil {
			return nil, xerrors.Errorf("failed to get output %d info: %w", output, err)
		}
		if outputInfo.Connection != randr.ConnectionConnected {
			continue
		}

		var crtc *crtcGeometry
		if outputInfo.Crtc != 0 {
			crtcInfo, err := randr.GetCrtcInfo(conn, outputInfo.Crtc, cfgTs).Reply(conn)
			if err != nil {
				return nil, xerrors.Errorf("failed to get crtc %d info: %w", outputInfo.Crtc, err)
			}
			crtc = &crtcGeometry{
				x:    int(crtcInfo.X),
				y:    int(crtcInfo.Y),
				mode: uint32(crtcInfo.Mode),
			}
		}

		modeIds := make([]uint32, 0, len(outputInfo.Modes))
		for _, id := range outputInfo.Modes {
			modeIds = append(modeIds, uint32(id))
		}
		monitors = append(monitors, newMonitor(outputInfo.Name, modeIds,
			int(outputInfo.NumPreferred), crtc, modeInfos))
	}
	logger.Debugf("found %d connected outputs", len(monitors))
	return monitors, nil
}

type crtcGeometry struct {
	x, y int
	mode uint32
}

func newMonitor(name string, modeIds []uint32, numPreferred int, crtc *crtcGeometry,
	modeInfos map[uint32]randr.ModeInfo) display.Monitor {
	mon := display.Monitor{
		Name:    name,
		Enabled: crtc != nil && crtc.mode != 0,
		Scale:   1,
	}
	if crtc != nil {
		mon.Physical = display.Position{X: crtc.x, Y: crtc.y}
	}

	for i, id := range modeIds {
		info, ok := modeInfos[id]
		if !ok {
			continue
		}
		mon.Modes = append(mon.Modes, display.Mode{
			Width:     int(info.Width),
			Height:    int(info.Height),
			Refresh:   calcModeRate(info),
			Preferred: i < numPreferred,
			Current:   crtc != nil && crtc.mode == id,
		})
	}
	return mon
}

func calcModeRate(info randr.ModeInfo) float64 {
	vTotal := float64(info.VTotal)
	if (info.ModeFlags & randr.ModeFlagDoubleScan) != 0 {
		vTotal *= 2
	}
	if (info.ModeFlags & randr.ModeFlagInterlace) != 0 {
		// the field rate is what monitors report
		vTotal /= 2
	}

	if info.HTotal == 0 || vTotal == 0 {
		return 0
	}
	return float64(info.DotClock) / (float64(info.HTotal) * vTotal)
}

// CommandFor builds an xrandr invocation. xrandr has no switch for adaptive
// sync, so that request is dropped.
func (b *Backend) CommandFor(req display.ApplyRequest) *display.Command {
	args := []string{"--output", req.Monitor.Name}
	if !req.Enabled {
		args = append(args, "--off")
		return &display.Command{Program: b.Program, Args: args}
	}

	if req.AdaptiveSync {
		logger.Debug("adaptive sync is not supported by xrandr, ignore it for", req.Monitor.Name)
	}
	args = append(args,
		"--mode", fmt.Sprintf("%dx%d", req.Mode.Width, req.Mode.Height),
		"--rate", fmt.Sprintf("%.2f", req.Mode.Refresh),
		"--pos", fmt.Sprintf("%dx%d", req.Position.X, req.Position.Y),
	)
	return &display.Command{Program: b.Program, Args: args}
}

func SetLogLevel(level log.Priority) {
	logger.SetLogLevel(level)
}
