// SPDX-FileCopyrightText: 2024 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"strconv"

	"github.com/linuxdeepin/waydisplay/display"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

func newMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move OUTPUT DX DY",
		Short: "Drag an output in the visual layout",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			dx, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return xerrors.Errorf("invalid dx: %w", err)
			}
			dy, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return xerrors.Errorf("invalid dy: %w", err)
			}
			return runMove(cmd, newApp(), args[0], display.Point{X: dx, Y: dy})
		},
	}
}

func runMove(cmd *cobra.Command, a *app, output string, delta display.Point) error {
	s := a.state
	if len(s.Monitors) == 0 {
		err := s.Refresh(a.backend)
		if err != nil {
			printError(cmd.ErrOrStderr(), s.LastError)
			return err
		}
	}
	idx, ok := s.MonitorByName(output)
	if !ok {
		return xerrors.Errorf("unknown output %q", output)
	}

	s.BeginDrag(idx)
	s.DragBy(idx, delta)
	s.EndDrag()

	mon := s.Monitors[idx]
	fmt.Fprintf(cmd.OutOrStdout(), "%s visual %.1f,%.1f\n", mon.Name, mon.Visual.X, mon.Visual.Y)
	a.save()
	return nil
}
