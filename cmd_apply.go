// SPDX-FileCopyrightText: 2024 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

type applyFlags struct {
	output       string
	mode         int
	off          bool
	adaptiveSync bool
	dryRun       bool
}

func newApplyCmd() *cobra.Command {
	var f applyFlags
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply mode and position of one output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, &f)
		},
	}
	cmd.Flags().StringVar(&f.output, "output", "", "output name")
	cmd.Flags().IntVar(&f.mode, "mode", -1, "mode index, the current mode when omitted")
	cmd.Flags().BoolVar(&f.off, "off", false, "disable the output")
	cmd.Flags().BoolVar(&f.adaptiveSync, "adaptive-sync", false, "enable adaptive sync")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "print the command without running it")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func runApply(cmd *cobra.Command, f *applyFlags) error {
	a := newApp()
	defer a.save()

	s := a.state
	if len(s.Monitors) == 0 {
		err := s.Refresh(a.backend)
		if err != nil {
			printError(cmd.ErrOrStderr(), s.LastError)
			return err
		}
	}

	idx, ok := s.MonitorByName(f.output)
	if !ok {
		return xerrors.Errorf("unknown output %q", f.output)
	}
	s.SelectMonitor(idx)

	mode := f.mode
	if mode < 0 {
		mode = s.Monitors[idx].CurrentMode()
	}
	if mode < 0 {
		mode = 0
	}
	if !s.SelectMode(mode) {
		return xerrors.Errorf("invalid mode %d for %s", mode, f.output)
	}
	s.MonitorEnabled = !f.off
	s.AdaptiveSync = f.adaptiveSync

	command, ok := s.BuildApplyCommand(a.backend)
	if !ok {
		return xerrors.New("nothing selected")
	}
	if f.dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), command)
		return nil
	}

	err := s.Apply(a.runner, command)
	fmt.Fprintln(cmd.OutOrStdout(), s.LastCommand)
	if err != nil {
		printError(cmd.ErrOrStderr(), s.LastError)
	}
	return err
}
