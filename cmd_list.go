// SPDX-FileCopyrightText: 2024 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/linuxdeepin/waydisplay/display"
	"github.com/spf13/cobra"
)

var (
	nameStyle     = lipgloss.NewStyle().Bold(true)
	dimStyle      = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Query the outputs and print them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp()
			err := a.state.Refresh(a.backend)
			if err != nil {
				printError(cmd.ErrOrStderr(), a.state.LastError)
				return err
			}
			printMonitors(cmd.OutOrStdout(), a.state)
			a.save()
			return nil
		},
	}
}

func printMonitors(w io.Writer, s *display.LayoutState) {
	for i := range s.Monitors {
		mon := &s.Monitors[i]
		state := "disabled"
		if mon.Enabled {
			state = "enabled"
		}
		header := fmt.Sprintf("[%d] %s", i, nameStyle.Render(mon.Name))
		if i == s.SelectedMonitor {
			header = selectedStyle.Render("*") + header
		}
		fmt.Fprintf(w, "%s %s %s\n", header, dimStyle.Render("("+mon.Model+")"), state)
		fmt.Fprintf(w, "    position %d,%d  visual %.1f,%.1f\n",
			mon.Physical.X, mon.Physical.Y, mon.Visual.X, mon.Visual.Y)

		for j, mode := range mon.Modes {
			var flags []string
			if mode.Current {
				flags = append(flags, "current")
			}
			if mode.Preferred {
				flags = append(flags, "preferred")
			}
			line := fmt.Sprintf("    %2d  %s", j, mode)
			if len(flags) > 0 {
				line += " " + dimStyle.Render(strings.Join(flags, ", "))
			}
			if i == s.SelectedMonitor && j == s.SelectedMode {
				line = selectedStyle.Render(line)
			}
			fmt.Fprintln(w, line)
		}
	}
}

func printError(w io.Writer, msg string) {
	if msg == "" {
		return
	}
	fmt.Fprintln(w, errorStyle.Render(msg))
}
