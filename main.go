// SPDX-FileCopyrightText: 2024 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"os"

	"github.com/linuxdeepin/go-lib/log"
	"github.com/linuxdeepin/waydisplay/config"
	"github.com/linuxdeepin/waydisplay/display"
	"github.com/linuxdeepin/waydisplay/display/xorg"
	"github.com/spf13/cobra"
)

var logger = log.NewLogger("waydisplay")

var (
	debug      bool
	configFile string
)

func doSetLogLevel(level log.Priority) {
	logger.SetLogLevel(level)
	config.SetLogLevel(level)
	display.SetLogLevel(level)
	xorg.SetLogLevel(level)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "waydisplay",
		Short:         "Inspect and arrange display outputs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				doSetLogLevel(log.LevelDebug)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "debug")
	root.PersistentFlags().StringVar(&configFile, "config", config.Path(), "config file")

	root.AddCommand(newListCmd(), newMoveCmd(), newApplyCmd(), newDaemonCmd())
	return root
}

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		logger.Warning(err)
		os.Exit(1)
	}
}
