// SPDX-FileCopyrightText: 2024 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package display

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/linuxdeepin/go-lib/strv"
	"golang.org/x/xerrors"
)

const DefaultWlrTool = "wlr-randr"

// Backend enumerates the outputs of a display server and knows the command
// line that reconfigures one of them.
type Backend interface {
	Name() string
	Query() ([]Monitor, error)
	CommandFor(req ApplyRequest) *Command
}

// WlrBackend drives wlroots compositors through wlr-randr.
type WlrBackend struct {
	Program string
	Runner  Runner
}

func NewWlrBackend(program string, runner Runner) *WlrBackend {
	if program == "" {
		program = DefaultWlrTool
	}
	if runner == nil {
		runner = ExecRunner{}
	}
	return &WlrBackend{Program: program, Runner: runner}
}

func (b *WlrBackend) Name() string {
	return "wlr"
}

// Query lists outputs with "--json". The exit status is not checked: the
// listing is accepted whenever stdout parses.
func (b *WlrBackend) Query() ([]Monitor, error) {
	result := b.Runner.Run(b.Program, "--json")
	if !result.Spawned() {
		return nil, &ExecError{Program: b.Program, Err: result.SpawnErr}
	}
	if result.ExitCode != 0 {
		logger.Warningf("%s exited with %d: %s", b.Program, result.ExitCode, result.Stderr)
	}

	monitors, err := ParseMonitors(result.Stdout)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return monitors, nil
}

func (b *WlrBackend) CommandFor(req ApplyRequest) *Command {
	args := []string{"--output", req.Monitor.Name}
	if !req.Enabled {
		args = append(args, "--off")
		return &Command{Program: b.Program, Args: args}
	}

	args = append(args,
		"--custom-mode", formatWlrMode(req.Mode),
		"--pos", fmt.Sprintf("%d,%d", req.Position.X, req.Position.Y),
		"--adaptive-sync", adaptiveSyncToken(req.AdaptiveSync),
	)
	return &Command{Program: b.Program, Args: args}
}

func formatWlrMode(m Mode) string {
	return fmt.Sprintf("%dx%d@%s", m.Width, m.Height, formatRefresh(m.Refresh))
}

func formatRefresh(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func adaptiveSyncToken(on bool) string {
	if on {
		return "enabled"
	}
	return "disabled"
}

type wlrPosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type wlrOutput struct {
	Name         string       `json:"name"`
	Model        string       `json:"model"`
	Enabled      bool         `json:"enabled"`
	Modes        []Mode       `json:"modes"`
	X            int          `json:"x"`
	Y            int          `json:"y"`
	Position     *wlrPosition `json:"position"`
	AdaptiveSync bool         `json:"adaptive_sync"`
	Scale        float64      `json:"scale"`
}

// ParseMonitors decodes the machine readable listing of wlr-randr. Invalid
// UTF-8 is replaced before decoding.
func ParseMonitors(data []byte) ([]Monitor, error) {
	text := strings.ToValidUTF8(string(data), "\uFFFD")

	var outputs []wlrOutput
	err := json.Unmarshal([]byte(text), &outputs)
	if err != nil {
		return nil, err
	}
	if outputs == nil {
		return nil, xerrors.New("expected a JSON array of outputs")
	}

	var names strv.Strv
	monitors := make([]Monitor, 0, len(outputs))
	for _, o := range outputs {
		if o.Name == "" {
			return nil, xerrors.New("output without name")
		}
		if names.Contains(o.Name) {
			return nil, xerrors.Errorf("duplicate output %q", o.Name)
		}
		names = append(names, o.Name)
		for _, m := range o.Modes {
			if m.Width <= 0 || m.Height <= 0 || !(m.Refresh > 0) {
				return nil, xerrors.Errorf("output %s: invalid mode %dx%d@%v",
					o.Name, m.Width, m.Height, m.Refresh)
			}
		}

		physical := Position{X: o.X, Y: o.Y}
		if o.Position != nil {
			physical = Position{X: o.Position.X, Y: o.Position.Y}
		}
		monitors = append(monitors, Monitor{
			Name:         o.Name,
			Model:        o.Model,
			Enabled:      o.Enabled,
			Modes:        o.Modes,
			Physical:     physical,
			AdaptiveSync: o.AdaptiveSync,
			Scale:        o.Scale,
		})
	}
	return monitors, nil
}
