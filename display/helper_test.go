// SPDX-FileCopyrightText: 2024 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package display

import (
	"io/ioutil"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeRunner answers "--json" with query and everything else with apply.
type fakeRunner struct {
	query RunResult
	apply RunResult
	calls [][]string
}

func (r *fakeRunner) Run(program string, args ...string) RunResult {
	r.calls = append(r.calls, append([]string{program}, args...))
	if len(args) == 1 && args[0] == "--json" {
		return r.query
	}
	return r.apply
}

func readTestdata(t *testing.T, name string) []byte {
	data, err := ioutil.ReadFile("./testdata/" + name)
	require.NoError(t, err)
	return data
}

func newTestState(visual ...Point) *LayoutState {
	s := NewLayoutState()
	for i, v := range visual {
		s.Monitors = append(s.Monitors, Monitor{
			Name:   string(rune('A' + i)),
			Modes:  []Mode{{Width: 1920, Height: 1080, Refresh: 60}},
			Visual: v,
		})
	}
	return s
}
