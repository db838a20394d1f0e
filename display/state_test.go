// SPDX-FileCopyrightText: 2024 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package display

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadState(t *testing.T) {
	s, _ := newParsedState(t)
	require.True(t, s.SelectMonitor(1))
	require.True(t, s.SelectMode(1))
	s.DragBy(1, Point{X: -3, Y: 12})
	s.AdaptiveSync = true
	s.MonitorEnabled = false
	s.LastCommand = "wlr-randr --output HDMI-A-1 --off"
	s.LastError = "wlr-randr error: boom"

	filename := filepath.Join(t.TempDir(), "deepin", "waydisplay", "state.json")
	require.NoError(t, SaveState(filename, s))

	data, err := ioutil.ReadFile(filename)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "boom")

	loaded, err := LoadState(filename)
	require.NoError(t, err)
	assert.Equal(t, s.Monitors, loaded.Monitors)
	assert.Equal(t, 1, loaded.SelectedMonitor)
	assert.Equal(t, 1, loaded.SelectedMode)
	assert.True(t, loaded.AdaptiveSync)
	assert.False(t, loaded.MonitorEnabled)
	assert.Equal(t, s.LastCommand, loaded.LastCommand)
	assert.Empty(t, loaded.LastError)
	assert.Equal(t, DefaultLayoutOptions(), loaded.Options)
}

func TestLoadState_defaults(t *testing.T) {
	s, err := LoadState("./testdata/state-partial.json")
	require.NoError(t, err)

	require.Len(t, s.Monitors, 1)
	assert.Equal(t, Point{X: -12.5, Y: 4}, s.Monitors[0].Visual)
	assert.True(t, s.MonitorEnabled)
	assert.True(t, s.AdaptiveSync)
	assert.Equal(t, 0, s.SelectedMonitor)
	// mode 3 does not exist on eDP-1
	assert.Equal(t, NoSelection, s.SelectedMode)
	assert.Empty(t, s.LastCommand)
}

func TestLoadState_errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadState(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, ioutil.WriteFile(broken, []byte(`{"monitors": [`), 0644))
	_, err = LoadState(broken)
	assert.Error(t, err)

	s := LoadStateOrDefault(broken)
	assert.Equal(t, NewLayoutState(), s)
}
