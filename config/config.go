// SPDX-FileCopyrightText: 2024 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/linuxdeepin/go-lib/log"
	"github.com/linuxdeepin/go-lib/xdg/basedir"
	"gopkg.in/yaml.v3"
)

var logger = log.NewLogger("waydisplay/config")

const (
	sysConfigFile = "/usr/share/waydisplay/config.yaml"

	BackendAuto = "auto"
	BackendWlr  = "wlr"
	BackendXorg = "xorg"

	defaultTool         = "wlr-randr"
	defaultCanvasWidth  = 400
	defaultCanvasHeight = 200
	defaultSnapDistance = 10
)

type Config struct {
	Backend      string  `yaml:"backend"`
	Tool         string  `yaml:"tool"`
	CanvasWidth  float64 `yaml:"canvas_width"`
	CanvasHeight float64 `yaml:"canvas_height"`
	SnapDistance float64 `yaml:"snap_distance"`
	StateFile    string  `yaml:"state_file"`
}

func Default() *Config {
	return &Config{
		Backend:      BackendAuto,
		Tool:         defaultTool,
		CanvasWidth:  defaultCanvasWidth,
		CanvasHeight: defaultCanvasHeight,
		SnapDistance: defaultSnapDistance,
	}
}

// Path is ~/.config/deepin/waydisplay/config.yaml
func Path() string {
	return filepath.Join(basedir.GetUserConfigDir(), "deepin", "waydisplay", "config.yaml")
}

// Load reads filename, or the system wide file when filename can not be
// read. Keys missing from the file keep their defaults.
func Load(filename string) (*Config, error) {
	content, err := ioutil.ReadFile(filename)
	if err != nil {
		content, err = ioutil.ReadFile(sysConfigFile)
		if err != nil {
			return nil, err
		}
	}

	cfg := Default()
	err = yaml.Unmarshal(content, cfg)
	if err != nil {
		return nil, err
	}
	cfg.correct()
	return cfg, nil
}

// LoadOrDefault never fails, errors other than a missing file are logged.
func LoadOrDefault(filename string) *Config {
	cfg, err := Load(filename)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warning("failed to load config:", err)
		}
		return Default()
	}
	logger.Debugf("load config: %#v", cfg)
	return cfg
}

func (c *Config) correct() {
	switch c.Backend {
	case BackendAuto, BackendWlr, BackendXorg:
	default:
		logger.Warningf("unknown backend %q, use %q", c.Backend, BackendAuto)
		c.Backend = BackendAuto
	}
	if c.Tool == "" {
		c.Tool = defaultTool
	}
	if c.CanvasWidth <= 0 {
		c.CanvasWidth = defaultCanvasWidth
	}
	if c.CanvasHeight <= 0 {
		c.CanvasHeight = defaultCanvasHeight
	}
	if c.SnapDistance < 0 {
		c.SnapDistance = defaultSnapDistance
	}
}

func SetLogLevel(level log.Priority) {
	logger.SetLogLevel(level)
}
