// SPDX-FileCopyrightText: 2024 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	. "gopkg.in/check.v1"
)

func Test(t *testing.T) { TestingT(t) }

type configSuite struct {
	dir string
}

var _ = Suite(&configSuite{})

func (s *configSuite) SetUpTest(c *C) {
	s.dir = c.MkDir()
}

func (s *configSuite) write(c *C, name, content string) string {
	filename := filepath.Join(s.dir, name)
	err := ioutil.WriteFile(filename, []byte(content), 0644)
	c.Assert(err, IsNil)
	return filename
}

func (s *configSuite) TestLoad(c *C) {
	filename := s.write(c, "config.yaml", `
backend: wlr
tool: /usr/local/bin/wlr-randr
canvas_width: 640
snap_distance: 4
`)
	cfg, err := Load(filename)
	c.Assert(err, IsNil)
	c.Check(cfg.Backend, Equals, BackendWlr)
	c.Check(cfg.Tool, Equals, "/usr/local/bin/wlr-randr")
	c.Check(cfg.CanvasWidth, Equals, 640.0)
	c.Check(cfg.CanvasHeight, Equals, float64(defaultCanvasHeight))
	c.Check(cfg.SnapDistance, Equals, 4.0)
	c.Check(cfg.StateFile, Equals, "")
}

func (s *configSuite) TestLoadCorrect(c *C) {
	filename := s.write(c, "config.yaml", `
backend: weston
tool: ""
canvas_width: -1
canvas_height: 0
snap_distance: -3
`)
	cfg, err := Load(filename)
	c.Assert(err, IsNil)
	c.Check(cfg, DeepEquals, Default())
}

func (s *configSuite) TestLoadWrongYaml(c *C) {
	filename := s.write(c, "config.yaml", "backend: [wlr\n")
	_, err := Load(filename)
	c.Check(err, NotNil)

	cfg := LoadOrDefault(filename)
	c.Check(cfg, DeepEquals, Default())
}

func (s *configSuite) TestWatch(c *C) {
	filename := filepath.Join(s.dir, "sub", "config.yaml")
	changed := make(chan *Config, 16)
	w, err := Watch(filename, func(cfg *Config) {
		select {
		case changed <- cfg:
		default:
		}
	})
	c.Assert(err, IsNil)
	defer w.Close()

	// unrelated files in the same directory are ignored
	err = ioutil.WriteFile(filepath.Join(s.dir, "sub", "other.yaml"), []byte("x: 1\n"), 0644)
	c.Assert(err, IsNil)
	err = ioutil.WriteFile(filename, []byte("snap_distance: 25\n"), 0644)
	c.Assert(err, IsNil)

	// the create event may be seen before the content is written
	timeout := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-changed:
			if cfg.SnapDistance == 25 {
				return
			}
		case <-timeout:
			c.Fatal("no change notification")
		}
	}
}
