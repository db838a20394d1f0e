// SPDX-FileCopyrightText: 2024 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package display

import (
	"fmt"
	"strings"
)

// ExecError reports that the external tool could not be started.
type ExecError struct {
	Program string
	Err     error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("failed to execute %s: %v", e.Program, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// ParseError reports that the tool ran but its output was not usable.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ApplyError reports a non-zero exit of the apply command. Stderr is kept
// as written by the tool; only the final newline is dropped from the message.
type ApplyError struct {
	Program  string
	ExitCode int
	Stderr   string
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("%s error: %s", e.Program, strings.TrimSuffix(e.Stderr, "\n"))
}
