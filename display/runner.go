// SPDX-FileCopyrightText: 2024 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package display

import (
	"bytes"
	"os/exec"

	"golang.org/x/xerrors"
)

// RunResult is the outcome of one process invocation: it either could not
// be spawned (SpawnErr != nil), or it ran and exited with ExitCode.
type RunResult struct {
	Stdout   []byte
	Stderr   []byte
	SpawnErr error
	ExitCode int
}

func (r RunResult) Spawned() bool {
	return r.SpawnErr == nil
}

func (r RunResult) Succeeded() bool {
	return r.SpawnErr == nil && r.ExitCode == 0
}

// Runner runs a program synchronously and captures its output.
type Runner interface {
	Run(program string, args ...string) RunResult
}

type ExecRunner struct{}

func (ExecRunner) Run(program string, args ...string) RunResult {
	cmd := exec.Command(program, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	result := RunResult{
		Stdout: outBuf.Bytes(),
		Stderr: errBuf.Bytes(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if xerrors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.SpawnErr = err
		}
	}
	logger.Debugf("$ %s %v: exit %d, spawn err %v", program, args, result.ExitCode, result.SpawnErr)
	return result
}
