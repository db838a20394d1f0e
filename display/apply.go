// SPDX-FileCopyrightText: 2024 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package display

// Apply runs cmd and records the outcome. The rendered command is kept in
// LastCommand whatever happens. Monitors are not queried again afterwards.
func (s *LayoutState) Apply(r Runner, cmd *Command) error {
	s.LastCommand = cmd.String()

	result := r.Run(cmd.Program, cmd.Args...)
	var err error
	switch {
	case !result.Spawned():
		err = &ExecError{Program: cmd.Program, Err: result.SpawnErr}
	case !result.Succeeded():
		err = &ApplyError{
			Program:  cmd.Program,
			ExitCode: result.ExitCode,
			Stderr:   string(result.Stderr),
		}
	}

	if err != nil {
		logger.Warningf("apply %q failed: %v", s.LastCommand, err)
		s.LastError = err.Error()
		return err
	}

	logger.Infof("applied: %s", s.LastCommand)
	s.LastError = ""
	return nil
}

// ApplySelection builds and runs the command for the current selection. It
// does nothing and returns a nil command when the selection is incomplete.
func (s *LayoutState) ApplySelection(b Backend, r Runner) (*Command, error) {
	cmd, ok := s.BuildApplyCommand(b)
	if !ok {
		logger.Debug("apply skipped: no monitor or mode selected")
		return nil, nil
	}
	return cmd, s.Apply(r, cmd)
}
