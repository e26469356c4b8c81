// Copyright 2025 The go-ethereum Authors
// This file is part of the solcbatch library.
//
// The solcbatch library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The solcbatch library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the solcbatch library. If not, see <http://www.gnu.org/licenses/>.

// Package build contains the helpers shared by the solcbatch pipeline steps:
// running external commands and shuffling files around.
package build

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Run executes the given command, echoing it to stdout first. The child's
// stdout is discarded and its stderr is forwarded to the host process.
func Run(cmd *exec.Cmd) error {
	fmt.Println(">>>", CommandString(cmd))
	cmd.Stdout = io.Discard
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", CommandString(cmd), err)
	}
	return nil
}

// RunCommand executes the named program with the given arguments.
func RunCommand(name string, args ...string) error {
	return Run(exec.Command(name, args...))
}

// CommandString formats the command line of cmd into a single string.
func CommandString(cmd *exec.Cmd) string {
	var s strings.Builder
	for i, arg := range cmd.Args {
		if i > 0 {
			s.WriteByte(' ')
		}
		if strings.IndexByte(arg, ' ') >= 0 {
			arg = strconv.QuoteToASCII(arg)
		}
		s.WriteString(arg)
	}
	return s.String()
}
