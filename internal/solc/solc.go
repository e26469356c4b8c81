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

// Package solc resolves versioned Solidity compiler binaries and builds
// their command lines.
//
// One binary per version directory is expected on PATH, named by gluing
// the version onto a common prefix: the sources under contracts/v0.8.9
// are compiled by solc-v0.8.9.
package solc

import (
	"fmt"
	"os/exec"
)

// DefaultPrefix is the conventional binary name prefix for versioned
// compiler installs.
const DefaultPrefix = "solc-"

// Compiler is one versioned solc binary resolved from PATH.
type Compiler struct {
	Version string // version directory name the binary serves, e.g. "v0.8.9"
	Path    string // resolved binary path
}

// Lookup resolves the compiler binary serving the given version directory.
func Lookup(prefix, version string) (*Compiler, error) {
	name := prefix + version
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("compiler %s not found in PATH: %w", name, err)
	}
	return &Compiler{Version: version, Path: path}, nil
}

// Command builds the invocation compiling the given sources, emitting ABI
// and bytecode artifacts into outDir.
func (c *Compiler) Command(outDir string, sources ...string) *exec.Cmd {
	args := []string{"--abi", "--bin", "--overwrite", "-o", outDir}
	args = append(args, sources...)
	return exec.Command(c.Path, args...)
}
