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

package fixtures

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/solcbatch/internal/build"
	"github.com/ethereum/solcbatch/internal/contracts"
	"github.com/ethereum/solcbatch/internal/solc"
)

// compile runs the group's compiler over all of its sources in a single
// invocation, writing flattened artifacts into the version's output
// subdirectory. The compiler's stdout is suppressed and its stderr is
// forwarded; a non-zero exit aborts the run.
func (b *Builder) compile(group contracts.Group) error {
	if len(group.Sources) == 0 {
		log.Warn("Version directory holds no sources", "version", group.Version)
		return nil
	}
	compiler, err := solc.Lookup(b.cfg.SolcPrefix, group.Version)
	if err != nil {
		return err
	}
	outDir := filepath.Join(b.cfg.OutputDir, group.Version)
	sources := make([]string, 0, len(group.Sources))
	for _, src := range group.Sources {
		sources = append(sources, filepath.Join(b.cfg.ContractsDir, filepath.FromSlash(src)))
	}
	cmd := compiler.Command(outDir, sources...)
	if b.DryRun {
		fmt.Println(">>>", build.CommandString(cmd))
		return nil
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}
	log.Info("Compiling version group", "version", group.Version,
		"sources", len(group.Sources), "compiler", compiler.Path)
	return b.runCmd(cmd)
}
