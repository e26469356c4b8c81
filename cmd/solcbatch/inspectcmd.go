// Copyright 2025 The go-ethereum Authors
// This file is part of solcbatch.
//
// solcbatch is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// solcbatch is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with solcbatch. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"fmt"

	"github.com/ethereum/solcbatch/internal/contracts"
	"github.com/ethereum/solcbatch/internal/flags"
	"github.com/ethereum/solcbatch/internal/solc"
	"github.com/urfave/cli/v2"
)

var inspectCommand = &cli.Command{
	Action:    inspect,
	Name:      "inspect",
	Usage:     "Report the discovered contract tree without building",
	ArgsUsage: " ",
	Flags:     flags.Merge([]cli.Flag{configFileFlag}, pipelineFlags),
	Description: `
Scans the contracts root and reports the version groups, their sources,
the prebuilt interface descriptions and whether the required compiler
binaries are resolvable. No file is written.`,
}

func inspect(ctx *cli.Context) error {
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	manifest, err := contracts.Discover(cfg.Fixtures.ContractsDir)
	if err != nil {
		return err
	}
	fmt.Println("Contracts root:", manifest.Root)
	for _, group := range manifest.Groups {
		binary := cfg.Fixtures.SolcPrefix + group.Version
		status := "missing"
		if compiler, err := solc.Lookup(cfg.Fixtures.SolcPrefix, group.Version); err == nil {
			status = compiler.Path
		}
		fmt.Printf("%s: %d sources (compiler %s: %s)\n", group.Version, len(group.Sources), binary, status)
		for _, src := range group.Sources {
			fmt.Println("  ", src)
		}
	}
	if len(manifest.Prebuilt) > 0 {
		fmt.Println("Prebuilt interfaces:")
		for _, rel := range manifest.Prebuilt {
			fmt.Println("  ", rel)
		}
	}
	return nil
}
