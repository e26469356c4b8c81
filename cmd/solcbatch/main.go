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

// solcbatch compiles a tree of versioned Solidity fixture contracts with
// per-version solc binaries and restores the directory layout the
// compiler flattens away.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/solcbatch/internal/debug"
	"github.com/ethereum/solcbatch/internal/fixtures"
	"github.com/ethereum/solcbatch/internal/flags"
	"github.com/urfave/cli/v2"
)

const clientIdentifier = "solcbatch"

var (
	contractsFlag = &flags.DirectoryFlag{
		Name:     "contracts",
		Usage:    "Root directory of the versioned contract sources",
		Value:    flags.DirectoryString(fixtures.Defaults.ContractsDir),
		Category: flags.PathsCategory,
	}
	outputFlag = &flags.DirectoryFlag{
		Name:     "output",
		Usage:    "Artifact output directory, reset on every run",
		Value:    flags.DirectoryString(fixtures.Defaults.OutputDir),
		Category: flags.PathsCategory,
	}
	solcPrefixFlag = &cli.StringFlag{
		Name:     "solc.prefix",
		Usage:    "Name prefix of the versioned compiler binaries (<prefix><version dir>)",
		Value:    fixtures.Defaults.SolcPrefix,
		Category: flags.CompilerCategory,
	}
	probeBudgetFlag = &cli.IntFlag{
		Name:     "probe.budget",
		Usage:    "Directory probes allowed while recovering one flattened artifact name",
		Value:    fixtures.Defaults.ProbeBudget,
		Category: flags.ArtifactCategory,
	}
	verifyFlag = &cli.BoolFlag{
		Name:     "verify",
		Usage:    "Parse every ABI artifact and reject broken ones",
		Value:    fixtures.Defaults.Verify,
		Category: flags.ArtifactCategory,
	}
	auxTargetFlag = &flags.DirectoryFlag{
		Name:     "aux.target",
		Usage:    "Downstream fixture directory receiving exported contract sources",
		Value:    flags.DirectoryString(fixtures.Defaults.AuxTarget),
		Category: flags.ExportCategory,
	}
	auxVersionsFlag = &cli.StringFlag{
		Name:     "aux.versions",
		Usage:    "Comma separated version directories to export (empty disables the export)",
		Value:    strings.Join(fixtures.Defaults.AuxVersions, ","),
		Category: flags.ExportCategory,
	}
	dryRunFlag = &cli.BoolFlag{
		Name:     "dry-run",
		Aliases:  []string{"n"},
		Usage:    "Print the compiler invocations and planned file operations without executing them",
		Category: flags.MiscCategory,
	}
)

// pipelineFlags configure the build pipeline itself and are shared with
// the dumpconfig command.
var pipelineFlags = []cli.Flag{
	contractsFlag,
	outputFlag,
	solcPrefixFlag,
	probeBudgetFlag,
	verifyFlag,
	auxTargetFlag,
	auxVersionsFlag,
}

var app = flags.NewApp("versioned Solidity fixture compiler")

func init() {
	app.Action = solcbatch
	app.Commands = []*cli.Command{
		inspectCommand,
		dumpConfigCommand,
		versionCommand,
		licenseCommand,
	}
	app.Flags = flags.Merge(
		[]cli.Flag{configFileFlag},
		pipelineFlags,
		[]cli.Flag{dryRunFlag},
		debug.Flags,
	)
	app.Before = func(ctx *cli.Context) error {
		return debug.Setup(ctx)
	}
	app.After = func(ctx *cli.Context) error {
		debug.Exit()
		return nil
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// solcbatch is the main entry point when no subcommand is given: it runs
// the full fixture build pipeline.
func solcbatch(ctx *cli.Context) error {
	if args := ctx.Args().Slice(); len(args) > 0 {
		return fmt.Errorf("invalid command: %s", args[0])
	}
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	builder, err := fixtures.NewBuilder(&cfg.Fixtures)
	if err != nil {
		return err
	}
	builder.DryRun = ctx.Bool(dryRunFlag.Name)
	return builder.Run()
}
