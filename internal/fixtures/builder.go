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

// Package fixtures drives the contract fixture build pipeline: discover
// versioned sources, reset the output tree, compile each version group
// with its own solc binary, restore the directory layout the compiler
// flattened away, and export a subset of sources to the downstream legacy
// test suite.
//
// The pipeline is strictly sequential and one-shot. Every failure is
// fatal: the run either completes all steps or stops at the first broken
// one, leaving the partially populated output tree to be rebuilt by the
// next run's reset.
package fixtures

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/solcbatch/internal/build"
	"github.com/ethereum/solcbatch/internal/contracts"
	"github.com/ethereum/solcbatch/internal/flatname"
	"github.com/ethereum/solcbatch/internal/solc"
	"github.com/gofrs/flock"
)

// Config are the settings of a fixture build run.
type Config struct {
	ContractsDir string   // root of the versioned contract sources
	OutputDir    string   // artifact output tree, reset on every run
	SolcPrefix   string   // compiler binary name prefix, e.g. "solc-"
	ProbeBudget  int      // directory probes allowed per flattened name
	Verify       bool     // parse every ABI artifact before accepting it
	AuxTarget    string   // downstream fixture directory receiving exported sources
	AuxVersions  []string // version directories exported to AuxTarget
}

// Defaults matches the conventional repository layout: sources under
// ./contracts, artifacts under ./build, one version exported to the
// legacy test suite next door.
var Defaults = Config{
	ContractsDir: "contracts",
	OutputDir:    "build",
	SolcPrefix:   solc.DefaultPrefix,
	ProbeBudget:  flatname.DefaultBudget,
	Verify:       true,
	AuxTarget:    filepath.Join("..", "legacy-tests", "testdata", "contracts"),
	AuxVersions:  []string{"v0.8.9"},
}

// Builder executes the fixture build pipeline for one configuration.
type Builder struct {
	// DryRun switches the pipeline into planning mode: every compiler
	// invocation and filesystem mutation is reported but none performed.
	DryRun bool

	cfg    Config
	runCmd func(*exec.Cmd) error // dispatches compiler processes
}

// NewBuilder wires a pipeline for the given configuration.
func NewBuilder(cfg *Config) (*Builder, error) {
	if cfg.ContractsDir == "" {
		return nil, errors.New("contracts directory must be set")
	}
	if cfg.OutputDir == "" {
		return nil, errors.New("output directory must be set")
	}
	if cfg.SolcPrefix == "" {
		return nil, errors.New("compiler name prefix must be set")
	}
	if cfg.ProbeBudget < 1 {
		return nil, fmt.Errorf("probe budget must be positive, have %d", cfg.ProbeBudget)
	}
	return &Builder{cfg: *cfg, runCmd: build.Run}, nil
}

// Run executes the full pipeline. It returns the first error encountered,
// with all earlier steps' effects left in place.
func (b *Builder) Run() error {
	start := time.Now()

	manifest, err := contracts.Discover(b.cfg.ContractsDir)
	if err != nil {
		return fmt.Errorf("discovering contracts under %s: %w", b.cfg.ContractsDir, err)
	}
	log.Info("Discovered contract sources", "versions", len(manifest.Groups),
		"sources", manifest.SourceCount(), "prebuilt", len(manifest.Prebuilt))

	if !b.DryRun {
		// Hold an exclusive lock next to the output tree so concurrent runs
		// cannot interleave their resets.
		lockPath := filepath.Clean(b.cfg.OutputDir) + ".lock"
		if err := os.MkdirAll(filepath.Dir(lockPath), 0755); err != nil {
			return fmt.Errorf("locking output tree: %w", err)
		}
		lock := flock.New(lockPath)
		locked, err := lock.TryLock()
		if err != nil {
			return fmt.Errorf("locking output tree: %w", err)
		}
		if !locked {
			return fmt.Errorf("output tree locked by a concurrent run: %s", lock.Path())
		}
		defer func() {
			if err := lock.Unlock(); err != nil {
				log.Error("Failed to release output lock", "path", lock.Path(), "err", err)
			}
		}()
	}
	if err := b.reset(); err != nil {
		return err
	}
	for _, group := range manifest.Groups {
		if err := b.compile(group); err != nil {
			return err
		}
	}
	renamed := 0
	for _, group := range manifest.Groups {
		n, err := b.rename(group)
		if err != nil {
			return err
		}
		renamed += n
	}
	if err := b.export(manifest); err != nil {
		return err
	}
	copied, err := b.copyPrebuilt(manifest)
	if err != nil {
		return err
	}
	log.Info("Fixture build done", "versions", len(manifest.Groups), "artifacts", renamed,
		"prebuilt", copied, "elapsed", common.PrettyDuration(time.Since(start)))
	return nil
}

// reset wipes the output tree. A missing directory counts as already done.
func (b *Builder) reset() error {
	if b.DryRun {
		log.Info("Would reset output directory", "dir", b.cfg.OutputDir)
		return nil
	}
	log.Info("Resetting output directory", "dir", b.cfg.OutputDir)
	if err := build.ResetDir(b.cfg.OutputDir); err != nil {
		return fmt.Errorf("resetting %s: %w", b.cfg.OutputDir, err)
	}
	return nil
}
