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

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/solcbatch/internal/contracts"
	"github.com/ethereum/solcbatch/internal/flatname"
)

// rename moves every flattened artifact in the group's output directory
// into its recovered source layout under a clean <Contract>.<ext> name.
// It returns the number of artifacts moved.
//
// The flattened-name recovery probes the group's real source directory.
// Two names recovering to the same destination mean the heuristic could
// not tell them apart, which aborts the run rather than overwriting.
func (b *Builder) rename(group contracts.Group) (int, error) {
	if len(group.Sources) == 0 {
		return 0, nil
	}
	if b.DryRun {
		log.Info("Would restore artifact layout", "version", group.Version)
		return 0, nil
	}
	var (
		outDir = filepath.Join(b.cfg.OutputDir, group.Version)
		srcDir = filepath.Join(b.cfg.ContractsDir, group.Version)
		parser = &flatname.Parser{
			Prefix: flatname.Prefix(b.cfg.ContractsDir, group.Version),
			Budget: b.cfg.ProbeBudget,
			IsDir:  flatname.DirOnDisk(srcDir),
		}
		seen = mapset.NewThreadUnsafeSet[string]()
	)
	entries, err := os.ReadDir(outDir)
	if err != nil {
		return 0, err
	}
	moved := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		art, err := parser.Parse(entry.Name())
		if err != nil {
			return moved, err
		}
		target := art.TargetPath()
		if !seen.Add(target) {
			return moved, fmt.Errorf("flattened name %q collides with an earlier artifact on %s",
				entry.Name(), target)
		}
		dest := filepath.Join(outDir, filepath.FromSlash(target))
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return moved, err
		}
		if err := os.Rename(filepath.Join(outDir, entry.Name()), dest); err != nil {
			return moved, err
		}
		if b.cfg.Verify && art.Ext == "abi" {
			if err := verifyABI(dest); err != nil {
				return moved, err
			}
		}
		moved++
	}
	log.Info("Restored artifact layout", "version", group.Version, "artifacts", moved)
	return moved, nil
}

// verifyABI parses the JSON interface description at path, rejecting
// artifacts that downstream consumers could not load. Bytecode artifacts
// are exempt since unlinked library placeholders are not valid hex.
func verifyABI(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := abi.JSON(f); err != nil {
		return fmt.Errorf("invalid ABI artifact %s: %w", path, err)
	}
	return nil
}
