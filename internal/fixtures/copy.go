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
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/solcbatch/internal/build"
	"github.com/ethereum/solcbatch/internal/contracts"
)

// export copies the configured subset of version source directories into
// the downstream fixture directory, replacing earlier exports wholesale.
// A configured version missing from the source tree is fatal.
func (b *Builder) export(m *contracts.Manifest) error {
	for _, version := range b.cfg.AuxVersions {
		if !m.HasVersion(version) {
			return fmt.Errorf("export version %s not present under %s", version, b.cfg.ContractsDir)
		}
		src := filepath.Join(b.cfg.ContractsDir, version)
		dst := filepath.Join(b.cfg.AuxTarget, version)
		if b.DryRun {
			log.Info("Would export fixture sources", "version", version, "target", dst)
			continue
		}
		log.Info("Exporting fixture sources", "version", version, "target", dst)
		if err := build.CopyTree(dst, src); err != nil {
			return fmt.Errorf("exporting %s: %w", version, err)
		}
	}
	return nil
}

// copyPrebuilt copies every prebuilt interface description into the output
// tree at its original relative path with the extension rewritten to .abi,
// content byte for byte identical. It returns the number of files copied.
func (b *Builder) copyPrebuilt(m *contracts.Manifest) (int, error) {
	copied := 0
	for _, rel := range m.Prebuilt {
		src := filepath.Join(b.cfg.ContractsDir, filepath.FromSlash(rel))
		target := strings.TrimSuffix(rel, ".json") + ".abi"
		dst := filepath.Join(b.cfg.OutputDir, filepath.FromSlash(target))
		if b.DryRun {
			log.Info("Would copy prebuilt interface", "source", src, "target", dst)
			continue
		}
		if b.cfg.Verify {
			if err := verifyABI(src); err != nil {
				return copied, err
			}
		}
		if err := build.CopyFile(dst, src, 0644); err != nil {
			return copied, fmt.Errorf("copying prebuilt %s: %w", rel, err)
		}
		copied++
	}
	if copied > 0 {
		log.Info("Copied prebuilt interfaces", "count", copied)
	}
	return copied, nil
}
