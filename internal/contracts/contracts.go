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

// Package contracts discovers compiler input underneath a versioned
// contracts tree.
//
// The expected layout is a root directory holding one subdirectory per
// compiler version (v0.8.9, v0.7.6, ...), each with arbitrarily nested
// Solidity sources. Prebuilt interface descriptions (*.json) may live
// anywhere under the root and are picked up separately.
package contracts

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// versionDirPattern matches directory names declaring a compiler version,
// e.g. "v0.8.9".
var versionDirPattern = regexp.MustCompile(`^v\d+\.\d+\.\d+$`)

// Group is the set of sources belonging to one compiler version. The
// sources are compiled together in a single compiler invocation.
type Group struct {
	Version string   // version directory name, e.g. "v0.8.9"
	Sources []string // slash-separated paths relative to the contracts root
}

// Manifest holds everything discovery found under a contracts root.
type Manifest struct {
	Root     string   // the scanned contracts root
	Groups   []Group  // version groups in lexicographic version order
	Prebuilt []string // prebuilt interface descriptions, relative to Root
}

// SourceCount returns the total number of sources across all groups.
func (m *Manifest) SourceCount() int {
	n := 0
	for _, g := range m.Groups {
		n += len(g.Sources)
	}
	return n
}

// HasVersion reports whether the manifest contains a group for version.
func (m *Manifest) HasVersion(version string) bool {
	for _, g := range m.Groups {
		if g.Version == version {
			return true
		}
	}
	return false
}

// Discover scans root for version-named subdirectories and collects the
// Solidity sources below each of them, plus any prebuilt interface
// descriptions anywhere under root. Top-level entries that are not
// version-named directories are ignored for grouping. Zero version
// directories is not an error.
//
// All returned paths are slash separated and relative to root, ordered
// lexicographically, so a manifest is deterministic for a given tree.
func Discover(root string) (*Manifest, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	m := &Manifest{Root: root}
	for _, entry := range entries {
		if !entry.IsDir() || !versionDirPattern.MatchString(entry.Name()) {
			continue
		}
		group := Group{Version: entry.Name()}
		err := filepath.WalkDir(filepath.Join(root, entry.Name()), func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(d.Name(), ".sol") {
				return nil
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			group.Sources = append(group.Sources, filepath.ToSlash(rel))
			return nil
		})
		if err != nil {
			return nil, err
		}
		m.Groups = append(m.Groups, group)
	}
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		m.Prebuilt = append(m.Prebuilt, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}
