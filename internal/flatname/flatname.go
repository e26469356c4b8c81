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

// Package flatname parses the flattened artifact names emitted by the
// Solidity compiler back into directory structure.
//
// When solc is handed a nested source path, it joins the path segments
// and the ".sol" extension into the artifact filename with underscores:
//
//	contracts/v0.8.9/utils/Math.sol  declaring contract MathLib
//	  -> contracts_v0.8.9_utils_Math_sol_MathLib.abi
//
// The encoding is lossy because underscores are legal in both directory
// and contract names. Recovery therefore consults the original source
// tree: a token run naming an existing directory is committed as one,
// and whatever text remains once the tokens run out is the source unit.
// Names needing more directory probes than the budget allows are
// rejected as unsupported input rather than guessed at.
package flatname

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/ethereum/solcbatch/internal/build"
)

// DefaultBudget is the probe allowance for segment recovery. It supports
// four directory levels below the version root for underscore-free names.
const DefaultBudget = 5

var (
	// ErrPrefix is returned when a flattened name does not start with the
	// version group's expected prefix.
	ErrPrefix = errors.New("flattened name lacks the version prefix")

	// ErrMarker is returned when a flattened name does not contain the
	// "_sol_" source marker exactly once.
	ErrMarker = errors.New("flattened name needs exactly one _sol_ marker")

	// ErrSuffix is returned when the trailing fragment carries no contract
	// name or artifact extension.
	ErrSuffix = errors.New("flattened name lacks a contract name and extension")

	// ErrNoFile is returned when every fragment token closed a directory,
	// leaving no filename segment behind.
	ErrNoFile = errors.New("flattened fragment recovered no filename segment")
)

// BudgetError is returned when segment recovery runs out of directory
// probes before reaching the filename segment. Paths nested deeper than
// the budget are unsupported input.
type BudgetError struct {
	Fragment string
	Budget   int
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("unsupported flattened fragment %q: path deeper than the probe budget of %d", e.Fragment, e.Budget)
}

// DirProber reports whether a slash-separated path, relative to the source
// root the artifacts were compiled from, exists as a directory.
type DirProber func(rel string) bool

// DirOnDisk returns a DirProber backed by the real filesystem, resolving
// paths against root.
func DirOnDisk(root string) DirProber {
	return func(rel string) bool {
		return build.DirExist(filepath.Join(root, filepath.FromSlash(rel)))
	}
}

// Flatten rewrites a slash-separated path the way the compiler embeds it
// into artifact names: separators become underscores and a trailing ".sol"
// extension becomes "_sol".
func Flatten(p string) string {
	if strings.HasSuffix(p, ".sol") {
		p = strings.TrimSuffix(p, ".sol") + "_sol"
	}
	return strings.ReplaceAll(p, "/", "_")
}

// Prefix returns the literal prefix of every artifact name produced for a
// version group, e.g. "contracts_v0.8.9_". It mirrors how the sources were
// namespaced on the compiler command line, so contractsDir must be the
// same path the compiler was invoked with.
func Prefix(contractsDir, version string) string {
	return Flatten(path.Join(filepath.ToSlash(contractsDir), version)) + "_"
}

// Artifact is the decoded form of one flattened artifact name.
type Artifact struct {
	Dir  string // recovered source directory, "" when the unit sat at the version root
	Unit string // source unit base name, e.g. "Math"
	Name string // declared contract or interface name, e.g. "MathLib"
	Ext  string // artifact extension without the dot, e.g. "abi"
}

// TargetPath returns the clean artifact path, relative to the version's
// output directory, that the artifact should be moved to.
func (a *Artifact) TargetPath() string {
	return path.Join(a.Dir, a.Name+"."+a.Ext)
}

// Parser decodes the flattened artifact names of one version group.
type Parser struct {
	Prefix string    // literal name prefix, e.g. "contracts_v0.8.9_"
	Budget int       // maximum number of directory probes per name
	IsDir  DirProber // existence oracle for candidate directories
}

// Parse decodes one flattened artifact filename.
func (p *Parser) Parse(name string) (*Artifact, error) {
	rest, found := strings.CutPrefix(name, p.Prefix)
	if !found {
		return nil, fmt.Errorf("%w: %q does not start with %q", ErrPrefix, name, p.Prefix)
	}
	parts := strings.Split(rest, "_sol_")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: %q", ErrMarker, name)
	}
	contract, ext, found := strings.Cut(parts[1], ".")
	if !found || contract == "" || ext == "" {
		return nil, fmt.Errorf("%w: %q", ErrSuffix, name)
	}
	dir, unit, err := Recover(parts[0], p.Budget, p.IsDir)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", name, err)
	}
	return &Artifact{Dir: dir, Unit: unit, Name: contract, Ext: ext}, nil
}

// Recover reconstructs the original directory path and source unit name
// from a flattened source-path fragment.
//
// Tokens are consumed left to right, each costing one probe against the
// budget. A candidate segment grows until it names an existing directory,
// at which point it is committed and the next segment starts fresh. The
// text still pending when the tokens run out is the source unit name; if
// nothing is pending the name is malformed, and if tokens outlast the
// budget the path is deeper than recovery supports.
func Recover(fragment string, budget int, isDir DirProber) (dir, file string, err error) {
	var (
		pending string
		probes  int
	)
	for _, tok := range strings.Split(fragment, "_") {
		candidate := tok
		if pending != "" {
			candidate = pending + "_" + tok
		}
		probes++
		if probes > budget {
			return "", "", &BudgetError{Fragment: fragment, Budget: budget}
		}
		if isDir(path.Join(dir, candidate)) {
			dir = path.Join(dir, candidate)
			pending = ""
		} else {
			pending = candidate
		}
	}
	if pending == "" {
		return "", "", fmt.Errorf("%w: %q", ErrNoFile, fragment)
	}
	return dir, pending, nil
}
