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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethereum/solcbatch/internal/fixtures"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.toml")
	content := `[Fixtures]
ContractsDir = "src/contracts"
ProbeBudget = 7
AuxVersions = ["v0.8.9", "v0.7.6"]
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))

	cfg := solcbatchConfig{Fixtures: fixtures.Defaults}
	require.NoError(t, loadConfig(file, &cfg))
	require.Equal(t, "src/contracts", cfg.Fixtures.ContractsDir)
	require.Equal(t, 7, cfg.Fixtures.ProbeBudget)
	require.Equal(t, []string{"v0.8.9", "v0.7.6"}, cfg.Fixtures.AuxVersions)
	// Keys absent from the file keep their defaults.
	require.Equal(t, fixtures.Defaults.OutputDir, cfg.Fixtures.OutputDir)
	require.Equal(t, fixtures.Defaults.Verify, cfg.Fixtures.Verify)
}

func TestLoadConfigUnknownField(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.toml")
	content := `[Fixtures]
OutputDirectory = "build"
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))

	cfg := solcbatchConfig{Fixtures: fixtures.Defaults}
	err := loadConfig(file, &cfg)
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "OutputDirectory"),
		"error %q does not name the unknown field", err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg := solcbatchConfig{Fixtures: fixtures.Defaults}
	require.Error(t, loadConfig(filepath.Join(t.TempDir(), "nope.toml"), &cfg))
}

func TestConfigDumpRoundTrip(t *testing.T) {
	cfg := solcbatchConfig{Fixtures: fixtures.Defaults}
	out, err := tomlSettings.Marshal(&cfg)
	require.NoError(t, err)

	var back solcbatchConfig
	require.NoError(t, tomlSettings.NewDecoder(bytes.NewReader(out)).Decode(&back))
	require.Equal(t, cfg, back)
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"v0.8.9", []string{"v0.8.9"}},
		{"v0.8.9, v0.7.6", []string{"v0.8.9", "v0.7.6"}},
		{" v1.0.0 ,, ", []string{"v1.0.0"}},
		{"", nil},
	}
	for _, test := range tests {
		require.Equal(t, test.want, splitAndTrim(test.input), "input %q", test.input)
	}
}
