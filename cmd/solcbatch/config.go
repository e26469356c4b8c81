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
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"unicode"

	"github.com/ethereum/solcbatch/internal/fixtures"
	"github.com/ethereum/solcbatch/internal/flags"
	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"
)

var (
	configFileFlag = &cli.StringFlag{
		Name:     "config",
		Usage:    "TOML configuration file",
		Category: flags.MiscCategory,
	}
	dumpConfigCommand = &cli.Command{
		Action:      dumpConfig,
		Name:        "dumpconfig",
		Usage:       "Export configuration values in a TOML format",
		ArgsUsage:   "[<dumpfile (optional)>]",
		Flags:       flags.Merge([]cli.Flag{configFileFlag}, pipelineFlags),
		Description: `Export configuration values in TOML format (to stdout by default).`,
	}
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		var link string
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://godoc.org/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

type solcbatchConfig struct {
	Fixtures fixtures.Config
}

func loadConfig(file string, cfg *solcbatchConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// loadBaseConfig assembles the effective configuration: compiled-in
// defaults, overlaid by the optional config file, overlaid by the
// command line.
func loadBaseConfig(ctx *cli.Context) (solcbatchConfig, error) {
	cfg := solcbatchConfig{Fixtures: fixtures.Defaults}

	// Load config file.
	if file := ctx.String(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return cfg, err
		}
	}
	// Apply flags.
	applyFlags(ctx, &cfg.Fixtures)
	return cfg, nil
}

// applyFlags overlays the command line settings onto the configuration.
func applyFlags(ctx *cli.Context, cfg *fixtures.Config) {
	if ctx.IsSet(contractsFlag.Name) {
		cfg.ContractsDir = ctx.String(contractsFlag.Name)
	}
	if ctx.IsSet(outputFlag.Name) {
		cfg.OutputDir = ctx.String(outputFlag.Name)
	}
	if ctx.IsSet(solcPrefixFlag.Name) {
		cfg.SolcPrefix = ctx.String(solcPrefixFlag.Name)
	}
	if ctx.IsSet(probeBudgetFlag.Name) {
		cfg.ProbeBudget = ctx.Int(probeBudgetFlag.Name)
	}
	if ctx.IsSet(verifyFlag.Name) {
		cfg.Verify = ctx.Bool(verifyFlag.Name)
	}
	if ctx.IsSet(auxTargetFlag.Name) {
		cfg.AuxTarget = ctx.String(auxTargetFlag.Name)
	}
	if ctx.IsSet(auxVersionsFlag.Name) {
		cfg.AuxVersions = splitAndTrim(ctx.String(auxVersionsFlag.Name))
	}
}

// splitAndTrim splits input separated by a comma and trims excessive white
// space from the substrings.
func splitAndTrim(input string) (ret []string) {
	l := strings.Split(input, ",")
	for _, r := range l {
		if r = strings.TrimSpace(r); r != "" {
			ret = append(ret, r)
		}
	}
	return ret
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}
	dump := os.Stdout
	if ctx.NArg() > 0 {
		dump, err = os.Create(ctx.Args().Get(0))
		if err != nil {
			return err
		}
		defer dump.Close()
	}
	dump.Write(out)

	return nil
}
