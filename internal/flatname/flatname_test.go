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

package flatname

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// proberFor builds a DirProber from a fixed set of directory paths.
func proberFor(dirs ...string) DirProber {
	set := make(map[string]bool, len(dirs))
	for _, d := range dirs {
		set[d] = true
	}
	return func(rel string) bool { return set[rel] }
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"Token.sol", "Token_sol"},
		{"utils/Math.sol", "utils_Math_sol"},
		{"my_lib/Deep.sol", "my_lib_Deep_sol"},
		{"a/b/c/d/File.sol", "a_b_c_d_File_sol"},
		{"contracts/v0.8.9", "contracts_v0.8.9"},
	}
	for _, test := range tests {
		if got := Flatten(test.path); got != test.want {
			t.Errorf("Flatten(%q) = %q, want %q", test.path, got, test.want)
		}
	}
}

func TestPrefix(t *testing.T) {
	if got, want := Prefix("contracts", "v0.8.9"), "contracts_v0.8.9_"; got != want {
		t.Errorf("Prefix = %q, want %q", got, want)
	}
	if got, want := Prefix("src/sol", "v0.7.6"), "src_sol_v0.7.6_"; got != want {
		t.Errorf("Prefix = %q, want %q", got, want)
	}
}

func TestParse(t *testing.T) {
	parser := &Parser{
		Prefix: "contracts_v0.8.9_",
		Budget: DefaultBudget,
		IsDir:  proberFor("utils", "my_lib", "a", "a/b", "a/b/c", "a/b/c/d"),
	}
	tests := []struct {
		name string
		want Artifact
	}{
		{
			name: "contracts_v0.8.9_Token_sol_Token.abi",
			want: Artifact{Dir: "", Unit: "Token", Name: "Token", Ext: "abi"},
		},
		{
			name: "contracts_v0.8.9_Token_sol_Token.bin",
			want: Artifact{Dir: "", Unit: "Token", Name: "Token", Ext: "bin"},
		},
		{
			name: "contracts_v0.8.9_utils_Math_sol_MathLib.abi",
			want: Artifact{Dir: "utils", Unit: "Math", Name: "MathLib", Ext: "abi"},
		},
		{
			name: "contracts_v0.8.9_my_lib_Deep_sol_Deep.abi",
			want: Artifact{Dir: "my_lib", Unit: "Deep", Name: "Deep", Ext: "abi"},
		},
		{
			name: "contracts_v0.8.9_a_b_c_d_File_sol_Export.bin",
			want: Artifact{Dir: "a/b/c/d", Unit: "File", Name: "Export", Ext: "bin"},
		},
	}
	for _, test := range tests {
		got, err := parser.Parse(test.name)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", test.name, err)
			continue
		}
		if *got != test.want {
			t.Errorf("Parse(%q) = %+v, want %+v", test.name, *got, test.want)
		}
		if want := test.want.Name + "." + test.want.Ext; filepath.Base(filepath.FromSlash(got.TargetPath())) != want {
			t.Errorf("TargetPath(%q) base = %q, want %q", test.name, got.TargetPath(), want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	parser := &Parser{
		Prefix: "contracts_v0.8.9_",
		Budget: DefaultBudget,
		IsDir:  proberFor("utils"),
	}
	tests := []struct {
		name    string
		wantErr error
	}{
		{"build_v0.8.9_Token_sol_Token.abi", ErrPrefix},
		{"contracts_v0.8.9_Token.abi", ErrMarker},
		{"contracts_v0.8.9_a_sol_b_sol_C.abi", ErrMarker},
		{"contracts_v0.8.9_Token_sol_Token", ErrSuffix},
		{"contracts_v0.8.9_Token_sol_.abi", ErrSuffix},
	}
	for _, test := range tests {
		_, err := parser.Parse(test.name)
		if !errors.Is(err, test.wantErr) {
			t.Errorf("Parse(%q) error = %v, want %v", test.name, err, test.wantErr)
		}
	}
}

func TestRecover(t *testing.T) {
	isDir := proberFor("utils", "utils/fixed", "my_lib")
	tests := []struct {
		fragment string
		wantDir  string
		wantFile string
	}{
		{"Token", "", "Token"},
		{"utils_Math", "utils", "Math"},
		{"utils_fixed_Point", "utils/fixed", "Point"},
		{"my_lib_Deep", "my_lib", "Deep"},
		{"my_lib_two_part", "my_lib", "two_part"},
	}
	for _, test := range tests {
		dir, file, err := Recover(test.fragment, DefaultBudget, isDir)
		if err != nil {
			t.Errorf("Recover(%q) failed: %v", test.fragment, err)
			continue
		}
		if dir != test.wantDir || file != test.wantFile {
			t.Errorf("Recover(%q) = (%q, %q), want (%q, %q)",
				test.fragment, dir, file, test.wantDir, test.wantFile)
		}
	}
}

func TestRecoverBudget(t *testing.T) {
	isDir := proberFor("a", "a/b", "a/b/c", "a/b/c/d", "a/b/c/d/e")

	// Five directory levels need six probes, one over the default budget.
	_, _, err := Recover("a_b_c_d_e_File", DefaultBudget, isDir)
	var budgetErr *BudgetError
	if !errors.As(err, &budgetErr) {
		t.Fatalf("Recover error = %v, want *BudgetError", err)
	}
	if budgetErr.Budget != DefaultBudget || budgetErr.Fragment != "a_b_c_d_e_File" {
		t.Errorf("BudgetError = %+v, want budget %d and the full fragment", budgetErr, DefaultBudget)
	}
	// A raised budget makes the same fragment recoverable.
	dir, file, err := Recover("a_b_c_d_e_File", 6, isDir)
	if err != nil {
		t.Fatalf("Recover with raised budget failed: %v", err)
	}
	if dir != "a/b/c/d/e" || file != "File" {
		t.Errorf("Recover = (%q, %q), want (a/b/c/d/e, File)", dir, file)
	}
}

func TestRecoverNoFile(t *testing.T) {
	// Every token closes a directory, so no filename segment remains.
	_, _, err := Recover("a_b", DefaultBudget, proberFor("a", "a/b"))
	if !errors.Is(err, ErrNoFile) {
		t.Errorf("Recover error = %v, want %v", err, ErrNoFile)
	}
}

func TestDirOnDisk(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "my_lib", "fixed"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "Token.sol"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	isDir := DirOnDisk(root)
	dir, file, err := Recover("my_lib_fixed_Point", DefaultBudget, isDir)
	if err != nil {
		t.Fatalf("Recover against disk failed: %v", err)
	}
	if dir != "my_lib/fixed" || file != "Point" {
		t.Errorf("Recover = (%q, %q), want (my_lib/fixed, Point)", dir, file)
	}
	// Regular files must not register as directories.
	if isDir("Token.sol") {
		t.Error("DirOnDisk reported a regular file as a directory")
	}
}

// cleanSegment filters fuzz inputs down to path segments the flattening
// scheme can represent without ambiguity.
func cleanSegment(s string) bool {
	if s == "" || len(s) > 64 {
		return false
	}
	return !strings.ContainsAny(s, "_/.\x00")
}

func FuzzRecoverRoundTrip(f *testing.F) {
	f.Add("utils", "math", "fixed", "Point")
	f.Add("my", "lib", "deep", "Token")
	f.Add("a", "b", "c", "D")
	f.Fuzz(func(t *testing.T, a, b, c, file string) {
		if !cleanSegment(a) || !cleanSegment(b) || !cleanSegment(c) || !cleanSegment(file) {
			return
		}
		isDir := proberFor(a, a+"/"+b, a+"/"+b+"/"+c)
		fragment := strings.Join([]string{a, b, c, file}, "_")
		dir, got, err := Recover(fragment, DefaultBudget, isDir)
		if err != nil {
			t.Fatalf("Recover(%q) failed: %v", fragment, err)
		}
		if want := a + "/" + b + "/" + c; dir != want {
			t.Errorf("Recover(%q) dir = %q, want %q", fragment, dir, want)
		}
		if got != file {
			t.Errorf("Recover(%q) file = %q, want %q", fragment, got, file)
		}
	})
}
