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

package contracts

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// populate writes empty files at the given slash-relative paths under root,
// creating directories as needed.
func populate(t *testing.T, root string, files []string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("// "+f), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	populate(t, root, []string{
		"v0.8.9/Token.sol",
		"v0.8.9/utils/Math.sol",
		"v0.8.9/abi/External.json",
		"v0.7.6/Old.sol",
		"legacy/Old.json",
		"notes.txt",
		"v1.2/Skipped.sol", // not a full version triplet
	})
	// A top-level *file* with a version-shaped name must not form a group.
	if err := os.WriteFile(filepath.Join(root, "v9.9.9"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	wantGroups := []Group{
		{Version: "v0.7.6", Sources: []string{"v0.7.6/Old.sol"}},
		{Version: "v0.8.9", Sources: []string{"v0.8.9/Token.sol", "v0.8.9/utils/Math.sol"}},
	}
	if !reflect.DeepEqual(m.Groups, wantGroups) {
		t.Errorf("groups mismatch:\ngot  %+v\nwant %+v", m.Groups, wantGroups)
	}
	wantPrebuilt := []string{"legacy/Old.json", "v0.8.9/abi/External.json"}
	if !reflect.DeepEqual(m.Prebuilt, wantPrebuilt) {
		t.Errorf("prebuilt mismatch: got %v, want %v", m.Prebuilt, wantPrebuilt)
	}
	if n := m.SourceCount(); n != 3 {
		t.Errorf("SourceCount() = %d, want 3", n)
	}
	if !m.HasVersion("v0.8.9") {
		t.Error("HasVersion(v0.8.9) = false, want true")
	}
	if m.HasVersion("v9.9.9") {
		t.Error("HasVersion(v9.9.9) = true for a non-directory entry")
	}
}

func TestDiscoverEmptyRoot(t *testing.T) {
	m, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover on empty root failed: %v", err)
	}
	if len(m.Groups) != 0 || len(m.Prebuilt) != 0 {
		t.Errorf("empty root produced groups %v, prebuilt %v", m.Groups, m.Prebuilt)
	}
}

func TestDiscoverMissingRoot(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing contracts root")
	}
}

func TestDiscoverOrderStable(t *testing.T) {
	root := t.TempDir()
	files := []string{
		"v0.8.9/b/B.sol",
		"v0.8.9/a/A.sol",
		"v0.8.9/Z.sol",
	}
	populate(t, root, files)

	first, err := Discover(root)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Discover(root)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("two scans of the same tree disagree")
	}
	want := []string{"v0.8.9/Z.sol", "v0.8.9/a/A.sol", "v0.8.9/b/B.sol"}
	if !reflect.DeepEqual(first.Groups[0].Sources, want) {
		t.Errorf("source order: got %v, want %v", first.Groups[0].Sources, want)
	}
}
