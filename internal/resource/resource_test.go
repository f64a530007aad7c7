// SPDX-License-Identifier: MPL-2.0

package resource

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestDir(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "META-INF", "resources"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "META-INF", "resources", "app.js"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	store := NewDir(root)

	if !store.Exists("META-INF/resources/app.js") {
		t.Error("Exists should find the file via a slash path")
	}
	if store.Exists("META-INF/resources") {
		t.Error("Exists must be false for directories")
	}
	if store.Exists("META-INF/resources/missing.js") {
		t.Error("Exists must be false for missing files")
	}

	data, err := ReadAll(store, "META-INF/resources/app.js")
	if err != nil || string(data) != "x" {
		t.Errorf("ReadAll = (%q, %v), want (x, nil)", data, err)
	}

	entries, err := store.ReadDir("META-INF/resources")
	if err != nil || len(entries) != 1 || entries[0].Name() != "app.js" {
		t.Errorf("ReadDir = (%v, %v)", entries, err)
	}

	if _, err := store.Open("nope"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open(nope) err = %v, want fs.ErrNotExist", err)
	}
}

func TestFS(t *testing.T) {
	t.Parallel()

	store := NewFS(fstest.MapFS{
		"a/b.txt": &fstest.MapFile{Data: []byte("b")},
	})

	if !store.Exists("a/b.txt") || store.Exists("a") || store.Exists("a/c.txt") {
		t.Error("Exists must hold for files only")
	}
	data, err := ReadAll(store, "a/b.txt")
	if err != nil || string(data) != "b" {
		t.Errorf("ReadAll = (%q, %v)", data, err)
	}
	if _, err := store.ReadDir("missing"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadDir(missing) err = %v, want fs.ErrNotExist", err)
	}
}

func TestChain_FirstHitWins(t *testing.T) {
	t.Parallel()

	first := NewFS(fstest.MapFS{
		"shared.txt": &fstest.MapFile{Data: []byte("first")},
		"only1.txt":  &fstest.MapFile{Data: []byte("1")},
	})
	second := NewFS(fstest.MapFS{
		"shared.txt": &fstest.MapFile{Data: []byte("second")},
		"only2.txt":  &fstest.MapFile{Data: []byte("2")},
	})
	chain := Chain{first, second}

	data, err := ReadAll(chain, "shared.txt")
	if err != nil || string(data) != "first" {
		t.Errorf("shared.txt = (%q, %v), want the first store's copy", data, err)
	}
	for _, name := range []string{"only1.txt", "only2.txt"} {
		if !chain.Exists(name) {
			t.Errorf("Exists(%s) = false, want true", name)
		}
	}
	if chain.Exists("neither.txt") {
		t.Error("Exists(neither.txt) = true")
	}
	if _, err := chain.Open("neither.txt"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open(neither.txt) err = %v, want fs.ErrNotExist", err)
	}
}

func TestChain_ReadDirConcatenates(t *testing.T) {
	t.Parallel()

	first := NewFS(fstest.MapFS{"lib/a.js": &fstest.MapFile{Data: []byte("a")}})
	second := NewFS(fstest.MapFS{"lib/b.js": &fstest.MapFile{Data: []byte("b")}})
	chain := Chain{first, second}

	entries, err := chain.ReadDir("lib")
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	if len(names) != 2 || names[0] != "a.js" || names[1] != "b.js" {
		t.Errorf("ReadDir names = %v, want [a.js b.js] in chain order", names)
	}

	if _, err := chain.ReadDir("absent"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadDir(absent) err = %v, want fs.ErrNotExist", err)
	}
}

func TestChain_Empty(t *testing.T) {
	t.Parallel()

	var chain Chain
	if chain.Exists("anything") {
		t.Error("empty chain must not report resources")
	}
	if _, err := chain.Open("anything"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open err = %v, want fs.ErrNotExist", err)
	}
}
