package repositories

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSystemRepository_ListDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.png", "A.jpg", "notes.txt", ".hidden.jpg"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	for _, name := range []string{"zeta", "Alpha", ".git"} {
		if err := os.Mkdir(filepath.Join(dir, name), 0755); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := NewFileSystemRepository().ListDirectory(dir)
	if err != nil {
		t.Fatalf("ListDirectory() error = %v", err)
	}

	want := []struct {
		name    string
		isDir   bool
		isImage bool
	}{
		{"Alpha", true, false},
		{"zeta", true, false},
		{"A.jpg", false, true},
		{"b.png", false, true},
		{"notes.txt", false, false},
	}

	if len(entries) != len(want) {
		t.Fatalf("Expected %d entries, got %d: %+v", len(want), len(entries), entries)
	}
	for i, w := range want {
		e := entries[i]
		if e.Name != w.name || e.IsDir != w.isDir || e.IsImage != w.isImage {
			t.Errorf("entry %d = %+v, want %+v", i, e, w)
		}
		if e.Path != filepath.Join(dir, w.name) {
			t.Errorf("entry %d path = %q", i, e.Path)
		}
	}
}

func TestFileSystemRepository_Files(t *testing.T) {
	repo := NewFileSystemRepository()
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.jpg")
	if err := os.WriteFile(path, []byte("12345"), 0644); err != nil {
		t.Fatal(err)
	}

	if !repo.FileExists(path) {
		t.Error("FileExists() = false for existing file")
	}
	if repo.FileExists(dir) {
		t.Error("FileExists() = true for directory")
	}
	if repo.FileExists(filepath.Join(dir, "missing.jpg")) {
		t.Error("FileExists() = true for missing file")
	}

	info, err := repo.GetFileInfo(path)
	if err != nil {
		t.Fatalf("GetFileInfo() error = %v", err)
	}
	if info.Size != 5 || info.Format != "jpeg" {
		t.Errorf("Unexpected info %+v", info)
	}

	nested := filepath.Join(dir, "out", "nested")
	if err := repo.CreateDirectory(nested); err != nil {
		t.Fatalf("CreateDirectory() error = %v", err)
	}
	if _, err := os.Stat(nested); err != nil {
		t.Errorf("Directory was not created: %v", err)
	}
}
