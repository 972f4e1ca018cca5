package fileio

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/danmuck/nibblekit/internal/testutil/testlog"
	"github.com/spf13/afero"
)

func TestWriteReadExistsIsDir(t *testing.T) {
	testlog.Start(t)
	fs := NewFS(afero.NewMemMapFs())

	if err := fs.WriteFile("out/packed.bin", []byte{0xAB, 0x05}); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := fs.ReadFile("out/packed.bin")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != string([]byte{0xAB, 0x05}) {
		t.Fatalf("unexpected content: %x", got)
	}
	if !fs.Exists("out/packed.bin") || fs.IsDir("out/packed.bin") {
		t.Fatalf("expected regular file")
	}
	if !fs.Exists("out") || !fs.IsDir("out") {
		t.Fatalf("expected parent directory")
	}
}

func TestWriteTruncates(t *testing.T) {
	fs := NewFS(afero.NewMemMapFs())
	if err := fs.WriteFile("a.bin", []byte("longer content")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := fs.WriteFile("a.bin", []byte("x")); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	got, err := fs.ReadFile("a.bin")
	if err != nil || string(got) != "x" {
		t.Fatalf("expected truncated content, got %q err=%v", got, err)
	}
}

func TestMissingPaths(t *testing.T) {
	fs := NewFS(afero.NewMemMapFs())
	if fs.Exists("nope") || fs.IsDir("nope") {
		t.Fatalf("missing path reported present")
	}
	_, err := fs.ReadFile("nope")
	if !IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if _, err := fs.ReadFile("  "); !errors.Is(err, ErrEmptyPath) {
		t.Fatalf("expected ErrEmptyPath, got %v", err)
	}
	if fs.Exists("") {
		t.Fatalf("empty path reported present")
	}
}

func TestOSHelpers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "n.bin")
	if err := WriteFile(path, []byte{0x50}); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil || len(got) != 1 || got[0] != 0x50 {
		t.Fatalf("unexpected read: %x err=%v", got, err)
	}
	if !Exists(path) || IsDir(path) || !IsDir(dir) {
		t.Fatalf("unexpected path classification")
	}
}
