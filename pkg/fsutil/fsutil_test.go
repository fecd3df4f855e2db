package fsutil_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/styledid/pkg/fsutil"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "Button.js")
	writeFile(t, path, "const a = 1\n")

	content, info, err := fsutil.ReadFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(content) != "const a = 1\n" {
		t.Errorf("content = %q", content)
	}
	if info.Size != int64(len(content)) || info.Path != path || info.Sum == 0 {
		t.Errorf("unexpected info %+v", info)
	}
}

func TestReadFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx := context.Background()

	if _, _, err := fsutil.ReadFile(ctx, filepath.Join(dir, "missing.js")); !errors.Is(err, fsutil.ErrNotFound) {
		t.Errorf("missing file: got %v, want ErrNotFound", err)
	}
	if _, _, err := fsutil.ReadFile(ctx, dir); !errors.Is(err, fsutil.ErrIsDirectory) {
		t.Errorf("directory: got %v, want ErrIsDirectory", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, _, err := fsutil.ReadFile(cancelled, dir); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled: got %v, want context.Canceled", err)
	}
}

func TestCheckModified(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "a.js")
	writeFile(t, path, "one")

	_, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		t.Fatal(err)
	}

	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil || modified {
		t.Fatalf("unchanged file: modified=%v err=%v", modified, err)
	}

	// Same size and mod time but different content is caught by the hash.
	writeFile(t, path, "two")
	if err := os.Chtimes(path, info.ModTime, info.ModTime); err != nil {
		t.Fatal(err)
	}
	if modified, _ := fsutil.CheckModified(ctx, info); !modified {
		t.Error("content change not detected")
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if modified, _ := fsutil.CheckModified(ctx, info); !modified {
		t.Error("deleted file should count as modified")
	}

	if _, err := fsutil.CheckModified(ctx, nil); !errors.Is(err, fsutil.ErrNilFileInfo) {
		t.Errorf("nil info: got %v", err)
	}
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.js")
	writeFile(t, path, "old")

	if err := fsutil.WriteAtomic(context.Background(), path, []byte("new"), 0o600); err != nil {
		t.Fatalf("WriteAtomic() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil || string(got) != "new" {
		t.Fatalf("read back %q, %v", got, err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if stat.Mode().Perm() != 0o600 {
		t.Errorf("mode = %v, want 0600", stat.Mode().Perm())
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}
}

func TestWriteAtomic_MissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nope", "out.js")
	if err := fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestWriteMirrored(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	out := t.TempDir()
	src := filepath.Join(root, "src", "ui", "Button.js")

	dest, err := fsutil.WriteMirrored(context.Background(), root, out, src, []byte("x"), 0)
	if err != nil {
		t.Fatalf("WriteMirrored() error = %v", err)
	}
	if want := filepath.Join(out, "src", "ui", "Button.js"); dest != want {
		t.Errorf("dest = %q, want %q", dest, want)
	}
	if got, _ := os.ReadFile(dest); string(got) != "x" {
		t.Errorf("content = %q", got)
	}

	_, err = fsutil.WriteMirrored(context.Background(), filepath.Join(root, "src"), out, filepath.Join(root, "other.js"), nil, 0)
	if !errors.Is(err, fsutil.ErrOutsideRoot) {
		t.Errorf("outside root: got %v", err)
	}
}

func TestCreateBackup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "a.js")
	writeFile(t, path, "original")

	cfg := fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}

	backup, err := fsutil.CreateBackup(ctx, path, cfg)
	if err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}
	if backup != path+fsutil.BackupSuffix {
		t.Errorf("backup = %q", backup)
	}

	// A second backup keeps the first original.
	writeFile(t, path, "rewritten")
	again, err := fsutil.CreateBackup(ctx, path, cfg)
	if err != nil || again != "" {
		t.Errorf("second backup = %q, %v", again, err)
	}
	if got, _ := os.ReadFile(backup); string(got) != "original" {
		t.Errorf("backup content = %q", got)
	}

	for _, disabled := range []fsutil.BackupConfig{
		{Enabled: false, Mode: fsutil.BackupModeSidecar},
		{Enabled: true, Mode: fsutil.BackupModeNone},
	} {
		if got, err := fsutil.CreateBackup(ctx, filepath.Join(dir, "b.js"), disabled); got != "" || err != nil {
			t.Errorf("disabled backup = %q, %v", got, err)
		}
	}

	if got, err := fsutil.CreateBackup(ctx, filepath.Join(dir, "missing.js"), cfg); got != "" || err != nil {
		t.Errorf("missing original = %q, %v", got, err)
	}
}

func TestBackupPath(t *testing.T) {
	t.Parallel()

	if got := fsutil.BackupPath("/p/a.js", fsutil.BackupModeSidecar); got != "/p/a.js.styledid.bak" {
		t.Errorf("sidecar = %q", got)
	}
	if got := fsutil.BackupPath("/p/a.js", fsutil.BackupModeNone); got != "" {
		t.Errorf("none = %q", got)
	}
	if got := fsutil.BackupPath("/p/a.js", "weird"); got != "/p/a.js.styledid.bak" {
		t.Errorf("unknown = %q", got)
	}
}

