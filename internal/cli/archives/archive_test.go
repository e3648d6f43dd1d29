package archives

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/clockings/internal/cli"
	"github.com/julianstephens/clockings/internal/config"
)

const reportFile = "March - 2024.txt"

func setupTestArchives(t *testing.T) (*cli.Context, *bytes.Buffer, string) {
	t.Helper()
	dir := t.TempDir()
	var out bytes.Buffer
	ctx := &cli.Context{
		Config: &config.Config{Dir: dir, Timezone: "UTC", ConfigDir: t.TempDir()},
		Out:    &out,
	}

	mgr := ctx.Archives()
	if _, err := mgr.Replace(reportFile, []byte("first version")); err != nil {
		t.Fatal(err)
	}
	archived, err := mgr.Replace(reportFile, []byte("second version"))
	if err != nil {
		t.Fatal(err)
	}
	return ctx, &out, archived
}

func TestListCmd(t *testing.T) {
	ctx, out, archived := setupTestArchives(t)

	if err := (&ListCmd{}).Run(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out.String(), filepath.Base(archived)) {
		t.Errorf("list output missing %s:\n%s", filepath.Base(archived), out.String())
	}
}

func TestListCmdEmpty(t *testing.T) {
	var out bytes.Buffer
	ctx := &cli.Context{Config: &config.Config{Dir: t.TempDir()}, Out: &out}

	if err := (&ListCmd{Report: reportFile}).Run(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out.String(), "No archived reports found.") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestRestoreCmdByName(t *testing.T) {
	ctx, out, archived := setupTestArchives(t)

	cmd := &RestoreCmd{Archive: filepath.Base(archived), Yes: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(ctx.Config.Dir, reportFile))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "first version" {
		t.Errorf("report content = %q, want first version", data)
	}
	if !strings.Contains(out.String(), "Restored "+reportFile) {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestRestoreCmdCancelled(t *testing.T) {
	ctx, out, archived := setupTestArchives(t)

	orig := confirmRestore
	confirmRestore = func(string) (bool, error) { return false, nil }
	t.Cleanup(func() { confirmRestore = orig })

	if err := (&RestoreCmd{Archive: archived}).Run(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(ctx.Config.Dir, reportFile))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second version" {
		t.Error("cancelled restore must not touch the report")
	}
	if !strings.Contains(out.String(), "Restore cancelled.") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestRestoreCmdMissingArchive(t *testing.T) {
	ctx, _, _ := setupTestArchives(t)
	if err := (&RestoreCmd{Archive: "nope.20240101-000000.txt", Yes: true}).Run(ctx); err == nil {
		t.Error("expected an error for a missing archive")
	}
}
