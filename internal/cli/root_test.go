package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/clockings/internal/config"
	"github.com/julianstephens/clockings/internal/constants"
	"github.com/julianstephens/clockings/internal/models"
)

func TestToday(t *testing.T) {
	ctx := &Context{
		Config: &config.Config{Timezone: "UTC"},
		Now:    func() time.Time { return time.Date(2024, time.March, 5, 23, 59, 0, 0, time.UTC) },
	}
	got, err := ctx.Today()
	if err != nil {
		t.Fatal(err)
	}
	if want := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("Today() = %v, want %v", got, want)
	}

	ctx = &Context{Config: &config.Config{Timezone: "Not/AZone"}}
	if _, err := ctx.Today(); err == nil {
		t.Error("Today() should fail for an invalid timezone")
	}
}

func TestVocabularyPath(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{Dir: dir, ConfigDir: filepath.Join(dir, "config")}

	if got := VocabularyPath(cfg); got != "" {
		t.Errorf("no vocabulary configured or initialised, got %q", got)
	}

	if err := os.MkdirAll(cfg.ConfigDir, 0755); err != nil {
		t.Fatal(err)
	}
	initialised := filepath.Join(cfg.ConfigDir, constants.DefaultVocabularyFile)
	if err := os.WriteFile(initialised, []byte("rules:\n  - pattern: Gate\n    direction: incoming\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := VocabularyPath(cfg); got != initialised {
		t.Errorf("VocabularyPath() = %q, want %q", got, initialised)
	}

	cfg.Vocabulary = "custom.yaml"
	if got := VocabularyPath(cfg); got != filepath.Join(dir, "custom.yaml") {
		t.Errorf("configured vocabulary should win, got %q", got)
	}
}

func TestNewContext(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{Dir: dir, ConfigDir: dir, Timezone: "UTC"}

	ctx, err := NewContext(cfg)
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	if got := ctx.Classifier.Classify("HO Main Staff IN"); got != models.DirectionIncoming {
		t.Errorf("built-in classifier returned %v", got)
	}

	cfg.Vocabulary = "missing.yaml"
	if _, err := NewContext(cfg); err == nil {
		t.Error("NewContext() should fail for a missing vocabulary file")
	}
}

func TestPrintf(t *testing.T) {
	var out bytes.Buffer
	ctx := &Context{Out: &out}
	ctx.Printf("%d events", 3)
	ctx.Println("")
	if out.String() != "3 events\n" {
		t.Errorf("output = %q", out.String())
	}
}
