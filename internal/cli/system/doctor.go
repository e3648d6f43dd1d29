package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/clockings/internal/classifier"
	"github.com/julianstephens/clockings/internal/cli"
	"github.com/julianstephens/clockings/internal/clockings"
	"github.com/julianstephens/clockings/internal/report"
	"github.com/julianstephens/clockings/internal/utils"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	fail := func(name string, err error) {
		ctx.Printf("❌ %s: FAIL\n", name)
		ctx.Printf("   Error: %v\n", err)
		hasError = true
	}

	// Check 1: Timezone
	if err := checkTimezone(ctx); err != nil {
		fail("Timezone", err)
	} else {
		ctx.Printf("✓ Timezone: OK (%s)\n", ctx.Config.Timezone)
	}

	// Check 2: Vocabulary
	c, source, err := checkVocabulary(ctx)
	if err != nil {
		fail("Vocabulary", err)
	} else {
		ctx.Printf("✓ Vocabulary: OK (%d rules, %s)\n", len(c.Rules()), source)
	}

	// Check 3: Clockings file (only if the vocabulary loaded)
	if c != nil {
		if n, err := checkClockings(ctx, c); err != nil {
			fail("Clockings file", err)
		} else {
			ctx.Printf("✓ Clockings file: OK (%d events)\n", n)
		}
	} else {
		ctx.Printf("⊘ Clockings file: SKIPPED (vocabulary not loaded)\n")
	}

	// Check 4: Reminders file (warning only, report does not need it)
	if err := checkReminders(ctx); err != nil {
		ctx.Printf("⚠ Reminders file: WARNING\n")
		ctx.Printf("   %v\n", err)
	} else {
		ctx.Printf("✓ Reminders file: OK\n")
	}

	// Check 5: Report directory writable
	if err := checkReportDirWritable(ctx); err != nil {
		fail("Report directory", err)
	} else {
		ctx.Printf("✓ Report directory: OK (%s)\n", ctx.Config.Dir)
	}

	// Check 6: Archives present (warning only)
	if err := checkArchivesPresent(ctx); err != nil {
		ctx.Printf("⚠ Archives present: WARNING\n")
		ctx.Printf("   %v\n", err)
	} else {
		ctx.Printf("✓ Archives present: OK\n")
	}

	ctx.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	ctx.Println("All checks passed.")
	return nil
}

func checkTimezone(ctx *cli.Context) error {
	if _, err := utils.LoadLocation(ctx.Config.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", ctx.Config.Timezone, err)
	}
	return nil
}

func checkVocabulary(ctx *cli.Context) (*classifier.Classifier, string, error) {
	path := cli.VocabularyPath(ctx.Config)
	c, err := classifier.Load(path)
	if err != nil {
		return nil, "", err
	}
	if path == "" {
		return c, "built-in", nil
	}
	return c, path, nil
}

func checkClockings(ctx *cli.Context, c *classifier.Classifier) (int, error) {
	events, err := clockings.ReadFile(ctx.Config.Resolve(ctx.Config.Input), c)
	if err != nil {
		return 0, err
	}
	if _, err := report.Summarize(events, 0); err != nil {
		return 0, err
	}
	return len(events), nil
}

func checkReminders(ctx *cli.Context) error {
	path := ctx.Config.Resolve(ctx.Config.Reminders)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%s not found; extract will fail until it exists (run 'clockings init')", path)
	}
	return nil
}

func checkReportDirWritable(ctx *cli.Context) error {
	f, err := os.CreateTemp(ctx.Config.Dir, ".doctor-*")
	if err != nil {
		return fmt.Errorf("cannot write to %s: %w", ctx.Config.Dir, err)
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

func checkArchivesPresent(ctx *cli.Context) error {
	mgr := ctx.Archives()
	archives, err := mgr.ListArchives("")
	if err != nil {
		return fmt.Errorf("failed to list archives: %w", err)
	}
	if len(archives) == 0 {
		return fmt.Errorf("no archived reports in %s yet", filepath.Clean(mgr.GetArchiveDir()))
	}
	return nil
}
