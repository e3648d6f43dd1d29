package sources

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/clockings/internal/classifier"
	"github.com/julianstephens/clockings/internal/cli"
	"github.com/julianstephens/clockings/internal/clockings"
	"github.com/julianstephens/clockings/internal/config"
	"github.com/julianstephens/clockings/internal/constants"
	"github.com/julianstephens/clockings/internal/extractor"
)

const gridPage = `<html><body><table id="DataGrid1">
<tr><td>Date</td><td>Description</td></tr>
<tr><td>2024/03/04 Mon 08:00:00</td><td>HO Main Staff IN</td></tr>
<tr><td>2024/03/04 Mon 17:00:00</td><td>HO Main Staff OUT</td></tr>
<tr><td>2024/03/20 Wed 08:00:00</td><td>HO Main Staff IN</td></tr>
</table></body></html>`

func setupTestContext(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	var out bytes.Buffer
	ctx := &cli.Context{
		Config: &config.Config{
			Dir:       dir,
			Input:     constants.DefaultInputFile,
			Reminders: constants.DefaultRemindersFile,
			Timezone:  "UTC",
			ConfigDir: t.TempDir(),
			Leave:     config.LeaveUnset,
		},
		Classifier: classifier.Default(),
		Now:        func() time.Time { return time.Date(2024, time.March, 20, 9, 0, 0, 0, time.UTC) },
		Out:        &out,
	}
	return ctx, &out
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestExtractCmd(t *testing.T) {
	ctx, out := setupTestContext(t)
	pagePath := filepath.Join(t.TempDir(), "grid.html")
	writeFile(t, pagePath, gridPage)
	writeFile(t, filepath.Join(ctx.Config.Dir, constants.DefaultRemindersFile), "Submit timesheet\n")

	cmd := &ExtractCmd{
		Page:      pagePath,
		Output:    constants.DefaultInputFile,
		Reminders: constants.DefaultRemindersFile,
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("extract command failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(ctx.Config.Dir, constants.DefaultInputFile))
	if err != nil {
		t.Fatalf("clockings file not written: %v", err)
	}
	content := string(data)
	// The 20th is today and falls outside the range.
	if strings.Contains(content, "2024/03/20") {
		t.Error("today's clockings should not be extracted")
	}
	if !strings.HasSuffix(content, "Reminders\n---------\nSubmit timesheet\n") {
		t.Errorf("reminders trailer missing:\n%s", content)
	}

	events, err := clockings.Read(strings.NewReader(content), ctx.Classifier)
	if err != nil {
		t.Fatalf("extracted file does not read back: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("read %d events, want 2", len(events))
	}
	if !strings.Contains(out.String(), "Extracted 2 clockings") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestExtractCmdMissingReminders(t *testing.T) {
	ctx, _ := setupTestContext(t)
	pagePath := filepath.Join(t.TempDir(), "grid.html")
	writeFile(t, pagePath, gridPage)

	cmd := &ExtractCmd{Page: pagePath, Output: constants.DefaultInputFile, Reminders: constants.DefaultRemindersFile}
	err := cmd.Run(ctx)

	var missing *extractor.MissingResourceError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingResourceError, got %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(ctx.Config.Dir, constants.DefaultInputFile)); !os.IsNotExist(statErr) {
		t.Error("no clockings file should be written without reminders")
	}
}

func TestExtractCmdMissingPage(t *testing.T) {
	ctx, _ := setupTestContext(t)
	writeFile(t, filepath.Join(ctx.Config.Dir, constants.DefaultRemindersFile), "")

	cmd := &ExtractCmd{Page: filepath.Join(t.TempDir(), "nope.html"), Output: constants.DefaultInputFile, Reminders: constants.DefaultRemindersFile}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected an error for a missing grid page")
	}
}
