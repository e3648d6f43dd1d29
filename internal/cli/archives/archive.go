package archives

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/julianstephens/clockings/internal/cli"
	"github.com/julianstephens/clockings/internal/constants"
)

// Replaced in tests.
var confirmRestore = func(archive string) (bool, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return false, fmt.Errorf("refusing to restore without confirmation; pass --yes")
	}
	confirmed := false
	err := huh.NewConfirm().
		Title(fmt.Sprintf("Restore %s?", archive)).
		Description("The current report is archived first.").
		Affirmative("Restore").
		Negative("Cancel").
		Value(&confirmed).
		Run()
	return confirmed, err
}

type ListCmd struct {
	Report string `arg:"" optional:"" help:"Only list archives of this report, e.g. \"March - 2024.txt\"."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	mgr := ctx.Archives()
	archives, err := mgr.ListArchives(c.Report)
	if err != nil {
		return fmt.Errorf("failed to list archives: %w", err)
	}

	if len(archives) == 0 {
		ctx.Println("No archived reports found.")
		ctx.Printf("Archives are stored in: %s\n", mgr.GetArchiveDir())
		return nil
	}

	ctx.Printf("Archived reports (%d total, keeping most recent %d per report):\n\n", len(archives), constants.MaxArchives)
	for _, a := range archives {
		sizeKB := float64(a.Size) / 1024.0
		timestamp := a.Timestamp.Format("2006-01-02 15:04:05")
		ctx.Printf("  %s  %s  (%.1f KB)\n", timestamp, filepath.Base(a.Path), sizeKB)
	}
	ctx.Printf("\nArchive directory: %s\n", mgr.GetArchiveDir())
	return nil
}

type RestoreCmd struct {
	Archive string `arg:"" help:"Path or file name of the archive to restore."`
	Yes     bool   `short:"y" help:"Restore without asking for confirmation."`
}

func (c *RestoreCmd) Run(ctx *cli.Context) error {
	mgr := ctx.Archives()

	archivePath := c.Archive
	if !filepath.IsAbs(archivePath) {
		possiblePath := filepath.Join(mgr.GetArchiveDir(), c.Archive)
		if _, err := os.Stat(possiblePath); err == nil {
			archivePath = possiblePath
		}
	}
	if _, err := os.Stat(archivePath); os.IsNotExist(err) {
		return fmt.Errorf("archive not found: %s", archivePath)
	}

	if !c.Yes {
		ok, err := confirmRestore(filepath.Base(archivePath))
		if err != nil {
			return err
		}
		if !ok {
			ctx.Println("Restore cancelled.")
			return nil
		}
	}

	name, err := mgr.RestoreArchive(archivePath)
	if err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}
	ctx.Printf("✓ Restored %s from %s\n", name, filepath.Base(archivePath))
	return nil
}
