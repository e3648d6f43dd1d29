package backup

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/clockings/internal/constants"
	"github.com/julianstephens/clockings/internal/logger"
)

// ArchiveInfo describes one archived copy of a report.
type ArchiveInfo struct {
	Path      string
	Report    string
	Timestamp time.Time
	Size      int64

	// seq is the ".N" collision counter; higher means newer within a second.
	seq int
}

// Manager keeps earlier versions of generated reports in a backups directory
// next to them, so that regenerating a month never silently loses a report.
type Manager struct {
	reportDir  string
	archiveDir string
	now        func() time.Time
}

// NewManager creates a manager for reports written to reportDir.
func NewManager(reportDir string) *Manager {
	return &Manager{
		reportDir:  reportDir,
		archiveDir: filepath.Join(reportDir, constants.ArchiveDirName),
		now:        time.Now,
	}
}

// GetArchiveDir returns the archive directory path
func (m *Manager) GetArchiveDir() string {
	return m.archiveDir
}

// Replace writes data to the report at name, archiving the current version
// first when it differs. It returns the archive path, or "" when nothing was
// archived.
func (m *Manager) Replace(name string, data []byte) (string, error) {
	reportPath := filepath.Join(m.reportDir, name)

	archived := ""
	current, err := os.ReadFile(reportPath)
	switch {
	case err == nil && !bytes.Equal(current, data):
		archived, err = m.ArchiveReport(name)
		if err != nil {
			return "", err
		}
	case err != nil && !os.IsNotExist(err):
		return "", fmt.Errorf("failed to read existing report: %w", err)
	}

	if err := writeFileAtomic(reportPath, data); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return archived, nil
}

// ArchiveReport copies the named report into the archive directory and prunes
// that report's oldest archives beyond constants.MaxArchives.
func (m *Manager) ArchiveReport(name string) (string, error) {
	return m.archiveReport(name, false)
}

func (m *Manager) archiveReport(name string, skipRotation bool) (string, error) {
	src := filepath.Join(m.reportDir, name)
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return "", fmt.Errorf("report does not exist: %s", src)
	}
	if err := os.MkdirAll(m.archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	base := reportBase(name)
	stamp := m.now().Format(constants.ArchiveTimeFormat)
	counter, err := m.nextCounter(base, stamp)
	if err != nil {
		return "", err
	}
	dest := filepath.Join(m.archiveDir, archiveName(base, stamp, counter))

	if err := copyFile(src, dest); err != nil {
		return "", fmt.Errorf("failed to archive report: %w", err)
	}
	logger.Debug("Archived report", "report", name, "archive", dest)

	if !skipRotation {
		if err := m.rotate(base); err != nil {
			logger.Warn("Failed to rotate report archives", "report", name, "error", err)
		}
	}
	return dest, nil
}

// ListArchives returns archived copies, newest first. An empty report name
// lists the archives of every report.
func (m *Manager) ListArchives(report string) ([]ArchiveInfo, error) {
	entries, err := os.ReadDir(m.archiveDir)
	if os.IsNotExist(err) {
		return []ArchiveInfo{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read archive directory: %w", err)
	}

	want := reportBase(report)
	var archives []ArchiveInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		base, ts, seq, ok := parseArchiveName(entry.Name())
		if !ok || (want != "" && base != want) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		archives = append(archives, ArchiveInfo{
			Path:      filepath.Join(m.archiveDir, entry.Name()),
			Report:    base + constants.ArchiveFileSuffix,
			Timestamp: ts,
			Size:      info.Size(),
			seq:       seq,
		})
	}

	sort.SliceStable(archives, func(i, j int) bool {
		if archives[i].Timestamp.Equal(archives[j].Timestamp) {
			return archives[i].seq > archives[j].seq
		}
		return archives[i].Timestamp.After(archives[j].Timestamp)
	})
	return archives, nil
}

// RestoreArchive puts an archived copy back in place of its report. The
// current report, if any, is archived first without rotation.
func (m *Manager) RestoreArchive(archivePath string) (string, error) {
	base, _, _, ok := parseArchiveName(filepath.Base(archivePath))
	if !ok {
		return "", fmt.Errorf("not a report archive: %s", archivePath)
	}
	data, err := os.ReadFile(archivePath)
	if err != nil {
		return "", fmt.Errorf("failed to read archive: %w", err)
	}

	name := base + constants.ArchiveFileSuffix
	if fileExists(filepath.Join(m.reportDir, name)) {
		if _, err := m.archiveReport(name, true); err != nil {
			return "", fmt.Errorf("failed to archive current report before restore: %w", err)
		}
	}
	if err := writeFileAtomic(filepath.Join(m.reportDir, name), data); err != nil {
		return "", fmt.Errorf("failed to restore report: %w", err)
	}
	return name, nil
}

func (m *Manager) rotate(base string) error {
	archives, err := m.ListArchives(base)
	if err != nil {
		return err
	}
	for i := constants.MaxArchives; i < len(archives); i++ {
		if err := os.Remove(archives[i].Path); err != nil {
			return fmt.Errorf("failed to remove old archive %s: %w", archives[i].Path, err)
		}
	}
	return nil
}

// nextCounter returns the collision counter for a new archive of base taken at
// stamp: 0 when the second is unused, else one past the highest in use.
func (m *Manager) nextCounter(base, stamp string) (int, error) {
	entries, err := os.ReadDir(m.archiveDir)
	if err != nil {
		return 0, fmt.Errorf("failed to read archive directory: %w", err)
	}
	next := 0
	for _, entry := range entries {
		b, ts, seq, ok := parseArchiveName(entry.Name())
		if !ok || b != base || ts.Format(constants.ArchiveTimeFormat) != stamp {
			continue
		}
		next = max(next, seq+1)
	}
	return next, nil
}

// Archive names look like "March - 2024.20240320-101500.txt", with an
// optional ".N" counter before the suffix.
func archiveName(base, stamp string, counter int) string {
	if counter == 0 {
		return fmt.Sprintf("%s.%s%s", base, stamp, constants.ArchiveFileSuffix)
	}
	return fmt.Sprintf("%s.%s.%d%s", base, stamp, counter, constants.ArchiveFileSuffix)
}

func parseArchiveName(name string) (string, time.Time, int, bool) {
	if !strings.HasSuffix(name, constants.ArchiveFileSuffix) {
		return "", time.Time{}, 0, false
	}
	parts := strings.Split(strings.TrimSuffix(name, constants.ArchiveFileSuffix), ".")
	if len(parts) < 2 {
		return "", time.Time{}, 0, false
	}
	seq := 0
	if n, err := strconv.Atoi(parts[len(parts)-1]); err == nil && len(parts) > 2 {
		seq = n
		parts = parts[:len(parts)-1]
	}
	ts, err := time.ParseInLocation(constants.ArchiveTimeFormat, parts[len(parts)-1], time.Local)
	if err != nil {
		return "", time.Time{}, 0, false
	}
	return strings.Join(parts[:len(parts)-1], "."), ts, seq, true
}

func reportBase(name string) string {
	return strings.TrimSuffix(filepath.Base(name), constants.ArchiveFileSuffix)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// writeFileAtomic writes through a temporary file and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		if removeErr := os.Remove(tmp); removeErr != nil {
			logger.Warn("Failed to remove temporary file", "path", tmp, "error", removeErr)
		}
		return err
	}
	return nil
}

// copyFile copies a file from src to dst
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}

	// Sync to ensure data is written to disk
	return destFile.Sync()
}
