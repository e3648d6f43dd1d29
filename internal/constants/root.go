package constants

const (
	AppName    = "clockings"
	Version    = "v0.3.0"
	EnvPrefix  = "CLOCKINGS_"
	ConfigName = "clockings"

	// DateFormat is the date format used in report output (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the time-of-day format used in report output (HH:MM:SS)
	TimeFormat = "15:04:05"

	// ClockingLayout is the timestamp layout written by the attendance terminal,
	// e.g. "2024/03/05 Tue 08:02:17".
	ClockingLayout = "2006/01/02 Mon 15:04:05"

	// Default file names, relative to the working directory
	DefaultInputFile      = "ClockingsReport.txt"
	DefaultRemindersFile  = "Reminder.txt"
	DefaultVocabularyFile = "vocabulary.yaml"
	DefaultGridSelector   = "#DataGrid1 tr"

	// Reminders trailer appended by the extractor
	RemindersMarker    = "Reminders"
	RemindersSeparator = "---------"

	// Archive constants
	MaxArchives       = 14
	ArchiveDirName    = "backups"
	ArchiveFileSuffix = ".txt"
	ArchiveTimeFormat = "20060102-150405"
)
