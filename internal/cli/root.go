package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/clockings/internal/backup"
	"github.com/julianstephens/clockings/internal/classifier"
	"github.com/julianstephens/clockings/internal/config"
	"github.com/julianstephens/clockings/internal/constants"
	"github.com/julianstephens/clockings/internal/utils"
)

type Context struct {
	Config     *config.Config
	Classifier *classifier.Classifier
	// Now overrides the clock; nil means the current time in Config.Timezone.
	Now func() time.Time
	Out io.Writer
}

// NewContext builds the run context and loads the classifier vocabulary.
func NewContext(cfg *config.Config) (*Context, error) {
	c, err := classifier.Load(VocabularyPath(cfg))
	if err != nil {
		return nil, err
	}
	return &Context{Config: cfg, Classifier: c, Out: os.Stdout}, nil
}

// VocabularyPath picks the vocabulary file: the configured one, else the one
// written by init into the config directory, else "" for the built-in table.
func VocabularyPath(cfg *config.Config) string {
	if cfg.Vocabulary != "" {
		return cfg.Resolve(cfg.Vocabulary)
	}
	path := filepath.Join(cfg.ConfigDir, constants.DefaultVocabularyFile)
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

// Today returns the current calendar date in the configured timezone.
func (c *Context) Today() (time.Time, error) {
	if c.Now != nil {
		return utils.DateOnly(c.Now()), nil
	}
	now, err := utils.NowInTimezone(c.Config.Timezone)
	if err != nil {
		return time.Time{}, err
	}
	return utils.DateOnly(now), nil
}

// Archives returns the archive manager for the report directory.
func (c *Context) Archives() *backup.Manager {
	return backup.NewManager(c.Config.Dir)
}

func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.writer(), format, args...)
}

func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.writer(), args...)
}

func (c *Context) writer() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}
