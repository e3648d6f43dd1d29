package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/clockings/internal/classifier"
	"github.com/julianstephens/clockings/internal/cli"
	"github.com/julianstephens/clockings/internal/constants"
	"github.com/julianstephens/clockings/internal/logger"
)

const remindersTemplate = "Write this month's reminders here; they are appended to every clockings file.\n"

type InitCmd struct {
	Force bool `help:"Overwrite an existing vocabulary file with the built-in one."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if err := os.MkdirAll(ctx.Config.ConfigDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	vocabPath := filepath.Join(ctx.Config.ConfigDir, constants.DefaultVocabularyFile)
	if ctx.Config.Vocabulary != "" {
		vocabPath = ctx.Config.Resolve(ctx.Config.Vocabulary)
	}
	if _, err := os.Stat(vocabPath); err == nil && !c.Force {
		ctx.Printf("Vocabulary already exists at: %s (use --force to reset)\n", vocabPath)
	} else {
		data, err := classifier.Marshal(classifier.DefaultRules())
		if err != nil {
			return fmt.Errorf("failed to encode vocabulary: %w", err)
		}
		if err := os.WriteFile(vocabPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write vocabulary: %w", err)
		}
		logger.Info("Vocabulary written", "path", vocabPath)
		ctx.Printf("Wrote default vocabulary to: %s\n", vocabPath)
	}

	remindersPath := ctx.Config.Resolve(ctx.Config.Reminders)
	if _, err := os.Stat(remindersPath); err == nil {
		ctx.Printf("Reminders file already exists at: %s\n", remindersPath)
	} else if os.IsNotExist(err) {
		if err := os.WriteFile(remindersPath, []byte(remindersTemplate), 0644); err != nil {
			return fmt.Errorf("failed to write reminders file: %w", err)
		}
		ctx.Printf("Created reminders file at: %s\n", remindersPath)
	} else {
		return fmt.Errorf("failed to access reminders file: %w", err)
	}

	return nil
}
