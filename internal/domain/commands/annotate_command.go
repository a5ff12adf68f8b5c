package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/moroten/git-toprepo/internal/domain/entities"
)

// Annotate is the interface for the annotate command.
type Annotate interface {
	Execute(ctx context.Context, opts AnnotateOptions) error
}

// AnnotateOptions holds runtime options for annotating a message file.
type AnnotateOptions struct {
	MessageFile string
	Subdir      string // the top repository when empty
	Hash        string
}

// AnnotateCommand adds a provenance trailer to a commit message file in place,
// the way a commit-msg hook edits the message.
type AnnotateCommand struct{}

// NewAnnotateCommand creates a new AnnotateCommand.
func NewAnnotateCommand() *AnnotateCommand {
	return &AnnotateCommand{}
}

// Execute rewrites opts.MessageFile keeping its permissions.
func (it *AnnotateCommand) Execute(_ context.Context, opts AnnotateOptions) error {
	if opts.Hash == "" {
		return errors.New("a commit hash is required")
	}
	subdir := opts.Subdir
	if subdir == "" {
		subdir = entities.TopSubdir
	}

	info, err := os.Stat(opts.MessageFile)
	if err != nil {
		return fmt.Errorf("failed to stat message file: %w", err)
	}
	message, err := os.ReadFile(opts.MessageFile)
	if err != nil {
		return fmt.Errorf("failed to read message file: %w", err)
	}

	annotated := entities.Annotate(message, []byte(subdir), []byte(opts.Hash))
	if writeErr := os.WriteFile(opts.MessageFile, annotated, info.Mode().Perm()); writeErr != nil {
		return fmt.Errorf("failed to write message file: %w", writeErr)
	}

	logger.Debugf("Annotated %s with %s %s", opts.MessageFile, subdir, opts.Hash)
	return nil
}
