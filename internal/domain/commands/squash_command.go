package commands

import (
	"context"
	"errors"

	logger "github.com/sirupsen/logrus"

	"github.com/moroten/git-toprepo/internal/domain/entities"
	"github.com/moroten/git-toprepo/internal/domain/repositories"
)

// Squash is the interface for the squash command.
type Squash interface {
	Execute(ctx context.Context, opts SquashOptions) ([]byte, error)
}

// SquashOptions holds runtime options for merging commit messages.
type SquashOptions struct {
	RepoDir   string
	Revisions []string
}

// SquashCommand builds the message of a commit squashing several others.
type SquashCommand struct {
	openRepository repositories.GitRepositoryOpener
}

// NewSquashCommand creates a new SquashCommand.
func NewSquashCommand(openRepository repositories.GitRepositoryOpener) *SquashCommand {
	return &SquashCommand{openRepository: openRepository}
}

// Execute reads the messages of opts.Revisions in order and joins them.
func (it *SquashCommand) Execute(ctx context.Context, opts SquashOptions) ([]byte, error) {
	if len(opts.Revisions) == 0 {
		return nil, errors.New("at least one revision is required")
	}
	repo, err := it.openRepository(opts.RepoDir)
	if err != nil {
		return nil, err
	}

	messages := make([][]byte, 0, len(opts.Revisions))
	for _, revision := range opts.Revisions {
		message, msgErr := repo.CommitMessage(ctx, revision)
		if msgErr != nil {
			return nil, msgErr
		}
		messages = append(messages, message)
	}

	logger.Debugf("Joining %d commit messages", len(messages))
	return entities.JoinAnnotatedCommitMessages(messages), nil
}
