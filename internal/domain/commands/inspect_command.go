package commands

import (
	"context"
	"fmt"

	"github.com/moroten/git-toprepo/internal/domain/entities"
	"github.com/moroten/git-toprepo/internal/domain/repositories"
)

// Inspect is the interface for the inspect command.
type Inspect interface {
	Execute(ctx context.Context, opts InspectOptions) (*MessageInfo, error)
}

// InspectOptions holds runtime options for inspecting a commit message.
type InspectOptions struct {
	RepoDir  string
	Revision string
	Subdir   string // only the top hash and topic are looked up when empty
}

// MessageInfo is the provenance recovered from one commit message.
type MessageInfo struct {
	Hash       string
	HasHash    bool
	TopHash    string
	HasTopHash bool
	Topic      string
	HasTopic   bool
}

// InspectCommand reads the trailers of a commit in the top repository.
type InspectCommand struct {
	openRepository repositories.GitRepositoryOpener
}

// NewInspectCommand creates a new InspectCommand.
func NewInspectCommand(openRepository repositories.GitRepositoryOpener) *InspectCommand {
	return &InspectCommand{openRepository: openRepository}
}

// Execute fails when the message carries more than one topic.
func (it *InspectCommand) Execute(ctx context.Context, opts InspectOptions) (*MessageInfo, error) {
	repo, err := it.openRepository(opts.RepoDir)
	if err != nil {
		return nil, err
	}
	message, err := repo.CommitMessage(ctx, opts.Revision)
	if err != nil {
		return nil, err
	}

	info := &MessageInfo{}
	if opts.Subdir != "" {
		hash, ok := entities.TryParseCommitHashFromMessage(message, []byte(opts.Subdir))
		info.Hash, info.HasHash = string(hash), ok
	}
	topHash, ok := entities.TryParseTopHashFromMessage(message)
	info.TopHash, info.HasTopHash = string(topHash), ok

	topic, ok, err := entities.TryGetTopicFromMessage(message)
	if err != nil {
		return nil, fmt.Errorf("commit %s: %w", opts.Revision, err)
	}
	info.Topic, info.HasTopic = topic, ok
	return info, nil
}
