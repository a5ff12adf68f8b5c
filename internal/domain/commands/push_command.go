package commands

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/moroten/git-toprepo/internal/domain/entities"
	"github.com/moroten/git-toprepo/internal/domain/repositories"
)

// ErrRepoDisabled is returned when pushing to a repository disabled in the settings.
var ErrRepoDisabled = errors.New("repository is disabled")

// Push is the interface for the push command.
type Push interface {
	Execute(ctx context.Context, settings *entities.Settings, opts PushOptions) (*PushPlan, error)
}

// PushOptions holds runtime options for a push.
type PushOptions struct {
	RepoDir  string
	Remote   string
	Revision string
	RefSpecs []string
	DryRun   bool
}

// PushPlan is what a push does, or would do in dry-run mode.
type PushPlan struct {
	Resolution *Resolution
	RemoteURL  string
	RefSpecs   []entities.PushRefSpec
}

// PushCommand resolves a remote and pushes refs to its push URL.
type PushCommand struct {
	openRepository repositories.GitRepositoryOpener
}

// NewPushCommand creates a new PushCommand.
func NewPushCommand(openRepository repositories.GitRepositoryOpener) *PushCommand {
	return &PushCommand{openRepository: openRepository}
}

// Execute parses every ref spec before anything is resolved, so a typo fails
// the whole push.
func (it *PushCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts PushOptions,
) (*PushPlan, error) {
	if len(opts.RefSpecs) == 0 {
		return nil, fmt.Errorf("%w: at least one ref spec is required", entities.ErrInvalidRefSpec)
	}
	specs := make([]entities.PushRefSpec, 0, len(opts.RefSpecs))
	for _, raw := range opts.RefSpecs {
		spec, err := entities.ParsePushRefSpec(raw)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}

	repo, err := it.openRepository(opts.RepoDir)
	if err != nil {
		return nil, err
	}

	resolution, err := resolveRemote(ctx, repo, settings, opts.Remote, opts.Revision)
	if err != nil {
		return nil, err
	}
	if resolution.Repo != nil && !resolution.Repo.Enabled {
		return nil, fmt.Errorf("%w: %s", ErrRepoDisabled, resolution.Repo.ID)
	}
	if resolution.PushURL == "" {
		return nil, fmt.Errorf("no push URL known for %s", resolution.Identity)
	}

	plan := &PushPlan{
		Resolution: resolution,
		RemoteURL:  resolution.PushURL,
		RefSpecs:   specs,
	}
	for _, spec := range specs {
		logger.Infof("Push %s to %s", spec, plan.RemoteURL)
	}

	if opts.DryRun {
		logger.Info("Dry run, nothing pushed")
		return plan, nil
	}

	if pushErr := repo.Push(ctx, plan.RemoteURL, specs); pushErr != nil {
		return nil, pushErr
	}
	return plan, nil
}
