package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/moroten/git-toprepo/internal/domain/entities"
	"github.com/moroten/git-toprepo/internal/domain/repositories"
)

const originRemote = "origin"

// ErrUnknownRemote is returned when a remote matches no known repository.
var ErrUnknownRemote = errors.New("unknown remote")

// Resolve is the interface for the resolve command.
type Resolve interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ResolveOptions) (*Resolution, error)
}

// ResolveOptions holds runtime options for resolving a remote.
type ResolveOptions struct {
	RepoDir  string
	Remote   string
	Revision string // where .gitmodules is read, HEAD when empty
}

// Resolution is what a remote resolved to.
type Resolution struct {
	Identity entities.RepoIdentity
	Module   *entities.GitModuleInfo // set when matched through .gitmodules
	Repo     *entities.RepoConfig    // set when the repository is configured
	FetchURL string
	PushURL  string
}

// ResolveCommand maps a remote name or URL onto a repository identity.
type ResolveCommand struct {
	openRepository repositories.GitRepositoryOpener
}

// NewResolveCommand creates a new ResolveCommand.
func NewResolveCommand(openRepository repositories.GitRepositoryOpener) *ResolveCommand {
	return &ResolveCommand{openRepository: openRepository}
}

// Execute resolves opts.Remote against the settings and the submodules of the
// repository at opts.RepoDir.
func (it *ResolveCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ResolveOptions,
) (*Resolution, error) {
	repo, err := it.openRepository(opts.RepoDir)
	if err != nil {
		return nil, err
	}
	return resolveRemote(ctx, repo, settings, opts.Remote, opts.Revision)
}

func resolveRemote(
	ctx context.Context,
	repo repositories.GitRepository,
	settings *entities.Settings,
	remote, revision string,
) (*Resolution, error) {
	modules, err := repo.Modules(ctx, revision, settings.TopFetchURL)
	if err != nil {
		return nil, fmt.Errorf("failed to read submodules: %w", err)
	}
	logger.Debugf("Resolving %q among %d configured repos and %d submodules",
		remote, len(settings.Repos), len(modules))

	identity, module, ok := entities.RemoteToRepo(remoteLocation(ctx, repo, remote), modules, settings)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRemote, remote)
	}

	resolution := &Resolution{Identity: identity, Module: module}
	if identity.IsTop() {
		resolution.FetchURL = settings.TopFetchURL
		resolution.PushURL = settings.TopPushURL
	} else if configured, found := settings.Repo(identity.ID()); found {
		resolution.Repo = configured
		resolution.FetchURL = configured.FetchURL
		resolution.PushURL = configured.PushURL
	} else if module != nil {
		resolution.FetchURL = module.URL
		resolution.PushURL = module.URL
	}

	logger.Infof("Remote %q is %s (%s)", remote, identity, entities.RepositoryBasename(resolution.FetchURL))
	return resolution, nil
}

// remoteLocation replaces the name of a remote configured in the top
// repository with its URL. "origin" stays an alias of the top repository and
// anything that is not a plain name is returned as given.
func remoteLocation(ctx context.Context, repo repositories.GitRepository, remote string) string {
	if remote == "" || remote == "." || remote == originRemote || strings.ContainsAny(remote, "/:") {
		return remote
	}
	url, err := repo.RemoteURL(ctx, remote)
	if err != nil {
		return remote
	}
	logger.Debugf("Remote %q has URL %s", remote, url)
	return url
}
