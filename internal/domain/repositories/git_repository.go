package repositories

import (
	"context"

	"github.com/moroten/git-toprepo/internal/domain/entities"
)

// GitRepository abstracts the local top repository. Implementations read git
// objects and talk to remotes; everything else stays in the domain layer.
type GitRepository interface {
	// RemoteURL returns the first URL configured for the named remote.
	RemoteURL(ctx context.Context, name string) (string, error)

	// Modules returns the submodules declared in .gitmodules at revision, with
	// relative URLs resolved against parentURL. A revision without .gitmodules
	// has no modules.
	Modules(ctx context.Context, revision, parentURL string) ([]entities.GitModuleInfo, error)

	// CommitMessage returns the raw message of the commit at revision.
	CommitMessage(ctx context.Context, revision string) ([]byte, error)

	// Push updates the remote refs of specs at remoteURL.
	Push(ctx context.Context, remoteURL string, specs []entities.PushRefSpec) error
}

// GitRepositoryOpener opens the repository containing dir.
type GitRepositoryOpener func(dir string) (GitRepository, error)
