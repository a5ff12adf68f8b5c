package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/moroten/git-toprepo/internal/domain/repositories"
	"github.com/moroten/git-toprepo/internal/infrastructure/repositories/gogit"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Repositories are opened per invocation, once the controller knows the directory
	return container.Provide(func() domainRepos.GitRepositoryOpener {
		return gogit.OpenGitRepository
	})
}
