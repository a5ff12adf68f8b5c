package gogit

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	lru "github.com/hashicorp/golang-lru/v2"
	logger "github.com/sirupsen/logrus"

	"github.com/moroten/git-toprepo/internal/domain/entities"
	"github.com/moroten/git-toprepo/internal/domain/repositories"
)

// ErrUnknownLocalRef is returned when the local side of a push names nothing.
var ErrUnknownLocalRef = errors.New("local ref does not exist")

const (
	refsPrefix       = "refs/"
	gitModulesFile   = ".gitmodules"
	defaultRevision  = "HEAD"
	pushRemoteName   = "toprepo-push"
	modulesCacheSize = 1024
)

// GitRepository implements repositories.GitRepository on top of go-git.
type GitRepository struct {
	repo *git.Repository
	// decoded .gitmodules keyed by commit hash and parent URL
	modulesCache *lru.Cache[string, []entities.GitModuleInfo]
}

// NewGitRepository wraps an already opened go-git repository.
func NewGitRepository(repo *git.Repository) (*GitRepository, error) {
	cache, err := lru.New[string, []entities.GitModuleInfo](modulesCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create modules cache: %w", err)
	}
	return &GitRepository{
		repo:         repo,
		modulesCache: cache,
	}, nil
}

// OpenGitRepository opens the repository containing dir, looking upwards for
// the .git directory.
func OpenGitRepository(dir string) (repositories.GitRepository, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository at %q: %w", dir, err)
	}
	gitRepo, err := NewGitRepository(repo)
	if err != nil {
		return nil, err
	}
	return gitRepo, nil
}

func (it *GitRepository) RemoteURL(_ context.Context, name string) (string, error) {
	remote, err := it.repo.Remote(name)
	if err != nil {
		return "", fmt.Errorf("failed to read remote %q: %w", name, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("remote %q has no URL", name)
	}
	return urls[0], nil
}

func (it *GitRepository) Modules(
	_ context.Context,
	revision, parentURL string,
) ([]entities.GitModuleInfo, error) {
	commit, err := it.commit(revision)
	if err != nil {
		return nil, err
	}

	key := commit.Hash.String() + " " + parentURL
	if cached, ok := it.modulesCache.Get(key); ok {
		return slices.Clone(cached), nil
	}

	file, err := commit.File(gitModulesFile)
	if errors.Is(err, object.ErrFileNotFound) {
		logger.Debugf("No %s in %s", gitModulesFile, commit.Hash)
		it.modulesCache.Add(key, nil)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s in %s: %w", gitModulesFile, commit.Hash, err)
	}

	content, err := file.Contents()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s in %s: %w", gitModulesFile, commit.Hash, err)
	}

	modules, err := ParseGitModules([]byte(content), parentURL)
	if err != nil {
		return nil, fmt.Errorf("commit %s: %w", commit.Hash, err)
	}
	it.modulesCache.Add(key, modules)
	return slices.Clone(modules), nil
}

func (it *GitRepository) CommitMessage(_ context.Context, revision string) ([]byte, error) {
	commit, err := it.commit(revision)
	if err != nil {
		return nil, err
	}
	return []byte(commit.Message), nil
}

// Push pushes through an anonymous remote so no remote has to be configured
// for remoteURL.
func (it *GitRepository) Push(
	ctx context.Context,
	remoteURL string,
	specs []entities.PushRefSpec,
) error {
	refSpecs := make([]config.RefSpec, 0, len(specs))
	for _, spec := range specs {
		source, err := it.pushSource(spec.LocalRef)
		if err != nil {
			return err
		}
		refSpec := config.RefSpec(source + ":" + spec.RemoteRef.String())
		if validateErr := refSpec.Validate(); validateErr != nil {
			return fmt.Errorf("invalid ref spec %q: %w", spec, validateErr)
		}
		logger.Debugf("Pushing %s as %s", spec, refSpec)
		refSpecs = append(refSpecs, refSpec)
	}

	//nolint:exhaustruct // anonymous remote only needs a name and URL
	remote := git.NewRemote(it.repo.Storer, &config.RemoteConfig{
		Name: pushRemoteName,
		URLs: []string{remoteURL},
	})

	//nolint:exhaustruct // defaults are fine for the remaining options
	err := remote.PushContext(ctx, &git.PushOptions{
		RemoteName: pushRemoteName,
		RefSpecs:   refSpecs,
	})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		logger.Infof("%s is already up to date", remoteURL)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to push to %q: %w", remoteURL, err)
	}
	return nil
}

// pushSource expands the local side of a push the way git does: a full ref
// name must exist, a short name is looked up as a branch, then as a tag, then
// as any revision, which is pushed by commit hash.
func (it *GitRepository) pushSource(local plumbing.ReferenceName) (string, error) {
	candidates := []plumbing.ReferenceName{local}
	if !strings.HasPrefix(local.String(), refsPrefix) {
		candidates = []plumbing.ReferenceName{
			plumbing.NewBranchReferenceName(local.String()),
			plumbing.NewTagReferenceName(local.String()),
		}
	}
	for _, name := range candidates {
		if _, err := it.repo.Reference(name, true); err == nil {
			return name.String(), nil
		}
	}

	if !strings.HasPrefix(local.String(), refsPrefix) {
		if hash, err := it.repo.ResolveRevision(plumbing.Revision(local)); err == nil {
			return hash.String(), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownLocalRef, local)
}

func (it *GitRepository) commit(revision string) (*object.Commit, error) {
	if revision == "" {
		revision = defaultRevision
	}
	hash, err := it.repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve revision %q: %w", revision, err)
	}
	commit, err := it.repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("failed to read commit %s: %w", hash, err)
	}
	return commit, nil
}

// ParseGitModules decodes a .gitmodules file. Relative URLs are resolved
// against parentURL and the modules are sorted by path.
func ParseGitModules(data []byte, parentURL string) ([]entities.GitModuleInfo, error) {
	decoded := config.NewModules()
	if err := decoded.Unmarshal(data); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", gitModulesFile, err)
	}

	modules := make([]entities.GitModuleInfo, 0, len(decoded.Submodules))
	for _, sub := range decoded.Submodules {
		modules = append(modules, entities.NewGitModuleInfo(
			sub.Name, sub.Path, sub.Branch, sub.URL, parentURL,
		))
	}
	slices.SortFunc(modules, func(a, b entities.GitModuleInfo) int {
		return strings.Compare(a.Path, b.Path)
	})
	return modules, nil
}
