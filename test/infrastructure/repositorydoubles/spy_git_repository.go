//go:build integration || unit || test

// Package repositorydoubles provides hand-written test doubles for the
// repository interfaces.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"

	"github.com/moroten/git-toprepo/internal/domain/entities"
	"github.com/moroten/git-toprepo/internal/domain/repositories"
)

// PushCall records one call to SpyGitRepository.Push.
type PushCall struct {
	RemoteURL string
	Specs     []entities.PushRefSpec
}

// SpyGitRepository implements repositories.GitRepository as a configurable spy.
type SpyGitRepository struct {
	// --- RemoteURL ---
	RemoteURLs map[string]string

	// --- Modules ---
	GitModules   []entities.GitModuleInfo
	ModulesErr   error
	ModulesCalls []string // parent URLs
	LastRevision string

	// --- CommitMessage ---
	Messages map[string]string

	// --- Push ---
	PushErr   error
	PushCalls []PushCall
}

var _ repositories.GitRepository = (*SpyGitRepository)(nil)

func (s *SpyGitRepository) RemoteURL(_ context.Context, name string) (string, error) {
	url, ok := s.RemoteURLs[name]
	if !ok {
		return "", fmt.Errorf("remote %q not found", name)
	}
	return url, nil
}

func (s *SpyGitRepository) Modules(
	_ context.Context,
	revision, parentURL string,
) ([]entities.GitModuleInfo, error) {
	s.LastRevision = revision
	s.ModulesCalls = append(s.ModulesCalls, parentURL)
	if s.ModulesErr != nil {
		return nil, s.ModulesErr
	}
	return s.GitModules, nil
}

func (s *SpyGitRepository) CommitMessage(_ context.Context, revision string) ([]byte, error) {
	message, ok := s.Messages[revision]
	if !ok {
		return nil, fmt.Errorf("failed to resolve revision %q", revision)
	}
	return []byte(message), nil
}

func (s *SpyGitRepository) Push(_ context.Context, remoteURL string, specs []entities.PushRefSpec) error {
	s.PushCalls = append(s.PushCalls, PushCall{RemoteURL: remoteURL, Specs: specs})
	return s.PushErr
}

// Opener returns a repositories.GitRepositoryOpener handing out this spy.
func (s *SpyGitRepository) Opener() repositories.GitRepositoryOpener {
	return func(_ string) (repositories.GitRepository, error) {
		return s, nil
	}
}

// FailingOpener returns an opener that always fails with err.
func FailingOpener(err error) repositories.GitRepositoryOpener {
	return func(_ string) (repositories.GitRepository, error) {
		return nil, err
	}
}
