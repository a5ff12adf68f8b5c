//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moroten/git-toprepo/internal/domain/entities"
	"github.com/moroten/git-toprepo/test/domain/entitybuilders"
)

func newResolverFixture() (*entities.Settings, []entities.GitModuleInfo) {
	settings := entitybuilders.NewSettingsBuilder().
		WithTopFetchURL("https://github.com/org/top").
		WithTopPushURL("ssh://git@github.com/org/top").
		WithRepo(entitybuilders.NewRepoConfigBuilder().
			WithID("subrepo").
			WithRawURLs("../subrepo.git").
			WithFetchURL("https://github.com/org/subrepo.git").
			WithPushURL("ssh://git@github.com/subrepo/push").
			BuildRepoConfig()).
		BuildSettings()

	modules := []entities.GitModuleInfo{
		entitybuilders.NewGitModuleBuilder().
			WithName("subrepo").
			WithPath("sub").
			WithRawURL("../subrepo.git").
			WithParentURL(settings.TopFetchURL).
			BuildGitModule(),
		entitybuilders.NewGitModuleBuilder().
			WithName("libs/extra").
			WithPath("libs/extra").
			WithRawURL("../../other-org/extra").
			WithParentURL(settings.TopFetchURL).
			BuildGitModule(),
	}
	return settings, modules
}

func TestRemoteToRepo(t *testing.T) {
	t.Parallel()

	for _, remote := range []string{"", ".", "origin", "https://github.com/org/top", "ssh://git@github.com/org/top", "org/top.git"} {
		t.Run("should resolve "+remote+" to the top repository", func(t *testing.T) {
			t.Parallel()

			// given
			settings, modules := newResolverFixture()

			// when
			identity, module, ok := entities.RemoteToRepo(remote, modules, settings)

			// then
			require.True(t, ok)
			assert.True(t, identity.IsTop())
			assert.Equal(t, entities.TopRepoName, identity.String())
			assert.Nil(t, module)
		})
	}

	for _, remote := range []string{
		"https://github.com/org/subrepo.git",
		"https://github.com/org/subrepo",
		"ssh://git@github.com/subrepo/push",
		"subrepo/push",
		"../subrepo.git",
	} {
		t.Run("should resolve "+remote+" to the configured repository", func(t *testing.T) {
			t.Parallel()

			// given
			settings, modules := newResolverFixture()

			// when
			identity, module, ok := entities.RemoteToRepo(remote, modules, settings)

			// then
			require.True(t, ok)
			assert.False(t, identity.IsTop())
			assert.Equal(t, "subrepo", identity.ID())
			assert.Nil(t, module)
		})
	}

	t.Run("should resolve a submodule that is not configured to its name", func(t *testing.T) {
		t.Parallel()

		// given
		settings, modules := newResolverFixture()

		// when
		identity, module, ok := entities.RemoteToRepo("other-org/extra", modules, settings)

		// then
		require.True(t, ok)
		assert.Equal(t, "libs/extra", identity.ID())
		require.NotNil(t, module)
		assert.Equal(t, "libs/extra", module.Path)
		assert.Equal(t, "https://github.com/other-org/extra", module.URL)
	})

	t.Run("should resolve a submodule by its raw URL", func(t *testing.T) {
		t.Parallel()

		// given
		settings, modules := newResolverFixture()

		// when
		identity, module, ok := entities.RemoteToRepo("../../other-org/extra", modules, settings)

		// then
		require.True(t, ok)
		assert.Equal(t, "libs/extra", identity.ID())
		require.NotNil(t, module)
	})

	t.Run("should prefer the configured id for a configured submodule", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entitybuilders.NewSettingsBuilder().
			WithTopFetchURL("https://github.com/org/top").
			WithRepo(entitybuilders.NewRepoConfigBuilder().
				WithID("renamed").
				WithFetchURL("https://github.com/org/lib").
				BuildRepoConfig()).
			BuildSettings()
		modules := []entities.GitModuleInfo{
			entitybuilders.NewGitModuleBuilder().
				WithName("lib-module").
				WithRawURL("https://mirror.example.com/lib").
				BuildGitModule(),
			entitybuilders.NewGitModuleBuilder().
				WithName("lib").
				WithRawURL("../lib.git").
				WithParentURL(settings.TopFetchURL).
				BuildGitModule(),
		}
		settings.Repos[0].RawURLs = []string{"../lib.git"}
		settings.Repos[0].FetchURL = "https://github.com/org/lib-fork"
		settings.Repos[0].PushURL = settings.Repos[0].FetchURL

		// when
		identity, module, ok := entities.RemoteToRepo("https://github.com/org/lib", modules, settings)

		// then
		require.True(t, ok)
		assert.Equal(t, "renamed", identity.ID())
		require.NotNil(t, module)
		assert.Equal(t, "lib", module.Name)
	})

	t.Run("should return false for an unknown remote", func(t *testing.T) {
		t.Parallel()

		// given
		settings, modules := newResolverFixture()

		// when
		_, module, ok := entities.RemoteToRepo("https://example.com/unknown", modules, settings)

		// then
		assert.False(t, ok)
		assert.Nil(t, module)
	})

	t.Run("should not confuse a repository named top with the top repository", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entitybuilders.NewSettingsBuilder().
			WithTopFetchURL("https://github.com/org/monorepo").
			WithRepo(entitybuilders.NewRepoConfigBuilder().
				WithID(entities.TopRepoName).
				WithFetchURL("https://github.com/org/top").
				BuildRepoConfig()).
			BuildSettings()

		// when
		identity, _, ok := entities.RemoteToRepo("org/top", nil, settings)

		// then
		require.True(t, ok)
		assert.False(t, identity.IsTop())
		assert.Equal(t, entities.TopRepoName, identity.ID())
	})
}

func TestURLMatches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		remote    string
		candidate string
		expected  bool
	}{
		{name: "identical", remote: "https://h/org/repo", candidate: "https://h/org/repo", expected: true},
		{name: "git suffix ignored", remote: "https://h/org/repo", candidate: "https://h/org/repo.git", expected: true},
		{name: "trailing slash ignored", remote: "org/repo/", candidate: "https://h/org/repo", expected: true},
		{name: "segment aligned suffix", remote: "org/repo", candidate: "https://h/org/repo", expected: true},
		{name: "single segment suffix", remote: "repo", candidate: "https://h/org/repo", expected: true},
		{name: "scp host boundary", remote: "org/repo", candidate: "git@h:org/repo", expected: true},
		{name: "rooted suffix", remote: "/org/repo", candidate: "https://h/org/repo", expected: true},
		{name: "partial segment", remote: "po", candidate: "https://h/org/repo", expected: false},
		{name: "partial leading segment", remote: "rg/repo", candidate: "https://h/org/repo", expected: false},
		{name: "case sensitive", remote: "Org/Repo", candidate: "https://h/org/repo", expected: false},
		{name: "empty candidate", remote: "repo", candidate: "", expected: false},
		{name: "empty remote", remote: "", candidate: "https://h/org/repo", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			result := entities.URLMatches(tt.remote, tt.candidate)

			// then
			assert.Equal(t, tt.expected, result)
		})
	}
}
