//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/moroten/git-toprepo/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// RepoConfigBuilder helps create test repository configurations with a fluent interface.
type RepoConfigBuilder struct {
	*testkit.BaseBuilder
	id       string
	name     string
	enabled  bool
	rawURLs  []string
	fetchURL string
	pushURL  string
}

// NewRepoConfigBuilder creates a new repository configuration builder with sensible defaults.
func NewRepoConfigBuilder() *RepoConfigBuilder {
	return &RepoConfigBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		id:          "test-repo",
		enabled:     true,
		fetchURL:    "https://example.com/org/test-repo.git",
	}
}

// WithID sets the repository id.
func (b *RepoConfigBuilder) WithID(id string) *RepoConfigBuilder {
	b.id = id
	return b
}

// WithName sets the display name.
func (b *RepoConfigBuilder) WithName(name string) *RepoConfigBuilder {
	b.name = name
	return b
}

// WithEnabled sets whether the repository is enabled.
func (b *RepoConfigBuilder) WithEnabled(enabled bool) *RepoConfigBuilder {
	b.enabled = enabled
	return b
}

// WithRawURLs sets the known URL spellings.
func (b *RepoConfigBuilder) WithRawURLs(urls ...string) *RepoConfigBuilder {
	b.rawURLs = urls
	return b
}

// WithFetchURL sets the fetch URL.
func (b *RepoConfigBuilder) WithFetchURL(url string) *RepoConfigBuilder {
	b.fetchURL = url
	return b
}

// WithPushURL sets the push URL.
func (b *RepoConfigBuilder) WithPushURL(url string) *RepoConfigBuilder {
	b.pushURL = url
	return b
}

// Build creates the repository configuration (satisfies testkit.Builder interface).
func (b *RepoConfigBuilder) Build() interface{} {
	return b.BuildRepoConfig()
}

// BuildRepoConfig creates the repository configuration with a concrete return type.
// Name and push URL default to the id and fetch URL like the settings file does.
func (b *RepoConfigBuilder) BuildRepoConfig() entities.RepoConfig {
	repo := entities.RepoConfig{
		ID:       b.id,
		Name:     b.name,
		Enabled:  b.enabled,
		RawURLs:  append([]string(nil), b.rawURLs...),
		FetchURL: b.fetchURL,
		PushURL:  b.pushURL,
	}
	if repo.Name == "" {
		repo.Name = repo.ID
	}
	if repo.PushURL == "" {
		repo.PushURL = repo.FetchURL
	}
	return repo
}

// Reset clears the builder state, allowing it to be reused.
func (b *RepoConfigBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.id = "test-repo"
	b.name = ""
	b.enabled = true
	b.rawURLs = nil
	b.fetchURL = "https://example.com/org/test-repo.git"
	b.pushURL = ""
	return b
}

// Clone creates a deep copy of the RepoConfigBuilder.
func (b *RepoConfigBuilder) Clone() testkit.Builder {
	return &RepoConfigBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		id:          b.id,
		name:        b.name,
		enabled:     b.enabled,
		rawURLs:     append([]string(nil), b.rawURLs...),
		fetchURL:    b.fetchURL,
		pushURL:     b.pushURL,
	}
}
