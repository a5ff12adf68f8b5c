//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/moroten/git-toprepo/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	topFetchURL    string
	topPushURL     string
	repos          []entities.RepoConfig
	missingCommits entities.MissingCommits
}

// NewSettingsBuilder creates a new settings builder with sensible defaults.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		topFetchURL: "https://example.com/org/top.git",
	}
}

// WithTopFetchURL sets the top repository fetch URL.
func (b *SettingsBuilder) WithTopFetchURL(url string) *SettingsBuilder {
	b.topFetchURL = url
	return b
}

// WithTopPushURL sets the top repository push URL.
func (b *SettingsBuilder) WithTopPushURL(url string) *SettingsBuilder {
	b.topPushURL = url
	return b
}

// WithRepo appends a configured repository.
func (b *SettingsBuilder) WithRepo(repo entities.RepoConfig) *SettingsBuilder {
	b.repos = append(b.repos, repo)
	return b
}

// WithMissingCommits sets the missing commits list.
func (b *SettingsBuilder) WithMissingCommits(missing entities.MissingCommits) *SettingsBuilder {
	b.missingCommits = missing
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	return &entities.Settings{
		MissingCommits: b.missingCommits,
		TopFetchURL:    b.topFetchURL,
		TopPushURL:     b.topPushURL,
		Repos:          append([]entities.RepoConfig(nil), b.repos...),
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.topFetchURL = "https://example.com/org/top.git"
	b.topPushURL = ""
	b.repos = nil
	b.missingCommits = nil
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder:    b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		topFetchURL:    b.topFetchURL,
		topPushURL:     b.topPushURL,
		repos:          append([]entities.RepoConfig(nil), b.repos...),
		missingCommits: b.missingCommits,
	}
}
