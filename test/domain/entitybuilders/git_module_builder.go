//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/moroten/git-toprepo/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// GitModuleBuilder helps create test submodule declarations with a fluent interface.
type GitModuleBuilder struct {
	*testkit.BaseBuilder
	name      string
	path      string
	branch    string
	rawURL    string
	parentURL string
}

// NewGitModuleBuilder creates a new submodule builder with sensible defaults.
func NewGitModuleBuilder() *GitModuleBuilder {
	return &GitModuleBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "test-module",
		path:        "test-module",
		rawURL:      "../test-module.git",
	}
}

// WithName sets the submodule name.
func (b *GitModuleBuilder) WithName(name string) *GitModuleBuilder {
	b.name = name
	return b
}

// WithPath sets the submodule path.
func (b *GitModuleBuilder) WithPath(path string) *GitModuleBuilder {
	b.path = path
	return b
}

// WithBranch sets the tracked branch.
func (b *GitModuleBuilder) WithBranch(branch string) *GitModuleBuilder {
	b.branch = branch
	return b
}

// WithRawURL sets the URL as written in .gitmodules.
func (b *GitModuleBuilder) WithRawURL(url string) *GitModuleBuilder {
	b.rawURL = url
	return b
}

// WithParentURL sets the URL relative raw URLs are resolved against.
func (b *GitModuleBuilder) WithParentURL(url string) *GitModuleBuilder {
	b.parentURL = url
	return b
}

// Build creates the submodule (satisfies testkit.Builder interface).
func (b *GitModuleBuilder) Build() interface{} {
	return b.BuildGitModule()
}

// BuildGitModule creates the submodule with a concrete return type.
func (b *GitModuleBuilder) BuildGitModule() entities.GitModuleInfo {
	return entities.NewGitModuleInfo(b.name, b.path, b.branch, b.rawURL, b.parentURL)
}

// Reset clears the builder state, allowing it to be reused.
func (b *GitModuleBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-module"
	b.path = "test-module"
	b.branch = ""
	b.rawURL = "../test-module.git"
	b.parentURL = ""
	return b
}

// Clone creates a deep copy of the GitModuleBuilder.
func (b *GitModuleBuilder) Clone() testkit.Builder {
	return &GitModuleBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		path:        b.path,
		branch:      b.branch,
		rawURL:      b.rawURL,
		parentURL:   b.parentURL,
	}
}
