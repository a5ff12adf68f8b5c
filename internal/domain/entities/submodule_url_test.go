//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moroten/git-toprepo/internal/domain/entities"
)

func TestJoinSubmoduleURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		parent   string
		raw      string
		expected string
	}{
		{
			name:     "current directory keeps the parent as base",
			parent:   "https://github.com/org/repo",
			raw:      "./foo",
			expected: "https://github.com/org/repo/foo",
		},
		{
			name:     "parent directory replaces the last segment",
			parent:   "https://github.com/org/repo",
			raw:      "../foo",
			expected: "https://github.com/org/foo",
		},
		{
			name:     "two parent directories reach the host",
			parent:   "https://github.com/org/repo",
			raw:      "../../foo",
			expected: "https://github.com/foo",
		},
		{
			name:     "surplus parent directories are kept literally",
			parent:   "https://github.com/org/repo",
			raw:      "../../../foo",
			expected: "https://github.com/../foo",
		},
		{
			name:     "bare relative path behaves like current directory",
			parent:   "https://github.com/org/repo",
			raw:      "foo",
			expected: "https://github.com/org/repo/foo",
		},
		{
			name:     "duplicate slashes collapse",
			parent:   "https://github.com/org/repo",
			raw:      ".//foo",
			expected: "https://github.com/org/repo/foo",
		},
		{
			name:     "trailing slash on parent is ignored",
			parent:   "https://github.com/org/repo/",
			raw:      "../foo",
			expected: "https://github.com/org/foo",
		},
		{
			name:     "absolute URL is returned unchanged",
			parent:   "https://github.com/org/repo",
			raw:      "ssh://git@example.com/other/repo.git",
			expected: "ssh://git@example.com/other/repo.git",
		},
		{
			name:     "scp-like URL is returned unchanged",
			parent:   "https://github.com/org/repo",
			raw:      "git@example.com:other/repo.git",
			expected: "git@example.com:other/repo.git",
		},
		{
			name:     "scp-like parent keeps its host",
			parent:   "git@github.com:org/repo.git",
			raw:      "../sub.git",
			expected: "git@github.com:org/sub.git",
		},
		{
			name:     "relative parent without scheme",
			parent:   "parent",
			raw:      "../foo",
			expected: "foo",
		},
		{
			name:     "relative parent overflow",
			parent:   "parent",
			raw:      "../../foo",
			expected: "../foo",
		},
		{
			name:     "rooted local parent",
			parent:   "/srv/git/top",
			raw:      "../sub",
			expected: "/srv/git/sub",
		},
		{
			name:     "inner parent directory pops the previous segment",
			parent:   "https://github.com/org/repo",
			raw:      "./a/../b",
			expected: "https://github.com/org/repo/b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			result := entities.JoinSubmoduleURL(tt.parent, tt.raw)

			// then
			assert.Equal(t, tt.expected, result)
		})
	}

	t.Run("should give the same result with and without no-op segments", func(t *testing.T) {
		t.Parallel()

		// given
		parent := "https://gerrit.example.com/a/top"

		// when
		plain := entities.JoinSubmoduleURL(parent, "x")
		dotted := entities.JoinSubmoduleURL(parent, "./x")
		doubled := entities.JoinSubmoduleURL(parent, ".//x")

		// then
		assert.Equal(t, plain, dotted)
		assert.Equal(t, dotted, doubled)
	})
}

func TestRepositoryBasename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{name: "https URL", url: "https://github.com/org/repo", expected: "repo"},
		{name: "https URL with .git", url: "https://github.com/org/repo.git", expected: "repo"},
		{name: "scp-like host separator", url: "git://github.com:repo", expected: "repo"},
		{name: "backslash separated", url: `abc\org\repo`, expected: "repo"},
		{name: "trailing slash", url: "https://github.com/org/repo/", expected: "repo"},
		{name: "no separator", url: "repo", expected: "repo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			result := entities.RepositoryBasename(tt.url)

			// then
			assert.Equal(t, tt.expected, result)
		})
	}
}
