//go:build unit

package entities_test

import (
	"testing"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moroten/git-toprepo/internal/domain/entities"
)

func TestParsePushRefSpec(t *testing.T) {
	t.Parallel()

	t.Run("should keep both sides verbatim when a colon is present", func(t *testing.T) {
		t.Parallel()

		// given
		spec := "abc:refs/def"

		// when
		result, err := entities.ParsePushRefSpec(spec)

		// then
		require.NoError(t, err)
		assert.Equal(t, plumbing.ReferenceName("abc"), result.LocalRef)
		assert.Equal(t, plumbing.ReferenceName("refs/def"), result.RemoteRef)
	})

	t.Run("should expand a branch name on both sides", func(t *testing.T) {
		t.Parallel()

		// given
		spec := "main"

		// when
		result, err := entities.ParsePushRefSpec(spec)

		// then
		require.NoError(t, err)
		assert.Equal(t, plumbing.ReferenceName("refs/heads/main"), result.LocalRef)
		assert.Equal(t, plumbing.ReferenceName("refs/heads/main"), result.RemoteRef)
	})

	t.Run("should expand a branch name containing a slash", func(t *testing.T) {
		t.Parallel()

		// given
		spec := "pr/foo"

		// when
		result, err := entities.ParsePushRefSpec(spec)

		// then
		require.NoError(t, err)
		assert.Equal(t, plumbing.ReferenceName("refs/heads/pr/foo"), result.LocalRef)
		assert.Equal(t, result.LocalRef, result.RemoteRef)
	})

	t.Run("should not expand a fully qualified ref", func(t *testing.T) {
		t.Parallel()

		// given
		spec := "refs/tags/v1.0.0"

		// when
		result, err := entities.ParsePushRefSpec(spec)

		// then
		require.NoError(t, err)
		assert.Equal(t, plumbing.ReferenceName("refs/tags/v1.0.0"), result.LocalRef)
		assert.Equal(t, plumbing.ReferenceName("refs/tags/v1.0.0"), result.RemoteRef)
	})

	t.Run("should fail when more than one colon is present", func(t *testing.T) {
		t.Parallel()

		// given
		spec := "a:b:c"

		// when
		_, err := entities.ParsePushRefSpec(spec)

		// then
		require.ErrorIs(t, err, entities.ErrInvalidRefSpec)
		assert.Contains(t, err.Error(), "multiple ':'")
	})

	t.Run("should fail on empty input", func(t *testing.T) {
		t.Parallel()

		// given
		spec := ""

		// when
		_, err := entities.ParsePushRefSpec(spec)

		// then
		require.ErrorIs(t, err, entities.ErrInvalidRefSpec)
	})

	t.Run("should fail when one side is empty", func(t *testing.T) {
		t.Parallel()

		// given
		spec := "main:"

		// when
		_, err := entities.ParsePushRefSpec(spec)

		// then
		require.ErrorIs(t, err, entities.ErrInvalidRefSpec)
	})

	t.Run("should render the git form", func(t *testing.T) {
		t.Parallel()

		// given
		spec, err := entities.ParsePushRefSpec("main")
		require.NoError(t, err)

		// when
		result := spec.String()

		// then
		assert.Equal(t, "refs/heads/main:refs/heads/main", result)
	})
}
