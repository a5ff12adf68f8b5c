//go:build unit

package commands_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moroten/git-toprepo/internal/domain/commands"
)

func writeMessageFile(t *testing.T, content string, mode os.FileMode) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	require.NoError(t, os.WriteFile(path, []byte(content), mode))
	require.NoError(t, os.Chmod(path, mode))
	return path
}

func TestAnnotateCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should append the trailer of the subdirectory", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeMessageFile(t, "Fix the build\n", 0o640)
		cmd := commands.NewAnnotateCommand()

		// when
		err := cmd.Execute(context.Background(), commands.AnnotateOptions{
			MessageFile: path,
			Subdir:      "libs/extra",
			Hash:        "abc123",
		})

		// then
		require.NoError(t, err)
		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, "Fix the build\n\n^-- libs/extra abc123\n", string(content))
		info, statErr := os.Stat(path)
		require.NoError(t, statErr)
		assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
	})

	t.Run("should annotate the top repository when no subdirectory is given", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeMessageFile(t, "Subject\n\nBody\n", 0o600)
		cmd := commands.NewAnnotateCommand()

		// when
		err := cmd.Execute(context.Background(), commands.AnnotateOptions{MessageFile: path, Hash: "f00d"})

		// then
		require.NoError(t, err)
		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, "Subject\n\nBody\n^-- <top> f00d\n", string(content))
	})

	t.Run("should leave an annotated file unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeMessageFile(t, "Subject\n\n^-- <top> f00d\n", 0o600)
		cmd := commands.NewAnnotateCommand()

		// when
		err := cmd.Execute(context.Background(), commands.AnnotateOptions{MessageFile: path, Hash: "f00d"})

		// then
		require.NoError(t, err)
		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, "Subject\n\n^-- <top> f00d\n", string(content))
	})

	t.Run("should require a hash", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeMessageFile(t, "Subject\n", 0o600)
		cmd := commands.NewAnnotateCommand()

		// when
		err := cmd.Execute(context.Background(), commands.AnnotateOptions{MessageFile: path})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "hash is required")
	})

	t.Run("should fail on a missing file", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "missing")
		cmd := commands.NewAnnotateCommand()

		// when
		err := cmd.Execute(context.Background(), commands.AnnotateOptions{MessageFile: path, Hash: "f00d"})

		// then
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
