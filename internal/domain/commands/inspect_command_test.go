//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moroten/git-toprepo/internal/domain/commands"
	"github.com/moroten/git-toprepo/internal/domain/entities"
	doubles "github.com/moroten/git-toprepo/test/infrastructure/repositorydoubles"
)

func TestInspectCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should recover hashes and topic", func(t *testing.T) {
		t.Parallel()

		// given
		repo := &doubles.SpyGitRepository{Messages: map[string]string{
			"HEAD": "Subject\n\nBody\n\nTopic: speedup\n^-- <top> t1\n^-- sub s1\n",
		}}
		cmd := commands.NewInspectCommand(repo.Opener())

		// when
		info, err := cmd.Execute(context.Background(), commands.InspectOptions{Revision: "HEAD", Subdir: "sub"})

		// then
		require.NoError(t, err)
		assert.Equal(t, &commands.MessageInfo{
			Hash:       "s1",
			HasHash:    true,
			TopHash:    "t1",
			HasTopHash: true,
			Topic:      "speedup",
			HasTopic:   true,
		}, info)
	})

	t.Run("should skip the subdirectory hash when no subdirectory is given", func(t *testing.T) {
		t.Parallel()

		// given
		repo := &doubles.SpyGitRepository{Messages: map[string]string{"HEAD": "Subject\n\n^-- sub s1\n"}}
		cmd := commands.NewInspectCommand(repo.Opener())

		// when
		info, err := cmd.Execute(context.Background(), commands.InspectOptions{Revision: "HEAD"})

		// then
		require.NoError(t, err)
		assert.False(t, info.HasHash)
		assert.False(t, info.HasTopHash)
		assert.False(t, info.HasTopic)
	})

	t.Run("should fail on duplicate topics", func(t *testing.T) {
		t.Parallel()

		// given
		repo := &doubles.SpyGitRepository{Messages: map[string]string{
			"HEAD": "Subject\n\nTopic: a\nTopic: b\n",
		}}
		cmd := commands.NewInspectCommand(repo.Opener())

		// when
		_, err := cmd.Execute(context.Background(), commands.InspectOptions{Revision: "HEAD"})

		// then
		require.ErrorIs(t, err, entities.ErrMultipleTrailers)
	})

	t.Run("should fail on an unknown revision", func(t *testing.T) {
		t.Parallel()

		// given
		repo := &doubles.SpyGitRepository{}
		cmd := commands.NewInspectCommand(repo.Opener())

		// when
		_, err := cmd.Execute(context.Background(), commands.InspectOptions{Revision: "nope"})

		// then
		require.Error(t, err)
	})
}
