//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/moroten/git-toprepo/internal/domain/commands"
	"github.com/moroten/git-toprepo/internal/domain/entities"
)

// StubResolveCommand is a stub implementation of commands.Resolve.
type StubResolveCommand struct {
	ExecuteCallCount int
	Result           *commands.Resolution
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.ResolveOptions
}

var _ commands.Resolve = (*StubResolveCommand)(nil)

func (s *StubResolveCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.ResolveOptions,
) (*commands.Resolution, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}

// StubPushCommand is a stub implementation of commands.Push.
type StubPushCommand struct {
	ExecuteCallCount int
	Result           *commands.PushPlan
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.PushOptions
}

var _ commands.Push = (*StubPushCommand)(nil)

func (s *StubPushCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.PushOptions,
) (*commands.PushPlan, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}

// StubAnnotateCommand is a stub implementation of commands.Annotate.
type StubAnnotateCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.AnnotateOptions
}

var _ commands.Annotate = (*StubAnnotateCommand)(nil)

func (s *StubAnnotateCommand) Execute(_ context.Context, opts commands.AnnotateOptions) error {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteErr
}

// StubInspectCommand is a stub implementation of commands.Inspect.
type StubInspectCommand struct {
	ExecuteCallCount int
	Result           *commands.MessageInfo
	ExecuteErr       error
	LastOpts         commands.InspectOptions
}

var _ commands.Inspect = (*StubInspectCommand)(nil)

func (s *StubInspectCommand) Execute(
	_ context.Context,
	opts commands.InspectOptions,
) (*commands.MessageInfo, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}

// StubSquashCommand is a stub implementation of commands.Squash.
type StubSquashCommand struct {
	ExecuteCallCount int
	Result           []byte
	ExecuteErr       error
	LastOpts         commands.SquashOptions
}

var _ commands.Squash = (*StubSquashCommand)(nil)

func (s *StubSquashCommand) Execute(_ context.Context, opts commands.SquashOptions) ([]byte, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}
