package commands

// ResolveRemote exports resolveRemote for testing.
var ResolveRemote = resolveRemote //nolint:gochecknoglobals // test export
