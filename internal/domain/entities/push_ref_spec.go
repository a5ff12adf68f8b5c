package entities

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
)

const refsPrefix = "refs/"

// ErrInvalidRefSpec is returned when a push ref spec cannot be parsed.
var ErrInvalidRefSpec = errors.New("invalid ref spec")

// PushRefSpec maps a local ref onto the ref to update on the remote.
type PushRefSpec struct {
	LocalRef  plumbing.ReferenceName
	RemoteRef plumbing.ReferenceName
}

// ParsePushRefSpec parses "local:remote" or a single branch name.
// Both sides of "local:remote" are kept verbatim. A single name that is not
// already under "refs/" is expanded to "refs/heads/<name>" on both sides.
func ParsePushRefSpec(spec string) (PushRefSpec, error) {
	switch strings.Count(spec, ":") {
	case 0:
		if spec == "" {
			return PushRefSpec{}, fmt.Errorf("%w: empty ref spec", ErrInvalidRefSpec)
		}
		ref := plumbing.ReferenceName(spec)
		if !strings.HasPrefix(spec, refsPrefix) {
			ref = plumbing.NewBranchReferenceName(spec)
		}
		return PushRefSpec{LocalRef: ref, RemoteRef: ref}, nil
	case 1:
		local, remote, _ := strings.Cut(spec, ":")
		if local == "" || remote == "" {
			return PushRefSpec{}, fmt.Errorf("%w: empty side in %q", ErrInvalidRefSpec, spec)
		}
		return PushRefSpec{
			LocalRef:  plumbing.ReferenceName(local),
			RemoteRef: plumbing.ReferenceName(remote),
		}, nil
	default:
		return PushRefSpec{}, fmt.Errorf("%w: multiple ':' in %q", ErrInvalidRefSpec, spec)
	}
}

// String renders the spec in the "local:remote" form git understands.
func (it PushRefSpec) String() string {
	return it.LocalRef.String() + ":" + it.RemoteRef.String()
}
