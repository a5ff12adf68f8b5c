package entities

// TopRepoName is how the top repository is shown to users.
const TopRepoName = "top"

type repoKind int

const (
	repoKindNamed repoKind = iota
	repoKindTop
)

// RepoIdentity is either the top repository or a sub repository named by its
// id. A sub repository whose id happens to be "top" is still a named one.
type RepoIdentity struct {
	kind repoKind
	id   string
}

// TopRepo returns the identity of the top repository.
func TopRepo() RepoIdentity {
	return RepoIdentity{kind: repoKindTop}
}

// NamedRepo returns the identity of a sub repository.
func NamedRepo(id string) RepoIdentity {
	return RepoIdentity{kind: repoKindNamed, id: id}
}

// IsTop reports whether the identity is the top repository.
func (it RepoIdentity) IsTop() bool {
	return it.kind == repoKindTop
}

// ID returns the sub repository id, or "" for the top repository.
func (it RepoIdentity) ID() string {
	return it.id
}

func (it RepoIdentity) String() string {
	if it.IsTop() {
		return TopRepoName
	}
	return it.id
}
