package entities

// GitModuleInfo is one submodule declared in .gitmodules.
type GitModuleInfo struct {
	Name   string
	Path   string // directory relative to the top repository root
	Branch string
	URL    string // RawURL resolved against the top repository URL
	RawURL string // as written in .gitmodules, possibly relative
}

// NewGitModuleInfo builds a module entry, resolving rawURL against parentURL.
func NewGitModuleInfo(name, path, branch, rawURL, parentURL string) GitModuleInfo {
	return GitModuleInfo{
		Name:   name,
		Path:   path,
		Branch: branch,
		URL:    JoinSubmoduleURL(parentURL, rawURL),
		RawURL: rawURL,
	}
}
