package entities

import (
	"strings"
)

const originRemote = "origin"

// RemoteToRepo finds the repository a user-supplied remote refers to. The
// remote may be an alias ("", "." or "origin" mean the top repository), a full
// fetch or push URL, a trailing part of one such as "org/repo", or the raw URL
// written in .gitmodules. Candidates are tried in this order, first match wins:
// the top repository, the configured repositories in declaration order, then
// the submodules.
//
// A submodule match also returns the module. Its identity is the configured
// repository with the same URL when there is one, the module name otherwise.
func RemoteToRepo(
	remote string,
	modules []GitModuleInfo,
	settings *Settings,
) (RepoIdentity, *GitModuleInfo, bool) {
	if remote == "" || remote == currentSegment || remote == originRemote ||
		urlMatchesAny(remote, settings.TopFetchURL, settings.TopPushURL) {
		return TopRepo(), nil, true
	}

	for _, repo := range settings.Repos {
		if urlMatchesAny(remote, repo.URLs()...) {
			return NamedRepo(repo.ID), nil, true
		}
	}

	for i := range modules {
		module := &modules[i]
		resolved := JoinSubmoduleURL(settings.TopFetchURL, module.RawURL)
		if !urlMatchesAny(remote, resolved, module.URL, module.RawURL) {
			continue
		}
		if repo, ok := configuredRepoFor(settings, module, resolved); ok {
			return NamedRepo(repo.ID), module, true
		}
		return NamedRepo(module.Name), module, true
	}

	return RepoIdentity{}, nil, false
}

// configuredRepoFor returns the configured repository declaring the module URL.
func configuredRepoFor(settings *Settings, module *GitModuleInfo, resolved string) (*RepoConfig, bool) {
	for i := range settings.Repos {
		repo := &settings.Repos[i]
		for _, url := range repo.URLs() {
			if url == "" {
				continue
			}
			if url == module.RawURL || normalizeURL(url) == normalizeURL(resolved) {
				return repo, true
			}
		}
	}
	return nil, false
}

func urlMatchesAny(remote string, candidates ...string) bool {
	for _, candidate := range candidates {
		if urlMatches(remote, candidate) {
			return true
		}
	}
	return false
}

// urlMatches reports whether remote names candidate: equal once trailing '/'
// and ".git" are dropped, or equal to a trailing run of whole path segments
// of it. Comparison is case-sensitive.
func urlMatches(remote, candidate string) bool {
	remote, candidate = normalizeURL(remote), normalizeURL(candidate)
	if remote == "" || candidate == "" {
		return false
	}
	if remote == candidate {
		return true
	}
	if !strings.HasSuffix(candidate, remote) {
		return false
	}
	if strings.HasPrefix(remote, "/") || strings.HasPrefix(remote, ":") {
		return true
	}
	boundary := candidate[len(candidate)-len(remote)-1]
	return boundary == '/' || boundary == ':'
}

func normalizeURL(url string) string {
	return strings.TrimSuffix(strings.TrimRight(url, "/"), ".git")
}
