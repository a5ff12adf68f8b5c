package entities

import (
	"strings"
)

const (
	schemeSeparator = "://"
	parentSegment   = ".."
	currentSegment  = "."
)

// JoinSubmoduleURL resolves a submodule URL the way git does for relative
// entries in .gitmodules.
//
// Absolute URLs (a scheme, an scp-like "host:path" or a rooted path) are
// returned unchanged. Anything else is resolved against parentURL, where "./"
// keeps the parent repository itself as the base and every "../" removes one
// trailing path segment. Empty segments collapse. When "../" runs past the
// first path segment no error is raised; the surplus is kept as literal ".."
// segments in front of the remainder.
func JoinSubmoduleURL(parentURL, rawURL string) string {
	if isAbsoluteURL(rawURL) {
		return rawURL
	}

	root, separator, segments := splitURLRoot(parentURL)
	overflow := 0
	for _, token := range strings.Split(rawURL, "/") {
		switch token {
		case "", currentSegment:
			continue
		case parentSegment:
			if len(segments) > 0 {
				segments = segments[:len(segments)-1]
			} else {
				overflow++
			}
		default:
			segments = append(segments, token)
		}
	}

	parts := make([]string, 0, overflow+len(segments))
	for range overflow {
		parts = append(parts, parentSegment)
	}
	parts = append(parts, segments...)

	path := strings.Join(parts, "/")
	switch {
	case path == "" && root == "":
		return currentSegment
	case path == "":
		return root
	default:
		return root + separator + path
	}
}

// RepositoryBasename returns a short display name for a repository URL:
// the last path component without a ".git" suffix. "/", "\" and the
// scp-like ':' host separator all count as component separators.
func RepositoryBasename(url string) string {
	trimmed := strings.TrimRight(url, `/\`)
	trimmed = strings.TrimSuffix(trimmed, ".git")
	if idx := strings.LastIndexAny(trimmed, `/\:`); idx >= 0 {
		return trimmed[idx+1:]
	}
	return trimmed
}

func isAbsoluteURL(url string) bool {
	if strings.Contains(url, schemeSeparator) {
		return true
	}
	if strings.HasPrefix(url, "/") {
		return true
	}
	return scpColonIndex(url) >= 0
}

// scpColonIndex returns the index of the host separator of an scp-like
// "[user@]host:path" URL, or -1. Like git, a ':' only counts when no '/'
// comes before it.
func scpColonIndex(url string) int {
	colon := strings.Index(url, ":")
	if colon <= 0 {
		return -1
	}
	if slash := strings.Index(url, "/"); slash >= 0 && slash < colon {
		return -1
	}
	return colon
}

// splitURLRoot splits a URL into the part "../" may never remove (scheme and
// host, scp host, or the leading '/'), the separator to put between that root
// and the path, and the non-empty path segments.
func splitURLRoot(url string) (string, string, []string) {
	if scheme, rest, ok := strings.Cut(url, schemeSeparator); ok {
		host, path, _ := strings.Cut(rest, "/")
		return scheme + schemeSeparator + host, "/", splitSegments(path)
	}
	if colon := scpColonIndex(url); colon >= 0 {
		root, path := url[:colon+1], url[colon+1:]
		if strings.HasPrefix(path, "/") {
			root += "/"
		}
		return root, "", splitSegments(path)
	}
	if strings.HasPrefix(url, "/") {
		return "/", "", splitSegments(url)
	}
	return "", "", splitSegments(url)
}

func splitSegments(path string) []string {
	segments := make([]string, 0, strings.Count(path, "/")+1)
	for _, segment := range strings.Split(path, "/") {
		if segment == "" || segment == currentSegment {
			continue
		}
		segments = append(segments, segment)
	}
	return segments
}
