package entities

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
)

const (
	// TopSubdir is the subdir token used in provenance trailers of commits
	// that come from the top repository itself.
	TopSubdir = "<top>"

	// BoringSubject is the subject of commits that only move submodule pointers.
	BoringSubject = "Update git submodules"

	provenancePrefix = "^-- "
	topicKey         = "Topic"
	lineTrimSet      = " \t\r"
	messageTrimSet   = " \t\r\n"
)

// ErrMultipleTrailers is returned when a trailer expected once occurs several times.
var ErrMultipleTrailers = errors.New("multiple trailers")

// Annotate appends the provenance trailer "^-- <subdir> <hash>" to a commit
// message. Trailing blank lines are dropped first, the last text line is kept
// byte for byte. A message with a body gets the trailer attached to its last
// paragraph, a bare subject gets it as a new paragraph. The result always ends
// with a single newline, and a message that already carries the exact same
// trailer is only normalized.
func Annotate(message, subdir, hash []byte) []byte {
	footer := provenanceLine(subdir, hash)
	body := trimTrailingBlankLines(message)
	if len(body) == 0 {
		return append(footer, '\n')
	}

	out := make([]byte, 0, len(body)+len(footer)+3) //nolint:mnd // two newlines plus separator
	out = append(out, body...)
	out = append(out, '\n')
	if hasLine(body, footer) {
		return out
	}
	if !hasBody(body) {
		out = append(out, '\n')
	}
	out = append(out, footer...)
	return append(out, '\n')
}

// TryParseCommitHashFromMessage returns the hash of the first provenance
// trailer recorded for subdir. The subdir must match byte for byte.
func TryParseCommitHashFromMessage(message, subdir []byte) ([]byte, bool) {
	prefix := provenanceLine(subdir, nil)
	for line := range bytes.Lines(message) {
		line = bytes.TrimRight(line, messageTrimSet)
		if !bytes.HasPrefix(line, prefix) {
			continue
		}
		if hash := bytes.TrimSpace(line[len(prefix):]); len(hash) > 0 {
			return bytes.Clone(hash), true
		}
	}
	return nil, false
}

// TryParseTopHashFromMessage returns the hash recorded for the top repository.
func TryParseTopHashFromMessage(message []byte) ([]byte, bool) {
	return TryParseCommitHashFromMessage(message, []byte(TopSubdir))
}

// TryGetTopicFromMessage returns the value of the "Topic" trailer. Only the
// final trailer block is searched, so a "Topic:" line in the body is ignored.
func TryGetTopicFromMessage(message []byte) (string, bool, error) {
	var topics []string
	for _, line := range trailerBlock(message) {
		key, value, ok := splitTrailer(line)
		if ok && string(key) == topicKey {
			topics = append(topics, string(value))
		}
	}

	switch len(topics) {
	case 0:
		return "", false, nil
	case 1:
		return topics[0], true, nil
	default:
		return "", false, fmt.Errorf(
			"%w: expected a single footer '%s: <topic>', found %d",
			ErrMultipleTrailers, topicKey, len(topics),
		)
	}
}

// JoinAnnotatedCommitMessages merges the messages of squashed commits.
// Messages with real content come first and submodule bumps last, each group
// keeping its input order. Messages are separated by a blank line and blank
// messages are dropped.
func JoinAnnotatedCommitMessages(messages [][]byte) []byte {
	var nice, boring [][]byte
	for _, message := range messages {
		trimmed := trimTrailingBlankLines(message)
		if len(trimmed) == 0 {
			continue
		}
		if isBoringMessage(trimmed) {
			boring = append(boring, trimmed)
		} else {
			nice = append(nice, trimmed)
		}
	}

	var out []byte
	for i, message := range slices.Concat(nice, boring) {
		if i > 0 {
			out = append(out, '\n')
		}
		out = append(out, message...)
		out = append(out, '\n')
	}
	return out
}

func provenanceLine(subdir, hash []byte) []byte {
	line := make([]byte, 0, len(provenancePrefix)+len(subdir)+len(hash)+1)
	line = append(line, provenancePrefix...)
	line = append(line, subdir...)
	line = append(line, ' ')
	return append(line, hash...)
}

// trimTrailingBlankLines drops the final newline and every whitespace-only
// line before it.
func trimTrailingBlankLines(message []byte) []byte {
	rest := bytes.TrimRight(message, "\n")
	for len(rest) > 0 {
		start := bytes.LastIndexByte(rest, '\n') + 1
		if len(bytes.TrimSpace(rest[start:])) > 0 {
			return rest
		}
		rest = bytes.TrimRight(rest[:start], "\n")
	}
	return rest
}

func hasLine(message, want []byte) bool {
	for line := range bytes.Lines(message) {
		if bytes.Equal(bytes.TrimRight(line, messageTrimSet), want) {
			return true
		}
	}
	return false
}

// hasBody reports whether a blank line follows the first non-blank line.
func hasBody(message []byte) bool {
	seenText := false
	for line := range bytes.Lines(message) {
		blank := len(bytes.TrimSpace(line)) == 0
		if blank && seenText {
			return true
		}
		seenText = seenText || !blank
	}
	return false
}

// isBoringMessage reports whether a message is an automatic submodule bump:
// either its subject says so, or it holds nothing but "<top>" trailers.
func isBoringMessage(message []byte) bool {
	subject, _, _ := bytes.Cut(message, []byte("\n"))
	if string(bytes.TrimSpace(subject)) == BoringSubject {
		return true
	}

	topPrefix := provenanceLine([]byte(TopSubdir), nil)
	for line := range bytes.Lines(message) {
		line = bytes.TrimSpace(line)
		if len(line) > 0 && !bytes.HasPrefix(line, topPrefix) {
			return false
		}
	}
	return true
}

// trailerBlock returns the lines of the last paragraph when every one of them
// is a trailer. The subject paragraph never counts. The message is scanned
// once from its end.
func trailerBlock(message []byte) [][]byte {
	var block [][]byte
	rest := bytes.TrimRight(message, messageTrimSet)
	for len(rest) > 0 {
		start := bytes.LastIndexByte(rest, '\n') + 1
		line := bytes.TrimRight(rest[start:], lineTrimSet)
		if len(line) == 0 {
			slices.Reverse(block)
			return block
		}
		if start == 0 || !isTrailerLine(line) {
			return nil
		}
		block = append(block, line)
		rest = rest[:start-1]
	}
	return nil
}

func isTrailerLine(line []byte) bool {
	if bytes.HasPrefix(line, []byte(provenancePrefix)) {
		return true
	}
	_, _, ok := splitTrailer(line)
	return ok
}

// splitTrailer splits a "Key: value" line. Keys are made of ASCII letters,
// digits and '-', and the ':' must be followed by whitespace or end the line.
func splitTrailer(line []byte) ([]byte, []byte, bool) {
	colon := bytes.IndexByte(line, ':')
	if colon <= 0 {
		return nil, nil, false
	}
	key := line[:colon]
	for _, c := range key {
		if !isTrailerKeyByte(c) {
			return nil, nil, false
		}
	}
	rest := line[colon+1:]
	if len(rest) > 0 && rest[0] != ' ' && rest[0] != '\t' {
		return nil, nil, false
	}
	return key, bytes.TrimSpace(rest), true
}

func isTrailerKeyByte(c byte) bool {
	return c == '-' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}
