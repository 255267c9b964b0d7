package menu

import "strings"

// PathSep separates segments in a full menu path. Double-colon is
// shell-friendly and effectively never appears in real menu titles; when
// it does, EscapeTitle keeps the round trip lossless.
const PathSep = "::"

const escapedSep = `\::`

// EscapeTitle escapes literal "::" in a menu title so it is not confused
// with the path separator.
func EscapeTitle(title string) string {
	if !strings.Contains(title, PathSep) {
		return title
	}
	return strings.ReplaceAll(title, PathSep, escapedSep)
}

// UnescapeSegment converts escaped separators in one path segment back
// to literal "::".
func UnescapeSegment(segment string) string {
	if !strings.Contains(segment, escapedSep) {
		return segment
	}
	return strings.ReplaceAll(segment, escapedSep, PathSep)
}

// SplitPath splits a full path on unescaped separators. Escaped
// separators stay inside their segment; callers unescape each segment
// with UnescapeSegment. Splitting the empty string yields one empty
// segment.
func SplitPath(path string) []string {
	var segments []string
	start := 0
	i := 0
	for i < len(path) {
		if i+len(PathSep) <= len(path) && path[i:i+len(PathSep)] == PathSep {
			if i > 0 && path[i-1] == '\\' {
				i += len(PathSep)
				continue
			}
			segments = append(segments, path[start:i])
			i += len(PathSep)
			start = i
			continue
		}
		i++
	}
	return append(segments, path[start:])
}

func joinPath(parent, title string) string {
	escaped := EscapeTitle(title)
	if parent == "" {
		return escaped
	}
	return parent + PathSep + escaped
}
