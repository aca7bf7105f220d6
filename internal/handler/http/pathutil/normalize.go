package pathutil

import "strings"

// NormalizePath replaces document ID segments in a URL path with ":id" so
// metrics labels keep a bounded cardinality. Query strings are stripped.
//
//	/api/articles/64f1c0d2a5b6c7d8e9f0a1b2 -> /api/articles/:id
//	/api/articles/admin                    -> /api/articles/admin
func NormalizePath(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}

	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if isObjectIDHex(seg) {
			segments[i] = ":id"
		}
	}
	return strings.Join(segments, "/")
}

// isObjectIDHex reports whether s looks like a 24-character hex identifier.
func isObjectIDHex(s string) bool {
	if len(s) != 24 {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
