package overrides

import (
	"regexp"
	"strings"
)

// Composite-key delimiters, tried in order. Hyphen goes last: it is the most
// likely to also occur inside real identifiers.
var keyDelimiters = []string{"::", "|", "/", "—", "–", "-"}

var trailingIdent = regexp.MustCompile(`^(.*?)([A-Za-z0-9_]+)$`)

// SplitKey splits a composite "trip<delim>stop" key into its parts. Dash
// delimiters split at the last occurrence, since dashes also appear inside
// real trip_ids. When no known delimiter is present it falls back to peeling
// the trailing identifier-looking token off the end. Returns false when no
// split is possible.
func SplitKey(key string) (tripID, stopID string, ok bool) {
	for _, d := range keyDelimiters {
		i := strings.Index(key, d)
		if d == "-" || d == "–" || d == "—" {
			i = strings.LastIndex(key, d)
		}
		if i > 0 && i+len(d) < len(key) {
			return key[:i], key[i+len(d):], true
		}
	}
	m := trailingIdent.FindStringSubmatch(key)
	if m == nil || m[1] == "" || m[2] == "" {
		return "", "", false
	}
	return strings.TrimRight(m[1], " \t"), m[2], true
}
