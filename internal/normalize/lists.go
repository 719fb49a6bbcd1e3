package normalize

import "strings"

// Unique merges string lists in order, keeping the first occurrence of each
// value. Blank entries are skipped; comparison is exact.
func Unique(lists ...[]string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, list := range lists {
		for _, s := range list {
			s = strings.TrimSpace(s)
			if s == "" || seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// Head returns at most n leading elements as a new slice.
func Head(items []string, n int) []string {
	if len(items) > n {
		items = items[:n]
	}
	return append([]string{}, items...)
}

// LanguageCodes turns language references ("/languages/eng") into bare codes.
func LanguageCodes(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, lastSegment(k))
	}
	return out
}
