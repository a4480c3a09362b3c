package session

import "strings"

// SplitList splits a stored comma-joined value. The empty string is the
// empty list.
func SplitList(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, listSeparator)
}

func JoinList(items []string) string {
	return strings.Join(items, listSeparator)
}
