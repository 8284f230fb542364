package dispatch

import "strings"

// splitChat extracts the candidate command name and remaining argument text
// from a prefixed chat message. The name is the first whitespace-delimited
// token after the prefix; args is everything after the name with the single
// following separator stripped.
func splitChat(content, prefix string) (name, args string) {
	rest := strings.TrimPrefix(strings.TrimSpace(content), prefix)

	name, args, found := strings.Cut(rest, " ")
	if !found {
		return name, ""
	}
	return name, args
}
