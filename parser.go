package restroute

import "strings"

// parsedAction is the outcome of splitting a method identifier.
type parsedAction struct {
	verb      string
	fragments []string
}

// parseActionName splits an identifier into its verb token and PascalCase
// resource fragments. The identifier must be a lowercase-led run of at
// least two characters (letters, digits, underscore), followed by zero or
// more fragments each starting at a capital letter, terminated by "Action".
// Anything else is not an action and produces no route.
func parseActionName(identifier string) (parsedAction, bool) {
	rest, found := strings.CutSuffix(identifier, actionSuffix)
	if !found || rest == "" {
		return parsedAction{}, false
	}
	if rest[0] < 'a' || rest[0] > 'z' {
		return parsedAction{}, false
	}

	i := 1
	for i < len(rest) && isVerbChar(rest[i]) {
		i++
	}
	if i < 2 {
		return parsedAction{}, false
	}
	verb := rest[:i]

	var fragments []string
	start := -1
	for j := i; j < len(rest); j++ {
		if rest[j] >= 'A' && rest[j] <= 'Z' {
			if start >= 0 {
				fragments = append(fragments, rest[start:j])
			}
			start = j
		} else if start < 0 {
			// stray character between the verb run and the first capital
			return parsedAction{}, false
		}
	}
	if start >= 0 {
		fragments = append(fragments, rest[start:])
	}

	return parsedAction{verb: verb, fragments: fragments}, true
}

func isVerbChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_'
}

// splitVerb strips the collection marker from a verb token. A marker
// followed by a recognized HTTP verb flags a collection action; the bare
// options verb is always a collection action.
func splitVerb(verb string) (string, bool) {
	if strings.HasPrefix(verb, collectionMarker) {
		if rest := verb[len(collectionMarker):]; isHTTPVerb(rest) {
			return rest, true
		}
	}
	if verb == "options" {
		return verb, true
	}
	return verb, false
}
