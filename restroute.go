// Package restroute derives HTTP routes from controller method names.
//
// Given a method identifier such as getUserCommentAction, the deriver infers
// an HTTP method, a URL path template, a unique route name and route
// metadata, then registers the result into a RouteCollection. Declarative
// route annotations can override or multiply the convention-derived routes,
// and nested parent resources are folded into both path and name.
package restroute

const (
	// collectionMarker prefixes a recognized verb token to mark an action
	// operating on the whole collection, e.g. cgetAction. The same marker
	// prefixes the route name of a collection alias registration.
	collectionMarker = "c"

	// actionSuffix terminates every routable method identifier.
	actionSuffix = "Action"

	// FormatPlaceholder is the reserved path placeholder appended when
	// format inclusion is enabled, as in /users.{_format}.
	FormatPlaceholder = "_format"
)

// httpVerbs are the verb tokens mapped directly onto HTTP methods.
var httpVerbs = map[string]struct{}{
	"get":     {},
	"post":    {},
	"put":     {},
	"patch":   {},
	"delete":  {},
	"head":    {},
	"options": {},
	"link":    {},
	"unlink":  {},
}

// conventionalActions are navigation affordances (hypertext transitions)
// that always dispatch as GET.
var conventionalActions = map[string]struct{}{
	"new":    {},
	"edit":   {},
	"remove": {},
}

func isHTTPVerb(verb string) bool {
	_, ok := httpVerbs[verb]
	return ok
}

func isConventionalAction(verb string) bool {
	_, ok := conventionalActions[verb]
	return ok
}
