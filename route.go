package restroute

// Route is the fully assembled, pre-registration description of one route.
// The deriver materializes exactly one Route per route annotation, or one
// from convention alone when a method carries no annotations.
type Route struct {
	// Path is the slash-joined template with placeholders in {name} form,
	// e.g. posts/{id}/comments.
	Path string

	// Methods lists the accepted HTTP verbs, uppercase.
	Methods []string

	// Defaults always carries the dispatch-target identifier under
	// "_controller"; annotations can add or override entries.
	Defaults map[string]any

	// Requirements constrains placeholders, e.g. "_format": "json|xml".
	Requirements map[string]string

	Options   map[string]any
	Host      string
	Schemes   []string
	Condition string
}

// Clone returns a deep copy so that alias registrations never share maps
// with the primary route.
func (r *Route) Clone() *Route {
	clone := *r
	clone.Methods = append([]string(nil), r.Methods...)
	clone.Schemes = append([]string(nil), r.Schemes...)
	if r.Defaults != nil {
		clone.Defaults = make(map[string]any, len(r.Defaults))
		for k, v := range r.Defaults {
			clone.Defaults[k] = v
		}
	}
	if r.Requirements != nil {
		clone.Requirements = make(map[string]string, len(r.Requirements))
		for k, v := range r.Requirements {
			clone.Requirements[k] = v
		}
	}
	if r.Options != nil {
		clone.Options = make(map[string]any, len(r.Options))
		for k, v := range r.Options {
			clone.Options[k] = v
		}
	}
	return &clone
}
