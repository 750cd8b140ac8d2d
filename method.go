package restroute

// Param describes one declared parameter of a controller method.
type Param struct {
	Name string
	Type string
}

// MethodDescriptor is the per-method input to derivation: identifier name,
// declaring controller type and ordered parameter list.
type MethodDescriptor struct {
	Name       string
	Controller string
	Params     []Param
}

// Ref returns the dispatch-target identifier stored in route defaults.
func (m MethodDescriptor) Ref() string {
	if m.Controller == "" {
		return m.Name
	}
	return methodKey(m.Controller, m.Name)
}

// ControllerDescriptor groups the methods of one controller type together
// with the seed resources its routes hang from.
type ControllerDescriptor struct {
	Name      string
	Resources []string
	Methods   []MethodDescriptor
}

// QueryParamReader lists the parameter names of a method already consumed
// by query-string binding; those never become path placeholders.
type QueryParamReader interface {
	ParamsFromMethod(m MethodDescriptor) []string
}

// TypeExcluder reports whether a parameter type is framework-injected and
// therefore non-routable. Callers supply their own to match whatever
// parameter catalogue their controllers use.
type TypeExcluder func(typeName string) bool

// DefaultTypeExcluder excludes the request/response plumbing a Go handler
// method typically receives alongside its routable arguments.
func DefaultTypeExcluder(typeName string) bool {
	switch typeName {
	case "*http.Request", "http.ResponseWriter", "context.Context":
		return true
	}
	return false
}
