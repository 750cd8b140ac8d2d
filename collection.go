package restroute

// RouteCollection is the output sink for derived routes.
type RouteCollection interface {
	// Add registers a route under a name. Registering a name twice is a
	// conflict, not a silent overwrite.
	Add(name string, route *Route) error
	// Get returns the route registered under name, or nil.
	Get(name string) *Route
	// SetSingularName records the singular resource name of the collection,
	// used by downstream alias generation.
	SetSingularName(name string)
}

// Routes is an ordered in-memory RouteCollection.
type Routes struct {
	names    []string
	byName   map[string]*Route
	singular string
}

func NewRoutes() *Routes {
	return &Routes{
		byName: make(map[string]*Route),
	}
}

func (r *Routes) Add(name string, route *Route) error {
	if _, ok := r.byName[name]; ok {
		return newDuplicateRouteError(name)
	}
	r.names = append(r.names, name)
	r.byName[name] = route
	return nil
}

func (r *Routes) Get(name string) *Route {
	return r.byName[name]
}

func (r *Routes) SetSingularName(name string) {
	r.singular = name
}

func (r *Routes) SingularName() string {
	return r.singular
}

// Names returns the route names in registration order.
func (r *Routes) Names() []string {
	return append([]string(nil), r.names...)
}

func (r *Routes) Len() int {
	return len(r.names)
}
