package restroute

import (
	"fmt"
	"path"
	"strings"

	"dario.cat/mergo"
	"github.com/ettle/strcase"
)

// ActionRouteDeriver turns controller method descriptors into named routes.
// Its configuration is fixed at construction; create one deriver per
// controller scan.
type ActionRouteDeriver struct {
	cfg         Config
	inflector   Inflector
	annotations AnnotationSource
	queryParams QueryParamReader
	exclude     TypeExcluder
	logger      Logger
	formatKeys  []string
}

type DeriverOption func(*ActionRouteDeriver)

func WithInflector(i Inflector) DeriverOption {
	return func(d *ActionRouteDeriver) {
		d.inflector = i
	}
}

func WithAnnotations(src AnnotationSource) DeriverOption {
	return func(d *ActionRouteDeriver) {
		d.annotations = src
	}
}

func WithQueryParamReader(r QueryParamReader) DeriverOption {
	return func(d *ActionRouteDeriver) {
		d.queryParams = r
	}
}

func WithTypeExcluder(f TypeExcluder) DeriverOption {
	return func(d *ActionRouteDeriver) {
		d.exclude = f
	}
}

func WithLogger(l Logger) DeriverOption {
	return func(d *ActionRouteDeriver) {
		d.logger = l
	}
}

// NewDeriver validates the configuration and builds a deriver. An invalid
// parent chain is fatal here, before any method is processed.
func NewDeriver(cfg Config, opts ...DeriverOption) (*ActionRouteDeriver, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	d := &ActionRouteDeriver{
		cfg:       cfg,
		inflector: NewInflector(),
		exclude:   DefaultTypeExcluder,
		logger:    &defaultLogger{},
	}
	for _, opt := range opts {
		opt(d)
	}
	d.formatKeys = cfg.formatKeys()
	return d, nil
}

// DeriveAll derives routes for every method of the controller, in order.
// The first error aborts the scan; routes already written stay in the
// collection.
func (d *ActionRouteDeriver) DeriveAll(col RouteCollection, c ControllerDescriptor) error {
	for _, m := range c.Methods {
		if m.Controller == "" {
			m.Controller = c.Name
		}
		if err := d.Derive(col, m, c.Resources...); err != nil {
			return fmt.Errorf("derive %s: %w", m.Ref(), err)
		}
	}
	return nil
}

// Derive inspects one controller method and writes zero or more named
// routes into the collection. seed holds caller-supplied resource names,
// typically derived from the controller type; they precede the fragments
// parsed out of the identifier.
func (d *ActionRouteDeriver) Derive(col RouteCollection, m MethodDescriptor, seed ...string) error {
	if !d.isEligible(m) {
		return nil
	}
	action, ok := parseActionName(m.Name)
	if !ok {
		return nil
	}
	verb, isCollection := splitVerb(action.verb)

	args := d.routableArguments(m)

	resources := make([]string, 0, len(seed)+len(action.fragments))
	resources = append(resources, seed...)

	// Collection actions pluralize the terminal seed resource before the
	// parsed fragments join the list; an unchanged spelling (invariant
	// noun, or pluralization switched off) marks the action as
	// non-inflectable so it later earns a singular fallback alias.
	isInflectable := true
	if isCollection && len(resources) > 0 {
		last := resources[len(resources)-1]
		plural := d.pluralizeName(last)
		isInflectable = plural != last
		resources[len(resources)-1] = plural
	}

	for _, fragment := range action.fragments {
		resources = append(resources, strcase.ToSnake(fragment))
	}

	// One resource plus exactly one argument beyond the parent chain means
	// the action addresses a single identified member; record the singular
	// name for downstream alias generation.
	if len(resources) == 1 && len(args)-len(d.cfg.Parents) == 1 {
		col.SetSingularName(resources[0])
	}

	if len(d.cfg.Parents) > 0 {
		merged := make([]string, 0, len(d.cfg.Parents)+len(resources))
		merged = append(merged, d.cfg.Parents...)
		resources = append(merged, resources...)
	}

	if len(resources) == 0 {
		// anonymous root resource
		resources = append(resources, "")
	}

	routeName := strings.ToLower(verb + resourceRouteName(resources))
	segments := d.buildPathSegments(resources, args, verb)
	if !isHTTPVerb(verb) {
		// custom verbs become a literal trailing sub-action segment and
		// dispatch under a canonical HTTP method
		segments = append(segments, verb)
		verb = resolveVerb(verb, resources, args)
	}

	base := draftBase{
		path:       strings.Join(segments, "/"),
		verb:       verb,
		controller: m.Ref(),
	}

	annotations := d.routeAnnotations(m)
	if len(annotations) == 0 {
		route, err := d.materializeDraft(base, nil)
		if err != nil {
			return err
		}
		return d.writeRoute(col, routeName, route, isCollection, isInflectable, nil)
	}

	for _, a := range annotations {
		route, err := d.materializeDraft(base, a)
		if err != nil {
			return err
		}
		if err := d.writeRoute(col, routeName, route, isCollection, isInflectable, a); err != nil {
			return err
		}
	}
	return nil
}

// isEligible rejects underscore-internal methods and methods excluded via
// NoRoute, unless a non-NoRoute annotation on the method forces inclusion.
func (d *ActionRouteDeriver) isEligible(m MethodDescriptor) bool {
	if strings.HasPrefix(m.Name, "_") {
		return false
	}
	if d.annotations == nil {
		return true
	}
	hasNoRoute := d.annotations.MethodAnnotation(m, KindNoRoute) != nil ||
		d.annotations.ClassAnnotation(m.Controller, KindNoRoute) != nil
	if !hasNoRoute {
		return true
	}
	for _, a := range d.annotations.MethodAnnotations(m) {
		if a.Kind != KindNoRoute {
			return true
		}
	}
	return false
}

// routeAnnotations lists the method's materializable annotations, in
// declaration order. NoRoute entries only affect eligibility.
func (d *ActionRouteDeriver) routeAnnotations(m MethodDescriptor) []*RouteAnnotation {
	if d.annotations == nil {
		return nil
	}
	var out []*RouteAnnotation
	for _, a := range d.annotations.MethodAnnotations(m) {
		if a.Kind == KindNoRoute {
			continue
		}
		out = append(out, a)
	}
	return out
}

// routableArguments filters the method parameters down to the ones that map
// into path placeholders: query-bound names and framework-injected types
// are dropped.
func (d *ActionRouteDeriver) routableArguments(m MethodDescriptor) []Param {
	consumed := map[string]struct{}{}
	if d.queryParams != nil {
		for _, name := range d.queryParams.ParamsFromMethod(m) {
			consumed[name] = struct{}{}
		}
	}
	var out []Param
	for _, p := range m.Params {
		if _, ok := consumed[p.Name]; ok {
			continue
		}
		if d.exclude != nil && d.exclude(p.Type) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (d *ActionRouteDeriver) pluralizeName(word string) string {
	if d.cfg.Pluralize == PluralizeNever {
		return word
	}
	return d.inflector.Pluralize(word)
}

// resourceRouteName joins the basenames of the named resources, each
// preceded by an underscore. Anonymous resources contribute nothing.
func resourceRouteName(resources []string) string {
	var b strings.Builder
	for _, resource := range resources {
		if resource == "" {
			continue
		}
		b.WriteByte('_')
		b.WriteString(strcase.ToSnake(path.Base(resource)))
	}
	return b.String()
}

// buildPathSegments walks the merged resource list and emits one path
// segment per resource. The configured path prefix slots in right after the
// parent chain; arguments beyond the parent chain become {placeholder}
// segments attached to their resource.
func (d *ActionRouteDeriver) buildPathSegments(resources []string, args []Param, verb string) []string {
	parents := len(d.cfg.Parents)
	var parts []string
	for i, resource := range resources {
		if d.cfg.PathPrefix != "" && i == parents {
			parts = append(parts, d.cfg.PathPrefix)
		}
		arg, hasArg := argumentFor(args, i, parents)
		switch {
		case hasArg && resource != "":
			parts = append(parts, strings.ToLower(resource)+"/{"+arg.Name+"}")
		case hasArg:
			parts = append(parts, "{"+arg.Name+"}")
		case resource == "":
			// anonymous resource without an argument contributes nothing
		case (len(args) == 0 && !isHTTPVerb(verb)) || verb == "new" || verb == "post":
			parts = append(parts, d.pluralizeName(strings.ToLower(resource)))
		case d.cfg.Pluralize == PluralizeAlways:
			parts = append(parts, d.pluralizeName(strings.ToLower(resource)))
		default:
			// singular collection-member convention
			parts = append(parts, strings.ToLower(resource))
		}
	}
	return parts
}

// argumentFor aligns routable arguments with resources past the parent
// chain; parent segments carry their own identifiers externally.
func argumentFor(args []Param, i, parents int) (Param, bool) {
	idx := i - parents
	if idx < 0 || idx >= len(args) {
		return Param{}, false
	}
	return args[idx], true
}

// resolveVerb maps a custom action verb onto the HTTP method used for
// dispatch. Conventional navigation actions and collection-scoped actions
// read state; a custom action on an identified member defaults to a
// partial update.
func resolveVerb(verb string, resources []string, args []Param) string {
	if isConventionalAction(verb) {
		return "get"
	}
	if len(args) < len(resources) {
		return "get"
	}
	return "patch"
}

// draftBase is the convention-derived starting point each annotation (or
// the lone conventional route) is layered onto.
type draftBase struct {
	path       string
	verb       string
	controller string
}

// materializeDraft builds one finalized Route from the convention base and
// an optional annotation. It returns a fresh value every call so that
// multiple annotations on one method never share state.
func (d *ActionRouteDeriver) materializeDraft(base draftBase, a *RouteAnnotation) (*Route, error) {
	methods := upperAll(strings.Split(base.verb, "|"))
	routePath := base.path
	requirements := map[string]string{}
	options := map[string]any{}
	defaults := map[string]any{"_controller": base.controller}
	host := ""
	var schemes []string
	condition := ""

	if a != nil {
		if am := a.HTTPMethods(); len(am) > 0 {
			methods = upperAll(am)
		}
		if a.Path != "" {
			routePath = joinPrefix(d.cfg.PathPrefix, a.Path)
		}
		if len(a.Requirements) > 0 {
			if err := mergo.Merge(&requirements, a.Requirements, mergo.WithOverride); err != nil {
				return nil, err
			}
		}
		if len(a.Options) > 0 {
			if err := mergo.Merge(&options, a.Options, mergo.WithOverride); err != nil {
				return nil, err
			}
		}
		if len(a.Defaults) > 0 {
			if err := mergo.Merge(&defaults, a.Defaults, mergo.WithOverride); err != nil {
				return nil, err
			}
		}
		host = a.Host
		schemes = append([]string(nil), a.Schemes...)
		condition = a.Condition
	}

	condition = d.versionCondition(condition)
	routePath = d.applyFormatSuffix(routePath, requirements)

	return &Route{
		Path:         routePath,
		Methods:      methods,
		Defaults:     defaults,
		Requirements: requirements,
		Options:      options,
		Host:         host,
		Schemes:      schemes,
		Condition:    condition,
	}, nil
}

// versionCondition ANDs the configured API version predicate into the
// route condition.
func (d *ActionRouteDeriver) versionCondition(condition string) string {
	if d.cfg.Version == "" {
		return condition
	}
	expr := fmt.Sprintf("request.attributes.get('version') == '%s'", d.cfg.Version)
	if condition == "" {
		return expr
	}
	return fmt.Sprintf("(%s) and %s", condition, expr)
}

// applyFormatSuffix appends the format placeholder and, unless an explicit
// requirement exists, constrains it to the configured format keys.
func (d *ActionRouteDeriver) applyFormatSuffix(routePath string, requirements map[string]string) string {
	if !d.cfg.IncludeFormat {
		return routePath
	}
	routePath += ".{" + FormatPlaceholder + "}"
	if _, ok := requirements[FormatPlaceholder]; !ok && len(d.formatKeys) > 0 {
		requirements[FormatPlaceholder] = strings.Join(d.formatKeys, "|")
	}
	return routePath
}

// writeRoute resolves the final route name and registers the route. A
// collection action whose pluralization changed nothing registers twice:
// once under the collection-marker-prefixed name and, when free, once more
// under the plain name as a cloned singular fallback.
func (d *ActionRouteDeriver) writeRoute(col RouteCollection, routeName string, route *Route, isCollection, isInflectable bool, a *RouteAnnotation) error {
	if a != nil && a.Name != "" {
		if v, ok := a.Options["method_prefix"].(bool); ok && !v {
			routeName = a.Name
		} else {
			routeName += a.Name
		}
	}
	fullName := d.cfg.NamePrefix + routeName

	if isCollection && !isInflectable {
		if err := col.Add(d.cfg.NamePrefix+collectionMarker+routeName, route); err != nil {
			return err
		}
		if col.Get(fullName) != nil {
			d.logger.Debug("restroute: fallback alias %q already registered, skipping", fullName)
			return nil
		}
		return col.Add(fullName, route.Clone())
	}

	return col.Add(fullName, route)
}

func joinPrefix(prefix, p string) string {
	p = strings.TrimPrefix(p, "/")
	if prefix == "" {
		return p
	}
	return prefix + "/" + p
}

func upperAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToUpper(v)
	}
	return out
}
