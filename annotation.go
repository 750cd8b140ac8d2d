package restroute

// AnnotationKind tags a route annotation with the verb it declares. Generic
// annotations declare no verb of their own; NoRoute excludes a method from
// derivation entirely.
type AnnotationKind int

const (
	KindGeneric AnnotationKind = iota
	KindGet
	KindPost
	KindPut
	KindPatch
	KindDelete
	KindLink
	KindUnlink
	KindHead
	KindOptions
	KindNoRoute
)

var annotationKindNames = map[AnnotationKind]string{
	KindGeneric: "Route",
	KindGet:     "Get",
	KindPost:    "Post",
	KindPut:     "Put",
	KindPatch:   "Patch",
	KindDelete:  "Delete",
	KindLink:    "Link",
	KindUnlink:  "Unlink",
	KindHead:    "Head",
	KindOptions: "Options",
	KindNoRoute: "NoRoute",
}

func (k AnnotationKind) String() string {
	if name, ok := annotationKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Verb returns the HTTP method implied by the kind, or "" for kinds that do
// not imply one.
func (k AnnotationKind) Verb() string {
	switch k {
	case KindGet:
		return "GET"
	case KindPost:
		return "POST"
	case KindPut:
		return "PUT"
	case KindPatch:
		return "PATCH"
	case KindDelete:
		return "DELETE"
	case KindLink:
		return "LINK"
	case KindUnlink:
		return "UNLINK"
	case KindHead:
		return "HEAD"
	case KindOptions:
		return "OPTIONS"
	}
	return ""
}

// RouteAnnotation is a declarative route attached to a controller method or
// to its declaring type. Empty Path and Name mean "not set".
type RouteAnnotation struct {
	Kind         AnnotationKind
	Path         string
	Host         string
	Schemes      []string
	Methods      []string
	Requirements map[string]string
	Options      map[string]any
	Defaults     map[string]any
	Condition    string
	Name         string
}

// HTTPMethods returns the verbs the annotation declares: explicit Methods
// win, otherwise the kind-implied verb, otherwise nil.
func (a *RouteAnnotation) HTTPMethods() []string {
	if len(a.Methods) > 0 {
		return a.Methods
	}
	if verb := a.Kind.Verb(); verb != "" {
		return []string{verb}
	}
	return nil
}

// AnnotationSource supplies the annotations attached to controllers and
// their methods. How they got there (struct tags, comment directives, code
// generation) is the caller's concern.
type AnnotationSource interface {
	ClassAnnotation(controller string, kind AnnotationKind) *RouteAnnotation
	MethodAnnotation(m MethodDescriptor, kind AnnotationKind) *RouteAnnotation
	MethodAnnotations(m MethodDescriptor) []*RouteAnnotation
}

// AnnotationSet is an in-memory AnnotationSource keyed by controller type
// and method name.
type AnnotationSet struct {
	class  map[string][]*RouteAnnotation
	method map[string][]*RouteAnnotation
}

func NewAnnotationSet() *AnnotationSet {
	return &AnnotationSet{
		class:  make(map[string][]*RouteAnnotation),
		method: make(map[string][]*RouteAnnotation),
	}
}

func (s *AnnotationSet) AddClass(controller string, a *RouteAnnotation) *AnnotationSet {
	s.class[controller] = append(s.class[controller], a)
	return s
}

func (s *AnnotationSet) AddMethod(controller, method string, a *RouteAnnotation) *AnnotationSet {
	key := methodKey(controller, method)
	s.method[key] = append(s.method[key], a)
	return s
}

func (s *AnnotationSet) ClassAnnotation(controller string, kind AnnotationKind) *RouteAnnotation {
	for _, a := range s.class[controller] {
		if a.Kind == kind {
			return a
		}
	}
	return nil
}

func (s *AnnotationSet) MethodAnnotation(m MethodDescriptor, kind AnnotationKind) *RouteAnnotation {
	for _, a := range s.method[methodKey(m.Controller, m.Name)] {
		if a.Kind == kind {
			return a
		}
	}
	return nil
}

func (s *AnnotationSet) MethodAnnotations(m MethodDescriptor) []*RouteAnnotation {
	return s.method[methodKey(m.Controller, m.Name)]
}

func methodKey(controller, method string) string {
	return controller + "::" + method
}
