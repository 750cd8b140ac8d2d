package restroute

import "github.com/gertd/go-pluralize"

// Inflector pluralizes resource names. The default implementation wraps
// go-pluralize; callers with domain-specific vocabularies can supply their
// own.
type Inflector interface {
	Pluralize(word string) string
}

type pluralizeInflector struct {
	client *pluralize.Client
}

func NewInflector() Inflector {
	return &pluralizeInflector{client: pluralize.NewClient()}
}

func (p *pluralizeInflector) Pluralize(word string) string {
	return p.client.Plural(word)
}

// PluralizePolicy controls whether resource names get pluralized during
// path and name building.
type PluralizePolicy int

const (
	// PluralizeDefault defers to the inflector wherever the naming
	// convention calls for a plural form.
	PluralizeDefault PluralizePolicy = iota
	// PluralizeAlways pluralizes every non-placeholder resource segment,
	// not only the ones the convention marks.
	PluralizeAlways
	// PluralizeNever leaves every resource name untouched.
	PluralizeNever
)

func (p *PluralizePolicy) UnmarshalYAML(unmarshal func(any) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	switch raw {
	case "", "default":
		*p = PluralizeDefault
	case "always":
		*p = PluralizeAlways
	case "never":
		*p = PluralizeNever
	default:
		return newConfigError("unknown pluralize policy", map[string]any{"policy": raw})
	}
	return nil
}
