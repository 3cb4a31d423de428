// Package annotations extracts @-style annotations from Go doc comments.
package annotations

// Param is a single annotation parameter. Flags are stored with the
// value "true", positional values with an empty key. Order follows the
// source text so that repeatable parameters keep their insertion order.
type Param struct {
	Key   string
	Value string
}

// Annotation represents a parsed annotation from Go comments (@name(params))
type Annotation struct {
	Name    string  // e.g., "strum", "variant"
	Params  []Param // ordered key-value parameters
	RawText string  // original text
}

// Group is an ordered list of annotations attached to one declaration.
type Group []Annotation

// First returns the first annotation with the given name (case-insensitive).
func (g Group) First(name string) (Annotation, bool) {
	for _, a := range g {
		if EqualNames(a.Name, name) {
			return a, true
		}
	}
	return Annotation{}, false
}

// All returns every annotation with the given name, in source order.
func (g Group) All(name string) []Annotation {
	var out []Annotation
	for _, a := range g {
		if EqualNames(a.Name, name) {
			out = append(out, a)
		}
	}
	return out
}

// Has reports whether an annotation with the given name is present.
func (g Group) Has(name string) bool {
	_, ok := g.First(name)
	return ok
}
