package annotations

// Placement identifies where an annotation may appear.
type Placement string

const (
	// PlacementEnum is the enum type declaration.
	PlacementEnum Placement = "enum"
	// PlacementVariant is a constant or variant struct declaration.
	PlacementVariant Placement = "variant"
)

// ParamSpec documents one parameter of an annotation.
type ParamSpec struct {
	Name        string
	Description string
	Flag        bool // boolean flag rather than key-value
	Repeatable  bool
}

// Spec documents a recognized annotation.
type Spec struct {
	Name        string
	Description string
	ValidOn     []Placement
	Params      []ParamSpec
	Multiple    bool // may appear more than once per declaration
}

// IsValidPlacement reports whether the annotation may appear at the
// given placement. An empty ValidOn list allows all placements.
func (s *Spec) IsValidPlacement(p Placement) bool {
	if len(s.ValidOn) == 0 {
		return true
	}
	for _, valid := range s.ValidOn {
		if valid == p {
			return true
		}
	}
	return false
}

// Specs is a lookup table of annotation specifications.
type Specs []Spec

// ByName finds a specification by name, case-insensitively.
func (s Specs) ByName(name string) *Spec {
	for i := range s {
		if EqualNames(s[i].Name, name) {
			return &s[i]
		}
	}
	return nil
}

// IsValidPlacement reports whether the named annotation may appear at
// the given placement. Unknown annotations are allowed anywhere.
func (s Specs) IsValidPlacement(name string, p Placement) bool {
	sp := s.ByName(name)
	if sp == nil {
		return true
	}
	return sp.IsValidPlacement(p)
}

// BuiltinSpecs returns the annotation vocabulary recognized by strum.
func BuiltinSpecs() Specs {
	return Specs{
		{
			Name:        "strum",
			Description: "marks a named type or sealed interface as an enum and selects capabilities",
			ValidOn:     []Placement{PlacementEnum},
			Params: []ParamSpec{
				{Name: "serialize_all", Description: "case-conversion rule for default aliases"},
				{Name: "string", Description: "generate the String method", Flag: true},
				{Name: "parse", Description: "generate the Parse function", Flag: true},
				{Name: "values", Description: "generate Values and All iteration", Flag: true},
				{Name: "message", Description: "generate message and property lookups", Flag: true},
				{Name: "count", Description: "generate the variant count constant", Flag: true},
			},
		},
		{
			Name:        "variant",
			Description: "configures one variant",
			ValidOn:     []Placement{PlacementVariant},
			Multiple:    true,
			Params: []ParamSpec{
				{Name: "serialize", Description: "additional parse alias", Repeatable: true},
				{Name: "to_string", Description: "exact render string, wins over serialize"},
				{Name: "default", Description: "capture unmatched parse input in this variant", Flag: true},
				{Name: "disabled", Description: "exclude from parsing and iteration", Flag: true},
				{Name: "message", Description: "message string"},
				{Name: "detailed_message", Description: "detailed message, falls back to message"},
				{Name: "props", Description: "key-value properties", Repeatable: true},
			},
		},
		{
			Name:        "props",
			Description: "key-value properties for one variant",
			ValidOn:     []Placement{PlacementVariant},
			Multiple:    true,
		},
		{
			Name:        "discriminants",
			Description: "requests a companion discriminant enum for a sealed interface",
			ValidOn:     []Placement{PlacementEnum},
			Params: []ParamSpec{
				{Name: "name", Description: "companion type name, defaults to <Enum>Kind"},
				{Name: "derive", Description: "capabilities generated on the companion"},
			},
		},
	}
}
