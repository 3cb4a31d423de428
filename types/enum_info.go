// Package types defines the descriptors produced by scanning annotated enums.
package types

import (
	"go/token"

	"github.com/alex/strum/annotations"
)

// EnumKind identifies the syntactic shape of an enum.
type EnumKind string

const (
	// EnumKindConst is a named type with an associated const block.
	EnumKindConst EnumKind = "const"
	// EnumKindSum is a sealed interface with struct variants.
	EnumKindSum EnumKind = "sum"
)

// VariantKind identifies the shape of a single variant.
type VariantKind string

const (
	VariantKindUnit    VariantKind = "unit"    // constant, or struct with no fields
	VariantKindNewtype VariantKind = "newtype" // struct with exactly one field
	VariantKindStruct  VariantKind = "struct"  // struct with two or more fields
)

// Capability names a generated behavior an enum can request.
type Capability string

const (
	CapString        Capability = "string"
	CapParse         Capability = "parse"
	CapValues        Capability = "values"
	CapMessage       Capability = "message"
	CapCount         Capability = "count"
	CapDiscriminants Capability = "discriminants"
)

// Prop is a single key-value property attached to a variant.
// Insertion order is preserved for deterministic output.
type Prop struct {
	Key   string
	Value string
}

// FieldInfo describes one field of a variant struct.
type FieldInfo struct {
	Name string
	Type string // Go source representation of the field type
	// StringAssignable reports whether a string value can be assigned or
	// converted to the field, which is what the default capture requires.
	StringAssignable bool
	// TypeName is the bare name of a string-assignable field type, used
	// to emit the conversion. TypePkgPath qualifies it when the type is
	// declared in another package.
	TypeName    string
	TypePkgPath string
}

// VariantInfo describes a single enum variant.
type VariantInfo struct {
	Name   string
	Kind   VariantKind
	Fields []FieldInfo // empty for const-block variants

	// Pointer marks a variant whose pointer type alone implements the
	// sealed interface. Instances are emitted as &V{} and matched as *V.
	Pointer bool

	Aliases     []string // serialize values, insertion order preserved
	ToString    string   // explicit to_string value
	HasToString bool

	Default  bool
	Disabled bool

	Message            string
	HasMessage         bool
	DetailedMessage    string
	HasDetailedMessage bool

	Props []Prop

	Comment     string
	Annotations annotations.Group
	Position    token.Pos
}

// RenderName selects the single output string for the variant:
// explicit to_string, else the longest serialize alias, else the
// case-converted variant name.
func (v *VariantInfo) RenderName(style CaseStyle) string {
	if v.HasToString {
		return v.ToString
	}
	if len(v.Aliases) > 0 {
		longest := v.Aliases[0]
		for _, a := range v.Aliases[1:] {
			if len(a) > len(longest) {
				longest = a
			}
		}
		return longest
	}
	return style.Convert(v.Name)
}

// ParseNames returns every string that parses to this variant: the
// to_string value and all serialize aliases, or the case-converted
// name when no override is given. Duplicates are dropped, order kept.
func (v *VariantInfo) ParseNames(style CaseStyle) []string {
	var names []string
	if v.HasToString {
		names = append(names, v.ToString)
	}
	names = append(names, v.Aliases...)
	if len(names) == 0 {
		names = []string{style.Convert(v.Name)}
	}

	seen := make(map[string]struct{}, len(names))
	out := names[:0]
	for _, n := range names {
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// Prop returns the value of a property by key.
func (v *VariantInfo) Prop(key string) (string, bool) {
	for _, p := range v.Props {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// DiscriminantsInfo holds the request for a companion discriminant enum.
type DiscriminantsInfo struct {
	Name   string       // companion type name, default <Enum>Kind
	Derive []Capability // extra capabilities generated on the companion
}

// HasDerive reports whether the companion requests the given capability.
func (d *DiscriminantsInfo) HasDerive(c Capability) bool {
	for _, dc := range d.Derive {
		if dc == c {
			return true
		}
	}
	return false
}

// EnumInfo is the descriptor for one annotated enum.
type EnumInfo struct {
	Name    string
	PkgName string
	PkgPath string
	Dir     string // directory of the declaring file, used for output

	Kind     EnumKind
	BaseType string // underlying type of const-block enums ("int", "string", ...)

	SerializeAll  CaseStyle
	Capabilities  []Capability
	Discriminants *DiscriminantsInfo

	Variants []*VariantInfo

	Comment     string
	Annotations annotations.Group
	Position    token.Pos
}

// HasCapability reports whether the enum requests the given capability.
func (e *EnumInfo) HasCapability(c Capability) bool {
	for _, ec := range e.Capabilities {
		if ec == c {
			return true
		}
	}
	return false
}

// ActiveVariants returns the non-disabled variants in declaration order.
func (e *EnumInfo) ActiveVariants() []*VariantInfo {
	out := make([]*VariantInfo, 0, len(e.Variants))
	for _, v := range e.Variants {
		if !v.Disabled {
			out = append(out, v)
		}
	}
	return out
}

// DefaultVariant returns the variant carrying the default marker, if any.
func (e *EnumInfo) DefaultVariant() *VariantInfo {
	for _, v := range e.Variants {
		if v.Default {
			return v
		}
	}
	return nil
}

// Count is the total number of declared variants, disabled included.
func (e *EnumInfo) Count() int {
	return len(e.Variants)
}

// KindName returns the companion discriminant type name.
func (e *EnumInfo) KindName() string {
	if e.Discriminants != nil && e.Discriminants.Name != "" {
		return e.Discriminants.Name
	}
	return e.Name + "Kind"
}
