package parser

import (
	"github.com/alex/strum/types"
)

// Validate checks an enum descriptor against the invariants the
// generators rely on. Any failure aborts generation for the whole enum
// with a descriptive error, there is no partial output.
func Validate(enum *types.EnumInfo) error {
	if len(enum.Variants) == 0 {
		return newValidationError(ErrNoVariants, enum.Name, "", "",
			"no variants found for the annotated type")
	}

	if err := validateDefault(enum); err != nil {
		return err
	}
	if err := validateAliases(enum); err != nil {
		return err
	}

	if enum.Discriminants != nil && enum.Kind != types.EnumKindSum {
		return newValidationError(ErrInvalidAnnotation, enum.Name, "", "",
			"@discriminants requires a sealed-interface enum; a const enum is its own discriminant")
	}

	return nil
}

// validateDefault enforces the at-most-one default marker and the
// variant shape the default capture requires: a single field a string
// can be assigned or converted to.
func validateDefault(enum *types.EnumInfo) error {
	var def *types.VariantInfo
	for _, v := range enum.Variants {
		if !v.Default {
			continue
		}
		if def != nil {
			return newValidationError(ErrConflictingDefault, enum.Name, v.Name, "",
				"default already set on variant "+def.Name)
		}
		def = v
	}
	if def == nil {
		return nil
	}

	if enum.Kind == types.EnumKindConst {
		return newValidationError(ErrInvalidDefault, enum.Name, def.Name, "",
			"a constant cannot capture the unmatched input; default requires a single-field struct variant")
	}
	if def.Kind != types.VariantKindNewtype {
		return newValidationError(ErrInvalidDefault, enum.Name, def.Name, "",
			"default requires a struct variant with exactly one field")
	}
	if !def.Fields[0].StringAssignable {
		return newValidationError(ErrInvalidDefault, enum.Name, def.Name, "",
			"default variant field type "+def.Fields[0].Type+" cannot be constructed from a string")
	}
	return nil
}

// validateAliases rejects a parse table where two active variants claim
// the same string. The default variant's aliases never become switch
// cases, but they still participate here: an alias shared with the
// default variant is a configuration mistake worth failing on.
func validateAliases(enum *types.EnumInfo) error {
	seen := make(map[string]string)
	for _, v := range enum.ActiveVariants() {
		for _, name := range v.ParseNames(enum.SerializeAll) {
			if other, dup := seen[name]; dup {
				return newValidationError(ErrDuplicateAlias, enum.Name, v.Name, "",
					"alias "+name+" already parses to variant "+other)
			}
			seen[name] = v.Name
		}
	}
	return nil
}
