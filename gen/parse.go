package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/alex/strum/types"
)

// genParse emits Parse<Enum>, an exact-string-match lookup over every
// alias of every non-disabled variant. Unmatched input is captured by
// the default variant when one exists, and reported as a *ParseError
// otherwise. Data fields of matched variants are zero values.
func genParse(f *jen.File, enum *types.EnumInfo) error {
	f.Commentf("Parse%s returns the %s variant named by s.", enum.Name, enum.Name)
	f.Func().Id("Parse" + enum.Name).
		Params(jen.Id("s").String()).
		Params(returnType(enum), jen.Error()).
		BlockFunc(func(g *jen.Group) {
			g.Switch(jen.Id("s")).BlockFunc(func(sw *jen.Group) {
				for _, v := range enum.ActiveVariants() {
					if v.Default {
						continue
					}
					cases := make([]jen.Code, 0, 2)
					for _, name := range v.ParseNames(enum.SerializeAll) {
						cases = append(cases, jen.Lit(name))
					}
					sw.Case(cases...).Block(jen.Return(variantValue(enum, v), jen.Nil()))
				}
			})
			if def := enum.DefaultVariant(); def != nil {
				g.Return(defaultCapture(def, jen.Id("s")), jen.Nil())
			} else {
				g.Add(parseFailure(enum))
			}
		})
	return nil
}

// returnType is the parse result type: the named type for const enums,
// the sealed interface for sum enums.
func returnType(enum *types.EnumInfo) jen.Code {
	return jen.Id(enum.Name)
}

// variantValue builds a zero-valued instance of the variant. Variants
// whose pointer type alone implements the interface get &V{}.
func variantValue(enum *types.EnumInfo, v *types.VariantInfo) jen.Code {
	if enum.Kind == types.EnumKindConst {
		return jen.Id(v.Name)
	}
	if v.Pointer {
		return jen.Op("&").Id(v.Name).Values()
	}
	return jen.Id(v.Name).Values()
}

// defaultCapture builds the default variant holding the unmatched input.
func defaultCapture(def *types.VariantInfo, input jen.Code) jen.Code {
	field := def.Fields[0]
	value := input
	switch {
	case field.TypeName == "string":
		// assign directly
	case field.TypePkgPath != "":
		value = jen.Qual(field.TypePkgPath, field.TypeName).Call(input)
	default:
		value = jen.Id(field.TypeName).Call(input)
	}
	lit := jen.Id(def.Name)
	if def.Pointer {
		lit = jen.Op("&").Id(def.Name)
	}
	return lit.Values(jen.Dict{jen.Id(field.Name): value})
}

// parseFailure emits the no-matching-variant return.
func parseFailure(enum *types.EnumInfo) jen.Code {
	err := jen.Op("&").Id("ParseError").Values(jen.Dict{
		jen.Id("Type"):  jen.Lit(enum.Name),
		jen.Id("Input"): jen.Id("s"),
	})
	if enum.Kind == types.EnumKindSum {
		return jen.Return(jen.Nil(), err)
	}
	return jen.Var().Id("zero").Id(enum.Name).Line().Return(jen.Id("zero"), err)
}
