package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/alex/strum/types"
)

// genString emits the string rendering for an enum. Every variant,
// disabled ones included, renders to exactly one string selected by
// priority: explicit to_string, longest serialize alias, case-converted
// name. The emitted methods return untyped string constants and never
// allocate, so the same method serves borrowed and owned callers alike.
func genString(f *jen.File, enum *types.EnumInfo) error {
	switch enum.Kind {
	case types.EnumKindConst:
		genConstString(f, enum)
	case types.EnumKindSum:
		genSumString(f, enum)
	}
	return nil
}

func genConstString(f *jen.File, enum *types.EnumInfo) {
	f.Comment("String returns the canonical name of the variant.")
	f.Func().Params(jen.Id("v").Id(enum.Name)).Id("String").Params().String().Block(
		jen.Switch(jen.Id("v")).BlockFunc(func(g *jen.Group) {
			for _, v := range enum.Variants {
				g.Case(jen.Id(v.Name)).Block(
					jen.Return(jen.Lit(v.RenderName(enum.SerializeAll))),
				)
			}
		}),
		jen.Return(jen.Lit("")),
	)
}

func genSumString(f *jen.File, enum *types.EnumInfo) {
	for _, v := range enum.Variants {
		f.Commentf("String returns the canonical name of %s.", v.Name)
		f.Func().Params(jen.Id(v.Name)).Id("String").Params().String().Block(
			jen.Return(jen.Lit(v.RenderName(enum.SerializeAll))),
		)
	}
}
