package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/alex/strum/types"
)

// genCount emits the variant count: a named constant covering every
// declared variant, disabled ones included, plus a queryable accessor.
func genCount(f *jen.File, enum *types.EnumInfo) error {
	f.Commentf("%sCount is the number of declared %s variants, disabled ones included.", enum.Name, enum.Name)
	f.Const().Id(enum.Name + "Count").Op("=").Lit(enum.Count())

	if enum.Kind == types.EnumKindConst {
		f.Comment("VariantCount returns the number of declared variants.")
		f.Func().Params(jen.Id(enum.Name)).Id("VariantCount").Params().Int().Block(
			jen.Return(jen.Id(enum.Name + "Count")),
		)
	} else {
		f.Commentf("%sVariantCount returns the number of declared variants.", enum.Name)
		f.Func().Id(enum.Name + "VariantCount").Params().Int().Block(
			jen.Return(jen.Id(enum.Name + "Count")),
		)
	}
	return nil
}
