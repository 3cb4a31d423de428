package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/alex/strum/types"
)

// genValues emits iteration over the non-disabled variants in
// declaration order, with every data field zero-valued: <Enum>Values
// returns a fresh slice, <Enum>All a lazy, restartable sequence.
func genValues(f *jen.File, enum *types.EnumInfo) error {
	active := enum.ActiveVariants()

	f.Commentf("%sValues returns all %s variants in declaration order.", enum.Name, enum.Name)
	f.Func().Id(enum.Name + "Values").Params().Index().Id(enum.Name).Block(
		jen.Return(jen.Index().Id(enum.Name).ValuesFunc(func(g *jen.Group) {
			for _, v := range active {
				g.Add(variantValue(enum, v))
			}
		})),
	)

	f.Commentf("%sAll returns a restartable sequence over all %s variants.", enum.Name, enum.Name)
	f.Func().Id(enum.Name + "All").Params().Qual("iter", "Seq").Index(jen.Id(enum.Name)).Block(
		jen.Return(jen.Func().Params(jen.Id("yield").Func().Params(jen.Id(enum.Name)).Bool()).Block(
			jen.For(jen.List(jen.Id("_"), jen.Id("v")).Op(":=").Range().Id(enum.Name + "Values").Call()).Block(
				jen.If(jen.Op("!").Id("yield").Call(jen.Id("v"))).Block(
					jen.Return(),
				),
			),
		)),
	)

	return nil
}
