package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/alex/strum/types"
)

// genDiscriminants emits the companion discriminant enum of a sum type:
// a const-backed type with one constant per declared variant, a String
// method, and <Enum>KindOf, the total projection dropping field data.
// Additional capabilities requested via derive are generated on the
// companion itself.
func genDiscriminants(f *jen.File, enum *types.EnumInfo) error {
	d := enum.Discriminants
	if d == nil {
		return nil
	}
	kind := enum.KindName()

	f.Commentf("%s identifies a %s variant independent of its data.", kind, enum.Name)
	f.Type().Id(kind).Int()

	f.Commentf("Discriminants of %s, in declaration order.", enum.Name)
	f.Const().DefsFunc(func(g *jen.Group) {
		for i, v := range enum.Variants {
			if i == 0 {
				g.Id(kind + v.Name).Id(kind).Op("=").Id("iota")
			} else {
				g.Id(kind + v.Name)
			}
		}
	})

	f.Comment("String returns the canonical name of the discriminant.")
	f.Func().Params(jen.Id("k").Id(kind)).Id("String").Params().String().Block(
		jen.Switch(jen.Id("k")).BlockFunc(func(g *jen.Group) {
			for _, v := range enum.Variants {
				g.Case(jen.Id(kind + v.Name)).Block(
					jen.Return(jen.Lit(v.RenderName(enum.SerializeAll))),
				)
			}
		}),
		jen.Return(jen.Lit("")),
	)

	f.Commentf("%sOf returns the discriminant of v, dropping all field data. It panics on a nil %s.", kind, enum.Name)
	f.Func().Id(kind + "Of").Params(jen.Id("v").Id(enum.Name)).Id(kind).Block(
		jen.If(jen.Id("v").Op("==").Nil()).Block(
			jen.Panic(jen.Lit(kind+"Of: nil "+enum.Name)),
		),
		jen.Switch(jen.Id("v").Assert(jen.Type())).BlockFunc(func(g *jen.Group) {
			for _, v := range enum.Variants {
				if v.Pointer {
					g.Case(jen.Op("*").Id(v.Name)).Block(
						jen.Return(jen.Id(kind + v.Name)),
					)
				} else {
					g.Case(jen.Id(v.Name), jen.Op("*").Id(v.Name)).Block(
						jen.Return(jen.Id(kind + v.Name)),
					)
				}
			}
		}),
		jen.Var().Id("zero").Id(kind),
		jen.Return(jen.Id("zero")),
	)

	if d.HasDerive(types.CapParse) {
		genKindParse(f, enum, kind)
	}
	if d.HasDerive(types.CapValues) {
		genKindValues(f, enum, kind)
	}
	if d.HasDerive(types.CapCount) {
		f.Commentf("%sCount is the number of declared %s variants, disabled ones included.", kind, enum.Name)
		f.Const().Id(kind + "Count").Op("=").Lit(enum.Count())
		f.Comment("VariantCount returns the number of declared variants.")
		f.Func().Params(jen.Id(kind)).Id("VariantCount").Params().Int().Block(
			jen.Return(jen.Id(kind + "Count")),
		)
	}

	return nil
}

// genKindParse emits the fallible alias lookup on the companion. The
// companion carries no data, so there is no default capture: unmatched
// input is always a *ParseError.
func genKindParse(f *jen.File, enum *types.EnumInfo, kind string) {
	f.Commentf("Parse%s returns the discriminant named by s.", kind)
	f.Func().Id("Parse" + kind).
		Params(jen.Id("s").String()).
		Params(jen.Id(kind), jen.Error()).
		Block(
			jen.Switch(jen.Id("s")).BlockFunc(func(g *jen.Group) {
				for _, v := range enum.ActiveVariants() {
					cases := make([]jen.Code, 0, 2)
					for _, name := range v.ParseNames(enum.SerializeAll) {
						cases = append(cases, jen.Lit(name))
					}
					g.Case(cases...).Block(jen.Return(jen.Id(kind+v.Name), jen.Nil()))
				}
			}),
			jen.Var().Id("zero").Id(kind),
			jen.Return(jen.Id("zero"), jen.Op("&").Id("ParseError").Values(jen.Dict{
				jen.Id("Type"):  jen.Lit(kind),
				jen.Id("Input"): jen.Id("s"),
			})),
		)
}

// genKindValues emits iteration over the non-disabled discriminants.
func genKindValues(f *jen.File, enum *types.EnumInfo, kind string) {
	f.Commentf("%sValues returns all %s discriminants in declaration order.", kind, enum.Name)
	f.Func().Id(kind + "Values").Params().Index().Id(kind).Block(
		jen.Return(jen.Index().Id(kind).ValuesFunc(func(g *jen.Group) {
			for _, v := range enum.ActiveVariants() {
				g.Id(kind + v.Name)
			}
		})),
	)

	f.Commentf("%sAll returns a restartable sequence over all %s discriminants.", kind, enum.Name)
	f.Func().Id(kind + "All").Params().Qual("iter", "Seq").Index(jen.Id(kind)).Block(
		jen.Return(jen.Func().Params(jen.Id("yield").Func().Params(jen.Id(kind)).Bool()).Block(
			jen.For(jen.List(jen.Id("_"), jen.Id("k")).Op(":=").Range().Id(kind + "Values").Call()).Block(
				jen.If(jen.Op("!").Id("yield").Call(jen.Id("k"))).Block(
					jen.Return(),
				),
			),
		)),
	)
}
