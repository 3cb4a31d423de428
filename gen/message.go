package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/alex/strum/types"
)

// genMessage emits the message, detailed message and property lookups.
// Absent values report ok=false rather than an error; the detailed
// message falls back to the plain message.
func genMessage(f *jen.File, enum *types.EnumInfo) error {
	switch enum.Kind {
	case types.EnumKindConst:
		genConstMessage(f, enum)
	case types.EnumKindSum:
		genSumMessage(f, enum)
	}
	return nil
}

func genConstMessage(f *jen.File, enum *types.EnumInfo) {
	f.Comment("Message returns the message configured for the variant.")
	f.Func().Params(jen.Id("v").Id(enum.Name)).Id("Message").Params().Params(jen.String(), jen.Bool()).Block(
		jen.Switch(jen.Id("v")).BlockFunc(func(g *jen.Group) {
			for _, v := range enum.Variants {
				if v.HasMessage {
					g.Case(jen.Id(v.Name)).Block(jen.Return(jen.Lit(v.Message), jen.True()))
				}
			}
		}),
		jen.Return(jen.Lit(""), jen.False()),
	)

	f.Comment("DetailedMessage returns the detailed message, falling back to Message.")
	f.Func().Params(jen.Id("v").Id(enum.Name)).Id("DetailedMessage").Params().Params(jen.String(), jen.Bool()).Block(
		jen.Switch(jen.Id("v")).BlockFunc(func(g *jen.Group) {
			for _, v := range enum.Variants {
				if v.HasDetailedMessage {
					g.Case(jen.Id(v.Name)).Block(jen.Return(jen.Lit(v.DetailedMessage), jen.True()))
				}
			}
		}),
		jen.Return(jen.Id("v").Dot("Message").Call()),
	)

	f.Comment("Props returns the properties configured for the variant.")
	f.Func().Params(jen.Id("v").Id(enum.Name)).Id("Props").Params().Map(jen.String()).String().Block(
		jen.Switch(jen.Id("v")).BlockFunc(func(g *jen.Group) {
			for _, v := range enum.Variants {
				if len(v.Props) > 0 {
					g.Case(jen.Id(v.Name)).Block(jen.Return(propsLiteral(v)))
				}
			}
		}),
		jen.Return(jen.Nil()),
	)

	f.Comment("Prop returns one property of the variant by key.")
	f.Func().Params(jen.Id("v").Id(enum.Name)).Id("Prop").Params(jen.Id("key").String()).Params(jen.String(), jen.Bool()).Block(
		jen.List(jen.Id("value"), jen.Id("ok")).Op(":=").Id("v").Dot("Props").Call().Index(jen.Id("key")),
		jen.Return(jen.Id("value"), jen.Id("ok")),
	)
}

func genSumMessage(f *jen.File, enum *types.EnumInfo) {
	for _, v := range enum.Variants {
		recv := jen.Id(v.Name)

		f.Commentf("Message returns the message configured for %s.", v.Name)
		f.Func().Params(recv.Clone()).Id("Message").Params().Params(jen.String(), jen.Bool()).Block(
			messageReturn(v.Message, v.HasMessage),
		)

		f.Commentf("DetailedMessage returns the detailed message for %s, falling back to Message.", v.Name)
		detailed, hasDetailed := v.DetailedMessage, v.HasDetailedMessage
		if !hasDetailed && v.HasMessage {
			detailed, hasDetailed = v.Message, true
		}
		f.Func().Params(recv.Clone()).Id("DetailedMessage").Params().Params(jen.String(), jen.Bool()).Block(
			messageReturn(detailed, hasDetailed),
		)

		f.Commentf("Props returns the properties configured for %s.", v.Name)
		f.Func().Params(recv.Clone()).Id("Props").Params().Map(jen.String()).String().BlockFunc(func(g *jen.Group) {
			if len(v.Props) > 0 {
				g.Return(propsLiteral(v))
			} else {
				g.Return(jen.Nil())
			}
		})

		f.Commentf("Prop returns one property of %s by key.", v.Name)
		f.Func().Params(jen.Id("v").Id(v.Name)).Id("Prop").Params(jen.Id("key").String()).Params(jen.String(), jen.Bool()).Block(
			jen.List(jen.Id("value"), jen.Id("ok")).Op(":=").Id("v").Dot("Props").Call().Index(jen.Id("key")),
			jen.Return(jen.Id("value"), jen.Id("ok")),
		)
	}
}

func messageReturn(msg string, ok bool) jen.Code {
	if ok {
		return jen.Return(jen.Lit(msg), jen.True())
	}
	return jen.Return(jen.Lit(""), jen.False())
}

// propsLiteral builds a fresh map literal so callers can mutate the
// result without corrupting shared state.
func propsLiteral(v *types.VariantInfo) jen.Code {
	return jen.Map(jen.String()).String().ValuesFunc(func(g *jen.Group) {
		for _, p := range v.Props {
			g.Add(jen.Lit(p.Key).Op(":").Lit(p.Value))
		}
	})
}
