package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alex/strum/annotations"
	"github.com/alex/strum/config"
	"github.com/alex/strum/logger"
	"github.com/alex/strum/types"
)

func newTestScanner() *Scanner {
	return NewScanner(config.NewDefaultConfig(), logger.NewDefaultLogger())
}

func TestScanTestdata(t *testing.T) {
	res, err := newTestScanner().ScanPatterns("./testdata/colors")
	require.NoError(t, err)
	require.Len(t, res.Enums, 4)

	t.Run("const enum", func(t *testing.T) {
		color, ok := res.Lookup("Color")
		require.True(t, ok)
		assert.Equal(t, types.EnumKindConst, color.Kind)
		assert.Equal(t, "int", color.BaseType)
		assert.Equal(t, types.CaseSnake, color.SerializeAll)
		require.Len(t, color.Variants, 4)

		names := make([]string, 0, 4)
		for _, v := range color.Variants {
			names = append(names, v.Name)
		}
		assert.Equal(t, []string{"Red", "Green", "Blue", "Yellow"}, names)

		red := color.Variants[0]
		assert.True(t, red.HasMessage)
		assert.Equal(t, "stop", red.Message)
		hex, ok := red.Prop("hex")
		assert.True(t, ok)
		assert.Equal(t, "#ff0000", hex)

		green := color.Variants[1]
		assert.Equal(t, []string{"g"}, green.Aliases)
		assert.Equal(t, "green means go", green.DetailedMessage)

		blue := color.Variants[2]
		assert.True(t, blue.HasToString)
		assert.Equal(t, "BLUE", blue.RenderName(color.SerializeAll))

		assert.True(t, color.Variants[3].Disabled)
		assert.Len(t, color.ActiveVariants(), 3)
	})

	t.Run("const inheritance stops at untyped value", func(t *testing.T) {
		priority, ok := res.Lookup("Priority")
		require.True(t, ok)
		require.Len(t, priority.Variants, 2)
		assert.Equal(t, "Low", priority.Variants[0].Name)
		assert.Equal(t, "High", priority.Variants[1].Name)
	})

	t.Run("sum enum", func(t *testing.T) {
		shape, ok := res.Lookup("Shape")
		require.True(t, ok)
		assert.Equal(t, types.EnumKindSum, shape.Kind)
		require.Len(t, shape.Variants, 3, "NotAVariant must be excluded")

		circle := shape.Variants[0]
		assert.Equal(t, "Circle", circle.Name)
		assert.Equal(t, types.VariantKindNewtype, circle.Kind)

		rect := shape.Variants[1]
		assert.Equal(t, types.VariantKindStruct, rect.Kind)
		require.Len(t, rect.Fields, 2)

		unknown := shape.Variants[2]
		assert.True(t, unknown.Default)
		require.Len(t, unknown.Fields, 1)
		assert.True(t, unknown.Fields[0].StringAssignable)
		assert.Equal(t, "string", unknown.Fields[0].TypeName)

		require.NotNil(t, shape.Discriminants)
		assert.Equal(t, "ShapeKind", shape.Discriminants.Name)
		assert.True(t, shape.Discriminants.HasDerive(types.CapParse))
		assert.True(t, shape.Discriminants.HasDerive(types.CapValues))
		assert.True(t, shape.Discriminants.HasDerive(types.CapCount))
	})

	t.Run("pointer receiver implementers", func(t *testing.T) {
		animal, ok := res.Lookup("Animal")
		require.True(t, ok)
		require.Len(t, animal.Variants, 2)

		cat := animal.Variants[0]
		assert.Equal(t, "Cat", cat.Name)
		assert.False(t, cat.Pointer)

		dog := animal.Variants[1]
		assert.Equal(t, "Dog", dog.Name)
		assert.True(t, dog.Pointer, "pointer-only implementers must be flagged")
	})
}

func TestScanRespectsTypeFilter(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Scanning.Types = []string{"Color"}
	res, err := NewScanner(cfg, logger.NewDefaultLogger()).ScanPatterns("./testdata/colors")
	require.NoError(t, err)
	require.Len(t, res.Enums, 1)
	assert.Equal(t, "Color", res.Enums[0].Name)
}

func TestApplyVariantParams(t *testing.T) {
	t.Run("options", func(t *testing.T) {
		v := &types.VariantInfo{Name: "Blue"}
		ann := annotations.Annotation{Name: "variant", Params: []annotations.Param{
			{Key: "serialize", Value: "blue"},
			{Key: "serialize", Value: "b"},
			{Key: "to_string", Value: "BLUE"},
			{Key: "message", Value: "cold"},
			{Key: "props", Value: `hex:"#0000ff"`},
		}}
		require.NoError(t, applyVariantParams("Color", v, ann))
		assert.Equal(t, []string{"blue", "b"}, v.Aliases)
		assert.Equal(t, "BLUE", v.ToString)
		assert.Equal(t, "cold", v.Message)
		hex, ok := v.Prop("hex")
		assert.True(t, ok)
		assert.Equal(t, "#0000ff", hex)
	})

	t.Run("duplicate to_string fails", func(t *testing.T) {
		v := &types.VariantInfo{Name: "Blue"}
		ann := annotations.Annotation{Name: "variant", Params: []annotations.Param{
			{Key: "to_string", Value: "a"},
			{Key: "to_string", Value: "b"},
		}}
		err := applyVariantParams("Color", v, ann)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidAnnotation)
	})

	t.Run("duplicate prop key fails", func(t *testing.T) {
		v := &types.VariantInfo{Name: "Blue"}
		ann := annotations.Annotation{Name: "variant", Params: []annotations.Param{
			{Key: "props", Value: `hex:"#00f", hex:"#0ff"`},
		}}
		err := applyVariantParams("Color", v, ann)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDuplicateProp)
	})

	t.Run("unknown option fails", func(t *testing.T) {
		v := &types.VariantInfo{Name: "Blue"}
		ann := annotations.Annotation{Name: "variant", Params: []annotations.Param{
			{Key: "colour", Value: "blue"},
		}}
		err := applyVariantParams("Color", v, ann)
		assert.ErrorIs(t, err, ErrInvalidAnnotation)
	})
}

func TestValidate(t *testing.T) {
	stringField := []types.FieldInfo{{Name: "Name", Type: "string", TypeName: "string", StringAssignable: true}}

	t.Run("two defaults fail", func(t *testing.T) {
		enum := &types.EnumInfo{
			Name: "Shape",
			Kind: types.EnumKindSum,
			Variants: []*types.VariantInfo{
				{Name: "A", Kind: types.VariantKindNewtype, Fields: stringField, Default: true},
				{Name: "B", Kind: types.VariantKindNewtype, Fields: stringField, Default: true},
			},
		}
		assert.ErrorIs(t, Validate(enum), ErrConflictingDefault)
	})

	t.Run("default on const enum fails", func(t *testing.T) {
		enum := &types.EnumInfo{
			Name: "Color",
			Kind: types.EnumKindConst,
			Variants: []*types.VariantInfo{
				{Name: "Red", Kind: types.VariantKindUnit, Default: true},
			},
		}
		assert.ErrorIs(t, Validate(enum), ErrInvalidDefault)
	})

	t.Run("default on multi-field variant fails", func(t *testing.T) {
		enum := &types.EnumInfo{
			Name: "Shape",
			Kind: types.EnumKindSum,
			Variants: []*types.VariantInfo{
				{Name: "Rect", Kind: types.VariantKindStruct, Default: true, Fields: []types.FieldInfo{
					{Name: "W", Type: "float64"}, {Name: "H", Type: "float64"},
				}},
			},
		}
		assert.ErrorIs(t, Validate(enum), ErrInvalidDefault)
	})

	t.Run("default field must accept a string", func(t *testing.T) {
		enum := &types.EnumInfo{
			Name: "Shape",
			Kind: types.EnumKindSum,
			Variants: []*types.VariantInfo{
				{Name: "N", Kind: types.VariantKindNewtype, Default: true, Fields: []types.FieldInfo{
					{Name: "V", Type: "int"},
				}},
			},
		}
		assert.ErrorIs(t, Validate(enum), ErrInvalidDefault)
	})

	t.Run("duplicate alias across variants fails", func(t *testing.T) {
		enum := &types.EnumInfo{
			Name: "Color",
			Kind: types.EnumKindConst,
			Variants: []*types.VariantInfo{
				{Name: "Red", Aliases: []string{"r"}},
				{Name: "Rose", Aliases: []string{"r"}},
			},
		}
		assert.ErrorIs(t, Validate(enum), ErrDuplicateAlias)
	})

	t.Run("alias shared with the default variant fails", func(t *testing.T) {
		enum := &types.EnumInfo{
			Name: "Shape",
			Kind: types.EnumKindSum,
			Variants: []*types.VariantInfo{
				{Name: "Circle", Kind: types.VariantKindUnit, Aliases: []string{"round"}},
				{Name: "Other", Kind: types.VariantKindNewtype, Fields: stringField,
					Default: true, Aliases: []string{"round"}},
			},
		}
		assert.ErrorIs(t, Validate(enum), ErrDuplicateAlias)
	})

	t.Run("disabled variants do not claim aliases", func(t *testing.T) {
		enum := &types.EnumInfo{
			Name: "Color",
			Kind: types.EnumKindConst,
			Variants: []*types.VariantInfo{
				{Name: "Red", Aliases: []string{"r"}},
				{Name: "Rose", Aliases: []string{"r"}, Disabled: true},
			},
		}
		assert.NoError(t, Validate(enum))
	})

	t.Run("discriminants on const enum fails", func(t *testing.T) {
		enum := &types.EnumInfo{
			Name:          "Color",
			Kind:          types.EnumKindConst,
			Discriminants: &types.DiscriminantsInfo{},
			Variants:      []*types.VariantInfo{{Name: "Red"}},
		}
		assert.ErrorIs(t, Validate(enum), ErrInvalidAnnotation)
	})

	t.Run("empty enum fails", func(t *testing.T) {
		enum := &types.EnumInfo{Name: "Color", Kind: types.EnumKindConst}
		assert.ErrorIs(t, Validate(enum), ErrNoVariants)
	})
}

func TestValidationErrorMessage(t *testing.T) {
	err := newValidationError(ErrDuplicateProp, "Color", "Red", `@props(hex:"#f00", hex:"#f00")`, "property hex given more than once")
	msg := err.Error()
	assert.Contains(t, msg, "Color")
	assert.Contains(t, msg, "Red")
	assert.Contains(t, msg, "@props")
	assert.True(t, errors.Is(err, ErrDuplicateProp))
}

func TestParseCapabilityNames(t *testing.T) {
	for name, want := range map[string]types.Capability{
		"string": types.CapString,
		"parse":  types.CapParse,
		"values": types.CapValues,
		"iter":   types.CapValues,
		"count":  types.CapCount,
	} {
		got, err := ParseCapability(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseCapability("teleport")
	assert.ErrorIs(t, err, ErrUnknownCapability)
}
