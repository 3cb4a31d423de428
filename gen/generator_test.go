package gen

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alex/strum/config"
	"github.com/alex/strum/logger"
	"github.com/alex/strum/types"
)

func colorEnum() *types.EnumInfo {
	return &types.EnumInfo{
		Name:         "Color",
		PkgName:      "models",
		PkgPath:      "example.com/demo/models",
		Kind:         types.EnumKindConst,
		BaseType:     "int",
		SerializeAll: types.CaseSnake,
		Capabilities: []types.Capability{
			types.CapCount, types.CapString, types.CapParse,
			types.CapValues, types.CapMessage,
		},
		Variants: []*types.VariantInfo{
			{Name: "Red", Kind: types.VariantKindUnit, Message: "stop", HasMessage: true,
				Props: []types.Prop{{Key: "hex", Value: "#ff0000"}}},
			{Name: "Green", Kind: types.VariantKindUnit, Aliases: []string{"g"},
				Message: "go", HasMessage: true,
				DetailedMessage: "green means go", HasDetailedMessage: true},
			{Name: "Blue", Kind: types.VariantKindUnit, ToString: "BLUE", HasToString: true,
				Aliases: []string{"blue", "b"}},
			{Name: "Yellow", Kind: types.VariantKindUnit, Disabled: true},
		},
	}
}

func shapeEnum() *types.EnumInfo {
	return &types.EnumInfo{
		Name:         "Shape",
		PkgName:      "models",
		PkgPath:      "example.com/demo/models",
		Kind:         types.EnumKindSum,
		SerializeAll: types.CaseSnake,
		Capabilities: []types.Capability{
			types.CapCount, types.CapString, types.CapParse,
			types.CapValues, types.CapDiscriminants,
		},
		Discriminants: &types.DiscriminantsInfo{
			Name:   "ShapeKind",
			Derive: []types.Capability{types.CapParse, types.CapValues, types.CapCount},
		},
		Variants: []*types.VariantInfo{
			{Name: "Circle", Kind: types.VariantKindNewtype,
				Fields: []types.FieldInfo{{Name: "Radius", Type: "float64", TypeName: "float64"}}},
			{Name: "Rect", Kind: types.VariantKindStruct,
				Fields: []types.FieldInfo{
					{Name: "W", Type: "float64"}, {Name: "H", Type: "float64"},
				}},
			{Name: "Unknown", Kind: types.VariantKindNewtype, Default: true,
				Fields: []types.FieldInfo{{Name: "Name", Type: "string", TypeName: "string", StringAssignable: true}}},
		},
	}
}

func render(t *testing.T, enum *types.EnumInfo) string {
	t.Helper()
	f, err := BuildFile(enum)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf))
	return buf.String()
}

func TestBuildFileConstEnum(t *testing.T) {
	src := render(t, colorEnum())

	assert.Contains(t, src, "Code generated by strum. DO NOT EDIT.")
	assert.Contains(t, src, "package models")

	// count covers every declared variant, disabled included
	assert.Contains(t, src, "const ColorCount = 4")
	assert.Contains(t, src, "func (Color) VariantCount() int")

	// render priority: to_string beats aliases beats converted name
	assert.Contains(t, src, "func (v Color) String() string")
	assert.Contains(t, src, `return "red"`)
	assert.Contains(t, src, `return "BLUE"`)
	assert.Contains(t, src, `return "yellow"`, "disabled variants still render")

	// aliased variants parse only by their aliases
	assert.Contains(t, src, "func ParseColor(s string) (Color, error)")
	assert.Contains(t, src, `case "g":`)
	assert.Contains(t, src, `case "BLUE", "blue", "b":`)
	assert.NotContains(t, src, `case "yellow"`, "disabled variants never parse")
	assert.Contains(t, src, "var zero Color")
	assert.Contains(t, src, `Type:  "Color"`)

	assert.Contains(t, src, "func ColorValues() []Color")
	assert.Contains(t, src, "[]Color{Red, Green, Blue}")
	assert.Contains(t, src, "func ColorAll() iter.Seq[Color]")

	assert.Contains(t, src, `return "stop", true`)
	assert.Contains(t, src, `return "green means go", true`)
	assert.Contains(t, src, "return v.Message()")
	assert.Contains(t, src, `"hex": "#ff0000"`)
	assert.Contains(t, src, "func (v Color) Prop(key string) (string, bool)")
}

func TestBuildFileSumEnum(t *testing.T) {
	src := render(t, shapeEnum())

	// per-variant methods instead of a switch
	assert.Contains(t, src, "func (Circle) String() string")
	assert.Contains(t, src, `return "rect"`)

	// unmatched input lands in the default variant
	assert.Contains(t, src, "func ParseShape(s string) (Shape, error)")
	assert.Contains(t, src, "return Unknown{Name: s}, nil")
	assert.NotContains(t, src, `case "unknown"`, "default variant owns the fallthrough, not a case")

	assert.Contains(t, src, "func ShapeValues() []Shape")
	assert.Contains(t, src, "[]Shape{Circle{}, Rect{}, Unknown{}}")

	// discriminant companion
	assert.Contains(t, src, "type ShapeKind int")
	assert.Contains(t, src, "ShapeKindCircle ShapeKind = iota")
	assert.Contains(t, src, "func ShapeKindOf(v Shape) ShapeKind")
	assert.Contains(t, src, "case Circle, *Circle:")
	assert.Contains(t, src, `panic("ShapeKindOf: nil Shape")`)
	assert.Contains(t, src, "func ParseShapeKind(s string) (ShapeKind, error)")
	assert.Contains(t, src, "func ShapeKindValues() []ShapeKind")
	assert.Contains(t, src, "const ShapeKindCount = 3")

	assert.Contains(t, src, "const ShapeCount = 3")
	assert.Contains(t, src, "func ShapeVariantCount() int")
}

func TestBuildFilePointerVariants(t *testing.T) {
	enum := &types.EnumInfo{
		Name:         "Animal",
		PkgName:      "zoo",
		PkgPath:      "example.com/demo/zoo",
		Kind:         types.EnumKindSum,
		SerializeAll: types.CaseSnake,
		Capabilities: []types.Capability{
			types.CapParse, types.CapValues, types.CapDiscriminants,
		},
		Discriminants: &types.DiscriminantsInfo{},
		Variants: []*types.VariantInfo{
			{Name: "Cat", Kind: types.VariantKindUnit},
			{Name: "Dog", Kind: types.VariantKindNewtype, Pointer: true,
				Fields: []types.FieldInfo{{Name: "Collar", Type: "string", TypeName: "string", StringAssignable: true}}},
		},
	}
	src := render(t, enum)

	// pointer-only implementers must be instantiated by address
	assert.Contains(t, src, "return &Dog{}, nil")
	assert.NotContains(t, src, "return Dog{}, nil")
	assert.Contains(t, src, "[]Animal{Cat{}, &Dog{}}")

	// a value case for a pointer-only implementer would not type-check
	assert.Contains(t, src, "case *Dog:")
	assert.NotContains(t, src, "case Dog, *Dog:")
	assert.Contains(t, src, "case Cat, *Cat:")
}

func TestBuildFilePointerDefaultCapture(t *testing.T) {
	enum := shapeEnum()
	enum.Variants[2].Pointer = true
	src := render(t, enum)
	assert.Contains(t, src, "return &Unknown{Name: s}, nil")
}

func TestBuildFileDefaultConversion(t *testing.T) {
	enum := shapeEnum()
	def := enum.Variants[2]
	def.Fields[0] = types.FieldInfo{
		Name: "Tag", Type: "Label", TypeName: "Label", StringAssignable: true,
	}
	src := render(t, enum)
	assert.Contains(t, src, "return Unknown{Tag: Label(s)}, nil")
}

func TestBuildFileRejectsConstDiscriminants(t *testing.T) {
	enum := colorEnum()
	enum.Capabilities = append(enum.Capabilities, types.CapDiscriminants)
	enum.Discriminants = &types.DiscriminantsInfo{}

	_, err := BuildFile(enum)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedCapability)
}

func TestBuildFileHonorsCapabilities(t *testing.T) {
	enum := colorEnum()
	enum.Capabilities = []types.Capability{types.CapString}
	src := render(t, enum)

	assert.Contains(t, src, "func (v Color) String() string")
	assert.NotContains(t, src, "ParseColor")
	assert.NotContains(t, src, "ColorValues")
	assert.NotContains(t, src, "ColorCount")
	assert.NotContains(t, src, "Message")
}

func TestNeedsRuntime(t *testing.T) {
	color := colorEnum()
	assert.True(t, needsRuntime(color), "fallible parse needs ParseError")

	color.Capabilities = []types.Capability{types.CapString}
	assert.False(t, needsRuntime(color))

	shape := shapeEnum()
	assert.True(t, needsRuntime(shape), "companion parse is always fallible")

	shape.Discriminants = nil
	assert.False(t, needsRuntime(shape), "default variant absorbs unmatched input")
}

func TestBuildRuntimeFile(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, buildRuntimeFile("models").Render(&buf))
	src := buf.String()

	assert.Contains(t, src, "var ErrNoMatchingVariant = errors.New")
	assert.Contains(t, src, "type ParseError struct")
	assert.Contains(t, src, "strconv.Quote(e.Input)")
	assert.Contains(t, src, "func (e *ParseError) Is(target error) bool")
}

func TestGenerateWritesFiles(t *testing.T) {
	dir := t.TempDir()

	cfg := config.NewDefaultConfig()
	cfg.Generation.OutDir = dir

	res := types.NewProcessResult()
	res.Add(colorEnum())
	res.Add(shapeEnum())

	g := NewGenerator(res, cfg, logger.NewDefaultLogger()).WithWorkers(2)
	require.NoError(t, g.Generate(context.Background()))

	for _, name := range []string{"color_strum.go", "shape_strum.go", "strum_runtime.go"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	src, err := os.ReadFile(filepath.Join(dir, "color_strum.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "func ParseColor(s string) (Color, error)")
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := config.NewDefaultConfig()
	cfg.Generation.OutDir = t.TempDir()
	res := types.NewProcessResult()
	res.Add(colorEnum())

	err := NewGenerator(res, cfg, logger.NewDefaultLogger()).Generate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDebugWants(t *testing.T) {
	for _, tc := range []struct {
		selector string
		enum     string
		want     bool
	}{
		{"", "Color", false},
		{"1", "Color", true},
		{"true", "Shape", true},
		{"all", "Shape", true},
		{"Color", "Color", true},
		{"Color,Shape", "Shape", true},
		{"Color", "Shape", false},
		{" Color , Shape ", "Shape", true},
	} {
		assert.Equal(t, tc.want, debugWants(tc.selector, tc.enum),
			"selector %q enum %q", tc.selector, tc.enum)
	}
}

func TestGenerateError(t *testing.T) {
	err := NewGenerateError("Color", "parse", "boom", os.ErrPermission)
	assert.Contains(t, err.Error(), "Color")
	assert.Contains(t, err.Error(), "parse")
	assert.Contains(t, err.Error(), "boom")
	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.ErrorIs(t, err, os.ErrPermission)
}
