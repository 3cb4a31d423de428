package gen

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"

	"github.com/alex/strum/config"
	"github.com/alex/strum/logger"
	"github.com/alex/strum/types"
	"github.com/alex/strum/utils"
)

const fileHeader = "Code generated by strum. DO NOT EDIT."

// DebugEnv toggles dumping of generated source to stderr. Set to "1",
// "true" or "all" to dump every type, or to a comma-separated list of
// enum names. The dump never changes what is written to disk.
const DebugEnv = "STRUM_DEBUG"

// Generator writes the augmentation files for a scan result. File
// emission runs in parallel with a worker limit; each enum's file is an
// independent, pure transform of its descriptor.
type Generator struct {
	res     *types.ProcessResult
	cfg     *config.Config
	log     logger.Logger
	workers int

	// Tracks packages that already received the shared runtime file.
	runtimeMu   sync.Mutex
	runtimeDone map[string]bool
}

// NewGenerator creates a generator for the given scan result.
func NewGenerator(res *types.ProcessResult, cfg *config.Config, log logger.Logger) *Generator {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	if log == nil {
		log = logger.NewDefaultLogger()
	}
	workers := cfg.Generation.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Generator{
		res:         res,
		cfg:         cfg,
		log:         log,
		workers:     workers,
		runtimeDone: make(map[string]bool),
	}
}

// WithWorkers sets the number of parallel workers.
func (g *Generator) WithWorkers(n int) *Generator {
	if n > 0 {
		g.workers = n
	}
	return g
}

// Generate writes one file per enum, plus the shared runtime file for
// every package whose parse path can fail.
func (g *Generator) Generate(ctx context.Context) error {
	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(g.workers)

	for _, enum := range g.res.Enums {
		errg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return g.generateEnum(enum)
			}
		})
	}

	return errg.Wait()
}

// generateEnum builds and writes the augmentation file for one enum.
func (g *Generator) generateEnum(enum *types.EnumInfo) error {
	f, err := BuildFile(enum)
	if err != nil {
		return err
	}

	dir := g.outDir(enum)
	name := strings.ToLower(enum.Name) + g.suffix()
	if err := g.writeFile(f, dir, name); err != nil {
		return NewGenerateError(enum.Name, "", "writing "+name, err)
	}
	g.log.Info("generated", "enum", enum.Name, "file", filepath.Join(dir, name))
	g.debugDump(enum, f, name)

	if needsRuntime(enum) {
		if err := g.generateRuntime(dir, enum.PkgName); err != nil {
			return NewGenerateError(enum.Name, "", "writing runtime support", err)
		}
	}
	return nil
}

// generateRuntime writes the shared ParseError file once per directory.
func (g *Generator) generateRuntime(dir, pkgName string) error {
	g.runtimeMu.Lock()
	done := g.runtimeDone[dir]
	g.runtimeDone[dir] = true
	g.runtimeMu.Unlock()
	if done {
		return nil
	}

	f := buildRuntimeFile(pkgName)
	return g.writeFile(f, dir, "strum_runtime.go")
}

func (g *Generator) outDir(enum *types.EnumInfo) string {
	if g.cfg.Generation.OutDir != "" {
		return g.cfg.Generation.OutDir
	}
	return enum.Dir
}

func (g *Generator) suffix() string {
	if s := g.cfg.Generation.Suffix; s != "" {
		return s
	}
	return "_strum.go"
}

// writeFile renders a jennifer file to disk.
func (g *Generator) writeFile(f *jen.File, dir, name string) error {
	if err := utils.EnsureDir(dir); err != nil {
		return err
	}
	return f.Save(filepath.Join(dir, name))
}

// debugDump prints the generated source to stderr when DebugEnv selects
// this enum. The dump is run through the imports formatter so it reads
// like the file on disk.
func (g *Generator) debugDump(enum *types.EnumInfo, f *jen.File, name string) {
	if !debugWants(os.Getenv(DebugEnv), enum.Name) {
		return
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		g.log.Warn("debug dump failed", "enum", enum.Name, "error", err)
		return
	}
	src := buf.Bytes()
	if formatted, err := imports.Process(name, src, nil); err == nil {
		src = formatted
	}
	fmt.Fprintf(os.Stderr, "// === strum debug: %s ===\n%s\n", enum.Name, src)
}

// debugWants reports whether the debug selector matches the enum name.
func debugWants(selector, enumName string) bool {
	selector = strings.TrimSpace(selector)
	switch strings.ToLower(selector) {
	case "":
		return false
	case "1", "true", "all":
		return true
	}
	for _, part := range strings.Split(selector, ",") {
		if strings.TrimSpace(part) == enumName {
			return true
		}
	}
	return false
}

// needsRuntime reports whether the enum's generated code references the
// shared ParseError type: a parse path without a default variant to
// absorb unmatched input, or a fallible companion parse.
func needsRuntime(enum *types.EnumInfo) bool {
	if enum.HasCapability(types.CapParse) && enum.DefaultVariant() == nil {
		return true
	}
	if enum.Discriminants != nil && enum.Discriminants.HasDerive(types.CapParse) {
		return true
	}
	return false
}

// BuildFile assembles the full augmentation file for one enum. It is a
// pure transform of the descriptor and performs no I/O.
func BuildFile(enum *types.EnumInfo) (*jen.File, error) {
	if enum.HasCapability(types.CapDiscriminants) && enum.Kind != types.EnumKindSum {
		return nil, NewGenerateError(enum.Name, "discriminants",
			"only sealed-interface enums have a discriminant companion", ErrUnsupportedCapability)
	}

	f := jen.NewFilePathName(enum.PkgPath, enum.PkgName)
	f.HeaderComment(fileHeader)

	type capabilityGen struct {
		cap types.Capability
		gen func(*jen.File, *types.EnumInfo) error
	}

	// Emission order is fixed for deterministic output.
	for _, cg := range []capabilityGen{
		{types.CapCount, genCount},
		{types.CapString, genString},
		{types.CapParse, genParse},
		{types.CapValues, genValues},
		{types.CapMessage, genMessage},
		{types.CapDiscriminants, genDiscriminants},
	} {
		if !enum.HasCapability(cg.cap) {
			continue
		}
		if err := cg.gen(f, enum); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// buildRuntimeFile emits the package-shared parse failure support.
func buildRuntimeFile(pkgName string) *jen.File {
	f := jen.NewFile(pkgName)
	f.HeaderComment(fileHeader)

	f.Comment("ErrNoMatchingVariant is matched by every ParseError via errors.Is.")
	f.Var().Id("ErrNoMatchingVariant").Op("=").Qual("errors", "New").Call(jen.Lit("no matching variant"))

	f.Comment("ParseError reports an input string that matched no variant alias.")
	f.Type().Id("ParseError").Struct(
		jen.Id("Type").String(),
		jen.Id("Input").String(),
	)

	f.Comment("Error implements the error interface.")
	f.Func().Params(jen.Id("e").Op("*").Id("ParseError")).Id("Error").Params().String().Block(
		jen.Return(jen.Lit("no matching variant of ").
			Op("+").Id("e").Dot("Type").
			Op("+").Lit(" for ").
			Op("+").Qual("strconv", "Quote").Call(jen.Id("e").Dot("Input"))),
	)

	f.Comment("Is reports whether target is the no-matching-variant condition.")
	f.Func().Params(jen.Id("e").Op("*").Id("ParseError")).Id("Is").Params(jen.Id("target").Error()).Bool().Block(
		jen.Return(jen.Id("target").Op("==").Id("ErrNoMatchingVariant")),
	)

	return f
}
