package parser

import (
	"fmt"
	"go/ast"
	"go/token"
	gotypes "go/types"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/alex/strum/annotations"
	"github.com/alex/strum/config"
	"github.com/alex/strum/logger"
	"github.com/alex/strum/types"
	"github.com/alex/strum/utils"
)

// Annotation names recognized by the scanner.
const (
	AnnotationStrum         = "strum"
	AnnotationVariant       = "variant"
	AnnotationProps         = "props"
	AnnotationDiscriminants = "discriminants"
)

// Scanner discovers annotated enums in loaded packages.
type Scanner struct {
	cfg *config.Config
	log logger.Logger
}

// NewScanner returns a scanner using the given configuration and logger.
func NewScanner(cfg *config.Config, log logger.Logger) *Scanner {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	if log == nil {
		log = logger.NewDefaultLogger()
	}
	return &Scanner{cfg: cfg, log: log}
}

// ScanPatterns loads the given package patterns and scans them.
func (s *Scanner) ScanPatterns(patterns ...string) (*types.ProcessResult, error) {
	pkgs, err := utils.LoadPackages(patterns...)
	if err != nil {
		return nil, fmt.Errorf("strum: failed to load packages: %w", err)
	}
	return s.Scan(pkgs)
}

// Scan walks the loaded packages and builds descriptors for every
// annotated enum, validating each before it is added to the result.
func (s *Scanner) Scan(pkgs []*packages.Package) (*types.ProcessResult, error) {
	res := types.NewProcessResult()
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("strum: package %s has errors: %v", pkg.PkgPath, pkg.Errors[0])
		}
		if err := s.scanPackage(res, pkg); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// typeDecl is a type declaration with its annotations, in source order.
type typeDecl struct {
	spec *ast.TypeSpec
	anns annotations.Group
	file *ast.File
}

func (s *Scanner) scanPackage(res *types.ProcessResult, pkg *packages.Package) error {
	var decls []typeDecl
	var constDecls []*ast.GenDecl

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			d, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}
			switch d.Tok {
			case token.TYPE:
				for _, spec := range d.Specs {
					ts, ok := spec.(*ast.TypeSpec)
					if !ok {
						continue
					}
					doc := ts.Doc
					if doc == nil {
						doc = d.Doc
					}
					decls = append(decls, typeDecl{
						spec: ts,
						anns: annotations.ParseAnnotations([]*ast.CommentGroup{doc, ts.Comment}),
						file: file,
					})
				}
			case token.CONST:
				constDecls = append(constDecls, d)
			}
		}
	}

	for _, td := range decls {
		if !td.anns.Has(AnnotationStrum) {
			continue
		}
		name := td.spec.Name.Name
		if !s.wantType(name) {
			s.log.Debug("skipping enum excluded by type filter", "enum", name)
			continue
		}

		enum, err := s.buildEnum(pkg, td, decls, constDecls)
		if err != nil {
			return err
		}
		if err := Validate(enum); err != nil {
			return err
		}
		s.log.Debug("discovered enum",
			"enum", enum.Name, "kind", string(enum.Kind), "variants", len(enum.Variants))
		res.Add(enum)
	}

	return nil
}

// warnMisplaced logs annotations that are recognized but not valid at
// the given placement. Unknown annotation names are left alone.
func (s *Scanner) warnMisplaced(enum string, anns annotations.Group, p annotations.Placement) {
	specs := annotations.BuiltinSpecs()
	for _, ann := range anns {
		if !specs.IsValidPlacement(ann.Name, p) {
			s.log.Warn("annotation not valid at this placement",
				"enum", enum, "annotation", "@"+ann.Name, "placement", string(p))
		}
	}
}

// wantType applies the optional type filter from the configuration.
func (s *Scanner) wantType(name string) bool {
	if len(s.cfg.Scanning.Types) == 0 {
		return true
	}
	for _, t := range s.cfg.Scanning.Types {
		if t == name {
			return true
		}
	}
	return false
}

// buildEnum constructs the descriptor for one @strum-annotated type.
func (s *Scanner) buildEnum(pkg *packages.Package, td typeDecl, decls []typeDecl, constDecls []*ast.GenDecl) (*types.EnumInfo, error) {
	name := td.spec.Name.Name

	enum := &types.EnumInfo{
		Name:        name,
		PkgName:     pkg.Name,
		PkgPath:     pkg.PkgPath,
		Dir:         declDir(pkg, td.file),
		Comment:     utils.ExtractCommentText([]*ast.CommentGroup{td.spec.Doc, td.spec.Comment}),
		Annotations: td.anns,
		Position:    td.spec.Pos(),
	}

	s.warnMisplaced(name, td.anns, annotations.PlacementEnum)
	if err := s.applyEnumAnnotations(enum); err != nil {
		return nil, err
	}

	obj, ok := pkg.TypesInfo.Defs[td.spec.Name].(*gotypes.TypeName)
	if !ok {
		return nil, newValidationError(ErrUnsupportedShape, name, "", "",
			"type information unavailable")
	}
	named, ok := obj.Type().(*gotypes.Named)
	if !ok {
		return nil, newValidationError(ErrUnsupportedShape, name, "", "",
			"@strum target must be a named type")
	}

	switch underlying := named.Underlying().(type) {
	case *gotypes.Interface:
		if !isSealed(underlying) {
			return nil, newValidationError(ErrUnsupportedShape, name, "", "",
				"interface enums must be sealed by exactly one unexported method")
		}
		enum.Kind = types.EnumKindSum
		if err := s.collectStructVariants(pkg, enum, underlying, decls); err != nil {
			return nil, err
		}
	case *gotypes.Basic:
		enum.Kind = types.EnumKindConst
		enum.BaseType = underlying.Name()
		if err := s.collectConstVariants(enum, constDecls); err != nil {
			return nil, err
		}
	default:
		return nil, newValidationError(ErrUnsupportedShape, name, "", "",
			fmt.Sprintf("cannot enumerate a type with underlying %s", underlying.String()))
	}

	return enum, nil
}

// isSealed reports whether iface has exactly one unexported method and
// no embedded interfaces, the marker-method sum type convention.
func isSealed(iface *gotypes.Interface) bool {
	return iface.NumEmbeddeds() == 0 &&
		iface.NumExplicitMethods() == 1 &&
		!iface.ExplicitMethod(0).Exported()
}

// collectConstVariants gathers the constants of a const-block enum, in
// declaration order. The explicit type of a value spec carries over to
// the untyped specs that follow it, matching the const block semantics.
func (s *Scanner) collectConstVariants(enum *types.EnumInfo, constDecls []*ast.GenDecl) error {
	for _, d := range constDecls {
		currentType := ""
		for _, spec := range d.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			if vs.Type != nil {
				if ident, ok := vs.Type.(*ast.Ident); ok {
					currentType = ident.Name
				} else {
					currentType = ""
				}
			} else if len(vs.Values) > 0 && !containsIota(vs.Values) {
				// A fresh untyped value breaks the type inheritance chain.
				currentType = ""
			}
			if currentType != enum.Name {
				continue
			}

			anns := annotations.ParseAnnotations([]*ast.CommentGroup{vs.Doc, vs.Comment})
			for _, name := range vs.Names {
				if name.Name == "_" {
					continue
				}
				v := &types.VariantInfo{
					Name:        name.Name,
					Kind:        types.VariantKindUnit,
					Comment:     utils.ExtractCommentText([]*ast.CommentGroup{vs.Doc, vs.Comment}),
					Annotations: anns,
					Position:    name.Pos(),
				}
				s.warnMisplaced(enum.Name, anns, annotations.PlacementVariant)
				if err := applyVariantAnnotations(enum.Name, v); err != nil {
					return err
				}
				enum.Variants = append(enum.Variants, v)
			}
		}
	}

	return nil
}

// containsIota reports whether any value expression references iota.
func containsIota(values []ast.Expr) bool {
	for _, v := range values {
		found := false
		ast.Inspect(v, func(n ast.Node) bool {
			if ident, ok := n.(*ast.Ident); ok && ident.Name == "iota" {
				found = true
				return false
			}
			return true
		})
		if found {
			return true
		}
	}
	return false
}

// collectStructVariants gathers the struct types implementing a sealed
// interface, in declaration order.
func (s *Scanner) collectStructVariants(pkg *packages.Package, enum *types.EnumInfo, iface *gotypes.Interface, decls []typeDecl) error {
	for _, td := range decls {
		obj, ok := pkg.TypesInfo.Defs[td.spec.Name].(*gotypes.TypeName)
		if !ok {
			continue
		}
		named, ok := obj.Type().(*gotypes.Named)
		if !ok {
			continue
		}
		st, ok := named.Underlying().(*gotypes.Struct)
		if !ok {
			continue
		}
		implementsValue := gotypes.Implements(named, iface)
		if !implementsValue && !gotypes.Implements(gotypes.NewPointer(named), iface) {
			continue
		}

		v := &types.VariantInfo{
			Name:        td.spec.Name.Name,
			Kind:        variantKind(st),
			Pointer:     !implementsValue,
			Fields:      collectFields(pkg, st),
			Comment:     utils.ExtractCommentText([]*ast.CommentGroup{td.spec.Doc, td.spec.Comment}),
			Annotations: td.anns,
			Position:    td.spec.Pos(),
		}
		s.warnMisplaced(enum.Name, td.anns, annotations.PlacementVariant)
		if err := applyVariantAnnotations(enum.Name, v); err != nil {
			return err
		}
		enum.Variants = append(enum.Variants, v)
	}

	return nil
}

func variantKind(st *gotypes.Struct) types.VariantKind {
	switch st.NumFields() {
	case 0:
		return types.VariantKindUnit
	case 1:
		return types.VariantKindNewtype
	default:
		return types.VariantKindStruct
	}
}

// collectFields describes the fields of a variant struct.
func collectFields(pkg *packages.Package, st *gotypes.Struct) []types.FieldInfo {
	qualifier := gotypes.RelativeTo(pkg.Types)
	fields := make([]types.FieldInfo, 0, st.NumFields())
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		fi := types.FieldInfo{
			Name: f.Name(),
			Type: gotypes.TypeString(f.Type(), qualifier),
		}
		if basic, ok := f.Type().(*gotypes.Basic); ok && basic.Kind() == gotypes.String {
			fi.StringAssignable = true
			fi.TypeName = "string"
		} else if named, ok := f.Type().(*gotypes.Named); ok {
			if basic, ok := named.Underlying().(*gotypes.Basic); ok && basic.Kind() == gotypes.String {
				fi.StringAssignable = true
				fi.TypeName = named.Obj().Name()
				if named.Obj().Pkg() != nil && named.Obj().Pkg() != pkg.Types {
					fi.TypePkgPath = named.Obj().Pkg().Path()
				}
			}
		}
		fields = append(fields, fi)
	}
	return fields
}

// declDir returns the directory of the file declaring the enum.
func declDir(pkg *packages.Package, file *ast.File) string {
	pos := pkg.Fset.Position(file.Package)
	if pos.Filename != "" {
		return filepath.Dir(pos.Filename)
	}
	if len(pkg.GoFiles) > 0 {
		return filepath.Dir(pkg.GoFiles[0])
	}
	return "."
}

// defaultCapabilities resolves the configured fallback capability set.
func (s *Scanner) defaultCapabilities() ([]types.Capability, error) {
	names := s.cfg.Generation.DefaultCapabilities
	caps := make([]types.Capability, 0, len(names))
	for _, n := range names {
		c, err := ParseCapability(n)
		if err != nil {
			return nil, err
		}
		caps = append(caps, c)
	}
	return caps, nil
}

// ParseCapability resolves a capability flag name.
func ParseCapability(name string) (types.Capability, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "string":
		return types.CapString, nil
	case "parse":
		return types.CapParse, nil
	case "values", "iter":
		return types.CapValues, nil
	case "message", "messages":
		return types.CapMessage, nil
	case "count":
		return types.CapCount, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCapability, name)
}
