// Package utils provides filesystem and package-loading helpers.
package utils

import (
	"fmt"
	"go/ast"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

// Ptr returns a pointer to the given value
func Ptr[T any](v T) *T {
	return &v
}

// DerefPtr returns the value pointed to by ptr, or defaultValue if ptr is nil
func DerefPtr[T any](ptr *T, defaultValue T) T {
	if ptr != nil {
		return *ptr
	}
	return defaultValue
}

// EnsureDir makes sure a directory exists
func EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ExpandGlobs expands glob patterns with negations.
// Example:
//
//	"./models/*.go", "!./models/generated"
func ExpandGlobs(patterns ...string) ([]string, error) {
	include := []string{}
	exclude := []string{}

	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if strings.HasPrefix(p, "!") {
			exclude = append(exclude, strings.TrimPrefix(p, "!"))
		} else {
			include = append(include, p)
		}
	}

	results := map[string]struct{}{}

	for _, pattern := range include {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			results[m] = struct{}{}
		}
	}

	for _, pattern := range exclude {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			delete(results, m)
		}
	}

	out := make([]string, 0, len(results))
	for k := range results {
		out = append(out, k)
	}

	return out, nil
}

// UniqueDirs converts file paths to unique directories.
func UniqueDirs(files []string) []string {
	dirs := map[string]struct{}{}
	for _, f := range files {
		info, err := os.Stat(f)
		if err != nil {
			continue
		}
		dir := f
		if !info.IsDir() {
			dir = filepath.Dir(f)
		}
		dirs[dir] = struct{}{}
	}

	out := make([]string, 0, len(dirs))
	for d := range dirs {
		out = append(out, d)
	}
	return out
}

// loadMode is the package information enum discovery needs: syntax with
// comments, plus type information for sum-type variant resolution.
const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedModule

// LoadPackages loads Go packages from glob patterns or import paths.
func LoadPackages(patterns ...string) ([]*packages.Package, error) {
	if allPatternsAreImportPaths(patterns) {
		return LoadPackagesByImportPath(patterns...)
	}
	return LoadPackagesByFilePattern(patterns...)
}

// allPatternsAreImportPaths checks if all patterns look like Go import paths
func allPatternsAreImportPaths(patterns []string) bool {
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if after, ok := strings.CutPrefix(pattern, "!"); ok {
			pattern = after
		}
		if strings.Contains(pattern, ".go") ||
			strings.Contains(pattern, "*") ||
			strings.HasPrefix(pattern, "../") {
			return false
		}
	}
	return true
}

// LoadPackagesByImportPath loads packages using Go import paths.
func LoadPackagesByImportPath(patterns ...string) ([]*packages.Package, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg := &packages.Config{Mode: loadMode, Dir: wd}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, err
	}
	return pkgs, nil
}

// LoadPackagesByFilePattern loads packages from file glob patterns.
func LoadPackagesByFilePattern(patterns ...string) ([]*packages.Package, error) {
	files, err := ExpandGlobs(patterns...)
	if err != nil {
		return nil, err
	}

	dirs := UniqueDirs(files)
	if len(dirs) == 0 {
		return nil, fmt.Errorf("no directories found from patterns")
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg := &packages.Config{Mode: loadMode, Dir: wd}

	absDirs := make([]string, len(dirs))
	for i, dir := range dirs {
		if !filepath.IsAbs(dir) {
			absDirs[i] = filepath.Join(wd, dir)
		} else {
			absDirs[i] = dir
		}
	}

	pkgs, err := packages.Load(cfg, absDirs...)
	if err != nil {
		return nil, err
	}
	return pkgs, nil
}

// ExtractCommentText extracts plain text from comment groups, removing
// comment markers and annotation lines.
func ExtractCommentText(commentGroups []*ast.CommentGroup) string {
	if len(commentGroups) == 0 {
		return ""
	}

	var parts []string
	for _, group := range commentGroups {
		if group == nil {
			continue
		}
		for _, comment := range group.List {
			text := comment.Text
			if strings.HasPrefix(text, "//") {
				text = strings.TrimPrefix(text, "//")
			} else if strings.HasPrefix(text, "/*") && strings.HasSuffix(text, "*/") {
				text = strings.TrimPrefix(text, "/*")
				text = strings.TrimSuffix(text, "*/")
			}
			text = strings.TrimSpace(text)
			if text == "" || strings.HasPrefix(text, "@") {
				continue
			}
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, " ")
}
