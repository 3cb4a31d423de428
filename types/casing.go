package types

import (
	"fmt"
	"strings"

	"github.com/go-openapi/inflect"
)

// CaseStyle is a deterministic rename rule applied to a variant's
// declared name to derive its default alias.
type CaseStyle string

const (
	CaseNone        CaseStyle = ""
	CaseSnake       CaseStyle = "snake"
	CaseKebab       CaseStyle = "kebab"
	CaseCamel       CaseStyle = "camel"
	CasePascal      CaseStyle = "pascal"
	CaseShoutySnake CaseStyle = "shouty_snake"
	CaseShoutyKebab CaseStyle = "shouty_kebab"
	CaseTitle       CaseStyle = "title"
	CaseLower       CaseStyle = "lower"
	CaseUpper       CaseStyle = "upper"
)

// ParseCaseStyle resolves a serialize_all value into a CaseStyle.
// Common spellings are accepted as aliases.
func ParseCaseStyle(s string) (CaseStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return CaseNone, nil
	case "snake", "snake_case":
		return CaseSnake, nil
	case "kebab", "kebab-case", "kebab_case":
		return CaseKebab, nil
	case "camel", "camelcase", "camel_case", "lowercamel":
		return CaseCamel, nil
	case "pascal", "pascalcase", "pascal_case", "uppercamel":
		return CasePascal, nil
	case "shouty_snake", "shouty_snake_case", "screaming_snake", "screaming_snake_case":
		return CaseShoutySnake, nil
	case "shouty_kebab", "shouty_kebab_case", "screaming_kebab", "screaming-kebab-case":
		return CaseShoutyKebab, nil
	case "title", "title_case":
		return CaseTitle, nil
	case "lower", "lowercase":
		return CaseLower, nil
	case "upper", "uppercase":
		return CaseUpper, nil
	}
	return CaseNone, fmt.Errorf("unknown case style %q", s)
}

// Convert applies the rename rule to a declared variant name.
// CaseNone returns the name unchanged.
func (c CaseStyle) Convert(name string) string {
	switch c {
	case CaseSnake:
		return inflect.Underscore(name)
	case CaseKebab:
		return inflect.Dasherize(name)
	case CaseCamel:
		return inflect.CamelizeDownFirst(inflect.Underscore(name))
	case CasePascal:
		return inflect.Camelize(inflect.Underscore(name))
	case CaseShoutySnake:
		return strings.ToUpper(inflect.Underscore(name))
	case CaseShoutyKebab:
		return strings.ToUpper(inflect.Dasherize(name))
	case CaseTitle:
		return inflect.Titleize(name)
	case CaseLower:
		return strings.ToLower(name)
	case CaseUpper:
		return strings.ToUpper(name)
	}
	return name
}
