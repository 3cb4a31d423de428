package annotations

import (
	"go/ast"
	"strings"
)

// ParseAnnotations extracts annotations from comment groups.
func ParseAnnotations(comments []*ast.CommentGroup) Group {
	var annotations Group

	for _, cg := range comments {
		if cg == nil {
			continue
		}
		for _, c := range cg.List {
			text := strings.TrimSpace(c.Text)
			text = strings.TrimPrefix(text, "//")
			text = strings.TrimPrefix(text, "/*")
			text = strings.TrimSuffix(text, "*/")
			text = strings.TrimSpace(text)

			for _, line := range strings.Split(text, "\n") {
				line = strings.TrimSpace(line)
				line = strings.TrimPrefix(line, "*")
				line = strings.TrimSpace(line)

				if strings.HasPrefix(line, "@") {
					ann := parseAnnotation(line)
					if ann.Name != "" {
						annotations = append(annotations, ann)
					}
				}
			}
		}
	}

	return annotations
}

// parseAnnotation parses a single annotation: @name or @name(key:value, flag, "positional")
func parseAnnotation(line string) Annotation {
	ann := Annotation{RawText: line}

	line = strings.TrimPrefix(line, "@")
	parenIdx := strings.Index(line, "(")

	// Bare form: @name
	if parenIdx == -1 {
		fields := strings.Fields(line)
		if len(fields) > 0 {
			ann.Name = fields[0]
		}
		return ann
	}

	ann.Name = strings.TrimSpace(line[:parenIdx])
	paramsStr := line[parenIdx+1:]
	if endIdx := strings.LastIndex(paramsStr, ")"); endIdx != -1 {
		paramsStr = paramsStr[:endIdx]
	}
	ann.Params = parseParams(paramsStr)
	return ann
}

// parseParams parses the comma-separated parameter list of an annotation.
// Supported forms, order preserved:
//
//	key:"value" or key="value"   key-value pair (repeatable keys allowed)
//	flag                          boolean flag, stored as flag:"true"
//	"value"                       positional value, stored under the empty key
//	key(inner, list)              nested group, inner text stored verbatim
func parseParams(s string) []Param {
	var params []Param

	for _, part := range splitTopLevel(s, ',') {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		// Nested group: key(...)
		if open := strings.Index(part, "("); open != -1 && !isInQuotes(part, open) {
			sep := separatorIndex(part)
			if sep == -1 || sep > open {
				key := strings.TrimSpace(part[:open])
				inner := part[open+1:]
				if end := strings.LastIndex(inner, ")"); end != -1 {
					inner = inner[:end]
				}
				params = append(params, Param{Key: key, Value: strings.TrimSpace(inner)})
				continue
			}
		}

		sep := separatorIndex(part)
		if sep == -1 {
			wasQuoted := (strings.HasPrefix(part, `"`) && strings.HasSuffix(part, `"`)) ||
				(strings.HasPrefix(part, `'`) && strings.HasSuffix(part, `'`))
			value := strings.Trim(part, `"'`)
			if !wasQuoted && isIdentifier(value) {
				// Boolean flag
				params = append(params, Param{Key: value, Value: "true"})
			} else {
				// Positional value
				params = append(params, Param{Key: "", Value: value})
			}
			continue
		}

		key := strings.TrimSpace(part[:sep])
		value := strings.TrimSpace(part[sep+1:])
		value = strings.Trim(value, `"'`)
		params = append(params, Param{Key: key, Value: value})
	}

	return params
}

// ParsePairs parses the inner text of a nested group (e.g. props(k:"v", k2:"v2"))
// into ordered key-value pairs.
func ParsePairs(inner string) []Param {
	return parseParams(inner)
}

// splitTopLevel splits s on sep, ignoring separators inside quotes,
// parentheses or brackets.
func splitTopLevel(s string, sep rune) []string {
	var parts []string
	var current strings.Builder
	inQuotes := false
	quoteChar := rune(0)
	depth := 0

	for _, ch := range s {
		switch {
		case ch == '"' || ch == '\'':
			if !inQuotes {
				inQuotes = true
				quoteChar = ch
			} else if ch == quoteChar {
				inQuotes = false
			}
			current.WriteRune(ch)
		case (ch == '(' || ch == '[') && !inQuotes:
			depth++
			current.WriteRune(ch)
		case (ch == ')' || ch == ']') && !inQuotes:
			depth--
			current.WriteRune(ch)
		case ch == sep && !inQuotes && depth == 0:
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	return parts
}

// separatorIndex finds the first unquoted : or = separator in part.
func separatorIndex(part string) int {
	for i, ch := range part {
		if (ch == ':' || ch == '=') && !isInQuotes(part, i) {
			return i
		}
	}
	return -1
}

// isInQuotes checks if a character at given index is inside quotes.
func isInQuotes(s string, idx int) bool {
	inQuotes := false
	quoteChar := rune(0)

	for i, ch := range s {
		if i >= idx {
			break
		}
		if ch == '"' || ch == '\'' {
			if !inQuotes {
				inQuotes = true
				quoteChar = ch
			} else if ch == quoteChar {
				inQuotes = false
			}
		}
	}

	return inQuotes
}

// isIdentifier reports whether s looks like a bare flag name.
func isIdentifier(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, ch := range s {
		isLetter := (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
		isDigit := ch >= '0' && ch <= '9'
		if !isLetter && !isDigit && ch != '_' && ch != '-' {
			return false
		}
	}
	return true
}
