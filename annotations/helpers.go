package annotations

import "strings"

// GetParamValue returns the value of the first parameter with the given
// name. It checks the exact name first, then each alias.
func (a *Annotation) GetParamValue(name string, aliases ...string) (string, bool) {
	for _, p := range a.Params {
		if strings.EqualFold(p.Key, name) {
			return p.Value, true
		}
	}
	for _, alias := range aliases {
		for _, p := range a.Params {
			if strings.EqualFold(p.Key, alias) {
				return p.Value, true
			}
		}
	}
	return "", false
}

// GetParamValueOrDefault returns the value of a parameter by name,
// or the default value if not found.
func (a *Annotation) GetParamValueOrDefault(name string, defaultValue string, aliases ...string) string {
	if val, ok := a.GetParamValue(name, aliases...); ok {
		return val
	}
	return defaultValue
}

// GetParamValues returns every value carried by parameters with the
// given name or aliases, in source order. Used for repeatable
// parameters such as serialize.
func (a *Annotation) GetParamValues(name string, aliases ...string) []string {
	var out []string
	for _, p := range a.Params {
		if strings.EqualFold(p.Key, name) {
			out = append(out, p.Value)
			continue
		}
		for _, alias := range aliases {
			if strings.EqualFold(p.Key, alias) {
				out = append(out, p.Value)
				break
			}
		}
	}
	return out
}

// HasParam checks if the annotation has a parameter with the given name or aliases.
func (a *Annotation) HasParam(name string, aliases ...string) bool {
	_, ok := a.GetParamValue(name, aliases...)
	return ok
}

// GetParamBool returns a boolean parameter value. Accepted true values
// (case-insensitive): "true", "1", "yes", "on". Returns (value, true) if
// the param exists and was parsed, (false, false) if absent or unparsable.
func (a *Annotation) GetParamBool(name string, aliases ...string) (bool, bool) {
	raw, ok := a.GetParamValue(name, aliases...)
	if !ok {
		return false, false
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "on":
		return true, true
	case "false", "0", "no", "off":
		return false, true
	}
	return false, false
}

// GetParamBoolOrDefault returns the bool value of a parameter or a provided default.
func (a *Annotation) GetParamBoolOrDefault(name string, def bool, aliases ...string) bool {
	if v, ok := a.GetParamBool(name, aliases...); ok {
		return v
	}
	return def
}

// Flags returns the names of all boolean-flag parameters, in order.
func (a *Annotation) Flags() []string {
	var out []string
	for _, p := range a.Params {
		if p.Key != "" && p.Value == "true" {
			out = append(out, p.Key)
		}
	}
	return out
}

// GetParamStringList splits a comma or semicolon separated parameter
// value into a list, dropping bracket delimiters if present.
func (a *Annotation) GetParamStringList(name string, aliases ...string) ([]string, bool) {
	raw, ok := a.GetParamValue(name, aliases...)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, false
	}
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "[")
	raw = strings.TrimSuffix(raw, "]")
	raw = strings.ReplaceAll(raw, ";", ",")

	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(strings.Trim(strings.TrimSpace(part), `"'`))
		if part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}
