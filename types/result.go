package types

// ProcessResult collects the enums discovered during a scan.
type ProcessResult struct {
	// Enums in discovery order (package load order, then declaration order).
	Enums []*EnumInfo
	// ByName indexes enums by "<pkgpath>.<name>".
	ByName map[string]*EnumInfo
}

// NewProcessResult returns an empty result.
func NewProcessResult() *ProcessResult {
	return &ProcessResult{ByName: make(map[string]*EnumInfo)}
}

// Add records a discovered enum.
func (r *ProcessResult) Add(e *EnumInfo) {
	r.Enums = append(r.Enums, e)
	r.ByName[e.PkgPath+"."+e.Name] = e
}

// Lookup finds an enum by short name, preferring the first match.
func (r *ProcessResult) Lookup(name string) (*EnumInfo, bool) {
	for _, e := range r.Enums {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}
