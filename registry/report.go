package registry

// Resolution records how one capability was resolved during Apply.
type Resolution struct {
	Name   string
	Source Source
	Err    error
}

// Report summarizes one apply pass over the capability table.
type Report struct {
	provides    string
	resolutions []Resolution
}

// Provides returns the feature marker name other modules can declare as a
// dependency to ensure the table has been applied before they run.
func (r *Report) Provides() string {
	return r.provides
}

// Resolutions returns the per-capability outcomes in registration order.
func (r *Report) Resolutions() []Resolution {
	out := make([]Resolution, len(r.resolutions))
	copy(out, r.resolutions)
	return out
}

// Source returns the resolution source for a capability name.
func (r *Report) Source(name string) (Source, bool) {
	for _, res := range r.resolutions {
		if res.Name == name {
			return res.Source, true
		}
	}
	return "", false
}
