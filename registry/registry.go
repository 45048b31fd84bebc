package registry

import (
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	hostcompat "github.com/wippyai/host-compat"
	"github.com/wippyai/host-compat/errors"
)

// DefaultProvides is the feature marker installed when no override is given.
const DefaultProvides = "host-compat"

// Option configures a Registry.
type Option func(*Registry)

// WithProvides sets the feature marker name reported after Apply.
func WithProvides(name string) Option {
	return func(r *Registry) {
		r.provides = name
	}
}

// Registry is an ordered table of capability descriptors applied against a
// host environment exactly once.
type Registry struct {
	mu          sync.Mutex
	descriptors []*Descriptor
	seen        map[string]bool
	provides    string

	applyOnce sync.Once
	report    *Report
	applyErr  error

	resolvedMu sync.RWMutex
	resolved   map[string]Provider
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		seen:     make(map[string]bool),
		provides: DefaultProvides,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add registers a descriptor. Descriptors are applied in registration order,
// though no rule may depend on another rule's fallback.
func (r *Registry) Add(d *Descriptor) error {
	if d == nil {
		return errors.InvalidInput(errors.PhaseRegister, "descriptor cannot be nil")
	}
	if d.Name == "" {
		return errors.InvalidInput(errors.PhaseRegister, "capability name cannot be empty")
	}
	if d.Build == nil {
		return errors.New(errors.PhaseRegister, errors.KindInvalidInput).
			Capability(d.Name).
			Detail("descriptor needs a builder").
			Build()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.seen[d.Name] {
		return errors.Duplicate(errors.PhaseRegister, d.Name)
	}
	r.seen[d.Name] = true
	r.descriptors = append(r.descriptors, d)
	return nil
}

// Alias registers a rule binding a missing capability name to the live
// definition of a semantically equivalent existing name. Supported hosts
// always bind the target; on an out-of-range host the apply pass surfaces
// the target's absence rather than masking it.
func (r *Registry) Alias(missing, target string) error {
	if target == "" {
		return errors.InvalidInput(errors.PhaseRegister, "alias target cannot be empty")
	}
	return r.Add(&Descriptor{
		Name: missing,
		Build: func(env hostcompat.Environment) (hostcompat.Definition, error) {
			def, ok := env.Lookup(target)
			if !ok {
				return nil, errors.NotFound(errors.PhaseApply, target)
			}
			return def, nil
		},
	})
}

// Fallback registers a rule installing build's result when name is unbound.
func (r *Registry) Fallback(name string, build BuildFunc) error {
	return r.Add(&Descriptor{Name: name, Build: build})
}

// Override registers a rule replacing an existing binding outright when the
// host version matches gate. A non-matching version leaves the native
// definition in place; no validation is performed either way.
func (r *Registry) Override(name string, gate GateFunc, build BuildFunc) error {
	return r.Add(&Descriptor{Name: name, Build: build, Replace: true, Gate: gate})
}

// Provides returns the registry's feature marker name.
func (r *Registry) Provides() string {
	return r.provides
}

// Apply resolves every descriptor against env. The pass runs at most once
// per registry; repeated calls return the first report unchanged, so a
// module loaded twice populates the host namespace exactly once.
func (r *Registry) Apply(env hostcompat.Environment) (*Report, error) {
	r.applyOnce.Do(func() {
		r.report, r.applyErr = r.apply(env)
	})
	return r.report, r.applyErr
}

func (r *Registry) apply(env hostcompat.Environment) (*Report, error) {
	log := Logger()

	r.mu.Lock()
	descriptors := make([]*Descriptor, len(r.descriptors))
	copy(descriptors, r.descriptors)
	r.mu.Unlock()

	report := &Report{provides: r.provides}
	resolved := make(map[string]Provider, len(descriptors))
	var errs error

	for _, d := range descriptors {
		var res Resolution
		if d.Replace {
			res = r.applyOverride(env, d, resolved, log)
		} else {
			res = r.applyFallback(env, d, resolved, log)
		}

		if res.Err != nil {
			errs = multierr.Append(errs, res.Err)
		}
		report.resolutions = append(report.resolutions, res)
	}

	r.resolvedMu.Lock()
	r.resolved = resolved
	r.resolvedMu.Unlock()

	return report, errs
}

func (r *Registry) applyFallback(env hostcompat.Environment, d *Descriptor, resolved map[string]Provider, log *zap.Logger) Resolution {
	res := Resolution{Name: d.Name}

	present := d.Present
	if present == nil {
		present = func(env hostcompat.Environment) bool { return env.Bound(d.Name) }
	}

	if present(env) {
		res.Source = SourceNative
		if def, ok := env.Lookup(d.Name); ok {
			resolved[d.Name] = &provider{source: SourceNative, def: def}
		}
		log.Debug("native capability kept",
			zap.String("capability", d.Name))
		return res
	}

	def, err := d.Build(env)
	if err != nil {
		res.Err = err
		return res
	}
	if err := env.Define(d.Name, def); err != nil {
		res.Err = err
		return res
	}
	res.Source = SourcePolyfill
	resolved[d.Name] = &provider{source: SourcePolyfill, def: def}
	log.Debug("polyfill installed",
		zap.String("capability", d.Name))
	return res
}

func (r *Registry) applyOverride(env hostcompat.Environment, d *Descriptor, resolved map[string]Provider, log *zap.Logger) Resolution {
	res := Resolution{Name: d.Name}

	if d.Gate != nil && !d.Gate(env.Version()) {
		res.Source = SourceNative
		if def, ok := env.Lookup(d.Name); ok {
			resolved[d.Name] = &provider{source: SourceNative, def: def}
		}
		log.Debug("override gate not matched",
			zap.String("capability", d.Name),
			zap.String("version", env.Version()))
		return res
	}

	def, err := d.Build(env)
	if err != nil {
		res.Err = err
		return res
	}
	if err := env.Define(d.Name, def); err != nil {
		res.Err = err
		return res
	}
	res.Source = SourceOverride
	resolved[d.Name] = &provider{source: SourceOverride, def: def}
	log.Warn("host definition replaced",
		zap.String("capability", d.Name),
		zap.String("version", env.Version()))
	return res
}

// Resolve returns the provider for a capability after Apply has run.
func (r *Registry) Resolve(name string) (Provider, bool) {
	r.resolvedMu.RLock()
	defer r.resolvedMu.RUnlock()
	p, ok := r.resolved[name]
	return p, ok
}
