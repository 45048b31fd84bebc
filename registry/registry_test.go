package registry

import (
	"errors"
	"fmt"
	"testing"

	hostcompat "github.com/wippyai/host-compat"
	compaterrors "github.com/wippyai/host-compat/errors"
	"github.com/wippyai/host-compat/testbed"
)

// nativeDef is a comparable definition so tests can assert referential
// identity across Apply.
type nativeDef struct {
	result any
}

func (d *nativeDef) Call(args ...any) (any, error) {
	return d.result, nil
}

func constBuilder(v any) BuildFunc {
	return func(env hostcompat.Environment) (hostcompat.Definition, error) {
		return hostcompat.DefinitionFunc(func(args ...any) (any, error) {
			return v, nil
		}), nil
	}
}

func TestAdd_Validation(t *testing.T) {
	tests := []struct {
		name string
		d    *Descriptor
		kind compaterrors.Kind
	}{
		{"nil descriptor", nil, compaterrors.KindInvalidInput},
		{"empty name", &Descriptor{Build: constBuilder(1)}, compaterrors.KindInvalidInput},
		{"nil builder", &Descriptor{Name: "x"}, compaterrors.KindInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			err := r.Add(tt.d)
			if err == nil {
				t.Fatal("Add accepted invalid descriptor")
			}
			var ce *compaterrors.Error
			if !errors.As(err, &ce) {
				t.Fatalf("error type = %T", err)
			}
			if ce.Kind != tt.kind {
				t.Errorf("Kind = %q, want %q", ce.Kind, tt.kind)
			}
		})
	}
}

func TestAdd_Duplicate(t *testing.T) {
	r := New()
	if err := r.Fallback("cap", constBuilder(1)); err != nil {
		t.Fatalf("first Fallback: %v", err)
	}
	err := r.Fallback("cap", constBuilder(2))
	if !errors.Is(err, &compaterrors.Error{Phase: compaterrors.PhaseRegister, Kind: compaterrors.KindDuplicate}) {
		t.Errorf("second Fallback = %v, want duplicate error", err)
	}
}

func TestApply_PresentCapabilityUnchanged(t *testing.T) {
	host := testbed.NewHost("27.2")
	native := &nativeDef{result: "native"}
	if err := host.Define("cap", native); err != nil {
		t.Fatal(err)
	}

	r := New()
	if err := r.Fallback("cap", constBuilder("polyfill")); err != nil {
		t.Fatal(err)
	}

	report, err := r.Apply(host)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	def, ok := host.Lookup("cap")
	if !ok {
		t.Fatal("capability unbound after Apply")
	}
	if def != hostcompat.Definition(native) {
		t.Error("pre-bound definition is not referentially unchanged")
	}
	if src, _ := report.Source("cap"); src != SourceNative {
		t.Errorf("Source = %q, want %q", src, SourceNative)
	}
}

func TestApply_AbsentCapabilityPolyfilled(t *testing.T) {
	host := testbed.NewHost("27.2")

	r := New()
	if err := r.Fallback("cap", constBuilder(42)); err != nil {
		t.Fatal(err)
	}

	report, err := r.Apply(host)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	got, err := host.Call("cap")
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if got != 42 {
		t.Errorf("Call = %v, want 42", got)
	}
	if src, _ := report.Source("cap"); src != SourcePolyfill {
		t.Errorf("Source = %q, want %q", src, SourcePolyfill)
	}

	p, ok := r.Resolve("cap")
	if !ok {
		t.Fatal("Resolve did not find capability")
	}
	if p.Source() != SourcePolyfill {
		t.Errorf("Provider source = %q", p.Source())
	}
}

func TestApply_AliasBitIdentical(t *testing.T) {
	host := testbed.NewHost("27.2")
	err := host.Define("old-name", hostcompat.DefinitionFunc(func(args ...any) (any, error) {
		sum := 0
		for _, a := range args {
			sum += a.(int)
		}
		return sum, nil
	}))
	if err != nil {
		t.Fatal(err)
	}

	r := New()
	if err := r.Alias("new-name", "old-name"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Apply(host); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	args := []any{1, 2, 3}
	viaNew, errNew := host.Call("new-name", args...)
	viaOld, errOld := host.Call("old-name", args...)
	if errNew != nil || errOld != nil {
		t.Fatalf("errors: new=%v old=%v", errNew, errOld)
	}
	if viaNew != viaOld {
		t.Errorf("alias result %v != target result %v", viaNew, viaOld)
	}
}

func TestApply_AliasTargetMissing(t *testing.T) {
	host := testbed.NewHost("12.0") // out of supported range, target absent

	r := New()
	if err := r.Alias("new-name", "old-name"); err != nil {
		t.Fatal(err)
	}

	report, err := r.Apply(host)
	if err == nil {
		t.Fatal("Apply succeeded with absent alias target")
	}
	res := report.Resolutions()
	if len(res) != 1 || res[0].Err == nil {
		t.Fatalf("resolutions = %+v", res)
	}
	if host.Bound("new-name") {
		t.Error("alias installed despite missing target")
	}
}

func TestApply_Idempotent(t *testing.T) {
	host := testbed.NewHost("27.2")

	calls := 0
	r := New()
	err := r.Fallback("cap", func(env hostcompat.Environment) (hostcompat.Definition, error) {
		calls++
		return hostcompat.DefinitionFunc(func(args ...any) (any, error) { return calls, nil }), nil
	})
	if err != nil {
		t.Fatal(err)
	}

	first, err := r.Apply(host)
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Apply(host)
	if err != nil {
		t.Fatal(err)
	}

	if calls != 1 {
		t.Errorf("builder ran %d times, want 1", calls)
	}
	if first != second {
		t.Error("second Apply returned a different report")
	}

	defAfterFirst, _ := host.Lookup("cap")
	if _, err := r.Apply(host); err != nil {
		t.Fatal(err)
	}
	defAfterThird, _ := host.Lookup("cap")
	if defAfterFirst == nil || fmt.Sprintf("%p", defAfterFirst) != fmt.Sprintf("%p", defAfterThird) {
		t.Error("repeated Apply changed the installed definition")
	}
}

func TestApply_OverrideGateMatch(t *testing.T) {
	host := testbed.NewHost("28.1")
	native := &nativeDef{result: "buggy"}
	if err := host.Define("hook", native); err != nil {
		t.Fatal(err)
	}

	r := New()
	gate := func(v string) bool { return v == "28.1" }
	if err := r.Override("hook", gate, constBuilder("fixed")); err != nil {
		t.Fatal(err)
	}

	report, err := r.Apply(host)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	got, err := host.Call("hook")
	if err != nil {
		t.Fatal(err)
	}
	if got != "fixed" {
		t.Errorf("Call = %v, want replacement result", got)
	}
	if src, _ := report.Source("hook"); src != SourceOverride {
		t.Errorf("Source = %q, want %q", src, SourceOverride)
	}
}

func TestApply_OverrideGateMismatch(t *testing.T) {
	host := testbed.NewHost("29.0")
	native := &nativeDef{result: "native"}
	if err := host.Define("hook", native); err != nil {
		t.Fatal(err)
	}

	r := New()
	gate := func(v string) bool { return v == "28.1" }
	if err := r.Override("hook", gate, constBuilder("fixed")); err != nil {
		t.Fatal(err)
	}

	report, err := r.Apply(host)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	def, _ := host.Lookup("hook")
	if def != hostcompat.Definition(native) {
		t.Error("override applied despite gate mismatch")
	}
	if src, _ := report.Source("hook"); src != SourceNative {
		t.Errorf("Source = %q, want %q", src, SourceNative)
	}
}

func TestApply_RulesIndependent(t *testing.T) {
	host := testbed.NewHost("27.2")

	r := New()
	if err := r.Alias("broken", "no-such-target"); err != nil {
		t.Fatal(err)
	}
	if err := r.Fallback("fine", constBuilder("ok")); err != nil {
		t.Fatal(err)
	}

	_, err := r.Apply(host)
	if err == nil {
		t.Fatal("Apply swallowed the broken rule's error")
	}

	// A failing rule must not stop later rules.
	got, callErr := host.Call("fine")
	if callErr != nil || got != "ok" {
		t.Errorf("later rule not applied: %v, %v", got, callErr)
	}
}

func TestProvides(t *testing.T) {
	r := New()
	if r.Provides() != DefaultProvides {
		t.Errorf("Provides = %q, want %q", r.Provides(), DefaultProvides)
	}

	r2 := New(WithProvides("my-compat"))
	host := testbed.NewHost("27.2")
	report, err := r2.Apply(host)
	if err != nil {
		t.Fatal(err)
	}
	if report.Provides() != "my-compat" {
		t.Errorf("report.Provides = %q", report.Provides())
	}
}
