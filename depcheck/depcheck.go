// Package depcheck checks that the dependencies declared by modules
// refer to modules that are part of the same run.
package depcheck

import (
	"slices"
	"strings"

	"github.com/refaktor/modinfogen/textutils"
)

// DuplicateError is returned by [Registry.Add] when a module name is
// registered twice.
type DuplicateError struct {
	Name string
}

func (e *DuplicateError) Error() string {
	return "duplicate module " + e.Name
}

// UnsatisfiedError lists every dependency that doesn't name a
// registered module.
type UnsatisfiedError struct {
	// Names is sorted and free of duplicates.
	Names []string
}

func (e *UnsatisfiedError) Error() string {
	if len(e.Names) == 1 {
		return "dependency " + e.Names[0] + " cannot be satisfied"
	}
	return "dependencies " + strings.Join(e.Names, ", ") + " cannot be satisfied"
}

// Lines returns one report line per unsatisfied dependency.
func (e *UnsatisfiedError) Lines() []string {
	res := make([]string, len(e.Names))
	for i, name := range e.Names {
		res[i] = "Dependency " + name + " cannot be satisfied"
	}
	return res
}

// Registry maps module names to their raw dependency values.
//
// The zero value is ready to use.
type Registry struct {
	names []string // insertion order
	deps  map[string][]string
}

// Add registers a module and its dependencies as found in the input,
// i.e. possibly quoted and padded with spaces.
func (r *Registry) Add(name string, deps []string) error {
	if r.deps == nil {
		r.deps = make(map[string][]string)
	}
	if _, ok := r.deps[name]; ok {
		return &DuplicateError{Name: name}
	}
	r.names = append(r.names, name)
	r.deps[name] = slices.Clone(deps)
	return nil
}

// Len returns the number of registered modules.
func (r *Registry) Len() int {
	return len(r.names)
}

// Names returns all registered modules in the order they were added.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// Has reports whether a module called name was registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.deps[name]
	return ok
}

// Deps returns the dependencies of a module with quotes and spaces
// trimmed, in declaration order.
func (r *Registry) Deps(name string) []string {
	raw := r.deps[name]
	if len(raw) == 0 {
		return nil
	}
	res := make([]string, len(raw))
	for i, d := range raw {
		res[i] = textutils.TrimRef(d)
	}
	return res
}

// Unresolved returns every referenced module name that isn't
// registered, sorted.
func (r *Registry) Unresolved() []string {
	missing := map[string]struct{}{}
	for _, name := range r.names {
		for _, dep := range r.Deps(name) {
			if !r.Has(dep) {
				missing[dep] = struct{}{}
			}
		}
	}
	res := make([]string, 0, len(missing))
	for name := range missing {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}

// Validate returns an [*UnsatisfiedError] listing every unresolved
// dependency, or nil if there are none.
func (r *Registry) Validate() error {
	if missing := r.Unresolved(); len(missing) > 0 {
		return &UnsatisfiedError{Names: missing}
	}
	return nil
}

// Closure returns every module name reachable from name through
// dependencies, excluding name itself, in breadth-first order.
// Unresolved names are included but not followed.
func (r *Registry) Closure(name string) []string {
	res := Reachable([]string{name}, r.Deps)
	if i := slices.Index(res, name); i != -1 {
		res = slices.Delete(res, i, i+1)
	}
	return res
}
