package bootstrap

import "fmt"

// DependencyResolutionError indicates that a manifest entry could not be
// located or that no available version satisfies its constraint. Build does
// not produce an image when this occurs.
type DependencyResolutionError struct {
	Name       string
	Constraint string
	Err        error
}

func (e *DependencyResolutionError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("cannot resolve dependency %q (%s): %v", e.Name, e.Constraint, e.Err)
	}
	return fmt.Sprintf("cannot resolve dependency %q: %v", e.Name, e.Err)
}

func (e *DependencyResolutionError) Unwrap() error { return e.Err }

// BindError indicates that the requested port could not be bound: in use,
// permission denied, non-numeric, or outside [1,65535].
type BindError struct {
	Port string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("cannot bind port %q: %v", e.Port, e.Err)
}

func (e *BindError) Unwrap() error { return e.Err }

// EntryPointResolutionError indicates that the module-qualified application
// reference names nothing in the registry.
type EntryPointResolutionError struct {
	Ref string
}

func (e *EntryPointResolutionError) Error() string {
	return fmt.Sprintf("entry point %q not found", e.Ref)
}
