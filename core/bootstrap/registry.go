package bootstrap

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AppFactory builds the application behind an entry-point reference. The
// Environment snapshot is the factory's only configuration channel.
type AppFactory func(env Environment, logger *zap.Logger) (*fiber.App, error)

// Registry maps module-qualified entry-point references ("module:attribute")
// to explicitly registered application factories. Registration replaces
// dynamic name lookup: an unregistered reference simply does not resolve.
type Registry struct {
	factories map[string]AppFactory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]AppFactory)}
}

// Register binds a reference to a factory. Later registrations win.
func (r *Registry) Register(ref string, factory AppFactory) {
	r.factories[normalizeRef(ref)] = factory
}

// Resolve returns the factory for a reference, or an
// *EntryPointResolutionError when the reference is malformed or unknown.
func (r *Registry) Resolve(ref string) (AppFactory, error) {
	norm := normalizeRef(ref)
	if norm == "" || !strings.Contains(norm, ":") {
		return nil, &EntryPointResolutionError{Ref: ref}
	}
	factory, ok := r.factories[norm]
	if !ok {
		return nil, &EntryPointResolutionError{Ref: ref}
	}
	return factory, nil
}

func normalizeRef(ref string) string {
	return strings.TrimSpace(ref)
}
