// Package bootstrap implements the service bootstrap contract: build an
// immutable runtime image from a dependency manifest, an entry-point file
// and an env file, then start exactly one server process bound to a
// configurable port.
//
// # Build
//
// Build resolves every manifest entry against a Resolver before touching
// the filesystem; a dependency that cannot be located, or whose available
// version fails its constraint, aborts the build with a
// DependencyResolutionError and no image is produced. A successful build
// writes the resolved package pins, the entry-point reference, and verbatim
// copies of the entry-point and env files.
//
// # Start
//
// Start applies the env file (file values override pre-existing process
// variables), snapshots an Environment for the application factory,
// resolves the entry-point reference through the Registry, validates the
// port (PORT variable, default 8089, range [1,65535]) and binds
// 0.0.0.0:<port>. The resulting Handle walks the lifecycle
//
//	built -> starting -> listening -> terminated
//
// with no retries: every startup failure is fatal and surfaces as a typed
// error (BindError, EntryPointResolutionError). Restart policy belongs to
// the supervising environment.
//
// # Entry Points
//
// References use the module-qualified "module:attribute" form, but resolve
// through an explicit registration table rather than reflective lookup:
// the serving command registers every application it is able to host.
package bootstrap
