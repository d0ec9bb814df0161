package bootstrap

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Dependency is one manifest entry: a package name with an optional version
// constraint. A nil constraint accepts any version.
type Dependency struct {
	Name       string
	Constraint *semver.Constraints
	Raw        string
}

// Manifest is the ordered list of build-time dependencies.
type Manifest struct {
	Dependencies []Dependency
}

// constraint operators recognized in manifest lines, longest first so that
// ">=" is not read as ">" followed by "=1.0".
var constraintOps = []string{"==", ">=", "<=", "!=", ">", "<"}

// ParseManifest reads a requirements-style manifest: one dependency per
// line, '#' comments and blank lines ignored.
func ParseManifest(r io.Reader) (*Manifest, error) {
	m := &Manifest{}
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if idx := strings.Index(line, "#"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}

		dep, err := parseDependency(line)
		if err != nil {
			return nil, fmt.Errorf("manifest line %d: %w", lineNo, err)
		}
		m.Dependencies = append(m.Dependencies, dep)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	return m, nil
}

func parseDependency(line string) (Dependency, error) {
	for _, op := range constraintOps {
		idx := strings.Index(line, op)
		if idx < 0 {
			continue
		}

		name := strings.TrimSpace(line[:idx])
		version := strings.TrimSpace(line[idx+len(op):])
		if name == "" || version == "" {
			return Dependency{}, fmt.Errorf("malformed dependency %q", line)
		}

		// Pip pins with "=="; semver spells equality "=".
		semverOp := op
		if op == "==" {
			semverOp = "="
		}
		c, err := semver.NewConstraint(semverOp + version)
		if err != nil {
			return Dependency{}, fmt.Errorf("invalid constraint %q for %q: %w", op+version, name, err)
		}
		return Dependency{Name: name, Constraint: c, Raw: line}, nil
	}

	// Bare name: any version.
	if strings.ContainsAny(line, " \t") {
		return Dependency{}, fmt.Errorf("malformed dependency %q", line)
	}
	return Dependency{Name: line, Raw: line}, nil
}

// Resolver locates an installable version for a package name.
type Resolver interface {
	Resolve(name string) (*semver.Version, error)
}

// StaticResolver resolves against a fixed name -> version index.
type StaticResolver map[string]string

// Resolve implements Resolver.
func (r StaticResolver) Resolve(name string) (*semver.Version, error) {
	raw, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("package %q not found in index", name)
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("package %q has invalid version %q: %w", name, raw, err)
	}
	return v, nil
}
