package bootstrap_test

import (
	"strings"
	"testing"

	"caldav-bridge/core/bootstrap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseManifest(t *testing.T) {
	input := `# runtime dependencies
fastapi==0.110.0
uvicorn>=0.27
python-dotenv

requests<3  # http client
`
	m, err := bootstrap.ParseManifest(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, m.Dependencies, 4)

	assert.Equal(t, "fastapi", m.Dependencies[0].Name)
	require.NotNil(t, m.Dependencies[0].Constraint)
	assert.Equal(t, "uvicorn", m.Dependencies[1].Name)
	assert.Equal(t, "python-dotenv", m.Dependencies[2].Name)
	assert.Nil(t, m.Dependencies[2].Constraint, "bare name accepts any version")
	assert.Equal(t, "requests", m.Dependencies[3].Name)

	// Order is preserved
	assert.Equal(t, "fastapi==0.110.0", m.Dependencies[0].Raw)
}

func TestParseManifest_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"MissingVersion", "fastapi=="},
		{"MissingName", "==1.0.0"},
		{"EmbeddedSpace", "fast api"},
		{"BadConstraint", "fastapi==not.a.version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bootstrap.ParseManifest(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestStaticResolver(t *testing.T) {
	r := bootstrap.StaticResolver{"fastapi": "0.110.0"}

	v, err := r.Resolve("fastapi")
	require.NoError(t, err)
	assert.Equal(t, "0.110.0", v.String())

	_, err = r.Resolve("flask")
	assert.Error(t, err)
}

func TestConstraintMatching(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		available string
		satisfied bool
	}{
		{"ExactMatch", "fastapi==0.110.0", "0.110.0", true},
		{"ExactMismatch", "fastapi==0.110.0", "0.111.0", false},
		{"AtLeastOk", "uvicorn>=0.27.0", "0.29.0", true},
		{"AtLeastTooOld", "uvicorn>=0.27.0", "0.26.0", false},
		{"BelowOk", "requests<3.0.0", "2.31.0", true},
		{"NotEqual", "requests!=2.31.0", "2.31.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := bootstrap.ParseManifest(strings.NewReader(tt.line))
			require.NoError(t, err)
			require.Len(t, m.Dependencies, 1)

			r := bootstrap.StaticResolver{m.Dependencies[0].Name: tt.available}
			v, err := r.Resolve(m.Dependencies[0].Name)
			require.NoError(t, err)
			assert.Equal(t, tt.satisfied, m.Dependencies[0].Constraint.Check(v))
		})
	}
}
