package environment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/coderland/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected environment.Environment
	}{
		{name: "development", input: "development", expected: environment.Development},
		{name: "dev alias", input: "dev", expected: environment.Development},
		{name: "local alias", input: "local", expected: environment.Development},
		{name: "staging", input: "staging", expected: environment.Staging},
		{name: "stage alias", input: "stage", expected: environment.Staging},
		{name: "production", input: "production", expected: environment.Production},
		{name: "prod alias", input: "prod", expected: environment.Production},
		{name: "mixed case with spaces", input: "  Production ", expected: environment.Production},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, err := environment.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, env)
		})
	}
}

func TestParse_Unknown(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "qa", "prod-eu"} {
		env, err := environment.Parse(input)
		require.Error(t, err, "input %q", input)
		assert.ErrorIs(t, err, environment.ErrUnknown)
		assert.Empty(t, env)
	}
}

func TestUnmarshalText(t *testing.T) {
	t.Parallel()

	var env environment.Environment
	require.NoError(t, env.UnmarshalText([]byte("stage")))
	assert.Equal(t, environment.Staging, env)
	assert.True(t, env.IsStaging())
	assert.False(t, env.IsProduction())

	err := env.UnmarshalText([]byte("nope"))
	assert.ErrorIs(t, err, environment.ErrUnknown)
	assert.Equal(t, environment.Staging, env, "failed unmarshal must not overwrite value")
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, environment.Development.IsDevelopment())
	assert.True(t, environment.Production.IsProduction())
	assert.False(t, environment.Development.IsProduction())
	assert.Equal(t, "staging", environment.Staging.String())
}
